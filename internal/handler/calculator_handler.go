package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/healthcalc/health-calculator-api/internal/calculator"
	"github.com/healthcalc/health-calculator-api/internal/domain"
)

// CalculatorHandler serves the three health-metric endpoints. It holds
// no state; every request is computed from its query parameters alone.
type CalculatorHandler struct{}

func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

func (h *CalculatorHandler) BMI(w http.ResponseWriter, r *http.Request) {
	weight, err := queryFloat(r, "weight")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid weight parameter")
		return
	}
	height, err := queryFloat(r, "height")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid height parameter")
		return
	}

	result, err := calculator.BMI(weight, height, queryUnit(r), queryGender(r))
	if err != nil {
		writeCalcError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *CalculatorHandler) BAI(w http.ResponseWriter, r *http.Request) {
	hip, err := queryFloat(r, "hipCircumference")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid hipCircumference parameter")
		return
	}
	height, err := queryFloat(r, "height")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid height parameter")
		return
	}

	result, err := calculator.BAI(hip, height, queryUnit(r), queryGender(r))
	if err != nil {
		writeCalcError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *CalculatorHandler) WaistToHip(w http.ResponseWriter, r *http.Request) {
	waist, err := queryFloat(r, "waist")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid waist parameter")
		return
	}
	hip, err := queryFloat(r, "hip")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid hip parameter")
		return
	}

	result, err := calculator.WaistToHip(waist, hip, queryUnit(r), queryGender(r))
	if err != nil {
		writeCalcError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// writeCalcError surfaces a validation failure as its bare message so
// the response body matches the fixed validation texts exactly.
func writeCalcError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, verr.Message)
		return
	}
	writeError(w, http.StatusInternalServerError, "calculation failed")
}

func queryFloat(r *http.Request, name string) (float64, error) {
	v, err := strconv.ParseFloat(r.URL.Query().Get(name), 64)
	if err != nil {
		return 0, err
	}
	// ParseFloat accepts "NaN" and "Inf", which the JSON encoder cannot
	// represent. Reject them at the binding layer.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

func queryUnit(r *http.Request) domain.Unit {
	return domain.ParseUnit(r.URL.Query().Get("unit"))
}

func queryGender(r *http.Request) domain.Gender {
	return domain.ParseGender(r.URL.Query().Get("gender"))
}
