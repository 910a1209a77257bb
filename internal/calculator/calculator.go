// Package calculator implements the health-metric formulas. All
// functions are pure: they validate, normalize units to a metric basis,
// evaluate the formula and categorize the result.
package calculator

import (
	"math"

	"github.com/healthcalc/health-calculator-api/internal/domain"
)

const (
	poundsToKilograms = 0.453592
	inchesToMeters    = 0.0254
	inchesToCm        = 2.54
)

// BMI computes the Body Mass Index. Metric inputs are kg and cm,
// imperial inputs lb and inches.
func BMI(weight, height float64, unit domain.Unit, gender domain.Gender) (domain.BMIResult, error) {
	if weight <= 0 || height <= 0 {
		return domain.BMIResult{}, &domain.ValidationError{Message: "Weight and height must be greater than zero."}
	}

	weightKg := weight
	heightM := height / 100
	if unit == domain.UnitImperial {
		weightKg = weight * poundsToKilograms
		heightM = height * inchesToMeters
	}

	bmi := weightKg / (heightM * heightM)
	category := classifyBMI(bmi)

	return domain.BMIResult{
		BMI:            round2(bmi),
		Category:       category,
		Recommendation: recommendationFor(category, gender),
	}, nil
}

// BAI computes the Body Adiposity Index from hip circumference (cm or
// inches) and height (cm or inches).
func BAI(hipCircumference, height float64, unit domain.Unit, gender domain.Gender) (domain.BAIResult, error) {
	if hipCircumference <= 0 || height <= 0 {
		return domain.BAIResult{}, &domain.ValidationError{Message: "Hip circumference and height must be greater than zero."}
	}

	heightM := height / 100
	if unit == domain.UnitImperial {
		heightM = height * inchesToMeters
	}

	bai := hipCircumference/math.Pow(heightM, 1.5) - 18

	return domain.BAIResult{
		BAI:      round2(bai),
		Category: classifyBAI(bai, gender),
	}, nil
}

// WaistToHip computes the waist-to-hip ratio. Imperial inputs are
// converted from inches to cm first; the ratio itself is scale-invariant.
func WaistToHip(waist, hip float64, unit domain.Unit, gender domain.Gender) (domain.WaistToHipResult, error) {
	if waist <= 0 || hip <= 0 {
		return domain.WaistToHipResult{}, &domain.ValidationError{Message: "Waist and hip measurements must be greater than zero."}
	}

	if unit == domain.UnitImperial {
		waist *= inchesToCm
		hip *= inchesToCm
	}

	ratio := waist / hip

	return domain.WaistToHipResult{
		WaistToHipRatio: round2(ratio),
		Category:        classifyWaistToHip(ratio, gender),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
