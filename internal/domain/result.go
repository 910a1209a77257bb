package domain

type BMIResult struct {
	BMI            float64 `json:"BMI"`
	Category       string  `json:"Category"`
	Recommendation string  `json:"Recommendation"`
}

type BAIResult struct {
	BAI      float64 `json:"BAI"`
	Category string  `json:"Category"`
}

type WaistToHipResult struct {
	WaistToHipRatio float64 `json:"WaistToHipRatio"`
	Category        string  `json:"Category"`
}

// ValidationError reports a non-positive measurement input. Its message
// is surfaced verbatim to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
