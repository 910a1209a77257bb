package calculator

import "github.com/healthcalc/health-calculator-api/internal/domain"

const (
	CategoryUnderweight = "Underweight"
	CategoryHealthy     = "Healthy weight"
	CategoryOverweight  = "Overweight"
	CategoryObese       = "Obese"

	CategoryUnderfat = "Underfat"
	CategoryNormal   = "Normal"
	CategoryOverfat  = "Overfat"

	CategoryLowRisk      = "Low Risk"
	CategoryModerateRisk = "Moderate Risk"
	CategoryHighRisk     = "High Risk"
)

// classifyBMI evaluates the threshold chain in order. The chain leaves a
// gap: values in [24.9, 25.0) match none of the first three checks and
// fall through to Obese. Reference behavior, kept as-is.
func classifyBMI(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi >= 18.5 && bmi < 24.9:
		return CategoryHealthy
	case bmi >= 25 && bmi < 29.9:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

// recommendationFor maps a BMI category and gender to advisory text.
func recommendationFor(category string, gender domain.Gender) string {
	female := gender == domain.GenderFemale
	switch category {
	case CategoryUnderweight:
		if female {
			return "Consider consulting a healthcare provider for nutritional guidance."
		}
		return "Consult a healthcare provider for advice on weight management."
	case CategoryHealthy:
		return "Maintaining a healthy weight is essential for overall health."
	case CategoryOverweight:
		if female {
			return "Consider a balanced diet and regular exercise to reach a healthy weight."
		}
		return "Regular physical activity is recommended to reduce health risks."
	default:
		return "Obesity can increase the risk of chronic diseases. A healthcare professional can provide personalized recommendations."
	}
}

func classifyBAI(bai float64, gender domain.Gender) string {
	low, high := 8.0, 21.0
	if gender == domain.GenderFemale {
		low, high = 18.0, 25.0
	}
	switch {
	case bai < low:
		return CategoryUnderfat
	case bai < high:
		return CategoryNormal
	default:
		return CategoryOverfat
	}
}

func classifyWaistToHip(ratio float64, gender domain.Gender) string {
	low, high := 0.90, 0.95
	if gender == domain.GenderFemale {
		low, high = 0.80, 0.85
	}
	switch {
	case ratio < low:
		return CategoryLowRisk
	case ratio < high:
		return CategoryModerateRisk
	default:
		return CategoryHighRisk
	}
}
