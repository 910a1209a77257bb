package domain

import "strings"

// Unit is the measurement system a request's values are expressed in.
type Unit string

const (
	UnitMetric   Unit = "metric"
	UnitImperial Unit = "imperial"
)

// ParseUnit resolves a unit token case-insensitively. Any value other
// than "imperial" (including an absent parameter) is treated as metric.
func ParseUnit(s string) Unit {
	if strings.EqualFold(strings.TrimSpace(s), string(UnitImperial)) {
		return UnitImperial
	}
	return UnitMetric
}

// Gender selects the threshold table used for categorization.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// ParseGender resolves a gender token case-insensitively. An absent
// parameter defaults to female; any other value uses the male tables.
func ParseGender(s string) Gender {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(GenderFemale)) {
		return GenderFemale
	}
	return GenderMale
}
