package agerule

// RMDStartAge returns the age at which Required Minimum Distributions
// begin for a given birth year, per the SECURE 2.0 Act schedule.
func RMDStartAge(birthYear int) int {
	switch {
	case birthYear <= 1950:
		return 72
	case birthYear >= 1951 && birthYear <= 1959:
		return 73
	default: // 1960 and later
		return 75
	}
}

// FullRetirementAge returns the Social Security Full Retirement Age
// for a given birth year, in whole years (partial-year FRAs round
// down).
func FullRetirementAge(birthYear int) int {
	switch {
	case birthYear <= 1942:
		return 65
	case birthYear >= 1943 && birthYear <= 1959:
		return 66
	default: // 1960 and later
		return 67
	}
}

// IsMedicareEligible reports whether a person of the given age is
// eligible for Medicare.
func IsMedicareEligible(age int) bool {
	return age >= 65
}
