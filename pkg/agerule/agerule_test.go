package agerule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRMDStartAge(t *testing.T) {
	tests := []struct {
		name      string
		birthYear int
		expected  int
	}{
		{"1945 cohort", 1945, 72},
		{"1950 boundary", 1950, 72},
		{"1951 boundary", 1951, 73},
		{"1955 cohort", 1955, 73},
		{"1959 boundary", 1959, 73},
		{"1960 boundary", 1960, 75},
		{"1970 cohort", 1970, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RMDStartAge(tt.birthYear))
		})
	}
}

func TestFullRetirementAge(t *testing.T) {
	assert.Equal(t, 65, FullRetirementAge(1940))
	assert.Equal(t, 66, FullRetirementAge(1950))
	assert.Equal(t, 66, FullRetirementAge(1959))
	assert.Equal(t, 67, FullRetirementAge(1960))
	assert.Equal(t, 67, FullRetirementAge(1975))
}

func TestIsMedicareEligible(t *testing.T) {
	assert.False(t, IsMedicareEligible(64))
	assert.True(t, IsMedicareEligible(65))
	assert.True(t, IsMedicareEligible(80))
}
