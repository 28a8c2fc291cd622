package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateAuditScore(t *testing.T) {
	assert.Equal(t, 0.0, CalculateAuditScore(0))
	assert.Equal(t, 0.0, CalculateAuditScore(-1))
	assert.Equal(t, 6.0, CalculateAuditScore(1))
	assert.Equal(t, 12.0, CalculateAuditScore(2))
	assert.Equal(t, 24.0, CalculateAuditScore(4))

	// Five or more audits saturate the pillar at 25
	assert.Equal(t, 25.0, CalculateAuditScore(5))
	assert.Equal(t, 25.0, CalculateAuditScore(10))
}

func TestCalculateAgeScore(t *testing.T) {
	// Boundary days belong to the lower bracket
	assert.Equal(t, 5.0, CalculateAgeScore(0))
	assert.Equal(t, 5.0, CalculateAgeScore(180))
	assert.Equal(t, 12.0, CalculateAgeScore(181))
	assert.Equal(t, 12.0, CalculateAgeScore(365))
	assert.Equal(t, 20.0, CalculateAgeScore(366))
	assert.Equal(t, 20.0, CalculateAgeScore(730))
	assert.Equal(t, 25.0, CalculateAgeScore(731))
	assert.Equal(t, 25.0, CalculateAgeScore(3650))
}

func TestCalculateTVLScore(t *testing.T) {
	assert.Equal(t, 10.0, CalculateTVLScore(0))
	assert.Equal(t, 10.0, CalculateTVLScore(10_000_000))
	assert.Equal(t, 18.0, CalculateTVLScore(10_000_001))
	assert.Equal(t, 18.0, CalculateTVLScore(100_000_000))
	assert.Equal(t, 22.0, CalculateTVLScore(100_000_001))
	assert.Equal(t, 22.0, CalculateTVLScore(500_000_000))
	assert.Equal(t, 25.0, CalculateTVLScore(500_000_001))
}

func TestCalculateExploitScore(t *testing.T) {
	assert.Equal(t, 25.0, CalculateExploitScore(0))
	assert.Equal(t, 12.0, CalculateExploitScore(1))
	assert.Equal(t, 0.0, CalculateExploitScore(2))
	assert.Equal(t, 0.0, CalculateExploitScore(5))
}

func TestCalculateSecurityScore(t *testing.T) {
	// Best case: every pillar saturated
	assert.Equal(t, 100.0, CalculateSecurityScore(5, 1000, 600_000_000, 0))

	// Worst case: floor of each pillar
	assert.Equal(t, 15.0, CalculateSecurityScore(0, 30, 500_000, 2))

	// Mixed: 4 audits (24) + 2y+ (25) + mid TVL (18) + one incident (12)
	assert.Equal(t, 79.0, CalculateSecurityScore(4, 800, 50_000_000, 1))
}

func TestCalculateSecurityScoreIsDeterministic(t *testing.T) {
	first := CalculateSecurityScore(3, 400, 120_000_000, 0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CalculateSecurityScore(3, 400, 120_000_000, 0))
	}
}
