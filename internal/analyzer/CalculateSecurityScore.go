/*

This file contains the base security score formula: four independently capped
pillars (audits, protocol age, TVL, exploit history) summed to a 0-100 score.

*/

package analyzer

import (
	"github.com/clementfrmd/safeyield/internal/logger"
)

var securityLogger = logger.GetForComponent("security_scorer")

// Each pillar contributes at most 25 points, so the summed score is bounded
// at exactly 100 with no further capping.
const MaxPillarScore = 25.0

// CalculateAuditScore converts an audit count into the audit pillar score.
// Six points per audit, capped at 25 (five or more audits saturate the pillar).
func CalculateAuditScore(audits int) float64 {
	if audits <= 0 {
		return 0
	}
	score := float64(audits) * 6
	if score > MaxPillarScore {
		return MaxPillarScore
	}
	return score
}

// CalculateAgeScore converts a protocol's age in days into the age pillar
// score. Thresholds reward protocols that have survived two years, one year,
// and six months respectively.
func CalculateAgeScore(ageDays int) float64 {
	switch {
	case ageDays > 730:
		return 25
	case ageDays > 365:
		return 20
	case ageDays > 180:
		return 12
	default:
		return 5
	}
}

// CalculateTVLScore converts a pool's TVL in USD into the TVL pillar score.
func CalculateTVLScore(tvlUSD float64) float64 {
	switch {
	case tvlUSD > 500_000_000:
		return 25
	case tvlUSD > 100_000_000:
		return 22
	case tvlUSD > 10_000_000:
		return 18
	default:
		return 10
	}
}

// CalculateExploitScore converts the count of past incidents into the exploit
// history pillar score. A single incident halves the pillar; two or more
// zero it.
func CalculateExploitScore(exploits int) float64 {
	switch {
	case exploits <= 0:
		return 25
	case exploits == 1:
		return 12
	default:
		return 0
	}
}

// CalculateSecurityScore computes the 0-100 base security score from the four
// risk facts. It is a pure function of its inputs: recomputing it for the
// same inputs always yields the same score, independent of any other pool.
func CalculateSecurityScore(audits int, ageDays int, tvlUSD float64, exploits int) float64 {
	auditScore := CalculateAuditScore(audits)
	ageScore := CalculateAgeScore(ageDays)
	tvlScore := CalculateTVLScore(tvlUSD)
	exploitScore := CalculateExploitScore(exploits)

	total := auditScore + ageScore + tvlScore + exploitScore

	securityLogger.Debug().
		Int("audits", audits).
		Int("ageDays", ageDays).
		Float64("tvlUSD", tvlUSD).
		Int("exploits", exploits).
		Float64("auditScore", auditScore).
		Float64("ageScore", ageScore).
		Float64("tvlScore", tvlScore).
		Float64("exploitScore", exploitScore).
		Float64("securityScore", total).
		Msg("Base security score calculated")

	return total
}
