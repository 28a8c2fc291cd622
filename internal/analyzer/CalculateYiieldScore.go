/*

This file contains the Yiield Score calculator: the bonus layer applied on top
of the base security score using a protocol's due-diligence record.

The calculator is a total function over its domain. Absent or empty inputs
degrade the corresponding bonus to zero; no combination of inputs produces an
error. It holds no state and is safe to call concurrently for any number of
pools in any order.

*/

package analyzer

import (
	"github.com/clementfrmd/safeyield/internal/logger"
	"github.com/clementfrmd/safeyield/internal/registry"
	"github.com/clementfrmd/safeyield/internal/types"
)

var yiieldLogger = logger.GetForComponent("yiield_scorer")

const (
	// Auditor tier bonuses. Only the single best tier present counts;
	// additional audits at the same or lower tiers do not stack.
	Tier1AuditorBonus = 10.0
	Tier2AuditorBonus = 6.0
	Tier3AuditorBonus = 3.0

	// Team transparency bonuses. Doxxed outranks verified: public identity
	// is worth more than platform-asserted trust.
	DoxxedTeamBonus   = 5.0
	VerifiedTeamBonus = 3.0

	// Flat bonuses. Insurance is magnitude-insensitive: coverage size does
	// not scale the bonus.
	InsuranceBonusPoints  = 3.0
	GovernanceBonusPoints = 2.0

	// MaxYiieldScore caps the displayed total. The uncapped raw total is
	// still carried in the breakdown.
	MaxYiieldScore = 100.0
)

// CalculateAuditorTierBonus derives the audit bonus from the best
// (lowest-numbered) tier present among the protocol's auditors. Auditors with
// a tier outside 1-3 are a data-authoring defect and are ignored here; the
// registry test suite is the place that catches them.
func CalculateAuditorTierBonus(auditors []types.Auditor) float64 {
	bestTier := 0
	for _, auditor := range auditors {
		if auditor.Tier < 1 || auditor.Tier > 3 {
			continue
		}
		if bestTier == 0 || auditor.Tier < bestTier {
			bestTier = auditor.Tier
		}
	}

	switch bestTier {
	case 1:
		return Tier1AuditorBonus
	case 2:
		return Tier2AuditorBonus
	case 3:
		return Tier3AuditorBonus
	default:
		return 0
	}
}

// CalculateTeamBonus derives the team verification bonus from the team
// transparency classification. Unknown values degrade to zero.
func CalculateTeamBonus(status types.TeamStatus) float64 {
	switch status {
	case types.TeamDoxxed:
		return DoxxedTeamBonus
	case types.TeamVerified:
		return VerifiedTeamBonus
	default:
		return 0
	}
}

// CalculateInsuranceBonus awards a flat bonus when any insurance cover is
// present.
func CalculateInsuranceBonus(insurance *types.Insurance) float64 {
	if insurance == nil {
		return 0
	}
	return InsuranceBonusPoints
}

// CalculateGovernanceBonus awards a flat bonus when the protocol has active
// governance.
func CalculateGovernanceBonus(governance *types.Governance) float64 {
	if governance == nil || !governance.HasGovernance {
		return 0
	}
	return GovernanceBonusPoints
}

// CalculateYiieldScore produces the score breakdown for one pool: the base
// security score plus the four protocol bonuses, with the displayed total
// capped at 100.
//
// A nil protocolInfo is the no-enhancement path: every bonus is zero and the
// total equals the base score. This path performs no registry access.
func CalculateYiieldScore(baseScore float64, protocolInfo *types.ProtocolRecord) types.ScoreBreakdown {
	if protocolInfo == nil {
		return types.ScoreBreakdown{
			BaseScore: baseScore,
			RawTotal:  baseScore,
			Total:     baseScore,
		}
	}

	breakdown := types.ScoreBreakdown{
		BaseScore:             baseScore,
		AuditorTierBonus:      CalculateAuditorTierBonus(protocolInfo.Auditors),
		TeamVerificationBonus: CalculateTeamBonus(protocolInfo.TeamStatus),
		InsuranceBonus:        CalculateInsuranceBonus(protocolInfo.Insurance),
		GovernanceBonus:       CalculateGovernanceBonus(protocolInfo.Governance),
	}

	breakdown.RawTotal = breakdown.BaseScore +
		breakdown.AuditorTierBonus +
		breakdown.TeamVerificationBonus +
		breakdown.InsuranceBonus +
		breakdown.GovernanceBonus

	breakdown.Total = breakdown.RawTotal
	if breakdown.Total > MaxYiieldScore {
		breakdown.Total = MaxYiieldScore
	}

	yiieldLogger.Debug().
		Str("protocol", protocolInfo.Name).
		Float64("baseScore", breakdown.BaseScore).
		Float64("auditorTierBonus", breakdown.AuditorTierBonus).
		Float64("teamVerificationBonus", breakdown.TeamVerificationBonus).
		Float64("insuranceBonus", breakdown.InsuranceBonus).
		Float64("governanceBonus", breakdown.GovernanceBonus).
		Float64("rawTotal", breakdown.RawTotal).
		Float64("total", breakdown.Total).
		Msg("Yiield score calculated")

	return breakdown
}

// PoolScoreBreakdown resolves the pool's protocol and computes its breakdown.
func PoolScoreBreakdown(pool types.Pool) types.ScoreBreakdown {
	protocolInfo, _ := registry.Resolve(pool.Protocol)
	return CalculateYiieldScore(pool.SecurityScore, protocolInfo)
}

// EnrichPools stamps the Yiield Score on every pool in the slice. Pools whose
// protocol has no registry record keep their base security score as the
// Yiield Score. The input slice is modified in place and returned.
func EnrichPools(pools []types.Pool) []types.Pool {
	enhanced := 0
	for i := range pools {
		protocolInfo, ok := registry.Resolve(pools[i].Protocol)
		breakdown := CalculateYiieldScore(pools[i].SecurityScore, protocolInfo)
		pools[i].YiieldScore = breakdown.Total
		if ok {
			enhanced++
		}
	}

	yiieldLogger.Info().
		Int("poolCount", len(pools)).
		Int("withEnhancedData", enhanced).
		Msg("Pools enriched with Yiield Scores")

	return pools
}
