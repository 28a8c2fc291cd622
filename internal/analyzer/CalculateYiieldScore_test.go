package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clementfrmd/safeyield/internal/types"
)

func TestCalculateAuditorTierBonus(t *testing.T) {
	assert.Equal(t, 0.0, CalculateAuditorTierBonus(nil))
	assert.Equal(t, 0.0, CalculateAuditorTierBonus([]types.Auditor{}))

	assert.Equal(t, Tier1AuditorBonus, CalculateAuditorTierBonus([]types.Auditor{
		{Name: "Trail of Bits", Tier: 1},
	}))
	assert.Equal(t, Tier2AuditorBonus, CalculateAuditorTierBonus([]types.Auditor{
		{Name: "Certik", Tier: 2},
	}))
	assert.Equal(t, Tier3AuditorBonus, CalculateAuditorTierBonus([]types.Auditor{
		{Name: "Boutique Firm", Tier: 3},
	}))

	// Only the best tier counts; extra auditors never stack
	assert.Equal(t, Tier1AuditorBonus, CalculateAuditorTierBonus([]types.Auditor{
		{Name: "Certik", Tier: 2},
		{Name: "OpenZeppelin", Tier: 1},
		{Name: "Trail of Bits", Tier: 1},
		{Name: "Boutique Firm", Tier: 3},
	}))

	// Out-of-range tiers are ignored
	assert.Equal(t, Tier2AuditorBonus, CalculateAuditorTierBonus([]types.Auditor{
		{Name: "Bad Data", Tier: 0},
		{Name: "Bad Data", Tier: 7},
		{Name: "Certik", Tier: 2},
	}))
}

func TestCalculateTeamBonus(t *testing.T) {
	assert.Equal(t, DoxxedTeamBonus, CalculateTeamBonus(types.TeamDoxxed))
	assert.Equal(t, VerifiedTeamBonus, CalculateTeamBonus(types.TeamVerified))
	assert.Equal(t, 0.0, CalculateTeamBonus(types.TeamAnonymous))
	assert.Equal(t, 0.0, CalculateTeamBonus(types.TeamStatus("garbage")))

	// Public identity outranks platform-asserted trust
	assert.Greater(t, CalculateTeamBonus(types.TeamDoxxed), CalculateTeamBonus(types.TeamVerified))
	assert.Greater(t, CalculateTeamBonus(types.TeamVerified), CalculateTeamBonus(types.TeamAnonymous))
}

func TestCalculateInsuranceBonus(t *testing.T) {
	assert.Equal(t, 0.0, CalculateInsuranceBonus(nil))

	// Flat bonus regardless of coverage size
	small := &types.Insurance{Provider: "Nexus Mutual", CoverageUSD: 100_000}
	large := &types.Insurance{Provider: "Nexus Mutual", CoverageUSD: 50_000_000}
	assert.Equal(t, InsuranceBonusPoints, CalculateInsuranceBonus(small))
	assert.Equal(t, InsuranceBonusPoints, CalculateInsuranceBonus(large))
}

func TestCalculateGovernanceBonus(t *testing.T) {
	assert.Equal(t, 0.0, CalculateGovernanceBonus(nil))
	assert.Equal(t, 0.0, CalculateGovernanceBonus(&types.Governance{HasGovernance: false}))
	assert.Equal(t, GovernanceBonusPoints, CalculateGovernanceBonus(&types.Governance{
		HasGovernance:  true,
		GovernanceType: "dao",
	}))
}

func TestCalculateYiieldScoreWithoutProtocolInfo(t *testing.T) {
	// No record means no bonuses: total is exactly the base score
	breakdown := CalculateYiieldScore(82, nil)

	assert.Equal(t, 82.0, breakdown.BaseScore)
	assert.Equal(t, 0.0, breakdown.AuditorTierBonus)
	assert.Equal(t, 0.0, breakdown.TeamVerificationBonus)
	assert.Equal(t, 0.0, breakdown.InsuranceBonus)
	assert.Equal(t, 0.0, breakdown.GovernanceBonus)
	assert.Equal(t, 82.0, breakdown.RawTotal)
	assert.Equal(t, 82.0, breakdown.Total)
}

func TestCalculateYiieldScoreAccounting(t *testing.T) {
	record := &types.ProtocolRecord{
		Name:       "Test Protocol",
		Slug:       "test-protocol",
		TeamStatus: types.TeamDoxxed,
		Auditors:   []types.Auditor{{Name: "Trail of Bits", Tier: 1}},
		Insurance:  &types.Insurance{Provider: "Nexus Mutual", CoverageUSD: 1_000_000},
	}

	breakdown := CalculateYiieldScore(70, record)

	// 70 base + 10 tier-1 + 5 doxxed + 3 insurance, no governance
	assert.Equal(t, 10.0, breakdown.AuditorTierBonus)
	assert.Equal(t, 5.0, breakdown.TeamVerificationBonus)
	assert.Equal(t, 3.0, breakdown.InsuranceBonus)
	assert.Equal(t, 0.0, breakdown.GovernanceBonus)
	assert.Equal(t, 88.0, breakdown.RawTotal)
	assert.Equal(t, 88.0, breakdown.Total)

	// Raw total always equals the sum of its parts
	sum := breakdown.BaseScore + breakdown.AuditorTierBonus + breakdown.TeamVerificationBonus +
		breakdown.InsuranceBonus + breakdown.GovernanceBonus
	assert.Equal(t, sum, breakdown.RawTotal)
}

func TestCalculateYiieldScoreCap(t *testing.T) {
	record := &types.ProtocolRecord{
		Name:       "Stacked Protocol",
		Slug:       "stacked-protocol",
		TeamStatus: types.TeamDoxxed,
		Auditors:   []types.Auditor{{Name: "OpenZeppelin", Tier: 1}},
		Insurance:  &types.Insurance{Provider: "Nexus Mutual", CoverageUSD: 10_000_000},
		Governance: &types.Governance{HasGovernance: true, GovernanceType: "dao"},
	}

	breakdown := CalculateYiieldScore(95, record)

	// 95 + 10 + 5 + 3 + 2 = 115 raw, displayed total capped at 100
	assert.Equal(t, 115.0, breakdown.RawTotal)
	assert.Equal(t, 100.0, breakdown.Total)
}

func TestCalculateYiieldScoreMixedTiers(t *testing.T) {
	record := &types.ProtocolRecord{
		Name:       "Mid Protocol",
		Slug:       "mid-protocol",
		TeamStatus: types.TeamVerified,
		Auditors: []types.Auditor{
			{Name: "Boutique Firm", Tier: 3},
			{Name: "Certik", Tier: 2},
		},
	}

	breakdown := CalculateYiieldScore(60, record)

	// 60 + 6 (best tier is 2) + 3 verified
	assert.Equal(t, 6.0, breakdown.AuditorTierBonus)
	assert.Equal(t, 3.0, breakdown.TeamVerificationBonus)
	assert.Equal(t, 69.0, breakdown.Total)
}

func TestCalculateYiieldScoreIsIdempotent(t *testing.T) {
	record := &types.ProtocolRecord{
		Name:       "Repeat Protocol",
		Slug:       "repeat-protocol",
		TeamStatus: types.TeamDoxxed,
		Auditors:   []types.Auditor{{Name: "Certik", Tier: 2}},
	}

	first := CalculateYiieldScore(75, record)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CalculateYiieldScore(75, record))
	}
}

func TestEnrichPools(t *testing.T) {
	pools := []types.Pool{
		{ID: "a", Protocol: "Aave V3", SecurityScore: 90},
		{ID: "b", Protocol: "Completely Unknown", SecurityScore: 75},
	}

	enriched := EnrichPools(pools)
	require.Len(t, enriched, 2)

	// Aave V3 has a registry record so its score is enhanced above base
	assert.Greater(t, enriched[0].YiieldScore, enriched[0].SecurityScore)
	assert.LessOrEqual(t, enriched[0].YiieldScore, 100.0)

	// Unknown protocol keeps its base score
	assert.Equal(t, 75.0, enriched[1].YiieldScore)
}

func TestPoolScoreBreakdown(t *testing.T) {
	known := PoolScoreBreakdown(types.Pool{Protocol: "Aave V3", SecurityScore: 80})
	assert.Greater(t, known.RawTotal, 80.0)

	unknown := PoolScoreBreakdown(types.Pool{Protocol: "Completely Unknown", SecurityScore: 80})
	assert.Equal(t, 80.0, unknown.Total)
	assert.Equal(t, 0.0, unknown.AuditorTierBonus)
}
