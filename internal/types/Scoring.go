/*

This file contains the types for the Yiield Score breakdown.

*/

package types

// ScoreBreakdown explains how a pool's Yiield Score was assembled from its
// base security score and the protocol bonuses. It is recomputed on demand
// and never persisted. Fields carry exact values; rounding is left to the
// display layer.
type ScoreBreakdown struct {
	BaseScore             float64 `json:"base_score"`
	AuditorTierBonus      float64 `json:"auditor_tier_bonus"`
	TeamVerificationBonus float64 `json:"team_verification_bonus"`
	InsuranceBonus        float64 `json:"insurance_bonus"`
	GovernanceBonus       float64 `json:"governance_bonus"`
	RawTotal              float64 `json:"raw_total"` // Uncapped: base plus all bonuses
	Total                 float64 `json:"total"`     // min(100, raw_total), the displayed score
}
