/*

This is a custom type for protocol due-diligence records, the reference data
behind the Yiield Score bonus layer.

*/

package types

// TeamStatus classifies how much is publicly known about a protocol's team.
type TeamStatus string

const (
	// TeamDoxxed means the team's identities are public.
	TeamDoxxed TeamStatus = "doxxed"
	// TeamVerified means the team was verified by the Yiield team directly.
	// It deliberately ranks below doxxed: it reflects platform-asserted trust
	// rather than public identity.
	TeamVerified TeamStatus = "verified"
	// TeamAnonymous means nothing is known about the team.
	TeamAnonymous TeamStatus = "anonymous"
)

// Auditor is a single audit engagement. Tier 1 is the highest reputation class.
type Auditor struct {
	Name      string `json:"name"`
	Tier      int    `json:"tier"` // 1, 2 or 3
	ReportURL string `json:"report_url,omitempty"`
}

// Insurance describes active cover purchasable against the protocol.
type Insurance struct {
	Provider    string  `json:"provider"`
	CoverageUSD float64 `json:"coverage_usd"`
	URL         string  `json:"url,omitempty"`
}

// Governance describes the protocol's on-paper governance setup.
type Governance struct {
	HasGovernance  bool   `json:"has_governance"`
	GovernanceType string `json:"governance_type,omitempty"` // e.g. "dao"
	Description    string `json:"description,omitempty"`
}

// ProtocolRecord holds the manually curated due-diligence facts for one
// protocol. Records are fixed reference data, read-only after initialization.
type ProtocolRecord struct {
	Name            string      `json:"name"`
	Slug            string      `json:"slug"`
	Aliases         []string    `json:"aliases,omitempty"` // Accepted alternate slugs
	TeamStatus      TeamStatus  `json:"team_status"`
	TeamDescription string      `json:"team_description,omitempty"`
	Auditors        []Auditor   `json:"auditors"`
	Insurance       *Insurance  `json:"insurance,omitempty"`
	Governance      *Governance `json:"governance,omitempty"`
	Notes           string      `json:"notes,omitempty"`
}
