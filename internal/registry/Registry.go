/*

This file contains the protocol due-diligence registry used for Yiield Score
bonuses: team status, auditor engagements, insurance cover and governance for
each protocol we have manually reviewed.

The registry is fixed reference data. It is built once at package init and is
never mutated afterwards, so concurrent reads need no locking. Updating it
requires a new deployment.

Each protocol has exactly one canonical record; alternate upstream slugs are
listed as aliases on that record rather than duplicated entries, so the
due-diligence facts only ever live in one place.

*/

package registry

import (
	"sort"

	"github.com/clementfrmd/safeyield/internal/types"
)

var protocols = map[string]*types.ProtocolRecord{

	// --- Tier 1 lending protocols ---

	"aave-v3": {
		Name:            "Aave V3",
		Slug:            "aave-v3",
		TeamStatus:      types.TeamDoxxed,
		TeamDescription: "Led by Stani Kulechov, public team since 2017",
		Auditors: []types.Auditor{
			{Name: "OpenZeppelin", Tier: 1, ReportURL: "https://github.com/aave/aave-v3-core/tree/master/audits"},
			{Name: "Trail of Bits", Tier: 1, ReportURL: "https://github.com/aave/aave-v3-core/tree/master/audits"},
			{Name: "Certik", Tier: 2},
			{Name: "PeckShield", Tier: 2},
			{Name: "Sigma Prime", Tier: 1},
		},
		Insurance: &types.Insurance{
			Provider:    "Nexus Mutual",
			CoverageUSD: 50_000_000,
			URL:         "https://app.nexusmutual.io/cover/buy/get-quote?address=0x87870Bca3F3fD6335C3F4ce8392D69350B4fA4E2",
		},
		Governance: &types.Governance{
			HasGovernance:  true,
			GovernanceType: "dao",
			Description:    "AAVE token holders govern protocol",
		},
	},

	"aave-v2": {
		Name:            "Aave V2",
		Slug:            "aave-v2",
		TeamStatus:      types.TeamDoxxed,
		TeamDescription: "Same team as Aave V3",
		Auditors: []types.Auditor{
			{Name: "OpenZeppelin", Tier: 1},
			{Name: "Trail of Bits", Tier: 1},
			{Name: "Consensys Diligence", Tier: 1},
		},
		Insurance: &types.Insurance{
			Provider:    "Nexus Mutual",
			CoverageUSD: 30_000_000,
			URL:         "https://app.nexusmutual.io/cover/buy/get-quote?address=0x7d2768dE32b0b80b7a3454c06BdAc94A69DDc7A9",
		},
		Governance: &types.Governance{
			HasGovernance:  true,
			GovernanceType: "dao",
		},
	},

	"compound-v3": {
		Name:            "Compound V3",
		Slug:            "compound-v3",
		TeamStatus:      types.TeamDoxxed,
		TeamDescription: "Founded by Robert Leshner, public team",
		Auditors: []types.Auditor{
			{Name: "OpenZeppelin", Tier: 1},
			{Name: "ChainSecurity", Tier: 1},
			{Name: "Certora", Tier: 2},
		},
		Insurance: &types.Insurance{
			Provider:    "Nexus Mutual",
			CoverageUSD: 20_000_000,
		},
		Governance: &types.Governance{
			HasGovernance:  true,
			GovernanceType: "dao",
			Description:    "COMP token governance",
		},
	},

	// --- Morpho ecosystem ---

	"morpho": {
		Name:            "Morpho",
		Slug:            "morpho",
		TeamStatus:      types.TeamDoxxed,
		TeamDescription: "Led by Paul Frambot, Merlin Egalite, Mathis Gontier Delaunay",
		Auditors: []types.Auditor{
			{Name: "Spearbit", Tier: 1},
			{Name: "Cantina", Tier: 2},
			{Name: "ChainSecurity", Tier: 1},
		},
		Insurance: &types.Insurance{
			Provider:    "Nexus Mutual",
			CoverageUSD: 10_000_000,
		},
		Governance: &types.Governance{
			HasGovernance:  true,
			GovernanceType: "dao",
		},
	},

	"morpho-blue": {
		Name:            "Morpho Blue",
		Slug:            "morpho-blue",
		TeamStatus:      types.TeamDoxxed,
		TeamDescription: "Same team as Morpho",
		Auditors: []types.Auditor{
			{Name: "Spearbit", Tier: 1},
			{Name: "Cantina", Tier: 2},
			{Name: "Certora", Tier: 2},
		},
		Insurance: &types.Insurance{
			Provider:    "Nexus Mutual",
			CoverageUSD: 15_000_000,
		},
		Governance: &types.Governance{
			HasGovernance:  true,
			GovernanceType: "dao",
		},
	},

	// --- Maker/Sky ecosystem ---

	"spark": {
		Name:            "Spark",
		Slug:            "spark",
		TeamStatus:      types.TeamDoxxed,
		TeamDescription: "Part of MakerDAO/Sky ecosystem",
		Auditors: []types.Auditor{
			{Name: "ChainSecurity", Tier: 1},
			{Name: "OpenZeppelin", Tier: 1},
		},
		Governance: &types.Governance{
			HasGovernance:  true,
			GovernanceType: "dao",
			Description:    "Governed by MakerDAO",
		},
	},

	// --- Established protocols ---

	"fluid": {
		Name:            "Fluid",
		Slug:            "fluid",
		TeamStatus:      types.TeamDoxxed,
		TeamDescription: "Built by Instadapp team",
		Auditors: []types.Auditor{
			{Name: "Certik", Tier: 2},
			{Name: "PeckShield", Tier: 2},
		},
		Governance: &types.Governance{
			HasGovernance: false,
		},
	},

	"euler-v2": {
		Name:       "Euler V2",
		Slug:       "euler-v2",
		TeamStatus: types.TeamDoxxed,
		Auditors: []types.Auditor{
			{Name: "Spearbit", Tier: 1},
			{Name: "Certora", Tier: 2},
		},
		Governance: &types.Governance{
			HasGovernance:  true,
			GovernanceType: "dao",
		},
	},

	"silo-v2": {
		Name:       "Silo V2",
		Slug:       "silo-v2",
		TeamStatus: types.TeamDoxxed,
		Auditors: []types.Auditor{
			{Name: "Quantstamp", Tier: 2},
		},
		Governance: &types.Governance{
			HasGovernance:  true,
			GovernanceType: "dao",
		},
	},

	"venus": {
		Name:       "Venus",
		Slug:       "venus",
		TeamStatus: types.TeamDoxxed,
		Auditors: []types.Auditor{
			{Name: "Certik", Tier: 2},
			{Name: "PeckShield", Tier: 2},
			{Name: "Hacken", Tier: 3},
		},
		Governance: &types.Governance{
			HasGovernance:  true,
			GovernanceType: "dao",
		},
	},

	"benqi": {
		Name:       "Benqi",
		Slug:       "benqi",
		Aliases:    []string{"benqi-lending"},
		TeamStatus: types.TeamDoxxed,
		Auditors: []types.Auditor{
			{Name: "Halborn", Tier: 2},
		},
		Governance: &types.Governance{
			HasGovernance:  true,
			GovernanceType: "dao",
		},
	},

	// --- Solana ecosystem ---

	"kamino": {
		Name:       "Kamino",
		Slug:       "kamino",
		Aliases:    []string{"kamino-lending"},
		TeamStatus: types.TeamDoxxed,
		Auditors: []types.Auditor{
			{Name: "OtterSec", Tier: 2},
		},
		Governance: &types.Governance{
			HasGovernance: false,
		},
	},

	"marginfi": {
		Name:       "MarginFi",
		Slug:       "marginfi",
		TeamStatus: types.TeamAnonymous,
		Auditors: []types.Auditor{
			{Name: "OtterSec", Tier: 2},
		},
		Governance: &types.Governance{
			HasGovernance: false,
		},
	},

	"jupiter-lend": {
		Name:            "Jupiter Lend",
		Slug:            "jupiter-lend",
		TeamStatus:      types.TeamDoxxed,
		TeamDescription: "Built by Jupiter team (Meow, public)",
		Auditors: []types.Auditor{
			{Name: "OtterSec", Tier: 2},
			{Name: "Offside Labs", Tier: 3},
		},
		Governance: &types.Governance{
			HasGovernance: false,
		},
	},

	"drift": {
		Name:       "Drift",
		Slug:       "drift",
		TeamStatus: types.TeamDoxxed,
		Auditors: []types.Auditor{
			{Name: "OtterSec", Tier: 2},
		},
		Governance: &types.Governance{
			HasGovernance: false,
		},
	},

	"solend": {
		Name:       "Solend",
		Slug:       "solend",
		TeamStatus: types.TeamAnonymous,
		Auditors: []types.Auditor{
			{Name: "OtterSec", Tier: 2},
		},
		Governance: &types.Governance{
			HasGovernance:  true,
			GovernanceType: "dao",
		},
	},

	// --- Credit markets ---

	"maple": {
		Name:       "Maple",
		Slug:       "maple",
		TeamStatus: types.TeamDoxxed,
		Auditors: []types.Auditor{
			{Name: "Trail of Bits", Tier: 1},
		},
		Governance: &types.Governance{
			HasGovernance:  true,
			GovernanceType: "dao",
		},
	},

	"lagoon": {
		Name:            "Lagoon",
		Slug:            "lagoon",
		TeamStatus:      types.TeamVerified,
		TeamDescription: "Verified by Yiield team",
		Auditors: []types.Auditor{
			{Name: "Sherlock", Tier: 3},
		},
		Governance: &types.Governance{
			HasGovernance: false,
		},
		Notes: "Verified by Yiield",
	},

	"wildcat": {
		Name:            "Wildcat",
		Slug:            "wildcat",
		TeamStatus:      types.TeamVerified,
		TeamDescription: "Verified by Yiield team",
		Auditors: []types.Auditor{
			{Name: "Code4rena", Tier: 3},
		},
		Governance: &types.Governance{
			HasGovernance: false,
		},
		Notes: "Verified by Yiield",
	},

	// --- Vault managers ---

	"steakhouse": {
		Name:            "Steakhouse",
		Slug:            "steakhouse",
		TeamStatus:      types.TeamDoxxed,
		TeamDescription: "Founded by Sébastien Derivaux",
		Auditors: []types.Auditor{
			{Name: "ChainSecurity", Tier: 1},
		},
		Governance: &types.Governance{
			HasGovernance: false,
		},
	},

	"concrete": {
		Name:       "Concrete",
		Slug:       "concrete",
		TeamStatus: types.TeamDoxxed,
		Auditors: []types.Auditor{
			{Name: "Cyfrin", Tier: 2},
		},
		Governance: &types.Governance{
			HasGovernance: false,
		},
	},

	"veda": {
		Name:       "Veda",
		Slug:       "veda",
		TeamStatus: types.TeamDoxxed,
		Auditors: []types.Auditor{
			{Name: "Certik", Tier: 2},
		},
		Governance: &types.Governance{
			HasGovernance: false,
		},
	},

	"radiant-v2": {
		Name:       "Radiant V2",
		Slug:       "radiant-v2",
		TeamStatus: types.TeamAnonymous,
		Auditors: []types.Auditor{
			{Name: "PeckShield", Tier: 2},
			{Name: "Blocksec", Tier: 2},
		},
		Governance: &types.Governance{
			HasGovernance:  true,
			GovernanceType: "dao",
		},
	},

	"ajna": {
		Name:       "Ajna",
		Slug:       "ajna",
		TeamStatus: types.TeamDoxxed,
		Auditors: []types.Auditor{
			{Name: "Sherlock", Tier: 3},
		},
		Governance: &types.Governance{
			HasGovernance:  true,
			GovernanceType: "dao",
		},
	},

	"cap-money": {
		Name:            "Cap Money",
		Slug:            "cap-money",
		Aliases:         []string{"cap"},
		TeamStatus:      types.TeamVerified,
		TeamDescription: "Verified by Yiield team",
		Auditors: []types.Auditor{
			{Name: "Sherlock", Tier: 3},
		},
		Governance: &types.Governance{
			HasGovernance: false,
		},
		Notes: "Verified by Yiield",
	},

	"dolomite": {
		Name:       "Dolomite",
		Slug:       "dolomite",
		TeamStatus: types.TeamDoxxed,
		Auditors: []types.Auditor{
			{Name: "Quantstamp", Tier: 2},
		},
		Governance: &types.Governance{
			HasGovernance: false,
		},
	},

	"mellow": {
		Name:       "Mellow",
		Slug:       "mellow",
		TeamStatus: types.TeamDoxxed,
		Auditors: []types.Auditor{
			{Name: "MixBytes", Tier: 2},
		},
		Governance: &types.Governance{
			HasGovernance: false,
		},
	},
}

// slugIndex maps every accepted identifier (canonical slug or alias) to its
// record. Built once at init.
var slugIndex map[string]*types.ProtocolRecord

func init() {
	slugIndex = make(map[string]*types.ProtocolRecord, len(protocols))
	for slug, record := range protocols {
		slugIndex[slug] = record
		for _, alias := range record.Aliases {
			slugIndex[alias] = record
		}
	}
}

// Lookup returns the record registered under the given slug or alias.
// It performs no normalization; use Resolve for upstream protocol names.
func Lookup(slug string) (*types.ProtocolRecord, bool) {
	record, ok := slugIndex[slug]
	return record, ok
}

// Slugs returns the canonical slugs of all registered protocols, sorted.
func Slugs() []string {
	slugs := make([]string, 0, len(protocols))
	for slug := range protocols {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// All returns every registered protocol record, ordered by canonical slug.
func All() []*types.ProtocolRecord {
	records := make([]*types.ProtocolRecord, 0, len(protocols))
	for _, slug := range Slugs() {
		records = append(records, protocols[slug])
	}
	return records
}
