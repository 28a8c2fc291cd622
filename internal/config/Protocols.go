/*

This file contains the static ingestion tables: which protocols, chains and
stablecoins are allowed into the pool universe, plus the per-protocol facts
(audit count, launch year, exploit history) the base security score is
computed from.

These tables gate what gets listed at all; the due-diligence registry in
internal/registry is a separate, smaller dataset that only affects the bonus
layer.

*/

package config

// ProtocolType distinguishes money markets from managed vaults.
type ProtocolType string

const (
	ProtocolLending ProtocolType = "lending"
	ProtocolVault   ProtocolType = "vault"
)

// ProtocolFacts holds the ingestion-time facts for one allowed protocol,
// keyed by the upstream project slug.
type ProtocolFacts struct {
	Type       ProtocolType
	Name       string
	Audits     int
	LaunchYear int
	Exploits   int
	// ExcludedDueToExploit marks protocols with a major unremediated
	// incident; their pools are never listed regardless of score.
	ExcludedDueToExploit bool
	EarnURL              string
	Logo                 string
}

// AllowedProtocols is the full set of protocols eligible for listing.
// Some protocols appear under more than one upstream slug (e.g. "benqi" and
// "benqi-lending"); each slug gets its own row so lookup stays a direct map
// access on the raw project field.
var AllowedProtocols = map[string]ProtocolFacts{
	// --- Lending protocols ---
	"aave-v3": {
		Type: ProtocolLending, Name: "Aave V3",
		Audits: 5, LaunchYear: 2022, Exploits: 0,
		EarnURL: "https://app.aave.com/",
		Logo:    "https://icons.llama.fi/aave-v3.png",
	},
	"aave-v2": {
		Type: ProtocolLending, Name: "Aave V2",
		Audits: 4, LaunchYear: 2020, Exploits: 0,
		EarnURL: "https://app.aave.com/",
		Logo:    "https://icons.llama.fi/aave-v2.png",
	},
	"compound-v3": {
		Type: ProtocolLending, Name: "Compound V3",
		Audits: 3, LaunchYear: 2022, Exploits: 0,
		EarnURL: "https://app.compound.finance/markets",
		Logo:    "https://icons.llama.fi/compound-v3.png",
	},
	"morpho": {
		Type: ProtocolLending, Name: "Morpho",
		Audits: 3, LaunchYear: 2022, Exploits: 0,
		EarnURL: "https://app.morpho.org/",
		Logo:    "https://icons.llama.fi/morpho.png",
	},
	"morpho-blue": {
		Type: ProtocolLending, Name: "Morpho Blue",
		Audits: 3, LaunchYear: 2024, Exploits: 0,
		EarnURL: "https://app.morpho.org/",
		Logo:    "https://icons.llama.fi/morpho-blue.png",
	},
	"spark": {
		Type: ProtocolLending, Name: "Spark",
		Audits: 3, LaunchYear: 2023, Exploits: 0,
		EarnURL: "https://app.spark.fi/",
		Logo:    "https://icons.llama.fi/spark.png",
	},
	"fluid": {
		Type: ProtocolLending, Name: "Fluid",
		Audits: 2, LaunchYear: 2024, Exploits: 0,
		EarnURL: "https://fluid.instadapp.io/lending",
		Logo:    "https://icons.llama.fi/fluid.png",
	},
	// V2 relaunched after the V1 exploit; V1 is listed separately below as excluded.
	"euler": {
		Type: ProtocolLending, Name: "Euler V2",
		Audits: 3, LaunchYear: 2024, Exploits: 0,
		EarnURL: "https://app.euler.finance/",
		Logo:    "https://icons.llama.fi/euler.png",
	},
	"silo-v2": {
		Type: ProtocolLending, Name: "Silo V2",
		Audits: 2, LaunchYear: 2024, Exploits: 0,
		EarnURL: "https://app.silo.finance/",
		Logo:    "https://icons.llama.fi/silo-v2.png",
	},
	"silo": {
		Type: ProtocolLending, Name: "Silo",
		Audits: 2, LaunchYear: 2022, Exploits: 0,
		EarnURL: "https://app.silo.finance/",
		Logo:    "https://icons.llama.fi/silo.png",
	},
	"radiant-v2": {
		Type: ProtocolLending, Name: "Radiant V2",
		Audits: 2, LaunchYear: 2023, Exploits: 1, // January 2024, $4.5M
		EarnURL: "https://app.radiant.capital/",
		Logo:    "https://icons.llama.fi/radiant-v2.png",
	},
	"venus": {
		Type: ProtocolLending, Name: "Venus",
		Audits: 3, LaunchYear: 2020, Exploits: 1, // May 2021, oracle manipulation
		EarnURL: "https://app.venus.io/core-pool",
		Logo:    "https://icons.llama.fi/venus.png",
	},
	"benqi-lending": {
		Type: ProtocolLending, Name: "Benqi",
		Audits: 2, LaunchYear: 2021, Exploits: 0,
		EarnURL: "https://app.benqi.fi/markets",
		Logo:    "https://assets.coingecko.com/coins/images/16065/small/benqi.png",
	},
	"benqi": {
		Type: ProtocolLending, Name: "Benqi",
		Audits: 2, LaunchYear: 2021, Exploits: 0,
		EarnURL: "https://app.benqi.fi/markets",
		Logo:    "https://assets.coingecko.com/coins/images/16065/small/benqi.png",
	},
	"kamino-lending": {
		Type: ProtocolLending, Name: "Kamino",
		Audits: 2, LaunchYear: 2023, Exploits: 0,
		EarnURL: "https://app.kamino.finance/lending",
		Logo:    "https://icons.llama.fi/kamino-lending.png",
	},
	"marginfi": {
		Type: ProtocolLending, Name: "MarginFi",
		Audits: 2, LaunchYear: 2022, Exploits: 0,
		EarnURL: "https://app.marginfi.com/",
		Logo:    "https://icons.llama.fi/marginfi.png",
	},
	"ajna": {
		Type: ProtocolLending, Name: "Ajna",
		Audits: 3, LaunchYear: 2023, Exploits: 0,
		EarnURL: "https://app.ajna.finance/",
		Logo:    "https://icons.llama.fi/ajna.png",
	},

	// --- Vault managers ---
	"lagoon": {
		Type: ProtocolVault, Name: "Lagoon",
		Audits: 2, LaunchYear: 2024, Exploits: 0,
		EarnURL: "https://app.lagoon.finance/",
		Logo:    "https://pbs.twimg.com/profile_images/1729106339597271040/HnIxAGzf_400x400.jpg",
	},
	"wildcat": {
		Type: ProtocolVault, Name: "Wildcat",
		Audits: 2, LaunchYear: 2024, Exploits: 0,
		EarnURL: "https://app.wildcat.finance/",
		Logo:    "https://icons.llama.fi/wildcat.png",
	},
	"steakhouse": {
		Type: ProtocolVault, Name: "Steakhouse",
		Audits: 2, LaunchYear: 2023, Exploits: 0,
		EarnURL: "https://www.steakhouse.financial/",
		Logo:    "https://icons.llama.fi/steakhouse.png",
	},
	"veda": {
		Type: ProtocolVault, Name: "Veda",
		Audits: 2, LaunchYear: 2024, Exploits: 0,
		EarnURL: "https://www.veda.tech/",
		Logo:    "https://icons.llama.fi/veda.png",
	},
	"mellow": {
		Type: ProtocolVault, Name: "Mellow",
		Audits: 2, LaunchYear: 2024, Exploits: 0,
		EarnURL: "https://app.mellow.finance/",
		Logo:    "https://icons.llama.fi/mellow.png",
	},
	"ether.fi": {
		Type: ProtocolVault, Name: "Ether.fi",
		Audits: 3, LaunchYear: 2023, Exploits: 0,
		EarnURL: "https://app.ether.fi/",
		Logo:    "https://icons.llama.fi/ether.fi.png",
	},
	"etherfi": {
		Type: ProtocolVault, Name: "Ether.fi",
		Audits: 3, LaunchYear: 2023, Exploits: 0,
		EarnURL: "https://app.ether.fi/",
		Logo:    "https://icons.llama.fi/ether.fi.png",
	},
	"re7-labs": {
		Type: ProtocolVault, Name: "Re7 Labs",
		Audits: 2, LaunchYear: 2024, Exploits: 0,
		EarnURL: "https://www.re7.capital/",
		Logo:    "https://icons.llama.fi/re7-labs.png",
	},
	"smokehouse": {
		Type: ProtocolVault, Name: "Smokehouse",
		Audits: 1, LaunchYear: 2024, Exploits: 0,
		EarnURL: "https://smokehouse.finance/",
		Logo:    "https://icons.llama.fi/smokehouse.png",
	},

	// --- Excluded (major unremediated exploit or shutdown) ---
	"euler-v1": {
		Type: ProtocolLending, Name: "Euler V1",
		Audits: 2, LaunchYear: 2021, Exploits: 1,
		ExcludedDueToExploit: true, // $197M, March 2023; refunded but V1 closed
		Logo:                 "https://icons.llama.fi/euler.png",
	},
	"solend": {
		Type: ProtocolLending, Name: "Solend",
		Audits: 2, LaunchYear: 2021, Exploits: 2,
		ExcludedDueToExploit: true, // repeated governance and oracle incidents
		Logo:                 "https://icons.llama.fi/solend.png",
	},
	"agave": {
		Type: ProtocolLending, Name: "Agave",
		Audits: 2, LaunchYear: 2021, Exploits: 1,
		ExcludedDueToExploit: true, // $5.5M, March 2022, not refunded
		Logo:                 "https://icons.llama.fi/agave.png",
	},
}

// stablecoinAlias maps an upstream symbol fragment to its canonical
// stablecoin. Checked in order, most specific fragment first, so detection
// stays deterministic.
type stablecoinAlias struct {
	Fragment string
	Coin     string
}

// SupportedStablecoins lists the symbol fragments we accept, in match order.
var SupportedStablecoins = []stablecoinAlias{
	{"USDC.E", "USDC"},
	{"USDCE", "USDC"},
	{"USDC", "USDC"},
	{"USDT0", "USDT0"},
	{"USDT", "USDT"},
	{"SDAI", "DAI"},
	{"DAI", "DAI"},
	{"SUSDS", "USDS"},
	{"USDS", "USDS"},
	{"PYUSD", "PYUSD"},
	{"EUROE", "EURe"},
	{"EURE", "EURe"},
	{"EURC", "EURC"},
}

// StablecoinLogos by canonical stablecoin (CoinGecko / TrustWallet hosted).
var StablecoinLogos = map[string]string{
	"USDC":  "https://assets.coingecko.com/coins/images/6319/small/usdc.png",
	"USDT":  "https://assets.coingecko.com/coins/images/325/small/Tether.png",
	"USDT0": "https://assets.coingecko.com/coins/images/325/small/Tether.png",
	"DAI":   "https://assets.coingecko.com/coins/images/9956/small/dai-multi-collateral-mcd.png",
	"USDS":  "https://assets.coingecko.com/coins/images/39926/small/usds.webp",
	"PYUSD": "https://assets.coingecko.com/coins/images/31212/small/PYUSD_Logo_%282%29.png",
	"EURe":  "https://assets.coingecko.com/coins/images/23354/standard/eure.png",
	"EURC":  "https://assets.coingecko.com/coins/images/26045/small/euro-coin.png",
}

// StablecoinCurrency is the base fiat currency of each canonical stablecoin.
var StablecoinCurrency = map[string]string{
	"USDC":  "USD",
	"USDT":  "USD",
	"USDT0": "USD",
	"DAI":   "USD",
	"USDS":  "USD",
	"PYUSD": "USD",
	"EURe":  "EUR",
	"EURC":  "EUR",
}

// SupportedChains are the networks whose pools are listed.
var SupportedChains = []string{
	"Ethereum",
	"Arbitrum",
	"Optimism",
	"Base",
	"Polygon",
	"BSC",
	"Avalanche",
	"Solana",
	"Gnosis",
	"Linea",
}

// ChainLogos by chain name.
var ChainLogos = map[string]string{
	"Ethereum":  "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/ethereum/info/logo.png",
	"Arbitrum":  "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/arbitrum/info/logo.png",
	"Optimism":  "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/optimism/info/logo.png",
	"Base":      "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/base/info/logo.png",
	"Polygon":   "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/polygon/info/logo.png",
	"BSC":       "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/smartchain/info/logo.png",
	"Avalanche": "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/avalanchec/info/logo.png",
	"Solana":    "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/solana/info/logo.png",
	"Gnosis":    "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/xdai/info/logo.png",
	"Linea":     "https://assets.coingecko.com/coins/images/33286/small/linea-logo.png",
}

// IsSupportedChain reports whether the chain is in the allowed set.
func IsSupportedChain(chain string) bool {
	for _, supported := range SupportedChains {
		if supported == chain {
			return true
		}
	}
	return false
}
