/*

This is a custom type for yield pools which contains all the state needed for
scoring and display.

*/

package types

import "time"

type Pool struct {
	ID             string `json:"id"`               // Upstream pool identifier
	Protocol       string `json:"protocol"`         // Display name, e.g. "Aave V3"
	ProtocolLogo   string `json:"protocol_logo"`
	ProtocolType   string `json:"protocol_type"` // "lending" or "vault"
	Chain          string `json:"chain"`         // e.g. "Ethereum"
	ChainLogo      string `json:"chain_logo"`
	Symbol         string `json:"symbol"`     // Raw market symbol, e.g. "USDC"
	Stablecoin     string `json:"stablecoin"` // Canonical stablecoin, e.g. "USDC"
	StablecoinLogo string `json:"stablecoin_logo"`
	Currency       string `json:"currency"` // "USD" or "EUR"

	APY       float64 `json:"apy"`        // apy = apy_base + apy_reward
	APYBase   float64 `json:"apy_base"`
	APYReward float64 `json:"apy_reward"`
	TvlUSD    float64 `json:"tvl_usd"` // Total Value Locked in USD

	// Risk facts the base security score is derived from
	Audits          int `json:"audits"`
	ProtocolAgeDays int `json:"protocol_age_days"`
	Exploits        int `json:"exploits"`

	SecurityScore float64 `json:"security_score"` // Base 0-100 score
	YiieldScore   float64 `json:"yiield_score"`   // Security score plus capped bonuses

	PoolURL     string    `json:"pool_url"`
	LastUpdated time.Time `json:"last_updated"`
}
