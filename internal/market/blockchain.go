package market

import (
	"fmt"
	"net/url"
)

// Blockchain is one of the supported chains. Each value is bound to a fixed
// provider endpoint, see defaultEndpoints.
type Blockchain string

const (
	Ethereum Blockchain = "ethereum"
	Solana   Blockchain = "solana"
	BNB      Blockchain = "bnb"
	Polygon  Blockchain = "polygon"
	Sui      Blockchain = "sui"
)

var displayNames = map[Blockchain]string{
	Ethereum: "Ethereum",
	Solana:   "Solana",
	BNB:      "BNB",
	Polygon:  "Polygon",
	Sui:      "Sui",
}

// AllBlockchains returns the supported chains in menu order.
func AllBlockchains() []Blockchain {
	return []Blockchain{Ethereum, Solana, BNB, Polygon, Sui}
}

func ParseBlockchain(s string) (Blockchain, error) {
	chain := Blockchain(s)
	if _, ok := displayNames[chain]; !ok {
		return "", fmt.Errorf("unknown blockchain %q", s)
	}
	return chain, nil
}

func (b Blockchain) DisplayName() string {
	if name, ok := displayNames[b]; ok {
		return name
	}
	return string(b)
}

type endpoint struct {
	url    string
	params url.Values
}

// Thresholds collected from the user are never sent to the provider; the
// query parameters per chain are fixed and filtering happens client-side.
var defaultEndpoints = map[Blockchain]endpoint{
	Ethereum: {
		url: "https://api.coingecko.com/api/v3/coins/markets",
		params: url.Values{
			"vs_currency": {"usd"},
			"order":       {"market_cap_desc"},
			"per_page":    {"100"},
		},
	},
	BNB: {
		url: "https://api.coingecko.com/api/v3/coins/markets",
		params: url.Values{
			"vs_currency": {"usd"},
			"category":    {"bnb-chain"},
			"per_page":    {"100"},
		},
	},
	Polygon: {
		url: "https://api.coingecko.com/api/v3/coins/markets",
		params: url.Values{
			"vs_currency": {"usd"},
			"category":    {"polygon"},
			"per_page":    {"100"},
		},
	},
	Solana: {
		url:    "https://api.solscan.io/tokens",
		params: url.Values{"limit": {"100"}},
	},
	Sui: {
		url: "https://api.sui.mystenlabs.com/v1/tokens",
	},
}
