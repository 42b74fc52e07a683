package market

// TokenRecord is one asset's market data as the provider returns it. Every
// field is optional in the response; absent numbers stay zero and an absent
// symbol is rendered as "N/A". Unknown fields in the payload are ignored.
type TokenRecord struct {
	Symbol        string  `json:"symbol"`
	Volume        float64 `json:"volume"`
	MarketCap     float64 `json:"market_cap"`
	Price         float64 `json:"price"`
	PercentChange float64 `json:"price_change_percentage_24h"`
}
