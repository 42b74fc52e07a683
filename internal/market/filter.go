package market

import (
	"fmt"
	"strconv"
)

// FilterTokens keeps the tokens whose market cap and 24h percent change both
// meet their thresholds (boundary equality counts) and formats each survivor
// as a display block. Provider ordering is preserved. Missing fields were
// decoded as zero, so a token without market-cap data never passes a positive
// threshold.
func FilterTokens(tokens []TokenRecord, minMarketCap, minPercentChange float64) []string {
	var found []string
	for _, token := range tokens {
		if token.MarketCap < minMarketCap || token.PercentChange < minPercentChange {
			continue
		}

		symbol := token.Symbol
		if symbol == "" {
			symbol = "N/A"
		}

		found = append(found, fmt.Sprintf("Token: %s\nPrice: $%s\nVolume: %s\nMarket Cap: %s\nChange: %.2f%%\n",
			symbol,
			strconv.FormatFloat(token.Price, 'f', -1, 64),
			FormatVolume(token.Volume),
			strconv.FormatFloat(token.MarketCap, 'f', -1, 64),
			token.PercentChange,
		))
	}
	return found
}
