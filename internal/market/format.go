package market

import (
	"fmt"
	"math"
	"strconv"
)

// FormatVolume abbreviates a trading volume for display: billions and
// millions keep one decimal, thousands round to a whole "k", anything
// smaller is printed as-is.
func FormatVolume(volume float64) string {
	switch {
	case volume >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", volume/1_000_000_000)
	case volume >= 1_000_000:
		return fmt.Sprintf("%.1fM", volume/1_000_000)
	case volume >= 1_000:
		return strconv.FormatInt(int64(math.Round(volume/1_000)), 10) + "k"
	default:
		return strconv.FormatFloat(volume, 'f', -1, 64)
	}
}
