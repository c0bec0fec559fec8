package usecase

import "github.com/duvetfinder/backend/internal/domain"

// PriceInBand reports whether a price falls inside the named band. The band
// boundaries mirror the storefront's fixed buckets: prices strictly between
// 5000 and 24000 belong to no band, and 2000 sits on the edge of the first
// two. Both quirks are part of the catalog contract and must not be smoothed
// over.
func PriceInBand(price float64, band domain.PriceBand) bool {
	switch band {
	case domain.PriceBandBudget:
		return price <= 2000
	case domain.PriceBandMid:
		return price >= 2000 && price < 3500
	case domain.PriceBandUpper:
		return price >= 3500 && price <= 5000
	case domain.PriceBandLuxury:
		return price >= 24000
	}
	// No preference (or an unrecognized band) matches everything.
	return true
}
