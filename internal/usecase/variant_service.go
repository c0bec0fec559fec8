package usecase

import (
	"sort"

	"github.com/duvetfinder/backend/internal/domain"
)

// DefaultVariant picks the variant displayed and purchasable by default: the
// cheapest variant satisfying all active filters, or the cheapest variant
// overall when none do. The second return value is false for that fallback,
// so the UI can mark the pick as non-exact. Assumes a non-empty variant list;
// the catalog repository enforces this at ingestion.
func DefaultVariant(d domain.Duvet, p domain.Preferences) (domain.Variant, bool) {
	candidates := filterVariants(d.Variants, func(v domain.Variant) bool {
		return matchesFilters(v, p)
	})
	if len(candidates) > 0 {
		return cheapest(candidates), true
	}
	return cheapest(d.Variants), false
}

// SelectVariant resolves an explicit user pick by variant ID. Selection is
// idempotent and has no effect on scoring.
func SelectVariant(d domain.Duvet, variantID string) (domain.Variant, error) {
	for _, v := range d.Variants {
		if v.ID == variantID {
			return v, nil
		}
	}
	return domain.Variant{}, domain.ErrVariantNotFound
}

// AvailableVariants lists the variants offered for manual selection: those
// matching the insulation filter (all of them when it is empty), ordered by
// ascending price.
func AvailableVariants(d domain.Duvet, ins domain.Insulation) []domain.Variant {
	out := filterVariants(d.Variants, func(v domain.Variant) bool {
		return ins == domain.InsulationNone || v.Insulation == ins
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out
}

// matchesFilters is the selector-side predicate: every criterion is skipped
// when its preference is empty, unlike the scoring engine's exact-variant
// predicate.
func matchesFilters(v domain.Variant, p domain.Preferences) bool {
	if p.PriceBand != domain.PriceBandNone && !PriceInBand(v.Price, p.PriceBand) {
		return false
	}
	if p.Category != domain.CategoryNone && !categoryMatches(v, p.Category) {
		return false
	}
	if p.Insulation != domain.InsulationNone && v.Insulation != p.Insulation {
		return false
	}
	return true
}

func filterVariants(variants []domain.Variant, match func(domain.Variant) bool) []domain.Variant {
	var out []domain.Variant
	for _, v := range variants {
		if match(v) {
			out = append(out, v)
		}
	}
	return out
}

// cheapest returns the lowest-priced variant, keeping the first on ties.
func cheapest(variants []domain.Variant) domain.Variant {
	best := variants[0]
	for _, v := range variants[1:] {
		if v.Price < best.Price {
			best = v
		}
	}
	return best
}
