package usecase

import (
	"log"
	"sort"
	"strings"

	"github.com/duvetfinder/backend/internal/domain"
)

// Score bonuses per criterion
const (
	allergyBonus      = 10 // allergy-friendly item when the user requires it
	eiderDownBonus    = 8  // fill text contains the eider-down term
	muskDownBonus     = 6  // fill text contains the musk-down term
	variantMatchBonus = 10 // one variant satisfies category, insulation and price together
	insulationBonus   = 3  // any variant offers the requested insulation
)

// Fill terms as they appear in catalog fill descriptions
const (
	eiderDownTerm = "edderdun"
	muskDownTerm  = "moskusdun"
)

// Mismatch reasons are engine output; presentation layers render them
// verbatim, so the exact wording is part of the contract.
const (
	ReasonNoEiderDown          = "does not contain eider-down"
	ReasonNoMuskDown           = "does not contain musk-down"
	ReasonNoCategoryVariant    = "no variant in selected category"
	ReasonNoInsulationVariant  = "no variant in selected insulation"
	ReasonNoPriceVariant       = "no variant in selected price range"
	ReasonNoTripleMatch        = "no variant matches selected category, insulation and price range"
	ReasonNoCategoryInsulation = "no variant matches both selected category and insulation"
	ReasonNoCategoryPrice      = "no variant matches both selected category and price range"
	ReasonNoInsulationPrice    = "no variant matches both selected insulation and price range"
)

const defaultMaxResults = 2

// MatchConfig holds configuration for the matching service
type MatchConfig struct {
	MaxResults         int
	EnableDebugLogging bool
}

// MatchingService scores catalog items against a preference set and ranks
// them. It is stateless: identical (catalog, preferences) inputs always yield
// identical results in identical order.
type MatchingService struct {
	maxResults         int
	enableDebugLogging bool
}

// NewMatchingService creates a new matching service with the given configuration
func NewMatchingService(config MatchConfig) *MatchingService {
	maxResults := config.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	return &MatchingService{
		maxResults:         maxResults,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Rank scores every catalog item against the preferences, orders by score
// descending (ties keep catalog order) and truncates to the configured
// maximum. An empty catalog yields an empty result.
func (s *MatchingService) Rank(duvets []domain.Duvet, prefs domain.Preferences) []domain.MatchResult {
	results := make([]domain.MatchResult, 0, len(duvets))

	for _, d := range duvets {
		score, reasons := s.scoreDuvet(d, prefs)

		if s.enableDebugLogging {
			log.Printf("[MATCH] %s | Score: %d | Mismatches: %v", d.Name, score, reasons)
		}

		results = append(results, domain.MatchResult{
			Duvet:           d,
			Score:           score,
			Exact:           len(reasons) == 0,
			MismatchReasons: reasons,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > s.maxResults {
		results = results[:s.maxResults]
	}
	return results
}

// scoreDuvet computes the relevance score and mismatch-reason list for one
// item. Pure function of (duvet, preferences).
func (s *MatchingService) scoreDuvet(d domain.Duvet, p domain.Preferences) (int, []string) {
	score := 0
	var reasons []string

	// 1. Allergy
	if p.Allergy == domain.AllergyRequired && d.AllergyFriendly {
		score += allergyBonus
	}

	// 2. Fill
	fill := strings.ToLower(d.Fillings)
	switch p.Filling {
	case domain.FillingEiderDown:
		if strings.Contains(fill, eiderDownTerm) {
			score += eiderDownBonus
		} else {
			reasons = append(reasons, ReasonNoEiderDown)
		}
	case domain.FillingMuskDown:
		if strings.Contains(fill, muskDownTerm) {
			score += muskDownBonus
		} else {
			reasons = append(reasons, ReasonNoMuskDown)
		}
	}

	// 3. Exact variant match across category, insulation and price
	if hasVariant(d, func(v domain.Variant) bool { return variantMatchesAll(v, p) }) {
		score += variantMatchBonus
	} else {
		reasons = append(reasons, mismatchReasons(d, p)...)
	}

	// 4. Secondary insulation bonus, independent of the other criteria
	if p.Insulation != domain.InsulationNone &&
		hasVariant(d, func(v domain.Variant) bool { return v.Insulation == p.Insulation }) {
		score += insulationBonus
	}

	return score, reasons
}

// variantMatchesAll is the exact-variant predicate behind the match bonus.
// The insulation and price terms are skipped when their preference is empty;
// the category term is compared literally even when the preference is empty.
// The variant selector's predicate (matchesFilters) guards all three.
func variantMatchesAll(v domain.Variant, p domain.Preferences) bool {
	return categoryMatches(v, p.Category) &&
		(p.Insulation == domain.InsulationNone || v.Insulation == p.Insulation) &&
		(p.PriceBand == domain.PriceBandNone || PriceInBand(v.Price, p.PriceBand))
}

// categoryMatches widens the all-year preference to any non-summer variant;
// every other preference requires the normalized label to match exactly.
func categoryMatches(v domain.Variant, c domain.Category) bool {
	if c == domain.CategoryAllYear {
		return NormalizeCategory(v.Type) != string(domain.CategorySummer)
	}
	return NormalizeCategory(v.Type) == string(c)
}

// presenceFlags captures, per item, which preferences are set and which of
// them at least one variant can satisfy, alone and in combination. They feed
// the mismatch rule tables below.
type presenceFlags struct {
	categorySet   bool
	insulationSet bool
	priceSet      bool

	hasCategory   bool
	hasInsulation bool
	hasPrice      bool

	hasCategoryInsulation bool
	hasCategoryPrice      bool
	hasInsulationPrice    bool
	hasAll                bool
}

// mismatchRule pairs a predicate over the presence flags with the message it
// emits.
type mismatchRule struct {
	applies func(f presenceFlags) bool
	message string
}

// singleCriterionRules all fire independently. Each message is suppressed
// when the other two preferences are both set, because a combined message
// covers that case.
var singleCriterionRules = []mismatchRule{
	{
		applies: func(f presenceFlags) bool {
			return f.categorySet && !f.hasCategory && !(f.insulationSet && f.priceSet)
		},
		message: ReasonNoCategoryVariant,
	},
	{
		applies: func(f presenceFlags) bool {
			return f.insulationSet && !f.hasInsulation && !(f.categorySet && f.priceSet)
		},
		message: ReasonNoInsulationVariant,
	},
	{
		applies: func(f presenceFlags) bool {
			return f.priceSet && !f.hasPrice && !(f.categorySet && f.insulationSet)
		},
		message: ReasonNoPriceVariant,
	},
}

// combinedRules are evaluated top to bottom and at most one fires. The
// pairwise rules require both single criteria to be individually satisfiable.
var combinedRules = []mismatchRule{
	{
		applies: func(f presenceFlags) bool {
			return f.categorySet && f.insulationSet && f.priceSet && !f.hasAll
		},
		message: ReasonNoTripleMatch,
	},
	{
		applies: func(f presenceFlags) bool {
			return f.categorySet && f.insulationSet && f.hasCategory && f.hasInsulation && !f.hasCategoryInsulation
		},
		message: ReasonNoCategoryInsulation,
	},
	{
		applies: func(f presenceFlags) bool {
			return f.categorySet && f.priceSet && f.hasCategory && f.hasPrice && !f.hasCategoryPrice
		},
		message: ReasonNoCategoryPrice,
	},
	{
		applies: func(f presenceFlags) bool {
			return f.insulationSet && f.priceSet && f.hasInsulation && f.hasPrice && !f.hasInsulationPrice
		},
		message: ReasonNoInsulationPrice,
	},
}

// mismatchReasons explains why no variant matched all active criteria. Only
// called when the exact-variant search failed.
func mismatchReasons(d domain.Duvet, p domain.Preferences) []string {
	f := computePresenceFlags(d, p)
	if !f.categorySet && !f.insulationSet && !f.priceSet {
		return nil
	}

	var reasons []string
	for _, rule := range singleCriterionRules {
		if rule.applies(f) {
			reasons = append(reasons, rule.message)
		}
	}
	for _, rule := range combinedRules {
		if rule.applies(f) {
			reasons = append(reasons, rule.message)
			break
		}
	}
	return reasons
}

// computePresenceFlags evaluates each active criterion against the item's
// variants, alone and pairwise. The single-criterion category check uses
// strict equality; only the combined checks widen the all-year preference.
func computePresenceFlags(d domain.Duvet, p domain.Preferences) presenceFlags {
	f := presenceFlags{
		categorySet:   p.Category != domain.CategoryNone,
		insulationSet: p.Insulation != domain.InsulationNone,
		priceSet:      p.PriceBand != domain.PriceBandNone,
	}

	if f.categorySet {
		f.hasCategory = hasVariant(d, func(v domain.Variant) bool {
			return NormalizeCategory(v.Type) == string(p.Category)
		})
	}
	if f.insulationSet {
		f.hasInsulation = hasVariant(d, func(v domain.Variant) bool {
			return v.Insulation == p.Insulation
		})
	}
	if f.priceSet {
		f.hasPrice = hasVariant(d, func(v domain.Variant) bool {
			return PriceInBand(v.Price, p.PriceBand)
		})
	}

	if f.categorySet && f.insulationSet {
		f.hasCategoryInsulation = hasVariant(d, func(v domain.Variant) bool {
			return categoryMatches(v, p.Category) && v.Insulation == p.Insulation
		})
	}
	if f.categorySet && f.priceSet {
		f.hasCategoryPrice = hasVariant(d, func(v domain.Variant) bool {
			return categoryMatches(v, p.Category) && PriceInBand(v.Price, p.PriceBand)
		})
	}
	if f.insulationSet && f.priceSet {
		f.hasInsulationPrice = hasVariant(d, func(v domain.Variant) bool {
			return v.Insulation == p.Insulation && PriceInBand(v.Price, p.PriceBand)
		})
	}
	if f.categorySet && f.insulationSet && f.priceSet {
		f.hasAll = hasVariant(d, func(v domain.Variant) bool {
			return categoryMatches(v, p.Category) && v.Insulation == p.Insulation && PriceInBand(v.Price, p.PriceBand)
		})
	}

	return f
}

// hasVariant reports whether any variant of the item satisfies the predicate.
func hasVariant(d domain.Duvet, match func(domain.Variant) bool) bool {
	for _, v := range d.Variants {
		if match(v) {
			return true
		}
	}
	return false
}

// findVariant returns the first variant satisfying the predicate, preserving
// catalog order.
func findVariant(d domain.Duvet, match func(domain.Variant) bool) (domain.Variant, bool) {
	for _, v := range d.Variants {
		if match(v) {
			return v, true
		}
	}
	return domain.Variant{}, false
}
