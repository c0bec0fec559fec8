package usecase

import (
	"fmt"
	"strings"

	"github.com/duvetfinder/backend/internal/domain"
)

// Property tag term identifying cooling/temperature-regulating duvets.
const coolingPropertyTerm = "kølende"

// MatchReasons builds the positive explanation list shown on a result card:
// why this item suits the user's answers. Like the mismatch reasons, the
// strings are rendered verbatim. The variant-availability phrases compare
// insulation strictly, so they only ever appear when the user picked an
// insulation level.
func MatchReasons(d domain.Duvet, p domain.Preferences) []string {
	var reasons []string

	if d.AllergyFriendly {
		reasons = append(reasons, "Allergy friendly")
	}

	fill := strings.ToLower(d.Fillings)
	if strings.Contains(fill, eiderDownTerm) {
		reasons = append(reasons, "Luxurious fill of Icelandic eider-down (highest quality)")
	} else if strings.Contains(fill, muskDownTerm) {
		reasons = append(reasons, "Filled with musk-down")
	}

	if v, ok := findVariant(d, func(v domain.Variant) bool {
		return categoryMatches(v, p.Category) && v.Insulation == p.Insulation
	}); ok {
		reasons = append(reasons,
			fmt.Sprintf("Available as a %s with %s insulation (fits your needs)", v.Type, v.Insulation))
	} else if hasVariant(d, func(v domain.Variant) bool { return v.Insulation == p.Insulation }) {
		reasons = append(reasons,
			fmt.Sprintf("Available in the requested %s insulation", p.Insulation))
	}

	for _, prop := range d.Properties {
		if strings.Contains(strings.ToLower(prop), coolingPropertyTerm) {
			reasons = append(reasons, "Has cooling and temperature-regulating properties")
			break
		}
	}

	return reasons
}
