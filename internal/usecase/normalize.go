package usecase

import (
	"strings"

	"github.com/duvetfinder/backend/internal/domain"
)

// Catalog type labels are free text; these are the stems that identify each
// canonical category, matched case-insensitively.
const (
	winterStem      = "vinter"
	summerStem      = "sommer"
	allYearStem     = "helår"
	allYearStemAlt  = "helars" // ASCII spelling found in older catalog entries
	genericTypeName = "dyne"   // bare generic label, sold as a winter duvet
)

// NormalizeCategory maps a raw variant type label onto a canonical category
// string. Labels matching no rule pass through unchanged, so they can never
// equal a canonical category in later comparisons. Idempotent.
func NormalizeCategory(raw string) string {
	s := strings.ToLower(raw)
	switch {
	case strings.Contains(s, winterStem) || s == genericTypeName:
		return string(domain.CategoryWinter)
	case strings.Contains(s, summerStem):
		return string(domain.CategorySummer)
	case strings.Contains(s, allYearStem) || strings.Contains(s, allYearStemAlt):
		return string(domain.CategoryAllYear)
	}
	return raw
}
