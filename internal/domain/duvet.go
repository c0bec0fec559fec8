package domain

import "time"

// Category is the canonical duvet category. Variant type labels in the
// catalog are free text and must be normalized before comparing against a
// Category.
type Category string

const (
	CategorySummer  Category = "Sommerdyne"
	CategoryWinter  Category = "Vinterdyne"
	CategoryAllYear Category = "Helårsdyne"
	CategoryNone    Category = "" // no preference
)

// Insulation is the warmth level of a variant. Unlike the type label it is a
// closed set in the catalog data.
type Insulation string

const (
	InsulationCool      Insulation = "Sval"
	InsulationWarm      Insulation = "Varm"
	InsulationExtraWarm Insulation = "Ekstra varm"
	InsulationNone      Insulation = "" // no preference
)

// PriceBand names one of the storefront's fixed price buckets.
type PriceBand string

const (
	PriceBandBudget PriceBand = "0-2000"
	PriceBandMid    PriceBand = "2000-3500"
	PriceBandUpper  PriceBand = "3500-5000"
	PriceBandLuxury PriceBand = "24000+"
	PriceBandNone   PriceBand = "" // no preference
)

// AllergyPreference captures whether the user needs an allergy-friendly duvet.
type AllergyPreference string

const (
	AllergyRequired    AllergyPreference = "allergy_friendly"
	AllergyNotRequired AllergyPreference = "not_allergy_friendly"
	AllergyNone        AllergyPreference = "" // no preference
)

// Filling is the user's preferred down type.
type Filling string

const (
	FillingMuskDown  Filling = "musk_down"
	FillingEiderDown Filling = "eider_down"
	FillingNone      Filling = "" // no preference
)

// Variant is one purchasable size/insulation/price configuration of a duvet.
type Variant struct {
	ID         string     `json:"id"`
	SKU        string     `json:"sku,omitempty"`
	Length     int        `json:"length"`
	Width      int        `json:"width"`
	Price      float64    `json:"price"`
	Currency   string     `json:"currency,omitempty"`
	Type       string     `json:"type"` // raw category label, not canonical
	Insulation Insulation `json:"insulation"`
}

// Duvet is one catalog item. The catalog is loaded once and never mutated by
// the engine; every Duvet carries at least one Variant (enforced at
// ingestion).
type Duvet struct {
	ID              string    `json:"id"`
	SKU             string    `json:"sku,omitempty"`
	Slug            string    `json:"slug,omitempty"`
	Brand           string    `json:"brand"`
	Name            string    `json:"name"`
	Images          []string  `json:"images,omitempty"`
	AllergyFriendly bool      `json:"allergyFriendly"`
	Certifications  []string  `json:"certifications,omitempty"`
	Fillings        string    `json:"fillings"`
	Properties      []string  `json:"properties,omitempty"`
	Quality         string    `json:"quality"`
	Rating          float64   `json:"rating"`
	YearsWarranty   int       `json:"years_warranty"`
	Variants        []Variant `json:"variants"`
}

// Preferences is the finalized answer set from the five wizard steps. An
// empty field means the user expressed no preference for that step.
type Preferences struct {
	Category   Category          `json:"category"`
	Allergy    AllergyPreference `json:"allergy"`
	Filling    Filling           `json:"filling"`
	Insulation Insulation        `json:"insulation"`
	PriceBand  PriceBand         `json:"priceBand"`
}

// MatchResult is one scored catalog item. Exact is true exactly when
// MismatchReasons is empty.
type MatchResult struct {
	Duvet           Duvet    `json:"duvet"`
	Score           int      `json:"-"`
	Exact           bool     `json:"exact"`
	MismatchReasons []string `json:"mismatchReasons,omitempty"`
}

// Recommendation is one finalist prepared for display: the match outcome plus
// the variant the user can buy by default and the list open for manual
// selection.
type Recommendation struct {
	Duvet             Duvet     `json:"duvet"`
	Exact             bool      `json:"exact"`
	MismatchReasons   []string  `json:"mismatchReasons,omitempty"`
	MatchReasons      []string  `json:"matchReasons,omitempty"`
	DefaultVariant    Variant   `json:"defaultVariant"`
	VariantFallback   bool      `json:"variantFallback"`
	AvailableVariants []Variant `json:"availableVariants"`
}

// FieldDiff is one row of the finalist comparison table.
type FieldDiff struct {
	Label string `json:"label"`
	A     string `json:"a"`
	B     string `json:"b"`
}

// RecommendationSet is the full result payload for a completed wizard run.
// Differences and VerySimilar are only populated when there are two
// finalists.
type RecommendationSet struct {
	Recommendations []Recommendation `json:"recommendations"`
	Differences     []FieldDiff      `json:"differences,omitempty"`
	VerySimilar     bool             `json:"verySimilar"`
}

// WeatherReading is the cached outcome of a weather-based category lookup.
type WeatherReading struct {
	City        string    `json:"city"`
	Temperature float64   `json:"temperature"`
	Recommended Category  `json:"recommendedCategory"`
	FetchedAt   time.Time `json:"fetchedAt,omitempty"`
}

// ParseCategory maps a wire value to a Category. Unrecognized input counts as
// no preference; the engine itself never validates.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategorySummer, CategoryWinter, CategoryAllYear:
		return Category(s)
	}
	return CategoryNone
}

// ParseInsulation maps a wire value to an Insulation level.
func ParseInsulation(s string) Insulation {
	switch Insulation(s) {
	case InsulationCool, InsulationWarm, InsulationExtraWarm:
		return Insulation(s)
	}
	return InsulationNone
}

// ParsePriceBand maps a wire value to a PriceBand.
func ParsePriceBand(s string) PriceBand {
	switch PriceBand(s) {
	case PriceBandBudget, PriceBandMid, PriceBandUpper, PriceBandLuxury:
		return PriceBand(s)
	}
	return PriceBandNone
}

// ParseAllergyPreference maps a wire value to an AllergyPreference.
func ParseAllergyPreference(s string) AllergyPreference {
	switch AllergyPreference(s) {
	case AllergyRequired, AllergyNotRequired:
		return AllergyPreference(s)
	}
	return AllergyNone
}

// ParseFilling maps a wire value to a Filling.
func ParseFilling(s string) Filling {
	switch Filling(s) {
	case FillingMuskDown, FillingEiderDown:
		return Filling(s)
	}
	return FillingNone
}
