package usecase

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/duvetfinder/backend/internal/domain"
)

// Field labels used in the finalist comparison table.
const (
	DiffLabelFill           = "Fill"
	DiffLabelAllergy        = "Allergy friendly"
	DiffLabelQuality        = "Quality"
	DiffLabelWarranty       = "Warranty"
	DiffLabelRating         = "Rating"
	DiffLabelCertifications = "Certifications"
	DiffLabelProperties     = "Properties"
)

// Differences compares the two finalists field by field, in fixed display
// order. Fields with equal values are omitted; an empty result means the
// items are near-identical and the caller renders a similarity notice instead
// of a table. Certification and property lists compare order-sensitively.
func Differences(a, b domain.Duvet) []domain.FieldDiff {
	var diffs []domain.FieldDiff

	if a.Fillings != b.Fillings {
		diffs = append(diffs, domain.FieldDiff{Label: DiffLabelFill, A: a.Fillings, B: b.Fillings})
	}
	if a.AllergyFriendly != b.AllergyFriendly {
		diffs = append(diffs, domain.FieldDiff{
			Label: DiffLabelAllergy,
			A:     yesNo(a.AllergyFriendly),
			B:     yesNo(b.AllergyFriendly),
		})
	}
	if a.Quality != b.Quality {
		diffs = append(diffs, domain.FieldDiff{Label: DiffLabelQuality, A: a.Quality, B: b.Quality})
	}
	if a.YearsWarranty != b.YearsWarranty {
		diffs = append(diffs, domain.FieldDiff{
			Label: DiffLabelWarranty,
			A:     fmt.Sprintf("%d years", a.YearsWarranty),
			B:     fmt.Sprintf("%d years", b.YearsWarranty),
		})
	}
	if a.Rating != b.Rating {
		diffs = append(diffs, domain.FieldDiff{
			Label: DiffLabelRating,
			A:     strconv.FormatFloat(a.Rating, 'f', -1, 64),
			B:     strconv.FormatFloat(b.Rating, 'f', -1, 64),
		})
	}
	if !slices.Equal(a.Certifications, b.Certifications) {
		diffs = append(diffs, domain.FieldDiff{
			Label: DiffLabelCertifications,
			A:     strings.Join(a.Certifications, ", "),
			B:     strings.Join(b.Certifications, ", "),
		})
	}
	if !slices.Equal(a.Properties, b.Properties) {
		diffs = append(diffs, domain.FieldDiff{
			Label: DiffLabelProperties,
			A:     strings.Join(a.Properties, ", "),
			B:     strings.Join(b.Properties, ", "),
		})
	}

	return diffs
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
