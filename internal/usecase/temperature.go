package usecase

import "github.com/duvetfinder/backend/internal/domain"

// Temperature thresholds (°C) for the weather-based category suggestion.
const (
	winterMaxTemp  = 5.0
	allYearMaxTemp = 15.0
)

// CategoryForTemperature suggests a duvet category for the current outdoor
// temperature: below 5°C winter, from 5°C up to but excluding 15°C all-year,
// otherwise summer.
func CategoryForTemperature(temp float64) domain.Category {
	if temp < winterMaxTemp {
		return domain.CategoryWinter
	}
	if temp < allYearMaxTemp {
		return domain.CategoryAllYear
	}
	return domain.CategorySummer
}
