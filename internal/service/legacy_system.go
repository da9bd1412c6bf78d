package service

import (
	"strings"

	"github.com/noah-isme/casestudy-api/internal/models"
)

// legacySystemAliases maps lower-cased raw labels to their category. Anything absent is Other.
var legacySystemAliases = map[string]models.LegacySystemCategory{
	"console":           models.LegacyConsole,
	"console cloud":     models.LegacyConsole,
	"property tree":     models.LegacyPropertyTree,
	"propertytree":      models.LegacyPropertyTree,
	"propertyme":        models.LegacyPropertyme,
	"property me":       models.LegacyPropertyme,
	"rest":              models.LegacyREST,
	"rest professional": models.LegacyREST,
	"our property":      models.LegacyOurProperty,
	"ourproperty":       models.LegacyOurProperty,
	"managed":           models.LegacyManaged,
	"no system":         models.LegacyNoSystem,
	"none":              models.LegacyNoSystem,
	"n/a":               models.LegacyNoSystem,
	"":                  models.LegacyUnknown,
}

// NormalizeLegacySystem maps a free-text legacy system label to its canonical category.
func NormalizeLegacySystem(raw string) models.LegacySystemCategory {
	if cat, ok := legacySystemAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return cat
	}
	return models.LegacyOther
}

// ValuesForCategory returns the raw values in allRaw that normalize to category, in input order.
func ValuesForCategory(category models.LegacySystemCategory, allRaw []string) []string {
	values := make([]string, 0)
	for _, raw := range allRaw {
		if NormalizeLegacySystem(raw) == category {
			values = append(values, raw)
		}
	}
	return values
}

// AvailableCategories returns the categories with at least one member in allRaw, in display order.
func AvailableCategories(allRaw []string) []models.LegacySystemCategory {
	present := make(map[models.LegacySystemCategory]bool, len(models.LegacySystemCategories))
	for _, raw := range allRaw {
		present[NormalizeLegacySystem(raw)] = true
	}
	categories := make([]models.LegacySystemCategory, 0, len(present))
	for _, cat := range models.LegacySystemCategories {
		if present[cat] {
			categories = append(categories, cat)
		}
	}
	return categories
}
