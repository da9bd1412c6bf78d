package service

import (
	"strings"

	"github.com/noah-isme/casestudy-api/internal/models"
)

// Matches reports whether record passes every non-empty facet of filters.
// Within a facet any selected value suffices; across facets all must pass.
func Matches(record models.CaseStudy, filters models.FilterState) bool {
	if len(filters.Themes) > 0 && !anyThemeSelected(record, filters.Themes) {
		return false
	}
	if !facetPasses(record.Brand, filters.Brands) {
		return false
	}
	if !facetPasses(record.State, filters.States) {
		return false
	}
	if !facetPasses(record.AgencySize, filters.AgencySizes) {
		return false
	}
	return facetPasses(record.LegacySystem, filters.LegacySystems)
}

// FilterCaseStudies returns the records matching filters, preserving their order.
func FilterCaseStudies(records []models.CaseStudy, filters models.FilterState) []models.CaseStudy {
	matched := make([]models.CaseStudy, 0, len(records))
	for _, record := range records {
		if Matches(record, filters) {
			matched = append(matched, record)
		}
	}
	return matched
}

func facetPasses(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	return contains(selected, value)
}

// Pieces are trimmed but kept when empty, so a blank theme or a ", ," gap matches "".
func anyThemeSelected(record models.CaseStudy, selected []string) bool {
	for _, piece := range strings.Split(record.Theme, ",") {
		if contains(selected, strings.TrimSpace(piece)) {
			return true
		}
	}
	return false
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
