package service

import (
	"sort"

	"github.com/noah-isme/casestudy-api/internal/models"
)

// ExtractOptions derives the distinct selectable values of every facet from records.
// String facets are sorted ordinally; legacy categories keep their display order.
func ExtractOptions(records []models.CaseStudy) models.FilterOptions {
	themes := make(map[string]struct{})
	brands := make(map[string]struct{})
	states := make(map[string]struct{})
	sizes := make(map[string]struct{})
	systems := make(map[string]struct{})

	for _, cs := range records {
		if cs.Brand != "" {
			brands[cs.Brand] = struct{}{}
		}
		if cs.State != "" {
			states[cs.State] = struct{}{}
		}
		if cs.AgencySize != "" && cs.AgencySize != models.AgencySizeNotApplicable {
			sizes[cs.AgencySize] = struct{}{}
		}
		for _, theme := range cs.Themes() {
			themes[theme] = struct{}{}
		}
		systems[cs.LegacySystem] = struct{}{}
	}

	rawSystems := sortedKeys(systems)
	return models.FilterOptions{
		Themes:                 sortedKeys(themes),
		Brands:                 sortedKeys(brands),
		States:                 sortedKeys(states),
		AgencySizes:            sortedKeys(sizes),
		LegacySystems:          rawSystems,
		LegacySystemCategories: AvailableCategories(rawSystems),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
