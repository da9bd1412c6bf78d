package service

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/casestudy-api/internal/models"
)

func TestExtractOptions(t *testing.T) {
	opts := ExtractOptions(fixtureCaseStudies())

	assert.Equal(t, []string{"Efficiency", "Growth", "Retention", "Trust"}, opts.Themes)
	assert.Equal(t, []string{"Belle Property", "Harcourts", "Independent", "McGrath", "Ray White"}, opts.Brands)
	assert.Equal(t, []string{"NSW", "QLD", "VIC", "WA"}, opts.States)
	assert.Equal(t, []string{"1000+ PUM", "400 - 1000 PUM", "Less than 400 PUM"}, opts.AgencySizes)
	assert.NotContains(t, opts.AgencySizes, "N/A")
	assert.Equal(t, []string{"", "Ailo", "Console", "Console Cloud", "PropertyMe"}, opts.LegacySystems)
	assert.Equal(t, []models.LegacySystemCategory{
		models.LegacyConsole,
		models.LegacyPropertyme,
		models.LegacyOther,
		models.LegacyUnknown,
	}, opts.LegacySystemCategories)
}

func TestExtractOptionsSortedAndUnique(t *testing.T) {
	records := append(fixtureCaseStudies(), fixtureCaseStudies()...)
	opts := ExtractOptions(records)

	for _, f := range []models.Facet{models.FacetThemes, models.FacetBrands, models.FacetStates, models.FacetAgencySizes} {
		values := opts.Values(f)
		assert.True(t, sort.StringsAreSorted(values), f)
		seen := map[string]bool{}
		for _, v := range values {
			assert.False(t, seen[v], "duplicate %q in %s", v, f)
			seen[v] = true
		}
	}
	assert.Equal(t, opts, ExtractOptions(records))
}

func TestExtractOptionsEmpty(t *testing.T) {
	opts := ExtractOptions(nil)
	assert.NotNil(t, opts.Themes)
	assert.NotNil(t, opts.LegacySystemCategories)
	assert.Empty(t, opts.Brands)
}
