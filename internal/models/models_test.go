package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseStudyThemes(t *testing.T) {
	assert.Equal(t, []string{"Growth", "Retention"}, CaseStudy{Theme: " Growth ,, Retention,"}.Themes())
	assert.Nil(t, CaseStudy{}.Themes())
}

func TestFilterStateWithAndValues(t *testing.T) {
	var s FilterState
	assert.False(t, s.HasActive())

	updated := s.With(FacetStates, []string{"NSW"})
	assert.Equal(t, []string{"NSW"}, updated.Values(FacetStates))
	assert.Empty(t, s.States)
	assert.True(t, updated.HasActive())
}

func TestFilterStateNormalized(t *testing.T) {
	s := FilterState{Brands: []string{"Belle"}}.Normalized()
	for _, f := range Facets {
		assert.NotNil(t, s.Values(f), f)
	}
	assert.Equal(t, []string{"Belle"}, s.Brands)
}

func TestFacetValid(t *testing.T) {
	assert.True(t, FacetLegacySystems.Valid())
	assert.False(t, Facet("colour").Valid())
}

func TestParseLegacySystemCategory(t *testing.T) {
	cat, ok := ParseLegacySystemCategory("Property Tree")
	assert.True(t, ok)
	assert.Equal(t, LegacyPropertyTree, cat)

	_, ok = ParseLegacySystemCategory("property tree")
	assert.False(t, ok)
}
