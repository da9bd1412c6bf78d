package models

// Facet names one independently filterable dimension.
type Facet string

const (
	FacetThemes        Facet = "themes"
	FacetBrands        Facet = "brands"
	FacetStates        Facet = "states"
	FacetAgencySizes   Facet = "agencySizes"
	FacetLegacySystems Facet = "legacySystems"
)

// Facets lists every facet in display order.
var Facets = []Facet{FacetThemes, FacetBrands, FacetStates, FacetAgencySizes, FacetLegacySystems}

// Valid reports whether f is a known facet.
func (f Facet) Valid() bool {
	for _, known := range Facets {
		if f == known {
			return true
		}
	}
	return false
}

// FilterState holds the selected values per facet. An empty facet is unrestricted.
// The legacySystems facet stores raw sheet values, never category names.
type FilterState struct {
	Themes        []string `json:"themes"`
	Brands        []string `json:"brands"`
	States        []string `json:"states"`
	AgencySizes   []string `json:"agencySizes"`
	LegacySystems []string `json:"legacySystems"`
}

// Values returns the selection for a facet.
func (s FilterState) Values(f Facet) []string {
	switch f {
	case FacetThemes:
		return s.Themes
	case FacetBrands:
		return s.Brands
	case FacetStates:
		return s.States
	case FacetAgencySizes:
		return s.AgencySizes
	case FacetLegacySystems:
		return s.LegacySystems
	}
	return nil
}

// With returns a copy of s with the facet selection replaced.
func (s FilterState) With(f Facet, values []string) FilterState {
	switch f {
	case FacetThemes:
		s.Themes = values
	case FacetBrands:
		s.Brands = values
	case FacetStates:
		s.States = values
	case FacetAgencySizes:
		s.AgencySizes = values
	case FacetLegacySystems:
		s.LegacySystems = values
	}
	return s
}

// HasActive reports whether any facet restricts the result set.
func (s FilterState) HasActive() bool {
	for _, f := range Facets {
		if len(s.Values(f)) > 0 {
			return true
		}
	}
	return false
}

// Normalized returns s with nil selections replaced by empty slices so it encodes as arrays.
func (s FilterState) Normalized() FilterState {
	for _, f := range Facets {
		if s.Values(f) == nil {
			s = s.With(f, []string{})
		}
	}
	return s
}

// FilterOptions is the set of selectable values derived from the current records.
type FilterOptions struct {
	Themes                 []string               `json:"themes"`
	Brands                 []string               `json:"brands"`
	States                 []string               `json:"states"`
	AgencySizes            []string               `json:"agencySizes"`
	LegacySystems          []string               `json:"legacySystems"`
	LegacySystemCategories []LegacySystemCategory `json:"legacySystemCategories"`
}

// Values returns the available options of a facet. LegacySystems yields raw values.
func (o FilterOptions) Values(f Facet) []string {
	switch f {
	case FacetThemes:
		return o.Themes
	case FacetBrands:
		return o.Brands
	case FacetStates:
		return o.States
	case FacetAgencySizes:
		return o.AgencySizes
	case FacetLegacySystems:
		return o.LegacySystems
	}
	return nil
}

// FilterActionType enumerates the updates a client can apply to a FilterState.
type FilterActionType string

const (
	FilterActionToggle         FilterActionType = "toggle"
	FilterActionSelectAll      FilterActionType = "selectAll"
	FilterActionClear          FilterActionType = "clear"
	FilterActionClearAll       FilterActionType = "clearAll"
	FilterActionToggleCategory FilterActionType = "toggleCategory"
	FilterActionToggleNoValue  FilterActionType = "toggleNoValue"
)

// FilterAction is one explicit user update to a FilterState.
type FilterAction struct {
	Type     FilterActionType `json:"type"`
	Facet    Facet            `json:"facet,omitempty"`
	Value    string           `json:"value,omitempty"`
	Category string           `json:"category,omitempty"`
}
