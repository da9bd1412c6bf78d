package service

import (
	"fmt"

	"github.com/noah-isme/casestudy-api/internal/models"
	appErrors "github.com/noah-isme/casestudy-api/pkg/errors"
)

// ReduceFilterState applies action to state and returns the new state. The input is not modified.
// Selections not present in options are dropped first, so the result only holds available values.
func ReduceFilterState(state models.FilterState, action models.FilterAction, options models.FilterOptions) (models.FilterState, error) {
	state = PruneFilterState(state, options)

	switch action.Type {
	case models.FilterActionClearAll:
		return models.FilterState{}.Normalized(), nil

	case models.FilterActionToggleCategory:
		cat, ok := models.ParseLegacySystemCategory(action.Category)
		if !ok {
			return state, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown legacy system category %q", action.Category))
		}
		members := ValuesForCategory(cat, options.LegacySystems)
		if len(members) == 0 {
			return state, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("legacy system category %q has no case studies", action.Category))
		}
		return state.With(models.FacetLegacySystems, toggleAll(state.LegacySystems, members)).Normalized(), nil

	case models.FilterActionToggleNoValue:
		if action.Facet != models.FacetAgencySizes {
			return state, appErrors.Clone(appErrors.ErrValidation, "toggleNoValue only applies to agencySizes")
		}
		return state.With(models.FacetAgencySizes, toggle(state.AgencySizes, "")).Normalized(), nil
	}

	if !action.Facet.Valid() {
		return state, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown facet %q", action.Facet))
	}

	switch action.Type {
	case models.FilterActionToggle:
		if !contains(state.Values(action.Facet), action.Value) && !contains(options.Values(action.Facet), action.Value) {
			return state, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%q is not an available %s option", action.Value, action.Facet))
		}
		return state.With(action.Facet, toggle(state.Values(action.Facet), action.Value)).Normalized(), nil
	case models.FilterActionSelectAll, models.FilterActionClear:
		// Every value selected and none selected filter the same, and the
		// option lists omit N/A and blank values, so both reset the facet.
		return state.With(action.Facet, []string{}).Normalized(), nil
	}

	return state, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown filter action %q", action.Type))
}

// PruneFilterState drops selections that are no longer available in options.
// The "" agency size marker survives because it is never listed as an option.
func PruneFilterState(state models.FilterState, options models.FilterOptions) models.FilterState {
	for _, f := range models.Facets {
		current := state.Values(f)
		kept := make([]string, 0, len(current))
		for _, v := range current {
			if contains(options.Values(f), v) || (f == models.FacetAgencySizes && v == "") {
				if !contains(kept, v) {
					kept = append(kept, v)
				}
			}
		}
		state = state.With(f, kept)
	}
	return state
}

// IsCategorySelected reports whether every raw value of category is selected.
func IsCategorySelected(category models.LegacySystemCategory, state models.FilterState, options models.FilterOptions) bool {
	members := ValuesForCategory(category, options.LegacySystems)
	if len(members) == 0 {
		return false
	}
	for _, m := range members {
		if !contains(state.LegacySystems, m) {
			return false
		}
	}
	return true
}

func toggle(values []string, value string) []string {
	if contains(values, value) {
		return without(values, value)
	}
	return append(append([]string{}, values...), value)
}

// toggleAll removes every member when all are selected, otherwise adds the missing ones.
func toggleAll(values, members []string) []string {
	allSelected := true
	for _, m := range members {
		if !contains(values, m) {
			allSelected = false
			break
		}
	}
	if allSelected {
		out := make([]string, 0, len(values))
		for _, v := range values {
			if !contains(members, v) {
				out = append(out, v)
			}
		}
		return out
	}
	out := append([]string{}, values...)
	for _, m := range members {
		if !contains(out, m) {
			out = append(out, m)
		}
	}
	return out
}

func without(values []string, value string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
