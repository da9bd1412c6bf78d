package dto

import "github.com/noah-isme/casestudy-api/internal/models"

// CaseStudyQuery captures the optional facet filters of GET /case-studies and /case-studies/export.
// Each parameter may repeat; an empty value selects records with no value recorded.
type CaseStudyQuery struct {
	Themes        []string `form:"theme" validate:"max=100,dive,max=200"`
	Brands        []string `form:"brand" validate:"max=100,dive,max=200"`
	States        []string `form:"state" validate:"max=100,dive,max=200"`
	AgencySizes   []string `form:"agencySize" validate:"max=100,dive,max=200"`
	LegacySystems []string `form:"legacySystem" validate:"max=100,dive,max=200"`
	Format        string   `form:"format" validate:"omitempty,oneof=csv pdf"`
}

// Filters converts the query into a FilterState.
func (q CaseStudyQuery) Filters() models.FilterState {
	return models.FilterState{
		Themes:        q.Themes,
		Brands:        q.Brands,
		States:        q.States,
		AgencySizes:   q.AgencySizes,
		LegacySystems: q.LegacySystems,
	}.Normalized()
}

// SearchRequest is the body of POST /case-studies/search.
type SearchRequest struct {
	Themes        []string `json:"themes" validate:"max=100,dive,max=200"`
	Brands        []string `json:"brands" validate:"max=100,dive,max=200"`
	States        []string `json:"states" validate:"max=100,dive,max=200"`
	AgencySizes   []string `json:"agencySizes" validate:"max=100,dive,max=200"`
	LegacySystems []string `json:"legacySystems" validate:"max=100,dive,max=200"`
}

// Filters converts the request into a FilterState.
func (r SearchRequest) Filters() models.FilterState {
	return models.FilterState{
		Themes:        r.Themes,
		Brands:        r.Brands,
		States:        r.States,
		AgencySizes:   r.AgencySizes,
		LegacySystems: r.LegacySystems,
	}.Normalized()
}

// SearchResponse lists the matching records. Total is the size of the unfiltered set.
type SearchResponse struct {
	Items []models.CaseStudy `json:"items"`
	Count int                `json:"count"`
	Total int                `json:"total"`
}

// FilterActionRequest is one user update sent to POST /filters/reduce.
type FilterActionRequest struct {
	Type     string `json:"type" validate:"required,oneof=toggle selectAll clear clearAll toggleCategory toggleNoValue"`
	Facet    string `json:"facet" validate:"omitempty,oneof=themes brands states agencySizes legacySystems"`
	Value    string `json:"value" validate:"max=200"`
	Category string `json:"category" validate:"max=100"`
}

// ReduceRequest carries the client-held filter state and the action to apply to it.
type ReduceRequest struct {
	Filters SearchRequest       `json:"filters"`
	Action  FilterActionRequest `json:"action"`
}

// Model converts the request into the domain action.
func (a FilterActionRequest) Model() models.FilterAction {
	return models.FilterAction{
		Type:     models.FilterActionType(a.Type),
		Facet:    models.Facet(a.Facet),
		Value:    a.Value,
		Category: a.Category,
	}
}
