package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/casestudy-api/internal/models"
)

const listCaseStudiesQuery = `SELECT
	COALESCE(agency, '') AS agency,
	COALESCE(brand, '') AS brand,
	COALESCE(blog, '') AS blog,
	COALESCE(video_link, '') AS video_link,
	COALESCE(state, '') AS state,
	COALESCE(theme, '') AS theme,
	COALESCE(legacy_system, '') AS legacy_system,
	COALESCE(lead_voice, '') AS lead_voice,
	COALESCE(year_published, '') AS year_published,
	COALESCE(agency_size, '') AS agency_size
FROM case_studies
ORDER BY row_number`

// CaseStudyRepository reads a read-only Postgres mirror of the published sheet.
type CaseStudyRepository struct {
	db *sqlx.DB
}

// NewCaseStudyRepository instantiates the Postgres backed repository.
func NewCaseStudyRepository(db *sqlx.DB) *CaseStudyRepository {
	return &CaseStudyRepository{db: db}
}

// Name identifies the source in logs and metrics.
func (r *CaseStudyRepository) Name() string {
	return "postgres"
}

// List returns every mirrored row in sheet order.
func (r *CaseStudyRepository) List(ctx context.Context) ([]models.CaseStudy, error) {
	items := make([]models.CaseStudy, 0)
	if err := r.db.SelectContext(ctx, &items, listCaseStudiesQuery); err != nil {
		return nil, fmt.Errorf("list case studies: %w", err)
	}
	return items, nil
}
