package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCaseStudyRepoMock(t *testing.T) (*CaseStudyRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return NewCaseStudyRepository(sqlxDB), mock, func() {
		sqlxDB.Close()
	}
}

func TestCaseStudyRepositoryList(t *testing.T) {
	repo, mock, cleanup := newCaseStudyRepoMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"agency", "brand", "blog", "video_link", "state", "theme", "legacy_system", "lead_voice", "year_published", "agency_size"}).
		AddRow("Ray White Bondi", "Ray White", "", "", "NSW", "Growth", "Console", "Jane", "2024", "1000+ PUM").
		AddRow("Belle Manly", "Belle Property", "", "", "NSW", "Retention", "", "", "2023", "N/A")
	mock.ExpectQuery("SELECT (.|\n)*FROM case_studies(.|\n)*ORDER BY row_number").WillReturnRows(rows)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Ray White Bondi", items[0].Agency)
	assert.Equal(t, "Console", items[0].LegacySystem)
	assert.Equal(t, "N/A", items[1].AgencySize)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseStudyRepositoryListError(t *testing.T) {
	repo, mock, cleanup := newCaseStudyRepoMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection refused"))

	_, err := repo.List(context.Background())
	assert.Error(t, err)
}
