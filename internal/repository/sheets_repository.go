package repository

import (
	"context"
	"fmt"

	oauthjwt "golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/noah-isme/casestudy-api/internal/models"
	"github.com/noah-isme/casestudy-api/pkg/config"
)

const googleTokenURL = "https://oauth2.googleapis.com/token"

// Positional column layout of the published sheet (A..M). A, F and H are not exposed.
const (
	colAgency        = 1  // B
	colBrand         = 2  // C
	colBlog          = 3  // D
	colVideoLink     = 4  // E
	colState         = 6  // G
	colTheme         = 8  // I
	colLegacySystem  = 9  // J
	colLeadVoice     = 10 // K
	colYearPublished = 11 // L
	colAgencySize    = 12 // M
)

// ValueReader fetches a rectangular range of cell values.
type ValueReader interface {
	ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]interface{}, error)
}

type sheetsValueReader struct {
	svc *sheets.Service
}

func (r sheetsValueReader) ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]interface{}, error) {
	resp, err := r.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// NewSheetsValueReader authenticates as the configured service account with read-only scope.
func NewSheetsValueReader(ctx context.Context, cfg config.SheetsConfig) (ValueReader, error) {
	if cfg.ServiceAccountEmail == "" || cfg.PrivateKey == "" {
		return nil, fmt.Errorf("sheets service account credentials are not configured")
	}
	conf := &oauthjwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{sheets.SpreadsheetsReadonlyScope},
		TokenURL:   googleTokenURL,
	}
	client := conf.Client(ctx)
	client.Timeout = cfg.Timeout

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return sheetsValueReader{svc: svc}, nil
}

// SheetsRepository reads case studies from the published spreadsheet.
type SheetsRepository struct {
	reader        ValueReader
	spreadsheetID string
	sheetName     string
}

// NewSheetsRepository constructs a spreadsheet backed repository.
func NewSheetsRepository(reader ValueReader, spreadsheetID, sheetName string) *SheetsRepository {
	return &SheetsRepository{reader: reader, spreadsheetID: spreadsheetID, sheetName: sheetName}
}

// Name identifies the source in logs and metrics.
func (r *SheetsRepository) Name() string {
	return "sheets"
}

// List returns every data row of the sheet in sheet order. The header row is skipped.
func (r *SheetsRepository) List(ctx context.Context) ([]models.CaseStudy, error) {
	rows, err := r.reader.ReadRange(ctx, r.spreadsheetID, fmt.Sprintf("%s!A:M", r.sheetName))
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", r.sheetName, err)
	}
	return rowsToCaseStudies(rows), nil
}

func rowsToCaseStudies(rows [][]interface{}) []models.CaseStudy {
	if len(rows) <= 1 {
		return []models.CaseStudy{}
	}
	items := make([]models.CaseStudy, 0, len(rows)-1)
	for _, row := range rows[1:] {
		items = append(items, models.CaseStudy{
			Agency:        cell(row, colAgency),
			Brand:         cell(row, colBrand),
			Blog:          cell(row, colBlog),
			VideoLink:     cell(row, colVideoLink),
			State:         cell(row, colState),
			Theme:         cell(row, colTheme),
			LegacySystem:  cell(row, colLegacySystem),
			LeadVoice:     cell(row, colLeadVoice),
			YearPublished: cell(row, colYearPublished),
			AgencySize:    cell(row, colAgencySize),
		})
	}
	return items
}

// cell returns the string form of row[idx]; rows are truncated after their last non-empty cell.
func cell(row []interface{}, idx int) string {
	if idx >= len(row) || row[idx] == nil {
		return ""
	}
	switch v := row[idx].(type) {
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
