package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/noah-isme/casestudy-api/internal/models"
	appErrors "github.com/noah-isme/casestudy-api/pkg/errors"
	"github.com/noah-isme/casestudy-api/pkg/export"
)

var exportHeaders = []string{"Agency", "Brand", "State", "Theme", "Legacy System", "Agency Size", "Lead Voice", "Year Published", "Blog", "Video Link"}

// Exporter renders a dataset in one output format.
type Exporter interface {
	Render(data export.Dataset, title string) ([]byte, error)
	ContentType() string
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders case study lists as downloadable files.
type ExportService struct {
	exporters map[string]Exporter
	now       func() time.Time
}

// NewExportService registers the csv and pdf exporters.
func NewExportService() *ExportService {
	return &ExportService{
		exporters: map[string]Exporter{
			"csv": export.NewCSVExporter(),
			"pdf": export.NewPDFExporter(),
		},
		now: time.Now,
	}
}

// Render encodes records in the requested format.
func (s *ExportService) Render(records []models.CaseStudy, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "csv"
	}
	exporter, ok := s.exporters[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	rows := make([]map[string]string, 0, len(records))
	for _, cs := range records {
		rows = append(rows, map[string]string{
			"Agency":         cs.Agency,
			"Brand":          cs.Brand,
			"State":          cs.State,
			"Theme":          cs.Theme,
			"Legacy System":  cs.LegacySystem,
			"Agency Size":    cs.AgencySize,
			"Lead Voice":     cs.LeadVoice,
			"Year Published": cs.YearPublished,
			"Blog":           cs.Blog,
			"Video Link":     cs.VideoLink,
		})
	}

	day := s.now().UTC().Format(tokenDateLayout)
	body, err := exporter.Render(export.Dataset{Headers: exportHeaders, Rows: rows}, fmt.Sprintf("Case Studies (%d) - %s", len(records), day))
	if err != nil {
		return nil, appErrors.WrapAs(err, appErrors.ErrInternal)
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("case-studies-%s.%s", day, format),
		ContentType: exporter.ContentType(),
		Body:        body,
	}, nil
}
