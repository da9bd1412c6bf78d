package service

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/casestudy-api/pkg/errors"
)

func TestExportServiceCSV(t *testing.T) {
	svc := NewExportService()
	svc.now = fixedClock(time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC))

	file, err := svc.Render(fixtureCaseStudies()[:2], "")
	require.NoError(t, err)
	assert.Equal(t, "case-studies-2024-03-05.csv", file.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)

	lines := strings.Split(strings.TrimSpace(string(file.Body)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Agency,Brand,State,Theme,Legacy System"))
	assert.True(t, strings.HasPrefix(lines[1], "Ray White Bondi,Ray White,NSW,\"Growth, Retention\",Console"))
}

func TestExportServicePDF(t *testing.T) {
	file, err := NewExportService().Render(fixtureCaseStudies(), "PDF")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Body, []byte("%PDF-")))
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	_, err := NewExportService().Render(nil, "xlsx")
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}
