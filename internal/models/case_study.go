package models

import "strings"

// AgencySizeNotApplicable marks agencies whose size was not recorded in the sheet.
const AgencySizeNotApplicable = "N/A"

// CaseStudy is one published customer story as read from the sheet. Values are never written back.
type CaseStudy struct {
	Agency        string `json:"agency" db:"agency"`
	Brand         string `json:"brand" db:"brand"`
	Blog          string `json:"blog" db:"blog"`
	VideoLink     string `json:"videoLink" db:"video_link"`
	State         string `json:"state" db:"state"`
	Theme         string `json:"theme" db:"theme"`
	LegacySystem  string `json:"legacySystem" db:"legacy_system"`
	LeadVoice     string `json:"leadVoice" db:"lead_voice"`
	YearPublished string `json:"yearPublished" db:"year_published"`
	AgencySize    string `json:"agencySize" db:"agency_size"`
}

// Themes splits the comma separated theme column into trimmed, non-empty labels.
func (c CaseStudy) Themes() []string {
	if c.Theme == "" {
		return nil
	}
	parts := strings.Split(c.Theme, ",")
	themes := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			themes = append(themes, trimmed)
		}
	}
	return themes
}
