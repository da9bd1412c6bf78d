package models

// LegacySystemCategory is the canonical bucket a raw legacy system label normalizes to.
type LegacySystemCategory string

const (
	LegacyConsole      LegacySystemCategory = "Console"
	LegacyPropertyTree LegacySystemCategory = "Property Tree"
	LegacyPropertyme   LegacySystemCategory = "Propertyme"
	LegacyREST         LegacySystemCategory = "REST"
	LegacyOurProperty  LegacySystemCategory = "Our property"
	LegacyManaged      LegacySystemCategory = "managed"
	LegacyNoSystem     LegacySystemCategory = "No System"
	LegacyOther        LegacySystemCategory = "Other"
	LegacyUnknown      LegacySystemCategory = "Unknown"
)

// LegacySystemCategories is the fixed display order of categories.
var LegacySystemCategories = []LegacySystemCategory{
	LegacyConsole,
	LegacyPropertyTree,
	LegacyPropertyme,
	LegacyREST,
	LegacyOurProperty,
	LegacyManaged,
	LegacyNoSystem,
	LegacyOther,
	LegacyUnknown,
}

// ParseLegacySystemCategory resolves a canonical category name.
func ParseLegacySystemCategory(name string) (LegacySystemCategory, bool) {
	for _, cat := range LegacySystemCategories {
		if string(cat) == name {
			return cat, true
		}
	}
	return "", false
}
