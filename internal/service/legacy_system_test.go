package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/casestudy-api/internal/models"
)

func TestNormalizeLegacySystem(t *testing.T) {
	cases := map[string]models.LegacySystemCategory{
		"Console":             models.LegacyConsole,
		"  console cloud ":    models.LegacyConsole,
		"PropertyTree":        models.LegacyPropertyTree,
		"Property Tree":       models.LegacyPropertyTree,
		"Property Me":         models.LegacyPropertyme,
		"PropertyMe":          models.LegacyPropertyme,
		"REST Professional":   models.LegacyREST,
		"rest":                models.LegacyREST,
		"OurProperty":         models.LegacyOurProperty,
		"Managed":             models.LegacyManaged,
		"None":                models.LegacyNoSystem,
		"N/A":                 models.LegacyNoSystem,
		"no system":           models.LegacyNoSystem,
		"":                    models.LegacyUnknown,
		"   ":                 models.LegacyUnknown,
		"Ailo":                models.LegacyOther,
		"RP Office":           models.LegacyOther,
		"Console, PropertyMe": models.LegacyOther,
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeLegacySystem(raw), raw)
		assert.Equal(t, NormalizeLegacySystem(raw), NormalizeLegacySystem(raw), "deterministic for %q", raw)
	}
}

func TestValuesForCategory(t *testing.T) {
	raw := []string{"Console", "Console Cloud", "Ailo", "PropertyMe", ""}

	assert.Equal(t, []string{"Console", "Console Cloud"}, ValuesForCategory(models.LegacyConsole, raw))
	assert.Equal(t, []string{""}, ValuesForCategory(models.LegacyUnknown, raw))
	assert.Empty(t, ValuesForCategory(models.LegacyREST, raw))
}

func TestAvailableCategoriesKeepsDisplayOrder(t *testing.T) {
	raw := []string{"Vault", "REST", "console", "None"}

	assert.Equal(t, []models.LegacySystemCategory{
		models.LegacyConsole,
		models.LegacyREST,
		models.LegacyNoSystem,
		models.LegacyOther,
	}, AvailableCategories(raw))
}
