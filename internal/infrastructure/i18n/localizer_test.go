package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/infrastructure/config"
)

func newTestLocalizer() *Localizer {
	return New(config.I18nConfig{
		BaseLanguage:       "az",
		SupportedLanguages: []string{"az", "en", "ru"},
	})
}

func TestLocalizer_Normalize(t *testing.T) {
	l := newTestLocalizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"exact match", "en", "en"},
		{"region variant", "en-US", "en"},
		{"cyrillic", "ru", "ru"},
		{"accept-language header", "en-GB,en;q=0.9,ru;q=0.5", "en"},
		{"unsupported language", "de", "az"},
		{"empty falls back to base", "", "az"},
		{"garbage falls back to base", "!!not-a-tag!!", "az"},
		{"whitespace only", "   ", "az"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Normalize(tt.input))
		})
	}
}

func TestLocalizer_Resolve(t *testing.T) {
	l := newTestLocalizer()
	text := shared.LocalizedText{Az: "Telefonlar", En: "Phones"}

	assert.Equal(t, "Phones", l.Resolve(text, "en"))
	assert.Equal(t, "Telefonlar", l.Resolve(text, "az"))

	// missing translation falls back to the base language value
	assert.Equal(t, "Telefonlar", l.Resolve(text, "ru"))
	assert.Equal(t, "Telefonlar", l.Resolve(text, "fr"))
}

func TestLocalizer_EmptySupportedListUsesBase(t *testing.T) {
	l := New(config.I18nConfig{BaseLanguage: "az"})

	assert.Equal(t, "az", l.Normalize("en"))
	assert.Equal(t, "az", l.BaseLanguage())
}
