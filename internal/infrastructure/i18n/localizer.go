package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/infrastructure/config"
)

// Localizer resolves multilingual text records against the configured
// language set. Unknown or unsupported languages fall back to the base
// language, which is guaranteed present on every record.
type Localizer struct {
	base      string
	supported []string
	matcher   language.Matcher
}

// New creates a localizer from i18n configuration
func New(cfg config.I18nConfig) *Localizer {
	supported := cfg.SupportedLanguages
	if len(supported) == 0 {
		supported = []string{cfg.BaseLanguage}
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, lang := range supported {
		tags = append(tags, language.Make(lang))
	}

	return &Localizer{
		base:      cfg.BaseLanguage,
		supported: supported,
		matcher:   language.NewMatcher(tags),
	}
}

// Normalize maps a raw language input (query parameter or an
// Accept-Language header value) onto one of the supported languages.
func (l *Localizer) Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return l.base
	}

	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return l.base
	}
	_, index, confidence := l.matcher.Match(tags...)
	if confidence == language.No {
		return l.base
	}
	return l.supported[index]
}

// Resolve returns the record's value for the given language, falling
// back to the base language when the requested translation is missing.
func (l *Localizer) Resolve(text shared.LocalizedText, lang string) string {
	return text.Get(l.Normalize(lang))
}

// BaseLanguage returns the configured base language
func (l *Localizer) BaseLanguage() string {
	return l.base
}
