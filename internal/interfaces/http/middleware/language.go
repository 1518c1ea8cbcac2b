package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/catalog/backend/internal/infrastructure/i18n"
	"github.com/catalog/backend/internal/infrastructure/logger"
)

// LangContextKey is the gin context key for the resolved language
const LangContextKey = "lang"

// Language resolves the request language from the lang query parameter,
// falling back to the Accept-Language header, and stores the normalized
// result for handlers and the request logger.
func Language(localizer *i18n.Localizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("lang")
		if raw == "" {
			raw = c.GetHeader("Accept-Language")
		}
		lang := localizer.Normalize(raw)

		c.Set(LangContextKey, lang)
		c.Request = c.Request.WithContext(logger.WithLang(c.Request.Context(), lang))
		c.Next()
	}
}

// GetLanguage returns the resolved request language
func GetLanguage(c *gin.Context) string {
	if lang, exists := c.Get(LangContextKey); exists {
		if l, ok := lang.(string); ok {
			return l
		}
	}
	return ""
}
