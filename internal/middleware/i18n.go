// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/anvogue/anvogue-admin/internal/i18n"

	"github.com/gin-gonic/gin"
)

func I18nMiddleware(defaultLang string) gin.HandlerFunc {
	if !i18n.IsSupported(defaultLang) {
		defaultLang = i18n.DefaultLang
	}
	return func(c *gin.Context) {
		lang := ParseAcceptLanguage(c.GetHeader("Accept-Language"), defaultLang)

		// Set language in context
		c.Set("lang", lang)
		c.Request = c.Request.WithContext(i18n.WithLang(c.Request.Context(), lang))
		c.Next()
	}
}

// ParseAcceptLanguage returns the first supported language of the header, e.g.
// "en-GB,en;q=0.9,fr;q=0.8" gives "en".
func ParseAcceptLanguage(header, fallback string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.Split(part, ";")[0])
		if tag == "" {
			continue
		}
		subtags := strings.FieldsFunc(tag, func(r rune) bool { return r == '-' || r == '_' })
		if len(subtags) == 0 {
			continue
		}
		if base := strings.ToLower(subtags[0]); i18n.IsSupported(base) {
			return base
		}
	}
	return fallback
}
