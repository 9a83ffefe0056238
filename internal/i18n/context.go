// internal/i18n/context.go
package i18n

import "context"

type langKey struct{}

func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langKey{}, lang)
}

// LangFrom returns the language stored in ctx, or fallback when there is none.
func LangFrom(ctx context.Context, fallback string) string {
	if lang, ok := ctx.Value(langKey{}).(string); ok && lang != "" {
		return lang
	}
	if fallback == "" {
		return DefaultLang
	}
	return fallback
}
