package messages

import "context"

type localeContextKey struct{}

// WithLocale stores the message locale in ctx.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// Locale returns the locale stored in ctx, or "" when none is set.
func Locale(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	return locale
}
