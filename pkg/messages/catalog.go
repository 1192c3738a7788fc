package messages

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
)

// DefaultLanguage is used when neither the context nor the options name one.
const DefaultLanguage = "en"

// Catalog renders localized messages with named "%{param}" placeholders.
// It implements validator.Translator. Messages are copied on New and never
// change afterwards, so a Catalog is safe for concurrent use.
type Catalog struct {
	messages       map[string]map[string]any
	defaultLang    string
	missingLogMode bool
	logger         *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when the context carries none
// or carries one without catalogs.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = strings.ToLower(lang)
		}
	}
}

// WithLogger sets the catalog logger. A discard logger is used by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMissingLogging logs lookups that found no message.
func WithMissingLogging(enabled bool) Option {
	return func(c *Catalog) { c.missingLogMode = enabled }
}

// New loads a Catalog from src.
func New(ctx context.Context, src Source, opts ...Option) (*Catalog, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	c := &Catalog{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	loaded, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}

	msgs := make(map[string]map[string]any, len(loaded))
	for lang, m := range loaded {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		if m == nil {
			return nil, fmt.Errorf("nil catalog for language %q", lang)
		}
		msgs[strings.ToLower(lang)] = cloneMessages(m)
	}
	if len(msgs) == 0 {
		c.logger.WarnContext(ctx, "no message catalogs loaded")
	}

	c.messages = msgs
	c.logger.InfoContext(ctx, "message catalogs loaded", slog.Any("languages", c.languages()))
	return c, nil
}

// cloneMessages copies nested message maps so later changes to a source
// do not reach the catalog.
func cloneMessages(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			v = cloneMessages(nested)
		}
		out[k] = v
	}
	return out
}

func (c *Catalog) languages() []string {
	langs := make([]string, 0, len(c.messages))
	for lang := range c.messages {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Languages returns the languages with catalogs, sorted.
func (c *Catalog) Languages() []string {
	return c.languages()
}

// DefaultLanguage returns the fallback language.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// Has reports whether lang has a string message for key.
func (c *Catalog) Has(lang, key string) bool {
	_, ok := c.lookup(strings.ToLower(lang), key)
	return ok
}

// lookup walks dot-separated keys through nested maps, e.g.
// "validation.min_length" reads m["validation"]["min_length"].
func (c *Catalog) lookup(lang, key string) (string, bool) {
	current, ok := c.messages[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return "", false
		}
	}
	return "", false
}

// T renders key in lang, substituting "%{name}" placeholders from params.
// It falls back to the default language and reports false when neither has
// the key.
func (c *Catalog) T(lang, key string, params map[string]any) (string, bool) {
	lang = strings.ToLower(lang)
	tmpl, ok := c.lookup(lang, key)
	if !ok && lang != c.defaultLang {
		tmpl, ok = c.lookup(c.defaultLang, key)
	}
	if !ok {
		if c.missingLogMode {
			c.logger.Warn("message not found", slog.String("lang", lang), slog.String("key", key))
		}
		return "", false
	}
	return render(tmpl, params), true
}

// Translate renders key in the locale stored in ctx. It implements
// validator.Translator.
func (c *Catalog) Translate(ctx context.Context, key string, params map[string]any) (string, bool) {
	lang := Locale(ctx)
	if lang == "" {
		lang = c.defaultLang
	}
	return c.T(lang, key, params)
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// render substitutes "%{name}" placeholders; unknown names are kept as is.
func render(tmpl string, params map[string]any) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}
