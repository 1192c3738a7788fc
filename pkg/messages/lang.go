package messages

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// maxPreferenceLength caps the preference list parsed by Match.
const maxPreferenceLength = 4096

type weightedLang struct {
	lang string
	q    float64
}

// normalizeLang lowercases a tag and converts POSIX locale names such as
// "de_DE.UTF-8" into "de-de".
func normalizeLang(lang string) string {
	lang = strings.TrimSpace(lang)
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	return strings.ToLower(strings.ReplaceAll(lang, "_", "-"))
}

// parsePreferences parses an Accept-Language style list ("de-CH, en;q=0.8")
// sorted by descending weight. Malformed weights count as 1.
func parsePreferences(list string) []weightedLang {
	if len(list) > maxPreferenceLength {
		list = list[:maxPreferenceLength]
	}

	var langs []weightedLang
	for part := range strings.SplitSeq(list, ",") {
		tag, weight, _ := strings.Cut(part, ";")
		lang := normalizeLang(tag)
		if lang == "" {
			continue
		}

		q := 1.0
		if w, ok := strings.CutPrefix(strings.TrimSpace(weight), "q="); ok {
			if v, err := strconv.ParseFloat(w, 64); err == nil && v >= 0 && v <= 1 {
				q = v
			}
		}
		langs = append(langs, weightedLang{lang: lang, q: q})
	}

	slices.SortStableFunc(langs, func(a, b weightedLang) int {
		return cmp.Compare(b.q, a.q)
	})
	return langs
}

// Match picks the best supported language for a preference list using the
// CLDR matcher, so regional variants fall back to their base language
// ("de-CH" matches "de"). The supported entry is returned normalized;
// fallback is returned when nothing matches.
func Match(preferences string, supported []string, fallback string) string {
	if preferences == "" || len(supported) == 0 {
		return fallback
	}

	names := make([]string, 0, len(supported))
	tags := make([]language.Tag, 0, len(supported))
	for _, lang := range supported {
		tag, err := language.Parse(normalizeLang(lang))
		if err != nil {
			continue
		}
		names = append(names, normalizeLang(lang))
		tags = append(tags, tag)
	}

	var desired []language.Tag
	for _, p := range parsePreferences(preferences) {
		if p.q == 0 {
			continue
		}
		if tag, err := language.Parse(p.lang); err == nil {
			desired = append(desired, tag)
		}
	}
	if len(tags) == 0 || len(desired) == 0 {
		return fallback
	}

	_, idx, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return fallback
	}
	return names[idx]
}
