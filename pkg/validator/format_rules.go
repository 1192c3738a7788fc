package validator

import (
	"context"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

var (
	alphanumericRegex  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex         = regexp.MustCompile(`^[a-zA-Z]+$`)
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

// stringOf coerces the validated value to a string.
func stringOf(in RuleInput) (string, bool) {
	if s, ok := in.Value.(string); ok {
		return s, true
	}
	s, err := cast.ToStringE(in.Value)
	return s, err == nil
}

// isEmail checks RFC 5322 syntax plus the shape typical web forms expect:
// a bare address with a dotted domain.
func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

func emailRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	if s, ok := stringOf(in); ok && isEmail(s) {
		return Pass()
	}
	return Fail("must be a valid email address").WithTranslation("validation.email", nil)
}

func urlRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	if s, ok := stringOf(in); ok && strings.TrimSpace(s) != "" {
		if u, err := url.ParseRequestURI(s); err == nil && u.Scheme != "" && u.Host != "" {
			return Pass()
		}
	}
	return Fail("must be a valid URL").WithTranslation("validation.url", nil)
}

func matchRule(re *regexp.Regexp, message, key string) RuleFunc {
	return func(_ context.Context, in RuleInput) Outcome {
		if isAbsent(in.Value) {
			return Pass()
		}
		if s, ok := stringOf(in); ok && re.MatchString(s) {
			return Pass()
		}
		return Fail(message).WithTranslation(key, nil)
	}
}

var (
	alphaRule        = matchRule(alphaRegex, "must contain only letters", "validation.alpha")
	alphanumericRule = matchRule(alphanumericRegex, "must contain only letters and numbers", "validation.alphanumeric")
	numericRule      = matchRule(numericStringRegex, "must contain only digits", "validation.numeric")
)
