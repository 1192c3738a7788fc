package validator

import (
	"context"
	"regexp"
	"strings"
)

var (
	slugRegex   = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	hexRegex    = regexp.MustCompile(`^[0-9A-Fa-f]+$`)
	semverRegex = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
		`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?` +
		`(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)
	domainLabelRegex = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?$`)
	tldRegex         = regexp.MustCompile(`^[a-zA-Z]{2,}$`)
)

var (
	slugRule   = matchRule(slugRegex, "must be a valid slug", "validation.slug")
	semverRule = matchRule(semverRegex, "must be a valid semantic version", "validation.semver")
)

// isDomain checks hostname syntax: at least two labels of 1-63 characters,
// 253 characters overall, and an alphabetic top-level label.
func isDomain(s string) bool {
	s = strings.TrimSuffix(s, ".")
	if s == "" || len(s) > 253 {
		return false
	}
	labels := strings.Split(s, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if len(label) > 63 || !domainLabelRegex.MatchString(label) {
			return false
		}
	}
	return tldRegex.MatchString(labels[len(labels)-1])
}

func domainRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	if s, ok := in.Value.(string); ok && isDomain(s) {
		return Pass()
	}
	return Fail("must be a valid domain name").WithTranslation("validation.domain", nil)
}

// hexRule accepts hexadecimal strings; params[0] optionally fixes the length.
func hexRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	length := 0
	if in.Param(0) != nil {
		var err error
		if length, err = intParam(in, 0); err != nil {
			return FailErr(err)
		}
	}
	s, ok := in.Value.(string)
	if ok && hexRegex.MatchString(s) && (length == 0 || len(s) == length) {
		return Pass()
	}
	if length > 0 {
		return Failf("must be a hexadecimal string of length %d", length).
			WithTranslation("validation.hex_length", map[string]any{"length": length})
	}
	return Fail("must be a hexadecimal string").WithTranslation("validation.hex", nil)
}
