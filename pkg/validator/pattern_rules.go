package validator

import (
	"context"
	"fmt"
	"regexp"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/rulekit/pkg/cache"
)

// maxCachedPatterns bounds the compiled regex params kept between calls.
const maxCachedPatterns = 256

var patterns = cache.New[string, *regexp.Regexp](maxCachedPatterns)

// regexRule matches the value against params[0]; params[1] is an optional
// human description used in the message.
func regexRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}

	pattern, err := cast.ToStringE(in.Param(0))
	if err != nil || pattern == "" {
		return FailErr(fmt.Errorf("%w: regex expects a pattern param", ErrInvalidParams))
	}
	re, err := patterns.GetOrLoad(pattern, regexp.Compile)
	if err != nil {
		return FailErr(fmt.Errorf("%w: %w", ErrInvalidParams, err))
	}

	if s, ok := stringOf(in); ok && re.MatchString(s) {
		return Pass()
	}

	description := cast.ToString(in.Param(1))
	if description == "" {
		description = pattern
	}
	return Failf("must match %s pattern", description).
		WithTranslation("validation.regex_pattern", map[string]any{
			"pattern":     pattern,
			"description": description,
		})
}
