package validator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
)

const dateLayout = "2006-01-02"

// maxLifespan bounds how far back a birthdate may lie.
const maxLifespan = 150

// clock returns the call's start time, or the wall clock when a rule is
// invoked outside the engine.
func clock(in RuleInput) time.Time {
	if in.Now.IsZero() {
		return time.Now()
	}
	return in.Now
}

// timeOf parses v with layout when one is given; otherwise any form
// cast understands is accepted (time.Time, RFC 3339, "2006-01-02", unix
// seconds).
func timeOf(v any, layout string) (time.Time, bool) {
	if t, ok := v.(time.Time); ok {
		return t, true
	}
	if s, ok := v.(string); ok && layout != "" {
		t, err := time.Parse(layout, strings.TrimSpace(s))
		return t, err == nil
	}
	t, err := cast.ToTimeE(v)
	return t, err == nil
}

// boundParam resolves params[i] to a point in time; "now" means the call's
// start time.
func boundParam(in RuleInput, i int, layout string) (time.Time, error) {
	p := in.Param(i)
	if s, ok := p.(string); ok && strings.EqualFold(strings.TrimSpace(s), "now") {
		return clock(in), nil
	}
	t, ok := timeOf(p, layout)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %s expects a date param %d, got %v", ErrInvalidParams, in.RuleName, i, p)
	}
	return t, nil
}

// dateRule accepts values parseable as a date; params[0] is an optional
// Go time layout.
func dateRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	if _, ok := timeOf(in.Value, cast.ToString(in.Param(0))); ok {
		return Pass()
	}
	return Fail("must be a valid date").WithTranslation("validation.date", nil)
}

func beforeRule(_ context.Context, in RuleInput) Outcome {
	return compareDate(in, "validation.date_before", "must be before %s", func(v, bound time.Time) bool {
		return v.Before(bound)
	})
}

func afterRule(_ context.Context, in RuleInput) Outcome {
	return compareDate(in, "validation.date_after", "must be after %s", func(v, bound time.Time) bool {
		return v.After(bound)
	})
}

// compareDate checks the value against params[0] ("now" or a date);
// params[1] is an optional layout applied to both.
func compareDate(in RuleInput, key, format string, ok func(v, bound time.Time) bool) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	layout := cast.ToString(in.Param(1))
	bound, err := boundParam(in, 0, layout)
	if err != nil {
		return FailErr(err)
	}
	date := bound.Format(dateLayout)
	if v, parsed := timeOf(in.Value, layout); parsed && ok(v, bound) {
		return Pass()
	}
	return Failf(format, date).WithTranslation(key, map[string]any{"date": date})
}

// ageAt counts whole years between birth and at.
func ageAt(birth, at time.Time) int {
	age := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		age--
	}
	return age
}

func minAgeRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	years, err := intParam(in, 0)
	if err != nil {
		return FailErr(err)
	}
	if birth, ok := timeOf(in.Value, ""); ok && ageAt(birth, clock(in)) >= years {
		return Pass()
	}
	return Failf("minimum age of %d years required", years).
		WithTranslation("validation.min_age", map[string]any{"min_age": years})
}

// birthdateRule rejects dates in the future or beyond a human lifespan.
func birthdateRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	now := clock(in)
	if birth, ok := timeOf(in.Value, ""); ok && !birth.After(now) && birth.After(now.AddDate(-maxLifespan, 0, 0)) {
		return Pass()
	}
	return Fail("must be a valid birthdate").WithTranslation("validation.birthdate", nil)
}
