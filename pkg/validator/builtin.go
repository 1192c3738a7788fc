package validator

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// RegisterBuiltins registers the built-in rule set into r. Existing rules
// with the same names are replaced.
//
// Every built-in except "required" passes nil values, so optional fields
// only need "required" when presence matters.
func RegisterBuiltins(r *Registry) {
	for name, fn := range map[string]RuleFunc{
		"required":          requiredRule,
		"minLength":         minLengthRule,
		"maxLength":         maxLengthRule,
		"length":            lengthRule,
		"min":               minRule,
		"max":               maxRule,
		"numberLessThan":    numberLessThanRule,
		"numberGreaterThan": numberGreaterThanRule,
		"between":           betweenRule,
		"email":             emailRule,
		"url":               urlRule,
		"uuid":              uuidRule,
		"alpha":             alphaRule,
		"alphanumeric":      alphanumericRule,
		"numeric":           numericRule,
		"regex":             regexRule,
		"in":                inRule,
		"notIn":             notInRule,
		"equalsField":       equalsFieldRule,
		"date":              dateRule,
		"before":            beforeRule,
		"after":             afterRule,
		"minAge":            minAgeRule,
		"birthdate":         birthdateRule,
		"password":          passwordRule,
		"notCommonPassword": notCommonPasswordRule,
		"passwordEntropy":   passwordEntropyRule,
		"slug":              slugRule,
		"domain":            domainRule,
		"semver":            semverRule,
		"hex":               hexRule,
		"creditCard":        creditCardRule,
		"currencyCode":      currencyCodeRule,
		"decimalPlaces":     decimalPlacesRule,
	} {
		r.MustRegister(name, fn)
	}
}

// isAbsent reports nil values, including typed nil pointers, maps and slices.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

// sizeOf returns the rune count of strings and the length of collections.
func sizeOf(v any) (int, bool) {
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}

func intParam(in RuleInput, i int) (int, error) {
	n, err := cast.ToIntE(in.Param(i))
	if err != nil {
		return 0, fmt.Errorf("%w: %s expects an integer param %d, got %v", ErrInvalidParams, in.RuleName, i, in.Param(i))
	}
	return n, nil
}

func floatParam(in RuleInput, i int) (float64, error) {
	n, err := cast.ToFloat64E(in.Param(i))
	if err != nil {
		return 0, fmt.Errorf("%w: %s expects a numeric param %d, got %v", ErrInvalidParams, in.RuleName, i, in.Param(i))
	}
	return n, nil
}

// stringParams flattens params into strings; a single slice param is
// expanded so both ("a", "b") and ([]string{"a", "b"}) work.
func stringParams(params []any) []string {
	if len(params) == 1 {
		if list, err := cast.ToStringSliceE(params[0]); err == nil && isList(params[0]) {
			return list
		}
	}
	out := make([]string, 0, len(params))
	for _, p := range params {
		out = append(out, strings.TrimSpace(cast.ToString(p)))
	}
	return out
}

func isList(v any) bool {
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}
