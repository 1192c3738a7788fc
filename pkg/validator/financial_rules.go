package validator

import (
	"context"
	"strconv"
	"strings"
)

// currencyCodes is the ISO 4217 subset accepted by "currencyCode".
var currencyCodes = map[string]struct{}{
	"USD": {}, "EUR": {}, "GBP": {}, "JPY": {}, "AUD": {}, "CAD": {},
	"CHF": {}, "CNY": {}, "SEK": {}, "NZD": {}, "MXN": {}, "SGD": {},
	"HKD": {}, "NOK": {}, "KRW": {}, "TRY": {}, "INR": {}, "BRL": {},
	"ZAR": {}, "PLN": {}, "CZK": {}, "HUF": {}, "ILS": {}, "CLP": {},
	"PHP": {}, "AED": {}, "COP": {}, "SAR": {}, "MYR": {}, "RON": {},
	"THB": {}, "BGN": {}, "ISK": {}, "DKK": {}, "UAH": {},
}

// luhn validates a digit string with the Luhn checksum.
func luhn(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// creditCardRule accepts 13-19 digit numbers with a valid checksum. Spaces
// and dashes are ignored.
func creditCardRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	s, _ := stringOf(in)
	digits := strings.NewReplacer(" ", "", "-", "").Replace(s)
	if len(digits) >= 13 && len(digits) <= 19 && numericStringRegex.MatchString(digits) && luhn(digits) {
		return Pass()
	}
	return Fail("must be a valid credit card number").WithTranslation("validation.credit_card", nil)
}

func currencyCodeRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	if s, ok := in.Value.(string); ok {
		if _, known := currencyCodes[strings.ToUpper(strings.TrimSpace(s))]; known {
			return Pass()
		}
	}
	return Fail("must be a valid ISO 4217 currency code").WithTranslation("validation.currency_code", nil)
}

// decimals counts the fractional digits in the shortest form of n.
func decimals(n float64) int {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	_, frac, found := strings.Cut(s, ".")
	if !found {
		return 0
	}
	return len(frac)
}

// decimalPlacesRule limits a number to params[0] fractional digits.
func decimalPlacesRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	places, err := intParam(in, 0)
	if err != nil {
		return FailErr(err)
	}
	if n, ok := numberOf(in); ok && decimals(n) <= places {
		return Pass()
	}
	return Failf("cannot have more than %d decimal places", places).
		WithTranslation("validation.decimal_places", map[string]any{"places": places})
}
