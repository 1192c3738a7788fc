package validator

import (
	"context"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	defaultPasswordLength  = 8
	defaultPasswordClasses = 3
	defaultPasswordEntropy = 50
)

// commonPasswords holds frequently leaked passwords, lowercased.
var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "passw0rd": {},
	"123456": {}, "1234567": {}, "12345678": {}, "123456789": {}, "1234567890": {},
	"111111": {}, "000000": {}, "123123": {}, "654321": {}, "12341234": {},
	"qwerty": {}, "qwerty1": {}, "qwerty123": {}, "qwertyuiop": {}, "asdfghjkl": {},
	"zxcvbnm": {}, "1q2w3e4r": {}, "1qaz2wsx": {}, "zaq12wsx": {}, "qazwsx": {},
	"abc123": {}, "abcd1234": {}, "a1b2c3": {}, "qwe123": {}, "123qwe": {},
	"admin": {}, "admin123": {}, "administrator": {}, "root": {}, "toor": {},
	"guest": {}, "test": {}, "user": {}, "login": {}, "master": {}, "secret": {},
	"letmein": {}, "welcome": {}, "iloveyou": {}, "trustno1": {}, "monkey": {},
	"dragon": {}, "sunshine": {}, "princess": {}, "football": {}, "baseball": {},
	"superman": {}, "batman": {}, "shadow": {}, "freedom": {}, "whatever": {},
}

// runeClasses records which character classes a password uses.
type runeClasses struct {
	lower, upper, digit, other bool
}

func classify(s string) runeClasses {
	var c runeClasses
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			c.lower = true
		case unicode.IsUpper(r):
			c.upper = true
		case unicode.IsDigit(r):
			c.digit = true
		default:
			c.other = true
		}
	}
	return c
}

func (c runeClasses) count() int {
	n := 0
	for _, has := range []bool{c.lower, c.upper, c.digit, c.other} {
		if has {
			n++
		}
	}
	return n
}

// poolSize approximates the alphabet an attacker has to search.
func (c runeClasses) poolSize() int {
	n := 0
	if c.lower {
		n += 26
	}
	if c.upper {
		n += 26
	}
	if c.digit {
		n += 10
	}
	if c.other {
		n += 32
	}
	return n
}

// passwordRule enforces a minimum length (params[0], default 8) and a
// minimum number of character classes (params[1], default 3).
func passwordRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	minLength, minClasses := defaultPasswordLength, defaultPasswordClasses
	var err error
	if in.Param(0) != nil {
		if minLength, err = intParam(in, 0); err != nil {
			return FailErr(err)
		}
	}
	if in.Param(1) != nil {
		if minClasses, err = intParam(in, 1); err != nil {
			return FailErr(err)
		}
	}

	s, ok := in.Value.(string)
	if ok && utf8.RuneCountInString(s) >= minLength && classify(s).count() >= minClasses {
		return Pass()
	}
	return Failf("must be at least %d characters and use %d of: lowercase, uppercase, digits, symbols", minLength, minClasses).
		WithTranslation("validation.password_strength", map[string]any{
			"min_length":  minLength,
			"min_classes": minClasses,
		})
}

func notCommonPasswordRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	s, _ := stringOf(in)
	if _, common := commonPasswords[strings.ToLower(strings.TrimSpace(s))]; !common {
		return Pass()
	}
	return Fail("is too common, please choose a different one").
		WithTranslation("validation.password_common", nil)
}

// passwordEntropy estimates bits as length * log2(alphabet), where the
// alphabet is the number of distinct runes capped by the size of the
// character classes used.
func passwordEntropy(s string) float64 {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return 0
	}
	unique := make(map[rune]struct{}, n)
	for _, r := range s {
		unique[r] = struct{}{}
	}
	alphabet := min(len(unique), classify(s).poolSize())
	return float64(n) * math.Log2(float64(alphabet))
}

// passwordEntropyRule requires at least params[0] bits (default 50).
func passwordEntropyRule(_ context.Context, in RuleInput) Outcome {
	if isAbsent(in.Value) {
		return Pass()
	}
	bits := float64(defaultPasswordEntropy)
	if in.Param(0) != nil {
		var err error
		if bits, err = floatParam(in, 0); err != nil {
			return FailErr(err)
		}
	}
	if s, ok := in.Value.(string); ok && passwordEntropy(s) >= bits {
		return Pass()
	}
	return Failf("is too predictable, at least %v bits of entropy required", bits).
		WithTranslation("validation.password_entropy", map[string]any{"min_entropy": bits})
}
