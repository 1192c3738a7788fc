package rulekit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// FormData converts submitted form values into validation data. Fields with a
// single value become strings; repeated fields stay []string.
func FormData(values url.Values) map[string]any {
	data := make(map[string]any, len(values))
	for k, v := range values {
		switch len(v) {
		case 0:
			data[k] = nil
		case 1:
			data[k] = v[0]
		default:
			data[k] = append([]string(nil), v...)
		}
	}
	return data
}

// ValidateForm validates a form submission against target. It returns nil on
// success and FormErrors when any field fails.
func ValidateForm(ctx context.Context, e *validator.Engine, target validator.Target, values url.Values, opts ...validator.Option) error {
	res := e.ValidateTarget(ctx, target, FormData(values), opts...)
	if res.Success {
		return nil
	}
	return FormErrorsFrom(res.Errors)
}

// ValidateRequest parses an application/x-www-form-urlencoded request and
// validates it with ValidateForm.
func ValidateRequest(r *http.Request, e *validator.Engine, target validator.Target, opts ...validator.Option) error {
	mediaType, _, _ := strings.Cut(r.Header.Get("Content-Type"), ";")
	if mediaType = strings.TrimSpace(mediaType); mediaType != "application/x-www-form-urlencoded" {
		return fmt.Errorf("%w: got %q", ErrUnsupportedMediaType, mediaType)
	}
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	return ValidateForm(r.Context(), e, target, r.PostForm, opts...)
}
