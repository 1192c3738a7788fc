// Package rulekit is a declarative validation toolkit.
//
// The engine lives in pkg/validator: a named rule registry, per-field rule
// declarations against target types, and pipelines that validate a single
// value or a whole object into a Result. Declarations can be written in Go
// with validator.Describe or loaded from YAML/JSON with
// pkg/validator/schema, and failure messages can be localized with
// pkg/messages.
//
// This package adapts validation results for form handling:
//
//	validator.DescribeTarget(validator.DefaultStore, "signup").
//		Field("email").Rule("required").Rule("email").
//		Field("password").Rule("required").Rule("minLength", 8)
//
//	if err := rulekit.ValidateRequest(r, validator.Default(), "signup"); err != nil {
//		var fe rulekit.FormErrors
//		if errors.As(err, &fe) {
//			render(w, form, fe)
//			return
//		}
//		http.Error(w, err.Error(), http.StatusBadRequest)
//	}
//
// The rulekit command validates JSON documents against a schema file from
// the shell.
package rulekit
