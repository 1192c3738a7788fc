// Package validator is a declarative validation engine: a named rule
// registry, per-field rule metadata declared against target types, and two
// pipelines that return a discriminated success/failure Result.
//
// # Architecture
//
//   - Registry       – name to RuleFunc table; last registration wins
//   - MetadataStore  – target to field to ordered Binding list, plus labels
//   - Engine         – runs Validate (one value) and ValidateTarget (an object)
//   - Result         – Success discriminant, Data or Error/Errors, timing
//
// Rules share one invocation contract whether they are registered by name or
// supplied inline: they receive a RuleInput carrying the value, the binding
// params, the whole object being validated and the caller context, and return
// an Outcome. Rules written against the loose contract (return true to pass,
// anything else or an error to fail) are adapted with Func.
//
// Within a field, bindings run in declaration order and stop at the first
// failure. Across fields of a target nothing short-circuits: every field is
// evaluated, concurrently by default, and failures are reported in field
// declaration order. Unregistered rule names, rule errors and panics become
// failures of the field; they never escape the pipeline.
//
// # Usage
//
//	validator.Describe[User](validator.DefaultStore).
//	    Field("name").Label("Name").Rule("required").Rule("minLength", 2).
//	    Field("email").Rule("required").Rule("email")
//
//	res := validator.ValidateTarget(ctx, validator.TargetOf[User](), map[string]any{
//	    "name":  "John",
//	    "email": "john@example.com",
//	})
//	if !res.Success {
//	    for _, e := range res.Errors {
//	        fmt.Println(e.PropertyName, e.Message)
//	    }
//	}
//
// Single values use an ad-hoc rule list:
//
//	res := validator.Validate(ctx, 15, validator.Rules(validator.With("numberLessThan", 10)))
//
// # Built-in rules
//
// RegisterBuiltins installs required, minLength, maxLength,
// length, min, max, numberLessThan, numberGreaterThan, between, email, url,
// uuid, alpha, alphanumeric, numeric, regex, in, notIn, equalsField, date,
// before, after, minAge, birthdate, password, notCommonPassword,
// passwordEntropy, slug, domain, semver, hex, creditCard, currencyCode and
// decimalPlaces. Every rule except required passes nil values. Date rules
// read "now" from RuleInput.Now, which WithClock controls.
//
// # Messages
//
// A Translator (see package messages) renders failures from the key
// "validation.<rule>" and the template values of the failure. A
// MessageBuilder post-processes every message. Without either, the rule's
// own message is used.
//
// # Concurrency
//
// Registry and MetadataStore are guarded by read/write locks and only read
// during validation, so any number of validations may run concurrently.
// Per-call state never leaves the call.
package validator
