// Package messages renders localized validation messages from JSON or YAML
// catalogs.
//
// A catalog document maps language codes to nested message maps:
//
//	en:
//	  validation:
//	    required: "%{field} is required"
//	    min_length: "%{field} must be at least %{min} characters"
//
// Keys are looked up with dot notation ("validation.required") and "%{name}"
// placeholders are filled from the template values of the failure. A Catalog
// implements validator.Translator; the language comes from the context
// (WithLocale) and falls back to the default language.
//
//	cat, err := messages.New(ctx, messages.DirSource("./locales"),
//		messages.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//		return err
//	}
//	engine := validator.New(validator.WithDefaultTranslator(cat))
//	res := engine.ValidateTarget(messages.WithLocale(ctx, "de"), target, data)
//
// Match negotiates a language from an Accept-Language style list or a POSIX
// locale name such as "de_DE.UTF-8".
package messages
