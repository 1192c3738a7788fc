// Package logger builds slog loggers for rulekit and provides the attribute
// helpers used by the validation engine.
//
// New returns a *slog.Logger configured through Option functions: output
// format, level, static attributes, environment profile and context
// extractors that add attributes from the context of every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "rulekit"),
//	    logger.WithLevel(level),
//	    logger.WithContextExtractors(localeExtractor),
//	)
//	engine := validator.New(validator.WithLogger(log))
//
// Attribute helpers (Target, Field, Rule, Failures, Duration, Error, Errors)
// keep key names consistent. Error and Errors return an empty attribute for
// nil errors, so they can be passed unconditionally.
package logger
