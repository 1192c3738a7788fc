// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct parsing and
// github.com/joho/godotenv for .env files. Each configuration type is parsed
// once and cached; Reload and ResetCache exist for tests and for callers that
// change the environment at runtime.
//
//	type Config struct {
//	    Schema   string `env:"RULEKIT_SCHEMA"`
//	    Lang     string `env:"RULEKIT_LANG" envDefault:"en"`
//	    FailFast bool   `env:"RULEKIT_FAIL_FAST"`
//	}
//
//	if err := config.LoadEnv(".env.local"); err != nil {
//	    return err
//	}
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Errors wrap ErrParsingConfig, ErrNilPointer or ErrLoadingEnvFile.
package config
