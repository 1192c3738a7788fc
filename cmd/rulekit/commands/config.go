package commands

import "github.com/dmitrymomot/rulekit/pkg/config"

// Config holds the environment defaults of the CLI. Flags override them.
type Config struct {
	Schema   string `env:"RULEKIT_SCHEMA"`
	Locales  string `env:"RULEKIT_LOCALES"`
	Lang     string `env:"RULEKIT_LANG" envDefault:"en"`
	Env      string `env:"RULEKIT_ENV" envDefault:"production"`
	LogLevel string `env:"RULEKIT_LOG_LEVEL" envDefault:"warn"`
	FailFast bool   `env:"RULEKIT_FAIL_FAST"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
