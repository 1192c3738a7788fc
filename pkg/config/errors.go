package config

import "errors"

var (
	ErrParsingConfig  = errors.New("config: failed to parse environment variables")
	ErrNilPointer     = errors.New("config: nil pointer provided to loader")
	ErrLoadingEnvFile = errors.New("config: failed to load env file")
)
