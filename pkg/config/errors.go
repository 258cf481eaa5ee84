package config

import "errors"

var (
	ErrNilPointer      = errors.New("config: nil pointer provided to loader")
	ErrParsingConfig   = errors.New("config: failed to parse environment variables")
	ErrInvalidConfig   = errors.New("config: validation failed")
	ErrLoadingEnvFile  = errors.New("config: failed to load env file")
	ErrConfigNotCached = errors.New("config: value missing from cache after load")
)
