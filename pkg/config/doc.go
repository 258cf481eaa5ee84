// Package config loads typed configuration from environment variables.
//
// Values may come from the process environment or from .env files, which are
// read once with github.com/joho/godotenv before the first parse. Structs are
// filled by github.com/caarlos0/env/v11 using `env` and `envDefault` tags, then
// checked with github.com/go-playground/validator/v10 using `validate` tags.
//
// Each package declares its own Config struct next to the code that consumes
// it (httpserver.Config, redis.Config, file.S3Config and so on). Parsed values
// are cached per type, so repeated calls return the same result:
//
//	var cfg httpserver.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Call LoadEnv with explicit paths to read a non-default env file, and
// ResetCache in tests that change the environment between loads.
package config
