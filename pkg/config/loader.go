package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read automatically on first Load when it exists.
const DefaultEnvFile = ".env"

type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	mu      sync.Mutex
	entries = map[reflect.Type]*entry{}

	envOnce sync.Once

	validate = validator.New(validator.WithRequiredStructEnabled())
)

// LoadEnv reads the given env files into the process environment. Variables
// already set in the environment win over file values. Missing files are an
// error here, unlike the implicit DefaultEnvFile load.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load fills v from the environment. The first successful result for a given
// type is cached and copied into v on later calls.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	envOnce.Do(func() {
		if _, err := os.Stat(DefaultEnvFile); err == nil {
			_ = godotenv.Load(DefaultEnvFile)
		}
	})

	e := entryFor(reflect.TypeFor[T]())
	e.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		if err := validateStruct(parsed); err != nil {
			e.err = err
			return
		}
		e.value = parsed
	})

	if e.err != nil {
		// A failed parse is not cached so a corrected environment can be retried.
		dropEntry(reflect.TypeFor[T](), e)
		return e.err
	}
	cached, ok := e.value.(T)
	if !ok {
		return ErrConfigNotCached
	}
	*v = cached
	return nil
}

// MustLoad is Load that panics on error. Use it in main only.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// ResetCache forgets every cached configuration.
func ResetCache() {
	mu.Lock()
	entries = map[reflect.Type]*entry{}
	mu.Unlock()
}

func entryFor(t reflect.Type) *entry {
	mu.Lock()
	defer mu.Unlock()
	e, ok := entries[t]
	if !ok {
		e = &entry{}
		entries[t] = e
	}
	return e
}

func dropEntry(t reflect.Type, e *entry) {
	mu.Lock()
	if entries[t] == e {
		delete(entries, t)
	}
	mu.Unlock()
}

// Validate checks v against its validate tags, for values changed after
// Load such as command-line overrides.
func Validate(v any) error {
	return validateStruct(v)
}

func validateStruct(v any) error {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return nil
	}
	if err := validate.Struct(rv.Interface()); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}
