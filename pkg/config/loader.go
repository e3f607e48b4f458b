package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache stores one parsed copy per configuration type.
var cache = struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}{values: make(map[reflect.Type]any)}

var defaultEnvLoaded sync.Once

// Load parses environment variables into v using `env` struct tags.
//
// The default .env file is read once per process if it exists. Each
// configuration type is parsed only once; later calls get the cached copy
// until ResetCache is called.
//
//	type CookieConfig struct {
//		Secrets string `env:"COOKIE_SECRETS,required"`
//		Path    string `env:"COOKIE_PATH" envDefault:"/"`
//	}
//
//	var cfg CookieConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf((*T)(nil)).Elem()

	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cached, ok := cache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment. Variables
// that are already set are not overridden. Without arguments the default
// .env file is read.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache forgets every parsed configuration so the next Load reads the
// environment again. Intended for tests.
func ResetCache() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	clear(cache.values)
}
