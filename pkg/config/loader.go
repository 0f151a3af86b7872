package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cache         sync.Map // reflect.Type -> *entry
	dotEnvOnce    sync.Once
	dotEnvEnabled = true
)

// Load parses environment variables into v. Each type is parsed once; later
// calls copy the cached value. A failed parse is not cached.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotEnvOnce.Do(func() {
		if dotEnvEnabled {
			// .env is optional
			_ = godotenv.Load()
		}
	})

	key := reflect.TypeFor[T]()
	e, _ := cache.LoadOrStore(key, &entry{})
	ent := e.(*entry)

	ent.once.Do(func() {
		cfg := *v
		if err := env.Parse(&cfg); err != nil {
			ent.err = errors.Join(ErrParsingConfig, err)
			return
		}
		ent.value = cfg
	})

	if ent.err != nil {
		cache.CompareAndDelete(key, ent)
		return ent.err
	}

	*v = ent.value.(T)
	return nil
}

// MustLoad is Load that panics on failure, for settings required at startup.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given env files into the process environment without
// overriding variables that are already set. It disables the implicit .env
// lookup performed by Load.
func LoadEnv(files ...string) error {
	dotEnvOnce.Do(func() { dotEnvEnabled = false })
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnv, err)
	}
	return nil
}
