package credentials

import "os"

// EnvGetter abstracts environment lookups for testing.
type EnvGetter interface {
	LookupEnv(key string) (string, bool)
}

// RealEnvGetter reads the process environment.
type RealEnvGetter struct{}

func (r *RealEnvGetter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnv is an EnvGetter backed by a fixed snapshot.
type MapEnv map[string]string

func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
