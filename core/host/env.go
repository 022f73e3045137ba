package host

import (
	"fmt"
	"os"
	"sync"
)

// Env is a read-only view of the process environment. The interpreter
// treats variables like PATH and HOME as opaque key-value lookups;
// re-reading on every use is deliberate so external changes are seen.
type Env interface {
	// Getenv retrieves the value of the environment variable named by
	// the key, empty if the variable is not present.
	Getenv(key string) string

	// LookupEnv retrieves the value of the environment variable named
	// by the key; the boolean reports whether it is present at all.
	LookupEnv(key string) (string, bool)

	// Environ returns a copy of strings representing the environment,
	// in the form "key=value".
	Environ() []string
}

// OSEnv reads the real process environment.
type OSEnv struct{}

var _ Env = OSEnv{}

func (OSEnv) Getenv(key string) string {
	return os.Getenv(key)
}

func (OSEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OSEnv) Environ() []string {
	return os.Environ()
}

// NewMapEnv creates a new empty in-memory environment.
func NewMapEnv() *MapEnv {
	return &MapEnv{}
}

// MapEnv implements Env backed by a map. Used by tests and anywhere a
// scratch environment is needed.
type MapEnv struct {
	mu  sync.RWMutex
	env map[string]string
}

var _ Env = (*MapEnv)(nil)

func (m *MapEnv) Setenv(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.env == nil {
		m.env = make(map[string]string)
	}
	m.env[key] = value
}

func (m *MapEnv) Unsetenv(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.env, key)
}

func (m *MapEnv) LookupEnv(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	val, ok := m.env[key]
	return val, ok
}

func (m *MapEnv) Getenv(key string) string {
	val, _ := m.LookupEnv(key)
	return val
}

func (m *MapEnv) Environ() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var env []string
	for k, v := range m.env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	return env
}
