// Package envtest provides fake environments for tests of code that reads
// environment variables through injected functions.
package envtest

import (
	"fmt"
	"sort"
)

// Empty is an environment with no variables.
var Empty = Env{}

// Env is a fake environment.
type Env struct {
	items map[string]string
}

// Pairs builds an environment from alternating keys and values.
func Pairs(pairs ...string) (*Env, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("odd number of items in environment: %d", len(pairs))
	}

	m := make(map[string]string, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		m[pairs[i]] = pairs[i+1]
	}
	return &Env{items: m}, nil
}

// MustPairs is like Pairs but panics on error.
func MustPairs(pairs ...string) *Env {
	e, err := Pairs(pairs...)
	if err != nil {
		panic(err)
	}
	return e
}

// Getenv is a drop-in for os.Getenv.
func (e *Env) Getenv(k string) string {
	if e == nil {
		return ""
	}
	return e.items[k]
}

// Environ is a drop-in for os.Environ. Entries are sorted by key.
func (e *Env) Environ() []string {
	if e == nil || len(e.items) == 0 {
		return nil
	}

	env := make([]string, 0, len(e.items))
	for k, v := range e.items {
		env = append(env, k+"="+v)
	}
	sort.Strings(env)
	return env
}
