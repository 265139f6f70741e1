package scheme

import (
	"fmt"
	"math"
	"sort"
)

// Environment represents a mapping from names to values.
// It has value semantics: closures and procedure calls work on clones,
// so a binding made in one never shows up in another.
type Environment struct {
	table map[string]Expression

	// StrictArity makes a call to a closure with the wrong number of
	// arguments fail instead of pairing parameters and arguments up to
	// the shorter of the two. Clones inherit it.
	StrictArity bool
}

// NewEnvironment constructs an empty environment.
func NewEnvironment() *Environment {
	return &Environment{table: make(map[string]Expression)}
}

// StandardEnv constructs an environment which contains the built-in
// procedures and the constant pi.
func StandardEnv() *Environment {
	env := NewEnvironment()
	for _, p := range builtIns {
		env.Insert(p.Name, p)
	}
	env.Insert("pi", Number(math.Pi))
	return env
}

// Get retrieves the value bound to name.
func (env *Environment) Get(name string) (Expression, bool) {
	x, ok := env.table[name]
	return x, ok
}

// Insert binds name to value, replacing any former binding.
func (env *Environment) Insert(name string, value Expression) {
	env.table[name] = value
}

// Clone returns a copy of env with all its current bindings.
// Values themselves are immutable, so copying the table suffices.
func (env *Environment) Clone() *Environment {
	table := make(map[string]Expression, len(env.table))
	for k, v := range env.table {
		table[k] = v
	}
	return &Environment{table: table, StrictArity: env.StrictArity}
}

// Len returns the number of bindings in env.
func (env *Environment) Len() int {
	return len(env.table)
}

// Names returns the bound names in sorted order.
func (env *Environment) Names() []string {
	names := make([]string, 0, len(env.table))
	for k := range env.table {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// env.String() returns "#N-symbols" where N is the number of bindings.
func (env *Environment) String() string {
	return fmt.Sprintf("#%d-symbols", len(env.table))
}
