/*
  schemer: a small Scheme-like interpreter in Go.

  The Reader, the evaluation loops and other portions are derived from
  Nukata Scheme in Go (https://github.com/nukata/scheme-in-go).
*/
package scheme

import (
	"strconv"
	"strings"
)

const Version = 0.60

// Expression is the single value type of the language.
// It is implemented by Bool, Number, Symbol, List, Primitive and *Closure.
type Expression interface {
	String() string
}

// Bool represents a boolean.
type Bool bool

// Number represents a real number.
type Number float64

// Symbol represents an identifier.
type Symbol string

// List represents a parenthesized sequence of expressions.
// It only appears as program source; no procedure returns a List.
type List []Expression

// Primitive represents an intrinsic procedure.
type Primitive struct {
	Name string
	Fn   func(args []Expression) (Expression, error)
}

// Closure represents a procedure defined by (define (name param...) body...).
// Env is a snapshot of the defining environment; it does not contain
// the closure itself, which is bound as Name at each call.
type Closure struct {
	Name   Symbol
	Params List // each is a Symbol
	Body   List
	Env    *Environment
}

// Expression keywords

const (
	Define_ = Symbol("define")
	If_     = Symbol("if")
)

//----------------------------------------------------------------------

// b.String() returns "true" or "false".
func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

// n.String() returns the shortest decimal form of n without an exponent.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (s Symbol) String() string {
	return string(s)
}

// j.String() returns "(e1 e2 ...)".
func (j List) String() string {
	s := make([]string, len(j))
	for i, x := range j {
		s[i] = x.String()
	}
	return "(" + strings.Join(s, " ") + ")"
}

func (p Primitive) String() string {
	return "<function>"
}

func (c *Closure) String() string {
	return "<function>"
}

// (a b c).FoldL(x, fn) returns fn(fn(fn(x, a), b), c).
// It stops at the first error.
func (j List) FoldL(x Number, fn func(Number, Number) (Number, error)) (Number, error) {
	for _, e := range j {
		n, err := asNumber(e)
		if err != nil {
			return 0, err
		}
		if x, err = fn(x, n); err != nil {
			return 0, err
		}
	}
	return x, nil
}

// IsProcedure returns true if x can be applied to arguments.
func IsProcedure(x Expression) bool {
	switch x.(type) {
	case Primitive, *Closure:
		return true
	}
	return false
}
