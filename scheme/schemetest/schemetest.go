// Package schemetest runs sequences of expressions against a fresh
// standard environment and compares the printed results.
package schemetest

import (
	"testing"

	"github.com/nukata/schemer/scheme"
	"github.com/stretchr/testify/assert"
)

// TestSequence is a sequence of expressions which are evaluated
// sequentially in one environment.
// Result is the printed value or, if evaluation fails, the error text.
type TestSequence []struct {
	Expr   string
	Result string
}

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on an isolated environment
// made by newEnv, or by scheme.StandardEnv when newEnv is nil.
func RunTestSuite(t *testing.T, tests TestSuite, newEnv func() *scheme.Environment) {
	if newEnv == nil {
		newEnv = scheme.StandardEnv
	}
	for _, test := range tests {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			env := newEnv()
			for j, expr := range test.TestSequence {
				assert.Equal(t, expr.Result, EvalString(expr.Expr, env),
					"expr %d: %s", j, expr.Expr)
			}
		})
	}
}

// EvalString evaluates text in env and returns the printed result or
// the error text.
func EvalString(text string, env *scheme.Environment) string {
	x, err := scheme.Eval(text, env)
	if err != nil {
		return err.Error()
	}
	return x.String()
}
