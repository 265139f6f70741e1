package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/nukata/schemer/scheme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunExpressions(t *testing.T) {
	out, err := execute(t, "run", "-e", "-p", "(define (sq x) (* x x))", "(sq 12)")
	require.NoError(t, err)
	assert.Equal(t, "sq\n144\n", out)
}

func TestRunWithoutPrint(t *testing.T) {
	out, err := execute(t, "run", "-e", "(+ 1 2)")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRunFile(t *testing.T) {
	path := writeFile(t, "fact.scm", `
(define (fact n)
  (if (<= n 1) 1 (* n (fact (- n 1)))))
(fact 10)
`)
	out, err := execute(t, "run", "--print", path)
	require.NoError(t, err)
	assert.Equal(t, "3628800\n", out)
}

func TestRunErrors(t *testing.T) {
	_, err := execute(t, "run", "-e", "(/ 1 0)")
	assert.ErrorIs(t, err, scheme.ErrDivideByZero)

	path := writeFile(t, "broken.scm", "(+ 1")
	_, err = execute(t, "run", path)
	var perr *scheme.ParseError
	assert.ErrorAs(t, err, &perr)
	assert.ErrorContains(t, err, path)

	_, err = execute(t, "run", filepath.Join(t.TempDir(), "missing.scm"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "run")
	assert.Error(t, err)
}

func TestRunStrictArityConfig(t *testing.T) {
	cfg := writeFile(t, "schemer.yml", "strict_arity: true\n")
	_, err := execute(t, "--config", cfg, "run", "-e", "(define (id v) v)", "(id 1 2)")
	assert.ErrorIs(t, err, scheme.ErrArity)

	out, err := execute(t, "run", "-e", "-p", "(define (id v) v)", "(id 1 2)")
	require.NoError(t, err)
	assert.Equal(t, "id\n1\n", out)
}

func TestMainExitStatus(t *testing.T) {
	assert.Equal(t, 0, Main([]string{"run", "-e", "(+ 1 1)"}))
	assert.Equal(t, 1, Main([]string{"run", "-e", "(undefined)"}))
}
