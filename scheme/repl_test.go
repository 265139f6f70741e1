package scheme_test

import (
	"bytes"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/nukata/schemer/scheme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedLines feeds fixed lines to the loop and records the prompts.
type scriptedLines struct {
	lines   []string
	prompts []string
	prompt  string
	errs    map[int]error
	n       int
}

func (s *scriptedLines) Readline() (string, error) {
	s.prompts = append(s.prompts, s.prompt)
	defer func() { s.n++ }()
	if err, ok := s.errs[s.n]; ok {
		return "", err
	}
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptedLines) SetPrompt(prompt string) {
	s.prompt = prompt
}

func runLoop(t *testing.T, cfg *scheme.Config, lr *scriptedLines) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	err := scheme.ReadEvalPrintLoop(cfg, cfg.NewEnv(), lr, &out, log.New(&logs, "", 0))
	return out.String(), logs.String(), err
}

func TestReadEvalPrintLoop(t *testing.T) {
	lr := &scriptedLines{lines: []string{
		"(define (square x) (* x x))",
		"",
		"(square 5)",
		"(square y)",
		"(+ 1 2)",
	}}
	out, logs, err := runLoop(t, scheme.DefaultConfig(), lr)
	require.NoError(t, err)
	assert.Equal(t, " ==> square\n ==> 25\n ==> 3\n", out)
	assert.Equal(t, "==> Error: EvalError: undefined symbol: y\n", logs)
}

func TestReadEvalPrintLoopContinuation(t *testing.T) {
	lr := &scriptedLines{lines: []string{
		"(define (fib n)",
		"  (if (< n 2) 1",
		"      (+ (fib (- n 1)) (fib (- n 2)))))",
		"(fib 10)",
	}}
	cfg := scheme.DefaultConfig()
	out, _, err := runLoop(t, cfg, lr)
	require.NoError(t, err)
	assert.Equal(t, " ==> fib\n ==> 89\n", out)
	assert.Equal(t, []string{
		cfg.Prompt, cfg.ContinuationPrompt, cfg.ContinuationPrompt, cfg.Prompt, cfg.Prompt,
	}, lr.prompts)
}

func TestReadEvalPrintLoopFatalParseError(t *testing.T) {
	lr := &scriptedLines{lines: []string{"(+ 1 1)", "oops", "(+ 2 2)"}}
	out, _, err := runLoop(t, scheme.DefaultConfig(), lr)
	var perr *scheme.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, " ==> 2\n", out)
	assert.Equal(t, []string{"(+ 2 2)"}, lr.lines)
}

func TestReadEvalPrintLoopRecoverableParseError(t *testing.T) {
	cfg := scheme.DefaultConfig()
	cfg.FatalParseErrors = false
	lr := &scriptedLines{lines: []string{"oops", "(+ 2 2)"}}
	out, logs, err := runLoop(t, cfg, lr)
	require.NoError(t, err)
	assert.Equal(t, " ==> 4\n", out)
	assert.Equal(t, "==> Error: ParseError: expected open paren, found oops\n", logs)
}

func TestReadEvalPrintLoopCommands(t *testing.T) {
	lr := &scriptedLines{lines: []string{"(define z 1)", ":env", ":quit", "(+ 1 1)"}}
	out, _, err := runLoop(t, scheme.DefaultConfig(), lr)
	require.NoError(t, err)
	assert.Equal(t, " ==> z\n* + - / < <= = > >= pi pow z\n", out)
}

func TestReadEvalPrintLoopInterrupt(t *testing.T) {
	lr := &scriptedLines{
		lines: []string{"(+ 1", "(+ 5 5)"},
		errs:  map[int]error{1: readline.ErrInterrupt},
	}
	out, _, err := runLoop(t, scheme.DefaultConfig(), lr)
	require.NoError(t, err)
	assert.Equal(t, " ==> 10\n", out)
}

func TestReadEvalPrintLoopReadError(t *testing.T) {
	failure := errors.New("tty gone")
	lr := &scriptedLines{errs: map[int]error{0: failure}}
	_, _, err := runLoop(t, scheme.DefaultConfig(), lr)
	assert.ErrorIs(t, err, failure)
}

func TestReadEvalLoop(t *testing.T) {
	env := scheme.StandardEnv()
	x, err := scheme.ReadEvalLoop(strings.NewReader(`
(define (cube x)
  (define (square x) (* x x))
  (* x (square x)))
(cube 3)
`), env)
	require.NoError(t, err)
	assert.Equal(t, scheme.Number(27), x)
	_, ok := env.Get("cube")
	assert.True(t, ok)
}

func TestReadEvalLoopErrors(t *testing.T) {
	_, err := scheme.ReadEvalLoop(strings.NewReader("(+ 1 1) (car 1)"), scheme.StandardEnv())
	assert.ErrorIs(t, err, scheme.ErrUndefinedProcedure)

	_, err = scheme.ReadEvalLoop(strings.NewReader("(+ 1 1) (+ 2"), scheme.StandardEnv())
	var perr *scheme.ParseError
	assert.ErrorAs(t, err, &perr)

	x, err := scheme.ReadEvalLoop(strings.NewReader(""), scheme.StandardEnv())
	require.NoError(t, err)
	assert.Nil(t, x)
}
