package scheme

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader is a source of input lines with a changeable prompt.
// *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// NewLineReader constructs a line editor on the terminal according to cfg.
func NewLineReader(cfg *Config) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

// Read-Eval-Print Loop of the interpreter.
// Lines are accumulated while parentheses are open. Results go to out and
// evaluation errors to logger. It returns nil at the end of input or on
// ":quit"; if cfg.FatalParseErrors is set, a ParseError ends the loop and
// is returned.
func ReadEvalPrintLoop(cfg *Config, env *Environment, lr LineReader, out io.Writer, logger *log.Logger) error {
	var pending []string
	lr.SetPrompt(cfg.Prompt)
	for {
		line, err := lr.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			pending = nil
			lr.SetPrompt(cfg.Prompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		pending = append(pending, line)
		src := strings.Join(pending, "\n")
		if parenDepth(src) > 0 {
			lr.SetPrompt(cfg.ContinuationPrompt)
			continue
		}
		pending = nil
		lr.SetPrompt(cfg.Prompt)

		switch strings.TrimSpace(src) {
		case "":
			continue
		case ":quit":
			return nil
		case ":env":
			fmt.Fprintln(out, strings.Join(env.Names(), " "))
			continue
		}

		x, err := Eval(src, env)
		var perr *ParseError
		switch {
		case errors.As(err, &perr):
			if cfg.FatalParseErrors {
				return err
			}
			logger.Printf("%s%v", cfg.ErrorPrefix, err)
		case err != nil:
			logger.Printf("%s%v", cfg.ErrorPrefix, err)
		default:
			fmt.Fprintf(out, "%s%v\n", cfg.ResultPrefix, x)
		}
	}
}

// parenDepth returns the number of unclosed parentheses in src.
func parenDepth(src string) int {
	tokens, _ := Tokenize(src)
	depth := 0
	for _, t := range tokens {
		switch t.Kind {
		case OpenParen:
			depth++
		case CloseParen:
			depth--
		}
	}
	return depth
}

// Non-Interactive Read-Eval Loop of the interpreter.
// It evaluates every expression of input in env and returns the last value.
func ReadEvalLoop(input io.Reader, env *Environment) (Expression, error) {
	var result Expression
	rr := NewReader(input)
	for {
		x, err := rr.Read()
		if errors.Is(err, io.EOF) {
			return result, nil
		}
		if err != nil {
			return nil, err
		}
		if result, err = EvalExpression(x, env); err != nil {
			return nil, err
		}
	}
}
