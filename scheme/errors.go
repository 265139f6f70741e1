package scheme

import (
	"errors"
	"fmt"
)

// LexError represents an error in tokenizing.
type LexError struct {
	Message string
}

func (err *LexError) Error() string {
	return "LexError: " + err.Message
}

// ParseError represents an error in parsing.
type ParseError struct {
	Message string
}

func (err *ParseError) Error() string {
	return "ParseError: " + err.Message
}

// ErrorKind classifies an EvalError.
type ErrorKind int

const (
	InternalError ErrorKind = iota
	UndefinedSymbol
	UndefinedProcedure
	ExpectedSymbol
	InvalidSyntax
	InvalidCondition
	TypeError
	DivideByZero
	ArityError
)

var kindNames = [...]string{
	InternalError:      "internal error",
	UndefinedSymbol:    "undefined symbol",
	UndefinedProcedure: "undefined procedure",
	ExpectedSymbol:     "expected a symbol",
	InvalidSyntax:      "invalid syntax",
	InvalidCondition:   "invalid condition",
	TypeError:          "type error",
	DivideByZero:       "divide by zero",
	ArityError:         "arity error",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels for errors.Is.
var (
	ErrInternal           = &EvalError{Kind: InternalError}
	ErrUndefinedSymbol    = &EvalError{Kind: UndefinedSymbol}
	ErrUndefinedProcedure = &EvalError{Kind: UndefinedProcedure}
	ErrExpectedSymbol     = &EvalError{Kind: ExpectedSymbol}
	ErrInvalidSyntax      = &EvalError{Kind: InvalidSyntax}
	ErrInvalidCondition   = &EvalError{Kind: InvalidCondition}
	ErrTypeError          = &EvalError{Kind: TypeError}
	ErrDivideByZero       = &EvalError{Kind: DivideByZero}
	ErrArity              = &EvalError{Kind: ArityError}
)

// EvalError represents an error in evaluation.
type EvalError struct {
	Kind    ErrorKind
	Message string
}

// NewEvalError constructs a new EvalError of kind k.
// If x is not nil, its textual representation is appended to msg.
func NewEvalError(k ErrorKind, msg string, x Expression) *EvalError {
	if x != nil {
		msg += ": " + x.String()
	}
	return &EvalError{k, msg}
}

// err.Error() returns a textual representation of err.
func (err *EvalError) Error() string {
	return "EvalError: " + err.Message
}

// Is reports whether target is an EvalError of the same kind.
func (err *EvalError) Is(target error) bool {
	var t *EvalError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == err.Kind
}
