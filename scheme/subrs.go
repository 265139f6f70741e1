package scheme

import "math"

// Subrs

// builtIns is the operator library installed by StandardEnv.
var builtIns = []Primitive{
	{"+", plus_},
	{"*", star_},
	{"-", minus_},
	{"/", slash_},
	{"pow", pow_},
	{"=", compare("=", func(a, b Number) bool { return a == b })},
	{">", compare(">", func(a, b Number) bool { return a > b })},
	{"<", compare("<", func(a, b Number) bool { return a < b })},
	{">=", compare(">=", func(a, b Number) bool { return a >= b })},
	{"<=", compare("<=", func(a, b Number) bool { return a <= b })},
}

func asNumber(x Expression) (Number, error) {
	n, ok := x.(Number)
	if !ok {
		return 0, NewEvalError(TypeError, "expected a number", x)
	}
	return n, nil
}

func plus_(args []Expression) (Expression, error) {
	return List(args).FoldL(0, func(a, b Number) (Number, error) {
		return a + b, nil
	})
}

func star_(args []Expression) (Expression, error) {
	return List(args).FoldL(1, func(a, b Number) (Number, error) {
		return a * b, nil
	})
}

// (- a1 a2 ... aN) returns a1 - a2 - ... - aN; (- a1) returns a1.
func minus_(args []Expression) (Expression, error) {
	if len(args) == 0 {
		return nil, NewEvalError(ArityError, "'-' requires at least one argument", nil)
	}
	a1, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	return List(args[1:]).FoldL(a1, func(a, b Number) (Number, error) {
		return a - b, nil
	})
}

// (/ a1 a2 ... aN) returns a1 / a2 / ... / aN; (/ a1) returns a1.
func slash_(args []Expression) (Expression, error) {
	if len(args) == 0 {
		return nil, NewEvalError(ArityError, "'/' requires at least one argument", nil)
	}
	a1, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	return List(args[1:]).FoldL(a1, func(a, b Number) (Number, error) {
		if b == 0 {
			return 0, NewEvalError(DivideByZero, "cannot divide by zero", List(args))
		}
		return a / b, nil
	})
}

func pow_(args []Expression) (Expression, error) {
	base, n, err := twoNumbers("pow", args)
	if err != nil {
		return nil, err
	}
	return Number(math.Pow(float64(base), float64(n))), nil
}

func compare(name string, fn func(a, b Number) bool) func([]Expression) (Expression, error) {
	return func(args []Expression) (Expression, error) {
		a, b, err := twoNumbers(name, args)
		if err != nil {
			return nil, err
		}
		return Bool(fn(a, b)), nil
	}
}

func twoNumbers(name string, args []Expression) (Number, Number, error) {
	if len(args) != 2 {
		return 0, 0, NewEvalError(ArityError,
			"'"+name+"' requires exactly two arguments", List(args))
	}
	a, err := asNumber(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := asNumber(args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
