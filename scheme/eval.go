package scheme

import "fmt"

// Eval parses text and evaluates the resulting expression in env.
// A top-level define binds its name in env itself.
func Eval(text string, env *Environment) (Expression, error) {
	x, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return EvalExpression(x, env)
}

// EvalExpression evaluates x in env.
// If a Go panic happens, it is returned as an EvalError of InternalError.
func EvalExpression(x Expression, env *Environment) (result Expression, err error) {
	defer func() {
		if e := recover(); e != nil {
			result, err = nil, &EvalError{InternalError, fmt.Sprintf("%v", e)}
		}
	}()
	return eval(x, env)
}

func eval(x Expression, env *Environment) (Expression, error) {
	switch x := x.(type) {
	case Symbol:
		if v, ok := env.Get(string(x)); ok {
			return v, nil
		}
		return nil, NewEvalError(UndefinedSymbol, "undefined symbol", x)
	case List:
		return evalList(x, env)
	default: // booleans, numbers and procedures
		return x, nil
	}
}

func evalList(j List, env *Environment) (Expression, error) {
	if len(j) == 0 {
		return nil, NewEvalError(ExpectedSymbol, "expected a symbol", j)
	}
	f, ok := j[0].(Symbol)
	if !ok {
		return nil, NewEvalError(ExpectedSymbol, "expected a symbol", j[0])
	}
	switch f {
	case Define_:
		return evalDefine(j, env)
	case If_:
		return evalIf(j, env)
	}
	fun, ok := env.Get(string(f))
	if !ok || !IsProcedure(fun) {
		return nil, NewEvalError(UndefinedProcedure, "undefined procedure", f)
	}
	args := make([]Expression, 0, len(j)-1)
	for _, e := range j[1:] {
		v, err := eval(e, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return applyFunc(f, fun, args, env)
}

// applyFunc applies fun, which has been looked up as name, to args.
func applyFunc(name Symbol, fun Expression, args []Expression, env *Environment) (Expression, error) {
	switch fn := fun.(type) {
	case Primitive:
		v, err := fn.Fn(args)
		if err != nil {
			return nil, err
		}
		return v, nil
	case *Closure:
		if env.StrictArity && len(args) != len(fn.Params) {
			return nil, NewEvalError(ArityError,
				fmt.Sprintf("%s expects %d argument(s), got %d",
					name, len(fn.Params), len(args)), nil)
		}
		local := fn.Env.Clone()
		if fn.Name != "" {
			local.Insert(string(fn.Name), fn)
		}
		local.Insert(string(name), fn)
		n := min(len(fn.Params), len(args))
		for i := 0; i < n; i++ {
			p, ok := fn.Params[i].(Symbol)
			if !ok {
				return nil, NewEvalError(InvalidSyntax, "invalid parameter name", fn.Params[i])
			}
			local.Insert(string(p), args[i])
		}
		var result Expression = Bool(false)
		for _, e := range fn.Body {
			v, err := eval(e, local)
			if err != nil {
				return nil, err
			}
			result = v
		}
		return result, nil
	}
	return nil, NewEvalError(UndefinedProcedure, "undefined procedure", name)
}

// (define (name param...) body...) or (define name e)
func evalDefine(j List, env *Environment) (Expression, error) {
	if len(j) < 3 {
		return nil, NewEvalError(InvalidSyntax, "'define' requires at least two arguments", j)
	}
	switch target := j[1].(type) {
	case List:
		if len(target) == 0 {
			return nil, NewEvalError(InvalidSyntax, "invalid define syntax", j)
		}
		name, ok := target[0].(Symbol)
		if !ok {
			return nil, NewEvalError(InvalidSyntax, "invalid define syntax", j)
		}
		params := make(List, 0, len(target)-1)
		for _, p := range target[1:] {
			if _, ok := p.(Symbol); !ok {
				return nil, NewEvalError(InvalidSyntax, "invalid parameter name", p)
			}
			params = append(params, p)
		}
		c := &Closure{Name: name, Params: params, Body: j[2:], Env: env.Clone()}
		env.Insert(string(name), c)
		return name, nil
	case Symbol:
		v, err := eval(j[2], env)
		if err != nil {
			return nil, err
		}
		env.Insert(string(target), v)
		return target, nil
	}
	return nil, NewEvalError(InvalidSyntax, "invalid define syntax", j)
}

// (if cond then else)
func evalIf(j List, env *Environment) (Expression, error) {
	if len(j) != 4 {
		return nil, NewEvalError(InvalidSyntax, "'if' requires exactly three arguments", j)
	}
	cond, err := eval(j[1], env)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(Bool)
	if !ok {
		return nil, NewEvalError(InvalidCondition, "invalid condition in if expression", cond)
	}
	if b {
		return eval(j[2], env)
	}
	return eval(j[3], env)
}
