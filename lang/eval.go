package lang

import (
	"context"
	"log/slog"
)

// DefaultMaxDepth bounds the nesting of evaluation. Programs that recurse
// through a fixed-point combinator fail with [ErrMaxDepthExceeded] instead of
// exhausting the stack.
const DefaultMaxDepth = 100000

// Interp evaluates e in env. A nil env is treated as [Empty].
func Interp(e Expr, env *Env) (Value, error) {
	return defaultEvaluator().eval(e, env)
}

// Eval evaluates e in the environment given by [WithEnv], or [Empty].
// Evaluation stops early with the context's error if ctx is canceled.
func Eval(ctx context.Context, e Expr, opts ...Option) (Value, error) {
	o := makeOptions(opts...)

	o.logger.TraceContext(ctx, "eval start",
		slog.String("kind", e.Kind().String()),
		slog.Int("bindings", o.env.Len()))

	ev := &evaluator{ctx: ctx, maxDepth: o.maxDepth}

	v, err := ev.eval(e, o.env)
	if err != nil {
		o.logger.TraceContext(ctx, "eval failed", slog.Any("error", err))

		return nil, err
	}

	o.logger.TraceContext(ctx, "eval result",
		slog.String("type", ValueKind(v)),
		slog.String("value", v.String()))

	return v, nil
}

// evaluator carries the state shared by one evaluation.
type evaluator struct {
	ctx      context.Context
	maxDepth int
	depth    int
}

func defaultEvaluator() *evaluator {
	return &evaluator{ctx: context.Background(), maxDepth: DefaultMaxDepth}
}

func (ev *evaluator) eval(e Expr, env *Env) (Value, error) {
	if env == nil {
		env = Empty()
	}

	ev.depth++
	defer func() { ev.depth-- }()

	if ev.maxDepth > 0 && ev.depth > ev.maxDepth {
		return nil, ErrMaxDepthExceeded.With(slog.Int("limit", ev.maxDepth))
	}

	switch e := e.(type) {
	case *Num:
		return NumVal(e.Value), nil

	case *Bool:
		return BoolVal(e.Value), nil

	case *Var:
		return env.Lookup(e.Name)

	case *Add:
		l, r, err := ev.operands(e.LHS, e.RHS, env)
		if err != nil {
			return nil, err
		}

		return AddValues(l, r)

	case *Mult:
		l, r, err := ev.operands(e.LHS, e.RHS, env)
		if err != nil {
			return nil, err
		}

		return MultiplyValues(l, r)

	case *Equals:
		l, r, err := ev.operands(e.LHS, e.RHS, env)
		if err != nil {
			return nil, err
		}

		return BoolVal(ValuesEqual(l, r)), nil

	case *Let:
		v, err := ev.eval(e.Bound, env)
		if err != nil {
			return nil, err
		}

		return ev.eval(e.Body, env.Extend(e.Name, v))

	case *If:
		c, err := ev.eval(e.Cond, env)
		if err != nil {
			return nil, err
		}

		ok, err := IsTrue(c)
		if err != nil {
			return nil, err
		}

		if ok {
			return ev.eval(e.Then, env)
		}

		return ev.eval(e.Else, env)

	case *Fun:
		return &Closure{Param: e.Param, Body: e.Body, Env: env}, nil

	case *Call:
		f, err := ev.eval(e.Callee, env)
		if err != nil {
			return nil, err
		}

		arg, err := ev.eval(e.Arg, env)
		if err != nil {
			return nil, err
		}

		if err := ev.ctx.Err(); err != nil {
			return nil, err
		}

		return ev.call(f, arg)

	default:
		return nil, ErrType.With(slog.String("kind", "unknown expression"))
	}
}

func (ev *evaluator) operands(lhs, rhs Expr, env *Env) (Value, Value, error) {
	l, err := ev.eval(lhs, env)
	if err != nil {
		return nil, nil, err
	}

	r, err := ev.eval(rhs, env)
	if err != nil {
		return nil, nil, err
	}

	return l, r, nil
}

func (ev *evaluator) call(f, arg Value) (Value, error) {
	c, ok := f.(*Closure)
	if !ok {
		return nil, typeError(errNotCallable, f)
	}

	return ev.eval(c.Body, c.Env.Extend(c.Param, arg))
}
