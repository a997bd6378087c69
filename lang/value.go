package lang

import (
	"errors"
	"log/slog"
	"strconv"
)

// Value is the result of evaluating an [Expr]: a [NumVal], a [BoolVal], or a
// [*Closure].
type Value interface {
	// String renders numbers in decimal, booleans as _true or _false, and
	// closures in the canonical form of their function expression.
	String() string

	value()
}

// NumVal is a 32-bit signed integer value.
type NumVal int32

// BoolVal is a boolean value.
type BoolVal bool

// Closure is a function value together with the environment in which the
// function expression was evaluated.
type Closure struct {
	Param string
	Body  Expr
	Env   *Env
}

func (v NumVal) String() string { return strconv.FormatInt(int64(v), 10) }

func (v BoolVal) String() string { return boolKeyword(bool(v)).String() }

func (c *Closure) String() string { return Print(Reify(c)) }

func (NumVal) value()   {}
func (BoolVal) value()  {}
func (*Closure) value() {}

var (
	errAddOperand  = errors.New("add of non-number")
	errMultOperand = errors.New("mult of non-number")
	errNotCallable = errors.New("call of non-function")
	errNotBoolean  = errors.New("test of non-boolean")
)

// AddValues returns the sum of two numbers, wrapping modulo 2^32.
func AddValues(a, b Value) (Value, error) {
	x, xok := a.(NumVal)
	y, yok := b.(NumVal)

	if !xok || !yok {
		return nil, typeError(errAddOperand, a, b)
	}

	return NumVal(int32(uint32(x) + uint32(y))), nil
}

// MultiplyValues returns the product of two numbers, wrapping modulo 2^32.
func MultiplyValues(a, b Value) (Value, error) {
	x, xok := a.(NumVal)
	y, yok := b.(NumVal)

	if !xok || !yok {
		return nil, typeError(errMultOperand, a, b)
	}

	return NumVal(int32(uint32(x) * uint32(y))), nil
}

// CallValue applies the closure f to arg. The body is evaluated in the
// closure's captured environment extended with its parameter.
func CallValue(f, arg Value) (Value, error) {
	return defaultEvaluator().call(f, arg)
}

// IsTrue returns the truth of a boolean value.
func IsTrue(v Value) (bool, error) {
	b, ok := v.(BoolVal)
	if !ok {
		return false, typeError(errNotBoolean, v)
	}

	return bool(b), nil
}

// ValuesEqual reports whether a and b are the same kind and equal. Closures
// are equal if their parameters and bodies are; captured environments are
// not compared.
func ValuesEqual(a, b Value) bool {
	switch a := a.(type) {
	case NumVal:
		b, ok := b.(NumVal)

		return ok && a == b
	case BoolVal:
		b, ok := b.(BoolVal)

		return ok && a == b
	case *Closure:
		b, ok := b.(*Closure)

		return ok && a.Param == b.Param && Equal(a.Body, b.Body)
	default:
		return false
	}
}

// Reify returns an expression that evaluates to v in any environment binding
// the free variables of a closure body. A closure's environment is discarded.
func Reify(v Value) Expr {
	switch v := v.(type) {
	case NumVal:
		return &Num{Value: int32(v)}
	case BoolVal:
		return &Bool{Value: bool(v)}
	case *Closure:
		return &Fun{Param: v.Param, Body: v.Body}
	default:
		return nil
	}
}

// ValueKind names the variant of v for messages and logs.
func ValueKind(v Value) string {
	switch v.(type) {
	case NumVal:
		return "number"
	case BoolVal:
		return "boolean"
	case *Closure:
		return "function"
	default:
		return "nil"
	}
}

func typeError(cause error, operands ...Value) *Error {
	attrs := make([]slog.Attr, len(operands))
	for i, v := range operands {
		attrs[i] = slog.String("operand"+strconv.Itoa(i), ValueKind(v))
	}

	return ErrType.Wrap(cause).With(attrs...)
}
