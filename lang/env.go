package lang

import (
	"errors"
	"iter"
	"log/slog"
)

// Env is an immutable chain of name-to-value bindings.
//
// Extending an Env never modifies it, so an Env captured by a closure is
// unaffected by bindings made later by other code, and an Env may be shared
// by any number of goroutines.
type Env struct {
	name  string
	value Value
	next  *Env
}

// empty terminates every environment chain.
var empty = &Env{}

// Empty returns the environment with no bindings. Every call returns the same
// frame.
func Empty() *Env { return empty }

// Extend returns a new environment binding name to v in front of e.
// A nil receiver is treated as [Empty].
func (e *Env) Extend(name string, v Value) *Env {
	if e == nil {
		e = empty
	}

	return &Env{name: name, value: v, next: e}
}

// Lookup returns the value of the innermost binding of name.
func (e *Env) Lookup(name string) (Value, error) {
	for f := e; f != nil && f != empty; f = f.next {
		if f.name == name {
			return f.value, nil
		}
	}

	return nil, ErrUnboundVariable.
		Wrap(errors.New(name)).
		With(slog.String("name", name))
}

// All returns an iterator over the visible bindings of e, innermost first.
// Shadowed bindings are skipped.
func (e *Env) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		seen := make(map[string]struct{})

		for f := e; f != nil && f != empty; f = f.next {
			if _, ok := seen[f.name]; ok {
				continue
			}

			seen[f.name] = struct{}{}

			if !yield(f.name, f.value) {
				return
			}
		}
	}
}

// Len returns the number of frames in e, counting shadowed bindings.
func (e *Env) Len() int {
	n := 0
	for f := e; f != nil && f != empty; f = f.next {
		n++
	}

	return n
}
