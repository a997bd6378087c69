package cmd

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ardnew/msdscript/lang"
)

// Eval interprets a program and prints its value.
type Eval struct {
	Bind     []string `help:"Bind NAME to an integer in the initial environment." placeholder:"NAME=INT" sep:"none" short:"b"`
	MaxDepth int      `default:"${maxDepth}" help:"Maximum evaluation depth (0 for no limit)."`

	Input `embed:""`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	env, err := bindings(ctx, e.Bind)
	if err != nil {
		return err
	}

	expr, err := e.parse(ctx, "eval")
	if err != nil {
		return err
	}

	v, err := lang.Eval(ctx, expr,
		lang.WithEnv(env),
		lang.WithMaxDepth(e.MaxDepth),
		lang.WithLogger(loggerFrom(ctx)),
	)
	if err != nil {
		return decorate(err, "", "eval", e.Source)
	}

	return writeLine(ctx, v.String())
}

// bindings builds the initial environment from NAME=INT pairs. Later pairs
// shadow earlier ones with the same name.
func bindings(ctx context.Context, pairs []string) (*lang.Env, error) {
	env := lang.Empty()

	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, ErrInvalidBinding.With(slog.String("binding", pair))
		}

		name = strings.TrimSpace(name)

		if err := validName(ctx, name); err != nil {
			return nil, ErrInvalidBinding.With(slog.String("binding", pair)).Wrap(err)
		}

		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 32)
		if err != nil {
			return nil, ErrInvalidBinding.With(slog.String("binding", pair)).Wrap(err)
		}

		env = env.Extend(name, lang.NumVal(n))
	}

	return env, nil
}

// validName reports an error unless name parses as a single variable.
func validName(ctx context.Context, name string) error {
	e, err := lang.Parse(ctx, name, lang.WithStrict(true))
	if err != nil {
		return ErrInvalidName.With(slog.String("name", name)).Wrap(err)
	}

	if v, ok := e.(*lang.Var); !ok || v.Name != name {
		return ErrInvalidName.With(slog.String("name", name))
	}

	return nil
}
