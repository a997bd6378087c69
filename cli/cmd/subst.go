package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/msdscript/lang"
)

// Subst replaces every free occurrence of a variable in a program with an
// expression. Binders in the program are not renamed, so free variables of
// the replacement may be captured.
type Subst struct {
	Name        string `arg:"" help:"Variable to replace."                        name:"name"`
	Replacement string `arg:"" help:"Expression substituted for the variable."    name:"replacement"`
	Canonical   bool   `help:"Print the canonical form instead of the pretty form." short:"c"`

	Input `embed:""`
}

// Run executes the subst command.
func (s *Subst) Run(ctx context.Context) error {
	if err := validName(ctx, s.Name); err != nil {
		return err
	}

	repl, err := lang.Parse(ctx, s.Replacement,
		lang.WithStrict(true),
		lang.WithLogger(loggerFrom(ctx)),
	)
	if err != nil {
		return decorate(err, s.Replacement, "subst", "").
			With(slog.String("argument", "replacement"))
	}

	e, err := s.parse(ctx, "subst")
	if err != nil {
		return err
	}

	out := lang.Subst(e, s.Name, repl)

	if s.Canonical {
		return writeLine(ctx, lang.Print(out))
	}

	return writeLine(ctx, lang.PrettyPrint(out))
}
