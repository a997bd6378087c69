package cmd

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ardnew/msdscript/cli/cmd/repl"
)

// Repl runs the interactive read-eval-print loop. Each line is evaluated on
// its own; no bindings carry over between lines.
//
// When standard input is not a terminal, lines are read and evaluated without
// the interactive interface.
type Repl struct {
	History  bool `default:"true" help:"Persist input history in the cache directory." negatable:""`
	MaxDepth int  `default:"${maxDepth}" help:"Maximum evaluation depth (0 for no limit)."`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	cfg := repl.Config{
		MaxDepth: r.MaxDepth,
		Logger:   loggerFrom(ctx),
	}

	if r.History {
		if ktx := kongContextFrom(ctx); ktx != nil {
			cfg.CacheDir = ktx.Model.Vars()[CacheIdentifier]
		}
	}

	in := stdinFrom(ctx)

	if f, ok := in.(*os.File); !ok || !isTerminal(f) {
		return repl.RunLines(ctx, in, stdoutFrom(ctx), cfg)
	}

	return repl.Run(ctx, nil, nil, cfg)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
