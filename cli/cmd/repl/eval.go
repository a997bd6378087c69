package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/msdscript/lang"
	"github.com/ardnew/msdscript/log"
)

// Config holds the settings of one REPL session.
type Config struct {
	// CacheDir is the directory holding the history file. An empty CacheDir
	// disables history persistence.
	CacheDir string
	// MaxDepth bounds evaluation depth. See [lang.WithMaxDepth].
	MaxDepth int
	// Logger receives trace output from the REPL and the interpreter.
	Logger log.Logger
}

// evaluate parses and interprets one program. It returns the parsed
// expression along with the value so callers can reformat the input.
func (c Config) evaluate(ctx context.Context, src string) (lang.Expr, lang.Value, error) {
	e, err := lang.Parse(ctx, src, lang.WithStrict(true), lang.WithLogger(c.Logger))
	if err != nil {
		return nil, nil, err
	}

	v, err := lang.Eval(ctx, e,
		lang.WithMaxDepth(c.MaxDepth),
		lang.WithLogger(c.Logger),
	)
	if err != nil {
		return e, nil, err
	}

	return e, v, nil
}

// errorText renders err for display, with a source snippet for parse errors.
func errorText(err error, src string) string {
	text := "error: " + err.Error()

	if snip := lang.WrapError(err).Snippet(src); snip != "" {
		text += "\n" + strings.TrimRight(snip, "\n")
	}

	return text
}

// maxLineSize is the longest input line RunLines accepts.
const maxLineSize = 16 << 20

// RunLines is the non-interactive REPL. Each non-blank line of r is
// evaluated on its own and its value, or error, is written to w. Errors do
// not stop the loop. RunLines returns when r is exhausted or ctx is done.
func RunLines(ctx context.Context, r io.Reader, w io.Writer, cfg Config) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	n := 0

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		n++

		var out string

		if _, v, err := cfg.evaluate(ctx, line); err != nil {
			out = errorText(err, line)
		} else {
			out = v.String()
		}

		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}

	cfg.Logger.TraceContext(ctx, "repl lines done", slog.Int("count", n))

	return scanner.Err()
}
