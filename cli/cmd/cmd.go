package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/msdscript/lang"
	"github.com/ardnew/msdscript/log"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	stdinKey  struct{}
	stdoutKey struct{}
	loggerKey struct{}
)

// WithStdio returns a new context.Context whose commands read standard input
// from r and write results to w. A nil reader or writer keeps the current one.
func WithStdio(ctx context.Context, r io.Reader, w io.Writer) context.Context {
	if r != nil {
		ctx = context.WithValue(ctx, stdinKey{}, r)
	}

	if w != nil {
		ctx = context.WithValue(ctx, stdoutKey{}, w)
	}

	return ctx
}

func stdinFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(stdinKey{}).(io.Reader); ok {
		return r
	}

	return os.Stdin
}

func stdoutFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(stdoutKey{}).(io.Writer); ok {
		return w
	}

	return os.Stdout
}

// WithLogger returns a new context.Context whose commands pass logger to the
// interpreter for trace output.
func WithLogger(ctx context.Context, logger log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

func loggerFrom(ctx context.Context) log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(log.Logger); ok {
		return l
	}

	return log.Default()
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// Input is the source program shared by commands that read one.
type Input struct {
	Source string `arg:"" default:"-" help:"Source file or '-' for stdin." name:"source" optional:""`
}

// read returns the full program text.
func (in Input) read(ctx context.Context) (string, error) {
	var r io.Reader

	if in.Source == "" || in.Source == stdinSource {
		r = stdinFrom(ctx)
	} else {
		file, err := os.Open(in.Source)
		if err != nil {
			return "", ErrReadSource.
				With(slog.String("file", in.Source)).
				Wrap(err)
		}
		defer file.Close()

		r = file
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", ErrReadSource.
			With(slog.String("file", in.Source)).
			Wrap(err)
	}

	return string(data), nil
}

// parse reads and parses the program. Trailing input is an error.
func (in Input) parse(ctx context.Context, command string) (lang.Expr, error) {
	src, err := in.read(ctx)
	if err != nil {
		return nil, err
	}

	e, err := lang.Parse(ctx, src,
		lang.WithStrict(true),
		lang.WithLogger(loggerFrom(ctx)),
	)
	if err != nil {
		return nil, decorate(err, src, command, in.Source)
	}

	return e, nil
}

// decorate adds the command, file, and source snippet to a language error.
func decorate(err error, src, command, file string) *lang.Error {
	le := lang.WrapError(err)

	attrs := []slog.Attr{slog.String("command", command)}

	if file != "" && file != stdinSource {
		attrs = append(attrs, slog.String("file", file))
	}

	if snip := le.Snippet(src); snip != "" {
		attrs = append(attrs, slog.String("source", strings.TrimRight(snip, "\n")))
	}

	return le.With(attrs...)
}

// writeLine writes s and a trailing newline to the command output.
func writeLine(ctx context.Context, s string) error {
	_, err := io.WriteString(stdoutFrom(ctx), s+"\n")
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
