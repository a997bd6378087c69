package cmd

import (
	"context"

	"github.com/ardnew/msdscript/lang"
)

// Fmt parses a program and writes it in the chosen format.
type Fmt struct {
	Pretty Pretty `cmd:"" default:"withargs" help:"Format with line breaks and minimal parentheses (default)."`
	Print  Print  `cmd:""                    help:"Format as fully parenthesized canonical text."`
	JSON   JSON   `cmd:""                    help:"Format the syntax tree as JSON."`
	YAML   YAML   `cmd:""                    help:"Format the syntax tree as YAML."`
	AST    AST    `cmd:""                    help:"Format the syntax tree as an indented outline."`
}

// Pretty formats input in pretty form.
type Pretty struct {
	Input `embed:""`
}

// Run executes the fmt pretty command.
func (f *Pretty) Run(ctx context.Context) error {
	e, err := f.parse(ctx, "fmt pretty")
	if err != nil {
		return err
	}

	return writeLine(ctx, lang.PrettyPrint(e))
}

// Print formats input in canonical form.
type Print struct {
	Input `embed:""`
}

// Run executes the fmt print command.
func (f *Print) Run(ctx context.Context) error {
	e, err := f.parse(ctx, "fmt print")
	if err != nil {
		return err
	}

	return writeLine(ctx, lang.Print(e))
}

// JSON formats the syntax tree as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width (0 for a single line)." short:"i"`

	Input `embed:""`
}

// Run executes the fmt json command.
func (f *JSON) Run(ctx context.Context) error {
	e, err := f.parse(ctx, "fmt json")
	if err != nil {
		return err
	}

	if err := lang.FormatJSON(ctx, stdoutFrom(ctx), e, f.Indent); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// YAML formats the syntax tree as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width (0 for flow style)." short:"i"`

	Input `embed:""`
}

// Run executes the fmt yaml command.
func (f *YAML) Run(ctx context.Context) error {
	e, err := f.parse(ctx, "fmt yaml")
	if err != nil {
		return err
	}

	if err := lang.FormatYAML(ctx, stdoutFrom(ctx), e, f.Indent); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// AST formats the syntax tree as an indented outline.
type AST struct {
	Input `embed:""`
}

// Run executes the fmt ast command.
func (f *AST) Run(ctx context.Context) error {
	e, err := f.parse(ctx, "fmt ast")
	if err != nil {
		return err
	}

	if err := lang.FormatTree(stdoutFrom(ctx), e); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
