package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/msdscript/lang"
)

type runner interface {
	Run(ctx context.Context) error
}

func TestFmtText(t *testing.T) {
	tests := []struct {
		name   string
		cmd    runner
		source string
		want   string
	}{
		{name: "pretty", cmd: &Pretty{}, source: "(1+2)*3", want: "(1 + 2) * 3\n"},
		{name: "pretty let", cmd: &Pretty{}, source: "_let x=5 _in x+1", want: "_let x = 5\n_in  x + 1\n"},
		{name: "print", cmd: &Print{}, source: "1 + 2 * 3", want: "(1+(2*3))\n"},
		{name: "print bool", cmd: &Print{}, source: "_false", want: "_false\n"},
		{name: "ast", cmd: &AST{}, source: "1 + x", want: "add\n  lhs: num 1\n  rhs: var x\n"},
		{
			name:   "ast let",
			cmd:    &AST{},
			source: "_let y = _true _in y",
			want:   "let y\n  bound: bool true\n  body: var y\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := stdio(t, tt.source)

			if err := tt.cmd.Run(ctx); err != nil {
				t.Fatal(err)
			}

			if got := out.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFmtInvalidSyntax(t *testing.T) {
	cmds := map[string]runner{
		"pretty": &Pretty{},
		"print":  &Print{},
		"json":   &JSON{Indent: 2},
		"yaml":   &YAML{Indent: 2},
		"ast":    &AST{},
	}

	for name, cmd := range cmds {
		t.Run(name, func(t *testing.T) {
			ctx, out := stdio(t, "_let x = _in 1")

			err := cmd.Run(ctx)
			if !errors.Is(err, lang.ErrParse) {
				t.Fatalf("Run error = %v, want %v", err, lang.ErrParse)
			}

			if out.Len() != 0 {
				t.Errorf("unexpected output %q", out.String())
			}
		})
	}
}

func TestFmtJSON(t *testing.T) {
	for _, indent := range []int{0, 2, 4} {
		ctx, out := stdio(t, "_if x == 1 _then f(2) _else _false")

		if err := (&JSON{Indent: indent}).Run(ctx); err != nil {
			t.Fatal(err)
		}

		if indent == 0 && strings.Count(out.String(), "\n") != 1 {
			t.Errorf("indent 0: output %q spans lines", out.String())
		}

		var doc map[string]any
		if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
			t.Fatalf("indent %d: %v", indent, err)
		}

		if doc["kind"] != "if" {
			t.Errorf("kind = %v, want if", doc["kind"])
		}

		then, ok := doc["then"].(map[string]any)
		if !ok || then["kind"] != "call" {
			t.Errorf("then = %v, want call", doc["then"])
		}
	}
}

func TestFmtYAML(t *testing.T) {
	for _, indent := range []int{0, 2} {
		ctx, out := stdio(t, "_fun (n) n * 2")

		if err := (&YAML{Indent: indent}).Run(ctx); err != nil {
			t.Fatal(err)
		}

		var doc map[string]any
		if err := yaml.Unmarshal(out.Bytes(), &doc); err != nil {
			t.Fatalf("indent %d: %v\n%s", indent, err, out.String())
		}

		if doc["kind"] != "fun" || doc["param"] != "n" {
			t.Errorf("indent %d: doc = %v", indent, doc)
		}
	}
}
