package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/msdscript/cli/cmd"
	"github.com/ardnew/msdscript/lang"
	"github.com/ardnew/msdscript/log"
)

// TestMain points the configuration and cache directories at a temporary
// directory before either is first computed.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "msdscript-cli-test-*")
	if err != nil {
		panic(err)
	}

	for _, key := range []string{"HOME", "XDG_CONFIG_HOME", "XDG_CACHE_HOME"} {
		if err := os.Setenv(key, dir); err != nil {
			panic(err)
		}
	}

	log.Config(log.WithOutput(nil))

	code := m.Run()

	_ = os.RemoveAll(dir)

	os.Exit(code)
}

// run executes the CLI with stdin and returns what it wrote to stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	ctx := cmd.WithStdio(t.Context(), strings.NewReader(stdin), &out)

	exited := -1

	err := Run(ctx, func(code int) { exited = code }, args...)
	if exited > 0 && err == nil {
		t.Fatalf("exit(%d) without error", exited)
	}

	return out.String(), err
}

func TestRunEval(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{name: "default command", stdin: "1 + 2 * 3", want: "7\n"},
		{name: "explicit eval", stdin: "_let x = 4 _in x * x", args: []string{"eval"}, want: "16\n"},
		{name: "binding", stdin: "x + 1", args: []string{"eval", "-b", "x=41", "-"}, want: "42\n"},
		{name: "log flags", stdin: "_true", args: []string{"--log-level", "trace", "--log-format=json"}, want: "_true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}

			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunEvalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.msd")
	if err := os.WriteFile(path, []byte("_if 1 == 2 _then 3 _else 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := run(t, "", path)
	if err != nil {
		t.Fatal(err)
	}

	if got != "4\n" {
		t.Errorf("output = %q, want %q", got, "4\n")
	}
}

func TestRunErrors(t *testing.T) {
	if _, err := run(t, "1 +", "eval"); !errors.Is(err, lang.ErrParse) {
		t.Errorf("parse: error = %v, want %v", err, lang.ErrParse)
	}

	if _, err := run(t, "y", "eval"); !errors.Is(err, lang.ErrUnboundVariable) {
		t.Errorf("free variable: error = %v, want %v", err, lang.ErrUnboundVariable)
	}

	if _, err := run(t, "1", "--log-level", "loud"); err == nil {
		t.Error("invalid enum accepted")
	}
}

func TestRunFmt(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"fmt"}, want: "1 + 2 * 3\n"},
		{args: []string{"fmt", "print"}, want: "(1+(2*3))\n"},
		{args: []string{"fmt", "json", "-i", "0"}, want: `"kind":"add"`},
		{args: []string{"fmt", "yaml"}, want: "kind: add"},
		{args: []string{"fmt", "ast"}, want: "add\n  lhs: num 1\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, err := run(t, "1+2*3", tt.args...)
			if err != nil {
				t.Fatal(err)
			}

			if !strings.Contains(got, tt.want) {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunSubst(t *testing.T) {
	got, err := run(t, "_let y = x _in x + y", "subst", "-c", "x", "3")
	if err != nil {
		t.Fatal(err)
	}

	if got != "(_let y=3 _in (3+y))\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRunRepl(t *testing.T) {
	got, err := run(t, "1 + 1\n2 * 2\n", "repl", "--no-history")
	if err != nil {
		t.Fatal(err)
	}

	if got != "2\n4\n" {
		t.Errorf("output = %q, want %q", got, "2\n4\n")
	}
}

func TestRunConfigFile(t *testing.T) {
	path := configPath(baseConfig)

	t.Cleanup(func() { _ = os.Remove(path) })

	if _, err := run(t, "", "init"); err != nil {
		t.Fatalf("init: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(data), "log-level: info") {
		t.Errorf("config =\n%s", data)
	}

	if _, err := run(t, "", "init"); !errors.Is(err, cmd.ErrFileExists) {
		t.Errorf("second init: error = %v, want %v", err, cmd.ErrFileExists)
	}

	deep := "_let f = _fun (f) _fun (n) _if n == 0 _then 0 _else f(f)(n + -1) _in f(f)(100)"

	if _, err := run(t, deep, "eval"); err != nil {
		t.Fatalf("eval before limit: %v", err)
	}

	if err := os.WriteFile(path, []byte("eval:\n  max_depth: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, deep, "eval"); !errors.Is(err, lang.ErrMaxDepthExceeded) {
		t.Errorf("eval with configured limit: error = %v, want %v", err, lang.ErrMaxDepthExceeded)
	}

	if _, err := run(t, deep, "eval", "--max-depth", "0"); err != nil {
		t.Errorf("flag did not override configuration: %v", err)
	}
}

func TestRunContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	ctx = cmd.WithStdio(ctx, strings.NewReader("1\n"), &bytes.Buffer{})

	if err := Run(ctx, func(int) {}, "repl", "--no-history"); !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want %v", err, context.Canceled)
	}
}

func TestPaths(t *testing.T) {
	if err := mkdirAllRequired(); err != nil {
		t.Fatal(err)
	}

	if got := basePrefix(); got != "msdscript" {
		t.Errorf("basePrefix = %q, want msdscript", got)
	}

	if got := configPath(); got != configDir() {
		t.Errorf("configPath() = %q, want %q", got, configDir())
	}

	for _, dir := range []string{configDir(), cacheDir()} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Errorf("directory %s: %v", dir, err)
		}
	}
}

func TestDebugBin(t *testing.T) {
	for name, want := range map[string]bool{
		"__debug_bin":         true,
		"__debug_bin123":      true,
		"__debug_bin4567.exe": true,
		"msdscript":           false,
		"debug_bin":           false,
	} {
		if got := debugBin.MatchString(name); got != want {
			t.Errorf("debugBin.MatchString(%q) = %v, want %v", name, got, want)
		}
	}
}
