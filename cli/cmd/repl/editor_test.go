package repl

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/ardnew/msdscript/lang"
)

func TestInitialContent(t *testing.T) {
	ctx := context.Background()

	if got := initialContent(ctx, "_let x=1 _in x+1"); got != "_let x = 1\n_in  x + 1\n" {
		t.Errorf("initialContent = %q", got)
	}

	if got := initialContent(ctx, "1 +"); got != "1 +" {
		t.Errorf("initialContent of invalid source = %q", got)
	}
}

// fakeEditor installs a shell script as $EDITOR. The script replaces the
// file it is given with content.
func fakeEditor(t *testing.T, content string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("editor script requires a POSIX shell")
	}

	dir := t.TempDir()

	data := filepath.Join(dir, "content")
	if err := os.WriteFile(data, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	script := filepath.Join(dir, "editor.sh")
	body := "#!/bin/sh\ncat '" + data + "' > \"$1\"\n"

	if err := os.WriteFile(script, []byte(body), 0o700); err != nil {
		t.Fatal(err)
	}

	t.Setenv("EDITOR", script)
}

func TestEditCommandRun(t *testing.T) {
	tests := []struct {
		name    string
		content string
		answer  string
		want    string
		wantErr error
	}{
		{name: "edited", content: "2 * 3\n", want: "(2*3)"},
		{name: "emptied", content: "  \n"},
		{name: "declined", content: "2 *\n", answer: "n\n", wantErr: ErrEditDeclined},
		{name: "no answer", content: "2 *\n", wantErr: ErrEditDeclined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeEditor(t, tt.content)

			var stdout, stderr bytes.Buffer

			cmd := &editCommand{
				source:  "1 + 1",
				ctxFunc: t.Context,
			}
			cmd.SetStdin(strings.NewReader(tt.answer))
			cmd.SetStdout(&stdout)
			cmd.SetStderr(&stderr)

			err := cmd.Run()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Run error = %v, want %v", err, tt.wantErr)
				}

				if !strings.Contains(stdout.String(), "Edit again?") {
					t.Errorf("stdout = %q, want prompt", stdout.String())
				}

				if !strings.Contains(stderr.String(), "error: ") {
					t.Errorf("stderr = %q, want parse error", stderr.String())
				}

				return
			}

			if err != nil {
				t.Fatalf("Run: %v", err)
			}

			if tt.want == "" {
				if cmd.edited != nil {
					t.Errorf("edited = %v, want nil", cmd.edited)
				}

				return
			}

			if cmd.edited == nil || lang.Print(cmd.edited) != tt.want {
				t.Errorf("edited = %v, want %s", cmd.edited, tt.want)
			}
		})
	}
}
