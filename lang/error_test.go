package lang

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

func TestError_Is(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"sentinel", ErrType, ErrType, true},
		{"wrapped", ErrType.Wrap(cause), ErrType, true},
		{"with attrs", ErrType.With(slog.Int("n", 1)), ErrType, true},
		{"chained", ErrParse.WithPosition(Position{Line: 1}).Wrap(cause).With(), ErrParse, true},
		{"cause", ErrType.Wrap(cause), cause, true},
		{"other sentinel", ErrType.Wrap(cause), ErrParse, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"message only", NewError("boom"), "boom"},
		{"wrapped", NewError("boom").Wrap(errors.New("why")), "boom: why"},
		{"cause only", WrapError(errors.New("why")), "why"},
		{
			"position",
			NewError("boom").WithPosition(Position{Line: 3, Column: 4}).Wrap(errors.New("why")),
			"boom at line 3, column 4: why",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestWrapError_KeepsError(t *testing.T) {
	orig := ErrType.Wrap(errors.New("x"))

	if got := WrapError(orig); got != orig {
		t.Errorf("expected the same *Error, got %v", got)
	}
}

func TestError_LogValue(t *testing.T) {
	err := ErrParse.WithPosition(Position{Line: 2, Column: 5}).
		Wrap(errors.New("why")).
		With(slog.String("expected", "')'"))

	attrs := err.LogValue().Group()

	got := make(map[string]string, len(attrs))
	for _, a := range attrs {
		got[a.Key] = a.Value.String()
	}

	want := map[string]string{
		"error":    "parse error",
		"cause":    "why",
		"line":     "2",
		"column":   "5",
		"expected": "')'",
	}

	for k, v := range want {
		if got[k] != v {
			t.Errorf("attr %s: expected %q, got %q", k, v, got[k])
		}
	}
}

func TestError_Snippet(t *testing.T) {
	src := "_let x = 1\n_in  y +"

	_, err := Parse(context.Background(), src)

	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected *Error, got %v", err)
	}

	want := "  2 | _in  y +\n" +
		"              ^\n"
	if got := pe.Snippet(src); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if got := ErrType.Snippet(src); got != "" {
		t.Errorf("expected no snippet without position, got %q", got)
	}
}
