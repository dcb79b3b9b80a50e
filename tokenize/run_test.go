package tokenize

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseArgs_Missing(t *testing.T) {
	_, err := ParseArgs(nil)
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("parse args: got %v, want ErrMissingInput", err)
	}
}

func TestParseArgs_UsesFirstArgument(t *testing.T) {
	cfg, err := ParseArgs([]string{"a,b", "ignored"})
	if err != nil {
		t.Fatalf("parse args: %v", err)
	}
	if cfg.Input != "a,b" {
		t.Fatalf("input: got %q, want %q", cfg.Input, "a,b")
	}
}

func TestParseArgs_EmptyStringIsValid(t *testing.T) {
	cfg, err := ParseArgs([]string{""})
	if err != nil {
		t.Fatalf("parse args: %v", err)
	}
	if cfg.Input != "" {
		t.Fatalf("input: got %q, want empty", cfg.Input)
	}
}

func TestRun_WritesTokens(t *testing.T) {
	var buf bytes.Buffer
	if err := Run(Config{Input: "a, b,c"}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, want := buf.String(), "a\nb\nc\n"; got != want {
		t.Fatalf("run: got %q, want %q", got, want)
	}
}

func TestRun_NilOutput(t *testing.T) {
	if err := Run(Config{Input: "a"}, nil); err == nil {
		t.Fatal("expected error for nil output")
	}
}
