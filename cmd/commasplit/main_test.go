package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/iw2rmb/commasplit/tokenize"
)

func TestRun_PrintsTokens(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{args: []string{"a, b,c"}, want: "a\nb\nc\n"},
		{args: []string{"a,,b"}, want: "a\n\nb\n"},
		{args: []string{"  "}, want: ""},
		{args: []string{"x,"}, want: "x\n\n"},
	}

	for _, tc := range cases {
		var out bytes.Buffer
		if err := run(tc.args, &out); err != nil {
			t.Fatalf("run(%q): %v", tc.args, err)
		}
		if got := out.String(); got != tc.want {
			t.Fatalf("run(%q): got %q, want %q", tc.args, got, tc.want)
		}
	}
}

func TestRun_MissingArgumentWritesNothing(t *testing.T) {
	var out bytes.Buffer
	err := run(nil, &out)
	if !errors.Is(err, tokenize.ErrMissingInput) {
		t.Fatalf("run: got %v, want ErrMissingInput", err)
	}
	if out.Len() != 0 {
		t.Fatalf("stdout: got %q, want empty", out.String())
	}
}
