package tokenize

import (
	"errors"
	"io"
)

// ErrMissingInput is returned by ParseArgs when no input argument is given.
var ErrMissingInput = errors.New("missing input argument")

// Config holds the command-line input.
type Config struct {
	Input string
}

// ParseArgs reads the input string from the first positional argument.
// Further arguments are ignored.
func ParseArgs(args []string) (Config, error) {
	if len(args) < 1 {
		return Config{}, ErrMissingInput
	}
	return Config{Input: args[0]}, nil
}

// Run writes the tokens of cfg.Input to out, one per line.
func Run(cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	return Write(out, cfg.Input)
}
