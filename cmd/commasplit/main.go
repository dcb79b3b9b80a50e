// Command commasplit prints the comma-separated tokens of its argument, one
// per line, after removing every space.
package main

import (
	"io"
	"os"

	"github.com/iw2rmb/commasplit/internal/config"
	"github.com/iw2rmb/commasplit/tokenize"
)

func run(args []string, stdout io.Writer) error {
	cfg, err := tokenize.ParseArgs(args)
	if err != nil {
		return err
	}
	return tokenize.Run(cfg, stdout)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		config.Exitf("commasplit: %v", err)
	}
}
