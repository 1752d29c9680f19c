// Command hclfmt parses an HCL body and writes it back out unchanged
// byte for byte, demonstrating the lossless-cover round-trip property
// directly (parse -> render -> compare) the way the TOML teacher's
// cmd/encoder demonstrated its own JSON->TOML direction.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/maurice/hcl"
	"github.com/spf13/cobra"
)

var (
	write bool
	check bool
)

func main() {
	root := &cobra.Command{
		Use:   "hclfmt [file]",
		Short: "Round-trip an HCL body through the parser and renderer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}
	root.Flags().BoolVarP(&write, "write", "w", false, "write result back to the input file instead of stdout")
	root.Flags().BoolVar(&check, "check", false, "exit 1 if the rendered output differs from the input, without writing")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	var path string
	var data []byte
	var err error
	if len(args) == 1 {
		path = args[0]
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	body, err := hcl.ParseBody(string(data))
	if err != nil {
		return err
	}
	out := body.String()

	if check {
		if out != string(data) {
			fmt.Fprintln(os.Stderr, "not idempotent: rendered output differs from input")
			os.Exit(1)
		}
		return nil
	}

	if write {
		if path == "" {
			return fmt.Errorf("-w requires a file argument, not stdin")
		}
		return os.WriteFile(path, []byte(out), 0o644)
	}

	_, err = io.WriteString(os.Stdout, out)
	return err
}
