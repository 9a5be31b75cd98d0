// Command keymapcheck validates and formats keymap configuration files.
//
//	keymapcheck file.conf        validate, printing diagnostics to stderr
//	keymapcheck fmt file.conf    print the canonical formatting to stdout
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Superchig/keymap"
	"github.com/Superchig/keymap/ast"
	"github.com/Superchig/keymap/diag"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:           "keymapcheck [flags] file",
		Short:         "Validate a keymap configuration file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := checkFile(args[0], noColor)
			return err
		},
	}
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized diagnostics")

	cmd.AddCommand(&cobra.Command{
		Use:           "fmt file",
		Short:         "Print the canonical formatting of a keymap file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := checkFile(args[0], noColor)
			if err != nil {
				return err
			}

			out, err := keymap.Format(f)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	})

	return cmd
}

// checkFile parses name, printing any diagnostics to stderr.
func checkFile(name string, noColor bool) (*ast.File, error) {
	src, err := os.ReadFile(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, err
	}

	file, err := keymap.Parse(name, src)
	if err != nil {
		var diags diag.Diagnostics
		if errors.As(err, &diags) {
			printErr := diag.FprintConfig(os.Stderr, diag.PrinterConfig{Color: !noColor}, map[string][]byte{
				name: src,
			}, diags)
			if printErr != nil {
				return nil, printErr
			}
			return nil, err
		}

		fmt.Fprintln(os.Stderr, err)
		return nil, err
	}

	return file, nil
}
