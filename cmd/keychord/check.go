package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/keychord/internal/input/keymap"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <keymap>...",
		Short: "Report every problem in keymap files",
		Long: `Load each keymap file and list every binding that cannot be used.
Exits non-zero if any file fails to parse or any binding is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			loader := keymap.NewLoader(opts.log.WithField("component", "keymap"))

			failed := false
			for _, path := range args {
				doc, err := loader.LoadFile(path)
				if err != nil {
					fmt.Fprintf(out, "%s: %v\n", path, err)
					failed = true
					continue
				}
				bindings, errs := doc.Bindings()
				for _, err := range errs {
					fmt.Fprintf(out, "%s: %v\n", path, err)
				}
				if len(errs) > 0 {
					failed = true
				}
				fmt.Fprintf(out, "%s: %d bindings, %d actions, %d errors\n",
					path, len(bindings), len(doc.Actions()), len(errs))
			}
			if failed {
				return errReported
			}
			return nil
		},
	}
}
