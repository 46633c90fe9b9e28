package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/keychord/internal/app"
)

func newTreeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tree [keymap]",
		Short: "Print the pattern tree built from the keymaps",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(opts.withKeymap(firstArg(args)), opts.log)
			if err != nil {
				return err
			}
			tree := a.Session().Tree()
			if err := tree.Format(cmd.OutOrStdout()); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d nodes, %d actions\n", tree.Len(), len(tree.Labels()))
			return err
		},
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
