package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/keychord/internal/app"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/tracker"
)

func newReplayCmd(opts *options) *cobra.Command {
	var keymapPath string

	cmd := &cobra.Command{
		Use:   "replay [events-file|-]",
		Short: "Feed textual key events through the bindings",
		Long: `Read one key event per line and print what fired and what is active
after each. Lines look like:

  press shift key=A
  release scan=57
  press C-x

Blank lines and lines starting with # are skipped. With no file, or "-",
events are read from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(opts.withKeymap(keymapPath), opts.log)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if name := firstArg(args); name != "" && name != "-" {
				f, err := os.Open(name)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return replay(in, cmd.OutOrStdout(), a.Session())
		},
	}
	cmd.Flags().StringVarP(&keymapPath, "keymap", "k", "", "keymap file (default from config)")
	return cmd
}

// replay runs every event in r through session and writes one line per
// event. Parse errors stop the replay with the offending line number.
func replay(r io.Reader, w io.Writer, session *tracker.Session) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ev, err := key.ParseEvent(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		fired := session.HandleKey(ev)
		if _, err := fmt.Fprintf(w, "%-40s fired=[%s] active=[%s]\n",
			ev.String(), strings.Join(fired, " "), strings.Join(session.Active(), " ")); err != nil {
			return err
		}
	}
	return scanner.Err()
}
