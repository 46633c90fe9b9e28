package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/keychord/internal/app"
	"github.com/dshills/keychord/internal/host/terminal"
)

func newWatchCmd(opts *options) *cobra.Command {
	var noReload bool

	cmd := &cobra.Command{
		Use:   "watch [keymap]",
		Short: "Type keys interactively and watch bindings fire",
		Long: `Open a terminal view that feeds every key tap through the bindings.
The keymap is reloaded when its file changes unless --no-reload is set.
Logs are discarded while the view is open unless log.file is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.withKeymap(firstArg(args))
			cfg.Keymap.Watch = !noReload
			if cfg.Log.File == "" {
				opts.log.SetOutput(io.Discard)
			}

			a, err := app.New(cfg, opts.log)
			if err != nil {
				return err
			}
			if err := a.Start(); err != nil {
				return err
			}
			defer a.Close()

			s, err := terminal.Init()
			if err != nil {
				return err
			}
			defer s.Fini()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			screen := terminal.NewScreen(s, a.Session(), opts.log.WithField("session", a.Session().ID().String()))
			a.OnReload(func(r app.ReloadResult) {
				switch {
				case r.Err != nil:
					screen.SetStatus("reload failed: %v", r.Err)
				case len(r.Warnings) > 0:
					screen.SetStatus("reloaded %d nodes, %d bindings skipped", r.Nodes, len(r.Warnings))
				default:
					screen.SetStatus("reloaded %d nodes", r.Nodes)
				}
			})
			return screen.Run(ctx)
		},
	}
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "do not reload the keymap when it changes")
	return cmd
}
