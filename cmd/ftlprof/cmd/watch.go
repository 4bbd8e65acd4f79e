package cmd

import (
	"os"
	"os/signal"

	"github.com/oy3o/ftlprof/internal/watch"
	"github.com/oy3o/ftlprof/report"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Print the profile again every time the game saves it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := getEnv(cmd)
		path := e.profilePath(args, 0)

		show := func(path string) {
			p, err := readProfile(e, path)
			if err != nil {
				// The game may still be writing; the next event retries.
				e.log.Warn("profile not readable", "path", path, "err", err)
				return
			}
			if err := report.Render(cmd.OutOrStdout(), p); err != nil {
				e.log.Error("render failed", "err", err)
			}
		}

		w, err := watch.New(path, func(path string) {
			e.log.Info("profile changed", "path", path)
			show(path)
		})
		if err != nil {
			return err
		}
		defer w.Close()

		show(path)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		e.log.Info("watching", "path", path)
		return w.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
