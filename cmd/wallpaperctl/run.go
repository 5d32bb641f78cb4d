package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/dixieflatline76/wallpaperd/config"
	"github.com/dixieflatline76/wallpaperd/pkg/wallpaper"
	"github.com/dixieflatline76/wallpaperd/util/log"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *options) *cobra.Command {
	var interval string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Rotate the wallpaper without the GUI until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := wallpaper.ParseInterval(interval)
			if err != nil {
				return err
			}

			reg, err := opts.openRegistry()
			if err != nil {
				return err
			}

			// Ticks are drained on this goroutine, which plays the part of the UI thread.
			queue := wallpaper.NewQueue(16)
			svc := wallpaper.NewService(reg, newOS(), clockwork.NewRealClock(), queue)
			defer svc.Close()

			if err := svc.Load(cmd.Context()); err != nil {
				return err
			}
			svc.SetChangeHandler(func() {
				if current := svc.Current(); current != "" {
					log.Debugf("Current wallpaper: %s", current)
				}
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := svc.Start(period); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rotating %d images every %s min, press Ctrl+C to stop\n",
				len(svc.Paths()), wallpaper.FormatInterval(period))

			err = queue.Drain(ctx)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVar(&interval, "interval", wallpaper.FormatInterval(config.DefaultInterval), "minutes between wallpaper changes")
	return cmd
}
