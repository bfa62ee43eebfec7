package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ABB00717/Clean-Video/internal/watcher"
)

func newWatchCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:          "watch",
		Short:        "Watch the input directory and process new videos as they arrive",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			p, err := buildPipeline(ctx, *configFlag)
			if err != nil {
				return err
			}

			w, err := watcher.New(p.cfg.Paths.Input, p.processor.Process, p.logger, p.cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			p.logger.Info(ctx, "Monitoring: %s", p.cfg.Paths.Input)
			p.logger.Info(ctx, "Press Ctrl+C to stop")

			if err := w.Start(ctx); err != nil && err != context.Canceled {
				return err
			}

			p.logger.Info(ctx, "Pipeline stopped")
			return nil
		},
	}
}
