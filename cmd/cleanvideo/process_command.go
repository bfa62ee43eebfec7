package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newProcessCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:          "process <video.mp4 | directory>",
		Short:        "Process a single video or every video in a directory",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			p, err := buildPipeline(ctx, *configFlag)
			if err != nil {
				return err
			}

			target := args[0]
			info, err := os.Stat(target)
			if err != nil {
				return fmt.Errorf("stat %s: %w", target, err)
			}

			if info.IsDir() {
				return p.processor.ProcessDirectory(ctx, target)
			}
			return p.processor.Process(ctx, target)
		},
	}
}
