package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"clipforge/internal/clips"
	"clipforge/internal/highlights"
	"clipforge/internal/media/engine"
)

func newClipsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clips <video> <highlights.json> <output-dir>",
		Short: "Cut highlight segments out of a video",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			items, err := highlights.Load(args[1])
			if err != nil {
				return err
			}

			runner := engine.NewRunner(cfg.Engine.FFmpegBinary,
				time.Duration(cfg.Engine.TimeoutSeconds)*time.Second, logger)
			cutter := clips.NewCutter(runner, cfg.Engine.FFprobeBinary, logger)
			summary, err := cutter.CutAll(cmd.Context(), args[0], items, args[2])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Clips produced: %d\n", summary.Succeeded)
			if summary.Failed > 0 {
				fmt.Fprintf(out, "Clips failed:   %d\n", summary.Failed)
			}
			fmt.Fprintf(out, "Output folder:  %s\n", args[2])
			return nil
		},
	}
}
