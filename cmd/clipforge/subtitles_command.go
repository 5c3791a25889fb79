package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clipforge/internal/pipeline"
)

func newSubtitlesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "subtitles <video> <subtitles.srt> <output.mp4>",
		Short: "Burn captions into a video and convert it to vertical 9:16",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withPipeline(func(p *pipeline.Pipeline) error {
				result, err := p.Subtitle(cmd.Context(), args[0], args[1], args[2])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Wrote %s (strategy: %s", result.OutputPath, result.Strategy)
				if result.DroppedBlocks > 0 {
					fmt.Fprintf(out, ", %d malformed blocks dropped", result.DroppedBlocks)
				}
				fmt.Fprintln(out, ")")
				return nil
			})
		},
	}
}
