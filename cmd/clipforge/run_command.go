package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clipforge/internal/pipeline"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run <video> <transcript.json> <output-dir>",
		Short: "Run the full pipeline: captions, highlights, cuts, vertical clips",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withPipeline(func(p *pipeline.Pipeline) error {
				result, err := p.Produce(cmd.Context(), args[0], args[1], args[2])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Run %s complete\n", result.RunID)
				fmt.Fprintf(out, "Highlights selected: %d\n", result.Highlights)
				fmt.Fprintf(out, "Finished clips:      %d\n", len(result.Finals))
				if result.Failed > 0 {
					fmt.Fprintf(out, "Failed clips:        %d\n", result.Failed)
				}
				for _, path := range result.Finals {
					fmt.Fprintf(out, "  %s\n", path)
				}
				return nil
			})
		},
	}
}
