package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clipforge/internal/transcript"
)

func newSRTCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "srt <transcript.json> <output.srt>",
		Short: "Convert a Whisper transcript into an SRT subtitle file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := transcript.Load(args[0])
			if err != nil {
				return err
			}
			skipped, err := transcript.WriteSRT(doc, args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %s (%d segments", args[1], len(doc.Segments)-skipped)
			if skipped > 0 {
				fmt.Fprintf(out, ", %d empty segments skipped", skipped)
			}
			fmt.Fprintln(out, ")")
			return nil
		},
	}
}
