package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"clipforge/internal/highlights"
	"clipforge/internal/transcript"
)

const reasonPreviewLength = 60

func newHighlightsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "highlights <transcript.json> <highlights.json>",
		Short: "Select high-retention segments from a transcript",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cfg.Highlights.APIKey == "" {
				return errors.New("highlights.api_key not configured (set it in the config file or export OPENAI_API_KEY)")
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			doc, err := transcript.Load(args[0])
			if err != nil {
				return err
			}

			finder := highlights.NewFinder(highlights.NewClient(highlights.Config{
				APIKey:         cfg.Highlights.APIKey,
				BaseURL:        cfg.Highlights.BaseURL,
				Model:          cfg.Highlights.Model,
				TimeoutSeconds: cfg.Highlights.TimeoutSeconds,
			}), logger)
			selected, err := finder.Find(cmd.Context(), doc)
			if err != nil {
				return err
			}
			if err := highlights.Save(args[1], selected); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Saved %d highlights to %s\n\n", len(selected), args[1])
			for i, h := range selected {
				reason := h.Reason
				if len(reason) > reasonPreviewLength {
					reason = reason[:reasonPreviewLength] + "..."
				}
				fmt.Fprintf(out, "  %d. %.1fs - %.1fs (%.1fs) - %s\n", i+1, h.Start, h.End, h.Duration(), reason)
			}
			return nil
		},
	}
}
