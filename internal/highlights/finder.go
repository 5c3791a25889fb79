package highlights

import (
	"context"
	"log/slog"

	"clipforge/internal/logging"
	"clipforge/internal/services"
	"clipforge/internal/transcript"
)

// Finder selects viral candidate segments from a transcript.
type Finder struct {
	client *Client
	logger *slog.Logger
}

// NewFinder wires a finder around the supplied LLM client.
func NewFinder(client *Client, logger *slog.Logger) *Finder {
	return &Finder{client: client, logger: logging.NewComponentLogger(logger, "highlights")}
}

// Find asks the model for high-retention segments of the document. Segments
// that fail timing validation are dropped with a warning rather than failing
// the whole selection.
func (f *Finder) Find(ctx context.Context, doc transcript.Document) ([]Highlight, error) {
	if len(doc.Segments) == 0 {
		return nil, services.Wrap(services.ErrValidation, "highlights", "find", "transcript has no segments", nil)
	}

	text := TranscriptText(doc)
	f.logger.Info("requesting highlight selection",
		logging.Int("segments", len(doc.Segments)))

	content, err := f.client.Complete(ctx, buildPrompt(text))
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "highlights", "find", "chat completion failed", err)
	}

	var candidates []Highlight
	if err := DecodeJSON(content, &candidates); err != nil {
		return nil, services.Wrap(services.ErrValidation, "highlights", "find", "model returned unparseable payload", err)
	}

	kept := make([]Highlight, 0, len(candidates))
	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			f.logger.Warn("discarding invalid highlight",
				logging.Float64("start", candidate.Start),
				logging.Float64("end", candidate.End),
				logging.Error(err))
			continue
		}
		kept = append(kept, candidate)
	}
	if len(kept) == 0 {
		return nil, services.Wrap(services.ErrValidation, "highlights", "find", "model returned no usable segments", nil)
	}

	f.logger.Info("highlight selection complete",
		logging.Int("candidates", len(candidates)),
		logging.Int("kept", len(kept)))
	return kept, nil
}
