package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"clipforge/internal/services"
	"clipforge/internal/timecode"
)

// Span is one transcript entry as produced by the speech-recognition
// collaborator. The JSON shape is the minimal contract the pipeline
// requires.
type Span struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Document is the transcript payload: a flat list of spans.
type Document struct {
	Segments []Span `json:"segments"`
}

// Load reads and decodes a transcript JSON file.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, services.Wrap(services.ErrNotFound, "transcript", "load", path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode transcript: %w", err)
	}
	if len(doc.Segments) == 0 {
		return Document{}, services.Wrap(services.ErrValidation, "transcript", "load", "no segments in document", nil)
	}
	return doc, nil
}

// BuildSRT renders the document as SRT text: 1-based cue indices, SRT
// time ranges, blank-line separators. Spans with empty text are skipped;
// the skip count is returned for logging. Output is byte-deterministic
// for identical input.
func BuildSRT(doc Document) (string, int) {
	var lines []string
	skipped := 0
	index := 0
	for _, span := range doc.Segments {
		text := strings.TrimSpace(span.Text)
		if text == "" {
			skipped++
			continue
		}
		index++
		lines = append(lines,
			fmt.Sprintf("%d", index),
			fmt.Sprintf("%s --> %s", timecode.FormatSRT(span.Start), timecode.FormatSRT(span.End)),
			text,
			"",
		)
	}
	return strings.Join(lines, "\n"), skipped
}

// WriteSRT renders the document and writes it to path.
func WriteSRT(doc Document, path string) (int, error) {
	content, skipped := BuildSRT(doc)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return skipped, fmt.Errorf("write srt: %w", err)
	}
	return skipped, nil
}
