package subtitles

import (
	"fmt"
	"strings"
)

// DrawtextStyle controls the appearance of the drawtext fallback captions.
type DrawtextStyle struct {
	FontSize     int
	BorderWidth  int
	BottomMargin int
}

// DefaultDrawtextStyle matches the burned-in ASS look as closely as
// drawtext allows.
func DefaultDrawtextStyle() DrawtextStyle {
	return DrawtextStyle{FontSize: 52, BorderWidth: 3, BottomMargin: 100}
}

// BuildDrawtextFilter renders one drawtext directive per segment, each
// enabled only inside its time window, joined into a single filter chain.
func BuildDrawtextFilter(segments []Segment, style DrawtextStyle) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		parts = append(parts, fmt.Sprintf(
			"drawtext=enable='between(t,%g,%g)':text='%s':fontsize=%d:fontcolor=white:bordercolor=black:borderw=%d:x=(w-text_w)/2:y=h-th-%d",
			segment.Start,
			segment.End,
			escapeDrawtext(segment.Text),
			style.FontSize,
			style.BorderWidth,
			style.BottomMargin,
		))
	}
	return strings.Join(parts, ",")
}

// escapeDrawtext protects the characters drawtext treats specially.
// Backslash must be handled first so the escapes it introduces survive.
func escapeDrawtext(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, `'`, `\'`)
	text = strings.ReplaceAll(text, `%`, `%%`)
	return text
}
