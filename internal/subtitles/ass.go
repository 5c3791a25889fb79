package subtitles

import (
	"fmt"
	"strings"

	"clipforge/internal/timecode"
)

// The ASS document declares a 1920x1080 reference canvas; the renderer
// scales caption geometry to the actual frame.
const (
	assPlayResX = 1920
	assPlayResY = 1080
)

// Single caption style: large bold yellow fill with a black outline,
// anchored to the bottom of the frame.
const assStyleLine = "Style: Active,Arial,52,&H0000FFFF,&H0000FFFF,&H00000000," +
	"&H64000000,1,0,0,0,100,100,0,0,1,3,0,2,80,80,100,1"

var assHeader = fmt.Sprintf(`[Script Info]
ScriptType: v4.00+
PlayResX: %d
PlayResY: %d

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
%s

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
`, assPlayResX, assPlayResY, assStyleLine)

// BuildASS serializes segments into an ASS document with one dialogue
// event per word so captions reveal progressively. Output is a pure
// function of the input: identical segments produce identical bytes.
func BuildASS(segments []Segment) string {
	lines := []string{assHeader}
	for _, segment := range segments {
		text := strings.NewReplacer("\r", "", "\n", `\N`).Replace(segment.Text)
		if text == "" {
			continue
		}
		for _, cue := range WordCues(Segment{Start: segment.Start, End: segment.End, Text: text}) {
			lines = append(lines, fmt.Sprintf(
				"Dialogue: 0,%s,%s,Active,,0,0,0,,%s",
				timecode.FormatASS(cue.Start),
				timecode.FormatASS(cue.End),
				cue.Word,
			))
		}
	}
	return strings.Join(lines, "\n")
}
