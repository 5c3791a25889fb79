package subtitles

import (
	"fmt"
	"strings"

	"clipforge/internal/timecode"
)

// Window selects the segments overlapping [start, end) and rebases them
// onto a timeline starting at zero, clamping partial overlaps to the
// window edges. Useful when captions authored against a full recording
// must follow a clip cut out of it.
func Window(segments []Segment, start, end float64) []Segment {
	if end <= start {
		return nil
	}
	var out []Segment
	for _, segment := range segments {
		if segment.End <= start || segment.Start >= end {
			continue
		}
		s := segment.Start
		if s < start {
			s = start
		}
		e := segment.End
		if e > end {
			e = end
		}
		out = append(out, Segment{
			Start: s - start,
			End:   e - start,
			Text:  segment.Text,
		})
	}
	return out
}

// BuildSRT renders segments back into SRT text with 1-based indices.
func BuildSRT(segments []Segment) string {
	var b strings.Builder
	for i, segment := range segments {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n",
			i+1,
			timecode.FormatSRT(segment.Start),
			timecode.FormatSRT(segment.End),
			segment.Text)
	}
	return b.String()
}
