package subtitles

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"clipforge/internal/timecode"
)

// Segment is a single transcript entry: a time span and its spoken text.
// Segments keep source order, which is not necessarily time order.
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

var (
	blockSeparator   = regexp.MustCompile(`\n\s*\n`)
	timeRangePattern = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2},\d{3})\s*-->\s*(\d{2}:\d{2}:\d{2},\d{3})`)
)

// ParseFile reads an SRT document from disk. A missing or unreadable file
// is the only hard error; structural problems inside the document are
// handled by Parse.
func ParseFile(path string) ([]Segment, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read srt: %w", err)
	}
	segments, dropped := Parse(string(data))
	return segments, dropped, nil
}

// Parse splits an SRT document into segments. Blocks that are too short,
// have an unparseable time line, or end up with empty text are dropped
// silently; real subtitle files contain malformed blocks routinely and one
// bad cue must not lose the document. The dropped count is returned so
// callers can log it.
func Parse(content string) ([]Segment, int) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	blocks := blockSeparator.Split(strings.TrimSpace(content), -1)

	var segments []Segment
	dropped := 0
	for _, block := range blocks {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 {
			dropped++
			continue
		}

		// Line 1 is the cue index, line 2 the time range.
		match := timeRangePattern.FindStringSubmatch(lines[1])
		if match == nil {
			dropped++
			continue
		}
		start, startErr := timecode.ParseSRT(match[1])
		end, endErr := timecode.ParseSRT(match[2])
		if startErr != nil || endErr != nil {
			dropped++
			continue
		}

		text := normalizeText(strings.Join(lines[2:], " "))
		if text == "" {
			dropped++
			continue
		}

		segments = append(segments, Segment{Start: start, End: end, Text: text})
	}
	return segments, dropped
}

// normalizeText collapses whitespace runs to single spaces and trims the ends.
func normalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
