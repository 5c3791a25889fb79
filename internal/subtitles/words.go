package subtitles

import "strings"

// WordCue is a single-word sub-interval of a segment, used for
// progressive-reveal captioning.
type WordCue struct {
	Start float64
	End   float64
	Word  string
}

// WordCues subdivides a segment's time span uniformly across its words:
// word i of n spans [start + i*d/n, start + (i+1)*d/n). The cues partition
// the segment contiguously without overlap. Uniform allocation ignores
// word length and punctuation; that is an accepted approximation for this
// caption style, not a bug.
//
// A segment with no words or a non-positive duration yields no cues.
func WordCues(segment Segment) []WordCue {
	words := strings.Fields(segment.Text)
	duration := segment.Duration()
	if len(words) == 0 || duration <= 0 {
		return nil
	}

	wordDuration := duration / float64(len(words))
	cues := make([]WordCue, 0, len(words))
	for i, word := range words {
		cues = append(cues, WordCue{
			Start: segment.Start + float64(i)*wordDuration,
			End:   segment.Start + float64(i+1)*wordDuration,
			Word:  word,
		})
	}
	return cues
}
