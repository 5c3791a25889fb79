package subtitles

import (
	"math"
	"testing"
)

func TestWordCuesUniformSplit(t *testing.T) {
	cues := WordCues(Segment{Start: 1.0, End: 3.0, Text: "Hello world"})
	if len(cues) != 2 {
		t.Fatalf("got %d cues, want 2", len(cues))
	}
	want := []WordCue{
		{Start: 1.0, End: 2.0, Word: "Hello"},
		{Start: 2.0, End: 3.0, Word: "world"},
	}
	for i, cue := range cues {
		if cue.Word != want[i].Word || math.Abs(cue.Start-want[i].Start) > 1e-9 || math.Abs(cue.End-want[i].End) > 1e-9 {
			t.Errorf("cue %d = %+v, want %+v", i, cue, want[i])
		}
	}
}

func TestWordCuesPartitionSegment(t *testing.T) {
	segment := Segment{Start: 12.4, End: 19.7, Text: "one two three four five six seven"}
	cues := WordCues(segment)
	if len(cues) != 7 {
		t.Fatalf("got %d cues, want 7", len(cues))
	}

	wordDuration := segment.Duration() / 7
	for i, cue := range cues {
		if math.Abs((cue.End-cue.Start)-wordDuration) > 1e-9 {
			t.Errorf("cue %d length = %v, want %v", i, cue.End-cue.Start, wordDuration)
		}
		if i > 0 && math.Abs(cue.Start-cues[i-1].End) > 1e-9 {
			t.Errorf("cue %d is not contiguous with its predecessor", i)
		}
	}
	if math.Abs(cues[0].Start-segment.Start) > 1e-9 {
		t.Errorf("first cue starts at %v, want %v", cues[0].Start, segment.Start)
	}
	if math.Abs(cues[len(cues)-1].End-segment.End) > 1e-9 {
		t.Errorf("last cue ends at %v, want %v", cues[len(cues)-1].End, segment.End)
	}
}

func TestWordCuesDegenerateSegments(t *testing.T) {
	tests := []struct {
		name    string
		segment Segment
	}{
		{"empty text", Segment{Start: 1, End: 2, Text: ""}},
		{"whitespace only", Segment{Start: 1, End: 2, Text: "   \t  "}},
		{"zero duration", Segment{Start: 5, End: 5, Text: "word"}},
		{"negative duration", Segment{Start: 5, End: 4, Text: "word"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if cues := WordCues(tt.segment); cues != nil {
				t.Errorf("got %d cues, want none", len(cues))
			}
		})
	}
}
