package subtitles

import (
	"strings"
	"testing"
)

func TestBuildASSHeader(t *testing.T) {
	doc := BuildASS(nil)
	for _, want := range []string{
		"[Script Info]",
		"PlayResX: 1920",
		"PlayResY: 1080",
		"[V4+ Styles]",
		"Style: Active,Arial,52,&H0000FFFF",
		"[Events]",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("ASS document missing %q", want)
		}
	}
}

func TestBuildASSWordEvents(t *testing.T) {
	doc := BuildASS([]Segment{{Start: 1.0, End: 3.0, Text: "Hello world"}})

	wantLines := []string{
		"Dialogue: 0,0:00:01.00,0:00:02.00,Active,,0,0,0,,Hello",
		"Dialogue: 0,0:00:02.00,0:00:03.00,Active,,0,0,0,,world",
	}
	for _, line := range wantLines {
		if !strings.Contains(doc, line) {
			t.Errorf("ASS document missing event %q\n%s", line, doc)
		}
	}
}

func TestBuildASSDeterministic(t *testing.T) {
	segments := []Segment{
		{Start: 0, End: 2.5, Text: "first cue here"},
		{Start: 2.5, End: 4, Text: "second"},
	}
	if BuildASS(segments) != BuildASS(segments) {
		t.Error("identical input produced different documents")
	}
}

func TestBuildASSSkipsEmptySegments(t *testing.T) {
	doc := BuildASS([]Segment{
		{Start: 0, End: 1, Text: "\r\r"},
		{Start: 1, End: 2, Text: "kept"},
	})
	if count := strings.Count(doc, "Dialogue:"); count != 1 {
		t.Errorf("got %d dialogue events, want 1", count)
	}
}

func TestBuildDrawtextFilter(t *testing.T) {
	filter := BuildDrawtextFilter([]Segment{
		{Start: 1.5, End: 3, Text: "Hello world"},
		{Start: 3, End: 5, Text: "Second cue"},
	}, DefaultDrawtextStyle())

	directives := strings.Split(filter, ",drawtext=")
	if len(directives) != 2 {
		t.Fatalf("got %d directives, want 2", len(directives))
	}
	if !strings.Contains(filter, "enable='between(t,1.5,3)'") {
		t.Errorf("first directive missing enable window: %s", filter)
	}
	if !strings.Contains(filter, "fontsize=52") || !strings.Contains(filter, "borderw=3") || !strings.Contains(filter, "y=h-th-100") {
		t.Errorf("style values missing: %s", filter)
	}
}

func TestEscapeDrawtext(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`plain text`, `plain text`},
		{`it's`, `it\'s`},
		{`100% sure`, `100%% sure`},
		{`back\slash`, `back\\slash`},
		{`mix\'d 50%`, `mix\\\'d 50%%`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := escapeDrawtext(tt.input); got != tt.expected {
				t.Errorf("escapeDrawtext(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
