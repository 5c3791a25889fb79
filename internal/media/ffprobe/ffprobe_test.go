package ffprobe

import (
	"context"
	"errors"
	"testing"
)

const sampleOutput = `{
  "streams": [
    {"index": 0, "codec_name": "h264", "codec_type": "video", "width": 1920, "height": 1080},
    {"index": 1, "codec_name": "aac", "codec_type": "audio"}
  ],
  "format": {"filename": "input.mp4", "nb_streams": 2, "duration": "125.480000", "format_name": "mov,mp4,m4a"}
}`

func fakeRunner(output string, err error) OutputRunner {
	return func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte(output), err
	}
}

func TestInspectWithParsesOutput(t *testing.T) {
	result, err := InspectWith(context.Background(), fakeRunner(sampleOutput, nil), "ffprobe", "input.mp4")
	if err != nil {
		t.Fatalf("InspectWith: %v", err)
	}
	if got := result.DurationSeconds(); got != 125.48 {
		t.Errorf("DurationSeconds = %v, want 125.48", got)
	}
	width, height := result.VideoGeometry()
	if width != 1920 || height != 1080 {
		t.Errorf("VideoGeometry = %dx%d, want 1920x1080", width, height)
	}
	if !result.HasAudio() {
		t.Error("HasAudio = false, want true")
	}
}

func TestInspectWithCommandFailure(t *testing.T) {
	_, err := InspectWith(context.Background(), fakeRunner("boom", errors.New("exit 1")), "ffprobe", "input.mp4")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestInspectWithEmptyPath(t *testing.T) {
	if _, err := InspectWith(context.Background(), fakeRunner(sampleOutput, nil), "ffprobe", "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestVideoGeometryWithoutVideo(t *testing.T) {
	result := Result{Streams: []Stream{{CodecType: "audio"}}}
	if width, height := result.VideoGeometry(); width != 0 || height != 0 {
		t.Errorf("VideoGeometry = %dx%d, want 0x0", width, height)
	}
	if result.DurationSeconds() != 0 {
		t.Errorf("DurationSeconds should default to 0")
	}
}
