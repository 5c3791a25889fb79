package render

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"clipforge/internal/logging"
	"clipforge/internal/media/engine"
)

func TestConvertToVerticalRenamesOnSuccess(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "final.mp4")

	var capturedArgs []string
	runner := engine.NewRunner("ffmpeg", time.Minute, logging.NewNop(), engine.WithCommandRunner(
		func(ctx context.Context, name string, args ...string) ([]byte, error) {
			capturedArgs = args
			return nil, os.WriteFile(args[len(args)-1], []byte("vertical"), 0o644)
		},
	))

	if err := ConvertToVertical(context.Background(), runner, "in.mp4", output); err != nil {
		t.Fatalf("ConvertToVertical: %v", err)
	}

	if _, err := os.Stat(output); err != nil {
		t.Fatal("final output missing after rename")
	}
	if _, err := os.Stat(output + ".vertical.mp4"); !os.IsNotExist(err) {
		t.Error("stage temp file left behind")
	}
	joined := strings.Join(capturedArgs, " ")
	if !strings.Contains(joined, "scale=1080:1920") {
		t.Errorf("vertical filter missing from args: %s", joined)
	}
	if capturedArgs[len(capturedArgs)-1] == output {
		t.Error("engine should write the stage temp file, not the final path")
	}
}

func TestConvertToVerticalFailureLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "final.mp4")

	runner := engine.NewRunner("ffmpeg", time.Minute, logging.NewNop(), engine.WithCommandRunner(
		func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return []byte("encode error"), errors.New("exit status 1")
		},
	))

	if err := ConvertToVertical(context.Background(), runner, "in.mp4", output); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("no output should exist after failure")
	}
}
