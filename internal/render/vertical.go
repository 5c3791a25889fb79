package render

import (
	"context"
	"fmt"
	"os"

	"clipforge/internal/media/engine"
	"clipforge/internal/services"
)

// ConvertToVertical crops and scales inputPath to the 9:16 target and
// writes outputPath. The engine writes to a stage-specific temp name which
// is renamed into place only on confirmed success, so no consumer can
// observe a half-written output.
func ConvertToVertical(ctx context.Context, runner *engine.Runner, inputPath, outputPath string) error {
	tempPath := outputPath + ".vertical.mp4"
	defer os.Remove(tempPath)

	args := []string{
		"-y",
		"-i", inputPath,
		"-vf", VerticalCrop().Filter(),
		"-c:a", "copy",
		"-c:v", "libx264",
		"-preset", "fast",
		"-crf", "23",
		tempPath,
	}
	if _, err := runner.Run(ctx, args, tempPath); err != nil {
		return services.Wrap(services.ErrExternalTool, "render", "vertical", "crop to 9:16", err)
	}

	if err := os.Remove(outputPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("replace existing output: %w", err)
	}
	if err := os.Rename(tempPath, outputPath); err != nil {
		return fmt.Errorf("finalize vertical output: %w", err)
	}
	return nil
}
