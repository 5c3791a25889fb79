// Package clips turns highlight selections into standalone video files by
// stream-copying each segment out of the source recording.
package clips

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"clipforge/internal/highlights"
	"clipforge/internal/logging"
	"clipforge/internal/media/engine"
	"clipforge/internal/media/ffprobe"
	"clipforge/internal/services"
)

// Clip records one successfully produced segment file.
type Clip struct {
	Index  int
	Start  float64
	End    float64
	Path   string
	Title  string
	Reason string
}

// Summary tallies the outcome of a cutting run.
type Summary struct {
	Succeeded int
	Failed    int
	Clips     []Clip
}

// Cutter extracts highlight segments from a source video.
type Cutter struct {
	runner      *engine.Runner
	probeBinary string
	probe       ffprobe.OutputRunner
	logger      *slog.Logger
}

// CutterOption customizes a Cutter.
type CutterOption func(*Cutter)

// WithProbeRunner injects the ffprobe executor (primarily for tests).
func WithProbeRunner(run ffprobe.OutputRunner) CutterOption {
	return func(c *Cutter) {
		if run != nil {
			c.probe = run
		}
	}
}

// NewCutter builds a cutter around the engine runner and ffprobe binary.
func NewCutter(runner *engine.Runner, probeBinary string, logger *slog.Logger, opts ...CutterOption) *Cutter {
	cutter := &Cutter{
		runner:      runner,
		probeBinary: probeBinary,
		logger:      logging.NewComponentLogger(logger, "clips"),
	}
	for _, opt := range opts {
		opt(cutter)
	}
	return cutter
}

// ClampTiming validates a segment against the floored source duration. The
// end is clamped to the source; segments starting at or past the end of the
// source, or inverted after clamping, are rejected.
func ClampTiming(start, end float64, videoDuration int) (float64, float64, bool) {
	if start >= float64(videoDuration) {
		return 0, 0, false
	}
	if end > float64(videoDuration) {
		end = float64(videoDuration)
	}
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

// Filename renders the canonical clip file name for a 1-based index.
func Filename(index int, start, end float64) string {
	return fmt.Sprintf("clip_%02d_%ds_%ds.mp4", index, int(start), int(end))
}

// CutAll probes the source once and cuts every valid highlight into
// outputDir. A highlight that fails timing validation or whose cut fails is
// counted and skipped; the run only errors when the source itself cannot be
// probed or no clip could be produced.
func (c *Cutter) CutAll(ctx context.Context, videoPath string, items []highlights.Highlight, outputDir string) (Summary, error) {
	if _, err := os.Stat(videoPath); err != nil {
		return Summary{}, services.Wrap(services.ErrNotFound, "clips", "cut", "source video not found", err)
	}
	if len(items) == 0 {
		return Summary{}, services.Wrap(services.ErrValidation, "clips", "cut", "no highlights to cut", nil)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Summary{}, services.Wrap(services.ErrConfiguration, "clips", "cut", "create output directory", err)
	}

	duration, err := c.probeDuration(ctx, videoPath)
	if err != nil {
		return Summary{}, err
	}
	c.logger.Info("cutting highlights",
		logging.Int("count", len(items)),
		logging.Int("source_seconds", duration))

	var summary Summary
	for i, item := range items {
		index := i + 1
		start, end, ok := ClampTiming(item.Start, item.End, duration)
		if !ok {
			c.logger.Warn("skipping highlight outside source bounds",
				logging.Int("clip", index),
				logging.Float64("start", item.Start),
				logging.Float64("end", item.End))
			summary.Failed++
			continue
		}

		outputPath := filepath.Join(outputDir, Filename(index, start, end))
		c.logger.Info("cutting clip",
			logging.Int("clip", index),
			logging.Float64("start", start),
			logging.Float64("end", end))

		if err := c.cutOne(ctx, videoPath, start, end, outputPath); err != nil {
			c.logger.Error("clip cut failed",
				logging.Int("clip", index),
				logging.Error(err))
			summary.Failed++
			continue
		}
		summary.Succeeded++
		summary.Clips = append(summary.Clips, Clip{
			Index:  index,
			Start:  start,
			End:    end,
			Path:   outputPath,
			Title:  Title(item.Reason),
			Reason: item.Reason,
		})
	}

	if summary.Succeeded == 0 {
		return summary, services.Wrap(services.ErrExternalTool, "clips", "cut", "no clips produced", nil)
	}
	return summary, nil
}

func (c *Cutter) probeDuration(ctx context.Context, videoPath string) (int, error) {
	var (
		result ffprobe.Result
		err    error
	)
	if c.probe != nil {
		result, err = ffprobe.InspectWith(ctx, c.probe, c.probeBinary, videoPath)
	} else {
		result, err = ffprobe.Inspect(ctx, c.probeBinary, videoPath)
	}
	if err != nil {
		return 0, services.Wrap(services.ErrExternalTool, "clips", "probe", "inspect source video", err)
	}
	seconds := result.DurationSeconds()
	if seconds <= 0 {
		return 0, services.Wrap(services.ErrValidation, "clips", "probe", "source reports no duration", nil)
	}
	return int(math.Floor(seconds)), nil
}

func (c *Cutter) cutOne(ctx context.Context, videoPath string, start, end float64, outputPath string) error {
	args := []string{
		"-y",
		"-ss", formatSeconds(start),
		"-i", videoPath,
		"-t", formatSeconds(end - start),
		"-c:v", "copy",
		"-c:a", "copy",
		outputPath,
	}
	_, err := c.runner.Run(ctx, args, outputPath)
	return err
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
