package render

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"clipforge/internal/language"
	"clipforge/internal/logging"
	"clipforge/internal/media/engine"
	"clipforge/internal/services"
	"clipforge/internal/subtitles"
)

// Strategy names the rendering approach used for an attempt, in fallback
// order.
type Strategy string

const (
	StrategyASS      Strategy = "ass"
	StrategyDrawtext Strategy = "drawtext"
	StrategySoftMux  Strategy = "softmux"
)

// Chain runs the three subtitle strategies in fixed order until one
// produces the output file.
type Chain struct {
	runner  *engine.Runner
	logger  *slog.Logger
	style   subtitles.DrawtextStyle
	langTag string
	workDir string
	audio   bool
}

// ChainOption adjusts chain construction.
type ChainOption func(*Chain)

// WithAudioStream records whether the source carries an audio stream.
// Without one the chain drops the audio copy and mapping arguments, which
// would otherwise make the soft-mux stream selection fail.
func WithAudioStream(present bool) ChainOption {
	return func(c *Chain) {
		c.audio = present
	}
}

// NewChain constructs a render chain. workDir receives the generated ASS
// document; languageCode tags the soft-muxed subtitle stream.
func NewChain(runner *engine.Runner, workDir, languageCode string, style subtitles.DrawtextStyle, logger *slog.Logger, opts ...ChainOption) *Chain {
	c := &Chain{
		runner:  runner,
		logger:  logging.NewComponentLogger(logger, "render"),
		style:   style,
		langTag: language.StreamTag(languageCode),
		workDir: workDir,
		audio:   true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Render overlays the transcript onto videoPath and writes outputPath.
// Strategies run in fixed order; intermediate failures are logged and
// swallowed. The returned strategy identifies which attempt succeeded.
// Only exhaustion of all three strategies is an error.
func (c *Chain) Render(ctx context.Context, videoPath, srtPath, outputPath string, segments []subtitles.Segment) (Strategy, error) {
	if len(segments) == 0 {
		return "", services.Wrap(services.ErrValidation, "render", "chain", "no segments to render", nil)
	}

	type attempt struct {
		strategy Strategy
		run      func(context.Context) Outcome
	}
	attempts := []attempt{
		{StrategyASS, func(ctx context.Context) Outcome { return c.burnASS(ctx, videoPath, outputPath, segments) }},
		{StrategyDrawtext, func(ctx context.Context) Outcome { return c.burnDrawtext(ctx, videoPath, outputPath, segments) }},
		{StrategySoftMux, func(ctx context.Context) Outcome { return c.muxSoft(ctx, videoPath, srtPath, outputPath) }},
	}

	var last Outcome
	for _, a := range attempts {
		if err := ctx.Err(); err != nil {
			return "", services.Wrap(services.ErrTimeout, "render", "chain", "canceled", err)
		}
		last = a.run(ctx)
		c.logAttempt(a.strategy, last)
		if last.Success() {
			return a.strategy, nil
		}
	}
	return "", services.Wrap(services.ErrExternalTool, "render", "chain",
		fmt.Sprintf("all strategies failed: %s", last.Message), nil)
}

// burnASS writes a word-by-word ASS document and burns it in with the
// engine's subtitles filter, re-encoding video and copying audio.
func (c *Chain) burnASS(ctx context.Context, videoPath, outputPath string, segments []subtitles.Segment) Outcome {
	assPath := filepath.Join(c.workDir, fmt.Sprintf("captions-%s.ass", uuid.NewString()))
	if err := os.WriteFile(assPath, []byte(subtitles.BuildASS(segments)), 0o644); err != nil {
		return Failed(fmt.Sprintf("write ass document: %v", err))
	}
	defer os.Remove(assPath)

	args := []string{
		"-y",
		"-i", videoPath,
		"-vf", fmt.Sprintf("subtitles=filename='%s'", escapeFilterPath(assPath)),
	}
	if c.audio {
		args = append(args, "-c:a", "copy")
	}
	args = append(args,
		"-c:v", "libx264",
		"-preset", "fast",
		"-crf", "23",
		"-threads", "2",
		"-movflags", "+faststart",
		outputPath,
	)
	diagnostics, err := c.runner.Run(ctx, args, outputPath)
	return c.classify(diagnostics, err, outputPath)
}

// burnDrawtext renders one drawtext directive per segment as a fallback
// when the subtitles filter is unavailable.
func (c *Chain) burnDrawtext(ctx context.Context, videoPath, outputPath string, segments []subtitles.Segment) Outcome {
	args := []string{
		"-y",
		"-i", videoPath,
		"-vf", subtitles.BuildDrawtextFilter(segments, c.style),
		"-c:v", "libx264",
		"-preset", "fast",
		"-crf", "23",
	}
	if c.audio {
		args = append(args, "-c:a", "copy")
	}
	args = append(args, outputPath)
	diagnostics, err := c.runner.Run(ctx, args, outputPath)
	return c.classify(diagnostics, err, outputPath)
}

// muxSoft copies streams untouched and attaches the SRT document as a
// default timed-text track. No capability precondition; this is the
// guaranteed fallback.
func (c *Chain) muxSoft(ctx context.Context, videoPath, srtPath, outputPath string) Outcome {
	args := []string{
		"-y",
		"-i", videoPath,
		"-i", srtPath,
		"-c:v", "copy",
	}
	if c.audio {
		args = append(args, "-c:a", "copy")
	}
	args = append(args,
		"-c:s", "mov_text",
		"-metadata:s:s:0", "language="+c.langTag,
		"-disposition:s:0", "default",
		"-map", "0:v",
	)
	if c.audio {
		args = append(args, "-map", "0:a")
	}
	args = append(args, "-map", "1:s", outputPath)
	diagnostics, err := c.runner.Run(ctx, args, outputPath)
	return c.classify(diagnostics, err, outputPath)
}

// classify maps a supervised invocation result onto the outcome sum type.
func (c *Chain) classify(diagnostics string, err error, outputPath string) Outcome {
	if err == nil {
		return Succeeded(outputPath)
	}
	if errors.Is(err, services.ErrTimeout) {
		return TimedOut(err.Error())
	}
	if engine.MissingCapability(diagnostics) {
		return MissingCapability(diagnosticTail(diagnostics))
	}
	return Failed(err.Error())
}

func (c *Chain) logAttempt(strategy Strategy, outcome Outcome) {
	attrs := []any{
		logging.String("strategy", string(strategy)),
		logging.String("outcome", outcome.Kind.String()),
	}
	if outcome.Success() {
		c.logger.Info("subtitle strategy succeeded", attrs...)
		return
	}
	attrs = append(attrs, logging.String("detail", outcome.Message))
	c.logger.Warn("subtitle strategy failed, falling back", attrs...)
}

// escapeFilterPath escapes the path separators the subtitles filter parses
// specially (drive-letter colons on some platforms).
func escapeFilterPath(path string) string {
	return strings.ReplaceAll(path, ":", `\:`)
}

func diagnosticTail(diagnostics string) string {
	diagnostics = strings.TrimSpace(diagnostics)
	if len(diagnostics) <= 200 {
		return diagnostics
	}
	return diagnostics[len(diagnostics)-200:]
}
