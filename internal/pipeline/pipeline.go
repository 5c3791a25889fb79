// Package pipeline joins the stages into complete production flows: source
// video to subtitled vertical output, and transcript to a folder of
// finished clips.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"clipforge/internal/clips"
	"clipforge/internal/config"
	"clipforge/internal/highlights"
	"clipforge/internal/ledger"
	"clipforge/internal/logging"
	"clipforge/internal/media/engine"
	"clipforge/internal/media/ffprobe"
	"clipforge/internal/render"
	"clipforge/internal/services"
	"clipforge/internal/subtitles"
	"clipforge/internal/transcript"
)

// Pipeline wires the stages around shared configuration.
type Pipeline struct {
	cfg        *config.Config
	logger     *slog.Logger
	baseLogger *slog.Logger
	runner     *engine.Runner
	store      *ledger.Store
	probe      ffprobe.OutputRunner

	lockPath string
	lock     *flock.Flock
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithCommandRunner injects the engine executor (primarily for tests).
func WithCommandRunner(run engine.CommandRunner) Option {
	return func(p *Pipeline) {
		p.runner = engine.NewRunner(
			p.cfg.Engine.FFmpegBinary,
			time.Duration(p.cfg.Engine.TimeoutSeconds)*time.Second,
			p.baseLogger,
			engine.WithCommandRunner(run),
		)
	}
}

// WithProbeRunner injects the ffprobe executor (primarily for tests).
func WithProbeRunner(run ffprobe.OutputRunner) Option {
	return func(p *Pipeline) {
		p.probe = run
	}
}

// WithStore attaches a run ledger; runs are recorded when present.
func WithStore(store *ledger.Store) Option {
	return func(p *Pipeline) {
		p.store = store
	}
}

// New constructs a pipeline from validated configuration.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = logging.NewNop()
	}
	lockPath := filepath.Join(cfg.Paths.WorkspaceDir, "clipforge.lock")
	p := &Pipeline{
		cfg:        cfg,
		logger:     logging.NewComponentLogger(logger, "pipeline"),
		baseLogger: logger,
		runner: engine.NewRunner(
			cfg.Engine.FFmpegBinary,
			time.Duration(cfg.Engine.TimeoutSeconds)*time.Second,
			logger,
		),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SubtitleResult summarizes one subtitle-and-vertical run.
type SubtitleResult struct {
	RunID         string
	Strategy      render.Strategy
	DroppedBlocks int
	OutputPath    string
}

// Subtitle overlays the SRT captions onto the video and converts it to the
// 9:16 vertical format, writing outputPath. Exactly one pipeline run may
// hold the workspace at a time.
func (p *Pipeline) Subtitle(ctx context.Context, videoPath, srtPath, outputPath string) (SubtitleResult, error) {
	unlock, err := p.acquireWorkspace()
	if err != nil {
		return SubtitleResult{}, err
	}
	defer unlock()

	runID := uuid.NewString()
	started := time.Now()
	result, err := p.subtitleLocked(ctx, runID, videoPath, srtPath, outputPath)
	p.record(ctx, ledger.Run{
		RunID:           runID,
		SourcePath:      videoPath,
		SubtitlePath:    srtPath,
		OutputPath:      outputPath,
		Strategy:        string(result.Strategy),
		Outcome:         outcomeLabel(err),
		DurationSeconds: time.Since(started).Seconds(),
		Error:           errorLabel(err),
	})
	return result, err
}

func (p *Pipeline) subtitleLocked(ctx context.Context, runID, videoPath, srtPath, outputPath string) (SubtitleResult, error) {
	result := SubtitleResult{RunID: runID, OutputPath: outputPath}

	if _, err := os.Stat(videoPath); err != nil {
		return result, services.Wrap(services.ErrNotFound, "pipeline", "subtitle", "source video not found", err)
	}
	if _, err := os.Stat(srtPath); err != nil {
		return result, services.Wrap(services.ErrNotFound, "pipeline", "subtitle", "subtitle file not found", err)
	}
	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return result, services.Wrap(services.ErrConfiguration, "pipeline", "subtitle", "create output directory", err)
		}
	}

	probed, err := p.inspectSource(ctx, videoPath)
	if err != nil {
		return result, err
	}

	segments, dropped, err := p.parseSubtitles(srtPath)
	if err != nil {
		return result, err
	}
	result.DroppedBlocks = dropped

	// Stage temp names are run-scoped so a crashed run never collides
	// with the next one.
	subtitled := filepath.Join(p.cfg.Paths.WorkspaceDir, fmt.Sprintf("subtitled-%s.mp4", runID))
	defer os.Remove(subtitled)

	chain := render.NewChain(p.runner, p.cfg.Paths.WorkspaceDir, p.cfg.Subtitles.Language, p.drawtextStyle(), p.baseLogger,
		render.WithAudioStream(probed.HasAudio()))
	strategy, err := chain.Render(ctx, videoPath, srtPath, subtitled, segments)
	if err != nil {
		return result, err
	}
	result.Strategy = strategy

	if err := render.ConvertToVertical(ctx, p.runner, subtitled, outputPath); err != nil {
		return result, err
	}

	p.logger.Info("subtitle run complete",
		logging.String("run_id", runID),
		logging.String("strategy", string(strategy)),
		logging.Int("dropped_blocks", dropped),
		logging.String("output", outputPath))
	return result, nil
}

// ProduceResult summarizes a full transcript-to-clips run.
type ProduceResult struct {
	RunID      string
	SRTPath    string
	Highlights int
	Clips      []clips.Clip
	Finals     []string
	Failed     int
}

// Produce runs the full flow: build an SRT from the transcript, select
// highlights, cut each one out of the source, then subtitle and convert
// every clip to vertical. Finished clips land in outputDir.
func (p *Pipeline) Produce(ctx context.Context, videoPath, transcriptPath, outputDir string) (ProduceResult, error) {
	unlock, err := p.acquireWorkspace()
	if err != nil {
		return ProduceResult{}, err
	}
	defer unlock()

	runID := uuid.NewString()
	started := time.Now()
	result, strategy, err := p.produceLocked(ctx, runID, videoPath, transcriptPath, outputDir)
	p.record(ctx, ledger.Run{
		RunID:           runID,
		SourcePath:      videoPath,
		SubtitlePath:    result.SRTPath,
		OutputPath:      outputDir,
		Strategy:        strategy,
		Outcome:         outcomeLabel(err),
		DurationSeconds: time.Since(started).Seconds(),
		Error:           errorLabel(err),
	})
	return result, err
}

func (p *Pipeline) produceLocked(ctx context.Context, runID, videoPath, transcriptPath, outputDir string) (ProduceResult, string, error) {
	result := ProduceResult{RunID: runID}

	if _, err := os.Stat(videoPath); err != nil {
		return result, "", services.Wrap(services.ErrNotFound, "pipeline", "produce", "source video not found", err)
	}
	doc, err := transcript.Load(transcriptPath)
	if err != nil {
		return result, "", err
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return result, "", services.Wrap(services.ErrConfiguration, "pipeline", "produce", "create output directory", err)
	}
	probed, err := p.inspectSource(ctx, videoPath)
	if err != nil {
		return result, "", err
	}

	srtPath := filepath.Join(outputDir, "captions.srt")
	skipped, err := transcript.WriteSRT(doc, srtPath)
	if err != nil {
		return result, "", err
	}
	result.SRTPath = srtPath
	if skipped > 0 {
		p.logger.Warn("transcript segments skipped", logging.Int("skipped", skipped))
	}

	finder := highlights.NewFinder(highlights.NewClient(highlights.Config{
		APIKey:         p.cfg.Highlights.APIKey,
		BaseURL:        p.cfg.Highlights.BaseURL,
		Model:          p.cfg.Highlights.Model,
		TimeoutSeconds: p.cfg.Highlights.TimeoutSeconds,
	}), p.baseLogger)
	selected, err := finder.Find(ctx, doc)
	if err != nil {
		return result, "", err
	}
	result.Highlights = len(selected)

	cutter := p.newCutter()
	rawDir := filepath.Join(p.cfg.Paths.WorkspaceDir, fmt.Sprintf("raw-%s", runID))
	defer os.RemoveAll(rawDir)
	summary, err := cutter.CutAll(ctx, videoPath, selected, rawDir)
	if err != nil {
		return result, "", err
	}
	result.Clips = summary.Clips
	result.Failed = summary.Failed

	chain := render.NewChain(p.runner, p.cfg.Paths.WorkspaceDir, p.cfg.Subtitles.Language, p.drawtextStyle(), p.baseLogger,
		render.WithAudioStream(probed.HasAudio()))
	var lastStrategy string
	for _, clip := range summary.Clips {
		captions, err := p.clipSegments(srtPath, clip)
		if err != nil {
			p.logger.Warn("skipping clip without captions",
				logging.Int("clip", clip.Index),
				logging.Error(err))
			result.Failed++
			continue
		}

		subtitled := filepath.Join(p.cfg.Paths.WorkspaceDir, fmt.Sprintf("subtitled-%s-%02d.mp4", runID, clip.Index))
		finalPath := filepath.Join(outputDir, filepath.Base(clip.Path))

		strategy, err := chain.Render(ctx, clip.Path, captions.srtPath, subtitled, captions.segments)
		if err != nil {
			p.logger.Error("clip subtitle chain failed",
				logging.Int("clip", clip.Index),
				logging.Error(err))
			result.Failed++
			continue
		}
		lastStrategy = string(strategy)

		err = render.ConvertToVertical(ctx, p.runner, subtitled, finalPath)
		os.Remove(subtitled)
		if err != nil {
			p.logger.Error("clip vertical conversion failed",
				logging.Int("clip", clip.Index),
				logging.Error(err))
			result.Failed++
			continue
		}
		result.Finals = append(result.Finals, finalPath)
	}

	if len(result.Finals) == 0 {
		return result, lastStrategy, services.Wrap(services.ErrExternalTool, "pipeline", "produce", "no finished clips produced", nil)
	}
	p.logger.Info("production run complete",
		logging.String("run_id", runID),
		logging.Int("finished", len(result.Finals)),
		logging.Int("failed", result.Failed))
	return result, lastStrategy, nil
}

type clipCaptions struct {
	srtPath  string
	segments []subtitles.Segment
}

// clipSegments rebases the source captions onto a clip's local timeline and
// writes a clip-scoped SRT for the soft-mux fallback.
func (p *Pipeline) clipSegments(srtPath string, clip clips.Clip) (clipCaptions, error) {
	segments, _, err := subtitles.ParseFile(srtPath)
	if err != nil {
		return clipCaptions{}, err
	}
	rebased := subtitles.Window(segments, clip.Start, clip.End)
	if len(rebased) == 0 {
		return clipCaptions{}, services.Wrap(services.ErrValidation, "pipeline", "captions", "no captions overlap clip", nil)
	}

	clipSRT := clip.Path + ".srt"
	if err := os.WriteFile(clipSRT, []byte(subtitles.BuildSRT(rebased)), 0o644); err != nil {
		return clipCaptions{}, services.Wrap(services.ErrConfiguration, "pipeline", "captions", "write clip captions", err)
	}
	return clipCaptions{srtPath: clipSRT, segments: rebased}, nil
}

func (p *Pipeline) parseSubtitles(srtPath string) ([]subtitles.Segment, int, error) {
	segments, dropped, err := subtitles.ParseFile(srtPath)
	if err != nil {
		return nil, 0, err
	}
	if dropped > 0 {
		p.logger.Warn("malformed subtitle blocks dropped", logging.Int("dropped", dropped))
	}
	if len(segments) == 0 {
		return nil, dropped, services.Wrap(services.ErrValidation, "pipeline", "subtitle", "subtitle file has no usable blocks", nil)
	}
	return segments, dropped, nil
}

// inspectSource probes the video once and validates its geometry. The
// result also tells the render chain whether an audio stream exists.
func (p *Pipeline) inspectSource(ctx context.Context, videoPath string) (ffprobe.Result, error) {
	var (
		probed ffprobe.Result
		err    error
	)
	if p.probe != nil {
		probed, err = ffprobe.InspectWith(ctx, p.probe, p.cfg.Engine.FFprobeBinary, videoPath)
	} else {
		probed, err = ffprobe.Inspect(ctx, p.cfg.Engine.FFprobeBinary, videoPath)
	}
	if err != nil {
		return ffprobe.Result{}, services.Wrap(services.ErrExternalTool, "pipeline", "probe", "inspect source video", err)
	}
	width, height := probed.VideoGeometry()
	if err := render.ValidateSource(width, height); err != nil {
		return ffprobe.Result{}, err
	}
	return probed, nil
}

func (p *Pipeline) newCutter() *clips.Cutter {
	opts := []clips.CutterOption{}
	if p.probe != nil {
		opts = append(opts, clips.WithProbeRunner(p.probe))
	}
	return clips.NewCutter(p.runner, p.cfg.Engine.FFprobeBinary, p.baseLogger, opts...)
}

func (p *Pipeline) drawtextStyle() subtitles.DrawtextStyle {
	style := subtitles.DefaultDrawtextStyle()
	if p.cfg.Subtitles.FontSize > 0 {
		style.FontSize = p.cfg.Subtitles.FontSize
	}
	if p.cfg.Subtitles.BorderWidth > 0 {
		style.BorderWidth = p.cfg.Subtitles.BorderWidth
	}
	if p.cfg.Subtitles.BottomMargin > 0 {
		style.BottomMargin = p.cfg.Subtitles.BottomMargin
	}
	return style
}

func (p *Pipeline) acquireWorkspace() (func(), error) {
	if err := p.cfg.EnsureDirectories(); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "pipeline", "lock", "ensure directories", err)
	}
	ok, err := p.lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "pipeline", "lock", "acquire workspace lock", err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrValidation, "pipeline", "lock", "another run already holds the workspace", nil)
	}
	return func() {
		if err := p.lock.Unlock(); err != nil {
			p.logger.Warn("failed to release workspace lock", logging.Error(err))
		}
	}, nil
}

func (p *Pipeline) record(ctx context.Context, run ledger.Run) {
	if p.store == nil {
		return
	}
	if _, err := p.store.Record(ctx, run); err != nil {
		p.logger.Warn("failed to record run", logging.Error(err))
	}
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, services.ErrTimeout):
		return "timeout"
	default:
		return "failure"
	}
}

func errorLabel(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
