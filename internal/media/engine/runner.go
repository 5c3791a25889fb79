package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"clipforge/internal/logging"
	"clipforge/internal/services"
)

// CommandRunner executes a command and returns its combined output.
// Injectable for tests.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func defaultCommandRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Runner executes ffmpeg invocations with timeout supervision.
type Runner struct {
	binary  string
	timeout time.Duration
	logger  *slog.Logger
	run     CommandRunner
}

// Option customizes a Runner.
type Option func(*Runner)

// WithCommandRunner injects a custom command runner (primarily for tests).
func WithCommandRunner(r CommandRunner) Option {
	return func(runner *Runner) {
		if r != nil {
			runner.run = r
		}
	}
}

// NewRunner constructs a supervisor for the given ffmpeg binary and
// per-invocation timeout.
func NewRunner(binary string, timeout time.Duration, logger *slog.Logger, opts ...Option) *Runner {
	if strings.TrimSpace(binary) == "" {
		binary = "ffmpeg"
	}
	if timeout <= 0 {
		timeout = 20 * time.Minute
	}
	runner := &Runner{
		binary:  binary,
		timeout: timeout,
		logger:  logging.NewComponentLogger(logger, "engine"),
		run:     defaultCommandRunner,
	}
	for _, opt := range opts {
		opt(runner)
	}
	return runner
}

// Binary returns the configured engine executable.
func (r *Runner) Binary() string {
	return r.binary
}

// Run executes the engine with the given arguments. outputPath is the file
// the invocation is expected to produce; it is removed on every
// non-success path before the error is returned, so fallback strategies
// never observe a stale partial file. The returned string is the engine's
// diagnostic stream regardless of outcome.
func (r *Runner) Run(ctx context.Context, args []string, outputPath string) (string, error) {
	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	started := time.Now()
	output, err := r.run(runCtx, r.binary, args...)
	diagnostics := string(output)
	elapsed := time.Since(started)

	if err != nil {
		removePartial(outputPath)
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			r.logger.Warn("engine invocation timed out",
				logging.Duration("elapsed", elapsed),
				logging.String("binary", r.binary),
			)
			return diagnostics, services.Wrap(services.ErrTimeout, "engine", "run", fmt.Sprintf("exceeded %s", r.timeout), err)
		}
		return diagnostics, services.Wrap(services.ErrExternalTool, "engine", "run", tail(diagnostics, 200), err)
	}

	if outputPath != "" {
		if _, statErr := os.Stat(outputPath); statErr != nil {
			return diagnostics, services.Wrap(services.ErrExternalTool, "engine", "run", "exit 0 but output missing", statErr)
		}
	}

	r.logger.Debug("engine invocation complete",
		logging.Duration("elapsed", elapsed),
		logging.Int("args", len(args)),
	)
	return diagnostics, nil
}

// MissingCapability reports whether the diagnostic stream indicates the
// engine build lacks the requested filter.
func MissingCapability(diagnostics string) bool {
	return strings.Contains(diagnostics, "No such filter") ||
		strings.Contains(diagnostics, "Filter not found")
}

func removePartial(path string) {
	if strings.TrimSpace(path) == "" {
		return
	}
	if _, err := os.Stat(path); err == nil {
		_ = os.Remove(path)
	}
}

// tail returns the last n bytes of the diagnostic stream for error context.
func tail(text string, n int) string {
	text = strings.TrimSpace(text)
	if len(text) <= n {
		return text
	}
	return text[len(text)-n:]
}
