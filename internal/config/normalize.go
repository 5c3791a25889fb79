package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeEngine()
	c.normalizeSubtitles()
	c.normalizeHighlights()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.WorkspaceDir) == "" {
		c.Paths.WorkspaceDir = defaultWorkspaceDir
	}
	if c.Paths.WorkspaceDir, err = expandPath(c.Paths.WorkspaceDir); err != nil {
		return fmt.Errorf("paths.workspace_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeEngine() {
	if strings.TrimSpace(c.Engine.FFmpegBinary) == "" {
		c.Engine.FFmpegBinary = defaultFFmpegBinary
	}
	if strings.TrimSpace(c.Engine.FFprobeBinary) == "" {
		c.Engine.FFprobeBinary = defaultFFprobeBinary
	}
	if c.Engine.TimeoutSeconds <= 0 {
		c.Engine.TimeoutSeconds = defaultEngineTimeoutSeconds
	}
}

func (c *Config) normalizeSubtitles() {
	c.Subtitles.Language = strings.ToLower(strings.TrimSpace(c.Subtitles.Language))
	if c.Subtitles.Language == "" {
		c.Subtitles.Language = defaultSubtitleLanguage
	}
	if c.Subtitles.FontSize <= 0 {
		c.Subtitles.FontSize = defaultFontSize
	}
	if c.Subtitles.BorderWidth <= 0 {
		c.Subtitles.BorderWidth = defaultBorderWidth
	}
	if c.Subtitles.BottomMargin <= 0 {
		c.Subtitles.BottomMargin = defaultBottomMargin
	}
}

func (c *Config) normalizeHighlights() {
	c.Highlights.APIKey = strings.TrimSpace(c.Highlights.APIKey)
	if c.Highlights.APIKey == "" {
		c.Highlights.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	}
	c.Highlights.BaseURL = strings.TrimSpace(c.Highlights.BaseURL)
	if c.Highlights.BaseURL == "" {
		c.Highlights.BaseURL = defaultHighlightsBaseURL
	}
	if strings.TrimSpace(c.Highlights.Model) == "" {
		c.Highlights.Model = defaultHighlightsModel
	}
	if c.Highlights.TimeoutSeconds <= 0 {
		c.Highlights.TimeoutSeconds = defaultHighlightsTimeoutSecs
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
