package config

const (
	defaultWorkspaceDir          = "~/.local/share/clipforge/workspace"
	defaultLogDir                = "~/.local/share/clipforge/logs"
	defaultFFmpegBinary          = "ffmpeg"
	defaultFFprobeBinary         = "ffprobe"
	defaultEngineTimeoutSeconds  = 1200
	defaultSubtitleLanguage      = "pt"
	defaultFontSize              = 52
	defaultBorderWidth           = 3
	defaultBottomMargin          = 100
	defaultHighlightsBaseURL     = "https://api.openai.com/v1/chat/completions"
	defaultHighlightsModel       = "gpt-4o-mini"
	defaultHighlightsTimeoutSecs = 120
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			WorkspaceDir: defaultWorkspaceDir,
			LogDir:       defaultLogDir,
		},
		Engine: Engine{
			FFmpegBinary:   defaultFFmpegBinary,
			FFprobeBinary:  defaultFFprobeBinary,
			TimeoutSeconds: defaultEngineTimeoutSeconds,
		},
		Subtitles: Subtitles{
			Language:     defaultSubtitleLanguage,
			FontSize:     defaultFontSize,
			BorderWidth:  defaultBorderWidth,
			BottomMargin: defaultBottomMargin,
		},
		Highlights: Highlights{
			BaseURL:        defaultHighlightsBaseURL,
			Model:          defaultHighlightsModel,
			TimeoutSeconds: defaultHighlightsTimeoutSecs,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
