package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clipforge/internal/config"
)

func TestLoadDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantWorkspace := filepath.Join(tempHome, ".local", "share", "clipforge", "workspace")
	if cfg.Paths.WorkspaceDir != wantWorkspace {
		t.Fatalf("unexpected workspace dir: got %q want %q", cfg.Paths.WorkspaceDir, wantWorkspace)
	}
	if cfg.Engine.FFmpegBinary != "ffmpeg" || cfg.Engine.FFprobeBinary != "ffprobe" {
		t.Fatalf("unexpected engine binaries: %+v", cfg.Engine)
	}
	if cfg.Engine.TimeoutSeconds != 1200 {
		t.Fatalf("unexpected engine timeout: %d", cfg.Engine.TimeoutSeconds)
	}
	if cfg.Subtitles.Language != "pt" {
		t.Fatalf("unexpected subtitle language: %q", cfg.Subtitles.Language)
	}
	if cfg.Subtitles.FontSize != 52 || cfg.Subtitles.BorderWidth != 3 || cfg.Subtitles.BottomMargin != 100 {
		t.Fatalf("unexpected subtitle style: %+v", cfg.Subtitles)
	}
	if cfg.Highlights.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected highlights model: %q", cfg.Highlights.Model)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadParsesFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[engine]
ffmpeg_binary = "/opt/ffmpeg/bin/ffmpeg"
timeout_seconds = 60

[subtitles]
language = "EN"
font_size = 64

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.Engine.FFmpegBinary != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("override not applied: %q", cfg.Engine.FFmpegBinary)
	}
	if cfg.Engine.TimeoutSeconds != 60 {
		t.Fatalf("timeout override not applied: %d", cfg.Engine.TimeoutSeconds)
	}
	if cfg.Subtitles.Language != "en" {
		t.Fatalf("language not normalized: %q", cfg.Subtitles.Language)
	}
	if cfg.Subtitles.FontSize != 64 {
		t.Fatalf("font size override not applied: %d", cfg.Subtitles.FontSize)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging overrides not applied: %+v", cfg.Logging)
	}
	// Unset fields keep defaults.
	if cfg.Engine.FFprobeBinary != "ffprobe" {
		t.Fatalf("default lost after override: %q", cfg.Engine.FFprobeBinary)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		fragment string
	}{
		{
			name:     "bad log format",
			content:  "[logging]\nformat = \"xml\"\n",
			fragment: "logging.format",
		},
		{
			name:     "bad log level",
			content:  "[logging]\nlevel = \"verbose\"\n",
			fragment: "logging.level",
		},
		{
			name:     "bad language",
			content:  "[subtitles]\nlanguage = \"x\"\n",
			fragment: "subtitles.language",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.fragment) {
				t.Fatalf("error %q missing fragment %q", err, tt.fragment)
			}
		})
	}
}

func TestLoadAPIKeyEnvFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Highlights.APIKey != "sk-from-env" {
		t.Fatalf("env fallback not applied: %q", cfg.Highlights.APIKey)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample should exist")
	}
	if cfg.Engine.TimeoutSeconds != 1200 {
		t.Fatalf("sample drifted from defaults: %d", cfg.Engine.TimeoutSeconds)
	}
}
