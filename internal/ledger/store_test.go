package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenPath(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := Run{
		RunID:           "run-aaa",
		SourcePath:      "/videos/episode.mp4",
		SubtitlePath:    "/videos/episode.srt",
		OutputPath:      "/videos/episode_final.mp4",
		Strategy:        "ass",
		Outcome:         "success",
		DurationSeconds: 42.5,
	}
	if _, err := store.Record(ctx, first); err != nil {
		t.Fatalf("Record: %v", err)
	}
	second := Run{
		RunID:      "run-bbb",
		SourcePath: "/videos/other.mp4",
		Outcome:    "failure",
		Error:      "engine exited with status 1",
	}
	if _, err := store.Record(ctx, second); err != nil {
		t.Fatalf("Record: %v", err)
	}

	runs, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	if runs[0].RunID != "run-bbb" {
		t.Errorf("newest first order violated: %q", runs[0].RunID)
	}
	if runs[1].Strategy != "ass" || runs[1].DurationSeconds != 42.5 {
		t.Errorf("run fields not round-tripped: %+v", runs[1])
	}
	if runs[0].Error != "engine exited with status 1" {
		t.Errorf("error field = %q", runs[0].Error)
	}
	if runs[0].SubtitlePath != "" || runs[0].Strategy != "" {
		t.Errorf("optional fields should be empty: %+v", runs[0])
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("created_at not populated")
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		run := Run{
			RunID:      "run-" + string(rune('a'+i)),
			SourcePath: "/videos/input.mp4",
			Outcome:    "success",
			CreatedAt:  time.Now().UTC(),
		}
		if _, err := store.Record(ctx, run); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	runs, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("len(runs) = %d, want 3", len(runs))
	}
}

func TestReopenKeepsHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ledger.db")
	store, err := OpenPath(dbPath)
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	if _, err := store.Record(context.Background(), Run{RunID: "run-x", SourcePath: "/v.mp4", Outcome: "success"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := OpenPath(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	runs, err := reopened.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 1 || runs[0].RunID != "run-x" {
		t.Errorf("history lost across reopen: %+v", runs)
	}
}
