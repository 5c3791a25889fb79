package highlights

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"clipforge/internal/transcript"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "gpt-4o-mini",
	}, WithSleeper(func(time.Duration) {}))
	return server, client
}

func completionBody(t *testing.T, content string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	if err != nil {
		t.Fatalf("marshal completion body: %v", err)
	}
	return body
}

func TestClientCompleteSendsAuthorizedRequest(t *testing.T) {
	var gotAuth, gotBody string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var payload chatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		gotBody = payload.Messages[0].Content
		if payload.Temperature != requestTemperature {
			t.Errorf("temperature = %v, want %v", payload.Temperature, requestTemperature)
		}
		w.Write(completionBody(t, "hello"))
	})

	content, err := client.Complete(context.Background(), "analyze this")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if content != "hello" {
		t.Errorf("content = %q, want %q", content, "hello")
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotBody != "analyze this" {
		t.Errorf("prompt = %q", gotBody)
	}
}

func TestClientCompleteRetriesOnRateLimit(t *testing.T) {
	attempts := 0
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write(completionBody(t, "recovered"))
	})

	content, err := client.Complete(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if content != "recovered" {
		t.Errorf("content = %q", content)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestClientCompleteDoesNotRetryClientError(t *testing.T) {
	attempts := 0
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
	})

	if _, err := client.Complete(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for 401 response")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestDecodeJSONStripsCodeFences(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"bare", `[{"start": 10, "end": 50, "reason": "hook"}]`},
		{"fenced", "```json\n[{\"start\": 10, \"end\": 50, \"reason\": \"hook\"}]\n```"},
		{"fenced plain", "```\n[{\"start\": 10, \"end\": 50, \"reason\": \"hook\"}]\n```"},
		{"prose wrapped", "Here you go:\n[{\"start\": 10, \"end\": 50, \"reason\": \"hook\"}]\nEnjoy!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var items []Highlight
			if err := DecodeJSON(tc.payload, &items); err != nil {
				t.Fatalf("DecodeJSON: %v", err)
			}
			if len(items) != 1 || items[0].Start != 10 || items[0].End != 50 {
				t.Errorf("items = %+v", items)
			}
		})
	}
}

func TestDecodeJSONRejectsGarbage(t *testing.T) {
	var items []Highlight
	if err := DecodeJSON("the model refused", &items); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestHighlightValidate(t *testing.T) {
	cases := []struct {
		name    string
		h       Highlight
		wantErr bool
	}{
		{"valid", Highlight{Start: 10, End: 70}, false},
		{"exactly min", Highlight{Start: 0, End: 30}, false},
		{"exactly max", Highlight{Start: 0, End: 120}, false},
		{"too short", Highlight{Start: 10, End: 35}, true},
		{"too long", Highlight{Start: 0, End: 121}, true},
		{"negative start", Highlight{Start: -1, End: 60}, true},
		{"inverted", Highlight{Start: 60, End: 40}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.h.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFinderDropsInvalidCandidates(t *testing.T) {
	payload := `[
		{"start": 5, "end": 65, "reason": "complete arc"},
		{"start": 100, "end": 110, "reason": "too short"},
		{"start": 200, "end": 300, "reason": "hook"}
	]`
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionBody(t, payload))
	})

	finder := NewFinder(client, nil)
	doc := transcript.Document{Segments: []transcript.Span{
		{Start: 0, End: 320, Text: "long monologue"},
	}}
	found, err := finder.Find(context.Background(), doc)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("len(found) = %d, want 2", len(found))
	}
	if found[0].Start != 5 || found[1].Start != 200 {
		t.Errorf("unexpected selection: %+v", found)
	}
}

func TestFinderFailsWhenNothingUsable(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionBody(t, `[{"start": 0, "end": 5, "reason": "short"}]`))
	})
	finder := NewFinder(client, nil)
	doc := transcript.Document{Segments: []transcript.Span{{Start: 0, End: 10, Text: "hi"}}}
	if _, err := finder.Find(context.Background(), doc); err == nil {
		t.Fatal("expected error when no candidate survives validation")
	}
}

func TestTranscriptText(t *testing.T) {
	doc := transcript.Document{Segments: []transcript.Span{
		{Start: 0, End: 2.5, Text: "hello"},
		{Start: 2.5, End: 4, Text: "world"},
	}}
	got := TranscriptText(doc)
	want := "[0 - 2.5] hello\n[2.5 - 4] world"
	if got != want {
		t.Errorf("TranscriptText = %q, want %q", got, want)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highlights.json")
	items := []Highlight{
		{Start: 12, End: 68, Reason: "strong hook"},
		{Start: 90, End: 150, Reason: "closure"},
	}
	if err := Save(path, items); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Reason != "strong hook" {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	} else if !strings.Contains(err.Error(), "not found") {
		t.Errorf("err = %v, want not-found classification", err)
	}
}
