package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ats-screener-backend/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient("test-key", "gemini-1.5-flash")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	c.baseURL = srv.URL
	return c
}

func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient("", "gemini-1.5-flash"); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := NewClient("key", " "); err == nil {
		t.Fatal("expected error for missing model")
	}
}

func TestGenerateReturnsTextVerbatim(t *testing.T) {
	var gotParts []llm.Part
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/gemini-1.5-flash:generateContent" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		var req struct {
			Contents []struct {
				Parts []llm.Part `json:"parts"`
			} `json:"contents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Contents) == 1 {
			gotParts = req.Contents[0].Parts
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{
					{"text": "Strong backend profile.\n"},
					{"text": "Match: 85%"},
				}}},
			},
			"usageMetadata": map[string]int{"promptTokenCount": 10, "candidatesTokenCount": 5, "totalTokenCount": 15},
		})
	})

	parts := []llm.Part{{Text: "jd"}, {Text: "page one"}, {Text: "prompt"}}
	text, err := client.Generate(context.Background(), parts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "Strong backend profile.\nMatch: 85%" {
		t.Fatalf("unexpected text: %q", text)
	}
	if len(gotParts) != 3 {
		t.Fatalf("provider received %d parts, want 3", len(gotParts))
	}
	for i, p := range parts {
		if gotParts[i] != p {
			t.Fatalf("part %d reordered: got %q want %q", i, gotParts[i].Text, p.Text)
		}
	}
}

func TestGenerateSurfacesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    429,
				"message": "Quota exceeded",
				"status":  "RESOURCE_EXHAUSTED",
			},
		})
	})

	_, err := client.Generate(context.Background(), []llm.Part{{Text: "hi"}})
	if err == nil {
		t.Fatal("expected error")
	}
	var llmErr *llm.Error
	if !errors.As(err, &llmErr) {
		t.Fatalf("expected *llm.Error, got %T: %v", err, err)
	}
	if llmErr.Status != "RESOURCE_EXHAUSTED" || llmErr.Message != "Quota exceeded" {
		t.Fatalf("unexpected error payload: %+v", llmErr)
	}
}

func TestGenerateRejectsMalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	})

	if _, err := client.Generate(context.Background(), []llm.Part{{Text: "hi"}}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGenerateRejectsEmptyCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	})

	if _, err := client.Generate(context.Background(), []llm.Part{{Text: "hi"}}); err == nil {
		t.Fatal("expected missing-candidates error")
	}
}

func TestGenerateRejectsEmptyPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made for an empty payload")
	})

	if _, err := client.Generate(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty parts")
	}
}
