package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ats-screener-backend/internal/extract"
	"ats-screener-backend/internal/llm"
	"ats-screener-backend/internal/results"
	"ats-screener-backend/internal/services/health"
	"ats-screener-backend/internal/shared/config"
)

type stubClient struct{}

func (stubClient) Generate(ctx context.Context, parts []llm.Part) (string, error) {
	return "ok", nil
}

func newTestEngine() http.Handler {
	svc := &results.Service{
		Repo:      results.NewMemoryRepo(),
		Extractor: extract.New(),
		LLM:       stubClient{},
	}
	cfg := config.Config{
		Port:            "8080",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             "dev",
	}
	return NewRouter(cfg, Deps{
		Results: results.NewHandler(svc),
		Health:  health.NewService(nil),
	})
}

func TestRouterHealthEndpoint(t *testing.T) {
	router := newTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["ok"] != true {
		t.Fatalf("expected ok=true, got %v", payload["ok"])
	}
	if payload["storage"] != "memory" {
		t.Fatalf("expected storage=memory, got %v", payload["storage"])
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "analysis_started_total") {
		t.Fatalf("metrics output missing counters: %s", resp.Body.String())
	}
}

func TestRouterListAnalyses(t *testing.T) {
	router := newTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Count != 0 {
		t.Fatalf("expected empty list, got %d", payload.Count)
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":8080",
		"9000":  ":9000",
		":9000": ":9000",
	}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
