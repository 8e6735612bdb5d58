package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"ats-screener-backend/internal/llm"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client implements llm.Client against the Gemini generateContent API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Gemini client. The API key is supplied
// out-of-band via configuration; requests time out after
// GEMINI_TIMEOUT_SECONDS (default 60).
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("GEMINI_MODEL is required")
	}
	timeout := 60 * time.Second
	if raw := strings.TrimSpace(os.Getenv("GEMINI_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []llm.Part `json:"parts"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
	UsageMetadata *struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata,omitempty"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Generate sends the ordered parts as a single request and returns the
// generated text verbatim. Exactly one attempt is made; there is no
// retry or backoff.
func (c *Client) Generate(ctx context.Context, parts []llm.Part) (string, error) {
	if len(parts) == 0 {
		return "", fmt.Errorf("no parts to send")
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: parts}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", fmt.Errorf("gemini request timeout: %w", err)
		}
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("gemini response parse: %w", err)
	}
	if parsed.Error != nil {
		return "", &llm.Error{
			StatusCode: parsed.Error.Code,
			Status:     parsed.Error.Status,
			Message:    parsed.Error.Message,
		}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &llm.Error{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}
	if parsed.PromptFeedback != nil && parsed.PromptFeedback.BlockReason != "" {
		return "", &llm.Error{
			StatusCode: resp.StatusCode,
			Status:     parsed.PromptFeedback.BlockReason,
			Message:    "prompt blocked by safety settings",
		}
	}
	if len(parsed.Candidates) == 0 {
		return "", fmt.Errorf("gemini response missing candidates")
	}

	var b strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini response empty content")
	}
	logUsage(c.model, &parsed)
	return text, nil
}

func logUsage(model string, resp *generateResponse) {
	if resp.UsageMetadata == nil {
		log.Printf("llm response model=%s", model)
		return
	}
	log.Printf("llm response model=%s prompt_tokens=%d candidate_tokens=%d total_tokens=%d",
		model,
		resp.UsageMetadata.PromptTokenCount,
		resp.UsageMetadata.CandidatesTokenCount,
		resp.UsageMetadata.TotalTokenCount,
	)
}

var _ llm.Client = (*Client)(nil)
