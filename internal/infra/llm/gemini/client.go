package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ErrNotConfigured is returned when no API key is available.
var ErrNotConfigured = errors.New("gemini api key is not configured")

// ErrRateLimited is returned when the API reports quota exhaustion.
var ErrRateLimited = errors.New("gemini api rate limit exceeded")

// GenerationConfig mirrors the Gemini generation parameters.
type GenerationConfig struct {
	Temperature      float32 `json:"temperature,omitempty"`
	TopK             int     `json:"topK,omitempty"`
	TopP             float32 `json:"topP,omitempty"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Client performs HTTP requests to the Gemini generateContent API.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient constructs a Gemini client. An empty API key is allowed so the
// service can boot without one; calls then fail with ErrNotConfigured.
func NewClient(apiKey, baseURL, model string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// GenerateContent runs a single-turn text generation and returns the first
// candidate's text.
func (c *Client) GenerateContent(ctx context.Context, prompt string, cfg GenerationConfig) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	reqBody := generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &cfg,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encode generate request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Goog-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request generate content: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read generate response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", ErrRateLimited
	}
	if resp.StatusCode >= 300 {
		if strings.Contains(strings.ToLower(string(body)), "rate limit") {
			return "", ErrRateLimited
		}
		return "", fmt.Errorf("gemini request failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}
	if out.Error != nil {
		if out.Error.Code == http.StatusTooManyRequests || strings.Contains(strings.ToLower(out.Error.Message), "rate limit") {
			return "", ErrRateLimited
		}
		return "", fmt.Errorf("gemini api error: %s", out.Error.Message)
	}

	text := firstCandidateText(out)
	if text == "" {
		return "", errors.New("gemini returned an empty response")
	}
	return text, nil
}

func firstCandidateText(resp generateResponse) string {
	for _, candidate := range resp.Candidates {
		var builder strings.Builder
		for _, p := range candidate.Content.Parts {
			builder.WriteString(p.Text)
		}
		if text := strings.TrimSpace(builder.String()); text != "" {
			return text
		}
	}
	return ""
}
