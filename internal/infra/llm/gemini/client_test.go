package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateContentSuccess(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-Goog-Api-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"title\":\"ok\"}"}]}}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "gemini-2.5-flash")
	text, err := client.GenerateContent(context.Background(), "hello", GenerationConfig{Temperature: 0.8, MaxOutputTokens: 600})
	require.NoError(t, err)
	require.Equal(t, `{"title":"ok"}`, text)

	require.Equal(t, "/models/gemini-2.5-flash:generateContent", gotPath)
	require.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	require.Equal(t, "hello", gotBody.Contents[0].Parts[0].Text)
	require.NotNil(t, gotBody.GenerationConfig)
	require.InDelta(t, 0.8, gotBody.GenerationConfig.Temperature, 1e-6)
}

func TestGenerateContentJoinsParts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hello "},{"text":"world"}]}}]}`))
	}))
	defer server.Close()

	client := NewClient("k", server.URL, "m")
	text, err := client.GenerateContent(context.Background(), "p", GenerationConfig{})
	require.NoError(t, err)
	require.Equal(t, "hello world", text)
}

func TestGenerateContentMissingAPIKey(t *testing.T) {
	client := NewClient("", "http://unused", "m")

	_, err := client.GenerateContent(context.Background(), "p", GenerationConfig{})
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestGenerateContentRateLimitedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient("k", server.URL, "m")
	_, err := client.GenerateContent(context.Background(), "p", GenerationConfig{})
	require.ErrorIs(t, err, ErrRateLimited)
}

func TestGenerateContentRateLimitedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit exceeded for project"}}`))
	}))
	defer server.Close()

	client := NewClient("k", server.URL, "m")
	_, err := client.GenerateContent(context.Background(), "p", GenerationConfig{})
	require.ErrorIs(t, err, ErrRateLimited)
}

func TestGenerateContentAPIErrorInPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"code":400,"status":"INVALID_ARGUMENT","message":"bad request"}}`))
	}))
	defer server.Close()

	client := NewClient("k", server.URL, "m")
	_, err := client.GenerateContent(context.Background(), "p", GenerationConfig{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad request")
}

func TestGenerateContentEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewClient("k", server.URL, "m")
	_, err := client.GenerateContent(context.Background(), "p", GenerationConfig{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty response")
}

func TestGenerateContentServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := NewClient("k", server.URL, "m")
	_, err := client.GenerateContent(context.Background(), "p", GenerationConfig{})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrRateLimited)
}
