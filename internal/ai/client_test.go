package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatReturnsFirstChoiceVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-3.5-turbo", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "hello", req.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"  raw reply\n"}},{"message":{"content":"second"}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-3.5-turbo")

	reply, err := client.Chat(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "  raw reply\n", reply)
}

func TestChatNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-3.5-turbo")

	_, err := client.Chat(context.Background(), "hello")
	assert.Error(t, err)
}

func TestChatAPIErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit exceeded","type":"rate_limit"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-3.5-turbo")

	_, err := client.Chat(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestGenerateImageRequestsFixedSize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/images/generations", r.URL.Path)

		var req imageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a red cat", req.Prompt)
		assert.Equal(t, 1, req.N)
		assert.Equal(t, "512x512", req.Size)

		w.Write([]byte(`{"data":[{"url":"https://img.example.com/cat.png"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-3.5-turbo")

	url, err := client.GenerateImage(context.Background(), "a red cat")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/cat.png", url)
}

func TestGenerateImageEmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-3.5-turbo")

	_, err := client.GenerateImage(context.Background(), "a red cat")
	assert.Error(t, err)
}

func TestUnreachableEndpoint(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "test-key", "gpt-3.5-turbo")

	_, err := client.Chat(context.Background(), "hello")
	assert.Error(t, err)
}
