package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// imageSize is fixed: images are delivered by URL reference, nothing is
// downloaded, so a small size keeps generation cheap.
const imageSize = "512x512"

// Client talks to an OpenAI-compatible API. Works with api.openai.com or any
// endpoint implementing the same /v1 surface.
type Client struct {
	baseURL   string
	apiKey    string
	chatModel string
	http      *http.Client
}

func NewClient(baseURL, apiKey, chatModel string) *Client {
	return &Client{
		baseURL:   baseURL,
		apiKey:    apiKey,
		chatModel: chatModel,
		http:      &http.Client{Timeout: 60 * time.Second},
	}
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error"`
}

type imageRequest struct {
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
	Error *apiError `json:"error"`
}

// Chat sends text as a single user turn and returns the first completion's
// content verbatim. No conversation history is kept across calls.
func (c *Client) Chat(ctx context.Context, text string) (string, error) {
	reqBody := chatRequest{
		Model:    c.chatModel,
		Messages: []chatMessage{{Role: "user", Content: text}},
	}

	var result chatResponse
	if err := c.post(ctx, "/v1/chat/completions", reqBody, &result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", fmt.Errorf("chat completion failed: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}

// GenerateImage requests one image and returns the hosted URL verbatim.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	reqBody := imageRequest{Prompt: prompt, N: 1, Size: imageSize}

	var result imageResponse
	if err := c.post(ctx, "/v1/images/generations", reqBody, &result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", fmt.Errorf("image generation failed: %s", result.Error.Message)
	}
	if len(result.Data) == 0 {
		return "", fmt.Errorf("no image generated")
	}
	return result.Data[0].URL, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error *apiError `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&errResp)
		if errResp.Error != nil && errResp.Error.Message != "" {
			return fmt.Errorf("API error: %s", errResp.Error.Message)
		}
		return fmt.Errorf("API error: HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
