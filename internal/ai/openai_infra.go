package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Vovarama1992/voice_agent/internal/ports"
	openai "github.com/sashabaranov/go-openai"
)

// ErrNoChoices: the completion came back 200 with an empty choices list.
var ErrNoChoices = errors.New("No response from OpenAI API")

// OpenAIClient serves both chat completions and Whisper transcription.
// baseURL may point at any OpenAI-compatible endpoint.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, baseURL, model string, httpClient *http.Client) *OpenAIClient {
	if apiKey == "" {
		return &OpenAIClient{model: model}
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", ports.NotConfigured("OpenAI API key")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", asProviderError(err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

// Transcribe runs Whisper over the uploaded clip.
func (c *OpenAIClient) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if c.client == nil {
		return "", ports.NotConfigured("OpenAI API key")
	}
	if filename == "" {
		filename = "audio.webm"
	}

	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   bytes.NewReader(audio),
		FilePath: filename,
	})
	if err != nil {
		return "", fmt.Errorf("whisper: %w", err)
	}
	return resp.Text, nil
}

// asProviderError keeps the upstream status so delivery can pass it through.
func asProviderError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode > 0 {
		return &ports.ProviderError{
			Provider:   "openai",
			StatusCode: apiErr.HTTPStatusCode,
			Body:       "OpenAI API error: " + apiErr.Message,
		}
	}
	return fmt.Errorf("openai request: %w", err)
}
