package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Vovarama1992/voice_agent/internal/ports"
)

type AssemblyAIClient struct {
	apiKey       string
	baseURL      string
	pollInterval time.Duration
	client       *http.Client
}

func NewAssemblyAIClient(apiKey, baseURL string, pollInterval time.Duration, client *http.Client) *AssemblyAIClient {
	if client == nil {
		client = http.DefaultClient
	}
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}
	return &AssemblyAIClient{
		apiKey:       apiKey,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		pollInterval: pollInterval,
		client:       client,
	}
}

// Transcribe uploads the audio, queues a transcript and polls until it settles.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio []byte, _ string) (string, error) {
	if c.apiKey == "" {
		return "", ports.NotConfigured("AssemblyAI API key")
	}

	var uploaded struct {
		UploadURL string `json:"upload_url"`
	}
	if err := c.do(ctx, http.MethodPost, "/v2/upload", "application/octet-stream", bytes.NewReader(audio), &uploaded); err != nil {
		return "", fmt.Errorf("assemblyai upload: %w", err)
	}
	if uploaded.UploadURL == "" {
		return "", fmt.Errorf("assemblyai upload: empty upload_url")
	}

	body, _ := json.Marshal(map[string]string{"audio_url": uploaded.UploadURL})
	var tr transcript
	if err := c.do(ctx, http.MethodPost, "/v2/transcript", "application/json", bytes.NewReader(body), &tr); err != nil {
		return "", fmt.Errorf("assemblyai transcript: %w", err)
	}

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		switch tr.Status {
		case "completed":
			return tr.Text, nil
		case "error":
			return "", fmt.Errorf("assemblyai transcript %s failed: %s", tr.ID, tr.Error)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}

		if err := c.do(ctx, http.MethodGet, "/v2/transcript/"+tr.ID, "", nil, &tr); err != nil {
			return "", fmt.Errorf("assemblyai poll: %w", err)
		}
	}
}

type transcript struct {
	ID     string `json:"id"`
	Status string `json:"status"` // queued | processing | completed | error
	Text   string `json:"text"`
	Error  string `json:"error"`
}

func (c *AssemblyAIClient) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.apiKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
