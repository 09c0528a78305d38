package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Vovarama1992/voice_agent/internal/ports"
)

var (
	ErrNoAudioURL    = errors.New("No audio file URL returned by Murf AI")
	ErrAudioDownload = errors.New("Failed to download audio from Murf AI")
)

// maxAudioBytes caps a single generated clip held in memory.
const maxAudioBytes = 64 << 20

type MurfClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewMurfClient does not fail on an empty key: Generate reports it per request.
func NewMurfClient(apiKey, baseURL string, client *http.Client) *MurfClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &MurfClient{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

// TEXT → SPEECH (ссылка на готовый файл)
func (c *MurfClient) Generate(ctx context.Context, in SynthesisRequest) (*SynthesisResult, error) {
	if c.apiKey == "" {
		return nil, ports.NotConfigured("Murf API key")
	}

	payload := map[string]string{
		"text":     in.Text,
		"voice_id": in.VoiceID,
	}
	if in.Format != "" {
		payload["format"] = in.Format
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/speech/generate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("murf request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read murf response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ports.ProviderError{
			Provider:   "murf",
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
	}

	var parsed struct {
		AudioFile string `json:"audioFile"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode murf: %w", err)
	}
	if parsed.AudioFile == "" {
		return nil, ErrNoAudioURL
	}

	return &SynthesisResult{AudioURL: parsed.AudioFile}, nil
}

// Download fetches the whole generated file before returning, so a broken
// transfer surfaces as ErrAudioDownload instead of a truncated 200.
func (c *MurfClient) Download(ctx context.Context, audioURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, audioURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAudioDownload, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAudioDownload, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrAudioDownload, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAudioDownload, err)
	}
	if len(data) > maxAudioBytes {
		return nil, fmt.Errorf("%w: audio larger than %d bytes", ErrAudioDownload, maxAudioBytes)
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}
