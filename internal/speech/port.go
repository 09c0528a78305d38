package speech

import (
	"context"
	"io"
)

// STTClient turns recorded audio into text.
type STTClient interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error) // голос → текст
}

// TTSClient renders text on the provider side and hands back where the audio lives.
type TTSClient interface {
	Generate(ctx context.Context, req SynthesisRequest) (*SynthesisResult, error)
	Download(ctx context.Context, audioURL string) (io.ReadCloser, error)
}

type SynthesisRequest struct {
	Text    string
	VoiceID string
	Format  string // пусто: формат провайдера по умолчанию
}

type SynthesisResult struct {
	AudioURL string
}
