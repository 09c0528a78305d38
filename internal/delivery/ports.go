package delivery

import (
	"context"

	"github.com/Vovarama1992/voice_agent/internal/speech"
)

type SpeechService interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
	Generate(ctx context.Context, text, style string) (string, error)
	Speak(ctx context.Context, text, style string) (*speech.Audio, error)
	VoiceReply(ctx context.Context, audio []byte, filename, style string) (*speech.Audio, error)
}

type LLMService interface {
	Query(ctx context.Context, text string) (string, error)
}
