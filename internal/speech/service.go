package speech

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voice_agent/internal/error_notificator"
	"github.com/Vovarama1992/voice_agent/internal/ports"
)

const (
	FormatMP3        = "mp3"
	AudioContentType = "audio/mpeg"
)

// Audio is a synthesized clip ready to be streamed; the caller closes Body.
type Audio struct {
	Body        io.ReadCloser
	ContentType string
}

// === Единый сервис (и для стт и для ттс) ===

type Service struct {
	stt      STTClient
	tts      TTSClient
	notifier error_notificator.Notificator
	log      *logger.ZapLogger
}

func NewService(stt STTClient, tts TTSClient, notifier error_notificator.Notificator, log *logger.ZapLogger) *Service {
	return &Service{
		stt:      stt,
		tts:      tts,
		notifier: notifier,
		log:      log,
	}
}

func (s *Service) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	text, err := s.stt.Transcribe(ctx, audio, filename)
	if err != nil {
		s.report(ctx, "stt", err, fmt.Sprintf("transcribe %q (%d bytes)", filename, len(audio)))
		return "", err
	}
	return text, nil
}

// Generate asks the provider for audio and returns only its URL.
func (s *Service) Generate(ctx context.Context, text, style string) (string, error) {
	res, err := s.tts.Generate(ctx, SynthesisRequest{
		Text:    text,
		VoiceID: s.voice(style),
	})
	if err != nil {
		s.report(ctx, "tts", err, "generate, style="+style)
		return "", err
	}
	return res.AudioURL, nil
}

// Speak synthesizes text as mp3 and opens the resulting audio.
func (s *Service) Speak(ctx context.Context, text, style string) (*Audio, error) {
	res, err := s.tts.Generate(ctx, SynthesisRequest{
		Text:    text,
		VoiceID: s.voice(style),
		Format:  FormatMP3,
	})
	if err != nil {
		s.report(ctx, "tts", err, "speak, style="+style)
		return nil, err
	}

	body, err := s.tts.Download(ctx, res.AudioURL)
	if err != nil {
		s.report(ctx, "tts", err, "download "+res.AudioURL)
		return nil, err
	}

	return &Audio{Body: body, ContentType: AudioContentType}, nil
}

// VoiceReply: голос → текст → голос выбранного стиля.
func (s *Service) VoiceReply(ctx context.Context, audio []byte, filename, style string) (*Audio, error) {
	text, err := s.Transcribe(ctx, audio, filename)
	if err != nil {
		return nil, err
	}
	return s.Speak(ctx, text, style)
}

func (s *Service) voice(style string) string {
	id, ok := ResolveVoice(style)
	if !ok {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: fmt.Sprintf("unknown voice style %q, using %s", style, id),
		})
	}
	return id
}

func (s *Service) report(ctx context.Context, source string, err error, details string) {
	s.log.Log(logger.LogEntry{Level: "error", Message: source + " failed: " + details, Error: err})
	// отсутствующий ключ не инцидент
	if s.notifier != nil && !errors.Is(err, ports.ErrNotConfigured) {
		_ = s.notifier.Notify(ctx, source, err, details)
	}
}
