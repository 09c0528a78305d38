package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voice_agent/internal/error_notificator"
	"github.com/Vovarama1992/voice_agent/internal/ports"
)

var ErrEmptyPrompt = errors.New("text is required")

type AiService struct {
	llm      Completer
	provider string
	notifier error_notificator.Notificator
	log      *logger.ZapLogger
}

func NewAiService(llm Completer, provider string, notifier error_notificator.Notificator, log *logger.ZapLogger) *AiService {
	return &AiService{
		llm:      llm,
		provider: provider,
		notifier: notifier,
		log:      log,
	}
}

// диагностика ошибок LLM
func analyzeLLMError(err error) string {
	var pe *ports.ProviderError
	if !errors.As(err, &pe) {
		return "Неизвестная ошибка: " + err.Error()
	}

	switch pe.StatusCode {
	case 400:
		return "Некорректный запрос к модели."
	case 401, 403:
		return "Неверный API-ключ."
	case 404:
		return "Модель не найдена."
	case 429:
		return "Превышен лимит запросов."
	}
	if pe.StatusCode >= 500 {
		return "Внутренняя ошибка провайдера."
	}
	return "Ошибка провайдера: " + pe.Body
}

// Query sends the user's text to the configured model and returns its reply.
func (s *AiService) Query(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyPrompt
	}

	reply, err := s.llm.Complete(ctx, text)
	if err != nil {
		if errors.Is(err, ports.ErrNotConfigured) {
			return "", err
		}

		s.log.Log(logger.LogEntry{Level: "error", Message: s.provider + " completion failed", Error: err})
		if s.notifier != nil {
			_ = s.notifier.Notify(ctx, s.provider, err,
				fmt.Sprintf("Ошибка LLM\nПровайдер: %s\nДлина запроса: %d\n\n%s",
					s.provider, utf8.RuneCountInString(text), analyzeLLMError(err)))
		}
		return "", err
	}

	return reply, nil
}
