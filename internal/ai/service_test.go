package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voice_agent/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCompleter struct {
	reply  string
	err    error
	prompt string
}

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.reply, s.err
}

type countingNotifier struct{ n int }

func (c *countingNotifier) Notify(context.Context, string, error, string) error {
	c.n++
	return nil
}

func newTestAiService(llm Completer, n *countingNotifier) *AiService {
	return NewAiService(llm, "gemini", n, logger.NewZapLogger(zap.NewNop().Sugar()))
}

func TestQueryReturnsReply(t *testing.T) {
	llm := &stubCompleter{reply: "42"}
	svc := newTestAiService(llm, &countingNotifier{})

	out, err := svc.Query(context.Background(), "meaning of life?")
	require.NoError(t, err)
	assert.Equal(t, "42", out)
	assert.Equal(t, "meaning of life?", llm.prompt)
}

func TestQueryRejectsEmptyText(t *testing.T) {
	llm := &stubCompleter{}
	svc := newTestAiService(llm, &countingNotifier{})

	_, err := svc.Query(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyPrompt)
	assert.Empty(t, llm.prompt)
}

func TestQueryNotifiesOnProviderFailure(t *testing.T) {
	n := &countingNotifier{}
	svc := newTestAiService(&stubCompleter{err: &ports.ProviderError{Provider: "gemini", StatusCode: 429, Body: "quota"}}, n)

	_, err := svc.Query(context.Background(), "hi")

	var pe *ports.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, n.n)
}

func TestQueryDoesNotNotifyMissingKey(t *testing.T) {
	n := &countingNotifier{}
	svc := newTestAiService(&stubCompleter{err: ports.NotConfigured("Gemini API key")}, n)

	_, err := svc.Query(context.Background(), "hi")
	assert.ErrorIs(t, err, ports.ErrNotConfigured)
	assert.Zero(t, n.n)
}

func TestAnalyzeLLMError(t *testing.T) {
	assert.Equal(t, "Превышен лимит запросов.", analyzeLLMError(&ports.ProviderError{StatusCode: 429}))
	assert.Equal(t, "Внутренняя ошибка провайдера.", analyzeLLMError(&ports.ProviderError{StatusCode: 503}))
	assert.Contains(t, analyzeLLMError(errors.New("dial tcp")), "dial tcp")
}
