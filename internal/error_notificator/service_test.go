package error_notificator

import (
	"context"
	"errors"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

func TestTelegramInfraNotifiesEveryAdmin(t *testing.T) {
	sender := &fakeSender{}
	infra := NewTelegramInfra(sender, []int64{1, 2})

	err := infra.Notify(context.Background(), "murf", errors.New("boom"), "voice-reply")
	require.NoError(t, err)

	require.Len(t, sender.sent, 2)
	assert.Equal(t, int64(1), sender.sent[0].ChatID)
	assert.Equal(t, int64(2), sender.sent[1].ChatID)
	assert.Contains(t, sender.sent[0].Text, "murf")
	assert.Contains(t, sender.sent[0].Text, "boom")
	assert.Contains(t, sender.sent[0].Text, "voice-reply")
}

func TestServiceSwallowsDeliveryErrors(t *testing.T) {
	sender := &fakeSender{err: errors.New("telegram down")}
	svc := NewService(NewTelegramInfra(sender, []int64{1}), logger.NewZapLogger(zap.NewNop().Sugar()))

	assert.NoError(t, svc.Notify(context.Background(), "gemini", errors.New("x"), ""))
}
