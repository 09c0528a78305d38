package error_notificator

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the slice of *tgbotapi.BotAPI the infra needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramInfra struct {
	bot    Sender
	admins []int64
}

func NewTelegramInfra(bot Sender, admins []int64) *TelegramInfra {
	return &TelegramInfra{bot: bot, admins: admins}
}

// NewTelegramInfraFromToken logs in with the bot token.
func NewTelegramInfraFromToken(token string, admins []int64) (*TelegramInfra, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram login: %w", err)
	}
	return NewTelegramInfra(bot, admins), nil
}

func (i *TelegramInfra) Notify(ctx context.Context, source string, err error, details string) error {
	text := fmt.Sprintf(
		"❗ Ошибка в voice_agent (%s)\n\nОшибка: %v\n\nДетали: %s",
		source,
		err,
		details,
	)

	for _, chatID := range i.admins {
		if _, sendErr := i.bot.Send(tgbotapi.NewMessage(chatID, text)); sendErr != nil {
			return fmt.Errorf("send to %d: %w", chatID, sendErr)
		}
	}

	return nil
}

// NopInfra is used when no Telegram bot is configured.
type NopInfra struct{}

func (NopInfra) Notify(context.Context, string, error, string) error { return nil }
