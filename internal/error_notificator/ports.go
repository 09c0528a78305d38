package error_notificator

import "context"

type Notificator interface {
	// Notify отправляет сообщение об ошибке админу
	Notify(ctx context.Context, source string, err error, details string) error
}
