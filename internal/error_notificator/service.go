package error_notificator

import (
	"context"

	"github.com/Vovarama1992/go-utils/logger"
)

type Service struct {
	infra Notificator
	log   *logger.ZapLogger
}

func NewService(infra Notificator, log *logger.ZapLogger) *Service {
	return &Service{infra: infra, log: log}
}

// Notify never fails the caller's request: delivery problems are only logged.
func (s *Service) Notify(ctx context.Context, source string, err error, details string) error {
	if sendErr := s.infra.Notify(ctx, source, err, details); sendErr != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "error notification not delivered: " + source,
			Error:   sendErr,
		})
	}
	return nil
}
