package service

import (
	"context"

	"guestdesk/core/logger"
)

// Messenger delivers a rendered message to a phone number. The production
// transport lives outside this service; the default implementation only
// records the attempt.
type Messenger interface {
	Send(ctx context.Context, phone, body string) error
}

// LogMessenger is the no-transport fallback used until a real gateway is
// configured.
type LogMessenger struct{}

func (LogMessenger) Send(_ context.Context, phone, body string) error {
	logger.Info("Messenger:Send", "phone", phone, "length", len(body))
	return nil
}
