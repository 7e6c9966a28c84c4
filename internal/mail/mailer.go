// Package mail delivers the transactional messages carrying single-use
// account tokens.
package mail

import (
	"context"

	"github.com/plushealth/plushealth-server/internal/logger"
)

// Mailer delivers account-lifecycle messages. Delivery runs after the primary
// state change commits; failures are logged by the caller, never propagated.
type Mailer interface {
	SendVerification(ctx context.Context, to, name, token string) error
	SendDeletionConfirmation(ctx context.Context, to, name, token string) error
}

// NoopMailer logs instead of sending. Used when SMTP is not configured and in
// tests.
type NoopMailer struct {
	logger *logger.Logger
}

// NewNoopMailer creates a NoopMailer.
func NewNoopMailer(logger *logger.Logger) *NoopMailer {
	return &NoopMailer{logger: logger}
}

// SendVerification logs the verification token instead of emailing it.
func (m *NoopMailer) SendVerification(ctx context.Context, to, name, token string) error {
	m.logger.Info("mail delivery disabled, skipping verification message",
		"to", to,
		"token", token)
	return nil
}

// SendDeletionConfirmation logs the deletion token instead of emailing it.
func (m *NoopMailer) SendDeletionConfirmation(ctx context.Context, to, name, token string) error {
	m.logger.Info("mail delivery disabled, skipping deletion confirmation message",
		"to", to,
		"token", token)
	return nil
}
