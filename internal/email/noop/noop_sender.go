package noop

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"shiksha/internal/port"
)

type noopSender struct {
	frontendURL string
}

// NewNoopSender creates a no-op EmailSender that logs what it would have sent.
// Used in development where SES is not configured.
func NewNoopSender(frontendURL string) port.EmailSender {
	return &noopSender{frontendURL: frontendURL}
}

func (s *noopSender) SendPasswordResetEmail(_ context.Context, toEmail, toName, resetToken string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, url.QueryEscape(resetToken))
	log.Printf("[NOOP EMAIL] Password reset for %s (%s): %s", toName, toEmail, resetURL)
	return nil
}

func (s *noopSender) SendWelcomeEmail(_ context.Context, toEmail, toName, schoolName string) error {
	log.Printf("[NOOP EMAIL] Welcome email for %s (%s), school %q", toName, toEmail, schoolName)
	return nil
}
