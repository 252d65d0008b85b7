package port

import "context"

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendPasswordResetEmail(ctx context.Context, toEmail, toName, resetToken string) error
	SendWelcomeEmail(ctx context.Context, toEmail, toName, schoolName string) error
}
