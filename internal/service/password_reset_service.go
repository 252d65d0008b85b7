package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shiksha/internal/domain"
	"shiksha/internal/port"
)

const resetTokenTTL = 1 * time.Hour

// ForgotPasswordInput is the DTO for forgot-password requests.
type ForgotPasswordInput struct {
	SchoolSlug string `json:"school_slug" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
}

// ResetPasswordInput is the DTO for reset-password requests.
type ResetPasswordInput struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// PasswordResetService defines the password reset contract.
type PasswordResetService interface {
	ForgotPassword(ctx context.Context, input ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
}

type passwordResetService struct {
	schoolRepo  port.SchoolRepository
	userRepo    port.UserRepository
	resetRepo   port.PasswordResetRepository
	emailSender port.EmailSender
}

// NewPasswordResetService creates a new PasswordResetService.
func NewPasswordResetService(
	schoolRepo port.SchoolRepository,
	userRepo port.UserRepository,
	resetRepo port.PasswordResetRepository,
	emailSender port.EmailSender,
) PasswordResetService {
	return &passwordResetService{
		schoolRepo:  schoolRepo,
		userRepo:    userRepo,
		resetRepo:   resetRepo,
		emailSender: emailSender,
	}
}

// ForgotPassword always returns nil so the endpoint does not leak which
// emails exist. Failures are logged and swallowed.
func (s *passwordResetService) ForgotPassword(ctx context.Context, input ForgotPasswordInput) error {
	school, err := s.schoolRepo.GetBySlug(ctx, input.SchoolSlug)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("WARNING: forgot-password school lookup error: %v", err)
		}
		return nil
	}
	if !school.IsActive {
		return nil
	}

	user, err := s.userRepo.GetByEmail(ctx, school.ID, input.Email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("WARNING: forgot-password user lookup error: %v", err)
		}
		return nil
	}
	if !user.IsActive {
		return nil
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		log.Printf("WARNING: failed to generate reset token for %s: %v", user.Email, err)
		return nil
	}
	tokenString := hex.EncodeToString(raw)

	token := &domain.PasswordResetToken{
		UserID:    user.ID,
		SchoolID:  school.ID,
		TokenHash: hashResetToken(tokenString),
		ExpiresAt: time.Now().UTC().Add(resetTokenTTL),
	}
	if err := s.resetRepo.Create(ctx, token); err != nil {
		log.Printf("WARNING: failed to store reset token for %s: %v", user.Email, err)
		return nil
	}

	if err := s.emailSender.SendPasswordResetEmail(ctx, user.Email, user.FullName, tokenString); err != nil {
		log.Printf("WARNING: failed to send password reset email to %s: %v", user.Email, err)
	}

	return nil
}

func (s *passwordResetService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	token, err := s.resetRepo.GetByTokenHash(ctx, hashResetToken(input.Token))
	if err != nil {
		return domain.ErrPasswordResetTokenInvalid
	}
	now := time.Now().UTC()
	if token.UsedAt != nil || now.After(token.ExpiresAt) {
		return domain.ErrPasswordResetTokenInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), 12)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if err := s.resetRepo.MarkUsed(ctx, token.ID, now); err != nil {
		return domain.ErrPasswordResetTokenInvalid
	}

	return s.userRepo.UpdatePasswordHash(ctx, token.SchoolID, token.UserID, string(hash))
}

// hashResetToken stores only a digest of the token so a database leak does
// not expose usable reset links.
func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
