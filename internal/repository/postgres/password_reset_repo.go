package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"shiksha/internal/domain"
	"shiksha/internal/port"
)

type passwordResetRepo struct {
	db *sqlx.DB
}

// NewPasswordResetRepo creates a new PostgreSQL-backed PasswordResetRepository.
func NewPasswordResetRepo(db *sqlx.DB) port.PasswordResetRepository {
	return &passwordResetRepo{db: db}
}

func (r *passwordResetRepo) Create(ctx context.Context, token *domain.PasswordResetToken) error {
	token.ID = uuid.New()
	token.CreatedAt = time.Now().UTC()

	query := `INSERT INTO password_reset_tokens (id, user_id, school_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		token.ID, token.UserID, token.SchoolID, token.TokenHash, token.ExpiresAt, token.CreatedAt)
	if err != nil {
		return fmt.Errorf("passwordResetRepo.Create: %w", err)
	}
	return nil
}

func (r *passwordResetRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.PasswordResetToken, error) {
	var token domain.PasswordResetToken
	err := r.db.GetContext(ctx, &token,
		"SELECT * FROM password_reset_tokens WHERE token_hash = $1", tokenHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPasswordResetTokenInvalid
		}
		return nil, fmt.Errorf("passwordResetRepo.GetByTokenHash: %w", err)
	}
	return &token, nil
}

func (r *passwordResetRepo) MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE password_reset_tokens SET used_at = $1 WHERE id = $2 AND used_at IS NULL",
		usedAt, id)
	if err != nil {
		return fmt.Errorf("passwordResetRepo.MarkUsed: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPasswordResetTokenInvalid
	}
	return nil
}

func (r *passwordResetRepo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM password_reset_tokens WHERE expires_at < $1", before)
	if err != nil {
		return 0, fmt.Errorf("passwordResetRepo.DeleteExpired: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}
