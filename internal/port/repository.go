package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shiksha/internal/domain"
)

// SchoolRepository defines the contract for school persistence.
type SchoolRepository interface {
	Create(ctx context.Context, school *domain.School) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.School, error)
	GetBySlug(ctx context.Context, slug string) (*domain.School, error)
	List(ctx context.Context, offset, limit int) ([]domain.School, int, error)
	Update(ctx context.Context, school *domain.School) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository defines the contract for user persistence.
// All query methods include schoolID to enforce school isolation at the data layer.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, schoolID, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, schoolID uuid.UUID, email string) (*domain.User, error)
	ListBySchool(ctx context.Context, schoolID uuid.UUID, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	UpdatePasswordHash(ctx context.Context, schoolID, userID uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, schoolID, userID uuid.UUID) error
}

// PasswordResetRepository defines the contract for password reset token persistence.
type PasswordResetRepository interface {
	Create(ctx context.Context, token *domain.PasswordResetToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// FileMetaRepository defines the contract for uploaded file metadata persistence.
type FileMetaRepository interface {
	Create(ctx context.Context, meta *domain.FileMeta) error
	GetByID(ctx context.Context, schoolID, fileID uuid.UUID) (*domain.FileMeta, error)
	ListByTopic(ctx context.Context, schoolID, topicID uuid.UUID) ([]domain.FileMeta, error)
	UpdateStatus(ctx context.Context, schoolID, fileID uuid.UUID, status domain.FileStatus) error
	Delete(ctx context.Context, schoolID, fileID uuid.UUID) error
}
