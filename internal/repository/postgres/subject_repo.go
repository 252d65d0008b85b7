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

type subjectRepo struct {
	db *sqlx.DB
}

// NewSubjectRepo creates a new PostgreSQL-backed SubjectRepository.
func NewSubjectRepo(db *sqlx.DB) port.SubjectRepository {
	return &subjectRepo{db: db}
}

func (r *subjectRepo) Create(ctx context.Context, subject *domain.Subject) error {
	subject.ID = uuid.New()
	now := time.Now().UTC()
	subject.CreatedAt = now
	subject.UpdatedAt = now

	query := `INSERT INTO subjects (id, school_id, class_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		subject.ID, subject.SchoolID, subject.ClassID, subject.Name, subject.CreatedAt, subject.UpdatedAt)
	if err != nil {
		return fmt.Errorf("subjectRepo.Create: %w", err)
	}
	return nil
}

func (r *subjectRepo) GetByID(ctx context.Context, schoolID, subjectID uuid.UUID) (*domain.Subject, error) {
	var subject domain.Subject
	err := r.db.GetContext(ctx, &subject,
		"SELECT * FROM subjects WHERE id = $1 AND school_id = $2", subjectID, schoolID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("subjectRepo.GetByID: %w", err)
	}
	return &subject, nil
}

func (r *subjectRepo) ListByClass(ctx context.Context, schoolID, classID uuid.UUID) ([]domain.Subject, error) {
	var subjects []domain.Subject
	err := r.db.SelectContext(ctx, &subjects,
		"SELECT * FROM subjects WHERE school_id = $1 AND class_id = $2 ORDER BY name", schoolID, classID)
	if err != nil {
		return nil, fmt.Errorf("subjectRepo.ListByClass: %w", err)
	}
	return subjects, nil
}

func (r *subjectRepo) Update(ctx context.Context, subject *domain.Subject) error {
	subject.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		"UPDATE subjects SET name = $1, updated_at = $2 WHERE id = $3 AND school_id = $4",
		subject.Name, subject.UpdatedAt, subject.ID, subject.SchoolID)
	if err != nil {
		return fmt.Errorf("subjectRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *subjectRepo) Delete(ctx context.Context, schoolID, subjectID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM subjects WHERE id = $1 AND school_id = $2", subjectID, schoolID)
	if err != nil {
		return fmt.Errorf("subjectRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
