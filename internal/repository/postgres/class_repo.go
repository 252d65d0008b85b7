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

type classRepo struct {
	db *sqlx.DB
}

// NewClassRepo creates a new PostgreSQL-backed ClassRepository.
func NewClassRepo(db *sqlx.DB) port.ClassRepository {
	return &classRepo{db: db}
}

func (r *classRepo) Create(ctx context.Context, class *domain.Class) error {
	class.ID = uuid.New()
	now := time.Now().UTC()
	class.CreatedAt = now
	class.UpdatedAt = now

	query := `INSERT INTO classes (id, school_id, name, grade, section, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		class.ID, class.SchoolID, class.Name, class.Grade, class.Section,
		class.CreatedBy, class.CreatedAt, class.UpdatedAt)
	if err != nil {
		return fmt.Errorf("classRepo.Create: %w", err)
	}
	return nil
}

func (r *classRepo) GetByID(ctx context.Context, schoolID, classID uuid.UUID) (*domain.Class, error) {
	var class domain.Class
	err := r.db.GetContext(ctx, &class,
		"SELECT * FROM classes WHERE id = $1 AND school_id = $2", classID, schoolID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("classRepo.GetByID: %w", err)
	}
	return &class, nil
}

func (r *classRepo) ListBySchool(ctx context.Context, schoolID uuid.UUID, offset, limit int) ([]domain.Class, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM classes WHERE school_id = $1", schoolID)
	if err != nil {
		return nil, 0, fmt.Errorf("classRepo.ListBySchool count: %w", err)
	}

	var classes []domain.Class
	err = r.db.SelectContext(ctx, &classes,
		`SELECT * FROM classes WHERE school_id = $1
		 ORDER BY grade, section, name LIMIT $2 OFFSET $3`, schoolID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("classRepo.ListBySchool: %w", err)
	}
	return classes, total, nil
}

func (r *classRepo) Update(ctx context.Context, class *domain.Class) error {
	class.UpdatedAt = time.Now().UTC()
	query := `UPDATE classes SET name = $1, grade = $2, section = $3, updated_at = $4
		WHERE id = $5 AND school_id = $6`
	result, err := r.db.ExecContext(ctx, query,
		class.Name, class.Grade, class.Section, class.UpdatedAt, class.ID, class.SchoolID)
	if err != nil {
		return fmt.Errorf("classRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *classRepo) Delete(ctx context.Context, schoolID, classID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM classes WHERE id = $1 AND school_id = $2", classID, schoolID)
	if err != nil {
		return fmt.Errorf("classRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
