package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"shiksha/internal/domain"
	"shiksha/internal/port"
)

type schoolRepo struct {
	db *sqlx.DB
}

// NewSchoolRepo creates a new PostgreSQL-backed SchoolRepository.
func NewSchoolRepo(db *sqlx.DB) port.SchoolRepository {
	return &schoolRepo{db: db}
}

func (r *schoolRepo) Create(ctx context.Context, school *domain.School) error {
	school.ID = uuid.New()
	now := time.Now().UTC()
	school.CreatedAt = now
	school.UpdatedAt = now

	query := `INSERT INTO schools (id, name, slug, board, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		school.ID, school.Name, school.Slug, school.Board, school.IsActive, school.CreatedAt, school.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "slug") {
			return domain.ErrDuplicateSchoolSlug
		}
		return fmt.Errorf("schoolRepo.Create: %w", err)
	}
	return nil
}

func (r *schoolRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.School, error) {
	var school domain.School
	err := r.db.GetContext(ctx, &school, "SELECT * FROM schools WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("schoolRepo.GetByID: %w", err)
	}
	return &school, nil
}

func (r *schoolRepo) GetBySlug(ctx context.Context, slug string) (*domain.School, error) {
	var school domain.School
	err := r.db.GetContext(ctx, &school, "SELECT * FROM schools WHERE slug = $1", slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("schoolRepo.GetBySlug: %w", err)
	}
	return &school, nil
}

func (r *schoolRepo) List(ctx context.Context, offset, limit int) ([]domain.School, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM schools")
	if err != nil {
		return nil, 0, fmt.Errorf("schoolRepo.List count: %w", err)
	}

	var schools []domain.School
	err = r.db.SelectContext(ctx, &schools,
		"SELECT * FROM schools ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("schoolRepo.List: %w", err)
	}
	return schools, total, nil
}

func (r *schoolRepo) Update(ctx context.Context, school *domain.School) error {
	school.UpdatedAt = time.Now().UTC()
	query := `UPDATE schools SET name = $1, slug = $2, board = $3, is_active = $4, updated_at = $5 WHERE id = $6`
	result, err := r.db.ExecContext(ctx, query,
		school.Name, school.Slug, school.Board, school.IsActive, school.UpdatedAt, school.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "slug") {
			return domain.ErrDuplicateSchoolSlug
		}
		return fmt.Errorf("schoolRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *schoolRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM schools WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("schoolRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
