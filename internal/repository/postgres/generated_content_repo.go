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

type generatedContentRepo struct {
	db *sqlx.DB
}

// NewGeneratedContentRepo creates a new PostgreSQL-backed GeneratedContentRepository.
func NewGeneratedContentRepo(db *sqlx.DB) port.GeneratedContentRepository {
	return &generatedContentRepo{db: db}
}

func (r *generatedContentRepo) Create(ctx context.Context, content *domain.GeneratedContent) error {
	content.ID = uuid.New()
	content.CreatedAt = time.Now().UTC()

	query := `INSERT INTO generated_content
		(id, school_id, topic_id, content_type, raw_response, model_used, prompt_used, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		content.ID, content.SchoolID, content.TopicID, content.ContentType,
		content.RawResponse, content.ModelUsed, content.PromptUsed, content.CreatedBy, content.CreatedAt)
	if err != nil {
		return fmt.Errorf("generatedContentRepo.Create: %w", err)
	}
	return nil
}

func (r *generatedContentRepo) GetByID(ctx context.Context, schoolID, contentID uuid.UUID) (*domain.GeneratedContent, error) {
	var content domain.GeneratedContent
	err := r.db.GetContext(ctx, &content,
		"SELECT * FROM generated_content WHERE id = $1 AND school_id = $2", contentID, schoolID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("generatedContentRepo.GetByID: %w", err)
	}
	return &content, nil
}

func (r *generatedContentRepo) ListByTopic(ctx context.Context, schoolID, topicID uuid.UUID) ([]domain.GeneratedContent, error) {
	var contents []domain.GeneratedContent
	err := r.db.SelectContext(ctx, &contents,
		`SELECT * FROM generated_content WHERE school_id = $1 AND topic_id = $2
		 ORDER BY created_at DESC`, schoolID, topicID)
	if err != nil {
		return nil, fmt.Errorf("generatedContentRepo.ListByTopic: %w", err)
	}
	return contents, nil
}

func (r *generatedContentRepo) ListByTopicAndType(ctx context.Context, schoolID, topicID uuid.UUID, contentType domain.ContentType) ([]domain.GeneratedContent, error) {
	var contents []domain.GeneratedContent
	err := r.db.SelectContext(ctx, &contents,
		`SELECT * FROM generated_content
		 WHERE school_id = $1 AND topic_id = $2 AND content_type = $3
		 ORDER BY created_at DESC`, schoolID, topicID, contentType)
	if err != nil {
		return nil, fmt.Errorf("generatedContentRepo.ListByTopicAndType: %w", err)
	}
	return contents, nil
}

func (r *generatedContentRepo) Delete(ctx context.Context, schoolID, contentID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM generated_content WHERE id = $1 AND school_id = $2", contentID, schoolID)
	if err != nil {
		return fmt.Errorf("generatedContentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
