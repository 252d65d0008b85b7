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

type topicRepo struct {
	db *sqlx.DB
}

// NewTopicRepo creates a new PostgreSQL-backed TopicRepository.
func NewTopicRepo(db *sqlx.DB) port.TopicRepository {
	return &topicRepo{db: db}
}

const topicInsert = `INSERT INTO topics
	(id, school_id, subject_id, name, description, document_links, extracted_text,
	 part_number, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

func (r *topicRepo) Create(ctx context.Context, topic *domain.Topic) error {
	topic.ID = uuid.New()
	now := time.Now().UTC()
	topic.CreatedAt = now
	topic.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, topicInsert,
		topic.ID, topic.SchoolID, topic.SubjectID, topic.Name, topic.Description,
		topic.DocumentLinks, topic.ExtractedText, topic.PartNumber, topic.CreatedBy,
		topic.CreatedAt, topic.UpdatedAt)
	if err != nil {
		return fmt.Errorf("topicRepo.Create: %w", err)
	}
	return nil
}

// CreateBatch inserts a set of topics in one transaction, so a chapter-plan
// confirmation either lands fully or not at all.
func (r *topicRepo) CreateBatch(ctx context.Context, topics []domain.Topic) error {
	if len(topics) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("topicRepo.CreateBatch begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	for i := range topics {
		topics[i].ID = uuid.New()
		topics[i].CreatedAt = now
		topics[i].UpdatedAt = now
		_, err := tx.ExecContext(ctx, topicInsert,
			topics[i].ID, topics[i].SchoolID, topics[i].SubjectID, topics[i].Name,
			topics[i].Description, topics[i].DocumentLinks, topics[i].ExtractedText,
			topics[i].PartNumber, topics[i].CreatedBy, topics[i].CreatedAt, topics[i].UpdatedAt)
		if err != nil {
			return fmt.Errorf("topicRepo.CreateBatch insert %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("topicRepo.CreateBatch commit: %w", err)
	}
	return nil
}

func (r *topicRepo) GetByID(ctx context.Context, schoolID, topicID uuid.UUID) (*domain.Topic, error) {
	var topic domain.Topic
	err := r.db.GetContext(ctx, &topic,
		"SELECT * FROM topics WHERE id = $1 AND school_id = $2", topicID, schoolID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTopicNotFound
		}
		return nil, fmt.Errorf("topicRepo.GetByID: %w", err)
	}
	return &topic, nil
}

func (r *topicRepo) ListBySubject(ctx context.Context, schoolID, subjectID uuid.UUID) ([]domain.Topic, error) {
	var topics []domain.Topic
	err := r.db.SelectContext(ctx, &topics,
		`SELECT * FROM topics WHERE school_id = $1 AND subject_id = $2
		 ORDER BY part_number, created_at`, schoolID, subjectID)
	if err != nil {
		return nil, fmt.Errorf("topicRepo.ListBySubject: %w", err)
	}
	return topics, nil
}

func (r *topicRepo) Update(ctx context.Context, topic *domain.Topic) error {
	topic.UpdatedAt = time.Now().UTC()
	query := `UPDATE topics SET name = $1, description = $2, document_links = $3,
		extracted_text = $4, part_number = $5, updated_at = $6
		WHERE id = $7 AND school_id = $8`
	result, err := r.db.ExecContext(ctx, query,
		topic.Name, topic.Description, topic.DocumentLinks, topic.ExtractedText,
		topic.PartNumber, topic.UpdatedAt, topic.ID, topic.SchoolID)
	if err != nil {
		return fmt.Errorf("topicRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrTopicNotFound
	}
	return nil
}

func (r *topicRepo) UpdateExtractedText(ctx context.Context, schoolID, topicID uuid.UUID, text string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE topics SET extracted_text = $1, updated_at = $2 WHERE id = $3 AND school_id = $4",
		text, time.Now().UTC(), topicID, schoolID)
	if err != nil {
		return fmt.Errorf("topicRepo.UpdateExtractedText: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrTopicNotFound
	}
	return nil
}

func (r *topicRepo) Delete(ctx context.Context, schoolID, topicID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM topics WHERE id = $1 AND school_id = $2", topicID, schoolID)
	if err != nil {
		return fmt.Errorf("topicRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrTopicNotFound
	}
	return nil
}
