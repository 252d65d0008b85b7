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

type fileMetaRepo struct {
	db *sqlx.DB
}

// NewFileMetaRepo creates a new PostgreSQL-backed FileMetaRepository.
func NewFileMetaRepo(db *sqlx.DB) port.FileMetaRepository {
	return &fileMetaRepo{db: db}
}

func (r *fileMetaRepo) Create(ctx context.Context, meta *domain.FileMeta) error {
	now := time.Now().UTC()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	query := `INSERT INTO file_metadata
		(id, school_id, topic_id, uploaded_by, file_name, original_name, file_size,
		 s3_bucket, s3_key, content_type, page_count, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		meta.ID, meta.SchoolID, meta.TopicID, meta.UploadedBy, meta.FileName,
		meta.OriginalName, meta.FileSize, meta.S3Bucket, meta.S3Key, meta.ContentType,
		meta.PageCount, meta.Status, meta.CreatedAt, meta.UpdatedAt)
	if err != nil {
		return fmt.Errorf("fileMetaRepo.Create: %w", err)
	}
	return nil
}

func (r *fileMetaRepo) GetByID(ctx context.Context, schoolID, fileID uuid.UUID) (*domain.FileMeta, error) {
	var meta domain.FileMeta
	err := r.db.GetContext(ctx, &meta,
		"SELECT * FROM file_metadata WHERE id = $1 AND school_id = $2", fileID, schoolID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fileMetaRepo.GetByID: %w", err)
	}
	return &meta, nil
}

func (r *fileMetaRepo) ListByTopic(ctx context.Context, schoolID, topicID uuid.UUID) ([]domain.FileMeta, error) {
	var files []domain.FileMeta
	err := r.db.SelectContext(ctx, &files,
		`SELECT * FROM file_metadata
		 WHERE school_id = $1 AND topic_id = $2 AND status != $3
		 ORDER BY created_at`, schoolID, topicID, domain.FileStatusDeleted)
	if err != nil {
		return nil, fmt.Errorf("fileMetaRepo.ListByTopic: %w", err)
	}
	return files, nil
}

func (r *fileMetaRepo) UpdateStatus(ctx context.Context, schoolID, fileID uuid.UUID, status domain.FileStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE file_metadata SET status = $1, updated_at = $2 WHERE id = $3 AND school_id = $4",
		status, time.Now().UTC(), fileID, schoolID)
	if err != nil {
		return fmt.Errorf("fileMetaRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *fileMetaRepo) Delete(ctx context.Context, schoolID, fileID uuid.UUID) error {
	return r.UpdateStatus(ctx, schoolID, fileID, domain.FileStatusDeleted)
}
