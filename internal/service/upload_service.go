package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"shiksha/internal/config"
	"shiksha/internal/domain"
	"shiksha/internal/extract"
	"shiksha/internal/port"
)

// UploadTopicFileInput is the DTO for attaching a source PDF to a topic.
type UploadTopicFileInput struct {
	SchoolID    uuid.UUID
	TopicID     uuid.UUID
	UploadedBy  uuid.UUID
	Role        domain.UserRole
	FileName    string
	ContentType string
	Data        []byte
}

// UploadResult is the outcome of a single upload: stored metadata plus the
// extracted text now attached to the topic.
type UploadResult struct {
	File      *domain.FileMeta `json:"file"`
	Text      string           `json:"text"`
	PageCount int              `json:"page_count"`
}

// BatchFileInput is one file in a multi-file extraction request.
type BatchFileInput struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// BatchResult reports per-file outcomes and the combined text of the
// successful files in original order.
type BatchResult struct {
	Files        []extract.BatchFile `json:"files"`
	CombinedText string              `json:"combined_text"`
}

// UploadService defines the source document upload contract.
type UploadService interface {
	Upload(ctx context.Context, input UploadTopicFileInput) (*UploadResult, error)
	ExtractBatch(ctx context.Context, files []BatchFileInput, remove []string) (*BatchResult, error)
	ListByTopic(ctx context.Context, schoolID, topicID uuid.UUID) ([]domain.FileMeta, error)
	GetDownloadURL(ctx context.Context, schoolID, fileID uuid.UUID) (string, error)
	Delete(ctx context.Context, schoolID, fileID uuid.UUID, role domain.UserRole) error
}

type uploadService struct {
	fileRepo  port.FileMetaRepository
	topicRepo port.TopicRepository
	storage   port.ObjectStorage
	extractor *extract.Extractor
	cfg       *config.S3Config
}

// NewUploadService creates a new UploadService implementation.
func NewUploadService(
	fileRepo port.FileMetaRepository,
	topicRepo port.TopicRepository,
	storage port.ObjectStorage,
	extractor *extract.Extractor,
	cfg *config.S3Config,
) UploadService {
	return &uploadService{
		fileRepo:  fileRepo,
		topicRepo: topicRepo,
		storage:   storage,
		extractor: extractor,
		cfg:       cfg,
	}
}

// Upload validates the PDF, extracts its text, stores the original in S3 and
// appends the text to the topic. Extraction failures are recorded on the file
// metadata and returned; a file never lands as success with empty text.
func (s *uploadService) Upload(ctx context.Context, input UploadTopicFileInput) (*UploadResult, error) {
	if !input.Role.CanManageContent() {
		return nil, domain.ErrForbidden
	}

	topic, err := s.topicRepo.GetByID(ctx, input.SchoolID, input.TopicID)
	if err != nil {
		return nil, err
	}

	fileID := uuid.New()
	s3Key := fmt.Sprintf("schools/%s/topics/%s/%s", input.SchoolID, input.TopicID, fileID)
	meta := &domain.FileMeta{
		ID:           fileID,
		SchoolID:     input.SchoolID,
		TopicID:      input.TopicID,
		UploadedBy:   input.UploadedBy,
		FileName:     fileID.String() + ".pdf",
		OriginalName: input.FileName,
		FileSize:     int64(len(input.Data)),
		S3Bucket:     s.cfg.Bucket,
		S3Key:        s3Key,
		ContentType:  input.ContentType,
		Status:       domain.FileStatusProcessing,
	}

	res, extractErr := s.extractor.Extract(input.FileName, input.ContentType, input.Data)
	if extractErr != nil {
		// Validation errors (type, size) are rejected before anything is stored.
		log.Printf("uploadService.Upload: extraction failed for %q: %v", input.FileName, extractErr)
		return nil, extractErr
	}
	meta.PageCount = res.PageCount

	log.Printf("uploadService.Upload: storing %q (%d bytes, %d pages) for topic %s",
		input.FileName, len(input.Data), res.PageCount, input.TopicID)

	if err := s.fileRepo.Create(ctx, meta); err != nil {
		return nil, fmt.Errorf("creating file metadata: %w", err)
	}

	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Key:         s3Key,
		Body:        bytes.NewReader(input.Data),
		ContentType: input.ContentType,
		Size:        int64(len(input.Data)),
	}); err != nil {
		log.Printf("uploadService.Upload: S3 upload failed for file %s: %v", meta.ID, err)
		_ = s.fileRepo.UpdateStatus(ctx, meta.SchoolID, meta.ID, domain.FileStatusError)
		return nil, domain.ErrUploadFailed
	}

	text := res.Text
	if topic.ExtractedText != "" {
		text = topic.ExtractedText + "\n\n" + res.Text
	}
	if err := s.topicRepo.UpdateExtractedText(ctx, input.SchoolID, input.TopicID, text); err != nil {
		return nil, err
	}

	if err := s.fileRepo.UpdateStatus(ctx, meta.SchoolID, meta.ID, domain.FileStatusSuccess); err != nil {
		return nil, fmt.Errorf("updating file status: %w", err)
	}
	meta.Status = domain.FileStatusSuccess

	return &UploadResult{File: meta, Text: res.Text, PageCount: res.PageCount}, nil
}

// ExtractBatch processes the files strictly in order, drops the names listed
// in remove, and reports per-file outcomes plus the combined text. Nothing is
// persisted; the combined text feeds the chapter-planner flow.
func (s *uploadService) ExtractBatch(ctx context.Context, files []BatchFileInput, remove []string) (*BatchResult, error) {
	batch := s.extractor.NewBatch()
	for _, f := range files {
		entry := batch.Add(f.FileName, f.ContentType, f.Data)
		if entry.Status == domain.FileStatusError {
			log.Printf("uploadService.ExtractBatch: %q failed: %s", f.FileName, entry.Error)
		}
	}
	for _, name := range remove {
		batch.Remove(name)
	}

	return &BatchResult{
		Files:        batch.Files(),
		CombinedText: batch.CombinedText(),
	}, nil
}

func (s *uploadService) ListByTopic(ctx context.Context, schoolID, topicID uuid.UUID) ([]domain.FileMeta, error) {
	return s.fileRepo.ListByTopic(ctx, schoolID, topicID)
}

func (s *uploadService) GetDownloadURL(ctx context.Context, schoolID, fileID uuid.UUID) (string, error) {
	meta, err := s.fileRepo.GetByID(ctx, schoolID, fileID)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, meta.S3Key, s.cfg.PresignExpiry)
}

func (s *uploadService) Delete(ctx context.Context, schoolID, fileID uuid.UUID, role domain.UserRole) error {
	if !role.CanManageContent() {
		return domain.ErrForbidden
	}

	meta, err := s.fileRepo.GetByID(ctx, schoolID, fileID)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, meta.S3Key); err != nil {
		log.Printf("uploadService.Delete: failed to delete %s from storage: %v", meta.S3Key, err)
		return fmt.Errorf("deleting from storage: %w", err)
	}
	return s.fileRepo.Delete(ctx, schoolID, fileID)
}
