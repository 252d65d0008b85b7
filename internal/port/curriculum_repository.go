package port

import (
	"context"

	"github.com/google/uuid"

	"shiksha/internal/domain"
)

// ClassRepository defines the contract for class persistence.
type ClassRepository interface {
	Create(ctx context.Context, class *domain.Class) error
	GetByID(ctx context.Context, schoolID, classID uuid.UUID) (*domain.Class, error)
	ListBySchool(ctx context.Context, schoolID uuid.UUID, offset, limit int) ([]domain.Class, int, error)
	Update(ctx context.Context, class *domain.Class) error
	Delete(ctx context.Context, schoolID, classID uuid.UUID) error
}

// SubjectRepository defines the contract for subject persistence.
type SubjectRepository interface {
	Create(ctx context.Context, subject *domain.Subject) error
	GetByID(ctx context.Context, schoolID, subjectID uuid.UUID) (*domain.Subject, error)
	ListByClass(ctx context.Context, schoolID, classID uuid.UUID) ([]domain.Subject, error)
	Update(ctx context.Context, subject *domain.Subject) error
	Delete(ctx context.Context, schoolID, subjectID uuid.UUID) error
}

// TopicRepository defines the contract for topic persistence.
type TopicRepository interface {
	Create(ctx context.Context, topic *domain.Topic) error
	CreateBatch(ctx context.Context, topics []domain.Topic) error
	GetByID(ctx context.Context, schoolID, topicID uuid.UUID) (*domain.Topic, error)
	ListBySubject(ctx context.Context, schoolID, subjectID uuid.UUID) ([]domain.Topic, error)
	Update(ctx context.Context, topic *domain.Topic) error
	UpdateExtractedText(ctx context.Context, schoolID, topicID uuid.UUID, text string) error
	Delete(ctx context.Context, schoolID, topicID uuid.UUID) error
}

// GeneratedContentRepository defines the contract for generated content persistence.
type GeneratedContentRepository interface {
	Create(ctx context.Context, content *domain.GeneratedContent) error
	GetByID(ctx context.Context, schoolID, contentID uuid.UUID) (*domain.GeneratedContent, error)
	ListByTopic(ctx context.Context, schoolID, topicID uuid.UUID) ([]domain.GeneratedContent, error)
	ListByTopicAndType(ctx context.Context, schoolID, topicID uuid.UUID, contentType domain.ContentType) ([]domain.GeneratedContent, error)
	Delete(ctx context.Context, schoolID, contentID uuid.UUID) error
}
