package service

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"shiksha/internal/domain"
	"shiksha/internal/port"
)

// CreateTopicInput is the DTO for creating a topic.
type CreateTopicInput struct {
	SubjectID     uuid.UUID             `json:"subject_id" binding:"required"`
	Name          string                `json:"name" binding:"required"`
	Description   string                `json:"description"`
	DocumentLinks []domain.DocumentLink `json:"document_links"`
	ExtractedText string                `json:"extracted_text"`
	PartNumber    int                   `json:"part_number"`
}

// UpdateTopicInput is the DTO for partially updating a topic. Nil fields are
// left untouched.
type UpdateTopicInput struct {
	Name          *string                `json:"name"`
	Description   *string                `json:"description"`
	DocumentLinks *[]domain.DocumentLink `json:"document_links"`
	ExtractedText *string                `json:"extracted_text"`
	PartNumber    *int                   `json:"part_number"`
}

// RetryPolicy controls the read-after-write retry on subject topic listing.
// A freshly confirmed chapter plan can race the list that follows it; the
// caller decides how hard to mask that lag rather than relying on a built-in
// attempt count.
type RetryPolicy struct {
	Attempts  int           // total attempts, minimum 1
	BaseDelay time.Duration // delay before attempt n is BaseDelay * n
}

// ListTopicsOptions controls ListBySubject behavior.
type ListTopicsOptions struct {
	Retry      RetryPolicy
	SortByName bool // alphabetical by name instead of part order
}

// TopicService defines the topic management contract.
type TopicService interface {
	Create(ctx context.Context, schoolID, userID uuid.UUID, role domain.UserRole, input CreateTopicInput) (*domain.Topic, error)
	GetByID(ctx context.Context, schoolID, topicID uuid.UUID) (*domain.Topic, error)
	ListBySubject(ctx context.Context, schoolID, subjectID uuid.UUID, opts ListTopicsOptions) ([]domain.Topic, error)
	Update(ctx context.Context, schoolID, topicID uuid.UUID, role domain.UserRole, input UpdateTopicInput) (*domain.Topic, error)
	AddDocumentLink(ctx context.Context, schoolID, topicID uuid.UUID, role domain.UserRole, link domain.DocumentLink) (*domain.Topic, error)
	RemoveDocumentLink(ctx context.Context, schoolID, topicID uuid.UUID, role domain.UserRole, url string) (*domain.Topic, error)
	Delete(ctx context.Context, schoolID, topicID uuid.UUID, role domain.UserRole) error
}

type topicService struct {
	topicRepo   port.TopicRepository
	subjectRepo port.SubjectRepository
}

// NewTopicService creates a new TopicService implementation.
func NewTopicService(topicRepo port.TopicRepository, subjectRepo port.SubjectRepository) TopicService {
	return &topicService{topicRepo: topicRepo, subjectRepo: subjectRepo}
}

func (s *topicService) Create(ctx context.Context, schoolID, userID uuid.UUID, role domain.UserRole, input CreateTopicInput) (*domain.Topic, error) {
	if !role.CanManageContent() {
		return nil, domain.ErrForbidden
	}
	if _, err := s.subjectRepo.GetByID(ctx, schoolID, input.SubjectID); err != nil {
		return nil, err
	}

	topic := &domain.Topic{
		SchoolID:      schoolID,
		SubjectID:     input.SubjectID,
		Name:          input.Name,
		Description:   input.Description,
		DocumentLinks: input.DocumentLinks,
		ExtractedText: input.ExtractedText,
		PartNumber:    input.PartNumber,
		CreatedBy:     userID,
	}
	if err := s.topicRepo.Create(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *topicService) GetByID(ctx context.Context, schoolID, topicID uuid.UUID) (*domain.Topic, error) {
	return s.topicRepo.GetByID(ctx, schoolID, topicID)
}

// ListBySubject lists topics, retrying per the caller's policy while the
// result is empty. An empty subject simply exhausts the attempts and returns
// an empty list; only repository errors abort early.
func (s *topicService) ListBySubject(ctx context.Context, schoolID, subjectID uuid.UUID, opts ListTopicsOptions) ([]domain.Topic, error) {
	attempts := opts.Retry.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var topics []domain.Topic
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		topics, err = s.topicRepo.ListBySubject(ctx, schoolID, subjectID)
		if err != nil {
			return nil, err
		}
		if len(topics) > 0 {
			break
		}
		if attempt == attempts {
			break
		}

		delay := opts.Retry.BaseDelay * time.Duration(attempt)
		log.Printf("topicService.ListBySubject: empty result for subject %s, retrying in %s (attempt %d/%d)",
			subjectID, delay, attempt, attempts)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	if opts.SortByName {
		sort.Slice(topics, func(i, j int) bool { return topics[i].Name < topics[j].Name })
	}
	return topics, nil
}

func (s *topicService) Update(ctx context.Context, schoolID, topicID uuid.UUID, role domain.UserRole, input UpdateTopicInput) (*domain.Topic, error) {
	if !role.CanManageContent() {
		return nil, domain.ErrForbidden
	}

	topic, err := s.topicRepo.GetByID(ctx, schoolID, topicID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		topic.Name = *input.Name
	}
	if input.Description != nil {
		topic.Description = *input.Description
	}
	if input.DocumentLinks != nil {
		topic.DocumentLinks = *input.DocumentLinks
	}
	if input.ExtractedText != nil {
		topic.ExtractedText = *input.ExtractedText
	}
	if input.PartNumber != nil {
		topic.PartNumber = *input.PartNumber
	}

	if err := s.topicRepo.Update(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *topicService) AddDocumentLink(ctx context.Context, schoolID, topicID uuid.UUID, role domain.UserRole, link domain.DocumentLink) (*domain.Topic, error) {
	if !role.CanManageContent() {
		return nil, domain.ErrForbidden
	}

	topic, err := s.topicRepo.GetByID(ctx, schoolID, topicID)
	if err != nil {
		return nil, err
	}

	for _, existing := range topic.DocumentLinks {
		if existing.URL == link.URL {
			return topic, nil
		}
	}
	topic.DocumentLinks = append(topic.DocumentLinks, link)

	if err := s.topicRepo.Update(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *topicService) RemoveDocumentLink(ctx context.Context, schoolID, topicID uuid.UUID, role domain.UserRole, url string) (*domain.Topic, error) {
	if !role.CanManageContent() {
		return nil, domain.ErrForbidden
	}

	topic, err := s.topicRepo.GetByID(ctx, schoolID, topicID)
	if err != nil {
		return nil, err
	}

	kept := topic.DocumentLinks[:0]
	for _, existing := range topic.DocumentLinks {
		if existing.URL != url {
			kept = append(kept, existing)
		}
	}
	topic.DocumentLinks = kept

	if err := s.topicRepo.Update(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *topicService) Delete(ctx context.Context, schoolID, topicID uuid.UUID, role domain.UserRole) error {
	if !role.CanManageContent() {
		return domain.ErrForbidden
	}
	return s.topicRepo.Delete(ctx, schoolID, topicID)
}
