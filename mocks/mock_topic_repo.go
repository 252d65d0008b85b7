package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"shiksha/internal/domain"
)

// MockTopicRepo is a mock implementation of port.TopicRepository.
type MockTopicRepo struct {
	mock.Mock
}

func (m *MockTopicRepo) Create(ctx context.Context, topic *domain.Topic) error {
	args := m.Called(ctx, topic)
	return args.Error(0)
}

func (m *MockTopicRepo) CreateBatch(ctx context.Context, topics []domain.Topic) error {
	args := m.Called(ctx, topics)
	return args.Error(0)
}

func (m *MockTopicRepo) GetByID(ctx context.Context, schoolID, topicID uuid.UUID) (*domain.Topic, error) {
	args := m.Called(ctx, schoolID, topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Topic), args.Error(1)
}

func (m *MockTopicRepo) ListBySubject(ctx context.Context, schoolID, subjectID uuid.UUID) ([]domain.Topic, error) {
	args := m.Called(ctx, schoolID, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Topic), args.Error(1)
}

func (m *MockTopicRepo) Update(ctx context.Context, topic *domain.Topic) error {
	args := m.Called(ctx, topic)
	return args.Error(0)
}

func (m *MockTopicRepo) UpdateExtractedText(ctx context.Context, schoolID, topicID uuid.UUID, text string) error {
	args := m.Called(ctx, schoolID, topicID, text)
	return args.Error(0)
}

func (m *MockTopicRepo) Delete(ctx context.Context, schoolID, topicID uuid.UUID) error {
	args := m.Called(ctx, schoolID, topicID)
	return args.Error(0)
}
