package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"shiksha/internal/domain"
)

// MockGeneratedContentRepo is a mock implementation of port.GeneratedContentRepository.
type MockGeneratedContentRepo struct {
	mock.Mock
}

func (m *MockGeneratedContentRepo) Create(ctx context.Context, content *domain.GeneratedContent) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

func (m *MockGeneratedContentRepo) GetByID(ctx context.Context, schoolID, contentID uuid.UUID) (*domain.GeneratedContent, error) {
	args := m.Called(ctx, schoolID, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedContent), args.Error(1)
}

func (m *MockGeneratedContentRepo) ListByTopic(ctx context.Context, schoolID, topicID uuid.UUID) ([]domain.GeneratedContent, error) {
	args := m.Called(ctx, schoolID, topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneratedContent), args.Error(1)
}

func (m *MockGeneratedContentRepo) ListByTopicAndType(ctx context.Context, schoolID, topicID uuid.UUID, contentType domain.ContentType) ([]domain.GeneratedContent, error) {
	args := m.Called(ctx, schoolID, topicID, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneratedContent), args.Error(1)
}

func (m *MockGeneratedContentRepo) Delete(ctx context.Context, schoolID, contentID uuid.UUID) error {
	args := m.Called(ctx, schoolID, contentID)
	return args.Error(0)
}
