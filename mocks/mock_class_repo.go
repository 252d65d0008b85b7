package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"shiksha/internal/domain"
)

// MockClassRepo is a mock implementation of port.ClassRepository.
type MockClassRepo struct {
	mock.Mock
}

func (m *MockClassRepo) Create(ctx context.Context, class *domain.Class) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

func (m *MockClassRepo) GetByID(ctx context.Context, schoolID, classID uuid.UUID) (*domain.Class, error) {
	args := m.Called(ctx, schoolID, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Class), args.Error(1)
}

func (m *MockClassRepo) ListBySchool(ctx context.Context, schoolID uuid.UUID, offset, limit int) ([]domain.Class, int, error) {
	args := m.Called(ctx, schoolID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Class), args.Int(1), args.Error(2)
}

func (m *MockClassRepo) Update(ctx context.Context, class *domain.Class) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

func (m *MockClassRepo) Delete(ctx context.Context, schoolID, classID uuid.UUID) error {
	args := m.Called(ctx, schoolID, classID)
	return args.Error(0)
}
