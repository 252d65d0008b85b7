package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"shiksha/internal/domain"
)

// MockSchoolRepo is a mock implementation of port.SchoolRepository.
type MockSchoolRepo struct {
	mock.Mock
}

func (m *MockSchoolRepo) Create(ctx context.Context, school *domain.School) error {
	args := m.Called(ctx, school)
	return args.Error(0)
}

func (m *MockSchoolRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.School, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.School), args.Error(1)
}

func (m *MockSchoolRepo) GetBySlug(ctx context.Context, slug string) (*domain.School, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.School), args.Error(1)
}

func (m *MockSchoolRepo) List(ctx context.Context, offset, limit int) ([]domain.School, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.School), args.Int(1), args.Error(2)
}

func (m *MockSchoolRepo) Update(ctx context.Context, school *domain.School) error {
	args := m.Called(ctx, school)
	return args.Error(0)
}

func (m *MockSchoolRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
