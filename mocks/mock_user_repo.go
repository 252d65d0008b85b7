package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"shiksha/internal/domain"
)

// MockUserRepo is a mock implementation of port.UserRepository.
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, schoolID, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, schoolID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, schoolID uuid.UUID, email string) (*domain.User, error) {
	args := m.Called(ctx, schoolID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) ListBySchool(ctx context.Context, schoolID uuid.UUID, offset, limit int) ([]domain.User, int, error) {
	args := m.Called(ctx, schoolID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Int(1), args.Error(2)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) UpdatePasswordHash(ctx context.Context, schoolID, userID uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, schoolID, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepo) Delete(ctx context.Context, schoolID, userID uuid.UUID) error {
	args := m.Called(ctx, schoolID, userID)
	return args.Error(0)
}
