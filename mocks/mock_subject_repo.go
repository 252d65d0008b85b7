package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"shiksha/internal/domain"
)

// MockSubjectRepo is a mock implementation of port.SubjectRepository.
type MockSubjectRepo struct {
	mock.Mock
}

func (m *MockSubjectRepo) Create(ctx context.Context, subject *domain.Subject) error {
	args := m.Called(ctx, subject)
	return args.Error(0)
}

func (m *MockSubjectRepo) GetByID(ctx context.Context, schoolID, subjectID uuid.UUID) (*domain.Subject, error) {
	args := m.Called(ctx, schoolID, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subject), args.Error(1)
}

func (m *MockSubjectRepo) ListByClass(ctx context.Context, schoolID, classID uuid.UUID) ([]domain.Subject, error) {
	args := m.Called(ctx, schoolID, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subject), args.Error(1)
}

func (m *MockSubjectRepo) Update(ctx context.Context, subject *domain.Subject) error {
	args := m.Called(ctx, subject)
	return args.Error(0)
}

func (m *MockSubjectRepo) Delete(ctx context.Context, schoolID, subjectID uuid.UUID) error {
	args := m.Called(ctx, schoolID, subjectID)
	return args.Error(0)
}
