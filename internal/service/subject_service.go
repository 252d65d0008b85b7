package service

import (
	"context"

	"github.com/google/uuid"

	"shiksha/internal/domain"
	"shiksha/internal/port"
)

// CreateSubjectInput is the DTO for creating a subject.
type CreateSubjectInput struct {
	ClassID uuid.UUID `json:"class_id" binding:"required"`
	Name    string    `json:"name" binding:"required"`
}

// UpdateSubjectInput is the DTO for updating a subject.
type UpdateSubjectInput struct {
	Name *string `json:"name"`
}

// SubjectService defines the subject management contract.
type SubjectService interface {
	Create(ctx context.Context, schoolID uuid.UUID, role domain.UserRole, input CreateSubjectInput) (*domain.Subject, error)
	GetByID(ctx context.Context, schoolID, subjectID uuid.UUID) (*domain.Subject, error)
	ListByClass(ctx context.Context, schoolID, classID uuid.UUID) ([]domain.Subject, error)
	Update(ctx context.Context, schoolID, subjectID uuid.UUID, role domain.UserRole, input UpdateSubjectInput) (*domain.Subject, error)
	Delete(ctx context.Context, schoolID, subjectID uuid.UUID, role domain.UserRole) error
}

type subjectService struct {
	subjectRepo port.SubjectRepository
	classRepo   port.ClassRepository
}

// NewSubjectService creates a new SubjectService implementation.
func NewSubjectService(subjectRepo port.SubjectRepository, classRepo port.ClassRepository) SubjectService {
	return &subjectService{subjectRepo: subjectRepo, classRepo: classRepo}
}

func (s *subjectService) Create(ctx context.Context, schoolID uuid.UUID, role domain.UserRole, input CreateSubjectInput) (*domain.Subject, error) {
	if !role.CanManageContent() {
		return nil, domain.ErrForbidden
	}

	// The class must exist in the same school.
	if _, err := s.classRepo.GetByID(ctx, schoolID, input.ClassID); err != nil {
		return nil, err
	}

	subject := &domain.Subject{
		SchoolID: schoolID,
		ClassID:  input.ClassID,
		Name:     input.Name,
	}
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *subjectService) GetByID(ctx context.Context, schoolID, subjectID uuid.UUID) (*domain.Subject, error) {
	return s.subjectRepo.GetByID(ctx, schoolID, subjectID)
}

func (s *subjectService) ListByClass(ctx context.Context, schoolID, classID uuid.UUID) ([]domain.Subject, error) {
	return s.subjectRepo.ListByClass(ctx, schoolID, classID)
}

func (s *subjectService) Update(ctx context.Context, schoolID, subjectID uuid.UUID, role domain.UserRole, input UpdateSubjectInput) (*domain.Subject, error) {
	if !role.CanManageContent() {
		return nil, domain.ErrForbidden
	}

	subject, err := s.subjectRepo.GetByID(ctx, schoolID, subjectID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		subject.Name = *input.Name
	}

	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *subjectService) Delete(ctx context.Context, schoolID, subjectID uuid.UUID, role domain.UserRole) error {
	if !role.CanManageContent() {
		return domain.ErrForbidden
	}
	return s.subjectRepo.Delete(ctx, schoolID, subjectID)
}
