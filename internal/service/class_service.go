package service

import (
	"context"

	"github.com/google/uuid"

	"shiksha/internal/domain"
	"shiksha/internal/port"
)

// CreateClassInput is the DTO for creating a class.
type CreateClassInput struct {
	Name    string `json:"name" binding:"required"`
	Grade   int    `json:"grade" binding:"required,min=1,max=12"`
	Section string `json:"section"`
}

// UpdateClassInput is the DTO for updating a class.
type UpdateClassInput struct {
	Name    *string `json:"name"`
	Grade   *int    `json:"grade"`
	Section *string `json:"section"`
}

// ClassService defines the class management contract.
type ClassService interface {
	Create(ctx context.Context, schoolID, userID uuid.UUID, role domain.UserRole, input CreateClassInput) (*domain.Class, error)
	GetByID(ctx context.Context, schoolID, classID uuid.UUID) (*domain.Class, error)
	List(ctx context.Context, schoolID uuid.UUID, offset, limit int) ([]domain.Class, int, error)
	Update(ctx context.Context, schoolID, classID uuid.UUID, role domain.UserRole, input UpdateClassInput) (*domain.Class, error)
	Delete(ctx context.Context, schoolID, classID uuid.UUID, role domain.UserRole) error
}

type classService struct {
	repo port.ClassRepository
}

// NewClassService creates a new ClassService implementation.
func NewClassService(repo port.ClassRepository) ClassService {
	return &classService{repo: repo}
}

func (s *classService) Create(ctx context.Context, schoolID, userID uuid.UUID, role domain.UserRole, input CreateClassInput) (*domain.Class, error) {
	if !role.CanManageContent() {
		return nil, domain.ErrForbidden
	}

	class := &domain.Class{
		SchoolID:  schoolID,
		Name:      input.Name,
		Grade:     input.Grade,
		Section:   input.Section,
		CreatedBy: userID,
	}
	if err := s.repo.Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *classService) GetByID(ctx context.Context, schoolID, classID uuid.UUID) (*domain.Class, error) {
	return s.repo.GetByID(ctx, schoolID, classID)
}

func (s *classService) List(ctx context.Context, schoolID uuid.UUID, offset, limit int) ([]domain.Class, int, error) {
	return s.repo.ListBySchool(ctx, schoolID, offset, limit)
}

func (s *classService) Update(ctx context.Context, schoolID, classID uuid.UUID, role domain.UserRole, input UpdateClassInput) (*domain.Class, error) {
	if !role.CanManageContent() {
		return nil, domain.ErrForbidden
	}

	class, err := s.repo.GetByID(ctx, schoolID, classID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		class.Name = *input.Name
	}
	if input.Grade != nil {
		class.Grade = *input.Grade
	}
	if input.Section != nil {
		class.Section = *input.Section
	}

	if err := s.repo.Update(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *classService) Delete(ctx context.Context, schoolID, classID uuid.UUID, role domain.UserRole) error {
	if !role.CanManageContent() {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, schoolID, classID)
}
