package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"shiksha/internal/domain"
	"shiksha/internal/port"
)

// CreateSchoolInput is the DTO for registering a school with its first admin.
type CreateSchoolInput struct {
	Name          string `json:"name" binding:"required"`
	Slug          string `json:"slug" binding:"required"`
	Board         string `json:"board"`
	AdminEmail    string `json:"admin_email" binding:"required,email"`
	AdminPassword string `json:"admin_password" binding:"required,min=8"`
	AdminName     string `json:"admin_name" binding:"required"`
}

// UpdateSchoolInput is the DTO for updating a school.
type UpdateSchoolInput struct {
	Name     *string `json:"name"`
	Slug     *string `json:"slug"`
	Board    *string `json:"board"`
	IsActive *bool   `json:"is_active"`
}

// SchoolService defines the school management contract.
type SchoolService interface {
	Create(ctx context.Context, input CreateSchoolInput) (*domain.School, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.School, error)
	List(ctx context.Context, offset, limit int) ([]domain.School, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateSchoolInput) (*domain.School, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type schoolService struct {
	schoolRepo  port.SchoolRepository
	userRepo    port.UserRepository
	emailSender port.EmailSender
}

// NewSchoolService creates a new SchoolService implementation.
func NewSchoolService(schoolRepo port.SchoolRepository, userRepo port.UserRepository, emailSender port.EmailSender) SchoolService {
	return &schoolService{schoolRepo: schoolRepo, userRepo: userRepo, emailSender: emailSender}
}

// Create registers the school and its first admin account together.
func (s *schoolService) Create(ctx context.Context, input CreateSchoolInput) (*domain.School, error) {
	school := &domain.School{
		Name:     input.Name,
		Slug:     input.Slug,
		Board:    input.Board,
		IsActive: true,
	}
	if err := s.schoolRepo.Create(ctx, school); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.AdminPassword), 12)
	if err != nil {
		return nil, fmt.Errorf("hashing admin password: %w", err)
	}

	admin := &domain.User{
		SchoolID:     school.ID,
		Email:        input.AdminEmail,
		PasswordHash: string(hash),
		FullName:     input.AdminName,
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		// Roll the school back so the slug is not left squatting without an admin.
		_ = s.schoolRepo.Delete(ctx, school.ID)
		return nil, err
	}

	// Best effort. Registration stands even if the welcome email bounces.
	if err := s.emailSender.SendWelcomeEmail(ctx, admin.Email, admin.FullName, school.Name); err != nil {
		log.Printf("schoolService.Create: welcome email to %s failed: %v", admin.Email, err)
	}

	return school, nil
}

func (s *schoolService) GetByID(ctx context.Context, id uuid.UUID) (*domain.School, error) {
	return s.schoolRepo.GetByID(ctx, id)
}

func (s *schoolService) List(ctx context.Context, offset, limit int) ([]domain.School, int, error) {
	return s.schoolRepo.List(ctx, offset, limit)
}

func (s *schoolService) Update(ctx context.Context, id uuid.UUID, input UpdateSchoolInput) (*domain.School, error) {
	school, err := s.schoolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		school.Name = *input.Name
	}
	if input.Slug != nil {
		school.Slug = *input.Slug
	}
	if input.Board != nil {
		school.Board = *input.Board
	}
	if input.IsActive != nil {
		school.IsActive = *input.IsActive
	}

	if err := s.schoolRepo.Update(ctx, school); err != nil {
		return nil, err
	}
	return school, nil
}

func (s *schoolService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.schoolRepo.Delete(ctx, id)
}
