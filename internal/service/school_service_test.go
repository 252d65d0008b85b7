package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shiksha/internal/domain"
	"shiksha/internal/service"
	"shiksha/mocks"
)

type schoolFixture struct {
	schoolRepo *mocks.MockSchoolRepo
	userRepo   *mocks.MockUserRepo
	sender     *mocks.MockEmailSender
	svc        service.SchoolService
}

func newSchoolFixture() *schoolFixture {
	f := &schoolFixture{
		schoolRepo: new(mocks.MockSchoolRepo),
		userRepo:   new(mocks.MockUserRepo),
		sender:     new(mocks.MockEmailSender),
	}
	f.svc = service.NewSchoolService(f.schoolRepo, f.userRepo, f.sender)
	return f
}

func TestSchoolService_Create_RegistersAdminAndSendsWelcome(t *testing.T) {
	f := newSchoolFixture()
	schoolID := uuid.New()

	f.schoolRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.School) bool {
		return s.Slug == "green-valley" && s.IsActive
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.School).ID = schoolID
	}).Return(nil)

	var admin *domain.User
	f.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		admin = u
		return u.SchoolID == schoolID && u.Role == domain.RoleAdmin && u.IsActive
	})).Return(nil)

	f.sender.On("SendWelcomeEmail", mock.Anything, "principal@greenvalley.test", "Meera Nair", "Green Valley").
		Return(nil)

	school, err := f.svc.Create(context.Background(), service.CreateSchoolInput{
		Name:          "Green Valley",
		Slug:          "green-valley",
		Board:         "CBSE",
		AdminEmail:    "principal@greenvalley.test",
		AdminPassword: "securepassword123",
		AdminName:     "Meera Nair",
	})

	require.NoError(t, err)
	assert.Equal(t, schoolID, school.ID)
	require.NotNil(t, admin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("securepassword123")))
	f.sender.AssertExpectations(t)
}

func TestSchoolService_Create_WelcomeEmailFailureIsNotFatal(t *testing.T) {
	f := newSchoolFixture()

	f.schoolRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.sender.On("SendWelcomeEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	_, err := f.svc.Create(context.Background(), service.CreateSchoolInput{
		Name:          "Green Valley",
		Slug:          "green-valley",
		AdminEmail:    "principal@greenvalley.test",
		AdminPassword: "securepassword123",
		AdminName:     "Meera Nair",
	})

	assert.NoError(t, err)
}

func TestSchoolService_Create_RollsBackSchoolWhenAdminFails(t *testing.T) {
	f := newSchoolFixture()
	schoolID := uuid.New()

	f.schoolRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.School).ID = schoolID
	}).Return(nil)
	f.userRepo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)
	f.schoolRepo.On("Delete", mock.Anything, schoolID).Return(nil)

	_, err := f.svc.Create(context.Background(), service.CreateSchoolInput{
		Name:          "Green Valley",
		Slug:          "green-valley",
		AdminEmail:    "principal@greenvalley.test",
		AdminPassword: "securepassword123",
		AdminName:     "Meera Nair",
	})

	assert.Error(t, err)
	f.schoolRepo.AssertCalled(t, "Delete", mock.Anything, schoolID)
	f.sender.AssertNotCalled(t, "SendWelcomeEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSchoolService_Create_DuplicateSlug(t *testing.T) {
	f := newSchoolFixture()

	f.schoolRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateSchoolSlug)

	_, err := f.svc.Create(context.Background(), service.CreateSchoolInput{
		Name:          "Green Valley",
		Slug:          "green-valley",
		AdminEmail:    "principal@greenvalley.test",
		AdminPassword: "securepassword123",
		AdminName:     "Meera Nair",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateSchoolSlug)
	f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSchoolService_Update_AppliesPartialFields(t *testing.T) {
	f := newSchoolFixture()
	schoolID := uuid.New()
	existing := &domain.School{
		ID:       schoolID,
		Name:     "Green Valley",
		Slug:     "green-valley",
		Board:    "CBSE",
		IsActive: true,
	}

	f.schoolRepo.On("GetByID", mock.Anything, schoolID).Return(existing, nil)
	f.schoolRepo.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.School) bool {
		return s.Name == "Green Valley Senior Secondary" && s.Slug == "green-valley" && !s.IsActive
	})).Return(nil)

	name := "Green Valley Senior Secondary"
	inactive := false
	school, err := f.svc.Update(context.Background(), schoolID, service.UpdateSchoolInput{
		Name:     &name,
		IsActive: &inactive,
	})

	require.NoError(t, err)
	assert.Equal(t, "CBSE", school.Board)
	assert.False(t, school.IsActive)
}
