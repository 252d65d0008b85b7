package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shiksha/internal/config"
	"shiksha/internal/domain"
	"shiksha/internal/service"
	"shiksha/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-key-for-unit-tests",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 168 * time.Hour,
		Issuer:             "shiksha-test",
	}
}

func hashPassword(password string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), 12)
	return string(hash)
}

func activeSchool(id uuid.UUID) *domain.School {
	return &domain.School{ID: id, Name: "Green Valley", Slug: "green-valley", IsActive: true}
}

func TestAuthService_Login_Success(t *testing.T) {
	schoolRepo := new(mocks.MockSchoolRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, schoolRepo, testJWTConfig())

	schoolID := uuid.New()
	user := &domain.User{
		ID:           uuid.New(),
		SchoolID:     schoolID,
		Email:        "teacher@school.test",
		PasswordHash: hashPassword("password123"),
		FullName:     "Asha Rao",
		Role:         domain.RoleTeacher,
		IsActive:     true,
	}

	schoolRepo.On("GetBySlug", mock.Anything, "green-valley").Return(activeSchool(schoolID), nil)
	userRepo.On("GetByEmail", mock.Anything, schoolID, "teacher@school.test").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		SchoolSlug: "green-valley",
		Email:      "teacher@school.test",
		Password:   "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, schoolID, claims.SchoolID)
	assert.Equal(t, domain.RoleTeacher, claims.Role)

	schoolRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	schoolRepo := new(mocks.MockSchoolRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, schoolRepo, testJWTConfig())

	schoolID := uuid.New()
	user := &domain.User{
		ID:           uuid.New(),
		SchoolID:     schoolID,
		Email:        "teacher@school.test",
		PasswordHash: hashPassword("password123"),
		Role:         domain.RoleTeacher,
		IsActive:     true,
	}

	schoolRepo.On("GetBySlug", mock.Anything, "green-valley").Return(activeSchool(schoolID), nil)
	userRepo.On("GetByEmail", mock.Anything, schoolID, "teacher@school.test").Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		SchoolSlug: "green-valley",
		Email:      "teacher@school.test",
		Password:   "wrong-password",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownSchoolHidesExistence(t *testing.T) {
	schoolRepo := new(mocks.MockSchoolRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, schoolRepo, testJWTConfig())

	schoolRepo.On("GetBySlug", mock.Anything, "no-such").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), service.LoginInput{
		SchoolSlug: "no-such",
		Email:      "x@y.test",
		Password:   "password123",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveSchool(t *testing.T) {
	schoolRepo := new(mocks.MockSchoolRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, schoolRepo, testJWTConfig())

	school := activeSchool(uuid.New())
	school.IsActive = false
	schoolRepo.On("GetBySlug", mock.Anything, "green-valley").Return(school, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		SchoolSlug: "green-valley",
		Email:      "teacher@school.test",
		Password:   "password123",
	})

	assert.ErrorIs(t, err, domain.ErrSchoolInactive)
}

func TestAuthService_RefreshToken_RoundTrip(t *testing.T) {
	schoolRepo := new(mocks.MockSchoolRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, schoolRepo, testJWTConfig())

	schoolID := uuid.New()
	user := &domain.User{
		ID:           uuid.New(),
		SchoolID:     schoolID,
		Email:        "teacher@school.test",
		PasswordHash: hashPassword("password123"),
		Role:         domain.RoleTeacher,
		IsActive:     true,
	}

	schoolRepo.On("GetBySlug", mock.Anything, "green-valley").Return(activeSchool(schoolID), nil)
	userRepo.On("GetByEmail", mock.Anything, schoolID, "teacher@school.test").Return(user, nil)
	userRepo.On("GetByID", mock.Anything, schoolID, user.ID).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		SchoolSlug: "green-valley",
		Email:      "teacher@school.test",
		Password:   "password123",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// An access token must not pass as a refresh token.
	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
