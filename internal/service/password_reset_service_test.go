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

	"shiksha/internal/domain"
	"shiksha/internal/service"
	"shiksha/mocks"
)

type resetFixture struct {
	schoolRepo *mocks.MockSchoolRepo
	userRepo   *mocks.MockUserRepo
	resetRepo  *mocks.MockPasswordResetRepo
	sender     *mocks.MockEmailSender
	svc        service.PasswordResetService
}

func newResetFixture() *resetFixture {
	f := &resetFixture{
		schoolRepo: new(mocks.MockSchoolRepo),
		userRepo:   new(mocks.MockUserRepo),
		resetRepo:  new(mocks.MockPasswordResetRepo),
		sender:     new(mocks.MockEmailSender),
	}
	f.svc = service.NewPasswordResetService(f.schoolRepo, f.userRepo, f.resetRepo, f.sender)
	return f
}

func TestPasswordResetService_ForgotPassword_SendsTokenEmail(t *testing.T) {
	f := newResetFixture()
	schoolID := uuid.New()
	user := &domain.User{
		ID:       uuid.New(),
		SchoolID: schoolID,
		Email:    "teacher@school.test",
		FullName: "Asha Rao",
		IsActive: true,
	}

	f.schoolRepo.On("GetBySlug", mock.Anything, "green-valley").Return(activeSchool(schoolID), nil)
	f.userRepo.On("GetByEmail", mock.Anything, schoolID, "teacher@school.test").Return(user, nil)

	var storedHash string
	f.resetRepo.On("Create", mock.Anything, mock.MatchedBy(func(tok *domain.PasswordResetToken) bool {
		storedHash = tok.TokenHash
		return tok.UserID == user.ID && tok.ExpiresAt.After(time.Now().UTC())
	})).Return(nil)

	var mailedToken string
	f.sender.On("SendPasswordResetEmail", mock.Anything, "teacher@school.test", "Asha Rao", mock.Anything).
		Run(func(args mock.Arguments) { mailedToken = args.String(3) }).
		Return(nil)

	err := f.svc.ForgotPassword(context.Background(), service.ForgotPasswordInput{
		SchoolSlug: "green-valley",
		Email:      "teacher@school.test",
	})

	require.NoError(t, err)
	require.NotEmpty(t, mailedToken)
	// The raw token goes to the user; only its digest is stored.
	assert.NotEqual(t, mailedToken, storedHash)
	f.resetRepo.AssertExpectations(t)
	f.sender.AssertExpectations(t)
}

func TestPasswordResetService_ForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	f := newResetFixture()
	schoolID := uuid.New()

	f.schoolRepo.On("GetBySlug", mock.Anything, "green-valley").Return(activeSchool(schoolID), nil)
	f.userRepo.On("GetByEmail", mock.Anything, schoolID, "nobody@school.test").Return(nil, domain.ErrNotFound)

	err := f.svc.ForgotPassword(context.Background(), service.ForgotPasswordInput{
		SchoolSlug: "green-valley",
		Email:      "nobody@school.test",
	})

	require.NoError(t, err)
	f.sender.AssertNotCalled(t, "SendPasswordResetEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPasswordResetService_ResetPassword_Success(t *testing.T) {
	f := newResetFixture()
	token := &domain.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		SchoolID:  uuid.New(),
		ExpiresAt: time.Now().UTC().Add(30 * time.Minute),
	}

	f.resetRepo.On("GetByTokenHash", mock.Anything, mock.Anything).Return(token, nil)
	f.resetRepo.On("MarkUsed", mock.Anything, token.ID, mock.Anything).Return(nil)

	var newHash string
	f.userRepo.On("UpdatePasswordHash", mock.Anything, token.SchoolID, token.UserID, mock.Anything).
		Run(func(args mock.Arguments) { newHash = args.String(3) }).
		Return(nil)

	err := f.svc.ResetPassword(context.Background(), service.ResetPasswordInput{
		Token:       "some-raw-token",
		NewPassword: "brand-new-password",
	})

	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("brand-new-password")))
	f.resetRepo.AssertExpectations(t)
}

func TestPasswordResetService_ResetPassword_ExpiredToken(t *testing.T) {
	f := newResetFixture()
	token := &domain.PasswordResetToken{
		ID:        uuid.New(),
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}
	f.resetRepo.On("GetByTokenHash", mock.Anything, mock.Anything).Return(token, nil)

	err := f.svc.ResetPassword(context.Background(), service.ResetPasswordInput{
		Token:       "stale-token",
		NewPassword: "brand-new-password",
	})

	assert.ErrorIs(t, err, domain.ErrPasswordResetTokenInvalid)
	f.userRepo.AssertNotCalled(t, "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPasswordResetService_ResetPassword_UsedToken(t *testing.T) {
	f := newResetFixture()
	used := time.Now().UTC().Add(-time.Hour)
	token := &domain.PasswordResetToken{
		ID:        uuid.New(),
		ExpiresAt: time.Now().UTC().Add(30 * time.Minute),
		UsedAt:    &used,
	}
	f.resetRepo.On("GetByTokenHash", mock.Anything, mock.Anything).Return(token, nil)

	err := f.svc.ResetPassword(context.Background(), service.ResetPasswordInput{
		Token:       "replayed-token",
		NewPassword: "brand-new-password",
	})

	assert.ErrorIs(t, err, domain.ErrPasswordResetTokenInvalid)
}
