package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shiksha/internal/domain"
	"shiksha/internal/service"
	"shiksha/mocks"
)

func TestTopicService_Create_ForbiddenForStudents(t *testing.T) {
	topicRepo := new(mocks.MockTopicRepo)
	subjectRepo := new(mocks.MockSubjectRepo)
	svc := service.NewTopicService(topicRepo, subjectRepo)

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), domain.RoleStudent, service.CreateTopicInput{
		SubjectID: uuid.New(),
		Name:      "Fractions",
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	topicRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTopicService_Update_PartialFields(t *testing.T) {
	topicRepo := new(mocks.MockTopicRepo)
	subjectRepo := new(mocks.MockSubjectRepo)
	svc := service.NewTopicService(topicRepo, subjectRepo)

	schoolID := uuid.New()
	topicID := uuid.New()
	existing := &domain.Topic{
		ID:          topicID,
		SchoolID:    schoolID,
		Name:        "Old name",
		Description: "Keep me",
		PartNumber:  2,
	}

	topicRepo.On("GetByID", mock.Anything, schoolID, topicID).Return(existing, nil)
	topicRepo.On("Update", mock.Anything, mock.MatchedBy(func(tp *domain.Topic) bool {
		return tp.Name == "New name" && tp.Description == "Keep me" && tp.PartNumber == 2
	})).Return(nil)

	name := "New name"
	updated, err := svc.Update(context.Background(), schoolID, topicID, domain.RoleTeacher, service.UpdateTopicInput{
		Name: &name,
	})

	require.NoError(t, err)
	assert.Equal(t, "New name", updated.Name)
	assert.Equal(t, "Keep me", updated.Description)
	topicRepo.AssertExpectations(t)
}

func TestTopicService_ListBySubject_RetriesWhileEmpty(t *testing.T) {
	topicRepo := new(mocks.MockTopicRepo)
	subjectRepo := new(mocks.MockSubjectRepo)
	svc := service.NewTopicService(topicRepo, subjectRepo)

	schoolID := uuid.New()
	subjectID := uuid.New()
	topics := []domain.Topic{{ID: uuid.New(), Name: "Appears late"}}

	topicRepo.On("ListBySubject", mock.Anything, schoolID, subjectID).Return([]domain.Topic{}, nil).Twice()
	topicRepo.On("ListBySubject", mock.Anything, schoolID, subjectID).Return(topics, nil).Once()

	got, err := svc.ListBySubject(context.Background(), schoolID, subjectID, service.ListTopicsOptions{
		Retry: service.RetryPolicy{Attempts: 3, BaseDelay: time.Millisecond},
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Appears late", got[0].Name)
	topicRepo.AssertExpectations(t)
}

func TestTopicService_ListBySubject_ExhaustsAttemptsAndReturnsEmpty(t *testing.T) {
	topicRepo := new(mocks.MockTopicRepo)
	subjectRepo := new(mocks.MockSubjectRepo)
	svc := service.NewTopicService(topicRepo, subjectRepo)

	schoolID := uuid.New()
	subjectID := uuid.New()
	topicRepo.On("ListBySubject", mock.Anything, schoolID, subjectID).Return([]domain.Topic{}, nil).Times(3)

	got, err := svc.ListBySubject(context.Background(), schoolID, subjectID, service.ListTopicsOptions{
		Retry: service.RetryPolicy{Attempts: 3, BaseDelay: time.Millisecond},
	})

	require.NoError(t, err)
	assert.Empty(t, got)
	topicRepo.AssertExpectations(t)
}

func TestTopicService_ListBySubject_DefaultPolicyIsSingleAttempt(t *testing.T) {
	topicRepo := new(mocks.MockTopicRepo)
	subjectRepo := new(mocks.MockSubjectRepo)
	svc := service.NewTopicService(topicRepo, subjectRepo)

	schoolID := uuid.New()
	subjectID := uuid.New()
	topicRepo.On("ListBySubject", mock.Anything, schoolID, subjectID).Return([]domain.Topic{}, nil).Once()

	got, err := svc.ListBySubject(context.Background(), schoolID, subjectID, service.ListTopicsOptions{})

	require.NoError(t, err)
	assert.Empty(t, got)
	topicRepo.AssertExpectations(t)
}

func TestTopicService_ListBySubject_SortByName(t *testing.T) {
	topicRepo := new(mocks.MockTopicRepo)
	subjectRepo := new(mocks.MockSubjectRepo)
	svc := service.NewTopicService(topicRepo, subjectRepo)

	schoolID := uuid.New()
	subjectID := uuid.New()
	topicRepo.On("ListBySubject", mock.Anything, schoolID, subjectID).Return([]domain.Topic{
		{Name: "Photosynthesis", PartNumber: 1},
		{Name: "Carbon cycle", PartNumber: 2},
	}, nil)

	got, err := svc.ListBySubject(context.Background(), schoolID, subjectID, service.ListTopicsOptions{SortByName: true})

	require.NoError(t, err)
	assert.Equal(t, "Carbon cycle", got[0].Name)
	assert.Equal(t, "Photosynthesis", got[1].Name)
}

func TestTopicService_DocumentLinks_AddAndRemove(t *testing.T) {
	topicRepo := new(mocks.MockTopicRepo)
	subjectRepo := new(mocks.MockSubjectRepo)
	svc := service.NewTopicService(topicRepo, subjectRepo)

	schoolID := uuid.New()
	topicID := uuid.New()
	topic := &domain.Topic{
		ID:       topicID,
		SchoolID: schoolID,
		DocumentLinks: domain.DocumentLinks{
			{Title: "NCERT chapter", URL: "https://example.test/ch1.pdf"},
		},
	}

	topicRepo.On("GetByID", mock.Anything, schoolID, topicID).Return(topic, nil)
	topicRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.AddDocumentLink(context.Background(), schoolID, topicID, domain.RoleTeacher,
		domain.DocumentLink{Title: "Video", URL: "https://example.test/video"})
	require.NoError(t, err)
	assert.Len(t, updated.DocumentLinks, 2)

	// Adding the same URL again is a no-op.
	updated, err = svc.AddDocumentLink(context.Background(), schoolID, topicID, domain.RoleTeacher,
		domain.DocumentLink{Title: "Video again", URL: "https://example.test/video"})
	require.NoError(t, err)
	assert.Len(t, updated.DocumentLinks, 2)

	updated, err = svc.RemoveDocumentLink(context.Background(), schoolID, topicID, domain.RoleTeacher,
		"https://example.test/ch1.pdf")
	require.NoError(t, err)
	require.Len(t, updated.DocumentLinks, 1)
	assert.Equal(t, "https://example.test/video", updated.DocumentLinks[0].URL)
}
