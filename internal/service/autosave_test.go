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

func waitForPending(t *testing.T, a *service.Autosaver, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for a.Pending() != want {
		if time.Now().After(deadline) {
			t.Fatalf("pending saves stuck at %d, want %d", a.Pending(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestAutosaver_BurstOfEditsProducesOneSave(t *testing.T) {
	topicRepo := new(mocks.MockTopicRepo)
	a := service.NewAutosaver(topicRepo, 30*time.Millisecond)

	topicID := uuid.New()
	saved := make(chan domain.Topic, 1)
	topicRepo.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved <- *args.Get(1).(*domain.Topic) }).
		Return(nil).
		Once()

	a.Schedule(domain.Topic{ID: topicID, Name: "draft one"})
	a.Schedule(domain.Topic{ID: topicID, Name: "draft two"})
	a.Schedule(domain.Topic{ID: topicID, Name: "final draft"})

	select {
	case got := <-saved:
		assert.Equal(t, "final draft", got.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("autosave never fired")
	}

	waitForPending(t, a, 0)
	topicRepo.AssertExpectations(t)
}

func TestAutosaver_IndependentTimersPerTopic(t *testing.T) {
	topicRepo := new(mocks.MockTopicRepo)
	a := service.NewAutosaver(topicRepo, 20*time.Millisecond)

	topicRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Twice()

	a.Schedule(domain.Topic{ID: uuid.New(), Name: "algebra"})
	a.Schedule(domain.Topic{ID: uuid.New(), Name: "geometry"})
	require.Equal(t, 2, a.Pending())

	waitForPending(t, a, 0)
	topicRepo.AssertExpectations(t)
}

func TestAutosaver_CancelDropsPendingSave(t *testing.T) {
	topicRepo := new(mocks.MockTopicRepo)
	a := service.NewAutosaver(topicRepo, 20*time.Millisecond)

	topicID := uuid.New()
	a.Schedule(domain.Topic{ID: topicID, Name: "never saved"})
	a.Cancel(topicID)

	time.Sleep(60 * time.Millisecond)
	topicRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Equal(t, 0, a.Pending())
}

func TestAutosaver_FlushPersistsBeforeTimerFires(t *testing.T) {
	topicRepo := new(mocks.MockTopicRepo)
	a := service.NewAutosaver(topicRepo, time.Hour)

	topicID := uuid.New()
	topicRepo.On("Update", mock.Anything, mock.MatchedBy(func(tp *domain.Topic) bool {
		return tp.ID == topicID && tp.Name == "unsaved edit"
	})).Return(nil).Once()

	a.Schedule(domain.Topic{ID: topicID, Name: "unsaved edit"})
	a.Flush(context.Background())

	assert.Equal(t, 0, a.Pending())
	topicRepo.AssertExpectations(t)
}

func TestAutosaver_CloseRejectsFurtherScheduling(t *testing.T) {
	topicRepo := new(mocks.MockTopicRepo)
	a := service.NewAutosaver(topicRepo, time.Hour)

	a.Close(context.Background())
	a.Schedule(domain.Topic{ID: uuid.New(), Name: "too late"})

	assert.Equal(t, 0, a.Pending())
	topicRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
