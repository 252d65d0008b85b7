package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shiksha/internal/domain"
	"shiksha/internal/port"
	"shiksha/internal/section"
	"shiksha/internal/service"
	"shiksha/mocks"
)

type generationFixture struct {
	generator   *mocks.MockContentGenerator
	contentRepo *mocks.MockGeneratedContentRepo
	topicRepo   *mocks.MockTopicRepo
	subjectRepo *mocks.MockSubjectRepo
	classRepo   *mocks.MockClassRepo
	svc         service.GenerationService

	schoolID uuid.UUID
	userID   uuid.UUID
}

func newGenerationFixture() *generationFixture {
	f := &generationFixture{
		generator:   new(mocks.MockContentGenerator),
		contentRepo: new(mocks.MockGeneratedContentRepo),
		topicRepo:   new(mocks.MockTopicRepo),
		subjectRepo: new(mocks.MockSubjectRepo),
		classRepo:   new(mocks.MockClassRepo),
		schoolID:    uuid.New(),
		userID:      uuid.New(),
	}
	f.svc = service.NewGenerationService(f.generator, f.contentRepo, f.topicRepo, f.subjectRepo, f.classRepo)
	return f
}

func (f *generationFixture) stubTopic(topicID uuid.UUID) {
	topic := &domain.Topic{
		ID:            topicID,
		SchoolID:      f.schoolID,
		SubjectID:     uuid.New(),
		Name:          "The water cycle",
		ExtractedText: "Evaporation, condensation, precipitation.",
	}
	f.topicRepo.On("GetByID", mock.Anything, f.schoolID, topicID).Return(topic, nil)
	f.subjectRepo.On("GetByID", mock.Anything, f.schoolID, topic.SubjectID).Return(nil, domain.ErrNotFound)
}

func TestGenerationService_Generate_AssessmentPersistsAndParses(t *testing.T) {
	f := newGenerationFixture()
	topicID := uuid.New()
	f.stubTopic(topicID)

	raw := `{"mcqs": [{"question": "What drives evaporation?", "options": ["Sun", "Wind", "Moon", "Tides"], "answer": "A", "explanation": "Solar heating."}]}`
	f.generator.On("Generate", mock.Anything, mock.MatchedBy(func(in port.GenerateInput) bool {
		return in.ResponseFormat == "application/json" && in.Prompt != ""
	})).Return(&port.GenerateOutput{Text: raw, ModelUsed: "gemini-2.0-flash", PromptUsed: "p"}, nil)
	f.contentRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.GeneratedContent) bool {
		return c.ContentType == domain.ContentAssessment && c.RawResponse == raw && c.SchoolID == f.schoolID
	})).Return(nil)

	view, err := f.svc.Generate(context.Background(), f.schoolID, f.userID, domain.RoleTeacher, topicID, domain.ContentAssessment)

	require.NoError(t, err)
	require.NotNil(t, view.Sections)
	assert.Equal(t, section.ModeStructured, view.Sections.Mode)
	require.Len(t, view.Sections.Sections, 1)
	assert.Equal(t, "Multiple Choice Questions", view.Sections.Sections[0].Title)
	f.contentRepo.AssertExpectations(t)
}

func TestGenerationService_Generate_ForbiddenForParents(t *testing.T) {
	f := newGenerationFixture()

	_, err := f.svc.Generate(context.Background(), f.schoolID, f.userID, domain.RoleParent, uuid.New(), domain.ContentSummary)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	f.generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestGenerationService_Generate_ProviderErrorWrapped(t *testing.T) {
	f := newGenerationFixture()
	topicID := uuid.New()
	f.stubTopic(topicID)

	f.generator.On("Generate", mock.Anything, mock.Anything).Return(nil, errors.New("upstream down"))

	_, err := f.svc.Generate(context.Background(), f.schoolID, f.userID, domain.RoleTeacher, topicID, domain.ContentSummary)

	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
	f.contentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGenerationService_GenerateSummaries_OneFailureDoesNotAbortSiblings(t *testing.T) {
	f := newGenerationFixture()
	okTopic := uuid.New()
	badTopic := uuid.New()
	f.stubTopic(okTopic)
	f.topicRepo.On("GetByID", mock.Anything, f.schoolID, badTopic).Return(nil, domain.ErrTopicNotFound)

	f.generator.On("Generate", mock.Anything, mock.Anything).
		Return(&port.GenerateOutput{Text: "A tidy summary.", ModelUsed: "m", PromptUsed: "p"}, nil)
	f.contentRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	results := f.svc.GenerateSummaries(context.Background(), f.schoolID, f.userID, domain.RoleTeacher,
		[]uuid.UUID{badTopic, okTopic})

	require.Len(t, results, 2)
	assert.False(t, results[0].Success)
	assert.NotEmpty(t, results[0].Error)
	assert.True(t, results[1].Success)
	assert.Equal(t, "A tidy summary.", results[1].View.Content.RawResponse)
}

func TestGenerationService_PlanChapter_MalformedResponseStillSuggests(t *testing.T) {
	f := newGenerationFixture()

	f.generator.On("Generate", mock.Anything, mock.Anything).
		Return(&port.GenerateOutput{Text: `[{name: 'Part one', content: "intro", estimatedMinutes: 30,}]`}, nil)

	got, err := f.svc.PlanChapter(context.Background(), f.schoolID, f.userID, domain.RoleTeacher, "chapter text")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Part one", got[0].Name)
	assert.Equal(t, 30, got[0].EstimatedMinutes)
}

func TestGenerationService_ConfirmChapterPlan_CreatesTopicsInPartOrder(t *testing.T) {
	f := newGenerationFixture()
	subjectID := uuid.New()
	f.subjectRepo.On("GetByID", mock.Anything, f.schoolID, subjectID).Return(&domain.Subject{ID: subjectID}, nil)

	var captured []domain.Topic
	f.topicRepo.On("CreateBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(1).([]domain.Topic) }).
		Return(nil)

	_, err := f.svc.ConfirmChapterPlan(context.Background(), f.schoolID, f.userID, domain.RoleTeacher,
		service.ConfirmChapterPlanInput{
			SubjectID: subjectID,
			Suggestions: []domain.TopicSuggestion{
				{Name: "First part", Content: "a"},
				{Name: "Second part", Content: "b", PartNumber: 5},
			},
		})

	require.NoError(t, err)
	require.Len(t, captured, 2)
	assert.Equal(t, 1, captured[0].PartNumber)
	assert.Equal(t, 5, captured[1].PartNumber)
	assert.Equal(t, "a", captured[0].ExtractedText)
}

func TestGenerationService_GetParsed_RecomputesFromStoredRaw(t *testing.T) {
	f := newGenerationFixture()
	contentID := uuid.New()
	stored := &domain.GeneratedContent{
		ID:          contentID,
		SchoolID:    f.schoolID,
		ContentType: domain.ContentTeachingGuide,
		RawResponse: "**Step 1:** Warm up\n**Description:** Ask what students already know.\n**Tip:** Keep it short.",
	}
	f.contentRepo.On("GetByID", mock.Anything, f.schoolID, contentID).Return(stored, nil)

	view, err := f.svc.GetParsed(context.Background(), f.schoolID, contentID)

	require.NoError(t, err)
	require.NotNil(t, view.Sections)
	assert.Equal(t, section.ModeHeuristic, view.Sections.Mode)
	require.Len(t, view.Sections.Sections, 1)
	require.Len(t, view.Sections.Sections[0].Questions, 1)
	assert.Equal(t, "Keep it short.", view.Sections.Sections[0].Questions[0].Explanation)
}
