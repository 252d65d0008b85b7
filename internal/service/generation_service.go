package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"shiksha/internal/domain"
	"shiksha/internal/genai"
	"shiksha/internal/planner"
	"shiksha/internal/port"
	"shiksha/internal/section"
)

// GenerationView is a stored generation together with its parsed form. Only
// the field matching the content type is set; markdown content types carry
// just the raw text.
type GenerationView struct {
	Content     *domain.GeneratedContent  `json:"content"`
	Sections    *section.Outcome          `json:"sections,omitempty"`
	Worksheets  *section.WorksheetOutcome `json:"worksheets,omitempty"`
	Suggestions []domain.TopicSuggestion  `json:"suggestions,omitempty"`
}

// BatchItemResult reports one topic's outcome in a batch generation run.
type BatchItemResult struct {
	TopicID uuid.UUID       `json:"topic_id"`
	Success bool            `json:"success"`
	View    *GenerationView `json:"view,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ConfirmChapterPlanInput is the DTO for turning accepted suggestions into topics.
type ConfirmChapterPlanInput struct {
	SubjectID   uuid.UUID                `json:"subject_id" binding:"required"`
	Suggestions []domain.TopicSuggestion `json:"suggestions" binding:"required"`
}

// GenerationService defines the AI content generation contract.
type GenerationService interface {
	Generate(ctx context.Context, schoolID, userID uuid.UUID, role domain.UserRole, topicID uuid.UUID, contentType domain.ContentType) (*GenerationView, error)
	GenerateSummaries(ctx context.Context, schoolID, userID uuid.UUID, role domain.UserRole, topicIDs []uuid.UUID) []BatchItemResult
	PlanChapter(ctx context.Context, schoolID, userID uuid.UUID, role domain.UserRole, chapterText string) ([]domain.TopicSuggestion, error)
	ConfirmChapterPlan(ctx context.Context, schoolID, userID uuid.UUID, role domain.UserRole, input ConfirmChapterPlanInput) ([]domain.Topic, error)
	GetParsed(ctx context.Context, schoolID, contentID uuid.UUID) (*GenerationView, error)
	ListByTopic(ctx context.Context, schoolID, topicID uuid.UUID) ([]domain.GeneratedContent, error)
}

type generationService struct {
	generator   port.ContentGenerator
	contentRepo port.GeneratedContentRepository
	topicRepo   port.TopicRepository
	subjectRepo port.SubjectRepository
	classRepo   port.ClassRepository
}

// NewGenerationService creates a new GenerationService implementation.
func NewGenerationService(
	generator port.ContentGenerator,
	contentRepo port.GeneratedContentRepository,
	topicRepo port.TopicRepository,
	subjectRepo port.SubjectRepository,
	classRepo port.ClassRepository,
) GenerationService {
	return &generationService{
		generator:   generator,
		contentRepo: contentRepo,
		topicRepo:   topicRepo,
		subjectRepo: subjectRepo,
		classRepo:   classRepo,
	}
}

func (s *generationService) Generate(ctx context.Context, schoolID, userID uuid.UUID, role domain.UserRole, topicID uuid.UUID, contentType domain.ContentType) (*GenerationView, error) {
	if !role.CanManageContent() {
		return nil, domain.ErrForbidden
	}
	if !domain.ValidContentTypes[contentType] {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidContentType, contentType)
	}

	topic, err := s.topicRepo.GetByID(ctx, schoolID, topicID)
	if err != nil {
		return nil, err
	}

	promptInput := genai.PromptInput{
		TopicName:  topic.Name,
		SourceText: topic.ExtractedText,
	}
	// Subject and class names are best-effort prompt context.
	if subject, err := s.subjectRepo.GetByID(ctx, schoolID, topic.SubjectID); err == nil {
		promptInput.SubjectName = subject.Name
		if class, err := s.classRepo.GetByID(ctx, schoolID, subject.ClassID); err == nil {
			promptInput.ClassName = class.Name
		}
	}

	prompt, err := genai.BuildPrompt(contentType, promptInput)
	if err != nil {
		return nil, err
	}

	input := port.GenerateInput{Prompt: prompt}
	if contentType == domain.ContentAssessment || contentType == domain.ContentWorksheet || contentType == domain.ContentChapterPlan {
		input.ResponseFormat = "application/json"
	}

	out, err := s.generator.Generate(ctx, input)
	if err != nil {
		log.Printf("generationService.Generate: %s for topic %s failed: %v", contentType, topicID, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	content := &domain.GeneratedContent{
		SchoolID:    schoolID,
		TopicID:     topicID,
		ContentType: contentType,
		RawResponse: out.Text,
		ModelUsed:   out.ModelUsed,
		PromptUsed:  out.PromptUsed,
		CreatedBy:   userID,
	}
	if err := s.contentRepo.Create(ctx, content); err != nil {
		return nil, err
	}

	return parseView(content), nil
}

// GenerateSummaries runs summary generation for each topic in turn and
// returns a per-topic result. One topic failing never aborts its siblings.
func (s *generationService) GenerateSummaries(ctx context.Context, schoolID, userID uuid.UUID, role domain.UserRole, topicIDs []uuid.UUID) []BatchItemResult {
	results := make([]BatchItemResult, 0, len(topicIDs))
	for _, topicID := range topicIDs {
		view, err := s.Generate(ctx, schoolID, userID, role, topicID, domain.ContentSummary)
		if err != nil {
			results = append(results, BatchItemResult{TopicID: topicID, Success: false, Error: err.Error()})
			continue
		}
		results = append(results, BatchItemResult{TopicID: topicID, Success: true, View: view})
	}
	return results
}

// PlanChapter asks the model to split raw chapter text into topic
// suggestions. Generation errors are returned; a malformed response is not an
// error, the planner degrades it to a best-effort suggestion list.
func (s *generationService) PlanChapter(ctx context.Context, schoolID, userID uuid.UUID, role domain.UserRole, chapterText string) ([]domain.TopicSuggestion, error) {
	if !role.CanManageContent() {
		return nil, domain.ErrForbidden
	}

	out, err := s.generator.Generate(ctx, port.GenerateInput{
		Prompt:         genai.BuildChapterPlanPrompt(chapterText),
		ResponseFormat: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	return planner.ParseSuggestions(out.Text), nil
}

// ConfirmChapterPlan persists accepted suggestions as topics under a subject.
func (s *generationService) ConfirmChapterPlan(ctx context.Context, schoolID, userID uuid.UUID, role domain.UserRole, input ConfirmChapterPlanInput) ([]domain.Topic, error) {
	if !role.CanManageContent() {
		return nil, domain.ErrForbidden
	}
	if _, err := s.subjectRepo.GetByID(ctx, schoolID, input.SubjectID); err != nil {
		return nil, err
	}

	topics := make([]domain.Topic, 0, len(input.Suggestions))
	for i, sg := range input.Suggestions {
		partNumber := sg.PartNumber
		if partNumber == 0 {
			partNumber = i + 1
		}
		topics = append(topics, domain.Topic{
			SchoolID:      schoolID,
			SubjectID:     input.SubjectID,
			Name:          sg.Name,
			Description:   describeSuggestion(sg),
			ExtractedText: sg.Content,
			PartNumber:    partNumber,
			CreatedBy:     userID,
		})
	}

	if err := s.topicRepo.CreateBatch(ctx, topics); err != nil {
		return nil, err
	}
	return topics, nil
}

func (s *generationService) GetParsed(ctx context.Context, schoolID, contentID uuid.UUID) (*GenerationView, error) {
	content, err := s.contentRepo.GetByID(ctx, schoolID, contentID)
	if err != nil {
		return nil, err
	}
	return parseView(content), nil
}

func (s *generationService) ListByTopic(ctx context.Context, schoolID, topicID uuid.UUID) ([]domain.GeneratedContent, error) {
	return s.contentRepo.ListByTopic(ctx, schoolID, topicID)
}

// parseView recomputes the parsed form from the stored raw response.
func parseView(content *domain.GeneratedContent) *GenerationView {
	view := &GenerationView{Content: content}
	switch content.ContentType {
	case domain.ContentAssessment:
		outcome := section.ParseAssessment(content.RawResponse)
		view.Sections = &outcome
	case domain.ContentTeachingGuide:
		outcome := section.ParseTeachingGuide(content.RawResponse)
		view.Sections = &outcome
	case domain.ContentWorksheet:
		outcome := section.ParseWorksheets(content.RawResponse)
		view.Worksheets = &outcome
	case domain.ContentChapterPlan:
		view.Suggestions = planner.ParseSuggestions(content.RawResponse)
	}
	return view
}

func describeSuggestion(sg domain.TopicSuggestion) string {
	if len(sg.LearningObjectives) == 0 {
		return ""
	}
	desc := "Objectives: "
	for i, o := range sg.LearningObjectives {
		if i > 0 {
			desc += "; "
		}
		desc += o
	}
	return desc
}
