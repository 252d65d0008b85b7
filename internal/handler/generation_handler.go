package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shiksha/internal/domain"
	"shiksha/internal/service"
)

// GenerationHandler handles AI content generation endpoints.
type GenerationHandler struct {
	generationService service.GenerationService
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(generationService service.GenerationService) *GenerationHandler {
	return &GenerationHandler{generationService: generationService}
}

// Generate handles POST /api/v1/topics/:id/generate
// @Summary Generate content for a topic
// @Description Generate a summary, lesson plan, worksheet, assessment, or teaching guide from the topic's source text (admin or teacher)
// @Tags generation
// @Accept json
// @Produce json
// @Param id path string true "Topic ID (UUID)"
// @Param request body GenerateRequest true "Content type to generate"
// @Success 201 {object} Response{data=service.GenerationView} "Generated content with its parsed form"
// @Failure 400 {object} ErrorResponseBody "Invalid content type"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "Topic not found"
// @Failure 502 {object} ErrorResponseBody "Generation failed"
// @Security BearerAuth
// @Router /topics/{id}/generate [post]
func (h *GenerationHandler) Generate(c *gin.Context) {
	schoolID, userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	topicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid topic ID")
		return
	}

	var req struct {
		ContentType domain.ContentType `json:"content_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	view, err := h.generationService.Generate(c.Request.Context(), schoolID, userID, role, topicID, req.ContentType)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, view)
}

// GenerateSummaries handles POST /api/v1/generate/summaries
// @Summary Generate summaries for multiple topics
// @Description Generate summaries for each listed topic. Topics are processed independently; one failure never aborts the rest
// @Tags generation
// @Accept json
// @Produce json
// @Param request body BatchSummaryRequest true "Topic IDs"
// @Success 200 {object} Response{data=[]service.BatchItemResult} "Per-topic results"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /generate/summaries [post]
func (h *GenerationHandler) GenerateSummaries(c *gin.Context) {
	schoolID, userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var req struct {
		TopicIDs []uuid.UUID `json:"topic_ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	results := h.generationService.GenerateSummaries(c.Request.Context(), schoolID, userID, role, req.TopicIDs)
	RespondOK(c, results)
}

// PlanChapter handles POST /api/v1/chapter-plan
// @Summary Split a chapter into topic suggestions
// @Description Ask the model to divide raw chapter text into teachable parts. A malformed model response degrades to a best-effort suggestion list rather than an error
// @Tags generation
// @Accept json
// @Produce json
// @Param request body ChapterPlanRequest true "Chapter text"
// @Success 200 {object} Response{data=[]domain.TopicSuggestion} "Topic suggestions"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 502 {object} ErrorResponseBody "Generation failed"
// @Security BearerAuth
// @Router /chapter-plan [post]
func (h *GenerationHandler) PlanChapter(c *gin.Context) {
	schoolID, userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var req struct {
		ChapterText string `json:"chapter_text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	suggestions, err := h.generationService.PlanChapter(c.Request.Context(), schoolID, userID, role, req.ChapterText)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, suggestions)
}

// ConfirmChapterPlan handles POST /api/v1/chapter-plan/confirm
// @Summary Confirm a chapter plan
// @Description Persist accepted topic suggestions as topics under a subject, in part order
// @Tags generation
// @Accept json
// @Produce json
// @Param request body service.ConfirmChapterPlanInput true "Subject and accepted suggestions"
// @Success 201 {object} Response{data=[]domain.Topic} "Created topics"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "Subject not found"
// @Security BearerAuth
// @Router /chapter-plan/confirm [post]
func (h *GenerationHandler) ConfirmChapterPlan(c *gin.Context) {
	schoolID, userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.ConfirmChapterPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	topics, err := h.generationService.ConfirmChapterPlan(c.Request.Context(), schoolID, userID, role, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, topics)
}

// ListByTopic handles GET /api/v1/topics/:id/content
// @Summary List generated content for a topic
// @Description List stored generations for the topic, newest first
// @Tags generation
// @Produce json
// @Param id path string true "Topic ID (UUID)"
// @Success 200 {object} Response{data=[]domain.GeneratedContent} "Stored generations"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /topics/{id}/content [get]
func (h *GenerationHandler) ListByTopic(c *gin.Context) {
	schoolID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	topicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid topic ID")
		return
	}

	content, err := h.generationService.ListByTopic(c.Request.Context(), schoolID, topicID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, content)
}

// GetParsed handles GET /api/v1/content/:id
// @Summary Get parsed content
// @Description Get a stored generation with its parsed form recomputed from the raw response
// @Tags generation
// @Produce json
// @Param id path string true "Content ID (UUID)"
// @Success 200 {object} Response{data=service.GenerationView} "Content with parsed sections"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Content not found"
// @Security BearerAuth
// @Router /content/{id} [get]
func (h *GenerationHandler) GetParsed(c *gin.Context) {
	schoolID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid content ID")
		return
	}

	view, err := h.generationService.GetParsed(c.Request.Context(), schoolID, contentID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, view)
}
