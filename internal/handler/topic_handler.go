package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shiksha/internal/domain"
	"shiksha/internal/service"
)

// TopicHandler handles topic management endpoints.
type TopicHandler struct {
	topicService service.TopicService
	autosaver    *service.Autosaver
	retry        service.RetryPolicy
}

// NewTopicHandler creates a new TopicHandler. The retry policy applies to
// subject topic listings that opt in via the wait query parameter.
func NewTopicHandler(topicService service.TopicService, autosaver *service.Autosaver, retry service.RetryPolicy) *TopicHandler {
	return &TopicHandler{topicService: topicService, autosaver: autosaver, retry: retry}
}

// Create handles POST /api/v1/topics
// @Summary Create a topic
// @Description Create a new topic under a subject (admin or teacher)
// @Tags topics
// @Accept json
// @Produce json
// @Param request body CreateTopicRequest true "Topic details"
// @Success 201 {object} Response{data=domain.Topic} "Topic created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "Subject not found"
// @Security BearerAuth
// @Router /topics [post]
func (h *TopicHandler) Create(c *gin.Context) {
	schoolID, userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateTopicInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	topic, err := h.topicService.Create(c.Request.Context(), schoolID, userID, role, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, topic)
}

// ListBySubject handles GET /api/v1/subjects/:id/topics
// @Summary List topics for a subject
// @Description List topics in part order. With wait=true the listing retries briefly while empty, masking read-after-write lag right after a chapter plan is confirmed. sort=name returns alphabetical order instead.
// @Tags topics
// @Produce json
// @Param id path string true "Subject ID (UUID)"
// @Param wait query bool false "Retry briefly while the listing is empty" default(false)
// @Param sort query string false "Sort order: part (default) or name"
// @Success 200 {object} Response{data=[]domain.Topic} "List of topics"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /subjects/{id}/topics [get]
func (h *TopicHandler) ListBySubject(c *gin.Context) {
	schoolID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid subject ID")
		return
	}

	opts := service.ListTopicsOptions{
		SortByName: c.Query("sort") == "name",
	}
	if wait, _ := strconv.ParseBool(c.DefaultQuery("wait", "false")); wait {
		opts.Retry = h.retry
	}

	topics, err := h.topicService.ListBySubject(c.Request.Context(), schoolID, subjectID, opts)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, topics)
}

// GetByID handles GET /api/v1/topics/:id
// @Summary Get topic by ID
// @Description Get topic details including extracted text and document links
// @Tags topics
// @Produce json
// @Param id path string true "Topic ID (UUID)"
// @Success 200 {object} Response{data=domain.Topic} "Topic details"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Topic not found"
// @Security BearerAuth
// @Router /topics/{id} [get]
func (h *TopicHandler) GetByID(c *gin.Context) {
	schoolID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	topicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid topic ID")
		return
	}

	topic, err := h.topicService.GetByID(c.Request.Context(), schoolID, topicID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, topic)
}

// Update handles PUT /api/v1/topics/:id
// @Summary Update a topic
// @Description Partially update topic fields (admin or teacher)
// @Tags topics
// @Accept json
// @Produce json
// @Param id path string true "Topic ID (UUID)"
// @Param request body UpdateTopicRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Topic} "Topic updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "Topic not found"
// @Security BearerAuth
// @Router /topics/{id} [put]
func (h *TopicHandler) Update(c *gin.Context) {
	schoolID, _, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	topicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid topic ID")
		return
	}

	var input service.UpdateTopicInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	topic, err := h.topicService.Update(c.Request.Context(), schoolID, topicID, role, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	// A saved edit supersedes any pending autosave for the topic.
	h.autosaver.Cancel(topicID)

	RespondOK(c, topic)
}

// Autosave handles PATCH /api/v1/topics/:id/autosave
// @Summary Autosave a topic draft
// @Description Record an in-progress edit. The write is debounced: a burst of autosaves produces a single database update after the quiet period
// @Tags topics
// @Accept json
// @Produce json
// @Param id path string true "Topic ID (UUID)"
// @Param request body UpdateTopicRequest true "Draft fields"
// @Success 202 {object} Response{data=MessageResponse} "Draft scheduled"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "Topic not found"
// @Security BearerAuth
// @Router /topics/{id}/autosave [patch]
func (h *TopicHandler) Autosave(c *gin.Context) {
	schoolID, _, role, ok := extractAuthContext(c)
	if !ok {
		return
	}
	if !role.CanManageContent() {
		HandleError(c, domain.ErrForbidden)
		return
	}

	topicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid topic ID")
		return
	}

	var input service.UpdateTopicInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	topic, err := h.topicService.GetByID(c.Request.Context(), schoolID, topicID)
	if err != nil {
		HandleError(c, err)
		return
	}

	draft := *topic
	if input.Name != nil {
		draft.Name = *input.Name
	}
	if input.Description != nil {
		draft.Description = *input.Description
	}
	if input.DocumentLinks != nil {
		draft.DocumentLinks = *input.DocumentLinks
	}
	if input.ExtractedText != nil {
		draft.ExtractedText = *input.ExtractedText
	}
	if input.PartNumber != nil {
		draft.PartNumber = *input.PartNumber
	}
	draft.UpdatedAt = time.Now().UTC()

	h.autosaver.Schedule(draft)

	c.JSON(http.StatusAccepted, APIResponse{Success: true, Data: gin.H{"message": "draft scheduled"}})
}

// AddDocumentLink handles POST /api/v1/topics/:id/links
// @Summary Attach a document link
// @Description Attach an external document link to the topic; duplicate URLs are ignored
// @Tags topics
// @Accept json
// @Produce json
// @Param id path string true "Topic ID (UUID)"
// @Param request body AddDocumentLinkRequest true "Document link"
// @Success 200 {object} Response{data=domain.Topic} "Updated topic"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "Topic not found"
// @Security BearerAuth
// @Router /topics/{id}/links [post]
func (h *TopicHandler) AddDocumentLink(c *gin.Context) {
	schoolID, _, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	topicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid topic ID")
		return
	}

	var link domain.DocumentLink
	if err := c.ShouldBindJSON(&link); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	topic, err := h.topicService.AddDocumentLink(c.Request.Context(), schoolID, topicID, role, link)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, topic)
}

// RemoveDocumentLink handles DELETE /api/v1/topics/:id/links
// @Summary Remove a document link
// @Description Remove a document link from the topic by URL
// @Tags topics
// @Produce json
// @Param id path string true "Topic ID (UUID)"
// @Param url query string true "URL of the link to remove"
// @Success 200 {object} Response{data=domain.Topic} "Updated topic"
// @Failure 400 {object} ErrorResponseBody "Missing url parameter"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "Topic not found"
// @Security BearerAuth
// @Router /topics/{id}/links [delete]
func (h *TopicHandler) RemoveDocumentLink(c *gin.Context) {
	schoolID, _, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	topicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid topic ID")
		return
	}

	url := c.Query("url")
	if url == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "url query parameter is required")
		return
	}

	topic, err := h.topicService.RemoveDocumentLink(c.Request.Context(), schoolID, topicID, role, url)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, topic)
}

// Delete handles DELETE /api/v1/topics/:id
// @Summary Delete a topic
// @Description Delete a topic (admin or teacher)
// @Tags topics
// @Produce json
// @Param id path string true "Topic ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Topic deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "Topic not found"
// @Security BearerAuth
// @Router /topics/{id} [delete]
func (h *TopicHandler) Delete(c *gin.Context) {
	schoolID, _, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	topicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid topic ID")
		return
	}

	if err := h.topicService.Delete(c.Request.Context(), schoolID, topicID, role); err != nil {
		HandleError(c, err)
		return
	}

	h.autosaver.Cancel(topicID)

	RespondOK(c, gin.H{"message": "topic deleted"})
}
