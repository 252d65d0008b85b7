package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shiksha/internal/service"
)

// SubjectHandler handles subject management endpoints.
type SubjectHandler struct {
	subjectService service.SubjectService
}

// NewSubjectHandler creates a new SubjectHandler.
func NewSubjectHandler(subjectService service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

// Create handles POST /api/v1/subjects
// @Summary Create a subject
// @Description Create a new subject under a class (admin or teacher)
// @Tags subjects
// @Accept json
// @Produce json
// @Param request body CreateSubjectRequest true "Subject details"
// @Success 201 {object} Response{data=domain.Subject} "Subject created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "Class not found"
// @Security BearerAuth
// @Router /subjects [post]
func (h *SubjectHandler) Create(c *gin.Context) {
	schoolID, _, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateSubjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	subject, err := h.subjectService.Create(c.Request.Context(), schoolID, role, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, subject)
}

// ListByClass handles GET /api/v1/classes/:id/subjects
// @Summary List subjects for a class
// @Description List subjects under the class ordered by name
// @Tags subjects
// @Produce json
// @Param id path string true "Class ID (UUID)"
// @Success 200 {object} Response{data=[]domain.Subject} "List of subjects"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /classes/{id}/subjects [get]
func (h *SubjectHandler) ListByClass(c *gin.Context) {
	schoolID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid class ID")
		return
	}

	subjects, err := h.subjectService.ListByClass(c.Request.Context(), schoolID, classID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, subjects)
}

// GetByID handles GET /api/v1/subjects/:id
// @Summary Get subject by ID
// @Description Get subject details
// @Tags subjects
// @Produce json
// @Param id path string true "Subject ID (UUID)"
// @Success 200 {object} Response{data=domain.Subject} "Subject details"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Subject not found"
// @Security BearerAuth
// @Router /subjects/{id} [get]
func (h *SubjectHandler) GetByID(c *gin.Context) {
	schoolID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid subject ID")
		return
	}

	subject, err := h.subjectService.GetByID(c.Request.Context(), schoolID, subjectID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, subject)
}

// Update handles PUT /api/v1/subjects/:id
// @Summary Update a subject
// @Description Update subject details (admin or teacher)
// @Tags subjects
// @Accept json
// @Produce json
// @Param id path string true "Subject ID (UUID)"
// @Param request body UpdateSubjectRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Subject} "Subject updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "Subject not found"
// @Security BearerAuth
// @Router /subjects/{id} [put]
func (h *SubjectHandler) Update(c *gin.Context) {
	schoolID, _, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid subject ID")
		return
	}

	var input service.UpdateSubjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	subject, err := h.subjectService.Update(c.Request.Context(), schoolID, subjectID, role, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, subject)
}

// Delete handles DELETE /api/v1/subjects/:id
// @Summary Delete a subject
// @Description Delete a subject (admin or teacher)
// @Tags subjects
// @Produce json
// @Param id path string true "Subject ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Subject deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "Subject not found"
// @Security BearerAuth
// @Router /subjects/{id} [delete]
func (h *SubjectHandler) Delete(c *gin.Context) {
	schoolID, _, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid subject ID")
		return
	}

	if err := h.subjectService.Delete(c.Request.Context(), schoolID, subjectID, role); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "subject deleted"})
}
