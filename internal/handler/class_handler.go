package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shiksha/internal/service"
)

// ClassHandler handles class management endpoints.
type ClassHandler struct {
	classService service.ClassService
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(classService service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// Create handles POST /api/v1/classes
// @Summary Create a class
// @Description Create a new class in the school (admin or teacher)
// @Tags classes
// @Accept json
// @Produce json
// @Param request body CreateClassRequest true "Class details"
// @Success 201 {object} Response{data=domain.Class} "Class created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Security BearerAuth
// @Router /classes [post]
func (h *ClassHandler) Create(c *gin.Context) {
	schoolID, userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateClassInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	class, err := h.classService.Create(c.Request.Context(), schoolID, userID, role, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, class)
}

// List handles GET /api/v1/classes
// @Summary List classes
// @Description List classes in the school ordered by grade and section
// @Tags classes
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Class,meta=PagMeta} "List of classes"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /classes [get]
func (h *ClassHandler) List(c *gin.Context) {
	schoolID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	classes, total, err := h.classService.List(c.Request.Context(), schoolID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, classes, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/classes/:id
// @Summary Get class by ID
// @Description Get class details
// @Tags classes
// @Produce json
// @Param id path string true "Class ID (UUID)"
// @Success 200 {object} Response{data=domain.Class} "Class details"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Class not found"
// @Security BearerAuth
// @Router /classes/{id} [get]
func (h *ClassHandler) GetByID(c *gin.Context) {
	schoolID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid class ID")
		return
	}

	class, err := h.classService.GetByID(c.Request.Context(), schoolID, classID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, class)
}

// Update handles PUT /api/v1/classes/:id
// @Summary Update a class
// @Description Update class details (admin or teacher)
// @Tags classes
// @Accept json
// @Produce json
// @Param id path string true "Class ID (UUID)"
// @Param request body UpdateClassRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Class} "Class updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "Class not found"
// @Security BearerAuth
// @Router /classes/{id} [put]
func (h *ClassHandler) Update(c *gin.Context) {
	schoolID, _, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid class ID")
		return
	}

	var input service.UpdateClassInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	class, err := h.classService.Update(c.Request.Context(), schoolID, classID, role, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, class)
}

// Delete handles DELETE /api/v1/classes/:id
// @Summary Delete a class
// @Description Delete a class (admin or teacher)
// @Tags classes
// @Produce json
// @Param id path string true "Class ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Class deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "Class not found"
// @Security BearerAuth
// @Router /classes/{id} [delete]
func (h *ClassHandler) Delete(c *gin.Context) {
	schoolID, _, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid class ID")
		return
	}

	if err := h.classService.Delete(c.Request.Context(), schoolID, classID, role); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "class deleted"})
}
