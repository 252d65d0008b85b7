package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shiksha/internal/service"
)

// SchoolHandler handles school management endpoints.
type SchoolHandler struct {
	schoolService service.SchoolService
}

// NewSchoolHandler creates a new SchoolHandler.
func NewSchoolHandler(schoolService service.SchoolService) *SchoolHandler {
	return &SchoolHandler{schoolService: schoolService}
}

// Create handles POST /api/v1/admin/schools
// @Summary Register a school
// @Description Register a new school together with its first admin account (admin only)
// @Tags schools
// @Accept json
// @Produce json
// @Param request body CreateSchoolRequest true "School and first admin details"
// @Success 201 {object} Response{data=domain.School} "School created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Failure 409 {object} ErrorResponseBody "Slug already exists"
// @Security BearerAuth
// @Router /admin/schools [post]
func (h *SchoolHandler) Create(c *gin.Context) {
	var input service.CreateSchoolInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	school, err := h.schoolService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, school)
}

// List handles GET /api/v1/admin/schools
// @Summary List schools
// @Description List all schools (admin only)
// @Tags schools
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.School,meta=PagMeta} "List of schools"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Security BearerAuth
// @Router /admin/schools [get]
func (h *SchoolHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	schools, total, err := h.schoolService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, schools, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/admin/schools/:id
// @Summary Get school by ID
// @Description Get school details (admin only)
// @Tags schools
// @Produce json
// @Param id path string true "School ID (UUID)"
// @Success 200 {object} Response{data=domain.School} "School details"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Failure 404 {object} ErrorResponseBody "School not found"
// @Security BearerAuth
// @Router /admin/schools/{id} [get]
func (h *SchoolHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid school ID")
		return
	}

	school, err := h.schoolService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, school)
}

// Update handles PUT /api/v1/admin/schools/:id
// @Summary Update a school
// @Description Update school details (admin only)
// @Tags schools
// @Accept json
// @Produce json
// @Param id path string true "School ID (UUID)"
// @Param request body UpdateSchoolRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.School} "School updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Failure 404 {object} ErrorResponseBody "School not found"
// @Security BearerAuth
// @Router /admin/schools/{id} [put]
func (h *SchoolHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid school ID")
		return
	}

	var input service.UpdateSchoolInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	school, err := h.schoolService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, school)
}

// Delete handles DELETE /api/v1/admin/schools/:id
// @Summary Delete a school
// @Description Delete a school (admin only)
// @Tags schools
// @Produce json
// @Param id path string true "School ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "School deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Failure 404 {object} ErrorResponseBody "School not found"
// @Security BearerAuth
// @Router /admin/schools/{id} [delete]
func (h *SchoolHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid school ID")
		return
	}

	if err := h.schoolService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "school deleted"})
}
