package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"shiksha/internal/domain"
	"shiksha/internal/export"
	"shiksha/internal/service"
)

// ExportHandler handles generated content download endpoints.
type ExportHandler struct {
	generationService service.GenerationService
	topicService      service.TopicService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(generationService service.GenerationService, topicService service.TopicService) *ExportHandler {
	return &ExportHandler{generationService: generationService, topicService: topicService}
}

// Export handles GET /api/v1/content/:id/export
// @Summary Export generated content
// @Description Download an assessment or worksheet as CSV or XLSX. Other content types are markdown and cannot be exported as a spreadsheet
// @Tags export
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Content ID (UUID)"
// @Param format query string false "Export format: csv (default) or xlsx"
// @Success 200 {file} file "Exported file"
// @Failure 400 {object} ErrorResponseBody "Unsupported content type or format"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Content not found"
// @Security BearerAuth
// @Router /content/{id}/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	schoolID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid content ID")
		return
	}

	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "format must be csv or xlsx")
		return
	}

	view, err := h.generationService.GetParsed(c.Request.Context(), schoolID, contentID)
	if err != nil {
		HandleError(c, err)
		return
	}

	topicName := string(view.Content.ContentType)
	if topic, err := h.topicService.GetByID(c.Request.Context(), schoolID, view.Content.TopicID); err == nil {
		topicName = topic.Name
	}

	switch view.Content.ContentType {
	case domain.ContentAssessment:
		if format == "xlsx" {
			h.writeXLSX(c, topicName, func() (*excelize.File, error) {
				return export.AssessmentXLSX(topicName, view.Sections.Sections)
			})
			return
		}
		h.writeCSV(c, topicName, func(w *export.Writer) error {
			return w.WriteAssessment(topicName, view.Sections.Sections)
		})
	case domain.ContentWorksheet:
		if format == "xlsx" {
			h.writeXLSX(c, topicName, func() (*excelize.File, error) {
				return export.WorksheetsXLSX(topicName, view.Worksheets.Worksheets)
			})
			return
		}
		h.writeCSV(c, topicName, func(w *export.Writer) error {
			return w.WriteWorksheets(topicName, view.Worksheets.Worksheets)
		})
	default:
		RespondError(c, http.StatusBadRequest, "UNSUPPORTED_EXPORT",
			"only assessments and worksheets can be exported; got "+string(view.Content.ContentType))
	}
}

func (h *ExportHandler) writeCSV(c *gin.Context, topicName string, write func(*export.Writer) error) {
	filename := export.BuildFilename(topicName, "csv")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if _, err := c.Writer.Write(export.BOM); err != nil {
		return
	}
	w := export.NewWriter(c.Writer)
	if err := write(w); err != nil {
		return
	}
	w.Flush()
}

func (h *ExportHandler) writeXLSX(c *gin.Context, topicName string, build func() (*excelize.File, error)) {
	f, err := build()
	if err != nil {
		HandleError(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	filename := export.BuildFilename(topicName, "xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	_ = f.Write(c.Writer)
}
