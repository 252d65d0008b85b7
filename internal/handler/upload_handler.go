package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shiksha/internal/service"
)

// UploadHandler handles source document upload endpoints.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload handles POST /api/v1/topics/:id/files
// @Summary Upload a source PDF to a topic
// @Description Upload a PDF, extract its text, and append the text to the topic's source material. The original file is stored for download
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Topic ID (UUID)"
// @Param file formData file true "PDF file (max 50MB)"
// @Success 201 {object} Response{data=service.UploadResult} "File stored and text extracted"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 422 {object} ErrorResponseBody "No selectable text in document"
// @Failure 500 {object} ErrorResponseBody "Upload failed"
// @Security BearerAuth
// @Router /topics/{id}/files [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	schoolID, userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	topicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid topic ID")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return
	}

	result, err := h.uploadService.Upload(c.Request.Context(), service.UploadTopicFileInput{
		SchoolID:    schoolID,
		TopicID:     topicID,
		UploadedBy:  userID,
		Role:        role,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// ExtractBatch handles POST /api/v1/extract-batch
// @Summary Extract text from multiple PDFs
// @Description Extract text from several PDFs in one request without persisting anything. Per-file failures are reported alongside the combined text of the successes, which feeds the chapter planner
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "PDF files (max 100MB each)"
// @Param remove formData string false "File names to drop from the combined result (repeatable)"
// @Success 200 {object} Response{data=service.BatchResult} "Per-file outcomes and combined text"
// @Failure 400 {object} ErrorResponseBody "No files provided"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /extract-batch [post]
func (h *UploadHandler) ExtractBatch(c *gin.Context) {
	if _, _, _, ok := extractAuthContext(c); !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "multipart form is required")
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "at least one file is required")
		return
	}

	files := make([]service.BatchFileInput, 0, len(headers))
	for _, header := range headers {
		data, err := readFormFile(header)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read "+header.Filename)
			return
		}
		files = append(files, service.BatchFileInput{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	result, err := h.uploadService.ExtractBatch(c.Request.Context(), files, form.Value["remove"])
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// ListByTopic handles GET /api/v1/topics/:id/files
// @Summary List files for a topic
// @Description List uploaded source documents for the topic
// @Tags files
// @Produce json
// @Param id path string true "Topic ID (UUID)"
// @Success 200 {object} Response{data=[]domain.FileMeta} "List of files"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /topics/{id}/files [get]
func (h *UploadHandler) ListByTopic(c *gin.Context) {
	schoolID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	topicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid topic ID")
		return
	}

	files, err := h.uploadService.ListByTopic(c.Request.Context(), schoolID, topicID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, files)
}

// Download handles GET /api/v1/files/:id/download
// @Summary Get a download URL
// @Description Get a time-limited presigned URL for the stored original
// @Tags files
// @Produce json
// @Param id path string true "File ID (UUID)"
// @Success 200 {object} Response{data=DownloadURLResponse} "Presigned download URL"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "File not found"
// @Security BearerAuth
// @Router /files/{id}/download [get]
func (h *UploadHandler) Download(c *gin.Context) {
	schoolID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	fileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid file ID")
		return
	}

	url, err := h.uploadService.GetDownloadURL(c.Request.Context(), schoolID, fileID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"download_url": url})
}

// Delete handles DELETE /api/v1/files/:id
// @Summary Delete a file
// @Description Delete a stored source document (admin or teacher)
// @Tags files
// @Produce json
// @Param id path string true "File ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "File deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "File not found"
// @Security BearerAuth
// @Router /files/{id} [delete]
func (h *UploadHandler) Delete(c *gin.Context) {
	schoolID, _, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	fileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid file ID")
		return
	}

	if err := h.uploadService.Delete(c.Request.Context(), schoolID, fileID, role); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "file deleted"})
}

func readFormFile(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}
