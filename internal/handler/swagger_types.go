package handler

import (
	"time"

	"github.com/google/uuid"

	"shiksha/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	SchoolSlug string `json:"school_slug" binding:"required" example:"green-valley"`
	Email      string `json:"email" binding:"required" example:"teacher@greenvalley.edu"`
	Password   string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// ForgotPasswordRequest represents the forgot-password request body.
type ForgotPasswordRequest struct {
	SchoolSlug string `json:"school_slug" binding:"required" example:"green-valley"`
	Email      string `json:"email" binding:"required" example:"teacher@greenvalley.edu"`
}

// ResetPasswordRequest represents the reset-password request body.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required" example:"3f7a9c..."`
	NewPassword string `json:"new_password" binding:"required" example:"newsecurepassword"`
}

// CreateSchoolRequest represents the create school request body.
type CreateSchoolRequest struct {
	Name          string `json:"name" binding:"required" example:"Green Valley Public School"`
	Slug          string `json:"slug" binding:"required" example:"green-valley"`
	Board         string `json:"board" example:"CBSE"`
	AdminEmail    string `json:"admin_email" binding:"required" example:"principal@greenvalley.edu"`
	AdminPassword string `json:"admin_password" binding:"required" example:"securepassword123"`
	AdminName     string `json:"admin_name" binding:"required" example:"Meera Nair"`
}

// UpdateSchoolRequest represents the update school request body.
type UpdateSchoolRequest struct {
	Name     *string `json:"name" example:"Green Valley Senior Secondary"`
	Slug     *string `json:"slug" example:"green-valley-sr"`
	Board    *string `json:"board" example:"ICSE"`
	IsActive *bool   `json:"is_active" example:"false"`
}

// CreateUserRequest represents the create user request body.
type CreateUserRequest struct {
	Email    string          `json:"email" binding:"required" example:"asha.rao@greenvalley.edu"`
	Password string          `json:"password" binding:"required" example:"securepassword123"`
	FullName string          `json:"full_name" binding:"required" example:"Asha Rao"`
	Role     domain.UserRole `json:"role" binding:"required" example:"teacher"`
}

// UpdateUserRequest represents the update user request body.
type UpdateUserRequest struct {
	Email    *string          `json:"email" example:"asha.r@greenvalley.edu"`
	FullName *string          `json:"full_name" example:"Asha R"`
	Role     *domain.UserRole `json:"role" example:"admin"`
	IsActive *bool            `json:"is_active" example:"true"`
}

// CreateClassRequest represents the create class request body.
type CreateClassRequest struct {
	Name    string `json:"name" binding:"required" example:"Class 5"`
	Grade   int    `json:"grade" binding:"required" example:"5"`
	Section string `json:"section" example:"A"`
}

// UpdateClassRequest represents the update class request body.
type UpdateClassRequest struct {
	Name    *string `json:"name" example:"Class 5"`
	Grade   *int    `json:"grade" example:"5"`
	Section *string `json:"section" example:"B"`
}

// CreateSubjectRequest represents the create subject request body.
type CreateSubjectRequest struct {
	ClassID uuid.UUID `json:"class_id" binding:"required" example:"660e8400-e29b-41d4-a716-446655440001"`
	Name    string    `json:"name" binding:"required" example:"Science"`
}

// UpdateSubjectRequest represents the update subject request body.
type UpdateSubjectRequest struct {
	Name *string `json:"name" example:"Environmental Science"`
}

// CreateTopicRequest represents the create topic request body.
type CreateTopicRequest struct {
	SubjectID     uuid.UUID             `json:"subject_id" binding:"required" example:"770e8400-e29b-41d4-a716-446655440002"`
	Name          string                `json:"name" binding:"required" example:"The Water Cycle"`
	Description   string                `json:"description" example:"Evaporation, condensation, and precipitation"`
	DocumentLinks []domain.DocumentLink `json:"document_links"`
	ExtractedText string                `json:"extracted_text" example:"Water constantly moves between the oceans, the sky, and the land..."`
	PartNumber    int                   `json:"part_number" example:"1"`
}

// UpdateTopicRequest represents the partial topic update request body.
type UpdateTopicRequest struct {
	Name          *string                `json:"name" example:"The Water Cycle (Part 1)"`
	Description   *string                `json:"description" example:"Updated description"`
	DocumentLinks *[]domain.DocumentLink `json:"document_links"`
	ExtractedText *string                `json:"extracted_text" example:"Revised source text"`
	PartNumber    *int                   `json:"part_number" example:"2"`
}

// AddDocumentLinkRequest represents the attach document link request body.
type AddDocumentLinkRequest struct {
	Title string `json:"title" example:"NCERT Chapter 14"`
	URL   string `json:"url" binding:"required" example:"https://ncert.nic.in/textbook/pdf/eesc114.pdf"`
}

// GenerateRequest represents the generate content request body.
type GenerateRequest struct {
	ContentType domain.ContentType `json:"content_type" binding:"required" example:"assessment"`
}

// BatchSummaryRequest represents the batch summary generation request body.
type BatchSummaryRequest struct {
	TopicIDs []uuid.UUID `json:"topic_ids" binding:"required" example:"880e8400-e29b-41d4-a716-446655440003"`
}

// ChapterPlanRequest represents the chapter planning request body.
type ChapterPlanRequest struct {
	ChapterText string `json:"chapter_text" binding:"required" example:"Full chapter text pasted or combined from extracted PDFs..."`
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expires_at" example:"2025-01-15T10:30:00Z"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// DownloadURLResponse represents a presigned download URL response.
type DownloadURLResponse struct {
	DownloadURL string `json:"download_url" example:"https://s3.amazonaws.com/shiksha-uploads/...?X-Amz-Signature=..."`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
