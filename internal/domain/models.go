package domain

import (
	"time"

	"github.com/google/uuid"
)

// School represents an isolated school account. All other records hang off it.
type School struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	Board     string    `db:"board" json:"board"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User represents an authenticated user belonging to a school.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	SchoolID     uuid.UUID `db:"school_id" json:"school_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Class represents a grade-level class within a school (e.g. "Class 7B").
type Class struct {
	ID        uuid.UUID `db:"id" json:"id"`
	SchoolID  uuid.UUID `db:"school_id" json:"school_id"`
	Name      string    `db:"name" json:"name"`
	Grade     int       `db:"grade" json:"grade"`
	Section   string    `db:"section" json:"section"`
	CreatedBy uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Subject represents a subject taught in a class.
type Subject struct {
	ID        uuid.UUID `db:"id" json:"id"`
	SchoolID  uuid.UUID `db:"school_id" json:"school_id"`
	ClassID   uuid.UUID `db:"class_id" json:"class_id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// DocumentLink is an external reference attached to a topic.
type DocumentLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Topic represents a unit of teaching material within a subject. The wire
// representation uses snake_case fields throughout, including the JSONB
// document_links column.
type Topic struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	SchoolID      uuid.UUID     `db:"school_id" json:"school_id"`
	SubjectID     uuid.UUID     `db:"subject_id" json:"subject_id"`
	Name          string        `db:"name" json:"name"`
	Description   string        `db:"description" json:"description"`
	DocumentLinks DocumentLinks `db:"document_links" json:"document_links"`
	ExtractedText string        `db:"extracted_text" json:"extracted_text"`
	PartNumber    int           `db:"part_number" json:"part_number"`
	CreatedBy     uuid.UUID     `db:"created_by" json:"created_by"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

// GeneratedContent stores a single AI generation run against a topic. The raw
// response is kept verbatim; parsed views are recomputed from it on demand.
type GeneratedContent struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	SchoolID    uuid.UUID   `db:"school_id" json:"school_id"`
	TopicID     uuid.UUID   `db:"topic_id" json:"topic_id"`
	ContentType ContentType `db:"content_type" json:"content_type"`
	RawResponse string      `db:"raw_response" json:"raw_response"`
	ModelUsed   string      `db:"model_used" json:"model_used"`
	PromptUsed  string      `db:"prompt_used" json:"prompt_used"`
	CreatedBy   uuid.UUID   `db:"created_by" json:"created_by"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
}

// TopicSuggestion is a proposed chapter split produced by the chapter-planner
// flow. PartNumber is 1-based and contiguous unless the source supplied
// explicit values.
type TopicSuggestion struct {
	Name               string   `json:"name"`
	Content            string   `json:"content"`
	EstimatedMinutes   int      `json:"estimated_minutes"`
	LearningObjectives []string `json:"learning_objectives"`
	PartNumber         int      `json:"part_number"`
}

// FileMeta stores metadata about an uploaded source PDF.
type FileMeta struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	SchoolID     uuid.UUID  `db:"school_id" json:"school_id"`
	TopicID      uuid.UUID  `db:"topic_id" json:"topic_id"`
	UploadedBy   uuid.UUID  `db:"uploaded_by" json:"uploaded_by"`
	FileName     string     `db:"file_name" json:"file_name"`
	OriginalName string     `db:"original_name" json:"original_name"`
	FileSize     int64      `db:"file_size" json:"file_size"`
	S3Bucket     string     `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string     `db:"s3_key" json:"s3_key"`
	ContentType  string     `db:"content_type" json:"content_type"`
	PageCount    int        `db:"page_count" json:"page_count"`
	Status       FileStatus `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// PasswordResetToken is a single-use token emailed to a user.
type PasswordResetToken struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	UserID    uuid.UUID  `db:"user_id" json:"user_id"`
	SchoolID  uuid.UUID  `db:"school_id" json:"school_id"`
	TokenHash string     `db:"token_hash" json:"-"`
	ExpiresAt time.Time  `db:"expires_at" json:"expires_at"`
	UsedAt    *time.Time `db:"used_at" json:"used_at"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}
