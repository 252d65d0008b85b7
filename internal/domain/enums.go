package domain

// UserRole defines the role hierarchy within a school.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleParent  UserRole = "parent"
	RoleStudent UserRole = "student"
)

// ValidUserRoles maps every accepted role for request validation.
var ValidUserRoles = map[UserRole]bool{
	RoleAdmin:   true,
	RoleTeacher: true,
	RoleParent:  true,
	RoleStudent: true,
}

// CanManageContent reports whether the role may create or modify curriculum
// records. Parents and students get read-only access.
func (r UserRole) CanManageContent() bool {
	return r == RoleAdmin || r == RoleTeacher
}

// ContentType enumerates the kinds of AI-generated material.
type ContentType string

const (
	ContentSummary       ContentType = "summary"
	ContentLessonPlan    ContentType = "lesson_plan"
	ContentWorksheet     ContentType = "worksheet"
	ContentAssessment    ContentType = "assessment"
	ContentTeachingGuide ContentType = "teaching_guide"
	ContentChapterPlan   ContentType = "chapter_plan"
)

// ValidContentTypes maps every accepted content type for request validation.
var ValidContentTypes = map[ContentType]bool{
	ContentSummary:       true,
	ContentLessonPlan:    true,
	ContentWorksheet:     true,
	ContentAssessment:    true,
	ContentTeachingGuide: true,
	ContentChapterPlan:   true,
}

// FileStatus represents the lifecycle of an uploaded source file.
type FileStatus string

const (
	FileStatusProcessing FileStatus = "processing"
	FileStatusSuccess    FileStatus = "success"
	FileStatusError      FileStatus = "error"
	FileStatusDeleted    FileStatus = "deleted"
)

// PDFContentType is the only MIME type accepted for source uploads.
const PDFContentType = "application/pdf"
