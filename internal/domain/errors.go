package domain

import "errors"

var (
	ErrNotFound                  = errors.New("resource not found")
	ErrUnauthorized              = errors.New("unauthorized")
	ErrForbidden                 = errors.New("forbidden")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrSchoolInactive            = errors.New("school is inactive")
	ErrUserInactive              = errors.New("user is inactive")
	ErrDuplicateEmail            = errors.New("email already exists for this school")
	ErrDuplicateSchoolSlug       = errors.New("school slug already exists")
	ErrUnsupportedFileType       = errors.New("unsupported file type")
	ErrFileTooLarge              = errors.New("file exceeds maximum allowed size")
	ErrNoTextLayer               = errors.New("no extractable text layer in document")
	ErrUploadFailed              = errors.New("file upload to storage failed")
	ErrInvalidContentType        = errors.New("invalid generated content type")
	ErrGenerationFailed          = errors.New("content generation failed")
	ErrEmptyGeneration           = errors.New("generator returned no usable content")
	ErrTopicNotFound             = errors.New("topic not found")
	ErrInsufficientRole          = errors.New("insufficient role for this action")
	ErrPasswordResetTokenInvalid = errors.New("password reset token is invalid or already used")
)
