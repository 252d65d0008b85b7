package port

import "context"

// GenerateInput carries a single text-generation request.
type GenerateInput struct {
	Prompt          string
	Temperature     float64
	MaxOutputTokens int
	ResponseFormat  string // optional MIME type, e.g. "application/json"
}

// GenerateOutput contains the raw text produced by a generative model.
type GenerateOutput struct {
	Text       string
	ModelUsed  string
	PromptUsed string
}

// ContentGenerator abstracts a generative-language backend.
type ContentGenerator interface {
	Generate(ctx context.Context, input GenerateInput) (*GenerateOutput, error)
}
