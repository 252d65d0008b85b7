package genai

import (
	"fmt"
	"strings"

	"shiksha/internal/domain"
)

// PromptInput carries the curriculum context a prompt is built from.
type PromptInput struct {
	TopicName   string
	SubjectName string
	ClassName   string
	SourceText  string
}

// BuildPrompt returns the generation prompt for the given content type.
func BuildPrompt(contentType domain.ContentType, in PromptInput) (string, error) {
	switch contentType {
	case domain.ContentSummary:
		return buildSummaryPrompt(in), nil
	case domain.ContentLessonPlan:
		return buildLessonPlanPrompt(in), nil
	case domain.ContentWorksheet:
		return buildWorksheetPrompt(in), nil
	case domain.ContentAssessment:
		return buildAssessmentPrompt(in), nil
	case domain.ContentTeachingGuide:
		return buildTeachingGuidePrompt(in), nil
	case domain.ContentChapterPlan:
		return BuildChapterPlanPrompt(in.SourceText), nil
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidContentType, contentType)
	}
}

func contextBlock(in PromptInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", in.TopicName)
	if in.SubjectName != "" {
		fmt.Fprintf(&b, "Subject: %s\n", in.SubjectName)
	}
	if in.ClassName != "" {
		fmt.Fprintf(&b, "Class: %s\n", in.ClassName)
	}
	if in.SourceText != "" {
		fmt.Fprintf(&b, "\nSource material:\n%s\n", in.SourceText)
	}
	return b.String()
}

func buildSummaryPrompt(in PromptInput) string {
	return `You are an experienced school teacher preparing revision notes. Write a clear, student-friendly summary of the topic below.

` + contextBlock(in) + `
Guidelines:
- Start with a one-paragraph overview, then cover each key idea under a short bold heading.
- Use simple language appropriate for the class level.
- End with a "Key Terms" list of the important vocabulary with one-line definitions.
- Use plain markdown only. No code fences.`
}

func buildLessonPlanPrompt(in PromptInput) string {
	return `You are an experienced school teacher. Prepare a single-period lesson plan for the topic below.

` + contextBlock(in) + `
Guidelines:
- Include: learning objectives, required materials, a timed sequence of activities (warm-up, instruction, practice, wrap-up), and homework.
- Keep timings realistic for a 40-minute period.
- Use plain markdown with bold headings. No code fences.`
}

func buildAssessmentPrompt(in PromptInput) string {
	return `You are an experienced school teacher creating an assessment for the topic below.

` + contextBlock(in) + `
Return ONLY valid JSON with no markdown formatting, no code fences, no explanation — just the raw JSON object, in this structure:
{
  "mcqs": [
    {"question": "", "options": ["", "", "", ""], "answer": "A", "explanation": ""}
  ],
  "shortAnswers": [
    {"question": "", "answer": ""}
  ],
  "longAnswers": [
    {"question": "", "answer": ""}
  ],
  "cfuQuestions": [
    {"question": "", "answer": ""}
  ]
}

Guidelines:
- 5 multiple choice questions with exactly 4 options each; "answer" is the option letter.
- 3 short answer and 2 long answer questions with model answers.
- 3 quick check-for-understanding questions a teacher can ask mid-lesson.`
}

func buildWorksheetPrompt(in PromptInput) string {
	return `You are an experienced school teacher creating practice worksheets for the topic below.

` + contextBlock(in) + `
Return ONLY valid JSON with no markdown formatting, no code fences, no explanation — just the raw JSON object, in this structure:
{
  "worksheets": [
    {
      "title": "",
      "instructions": "",
      "activities": [
        {"type": "", "question": "", "answer": ""}
      ],
      "answerKey": "",
      "parentTips": ""
    }
  ]
}

Guidelines:
- Produce 2 worksheets of increasing difficulty.
- Mix activity types: fill in the blank, match the following, true/false, solve.
- "parentTips" is one short paragraph telling a parent how to help at home.`
}

func buildTeachingGuidePrompt(in PromptInput) string {
	return `You are a teaching coach writing a step-by-step guide for a teacher who is new to the topic below.

` + contextBlock(in) + `
Format the response as numbered steps, each in exactly this markdown shape:

**Step 1:** <short step title>
**Description:** <what the teacher does and says>
**Tip:** <one practical tip or common pitfall>

Produce 5 to 8 steps covering the full arc of the lesson. No code fences.`
}

// BuildChapterPlanPrompt asks the model to split raw chapter text into
// teachable parts. The response feeds the planner package, which tolerates
// malformed JSON, but the prompt still asks for clean output.
func BuildChapterPlanPrompt(chapterText string) string {
	return `You are an experienced school teacher planning how to teach a chapter. Split the chapter text below into sequential teachable parts.

Chapter text:
` + chapterText + `

Return ONLY a valid JSON array with no markdown formatting, no code fences, no explanation, in this structure:
[
  {
    "name": "",
    "content": "",
    "estimatedMinutes": 35,
    "learningObjectives": ["", ""],
    "partNumber": 1
  }
]

Guidelines:
- Each part should be teachable in 25-45 minutes.
- "content" is the portion of the chapter text the part covers, lightly cleaned up.
- "partNumber" starts at 1 and increases in teaching order.`
}
