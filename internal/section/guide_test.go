package section_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiksha/internal/section"
)

func TestParseTeachingGuide_StructuredJSON(t *testing.T) {
	raw := `{
		"steps": [
			{"title": "Warm up", "description": "Review yesterday's vocabulary.", "tip": "Keep it under five minutes."},
			{"title": "Main activity", "description": "Group reading."}
		]
	}`

	out := section.ParseTeachingGuide(raw)

	require.Equal(t, section.ModeStructured, out.Mode)
	require.Len(t, out.Sections, 1)
	sec := out.Sections[0]
	assert.Equal(t, "Teaching Guide Steps", sec.Title)
	assert.Equal(t, "book-open", sec.Icon)
	require.Len(t, sec.Questions, 2)
	assert.Equal(t, "Warm up: Review yesterday's vocabulary.", sec.Questions[0].Text)
	assert.Equal(t, "Keep it under five minutes.", sec.Questions[0].Explanation)
	assert.Equal(t, 2, sec.Questions[1].ID)
}

func TestParseTeachingGuide_Heuristic(t *testing.T) {
	raw := strings.Join([]string{
		"# Lesson Flow",
		"**Step 1:** Introduce the topic with a question.",
		"Tip: Call on quieter students first.",
		"Step 2: Hand out the worksheet",
		"and walk through the first item together.",
	}, "\n")

	out := section.ParseTeachingGuide(raw)

	require.Equal(t, section.ModeHeuristic, out.Mode)
	require.Len(t, out.Sections, 1)
	sec := out.Sections[0]
	assert.Equal(t, "Lesson Flow", sec.Title)
	require.Len(t, sec.Questions, 2)
	assert.Equal(t, "Introduce the topic with a question.", sec.Questions[0].Text)
	assert.Equal(t, "Call on quieter students first.", sec.Questions[0].Explanation)
	assert.Equal(t, "Hand out the worksheet and walk through the first item together.", sec.Questions[1].Text)
}

func TestParseTeachingGuide_EmptyAndGarbage(t *testing.T) {
	assert.Equal(t, section.ModeEmpty, section.ParseTeachingGuide("").Mode)

	out := section.ParseTeachingGuide("no steps, no headings, nothing to hold on to")
	assert.Equal(t, section.ModeEmpty, out.Mode)
	assert.Empty(t, out.Sections)
}
