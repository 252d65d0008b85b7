package section_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiksha/internal/section"
)

func TestParseAssessment_StructuredJSON(t *testing.T) {
	raw := `{
		"mcqs": [
			{"question": "What is 2+2?", "options": ["3", "4", "5", "6"], "answer": "4", "explanation": "Basic addition"},
			{"question": "Largest planet?", "options": ["Earth", "Jupiter", "Mars", "Venus"], "answer": "Jupiter"}
		],
		"shortAnswers": [
			{"question": "Define photosynthesis."}
		]
	}`

	out := section.ParseAssessment(raw)

	require.Equal(t, section.ModeStructured, out.Mode)
	require.Len(t, out.Sections, 2)

	mcq := out.Sections[0]
	assert.Equal(t, "Multiple Choice Questions", mcq.Title)
	assert.Equal(t, "check-circle", mcq.Icon)
	require.Len(t, mcq.Questions, 2)

	q1 := mcq.Questions[0]
	assert.Equal(t, 1, q1.ID)
	assert.Equal(t, "What is 2+2?", q1.Text)
	require.Len(t, q1.Options, 4)
	// Letters are positional, never taken from the source data.
	assert.Equal(t, section.Option{Letter: "A", Text: "3"}, q1.Options[0])
	assert.Equal(t, section.Option{Letter: "B", Text: "4"}, q1.Options[1])
	assert.Equal(t, section.Option{Letter: "C", Text: "5"}, q1.Options[2])
	assert.Equal(t, section.Option{Letter: "D", Text: "6"}, q1.Options[3])
	assert.Equal(t, "4", q1.Answer)
	assert.Equal(t, "Basic addition", q1.Explanation)

	short := out.Sections[1]
	assert.Equal(t, "Short Answer Questions", short.Title)
	require.Len(t, short.Questions, 1)
	assert.Empty(t, short.Questions[0].Options)
}

func TestParseAssessment_StructuredKeyOrderFixed(t *testing.T) {
	// Key order in the source JSON does not matter; the section order is the
	// fixed check order: mcqs, shortAnswers, longAnswers, cfuQuestions.
	raw := `{
		"cfuQuestions": [{"question": "cfu"}],
		"longAnswers": [{"question": "long"}],
		"mcqs": [{"question": "mcq", "options": ["x", "y"]}]
	}`

	out := section.ParseAssessment(raw)

	require.Equal(t, section.ModeStructured, out.Mode)
	require.Len(t, out.Sections, 3)
	assert.Equal(t, "Multiple Choice Questions", out.Sections[0].Title)
	assert.Equal(t, "Long Answer Questions", out.Sections[1].Title)
	assert.Equal(t, "Check for Understanding", out.Sections[2].Title)
}

func TestParseAssessment_EmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t\n"} {
		out := section.ParseAssessment(raw)
		assert.Equal(t, section.ModeEmpty, out.Mode)
		assert.Empty(t, out.Sections)
	}
}

func TestParseAssessment_HeuristicBasic(t *testing.T) {
	raw := strings.Join([]string{
		"**Q1:** What is 2+2?",
		"A. 3",
		"B. 4",
		"**Answer:** B",
		"**Explanation:** Basic addition",
	}, "\n")

	out := section.ParseAssessment(raw)

	require.Equal(t, section.ModeHeuristic, out.Mode)
	require.Len(t, out.Sections, 1)
	require.Len(t, out.Sections[0].Questions, 1)

	q := out.Sections[0].Questions[0]
	assert.Equal(t, "What is 2+2?", q.Text)
	require.Len(t, q.Options, 2)
	assert.Equal(t, section.Option{Letter: "B", Text: "4"}, q.Options[1])
	assert.Equal(t, "B", q.Answer)
	assert.Equal(t, "Basic addition", q.Explanation)
}

func TestParseAssessment_HeuristicSectionsAndMultilineText(t *testing.T) {
	raw := strings.Join([]string{
		"# Multiple Choice Questions",
		"Q1: A train leaves the station at 9am",
		"traveling at 60 km/h. When does it arrive?",
		"A.10am",
		"B. 11am",
		"Answer: B",
		"",
		"**Short Answer Questions**",
		"Q2: Explain the water cycle.",
		"Sample Answer: Evaporation, condensation, precipitation.",
		"# Empty Section",
		"just some trailing prose with no items",
	}, "\n")

	out := section.ParseAssessment(raw)

	require.Equal(t, section.ModeHeuristic, out.Mode)
	// The trailing section has no items and is dropped; the prose line has no
	// current question and is a no-op.
	require.Len(t, out.Sections, 2)

	mcq := out.Sections[0]
	assert.Equal(t, "Multiple Choice Questions", mcq.Title)
	assert.Equal(t, "check-circle", mcq.Icon)
	require.Len(t, mcq.Questions, 1)
	assert.Equal(t, "A train leaves the station at 9am traveling at 60 km/h. When does it arrive?", mcq.Questions[0].Text)
	// Option with no space after the period still matches.
	require.Len(t, mcq.Questions[0].Options, 2)
	assert.Equal(t, section.Option{Letter: "A", Text: "10am"}, mcq.Questions[0].Options[0])

	short := out.Sections[1]
	assert.Equal(t, "Short Answer Questions", short.Title)
	assert.Equal(t, "edit", short.Icon)
	require.Len(t, short.Questions, 1)
	assert.Equal(t, "Evaporation, condensation, precipitation.", short.Questions[0].Answer)
}

func TestParseAssessment_LabelWithoutItemIsNoOp(t *testing.T) {
	raw := strings.Join([]string{
		"# Quiz",
		"Answer: orphaned",
		"A. stray option",
		"Q1: real question",
	}, "\n")

	out := section.ParseAssessment(raw)

	require.Equal(t, section.ModeHeuristic, out.Mode)
	require.Len(t, out.Sections, 1)
	require.Len(t, out.Sections[0].Questions, 1)
	q := out.Sections[0].Questions[0]
	assert.Equal(t, "real question", q.Text)
	assert.Empty(t, q.Answer)
	assert.Empty(t, q.Options)
}

func TestParseAssessment_UnrecognizedJSONFallsBack(t *testing.T) {
	// Valid JSON, but not a recognized shape: the heuristic scan runs and
	// finds nothing usable.
	out := section.ParseAssessment(`[1, 2, 3]`)
	assert.Equal(t, section.ModeEmpty, out.Mode)
	assert.Empty(t, out.Sections)
}

func TestParseAssessment_UnknownHeadingGetsDefaultIcon(t *testing.T) {
	raw := "# Brain Teasers\nQ1: riddle me this"

	out := section.ParseAssessment(raw)

	require.Len(t, out.Sections, 1)
	assert.Equal(t, "Brain Teasers", out.Sections[0].Title)
	assert.Equal(t, "file-text", out.Sections[0].Icon)
}

func TestCanonicalJSON_RoundTrip(t *testing.T) {
	raw := strings.Join([]string{
		"# Multiple Choice Questions",
		"**Q1:** What is 2+2?",
		"A. 3",
		"B. 4",
		"**Answer:** B",
		"**Explanation:** Basic addition",
		"# Short Answer Questions",
		"Q2: Explain gravity.",
		"Sample Answer: Mass attracts mass.",
	}, "\n")

	first := section.ParseAssessment(raw)
	require.Equal(t, section.ModeHeuristic, first.Mode)

	canonical, err := section.CanonicalJSON(first.Sections)
	require.NoError(t, err)

	second := section.ParseAssessment(string(canonical))
	require.Equal(t, section.ModeStructured, second.Mode)
	require.Len(t, second.Sections, len(first.Sections))

	for i := range first.Sections {
		assert.Equal(t, first.Sections[i].Title, second.Sections[i].Title)
		require.Len(t, second.Sections[i].Questions, len(first.Sections[i].Questions))
		for j := range first.Sections[i].Questions {
			fq := first.Sections[i].Questions[j]
			sq := second.Sections[i].Questions[j]
			assert.Equal(t, fq.Text, sq.Text)
			assert.Equal(t, fq.Answer, sq.Answer)
			assert.Equal(t, fq.Explanation, sq.Explanation)
			assert.Equal(t, fq.Options, sq.Options)
		}
	}
}
