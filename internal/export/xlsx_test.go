package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiksha/internal/section"
)

func TestAssessmentXLSX(t *testing.T) {
	sections := []section.Section{
		{
			Title: "Multiple Choice Questions",
			Questions: []section.Question{
				{
					ID:   1,
					Text: "What is evaporation?",
					Options: []section.Option{
						{Letter: "A", Text: "Liquid to gas"},
						{Letter: "B", Text: "Gas to liquid"},
					},
					Answer: "A",
				},
			},
		},
		{
			Title:     "Short Answer Questions",
			Questions: []section.Question{{ID: 1, Text: "Explain rainfall."}},
		},
	}

	f, err := AssessmentXLSX("The Water Cycle", sections)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	names := f.GetSheetList()
	require.Len(t, names, 2)
	assert.Equal(t, "Multiple Choice Questions", names[0])
	assert.Equal(t, "Short Answer Questions", names[1])

	got, err := f.GetCellValue("Multiple Choice Questions", "B2")
	require.NoError(t, err)
	assert.Equal(t, "What is evaporation?", got)

	got, err = f.GetCellValue("Multiple Choice Questions", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Liquid to gas", got)
}

func TestWorksheetsXLSX_AnswerKeyTrails(t *testing.T) {
	sheets := []section.Worksheet{
		{
			Title:        "Practice",
			Instructions: "Answer everything.",
			Activities: []section.Activity{
				{Type: "matching", Question: "Match the states of matter.", Answer: "solid-ice"},
			},
			AnswerKey: "1. solid-ice",
		},
	}

	f, err := WorksheetsXLSX("States of Matter", sheets)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	got, err := f.GetCellValue("Practice", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Answer everything.", got)

	got, err = f.GetCellValue("Practice", "A6")
	require.NoError(t, err)
	assert.Equal(t, "Answer Key", got)
}

func TestSheetName_ForbiddenCharsAndLength(t *testing.T) {
	assert.Equal(t, "Chapter 3  Review", sheetName("Chapter 3: Review", 0))
	assert.Equal(t, "Sheet 2", sheetName("", 1))
	assert.Len(t, sheetName("a very long worksheet title that keeps going", 0), 31)
}
