package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiksha/internal/section"
)

func TestWriteAssessment(t *testing.T) {
	sections := []section.Section{
		{
			Title: "Multiple Choice Questions",
			Questions: []section.Question{
				{
					ID:   1,
					Text: "What drives the water cycle?",
					Options: []section.Option{
						{Letter: "A", Text: "The sun"},
						{Letter: "B", Text: "The wind"},
					},
					Answer:      "A",
					Explanation: "Solar heating powers evaporation.",
				},
			},
		},
		{
			Title: "Short Answer Questions",
			Questions: []section.Question{
				{ID: 1, Text: "Define condensation."},
			},
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteAssessment("The Water Cycle", sections))
	w.Flush()
	require.NoError(t, w.Error())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, assessmentColumns, records[0])
	assert.Equal(t, "The Water Cycle", records[1][0])
	assert.Equal(t, "Multiple Choice Questions", records[1][1])
	assert.Equal(t, "The sun", records[1][4])
	assert.Equal(t, "The wind", records[1][5])
	assert.Empty(t, records[1][6])
	assert.Equal(t, "A", records[1][8])
	assert.Equal(t, "Short Answer Questions", records[2][1])
	assert.Empty(t, records[2][8])
}

func TestWriteWorksheets_EmptyActivitiesKeepInstructions(t *testing.T) {
	sheets := []section.Worksheet{
		{Title: "Warm Up", Instructions: "Work in pairs."},
		{
			Title:        "Practice",
			Instructions: "Answer all questions.",
			Activities: []section.Activity{
				{Type: "fill_blank", Question: "Water vapor turns into ___.", Answer: "clouds"},
			},
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteWorksheets("The Water Cycle", sheets))
	w.Flush()
	require.NoError(t, w.Error())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Warm Up", records[1][1])
	assert.Equal(t, "Work in pairs.", records[1][2])
	assert.Empty(t, records[1][3])
	assert.Equal(t, "fill_blank", records[2][4])
	assert.Equal(t, "clouds", records[2][6])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"spaces and punctuation", "Chapter 3: Water!", "Chapter_3_Water"},
		{"consecutive specials collapse", "a   b///c", "a_b_c"},
		{"leading trailing stripped", "  -keep-  ", "-keep-"},
		{"already clean", "photosynthesis_notes", "photosynthesis_notes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestSanitizeFilename_Truncates(t *testing.T) {
	long := strings.Repeat("a", 150)
	assert.Len(t, SanitizeFilename(long), 100)
}

func TestBuildFilename(t *testing.T) {
	got := BuildFilename("The Water Cycle", "csv")
	assert.True(t, strings.HasPrefix(got, "The_Water_Cycle_"))
	assert.True(t, strings.HasSuffix(got, ".csv"))
}
