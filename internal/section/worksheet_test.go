package section_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiksha/internal/section"
)

func TestParseWorksheets_StructuredJSON(t *testing.T) {
	raw := `{
		"worksheets": [
			{
				"title": "Fractions Practice",
				"instructions": "Solve each problem.",
				"activities": [
					{"type": "fill-in", "question": "1/2 + 1/4 = ?", "answer": "3/4"},
					{"type": "drawing", "question": "Shade half the circle."}
				],
				"answerKey": "1. 3/4",
				"parentTips": "Use pizza slices as a visual aid."
			}
		]
	}`

	out := section.ParseWorksheets(raw)

	require.Equal(t, section.ModeStructured, out.Mode)
	require.Len(t, out.Worksheets, 1)

	ws := out.Worksheets[0]
	assert.Equal(t, "Fractions Practice", ws.Title)
	assert.Equal(t, "Solve each problem.", ws.Instructions)
	require.Len(t, ws.Activities, 2)
	assert.Equal(t, section.Activity{Type: "fill-in", Question: "1/2 + 1/4 = ?", Answer: "3/4"}, ws.Activities[0])
	assert.Equal(t, "1. 3/4", ws.AnswerKey)
	assert.Equal(t, "Use pizza slices as a visual aid.", ws.ParentTips)
}

func TestParseWorksheets_EmptyInput(t *testing.T) {
	out := section.ParseWorksheets("  \n ")
	assert.Equal(t, section.ModeEmpty, out.Mode)
	assert.Empty(t, out.Worksheets)
}

func TestParseWorksheets_Heuristic(t *testing.T) {
	raw := strings.Join([]string{
		"# Fractions Worksheet",
		"Instructions: Complete every activity.",
		"Work carefully and show your steps.",
		"**Activity 1:** Add 1/2 and 1/4.",
		"Answer: 3/4",
		"**Activity 2:** Draw a number line",
		"from 0 to 1 and mark 1/3.",
		"Answer Key:",
		"1. 3/4",
		"2. Mark at one third.",
		"Parent Tips: Practice with measuring cups.",
	}, "\n")

	out := section.ParseWorksheets(raw)

	require.Equal(t, section.ModeHeuristic, out.Mode)
	require.Len(t, out.Worksheets, 1)

	ws := out.Worksheets[0]
	assert.Equal(t, "Fractions Worksheet", ws.Title)
	assert.Equal(t, "Complete every activity. Work carefully and show your steps.", ws.Instructions)
	require.Len(t, ws.Activities, 2)
	assert.Equal(t, "Add 1/2 and 1/4.", ws.Activities[0].Question)
	assert.Equal(t, "3/4", ws.Activities[0].Answer)
	assert.Equal(t, "Draw a number line from 0 to 1 and mark 1/3.", ws.Activities[1].Question)
	assert.Equal(t, "1. 3/4 2. Mark at one third.", ws.AnswerKey)
	assert.Equal(t, "Practice with measuring cups.", ws.ParentTips)
}

func TestParseWorksheets_HeuristicMultipleWorksheets(t *testing.T) {
	raw := strings.Join([]string{
		"**Worksheet A**",
		"Activity 1: First task",
		"**Worksheet B**",
		"Activity 1: Other task",
		"# Notes",
		"no activities here, so this block is dropped",
	}, "\n")

	out := section.ParseWorksheets(raw)

	require.Equal(t, section.ModeHeuristic, out.Mode)
	require.Len(t, out.Worksheets, 2)
	assert.Equal(t, "Worksheet A", out.Worksheets[0].Title)
	assert.Equal(t, "Worksheet B", out.Worksheets[1].Title)
	require.Len(t, out.Worksheets[1].Activities, 1)
	assert.Equal(t, "Other task", out.Worksheets[1].Activities[0].Question)
}
