package section

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Activity is a single exercise within a worksheet.
type Activity struct {
	Type     string `json:"type"`
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
}

// Worksheet is a parsed printable worksheet: instructions, ordered
// activities, and optional answer-key and parent-tips blobs.
type Worksheet struct {
	Title        string     `json:"title"`
	Instructions string     `json:"instructions"`
	Activities   []Activity `json:"activities"`
	AnswerKey    string     `json:"answer_key,omitempty"`
	ParentTips   string     `json:"parent_tips,omitempty"`
}

// WorksheetOutcome is the result of a worksheet parse attempt.
type WorksheetOutcome struct {
	Mode       Mode        `json:"mode"`
	Worksheets []Worksheet `json:"worksheets"`
}

// worksheetDoc is the recognized structured shape for worksheet responses.
type worksheetDoc struct {
	Worksheets []worksheetJSON `json:"worksheets"`
}

type worksheetJSON struct {
	Title        string `json:"title"`
	Instructions string `json:"instructions"`
	Activities   []struct {
		Type     string `json:"type"`
		Question string `json:"question"`
		Answer   string `json:"answer"`
	} `json:"activities"`
	AnswerKey  string `json:"answerKey"`
	ParentTips string `json:"parentTips"`
}

var worksheetRules = domainRules{
	itemRe: regexp.MustCompile(`^(?:\*\*)?Activity\s+(\d+)[:.](?:\*\*)?\s*(.*)$`),
	fields: map[string]string{
		"instructions": "instructions",
		"type":         "type",
		"answer":       "answer",
		"answer key":   "answerkey",
		"parent tips":  "parenttips",
	},
	options: false,
}

// ParseWorksheets converts a raw worksheet response into worksheets. JSON
// interpretation runs first; failures fall through to the heuristic scan.
// Empty or unusable input yields Mode == ModeEmpty with no worksheets.
func ParseWorksheets(raw string) WorksheetOutcome {
	if strings.TrimSpace(raw) == "" {
		return WorksheetOutcome{Mode: ModeEmpty}
	}

	var doc worksheetDoc
	if err := json.Unmarshal([]byte(raw), &doc); err == nil && len(doc.Worksheets) > 0 {
		out := make([]Worksheet, 0, len(doc.Worksheets))
		for _, w := range doc.Worksheets {
			ws := Worksheet{
				Title:        w.Title,
				Instructions: w.Instructions,
				AnswerKey:    w.AnswerKey,
				ParentTips:   w.ParentTips,
			}
			for _, a := range w.Activities {
				ws.Activities = append(ws.Activities, Activity{Type: a.Type, Question: a.Question, Answer: a.Answer})
			}
			out = append(out, ws)
		}
		return WorksheetOutcome{Mode: ModeStructured, Worksheets: out}
	}

	worksheets := foldWorksheets(raw)
	if len(worksheets) == 0 {
		return WorksheetOutcome{Mode: ModeEmpty}
	}
	return WorksheetOutcome{Mode: ModeHeuristic, Worksheets: worksheets}
}

// foldWorksheets is the worksheet-domain heuristic scan. Headings start a
// new worksheet, "Activity N:" lines start a new activity, and the answer-key
// and parent-tips labels open free-text blobs that absorb following plain
// lines until the next classified line.
func foldWorksheets(raw string) []Worksheet {
	var (
		out  []Worksheet
		cur  *Worksheet
		act  *Activity
		blob *string
	)

	flushActivity := func() {
		if act == nil {
			return
		}
		if act.Question != "" || act.Answer != "" {
			if cur == nil {
				cur = &Worksheet{Title: "Worksheet"}
			}
			cur.Activities = append(cur.Activities, *act)
		}
		act = nil
	}
	flushWorksheet := func() {
		flushActivity()
		if cur != nil && len(cur.Activities) > 0 {
			out = append(out, *cur)
		}
		cur = nil
		blob = nil
	}
	appendTo := func(dst *string, text string) {
		if *dst == "" {
			*dst = text
		} else {
			*dst += " " + text
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		lc := classifyLine(line, worksheetRules)
		switch lc.kind {
		case lineBlank:
			// ignored

		case lineHeading:
			flushWorksheet()
			cur = &Worksheet{Title: lc.title}

		case lineItemStart:
			flushActivity()
			blob = nil
			if cur == nil {
				cur = &Worksheet{Title: "Worksheet"}
			}
			act = &Activity{Question: lc.text}

		case lineField:
			if cur == nil {
				cur = &Worksheet{Title: "Worksheet"}
			}
			switch lc.field {
			case "instructions":
				appendTo(&cur.Instructions, lc.text)
				blob = &cur.Instructions
			case "type":
				if act != nil {
					act.Type = lc.text
				}
				blob = nil
			case "answer":
				if act != nil {
					act.Answer = lc.text
				}
				blob = nil
			case "answerkey":
				flushActivity()
				appendTo(&cur.AnswerKey, lc.text)
				blob = &cur.AnswerKey
			case "parenttips":
				flushActivity()
				appendTo(&cur.ParentTips, lc.text)
				blob = &cur.ParentTips
			}

		case lineText:
			switch {
			case blob != nil:
				appendTo(blob, lc.text)
			case act != nil:
				appendTo(&act.Question, lc.text)
			case cur != nil:
				appendTo(&cur.Instructions, lc.text)
			}
		}
	}
	flushWorksheet()
	return out
}
