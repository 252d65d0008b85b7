package section

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Recognized assessment section keys, in fixed check order.
const (
	titleMCQ   = "Multiple Choice Questions"
	titleShort = "Short Answer Questions"
	titleLong  = "Long Answer Questions"
	titleCFU   = "Check for Understanding"
)

// assessmentDoc is the recognized structured shape for assessment responses.
type assessmentDoc struct {
	MCQs         []assessmentItem `json:"mcqs"`
	ShortAnswers []assessmentItem `json:"shortAnswers"`
	LongAnswers  []assessmentItem `json:"longAnswers"`
	CFUQuestions []assessmentItem `json:"cfuQuestions"`
}

type assessmentItem struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

var assessmentRules = domainRules{
	itemRe: regexp.MustCompile(`^(?:\*\*)?Q(\d+)[:.](?:\*\*)?\s*(.*)$`),
	fields: map[string]string{
		"answer":          "answer",
		"sample answer":   "answer",
		"explanation":     "explanation",
		"parent guidance": "explanation",
	},
	options: true,
}

func init() {
	assessmentRules.fieldRe = newFieldRe(assessmentRules.fields)
	guideRules.fieldRe = newFieldRe(guideRules.fields)
	worksheetRules.fieldRe = newFieldRe(worksheetRules.fields)
}

// ParseAssessment converts a raw generative response into assessment
// sections. JSON interpretation is attempted on the whole input first; any
// decode failure or unrecognized shape falls through to the heuristic scan.
// It never returns an error: unusable input yields Mode == ModeEmpty with no
// sections.
func ParseAssessment(raw string) Outcome {
	if strings.TrimSpace(raw) == "" {
		return Outcome{Mode: ModeEmpty}
	}

	if sections, ok := parseAssessmentJSON(raw); ok {
		return Outcome{Mode: ModeStructured, Sections: sections}
	}

	sections := foldSections(raw, assessmentRules, "Questions")
	if len(sections) == 0 {
		return Outcome{Mode: ModeEmpty}
	}
	return Outcome{Mode: ModeHeuristic, Sections: sections}
}

func parseAssessmentJSON(raw string) ([]Section, bool) {
	var doc assessmentDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, false
	}

	var sections []Section
	for _, group := range []struct {
		title string
		items []assessmentItem
	}{
		{titleMCQ, doc.MCQs},
		{titleShort, doc.ShortAnswers},
		{titleLong, doc.LongAnswers},
		{titleCFU, doc.CFUQuestions},
	} {
		if len(group.items) == 0 {
			continue
		}
		sec := Section{Title: group.title, Icon: iconFor(group.title)}
		for i, item := range group.items {
			q := Question{
				ID:          i + 1,
				Text:        item.Question,
				Answer:      item.Answer,
				Explanation: item.Explanation,
			}
			for j, opt := range item.Options {
				q.Options = append(q.Options, Option{Letter: letterFor(j), Text: opt})
			}
			sec.Questions = append(sec.Questions, q)
		}
		sections = append(sections, sec)
	}

	if len(sections) == 0 {
		// Valid JSON but not a shape we know; let the heuristic scan try.
		return nil, false
	}
	return sections, true
}

// CanonicalJSON renders sections back into the recognized structured shape.
// Re-parsing the result reproduces an equivalent section list, so heuristic
// output can be persisted and later treated as structured. Sections whose
// titles do not map to a known key are grouped under cfuQuestions.
func CanonicalJSON(sections []Section) ([]byte, error) {
	doc := assessmentDoc{}
	for _, sec := range sections {
		items := make([]assessmentItem, 0, len(sec.Questions))
		for _, q := range sec.Questions {
			item := assessmentItem{
				Question:    q.Text,
				Answer:      q.Answer,
				Explanation: q.Explanation,
			}
			for _, opt := range q.Options {
				item.Options = append(item.Options, opt.Text)
			}
			items = append(items, item)
		}
		switch sec.Title {
		case titleMCQ:
			doc.MCQs = append(doc.MCQs, items...)
		case titleShort:
			doc.ShortAnswers = append(doc.ShortAnswers, items...)
		case titleLong:
			doc.LongAnswers = append(doc.LongAnswers, items...)
		default:
			doc.CFUQuestions = append(doc.CFUQuestions, items...)
		}
	}
	return json.Marshal(doc)
}
