package section

import (
	"encoding/json"
	"regexp"
	"strings"
)

// guideDoc is the recognized structured shape for teaching-guide responses.
type guideDoc struct {
	Steps []guideItem `json:"steps"`
}

type guideItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tip         string `json:"tip"`
}

var guideRules = domainRules{
	itemRe: regexp.MustCompile(`^(?:\*\*)?Step\s+(\d+)[:.](?:\*\*)?\s*(.*)$`),
	fields: map[string]string{
		"tip":             "explanation",
		"note":            "explanation",
		"parent guidance": "explanation",
	},
	options: false,
}

const guideTitle = "Teaching Guide Steps"

// ParseTeachingGuide converts a raw teaching-guide response into sections of
// numbered steps. Steps carry their tip text in the Explanation field.
func ParseTeachingGuide(raw string) Outcome {
	if strings.TrimSpace(raw) == "" {
		return Outcome{Mode: ModeEmpty}
	}

	var doc guideDoc
	if err := json.Unmarshal([]byte(raw), &doc); err == nil && len(doc.Steps) > 0 {
		sec := Section{Title: guideTitle, Icon: iconFor(guideTitle)}
		for i, step := range doc.Steps {
			text := step.Title
			if step.Description != "" {
				if text != "" {
					text += ": "
				}
				text += step.Description
			}
			sec.Questions = append(sec.Questions, Question{
				ID:          i + 1,
				Text:        text,
				Explanation: step.Tip,
			})
		}
		return Outcome{Mode: ModeStructured, Sections: []Section{sec}}
	}

	sections := foldSections(raw, guideRules, guideTitle)
	if len(sections) == 0 {
		return Outcome{Mode: ModeEmpty}
	}
	return Outcome{Mode: ModeHeuristic, Sections: sections}
}
