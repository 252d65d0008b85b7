// Package section turns loosely structured generative-model responses into
// ordered, typed sections. A structured (JSON) interpretation is always
// attempted first; when the response is not recognizable JSON the package
// falls back to a line-oriented heuristic parse. Parsing never fails: bad
// input degrades to an empty result instead of an error.
package section

import "strings"

// Mode identifies which interpretation produced an Outcome.
type Mode string

const (
	// ModeEmpty means the input was empty or whitespace-only.
	ModeEmpty Mode = "empty"
	// ModeStructured means the input was valid JSON in a recognized shape.
	ModeStructured Mode = "structured"
	// ModeHeuristic means the line-oriented fallback parse was used.
	ModeHeuristic Mode = "heuristic"
)

// Option is a lettered answer choice on a multiple-choice question.
type Option struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// Question is a single parsed item within a section. Open-ended questions
// carry no options; Answer and Explanation are optional.
type Question struct {
	ID          int      `json:"id"`
	Text        string   `json:"text"`
	Options     []Option `json:"options,omitempty"`
	Answer      string   `json:"answer,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

// Section is a named, ordered group of questions. Icon is a display hint
// derived from the title and carries no semantic weight.
type Section struct {
	Title     string     `json:"title"`
	Icon      string     `json:"icon"`
	Questions []Question `json:"questions"`
}

// Outcome is the result of a parse attempt. Sections preserve first-seen
// order; Mode records which branch produced them.
type Outcome struct {
	Mode     Mode      `json:"mode"`
	Sections []Section `json:"sections"`
}

// iconRules maps a lowercase title substring to a display icon, checked in
// order. The last entry is the fallback.
var iconRules = []struct {
	substr string
	icon   string
}{
	{"multiple choice", "check-circle"},
	{"short answer", "edit"},
	{"long answer", "align-left"},
	{"understanding", "help-circle"},
	{"activity", "clipboard"},
	{"worksheet", "clipboard"},
	{"step", "book-open"},
	{"guide", "book-open"},
}

const defaultIcon = "file-text"

// iconFor picks a display icon by case-insensitive substring match on the
// section title.
func iconFor(title string) string {
	lower := strings.ToLower(title)
	for _, r := range iconRules {
		if strings.Contains(lower, r.substr) {
			return r.icon
		}
	}
	return defaultIcon
}

// letterFor assigns option letters positionally: 0 -> "A", 1 -> "B", ...
// Source data never dictates the letter.
func letterFor(i int) string {
	return string(rune('A' + i))
}
