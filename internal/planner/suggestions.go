package planner

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"shiksha/internal/domain"
)

const (
	// DefaultMinutes is assumed when a suggestion carries no duration.
	DefaultMinutes = 35

	defaultObjective = "Understand the key ideas covered in this part"
	fallbackName     = "Chapter content (could not split into topics)"
)

// ParseSuggestions recovers topic suggestions from a raw chapter-planner
// response. It always returns at least one well-typed suggestion and never
// returns an error: if every recovery strategy fails, the result is a single
// synthetic suggestion flagging the failure.
func ParseSuggestions(raw string) []domain.TopicSuggestion {
	cleaned := stripFences(raw)

	for _, candidate := range locateArray(cleaned) {
		var elems []map[string]interface{}
		if err := json.Unmarshal([]byte(repair(candidate)), &elems); err != nil {
			continue
		}
		if len(elems) == 0 {
			continue
		}
		out := make([]domain.TopicSuggestion, 0, len(elems))
		for i, elem := range elems {
			out = append(out, normalize(elem, i))
		}
		return out
	}

	if out := regexFallback(cleaned); len(out) > 0 {
		return out
	}

	return []domain.TopicSuggestion{{
		Name:               fallbackName,
		Content:            strings.TrimSpace(raw),
		EstimatedMinutes:   DefaultMinutes,
		LearningObjectives: []string{defaultObjective},
		PartNumber:         1,
	}}
}

// normalize fills defaults for a decoded element: every field is optional in
// practice, whatever the prompt promised.
func normalize(elem map[string]interface{}, index int) domain.TopicSuggestion {
	s := domain.TopicSuggestion{
		Name:             fmt.Sprintf("Topic %d", index+1),
		EstimatedMinutes: DefaultMinutes,
		PartNumber:       index + 1,
	}

	if v, ok := elem["name"].(string); ok && strings.TrimSpace(v) != "" {
		s.Name = strings.TrimSpace(v)
	}
	if v, ok := elem["content"].(string); ok {
		s.Content = v
	}
	if n, ok := asInt(elem["estimatedMinutes"]); ok && n > 0 {
		s.EstimatedMinutes = n
	}
	if n, ok := asInt(elem["partNumber"]); ok && n > 0 {
		s.PartNumber = n
	}

	if arr, ok := elem["learningObjectives"].([]interface{}); ok {
		for _, o := range arr {
			if str, ok := o.(string); ok && strings.TrimSpace(str) != "" {
				s.LearningObjectives = append(s.LearningObjectives, str)
			}
		}
	}
	if len(s.LearningObjectives) == 0 {
		s.LearningObjectives = []string{defaultObjective}
	}
	return s
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i, true
		}
	}
	return 0, false
}

// Loose field matchers for the last-ditch extraction pass: quoted or bare
// keys, single- or double-quoted values.
var (
	objectBlockRe = regexp.MustCompile(`\{[^{}]*\}`)
	nameFieldRe   = regexp.MustCompile(`["']?name["']?\s*:\s*["']([^"']+)["']`)
	contentRe     = regexp.MustCompile(`["']?content["']?\s*:\s*["']([^"']+)["']`)
	minutesRe     = regexp.MustCompile(`["']?estimatedMinutes["']?\s*:\s*["']?(\d+)`)
)

// regexFallback pulls {name, content, estimatedMinutes} triples straight out
// of the text when no array can be made to parse. Part numbers are assigned
// sequentially.
func regexFallback(s string) []domain.TopicSuggestion {
	var out []domain.TopicSuggestion
	for _, block := range objectBlockRe.FindAllString(s, -1) {
		nm := nameFieldRe.FindStringSubmatch(block)
		if nm == nil {
			continue
		}
		sugg := domain.TopicSuggestion{
			Name:               strings.TrimSpace(nm[1]),
			EstimatedMinutes:   DefaultMinutes,
			LearningObjectives: []string{defaultObjective},
			PartNumber:         len(out) + 1,
		}
		if cm := contentRe.FindStringSubmatch(block); cm != nil {
			sugg.Content = cm[1]
		}
		if mm := minutesRe.FindStringSubmatch(block); mm != nil {
			if n, err := strconv.Atoi(mm[1]); err == nil && n > 0 {
				sugg.EstimatedMinutes = n
			}
		}
		out = append(out, sugg)
	}
	return out
}
