package section

import (
	"regexp"
	"strconv"
	"strings"
)

type lineKind int

const (
	lineBlank lineKind = iota
	lineHeading
	lineItemStart
	lineOption
	lineField
	lineText
)

// lineClass is the classification of a single input line. Which payload
// fields are set depends on kind.
type lineClass struct {
	kind   lineKind
	title  string // heading text, markers stripped
	num    int    // item number
	letter string // option letter
	field  string // canonical field name
	text   string // remaining text payload
}

// domainRules parameterizes the heuristic scan per content domain:
// assessments, worksheets and teaching guides share the machinery but differ
// in their item-start pattern, recognized field labels and whether lettered
// options apply.
type domainRules struct {
	itemRe  *regexp.Regexp    // group 1: item number, group 2: remainder
	fields  map[string]string // lowercase label -> canonical field name
	fieldRe *regexp.Regexp
	options bool
}

var (
	headingRe  = regexp.MustCompile(`^(#{1,6})\s*(.+?)\s*$`)
	boldLineRe = regexp.MustCompile(`^\*\*(.+?)\*\*$`)
	// Option letter with a period, with or without a following space.
	optionRe = regexp.MustCompile(`^([A-D])\.\s*(\S.*)$`)
)

// newFieldRe builds the label-matching expression for a rule set. Labels are
// matched at line start, case-insensitively, with or without bold markers.
func newFieldRe(fields map[string]string) *regexp.Regexp {
	labels := make([]string, 0, len(fields))
	for label := range fields {
		labels = append(labels, regexp.QuoteMeta(label))
	}
	// Longest label first so "Sample Answer" wins over "Answer".
	sortByLengthDesc(labels)
	return regexp.MustCompile(`(?i)^(?:\*\*)?\s*(` + strings.Join(labels, "|") + `)\s*:(?:\*\*)?\s*(.*)$`)
}

func sortByLengthDesc(ss []string) {
	for i := 1; i < len(ss); i++ {
		for j := i; j > 0 && len(ss[j]) > len(ss[j-1]); j-- {
			ss[j], ss[j-1] = ss[j-1], ss[j]
		}
	}
}

// stripBold removes surrounding ** markers and trims whitespace.
func stripBold(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "**")
	s = strings.TrimSuffix(s, "**")
	return strings.TrimSpace(s)
}

// classifyLine assigns a line to exactly one kind. Precedence: blank,
// heading, item start, option, field label, plain text. Item starts are
// checked before headings would otherwise swallow bold item markers like
// "**Q1:** ...", because the bold-line heading form requires the whole line
// to be bold with no trailing text.
func classifyLine(line string, rules domainRules) lineClass {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return lineClass{kind: lineBlank}
	}

	if m := rules.itemRe.FindStringSubmatch(trimmed); m != nil {
		num, _ := strconv.Atoi(m[1])
		return lineClass{kind: lineItemStart, num: num, text: stripBold(m[2])}
	}

	if m := headingRe.FindStringSubmatch(trimmed); m != nil {
		return lineClass{kind: lineHeading, title: stripBold(m[2])}
	}
	if m := boldLineRe.FindStringSubmatch(trimmed); m != nil {
		// Fully bold line with an embedded field label is a field, not a
		// heading ("**Answer:** B" handled below).
		if fm := rules.fieldRe.FindStringSubmatch(trimmed); fm == nil {
			return lineClass{kind: lineHeading, title: strings.TrimSpace(m[1])}
		}
	}

	if rules.options {
		if m := optionRe.FindStringSubmatch(trimmed); m != nil {
			return lineClass{kind: lineOption, letter: m[1], text: strings.TrimSpace(m[2])}
		}
	}

	if m := rules.fieldRe.FindStringSubmatch(trimmed); m != nil {
		return lineClass{kind: lineField, field: rules.fields[strings.ToLower(m[1])], text: stripBold(m[2])}
	}

	return lineClass{kind: lineText, text: trimmed}
}

// foldSections is the shared heuristic scan: a fold over lines maintaining a
// current section and current question, with explicit flush on every
// transition and at end of input. A section is emitted only if it holds at
// least one question; a question is emitted if it has any text, options or
// fields. Field labels with no current question are silent no-ops.
func foldSections(raw string, rules domainRules, fallbackTitle string) []Section {
	var (
		out  []Section
		cur  *Section
		item *Question
	)

	flushItem := func() {
		if item == nil {
			return
		}
		if item.Text != "" || len(item.Options) > 0 || item.Answer != "" || item.Explanation != "" {
			if cur == nil {
				cur = &Section{Title: fallbackTitle, Icon: iconFor(fallbackTitle)}
			}
			cur.Questions = append(cur.Questions, *item)
		}
		item = nil
	}
	flushSection := func() {
		flushItem()
		if cur != nil && len(cur.Questions) > 0 {
			out = append(out, *cur)
		}
		cur = nil
	}

	for _, line := range strings.Split(raw, "\n") {
		lc := classifyLine(line, rules)
		switch lc.kind {
		case lineBlank:
			// ignored

		case lineHeading:
			flushSection()
			cur = &Section{Title: lc.title, Icon: iconFor(lc.title)}

		case lineItemStart:
			flushItem()
			if cur == nil {
				cur = &Section{Title: fallbackTitle, Icon: iconFor(fallbackTitle)}
			}
			item = &Question{ID: lc.num, Text: lc.text}

		case lineOption:
			if item != nil {
				item.Options = append(item.Options, Option{Letter: lc.letter, Text: lc.text})
			}

		case lineField:
			if item == nil {
				continue
			}
			switch lc.field {
			case "answer":
				item.Answer = lc.text
			case "explanation":
				item.Explanation = lc.text
			}

		case lineText:
			if item != nil {
				if item.Text == "" {
					item.Text = lc.text
				} else {
					item.Text += " " + lc.text
				}
			}
		}
	}
	flushSection()
	return out
}
