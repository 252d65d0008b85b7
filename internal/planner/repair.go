// Package planner recovers chapter-split suggestions from generative
// responses that are supposed to be a JSON array but routinely arrive with
// formatting noise: markdown fences, trailing commas, bare keys, single
// quotes, stray quotes inside values.
//
// The textual repairs here are a best-effort pre-processor, not a JSON
// grammar fixer. Known failure modes: quoting a "bare key" that is really
// prose containing a colon, and escaping a legitimate quote whose follower
// happens to look like a value boundary. Total failure still yields a
// well-typed fallback, never an error.
package planner

import (
	"regexp"
	"strings"
)

var (
	fenceRe       = regexp.MustCompile("(?m)^\\s*```(?:json)?\\s*$")
	inlineFenceRe = regexp.MustCompile("```(?:json)?")
	arrayLazyRe   = regexp.MustCompile(`(?s)\[.*?\]`)
	trailingComma = regexp.MustCompile(`,\s*([\]}])`)
	bareKeyRe     = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
)

// stripFences removes markdown code-fence markers, both on their own lines
// and inline.
func stripFences(s string) string {
	s = fenceRe.ReplaceAllString(s, "")
	return inlineFenceRe.ReplaceAllString(s, "")
}

// locateArray returns candidate JSON-array substrings in preference order:
// the first non-greedy bracket match, then the span between the first '['
// and the last ']'.
func locateArray(s string) []string {
	var out []string
	if m := arrayLazyRe.FindString(s); m != "" {
		out = append(out, m)
	}
	first := strings.Index(s, "[")
	last := strings.LastIndex(s, "]")
	if first >= 0 && last > first {
		outer := s[first : last+1]
		if len(out) == 0 || outer != out[0] {
			out = append(out, outer)
		}
	}
	return out
}

// repair applies the fixed, ordered sequence of textual fixes. The order
// matters: commas first, then quote escaping, then key quoting, then quote
// conversion, then a final re-trim to the outermost bracket pair.
func repair(s string) string {
	s = trailingComma.ReplaceAllString(s, "$1")
	s = escapeStrayQuotes(s)
	s = bareKeyRe.ReplaceAllString(s, `$1"$2":`)
	s = strings.ReplaceAll(s, "'", `"`)

	first := strings.Index(s, "[")
	last := strings.LastIndex(s, "]")
	if first >= 0 && last > first {
		s = s[first : last+1]
	}
	return strings.TrimSpace(s)
}

// escapeStrayQuotes escapes double quotes that appear inside a string value
// without terminating it. A closing quote is recognized by its next
// non-space character being a structural one (comma, colon, brace, bracket,
// or end of input); anything else is treated as a stray quote and escaped.
func escapeStrayQuotes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	rs := []rune(s)
	in := false
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r == '\\' && i+1 < len(rs) {
			b.WriteRune(r)
			i++
			b.WriteRune(rs[i])
			continue
		}
		if r != '"' {
			b.WriteRune(r)
			continue
		}
		if !in {
			in = true
			b.WriteRune(r)
			continue
		}
		j := i + 1
		for j < len(rs) && (rs[j] == ' ' || rs[j] == '\t' || rs[j] == '\n' || rs[j] == '\r') {
			j++
		}
		if j >= len(rs) {
			in = false
			b.WriteRune(r)
			continue
		}
		switch rs[j] {
		case ',', ':', '}', ']':
			in = false
			b.WriteRune(r)
		default:
			b.WriteString(`\"`)
		}
	}
	return b.String()
}
