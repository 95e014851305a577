package llm

import (
	"regexp"
	"strings"
)

var reCodeFence = regexp.MustCompile("```+[a-zA-Z]*")

// Normalize strips formatting noise from generated text and isolates the JSON
// payload: code-fence markers are removed, only the outermost {...} span is
// retained, newlines and tabs collapse to spaces, trailing commas before
// closing braces/brackets are dropped, and whitespace around structural
// punctuation is trimmed. Best effort only; the output is not guaranteed to
// be valid JSON. Idempotent: normalizing normalized text is a no-op.
func Normalize(raw string) string {
	s := reCodeFence.ReplaceAllString(raw, "")
	s = isolateObject(s)
	s = sanitizeStructure(s)
	return strings.TrimSpace(s)
}

// isolateObject keeps only the first-{ to last-} span when one exists.
func isolateObject(s string) string {
	start := strings.Index(s, "{")
	if start < 0 {
		return s
	}
	end := strings.LastIndex(s, "}")
	if end <= start {
		return s
	}
	return s[start : end+1]
}

// sanitizeStructure rewrites whitespace and trailing commas outside string
// literals. String contents are copied verbatim so values like addresses or
// timestamps are never mangled.
func sanitizeStructure(s string) string {
	b := make([]byte, 0, len(s))
	inString := false
	escaped := false

	isPunct := func(c byte) bool {
		switch c {
		case '{', '}', '[', ']', ':', ',':
			return true
		}
		return false
	}
	trimTrailingSpace := func() {
		for len(b) > 0 && b[len(b)-1] == ' ' {
			b = b[:len(b)-1]
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			b = append(b, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
			b = append(b, c)
		case ' ', '\t', '\n', '\r':
			// collapse runs; never emit a space next to punctuation
			if len(b) > 0 && b[len(b)-1] != ' ' && !isPunct(b[len(b)-1]) {
				b = append(b, ' ')
			}
		case '}', ']':
			trimTrailingSpace()
			if len(b) > 0 && b[len(b)-1] == ',' {
				b = b[:len(b)-1]
			}
			b = append(b, c)
		case '{', '[', ':', ',':
			trimTrailingSpace()
			b = append(b, c)
		default:
			b = append(b, c)
		}
	}
	return string(b)
}
