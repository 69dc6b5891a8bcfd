package input

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SequenceDetector watches typed characters for registered words.
// Only the last N characters are kept, N being the longest word.
type SequenceDetector struct {
	buf     []rune
	maxLen  int
	actions map[string]Action
}

// NewSequenceDetector creates a detector for the given word → action table.
// Words are matched case-insensitively.
func NewSequenceDetector(words map[string]Action) *SequenceDetector {
	d := &SequenceDetector{actions: make(map[string]Action, len(words))}
	for w, a := range words {
		w = strings.ToLower(w)
		if w == "" {
			continue
		}
		d.actions[w] = a
		if n := utf8.RuneCountInString(w); n > d.maxLen {
			d.maxLen = n
		}
	}
	return d
}

// Feed adds a character and returns the action of a word that just completed.
func (d *SequenceDetector) Feed(r rune) (Action, bool) {
	if d.maxLen == 0 || !unicode.IsPrint(r) {
		return "", false
	}
	d.buf = append(d.buf, unicode.ToLower(r))
	if len(d.buf) > d.maxLen {
		d.buf = d.buf[len(d.buf)-d.maxLen:]
	}

	typed := string(d.buf)
	for w, a := range d.actions {
		if strings.HasSuffix(typed, w) {
			d.buf = d.buf[:0]
			return a, true
		}
	}
	return "", false
}

// Buffer returns the characters currently kept.
func (d *SequenceDetector) Buffer() string {
	return string(d.buf)
}
