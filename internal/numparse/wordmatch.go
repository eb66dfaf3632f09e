package numparse

import (
	"strings"
	"unicode"
)

// hasWholeWordPoint reports whether s contains the word "point" as a whole
// word, case-insensitive, matching spec §4.5 rule 9 ("optionally containing
// the word 'point' as the decimal mark").
func hasWholeWordPoint(s string) bool {
	return findWholeWord(s, "point") >= 0
}

// replaceWholeWordPoint substitutes the first whole-word occurrence of
// "point" with '.', so "3 point 5" becomes "3.5": the text on either side is
// trimmed and the two are joined with '.', per the number literal's surface form.
func replaceWholeWordPoint(s string) string {
	idx := findWholeWord(s, "point")
	if idx < 0 {
		return s
	}
	before := strings.TrimSpace(s[:idx])
	after := strings.TrimSpace(s[idx+len("point"):])
	return before + "." + after
}

// findWholeWord returns the byte index of the first case-insensitive,
// whole-word occurrence of word in s, or -1 if absent.
func findWholeWord(s, word string) int {
	lower := strings.ToLower(s)
	target := strings.ToLower(word)
	start := 0
	for {
		idx := strings.Index(lower[start:], target)
		if idx < 0 {
			return -1
		}
		abs := start + idx
		beforeOK := abs == 0 || !isWordChar(rune(lower[abs-1]))
		afterPos := abs + len(target)
		afterOK := afterPos >= len(lower) || !isWordChar(rune(lower[afterPos]))
		if beforeOK && afterOK {
			return abs
		}
		start = abs + 1
	}
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
