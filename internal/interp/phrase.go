package interp

import (
	"regexp"
	"strings"

	"github.com/sirbread/spellscript/internal/config"
)

// containsPhrase reports whether s contains phrase, case-insensitively.
func containsPhrase(s, phrase string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(phrase))
}

// hasPrefixPhrase reports whether s starts with phrase, case-insensitively.
func hasPrefixPhrase(s, phrase string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), strings.ToLower(phrase))
}

// firstWord returns the lowercase first whitespace-delimited word of s.
func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// stripTerminator removes one trailing '.' or ':' from s, per spec §4.2
// ("strip any trailing period or colon, then examine").
func stripTerminator(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 0 && (s[len(s)-1] == '.' || s[len(s)-1] == ':') {
		return strings.TrimSpace(s[:len(s)-1])
	}
	return s
}

// splitOnPhrase splits s on the first case-insensitive occurrence of phrase,
// returning the text before and after it. ok is false if phrase is absent.
func splitOnPhrase(s, phrase string) (before, after string, ok bool) {
	lower := strings.ToLower(s)
	idx := strings.Index(lower, strings.ToLower(phrase))
	if idx < 0 {
		return "", "", false
	}
	return s[:idx], s[idx+len(phrase):], true
}

// splitOnLastPhrase splits s on the LAST case-insensitive occurrence of
// phrase. Used for markers like " with " that may also appear earlier in a
// name or expression fragment.
func splitOnLastPhrase(s, phrase string) (before, after string, ok bool) {
	lower := strings.ToLower(s)
	idx := strings.LastIndex(lower, strings.ToLower(phrase))
	if idx < 0 {
		return "", "", false
	}
	return s[:idx], s[idx+len(phrase):], true
}

var wholeWordIsRe = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(config.PhraseFillerIs) + `\b`)

// stripFillerIs removes every whole-word occurrence of "is" from cond,
// including within quoted text, per the conditional handler's literal
// filler-word stripping (spec §4.4, §9 open question — the corrupting
// behavior on quoted text is intentionally preserved to match the
// reference's literal output).
func stripFillerIs(cond string) string {
	return strings.Join(strings.Fields(wholeWordIsRe.ReplaceAllString(cond, " ")), " ")
}

// extractQuoted returns the content of the first "..." quoted span in s, and
// whether one was found.
func extractQuoted(s string) (string, bool) {
	start := strings.IndexByte(s, '"')
	if start < 0 {
		return "", false
	}
	end := strings.IndexByte(s[start+1:], '"')
	if end < 0 {
		return "", false
	}
	return s[start+1 : start+1+end], true
}

// isBareName reports whether s is a single identifier token with no
// surrounding phrase content: used to decide whether a subroutine-call
// argument should be recorded for write-back.
func isBareName(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	fields := strings.Fields(s)
	return len(fields) == 1 && isIdentifier(fields[0])
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			continue
		}
		if i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}

// splitTopLevelAnd splits an argument/list text on the word "and", treating
// "and through" as a single token so a subsequent subroutine-call element
// ("... and through ritual foo") is not mistaken for a list separator
// (spec §4.5 rule 1, rule 5).
func splitTopLevelAnd(s string) []string {
	// Protect "and through" from being treated as a splitting "and" by
	// temporarily replacing it with a sentinel in which "and" never stands
	// as a whole word.
	const sentinel = "\x00AND_THROUGH\x00"
	andThroughRe := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(config.PhraseAndThrough) + `\b`)
	andRe := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(config.PhraseAnd) + `\b`)

	protected := andThroughRe.ReplaceAllString(s, sentinel+" through")
	parts := andRe.Split(protected, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ReplaceAll(p, sentinel, config.PhraseAnd)
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
