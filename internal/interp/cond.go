// Condition evaluation: or/and splitting with short-circuit evaluation (or
// binds looser than and), then not-negation, then primitive comparisons.
package interp

import (
	"regexp"
	"strings"

	"github.com/sirbread/spellscript/internal/config"
	"github.com/sirbread/spellscript/internal/serr"
	"github.com/sirbread/spellscript/internal/value"
)

// splitWholeWord splits s on every whole-word, case-insensitive occurrence
// of word, trimming each resulting part.
func splitWholeWord(s, word string) []string {
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	parts := re.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

var notPrefixRe = regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(config.PhraseNot) + `\b\s*`)

// stripNotPrefix reports whether s begins with the whole word "not" and, if
// so, returns the remainder with that prefix removed. A variable named e.g.
// "note" must not be mistaken for the negation operator, so the match
// requires a word boundary rather than a bare substring check.
func stripNotPrefix(s string) (string, bool) {
	if !notPrefixRe.MatchString(s) {
		return "", false
	}
	return notPrefixRe.ReplaceAllString(s, ""), true
}

func (ip *Interpreter) evalCondition(raw string) (bool, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return false, serr.Syntax("empty condition")
	}

	if disjuncts := splitWholeWord(s, config.PhraseOr); len(disjuncts) > 1 {
		for _, d := range disjuncts {
			truth, err := ip.evalCondition(d)
			if err != nil {
				return false, err
			}
			if truth {
				return true, nil
			}
		}
		return false, nil
	}

	if conjuncts := splitWholeWord(s, config.PhraseCondAnd); len(conjuncts) > 1 {
		for _, c := range conjuncts {
			truth, err := ip.evalCondition(c)
			if err != nil {
				return false, err
			}
			if !truth {
				return false, nil
			}
		}
		return true, nil
	}

	return ip.evalPrimitiveCondition(s)
}

func (ip *Interpreter) evalPrimitiveCondition(s string) (bool, error) {
	if rest, ok := stripNotPrefix(s); ok {
		truth, err := ip.evalCondition(rest)
		if err != nil {
			return false, err
		}
		return !truth, nil
	}

	if before, after, ok := splitOnPhrase(s, config.PhraseEquals); ok {
		a, err := ip.evalExpr(before)
		if err != nil {
			return false, err
		}
		b, err := ip.evalExpr(after)
		if err != nil {
			return false, err
		}
		return value.Equal(a, b), nil
	}

	if before, after, ok := splitOnPhrase(s, config.PhraseGreaterThan); ok {
		return ip.compareNumeric(before, after, func(a, b float64) bool { return a > b })
	}

	if before, after, ok := splitOnPhrase(s, config.PhraseLessThan); ok {
		return ip.compareNumeric(before, after, func(a, b float64) bool { return a < b })
	}

	if strings.EqualFold(s, config.PhraseTruth) {
		return true, nil
	}
	if strings.EqualFold(s, config.PhraseFalsehood) {
		return false, nil
	}

	v, err := ip.evalExpr(s)
	if err != nil {
		return false, err
	}
	return v.Truthy(), nil
}

func (ip *Interpreter) compareNumeric(beforeStr, afterStr string, cmp func(a, b float64) bool) (bool, error) {
	a, err := ip.evalExpr(beforeStr)
	if err != nil {
		return false, err
	}
	b, err := ip.evalExpr(afterStr)
	if err != nil {
		return false, err
	}
	af, aok := a.AsFloat()
	bf, bok := b.AsFloat()
	if !aok || !bok {
		return false, serr.Type("comparison requires numeric operands")
	}
	return cmp(af, bf), nil
}
