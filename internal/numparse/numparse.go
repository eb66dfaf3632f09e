// Package numparse converts a surface word into a SpellScript numeric Value
// (spec §4.5 rule 9), honoring the literal word "point" as the decimal mark
// instead of '.', since '.' is already claimed by the tokenizer as a
// statement terminator.
package numparse

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/sirbread/spellscript/internal/serr"
	"github.com/sirbread/spellscript/internal/value"
)

// Parse converts s (already trimmed of surrounding whitespace by the caller)
// into an Integer or Floating Value. A literal containing the whole word
// "point" (case-insensitive) is parsed as a decimal number: the word is
// replaced with '.' and the result parsed as a float. Otherwise s is parsed
// as an arbitrary-precision integer literal. Returns an error when
// s is not a recognizable number (ValueError, spec §7).
func Parse(s string) (value.Value, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return value.Value{}, serr.Value("malformed number literal: %q", s)
	}

	if hasWholeWordPoint(trimmed) {
		decimalForm := replaceWholeWordPoint(trimmed)
		f, ok := parseFloat(decimalForm)
		if !ok {
			return value.Value{}, serr.Value("malformed number literal: %q", s)
		}
		return value.NewFloating(f), nil
	}

	i, ok := new(big.Int).SetString(trimmed, 10)
	if !ok {
		return value.Value{}, serr.Value("malformed number literal: %q", s)
	}
	return value.NewInteger(i), nil
}

// parseFloat is a small strconv.ParseFloat wrapper kept local so Parse's
// error path stays uniform (serr.Value) regardless of the underlying cause.
func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
