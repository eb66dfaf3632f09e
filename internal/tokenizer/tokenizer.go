// Package tokenizer splits spell source text into an ordered list of
// statement strings. Rather than producing a character-level token stream
// for a grammar-driven parser, it produces whole statement substrings that
// the evaluator later matches against fixed phrases.
package tokenizer

import (
	"strings"

	"github.com/sirbread/spellscript/internal/config"
	"github.com/sirbread/spellscript/internal/serr"
)

// Tokenize splits source into statement strings. A statement is any maximal
// run of characters not containing an unquoted period or colon, followed by
// the terminating period or colon; the terminator is retained on the
// statement. Quoted substrings (opened and closed by '"') suppress
// terminator recognition inside them. Whitespace around each produced
// statement is trimmed and empty statements are discarded.
func Tokenize(source string) ([]string, error) {
	var statements []string
	var body strings.Builder
	inQuote := false

	for i := 0; i < len(source); i++ {
		ch := source[i]

		if ch == config.QuoteChar {
			inQuote = !inQuote
			body.WriteByte(ch)
			continue
		}
		if inQuote {
			body.WriteByte(ch)
			continue
		}
		if ch == config.TerminatorPeriod || ch == config.TerminatorColon {
			trimmedBody := strings.TrimSpace(body.String())
			if trimmedBody != "" {
				statements = append(statements, trimmedBody+string(ch))
			}
			body.Reset()
			continue
		}
		body.WriteByte(ch)
	}

	// Any trailing, unterminated text is discarded once trimmed: the
	// reference grammar requires every statement to end in '.' or ':'.
	if len(statements) == 0 {
		return nil, serr.Syntax("empty spell")
	}
	return statements, nil
}
