package interp

import (
	"strings"

	"github.com/sirbread/spellscript/internal/config"
	"github.com/sirbread/spellscript/internal/serr"
)

// collectBlock gathers statements from the current stream (spec §3's
// "enclosing stream") until a matching terminator is found at nesting depth
// zero. openerPrefix identifies a statement that opens a nested block of
// the SAME kind as the one being collected (so only same-kind nesting is
// depth-tracked; a different kind of block nested inside passes through as
// ordinary body text, per §4.4's note and §9's open question). The matching
// terminator statement itself is consumed but not included in the returned
// body.
func (ip *Interpreter) collectBlock(openerPrefix, terminator string) ([]string, error) {
	depth := 0
	var body []string
	for {
		stmt, ok := ip.nextStatement()
		if !ok {
			return nil, serr.Syntax("missing terminator %q", terminator)
		}
		stripped := stripTerminator(stmt)
		lower := strings.ToLower(stripped)

		if hasPrefixPhrase(lower, openerPrefix) && containsPhrase(lower, config.PhraseToBegin) {
			depth++
			body = append(body, stmt)
			continue
		}
		if lower == terminator {
			if depth > 0 {
				depth--
				body = append(body, stmt)
				continue
			}
			return body, nil
		}
		body = append(body, stmt)
	}
}
