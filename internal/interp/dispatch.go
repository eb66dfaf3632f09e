package interp

import (
	"github.com/sirbread/spellscript/internal/config"
	"github.com/sirbread/spellscript/internal/serr"
	"github.com/sirbread/spellscript/internal/value"
)

// Dispatch strips the statement's trailing terminator and routes it to the
// appropriate handler. A handler may signal an early return,
// which Dispatch passes straight back up for the caller (runCurrent) to
// propagate toward the nearest subroutine invocation.
func (ip *Interpreter) Dispatch(raw string) (value.Value, bool, error) {
	stmt := stripTerminator(raw)
	if stmt == "" {
		return value.Absent, false, nil
	}

	switch {
	case containsPhrase(stmt, config.PhraseIfSigns):
		return ip.execConditional(stmt)
	case containsPhrase(stmt, config.PhraseRepeat):
		return ip.execCountedLoop(stmt)
	case firstWord(stmt) == config.KeywordTraverse:
		return ip.execTraversal(stmt)
	}

	switch firstWord(stmt) {
	case config.KeywordSummon:
		return value.Absent, false, ip.execSummon(stmt)
	case config.KeywordEnchant:
		return value.Absent, false, ip.execEnchant(stmt)
	case config.KeywordInscribe:
		return value.Absent, false, ip.execInscribe(stmt)
	case config.KeywordInquire:
		return value.Absent, false, ip.execInquire(stmt)
	case config.KeywordAppend:
		return value.Absent, false, ip.execAppend(stmt)
	case config.KeywordPonder:
		return value.Absent, false, ip.execPonder(stmt)
	case config.KeywordBanish:
		return value.Absent, false, ip.execBanish(stmt)
	case config.KeywordGaze:
		return value.Absent, false, ip.execGaze(stmt)
	case config.KeywordTransmute:
		return value.Absent, false, ip.execTransmute(stmt)
	case config.KeywordConjure:
		return value.Absent, false, ip.execConjure(stmt)
	case config.KeywordInvoke:
		_, err := ip.evalInvokeStatement(stmt)
		return value.Absent, false, err
	case config.KeywordReturn:
		return ip.execReturn(stmt)
	}

	return value.Absent, false, serr.Syntax("unknown incantation %s", firstWord(stmt))
}
