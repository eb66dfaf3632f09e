// Control-flow handlers: conditional, counted loop (inline and
// block forms), and list traversal. All three may receive an early return
// from their body and must propagate it after popping any context they
// pushed (spec §3 invariants).
package interp

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sirbread/spellscript/internal/config"
	"github.com/sirbread/spellscript/internal/env"
	"github.com/sirbread/spellscript/internal/serr"
	"github.com/sirbread/spellscript/internal/value"
)

// execConditional: If the signs show <cond> then <stmt> [otherwise <stmt>].
func (ip *Interpreter) execConditional(stmt string) (value.Value, bool, error) {
	_, rest, ok := splitOnPhrase(stmt, config.PhraseIfSigns)
	if !ok {
		return value.Absent, false, serr.Syntax("use If the signs show <condition> then <statement> [otherwise <statement>]")
	}

	condPart, afterThen, ok := splitOnPhrase(rest, " "+config.PhraseThen+" ")
	if !ok {
		// Tolerate "then" with no surrounding space padding quirks.
		condPart, afterThen, ok = splitOnPhrase(rest, config.PhraseThen)
	}
	if !ok {
		return value.Absent, false, serr.Syntax("use If the signs show <condition> then <statement> [otherwise <statement>]")
	}

	consequent, alternate, hasAlternate := splitOnPhrase(afterThen, config.PhraseOtherwise)

	truth, err := ip.evalCondition(stripFillerIs(condPart))
	if err != nil {
		return value.Absent, false, err
	}

	if truth {
		return ip.execInlineStatement(consequent)
	}
	if hasAlternate {
		return ip.execInlineStatement(alternate)
	}
	return value.Absent, false, nil
}

// execInlineStatement dispatches a single statement fragment that did not
// come through the tokenizer with its own terminator (the consequent or
// alternate clause of a conditional).
func (ip *Interpreter) execInlineStatement(stmt string) (value.Value, bool, error) {
	stmt = strings.TrimSpace(stmt)
	if stmt == "" {
		return value.Absent, false, nil
	}
	return ip.Dispatch(stmt)
}

var repeatCountRe = regexp.MustCompile(`(?i)incantation\s+(\d+)\s+` + regexp.QuoteMeta(config.PhraseTimes))

// execCountedLoop: Repeat the incantation <N> times [do <inline-body>] …
// end loop.
func (ip *Interpreter) execCountedLoop(stmt string) (value.Value, bool, error) {
	m := repeatCountRe.FindStringSubmatch(stmt)
	if m == nil {
		return value.Absent, false, serr.Syntax("use Repeat the incantation <N> times ... end loop")
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return value.Absent, false, serr.Value("malformed loop count")
	}

	var body []string
	if _, doRemainder, ok := splitOnPhrase(stmt, " "+config.PhraseDo+" "); ok {
		doRemainder = strings.TrimSpace(doRemainder)
		if doRemainder != "" {
			for _, part := range strings.Split(doRemainder, ". ") {
				part = strings.TrimSpace(stripTerminator(part))
				if part != "" {
					body = append(body, part)
				}
			}
		}
	}

	collected, err := ip.collectBlock(config.PhraseRepeat, config.PhraseEndLoop)
	if err != nil {
		return value.Absent, false, err
	}
	body = append(body, collected...)

	if len(body) == 0 {
		return value.Absent, false, serr.Syntax("loop body must not be empty")
	}

	for i := 0; i < n; i++ {
		ip.Env.PushContext(&env.Context{Body: body})
		val, isReturn, err := ip.runCurrent()
		ip.Env.PopContext()
		if err != nil {
			return value.Absent, false, err
		}
		if isReturn {
			return val, true, nil
		}
	}
	return value.Absent, false, nil
}

var traverseRe = regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(config.KeywordTraverse) +
	`\s+(\S+)\s+` + regexp.QuoteMeta(config.PhraseWithEach) +
	`\s+(\S+)(?:\s+` + regexp.QuoteMeta(config.PhraseAtIndex) + `\s+(\S+))?\s+` +
	regexp.QuoteMeta(config.PhraseToBegin) + `$`)

// execTraversal: Traverse <list-name> with each <item> [at <index>] to
// begin: … end traverse.
func (ip *Interpreter) execTraversal(stmt string) (value.Value, bool, error) {
	m := traverseRe.FindStringSubmatch(strings.TrimSpace(stmt))
	if m == nil {
		return value.Absent, false, serr.Syntax("use Traverse <list> with each <item> [at <index>] to begin: ... end traverse")
	}
	listName, itemName, idxName := m[1], m[2], m[3]

	listVal, err := ip.Env.Get(listName)
	if err != nil {
		return value.Absent, false, err
	}
	if listVal.Kind != value.KindList {
		return value.Absent, false, serr.Type("%s is not a collection", listName)
	}

	body, err := ip.collectBlock(config.KeywordTraverse, config.PhraseEndTraverse)
	if err != nil {
		return value.Absent, false, err
	}

	itemSnapshot := ip.Env.Save(itemName)
	var idxSnapshot env.Snapshot
	if idxName != "" {
		idxSnapshot = ip.Env.Save(idxName)
	}

	defer func() {
		ip.Env.Restore(itemSnapshot)
		if idxName != "" {
			ip.Env.Restore(idxSnapshot)
		}
	}()

	elems := *listVal.List
	for i := 0; i < len(elems); i++ {
		ip.Env.Set(itemName, elems[i])
		if idxName != "" {
			ip.Env.Set(idxName, value.NewIntegerFromInt64(int64(i)))
		}

		ip.Env.PushContext(&env.Context{Body: body})
		val, isReturn, err := ip.runCurrent()
		ip.Env.PopContext()
		if err != nil {
			return value.Absent, false, err
		}
		if isReturn {
			return val, true, nil
		}
	}
	return value.Absent, false, nil
}
