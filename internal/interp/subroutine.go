// Subroutine definition and invocation: the call protocol (save,
// bind, push, execute, pop, write-back, restore, return) is the sole
// mechanism SpellScript has for anything resembling scope, since there is no
// lexical environment chain.
package interp

import (
	"strings"

	"github.com/sirbread/spellscript/internal/config"
	"github.com/sirbread/spellscript/internal/env"
	"github.com/sirbread/spellscript/internal/serr"
	"github.com/sirbread/spellscript/internal/value"
)

const usageConjure = "use Conjure ritual named <name> with <params> to begin: ... end ritual"

// execConjure: Conjure ritual named <name> with <p1> and <p2> … to begin: …
// end ritual, or the inline one-statement form ending "to <body-statement>".
func (ip *Interpreter) execConjure(stmt string) error {
	_, rest, ok := splitOnPhrase(stmt, config.PhraseConjureRitualNamed)
	if !ok {
		return serr.Syntax(usageConjure)
	}
	rest = strings.TrimSpace(rest)
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return serr.Syntax(usageConjure)
	}
	name := fields[0]
	afterName := strings.TrimSpace(rest[len(name):])

	afterWith, ok := trimKeyword(afterName, config.PhraseWith)
	if !ok {
		return serr.Syntax(usageConjure)
	}

	lower := strings.ToLower(afterWith)
	if idx := strings.LastIndex(lower, config.PhraseToBegin); idx >= 0 && strings.TrimSpace(lower[idx:]) == config.PhraseToBegin {
		paramsStr := strings.TrimSpace(afterWith[:idx])
		body, err := ip.collectBlock(config.PhraseConjureRitualNamed, config.PhraseEndRitual)
		if err != nil {
			return err
		}
		ip.Env.DefineSubroutine(name, &env.Subroutine{Params: splitParams(paramsStr), Body: body})
		return nil
	}

	paramsStr, bodyStmt, ok := splitOnPhrase(afterWith, " to ")
	if !ok {
		return serr.Syntax(usageConjure)
	}
	bodyStmt = strings.TrimSpace(bodyStmt)
	if bodyStmt == "" {
		return serr.Syntax(usageConjure)
	}
	ip.Env.DefineSubroutine(name, &env.Subroutine{Params: splitParams(paramsStr), Body: []string{bodyStmt}})
	return nil
}

func splitParams(s string) []string {
	parts := splitTopLevelAnd(s)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// callArg is one evaluated call argument, with the caller's variable name
// recorded when the argument was exactly a bound name (spec §4.6
// write-back).
type callArg struct {
	value         value.Value
	writeBackName string
	hasWriteBack  bool
}

// parseCallArgs splits argsStr on "and" (spec §4.5 rule 1's splitter, shared
// here since argument lists use the same "and"-joined surface), evaluating
// each element and flagging bare bound-name arguments for write-back.
func (ip *Interpreter) parseCallArgs(argsStr string) ([]callArg, error) {
	argsStr = strings.TrimSpace(argsStr)
	if argsStr == "" {
		return nil, nil
	}
	parts := splitTopLevelAnd(argsStr)
	args := make([]callArg, 0, len(parts))
	for _, p := range parts {
		v, err := ip.evalExpr(p)
		if err != nil {
			return nil, err
		}
		a := callArg{value: v}
		if isBareName(p) && ip.Env.Bound(strings.TrimSpace(p)) {
			a.writeBackName = strings.TrimSpace(p)
			a.hasWriteBack = true
		}
		args = append(args, a)
	}
	return args, nil
}

// callSubroutine runs the eight-step call protocol of spec §4.6.
func (ip *Interpreter) callSubroutine(name string, args []callArg) (value.Value, error) {
	sub, err := ip.Env.Subroutine(name)
	if err != nil {
		return value.Value{}, err
	}
	if len(sub.Params) != len(args) {
		return value.Value{}, serr.Value("ritual %s expects %d argument(s), got %d", name, len(sub.Params), len(args))
	}

	// Steps 1-2: save then bind each parameter.
	snapshots := make([]env.Snapshot, len(sub.Params))
	for i, p := range sub.Params {
		snapshots[i] = ip.Env.Save(p)
		ip.Env.Set(p, args[i].value)
	}

	// Steps 3-5: push, execute, pop.
	ip.Env.PushContext(&env.Context{Body: sub.Body})
	retVal, _, callErr := ip.runCurrent()
	ip.Env.PopContext()

	// Step 6: write-back, using each parameter's final value, before it is
	// restored away in step 7.
	for i, p := range sub.Params {
		if args[i].hasWriteBack {
			if cur, ok := ip.Env.Lookup(p); ok {
				ip.Env.Set(args[i].writeBackName, cur)
			}
		}
	}

	// Step 7: restore.
	for _, s := range snapshots {
		ip.Env.Restore(s)
	}

	if callErr != nil {
		return value.Value{}, callErr
	}
	// Step 8: runCurrent already yields Absent when the body ran to
	// completion without a Return statement.
	return retVal, nil
}

// splitRitualNameArgs splits "<name> [with <args>]" into the ritual name and
// its raw argument text (empty if no "with" clause is present).
func splitRitualNameArgs(s string) (name, argsStr string) {
	s = strings.TrimSpace(s)
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", ""
	}
	name = fields[0]
	remainder := strings.TrimSpace(s[len(name):])
	if after, ok := trimKeyword(remainder, config.PhraseWith); ok {
		argsStr = after
	}
	return name, argsStr
}

// evalInvokeStatement handles the statement form "Invoke the ritual <name>
// [with <args>]", discarding its return value.
func (ip *Interpreter) evalInvokeStatement(stmt string) (value.Value, error) {
	_, rest, ok := splitOnPhrase(stmt, config.PhraseInvokeRitual)
	if !ok {
		return value.Value{}, serr.Syntax("use Invoke the ritual <name> [with <args>]")
	}
	name, argsStr := splitRitualNameArgs(rest)
	args, err := ip.parseCallArgs(argsStr)
	if err != nil {
		return value.Value{}, err
	}
	return ip.callSubroutine(name, args)
}

// evalThroughRitualCall handles "through ritual <name> [with <args>]" as
// used by the Enchant statement's call form and by the expression
// evaluator's rule 5.
func (ip *Interpreter) evalThroughRitualCall(rest string) (value.Value, error) {
	name, argsStr := splitRitualNameArgs(rest)
	args, err := ip.parseCallArgs(argsStr)
	if err != nil {
		return value.Value{}, err
	}
	return ip.callSubroutine(name, args)
}
