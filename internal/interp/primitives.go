// Primitive statement handlers. Each parses its statement
// against a fixed surface pattern and signals SyntaxError with the canonical
// usage string on mismatch.
package interp

import (
	"strings"
	"time"

	"github.com/sirbread/spellscript/internal/numparse"
	"github.com/sirbread/spellscript/internal/serr"
	"github.com/sirbread/spellscript/internal/value"
)

const (
	usageSummon   = "use Summon the <name> [with essence of <expr>]"
	usageEnchant  = "use Enchant <name> with <expr>"
	usageAppend   = "use Append <expr> to <name>"
	usageBanish   = "use Banish the <name>"
	usageInquire  = `use Inquire whispers of "<prompt>" into <name>`
	usagePonder   = "use Ponder for <n> moments"
	usageGaze     = "use Gaze upon <condition>"
	usageTransmute = "use Transmute <name-or-expr> into number|text|truth"
)

// trimKeyword removes the leading keyword word from stmt, requiring a word
// boundary (i.e. exactly that word, not a prefix of some other word).
func trimKeyword(stmt, keyword string) (string, bool) {
	fields := strings.SplitN(strings.TrimSpace(stmt), " ", 2)
	if len(fields) == 0 || !strings.EqualFold(fields[0], keyword) {
		return "", false
	}
	if len(fields) == 1 {
		return "", true
	}
	return strings.TrimSpace(fields[1]), true
}

// execSummon: Summon the <name> [with essence of <expr>].
func (ip *Interpreter) execSummon(stmt string) error {
	rest, ok := trimKeyword(stmt, "summon")
	if !ok {
		return serr.Syntax(usageSummon)
	}
	rest, ok = trimKeyword(rest, "the")
	if !ok {
		return serr.Syntax(usageSummon)
	}

	namePart, exprPart, hasEssence := splitOnPhrase(rest, "with essence of")
	name := strings.TrimSpace(namePart)
	if !hasEssence {
		name = strings.TrimSpace(rest)
	}
	if !isIdentifier(name) {
		return serr.Syntax(usageSummon)
	}

	val := value.Absent
	if hasEssence {
		v, err := ip.evalExpr(exprPart)
		if err != nil {
			return err
		}
		val = v
	}
	ip.Env.Set(name, val)
	return nil
}

// execEnchant covers all three Enchant forms (spec §4.3 table).
func (ip *Interpreter) execEnchant(stmt string) error {
	rest, ok := trimKeyword(stmt, "enchant")
	if !ok {
		return serr.Syntax(usageEnchant)
	}

	if before, after, found := splitOnPhrase(rest, "at position"); found {
		name := strings.TrimSpace(before)
		idxExprStr, valExprStr, found2 := splitOnPhrase(after, "with")
		if !found2 {
			return serr.Syntax(usageEnchant)
		}
		return ip.enchantAtPosition(name, idxExprStr, valExprStr)
	}

	if before, after, found := splitOnPhrase(rest, "through ritual"); found {
		name := strings.TrimSpace(before)
		v, err := ip.evalThroughRitualCall(after)
		if err != nil {
			return err
		}
		return ip.Env.Rebind(name, v)
	}

	before, after, found := splitOnPhrase(rest, "with")
	if !found {
		return serr.Syntax(usageEnchant)
	}
	name := strings.TrimSpace(before)
	v, err := ip.evalExpr(after)
	if err != nil {
		return err
	}
	return ip.Env.Rebind(name, v)
}

func (ip *Interpreter) enchantAtPosition(name, idxExprStr, valExprStr string) error {
	listVal, err := ip.Env.Get(name)
	if err != nil {
		return err
	}
	if listVal.Kind != value.KindList {
		return serr.Type("%s is not a collection", name)
	}
	idxVal, err := ip.evalExpr(idxExprStr)
	if err != nil {
		return err
	}
	idx, err := requireIndex(idxVal)
	if err != nil {
		return err
	}
	elems := *listVal.List
	if idx < 0 || idx >= len(elems) {
		return serr.Index("index %d out of range [0, %d)", idx, len(elems))
	}
	newVal, err := ip.evalExpr(valExprStr)
	if err != nil {
		return err
	}
	elems[idx] = newVal
	return nil
}

// requireIndex validates a list-index Value (spec §4.5 rule 3).
func requireIndex(v value.Value) (int, error) {
	if v.Kind != value.KindInteger {
		return 0, serr.Type("index must be an integer")
	}
	if !v.Integer.IsInt64() {
		return 0, serr.Index("index out of range")
	}
	return int(v.Integer.Int64()), nil
}

// execAppend: Append <expr> to <name>.
func (ip *Interpreter) execAppend(stmt string) error {
	rest, ok := trimKeyword(stmt, "append")
	if !ok {
		return serr.Syntax(usageAppend)
	}
	before, after, found := splitOnLastPhrase(rest, " to ")
	if !found {
		return serr.Syntax(usageAppend)
	}
	name := strings.TrimSpace(after)
	listVal, err := ip.Env.Get(name)
	if err != nil {
		return err
	}
	if listVal.Kind != value.KindList {
		return serr.Type("%s is not a collection", name)
	}
	v, err := ip.evalExpr(before)
	if err != nil {
		return err
	}
	*listVal.List = append(*listVal.List, v)
	return nil
}

// execBanish: Banish the <name>.
func (ip *Interpreter) execBanish(stmt string) error {
	rest, ok := trimKeyword(stmt, "banish")
	if !ok {
		return serr.Syntax(usageBanish)
	}
	name, ok := trimKeyword(rest, "the")
	if !ok {
		return serr.Syntax(usageBanish)
	}
	if !isIdentifier(name) {
		return serr.Syntax(usageBanish)
	}
	return ip.Env.Remove(name)
}

// execInscribe: Inscribe whispers of "<text>" | Inscribe <expr>.
func (ip *Interpreter) execInscribe(stmt string) error {
	rest, ok := trimKeyword(stmt, "inscribe")
	if !ok {
		return serr.Syntax("use Inscribe <expr>")
	}
	if hasPrefixPhrase(rest, "whispers of") {
		if text, found := extractQuoted(rest); found {
			ip.Host.PrintLine(text)
			return nil
		}
	}
	v, err := ip.evalExpr(rest)
	if err != nil {
		// Inscribe swallows evaluator errors and prints the raw
		// remainder unchanged (spec §4.3, §9 open question).
		ip.Host.PrintLine(rest)
		return nil
	}
	ip.Host.PrintLine(v.String())
	return nil
}

// execInquire: Inquire whispers of "<prompt>" into <name>.
func (ip *Interpreter) execInquire(stmt string) error {
	rest, ok := trimKeyword(stmt, "inquire")
	if !ok {
		return serr.Syntax(usageInquire)
	}
	if !hasPrefixPhrase(rest, "whispers of") {
		return serr.Syntax(usageInquire)
	}
	prompt, found := extractQuoted(rest)
	if !found {
		return serr.Syntax(usageInquire)
	}
	_, after, found2 := splitOnPhrase(rest, "into")
	if !found2 {
		return serr.Syntax(usageInquire)
	}
	name := strings.TrimSpace(after)
	if !isIdentifier(name) {
		return serr.Syntax(usageInquire)
	}
	line, err := ip.Host.ReadLine(prompt)
	if err != nil {
		return err
	}
	ip.Env.Set(name, value.NewText(line))
	return nil
}

// execPonder: Ponder for <n> moments.
func (ip *Interpreter) execPonder(stmt string) error {
	rest, ok := trimKeyword(stmt, "ponder")
	if !ok {
		return serr.Syntax(usagePonder)
	}
	rest, ok = trimKeyword(rest, "for")
	if !ok {
		return serr.Syntax(usagePonder)
	}
	nStr, _, found := splitOnPhrase(rest, "moments")
	if !found {
		nStr = rest
	}
	n, err := numparse.Parse(strings.TrimSpace(nStr))
	if err != nil {
		return err
	}
	seconds, ok := n.AsFloat()
	if !ok {
		return serr.Value(usagePonder)
	}
	ip.Host.Sleep(time.Duration(seconds * float64(time.Second)))
	return nil
}

// execGaze: Gaze upon <condition>.
func (ip *Interpreter) execGaze(stmt string) error {
	rest, ok := trimKeyword(stmt, "gaze")
	if !ok {
		return serr.Syntax(usageGaze)
	}
	rest, ok = trimKeyword(rest, "upon")
	if !ok {
		return serr.Syntax(usageGaze)
	}
	truth, err := ip.evalCondition(rest)
	if err != nil {
		return err
	}
	ip.Host.PrintLine("Gazing reveals: " + value.NewTruth(truth).String())
	return nil
}

// execTransmute: Transmute <name-or-expr> into <type>.
func (ip *Interpreter) execTransmute(stmt string) error {
	rest, ok := trimKeyword(stmt, "transmute")
	if !ok {
		return serr.Syntax(usageTransmute)
	}
	before, after, found := splitOnLastPhrase(rest, "into")
	if !found {
		return serr.Syntax(usageTransmute)
	}
	source := strings.TrimSpace(before)
	kind := strings.ToLower(strings.TrimSpace(after))

	v, err := ip.evalExpr(source)
	if err != nil {
		return err
	}

	var coerced value.Value
	switch kind {
	case "number":
		coerced, err = numparse.Parse(v.String())
		if err != nil {
			return serr.Value("cannot transmute %q into a number", v.String())
		}
	case "text":
		coerced = value.NewText(v.String())
	case "truth":
		coerced = value.NewTruth(v.Truthy())
	default:
		return serr.Syntax(usageTransmute)
	}

	if isBareName(source) && ip.Env.Bound(source) {
		return ip.Env.Rebind(source, coerced)
	}
	return nil
}

// execReturn: Return <expr>.
func (ip *Interpreter) execReturn(stmt string) (value.Value, bool, error) {
	rest, ok := trimKeyword(stmt, "return")
	if !ok {
		return value.Absent, false, serr.Syntax("use Return <expr>")
	}
	v, err := ip.evalExpr(rest)
	if err != nil {
		return value.Value{}, false, err
	}
	return v, true, nil
}
