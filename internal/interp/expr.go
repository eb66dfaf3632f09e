// Expression evaluation: twelve ordered phrase-matching rules, checked
// top-down against the whole expression text. The first rule whose phrase
// is present wins; there is no operator precedence, so reimplementations
// must preserve this exact order or the set of programs that parse changes.
package interp

import (
	"math/big"
	"strings"

	"github.com/sirbread/spellscript/internal/config"
	"github.com/sirbread/spellscript/internal/numparse"
	"github.com/sirbread/spellscript/internal/serr"
	"github.com/sirbread/spellscript/internal/value"
)

type arithOp struct {
	phrase string
	pos    int
}

var arithPhrases = []string{
	config.PhraseMultipliedBy,
	config.PhraseDividedBy,
	config.PhraseGreaterBy,
	config.PhraseLesserBy,
}

func (ip *Interpreter) evalExpr(raw string) (value.Value, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return value.NewText(""), nil
	}

	// Rule 1: collection holding <a> and <b> and …
	if hasPrefixPhrase(s, config.PhraseCollectionHolding) {
		_, rest, _ := splitOnPhrase(s, config.PhraseCollectionHolding)
		parts := splitTopLevelAnd(rest)
		elems := make([]value.Value, 0, len(parts))
		for _, p := range parts {
			v, err := ip.evalExpr(p)
			if err != nil {
				return value.Value{}, err
			}
			elems = append(elems, v)
		}
		return value.NewList(elems), nil
	}

	// Rule 2: <a> bound with <b> [bound with <c> …]
	if before, after, ok := splitOnPhrase(s, config.PhraseBoundWith); ok {
		left, err := ip.evalExpr(before)
		if err != nil {
			return value.Value{}, err
		}
		right, err := ip.evalExpr(after)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewText(left.String() + right.String()), nil
	}

	// Rule 3: <name> at position <idx-expr>
	if before, after, ok := splitOnPhrase(s, config.PhraseAtPosition); ok {
		listVal, err := ip.evalExpr(before)
		if err != nil {
			return value.Value{}, err
		}
		if listVal.Kind != value.KindList {
			return value.Value{}, serr.Type("%s is not a collection", strings.TrimSpace(before))
		}
		idxVal, err := ip.evalExpr(after)
		if err != nil {
			return value.Value{}, err
		}
		idx, err := requireIndex(idxVal)
		if err != nil {
			return value.Value{}, err
		}
		elems := *listVal.List
		if idx < 0 || idx >= len(elems) {
			return value.Value{}, serr.Index("index %d out of range [0, %d)", idx, len(elems))
		}
		return elems[idx], nil
	}

	// Rule 4: length of <name>
	if hasPrefixPhrase(s, config.PhraseLengthOf) {
		_, rest, _ := splitOnPhrase(s, config.PhraseLengthOf)
		v, err := ip.evalExpr(rest)
		if err != nil {
			return value.Value{}, err
		}
		if v.Kind != value.KindList {
			return value.Value{}, serr.Type("%s is not a collection", strings.TrimSpace(rest))
		}
		return value.NewIntegerFromInt64(int64(len(*v.List))), nil
	}

	// Rule 5: through ritual <name> [with <args>]
	if hasPrefixPhrase(s, config.PhraseThroughRitual) {
		_, rest, _ := splitOnPhrase(s, config.PhraseThroughRitual)
		return ip.evalThroughRitualCall(rest)
	}

	// Rule 6: invoke the ritual <name> [with <args>] — textual substitution.
	if hasPrefixPhrase(s, config.PhraseInvokeRitual) {
		_, rest, _ := splitOnPhrase(s, config.PhraseInvokeRitual)
		name, argsStr := splitRitualNameArgs(rest)
		args, err := ip.parseCallArgs(argsStr)
		if err != nil {
			return value.Value{}, err
		}
		v, err := ip.callSubroutine(name, args)
		if err != nil {
			return value.Value{}, err
		}
		return ip.evalExpr(v.String())
	}

	// Rule 7: binary arithmetic, leftmost operator phrase wins.
	if op, found := findLeftmostArithOp(s); found {
		before, after, _ := splitOnPhrase(s, op.phrase)
		left, err := ip.evalExpr(before)
		if err != nil {
			return value.Value{}, err
		}
		right, err := ip.evalExpr(after)
		if err != nil {
			return value.Value{}, err
		}
		return applyArith(op.phrase, left, right)
	}

	// Rule 8: bare name → current binding, falling through on unbound.
	if isBareName(s) {
		if v, ok := ip.Env.Lookup(strings.TrimSpace(s)); ok {
			return v, nil
		}
	}

	// Rule 9: number literal.
	if v, err := numparse.Parse(s); err == nil {
		return v, nil
	}

	// Rule 10: truth / falsehood.
	if strings.EqualFold(s, config.PhraseTruth) {
		return value.NewTruth(true), nil
	}
	if strings.EqualFold(s, config.PhraseFalsehood) {
		return value.NewTruth(false), nil
	}

	// Rule 11: whispers of "<text>"
	if hasPrefixPhrase(s, config.PhraseWhispersOf) {
		if text, ok := extractQuoted(s); ok {
			return value.NewText(text), nil
		}
	}

	// Rule 12: raw string as text.
	return value.NewText(s), nil
}

func findLeftmostArithOp(s string) (arithOp, bool) {
	lower := strings.ToLower(s)
	best := arithOp{pos: -1}
	for _, phrase := range arithPhrases {
		if idx := strings.Index(lower, strings.ToLower(phrase)); idx >= 0 {
			if best.pos == -1 || idx < best.pos {
				best = arithOp{phrase: phrase, pos: idx}
			}
		}
	}
	return best, best.pos >= 0
}

func applyArith(phrase string, left, right value.Value) (value.Value, error) {
	if !left.IsNumeric() || !right.IsNumeric() {
		return value.Value{}, serr.Type("arithmetic requires numeric operands")
	}

	bothInt := left.Kind == value.KindInteger && right.Kind == value.KindInteger

	switch phrase {
	case config.PhraseMultipliedBy:
		if bothInt {
			return value.NewInteger(new(big.Int).Mul(left.Integer, right.Integer)), nil
		}
		lf, _ := left.AsFloat()
		rf, _ := right.AsFloat()
		return value.NewFloating(lf * rf), nil

	case config.PhraseDividedBy:
		if bothInt {
			if right.Integer.Sign() == 0 {
				return value.Value{}, serr.ZeroDivision("division by zero")
			}
			q, r := new(big.Int), new(big.Int)
			q.QuoRem(left.Integer, right.Integer, r)
			if r.Sign() == 0 {
				return value.NewInteger(q), nil
			}
			lf, _ := left.AsFloat()
			rf, _ := right.AsFloat()
			return value.NewFloating(lf / rf), nil
		}
		rf, _ := right.AsFloat()
		if rf == 0 {
			return value.Value{}, serr.ZeroDivision("division by zero")
		}
		lf, _ := left.AsFloat()
		return value.NewFloating(lf / rf), nil

	case config.PhraseGreaterBy:
		if bothInt {
			return value.NewInteger(new(big.Int).Add(left.Integer, right.Integer)), nil
		}
		lf, _ := left.AsFloat()
		rf, _ := right.AsFloat()
		return value.NewFloating(lf + rf), nil

	case config.PhraseLesserBy:
		if bothInt {
			return value.NewInteger(new(big.Int).Sub(left.Integer, right.Integer)), nil
		}
		lf, _ := left.AsFloat()
		rf, _ := right.AsFloat()
		return value.NewFloating(lf - rf), nil
	}

	return value.Value{}, serr.Syntax("unknown operator %s", phrase)
}
