// Package value implements SpellScript's tagged value model: a sum
// type over six variants with a single default text-rendering rule.
// Each variant is a plain Go field selected by a Kind tag, with one
// text-rendering method per Value rather than an interface method per
// operation.
package value

import (
	"fmt"
	"math/big"
	"strings"
)

// Kind tags the variant a Value holds.
type Kind string

const (
	KindInteger  Kind = "INTEGER"
	KindFloating Kind = "FLOATING"
	KindText     Kind = "TEXT"
	KindTruth    Kind = "TRUTH"
	KindList     Kind = "LIST"
	KindAbsent   Kind = "ABSENT"
)

// Value is SpellScript's dynamic runtime value. Exactly one of the typed
// fields is meaningful, selected by Kind. List is held behind a pointer so
// that binding it under a second name produces an alias: writes
// through either name mutate the same backing slice.
type Value struct {
	Kind     Kind
	Integer  *big.Int
	Floating float64
	Text     string
	Truth    bool
	List     *[]Value
}

// Absent is the uninitialized value.
var Absent = Value{Kind: KindAbsent}

// NewInteger wraps an arbitrary-precision integer.
func NewInteger(i *big.Int) Value {
	return Value{Kind: KindInteger, Integer: i}
}

// NewIntegerFromInt64 is a convenience constructor for small literals.
func NewIntegerFromInt64(i int64) Value {
	return Value{Kind: KindInteger, Integer: big.NewInt(i)}
}

// NewFloating wraps an IEEE 754 double.
func NewFloating(f float64) Value {
	return Value{Kind: KindFloating, Floating: f}
}

// NewText wraps an immutable UTF-8 string.
func NewText(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// NewTruth wraps a boolean.
func NewTruth(b bool) Value {
	return Value{Kind: KindTruth, Truth: b}
}

// NewList wraps a mutable, reference-semantic element sequence.
func NewList(elems []Value) Value {
	return Value{Kind: KindList, List: &elems}
}

// IsAbsent reports whether v is the uninitialized value.
func (v Value) IsAbsent() bool { return v.Kind == KindAbsent }

// IsNumeric reports whether v is Integer or Floating.
func (v Value) IsNumeric() bool { return v.Kind == KindInteger || v.Kind == KindFloating }

// Truthy applies the host's standard truthiness rule (spec §4.5 Transmute,
// §4.4 conditions): non-zero numbers, non-empty text, non-empty lists and
// Truth(true) are truthy; Absent and Truth(false) are not.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindTruth:
		return v.Truth
	case KindInteger:
		return v.Integer.Sign() != 0
	case KindFloating:
		return v.Floating != 0
	case KindText:
		return v.Text != ""
	case KindList:
		return len(*v.List) != 0
	case KindAbsent:
		return false
	}
	return false
}

// Text form rules (spec §6 "Default text form").
func (v Value) String() string {
	switch v.Kind {
	case KindInteger:
		return v.Integer.String()
	case KindFloating:
		return formatFloat(v.Floating)
	case KindText:
		return v.Text
	case KindTruth:
		if v.Truth {
			return "True"
		}
		return "False"
	case KindList:
		parts := make([]string, len(*v.List))
		for i, e := range *v.List {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindAbsent:
		return "None"
	}
	return ""
}

// formatFloat renders enough digits to round-trip, the host's default
// floating-point text form.
func formatFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}

// Equal implements the condition evaluator's "equals" comparison.
// Numeric variants compare by value across Integer/Floating; other variants
// compare only against their own kind.
func Equal(a, b Value) bool {
	if a.IsNumeric() && b.IsNumeric() {
		af, aok := a.AsFloat()
		bf, bok := b.AsFloat()
		if aok && bok {
			return af == bf
		}
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindInteger:
		return a.Integer.Cmp(b.Integer) == 0
	case KindFloating:
		return a.Floating == b.Floating
	case KindText:
		return a.Text == b.Text
	case KindTruth:
		return a.Truth == b.Truth
	case KindAbsent:
		return true
	case KindList:
		if len(*a.List) != len(*b.List) {
			return false
		}
		for i := range *a.List {
			if !Equal((*a.List)[i], (*b.List)[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// AsFloat converts a numeric Value to float64 for comparison/arithmetic
// staging; ok is false for non-numeric variants.
func (v Value) AsFloat() (float64, bool) {
	switch v.Kind {
	case KindInteger:
		f := new(big.Float).SetInt(v.Integer)
		out, _ := f.Float64()
		return out, true
	case KindFloating:
		return v.Floating, true
	}
	return 0, false
}
