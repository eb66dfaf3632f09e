// Package serr defines SpellScript's typed error kinds. Every error is the
// same underlying Go type with a Kind tag, since there is no in-language
// exception handling: each error just needs to propagate to the single
// top-level handler and carry a message.
package serr

import "fmt"

// Kind names the contract, not a concrete Go type: useful for
// callers that want to branch on category (e.g. tests checking it with Is)
// without a type switch over every constructor.
type Kind string

const (
	KindSyntax        Kind = "SyntaxError"
	KindName          Kind = "NameError"
	KindType          Kind = "TypeError"
	KindIndex         Kind = "IndexError"
	KindValue         Kind = "ValueError"
	KindZeroDivision  Kind = "ZeroDivisionError"
)

// Error is the common shape of every SpellScript error kind.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func new_(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Syntax reports a SyntaxError: tokenizer malformation, missing brackets,
// unknown keyword, handler pattern mismatch, or empty block body.
func Syntax(format string, args ...any) *Error { return new_(KindSyntax, format, args...) }

// Name reports a NameError: read/rebind/banish of an unbound variable, or a
// call to an undefined subroutine.
func Name(format string, args ...any) *Error { return new_(KindName, format, args...) }

// Type reports a TypeError: an operand of the wrong kind.
func Type(format string, args ...any) *Error { return new_(KindType, format, args...) }

// Index reports an IndexError: a list index outside [0, length).
func Index(format string, args ...any) *Error { return new_(KindIndex, format, args...) }

// Value reports a ValueError: a failed Transmute coercion, a subroutine
// arity mismatch, or a malformed number literal.
func Value(format string, args ...any) *Error { return new_(KindValue, format, args...) }

// ZeroDivision reports division by zero.
func ZeroDivision(format string, args ...any) *Error { return new_(KindZeroDivision, format, args...) }

// Is reports whether err is a SpellScript error of the given kind.
func Is(err error, kind Kind) bool {
	se, ok := err.(*Error)
	return ok && se.Kind == kind
}
