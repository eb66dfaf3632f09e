// Package env holds SpellScript's single global variable environment, its
// subroutine table, and its execution context stack. There is
// deliberately no lexical environment chain here (spec §9 "Implementers must
// not attempt to build a lexical environment chain"): one flat map, shadowed
// and restored around calls, is the entire scoping model.
package env

import (
	"github.com/sirbread/spellscript/internal/serr"
	"github.com/sirbread/spellscript/internal/value"
)

// Subroutine is the stored shape of a ritual definition.
type Subroutine struct {
	Params []string
	Body   []string
}

// Context is a pushed execution frame for a nested block: a loop body, a
// traversal body, or a subroutine body. The dispatcher and block
// collector consult the top of the context stack when present, otherwise the
// program driver's own top-level cursor.
type Context struct {
	Body   []string
	Cursor int
}

// Env is the process-wide interpreter state: variable bindings, the
// subroutine table, and the context stack.
type Env struct {
	vars        map[string]value.Value
	subroutines map[string]*Subroutine
	stack       []*Context
}

// New returns an empty environment.
func New() *Env {
	return &Env{
		vars:        make(map[string]value.Value),
		subroutines: make(map[string]*Subroutine),
	}
}

// Get reads a bound variable. Returns NameError if unbound.
func (e *Env) Get(name string) (value.Value, error) {
	v, ok := e.vars[name]
	if !ok {
		return value.Value{}, serr.Name("unknown entity %s", name)
	}
	return v, nil
}

// Lookup reads a variable without signaling an error, reporting whether it
// is bound. Used by the expression evaluator's bare-name rule, which falls
// through to literal parsing when the name is unbound (spec §4.5 rule 8).
func (e *Env) Lookup(name string) (value.Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Bound reports whether name currently has a binding.
func (e *Env) Bound(name string) bool {
	_, ok := e.vars[name]
	return ok
}

// Set creates or overwrites a binding unconditionally (used by Summon, spec §4.3).
func (e *Env) Set(name string, v value.Value) {
	e.vars[name] = v
}

// Rebind requires the name already be bound, then overwrites it (used by
// Enchant, spec §4.3). Returns NameError if unbound.
func (e *Env) Rebind(name string, v value.Value) error {
	if !e.Bound(name) {
		return serr.Name("unknown entity %s", name)
	}
	e.vars[name] = v
	return nil
}

// Remove deletes a binding. Returns NameError if it was not bound (used by
// Banish, spec §4.3).
func (e *Env) Remove(name string) error {
	if !e.Bound(name) {
		return serr.Name("unknown entity %s", name)
	}
	delete(e.vars, name)
	return nil
}

// Save captures the current binding state of name for later restoration
// (spec §4.6 call protocol step 1, and the traversal item/index discipline
// of §4.4). The returned snapshot is opaque to callers other than Restore.
func (e *Env) Save(name string) Snapshot {
	v, ok := e.vars[name]
	return Snapshot{name: name, value: v, bound: ok}
}

// Snapshot is a captured prior binding state for one variable name.
type Snapshot struct {
	name  string
	value value.Value
	bound bool
}

// Restore puts name back into the state captured by Save: present with its
// prior value, or removed if it had none (spec §3 invariants, §4.6 step 7).
func (e *Env) Restore(s Snapshot) {
	if s.bound {
		e.vars[s.name] = s.value
	} else {
		delete(e.vars, s.name)
	}
}

// DefineSubroutine stores or replaces a ritual definition (spec §3: "A
// subroutine is defined once; redefinition replaces").
func (e *Env) DefineSubroutine(name string, sub *Subroutine) {
	e.subroutines[name] = sub
}

// Subroutine looks up a defined ritual. Returns NameError if undefined.
func (e *Env) Subroutine(name string) (*Subroutine, error) {
	sub, ok := e.subroutines[name]
	if !ok {
		return nil, serr.Name("unknown ritual %s", name)
	}
	return sub, nil
}

// PushContext pushes a new execution frame onto the context stack (spec §3,
// §4.6 step 3).
func (e *Env) PushContext(c *Context) {
	e.stack = append(e.stack, c)
}

// PopContext pops the top execution frame (spec §4.6 step 5). It is a
// programming error to call this on an empty stack; callers must pair every
// Push with exactly one Pop on every exit path (spec §3 invariants).
func (e *Env) PopContext() {
	e.stack = e.stack[:len(e.stack)-1]
}

// TopContext returns the top-of-stack context, or nil when the stack is
// empty (meaning the program driver's own top-level cursor is authoritative,
// spec §3).
func (e *Env) TopContext() *Context {
	if len(e.stack) == 0 {
		return nil
	}
	return e.stack[len(e.stack)-1]
}

// StackDepth reports the number of pushed contexts; used by tests asserting
// the context-stack-balance invariant.
func (e *Env) StackDepth() int {
	return len(e.stack)
}
