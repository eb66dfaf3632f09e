// Package interp implements SpellScript's tree-walking interpreter (spec §2,
// §4): statement tokenization is delegated to internal/tokenizer, while
// statement dispatch, the expression/condition evaluators, control flow,
// subroutine calls, and the program driver all live here, keeping lexing
// and evaluation in separate packages.
package interp

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sirbread/spellscript/internal/config"
	"github.com/sirbread/spellscript/internal/env"
	"github.com/sirbread/spellscript/internal/host"
	"github.com/sirbread/spellscript/internal/serr"
	"github.com/sirbread/spellscript/internal/tokenizer"
	"github.com/sirbread/spellscript/internal/value"
)

// Interpreter holds the single global environment, the host it drives I/O
// and sleeps through, and the top-level statement stream (spec §3's
// "separate top-level cursor"). Nested-block iteration is carried entirely
// by Env's context stack.
type Interpreter struct {
	Env  *env.Env
	Host host.Host
	Log  logrus.FieldLogger

	topBody   []string
	topCursor int

	runID string
}

// New builds an Interpreter over a fresh environment. A nil logger falls
// back to a logrus instance with output discarded, so callers that don't
// care about tracing never need a nil check.
func New(h host.Host, log logrus.FieldLogger) *Interpreter {
	if log == nil {
		l := logrus.New()
		l.SetOutput(discardWriter{})
		log = l
	}
	return &Interpreter{
		Env:   env.New(),
		Host:  h,
		Log:   log,
		runID: uuid.NewString(),
	}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// Run tokenizes source, validates the grimoire brackets, and
// executes every statement between them in order. The context stack is
// guaranteed empty on both entry and exit (spec §3 invariant), since only
// nested-block handlers push onto it and every one of them pops on every
// exit path including the error path, which Run never intercepts before
// bubbling up.
func (ip *Interpreter) Run(source string) error {
	statements, err := tokenizer.Tokenize(source)
	if err != nil {
		return err
	}

	first := strings.ToLower(statements[0])
	last := strings.ToLower(statements[len(statements)-1])
	if !strings.Contains(first, config.OpenPhrase) {
		return serr.Syntax("spells must begin with Begin the grimoire")
	}
	if !strings.Contains(last, config.ClosePhrase) {
		return serr.Syntax("spells must end with Close the grimoire")
	}

	ip.topBody = statements[1 : len(statements)-1]
	ip.topCursor = 0

	log := ip.Log.WithField("run_id", ip.runID)
	log.WithField("statements", len(ip.topBody)).Debug("starting spell")

	_, _, err = ip.runCurrent()
	if err != nil {
		log.WithError(err).Debug("spell backfired")
		return err
	}
	if ip.Env.StackDepth() != 0 {
		return serr.Syntax("internal error: context stack not balanced at program end")
	}
	log.Debug("spell completed")
	return nil
}

// nextStatement returns the next statement from whichever stream is
// currently active: the top of the context stack if one is pushed,
// otherwise the top-level cursor.
func (ip *Interpreter) nextStatement() (string, bool) {
	if ctx := ip.Env.TopContext(); ctx != nil {
		if ctx.Cursor >= len(ctx.Body) {
			return "", false
		}
		s := ctx.Body[ctx.Cursor]
		ctx.Cursor++
		return s, true
	}
	if ip.topCursor >= len(ip.topBody) {
		return "", false
	}
	s := ip.topBody[ip.topCursor]
	ip.topCursor++
	return s, true
}

// runCurrent executes statements one at a time from the current stream until
// it is exhausted, a statement signals an early return, or an error occurs
// (spec §4.2, §4.6 call protocol step 4).
func (ip *Interpreter) runCurrent() (val value.Value, isReturn bool, err error) {
	for {
		stmt, ok := ip.nextStatement()
		if !ok {
			return value.Absent, false, nil
		}
		val, isReturn, err = ip.Dispatch(stmt)
		if err != nil {
			return value.Value{}, false, err
		}
		if isReturn {
			return val, true, nil
		}
	}
}
