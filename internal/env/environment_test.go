package env

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirbread/spellscript/internal/serr"
	"github.com/sirbread/spellscript/internal/value"
)

func TestGetUnboundIsNameError(t *testing.T) {
	e := New()
	_, err := e.Get("ghost")
	require.True(t, serr.Is(err, serr.KindName))
}

func TestRebindRequiresExistingBinding(t *testing.T) {
	e := New()
	err := e.Rebind("x", value.NewIntegerFromInt64(1))
	require.Error(t, err)

	e.Set("x", value.NewIntegerFromInt64(1))
	require.NoError(t, e.Rebind("x", value.NewIntegerFromInt64(2)))
	v, _ := e.Get("x")
	require.Equal(t, "2", v.String())
}

func TestSaveRestoreRoundTripsBoundAndUnbound(t *testing.T) {
	e := New()
	e.Set("p", value.NewIntegerFromInt64(5))

	boundSnap := e.Save("p")
	unboundSnap := e.Save("q")

	e.Set("p", value.NewIntegerFromInt64(99))
	e.Set("q", value.NewIntegerFromInt64(1))

	e.Restore(boundSnap)
	e.Restore(unboundSnap)

	v, ok := e.Lookup("p")
	require.True(t, ok)
	require.Equal(t, "5", v.String())

	_, ok = e.Lookup("q")
	require.False(t, ok, "q had no prior binding and must be removed on restore")
}

func TestContextStackPushPopBalance(t *testing.T) {
	e := New()
	require.Equal(t, 0, e.StackDepth())
	require.Nil(t, e.TopContext())

	e.PushContext(&Context{Body: []string{"a"}})
	require.Equal(t, 1, e.StackDepth())
	require.NotNil(t, e.TopContext())

	e.PopContext()
	require.Equal(t, 0, e.StackDepth())
}

func TestSubroutineRedefinitionReplaces(t *testing.T) {
	e := New()
	e.DefineSubroutine("add", &Subroutine{Params: []string{"a", "b"}, Body: []string{"Return a greater by b."}})
	e.DefineSubroutine("add", &Subroutine{Params: []string{"a"}, Body: []string{"Return a."}})

	sub, err := e.Subroutine("add")
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, sub.Params)
}

func TestUndefinedSubroutineIsNameError(t *testing.T) {
	e := New()
	_, err := e.Subroutine("missing")
	require.True(t, serr.Is(err, serr.KindName))
}
