package value

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultTextForms(t *testing.T) {
	require.Equal(t, "42", NewIntegerFromInt64(42).String())
	require.Equal(t, "-3", NewIntegerFromInt64(-3).String())
	require.Equal(t, "True", NewTruth(true).String())
	require.Equal(t, "False", NewTruth(false).String())
	require.Equal(t, "None", Absent.String())
	require.Equal(t, "hi", NewText("hi").String())
	require.Equal(t, "[1, 2, 3]", NewList([]Value{
		NewIntegerFromInt64(1), NewIntegerFromInt64(2), NewIntegerFromInt64(3),
	}).String())
}

func TestTruthyByVariant(t *testing.T) {
	require.True(t, NewIntegerFromInt64(1).Truthy())
	require.False(t, NewIntegerFromInt64(0).Truthy())
	require.True(t, NewText("x").Truthy())
	require.False(t, NewText("").Truthy())
	require.True(t, NewList([]Value{NewTruth(true)}).Truthy())
	require.False(t, NewList(nil).Truthy())
	require.False(t, Absent.Truthy())
}

func TestEqualAcrossNumericVariants(t *testing.T) {
	require.True(t, Equal(NewIntegerFromInt64(4), NewFloating(4.0)))
	require.False(t, Equal(NewIntegerFromInt64(4), NewFloating(4.5)))
	require.True(t, Equal(NewText("a"), NewText("a")))
	require.False(t, Equal(NewText("a"), NewIntegerFromInt64(1)))
}

func TestListAliasingSharesBackingArray(t *testing.T) {
	listVal := NewList([]Value{NewIntegerFromInt64(1), NewIntegerFromInt64(2)})
	alias := listVal
	(*alias.List)[0] = NewIntegerFromInt64(9)
	require.Equal(t, "9", (*listVal.List)[0].String())
}

func TestIntegerArbitraryPrecision(t *testing.T) {
	big1, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	v := NewInteger(big1)
	require.Equal(t, "123456789012345678901234567890", v.String())
}
