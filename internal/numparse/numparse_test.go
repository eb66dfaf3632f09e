package numparse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirbread/spellscript/internal/value"
)

func TestParseInteger(t *testing.T) {
	v, err := Parse("42")
	require.NoError(t, err)
	require.Equal(t, value.KindInteger, v.Kind)
	require.Equal(t, "42", v.String())
}

func TestParseNegativeInteger(t *testing.T) {
	v, err := Parse("-7")
	require.NoError(t, err)
	require.Equal(t, "-7", v.String())
}

func TestParseFloatingWithPoint(t *testing.T) {
	v, err := Parse("3 point 14")
	require.NoError(t, err)
	require.Equal(t, value.KindFloating, v.Kind)
	require.InDelta(t, 3.14, v.Floating, 1e-9)
}

func TestParseFloatingPointWordCaseInsensitive(t *testing.T) {
	v, err := Parse("1 Point 5")
	require.NoError(t, err)
	require.InDelta(t, 1.5, v.Floating, 1e-9)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse("not-a-number")
	require.Error(t, err)
}

func TestRoundTripIntegerLiteral(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 42, 9007199254740992} {
		v, err := Parse(value.NewIntegerFromInt64(n).String())
		require.NoError(t, err)
		require.Equal(t, value.NewIntegerFromInt64(n).String(), v.String())
	}
}
