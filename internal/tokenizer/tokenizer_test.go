package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeBasic(t *testing.T) {
	stmts, err := Tokenize(`Begin the grimoire. Inscribe whispers of "hi". Close the grimoire.`)
	require.NoError(t, err)
	require.Equal(t, []string{
		"Begin the grimoire.",
		`Inscribe whispers of "hi".`,
		"Close the grimoire.",
	}, stmts)
}

func TestTokenizeRespectsQuotedPeriods(t *testing.T) {
	stmts, err := Tokenize(`Inscribe whispers of "a.b:c".`)
	require.NoError(t, err)
	require.Equal(t, []string{`Inscribe whispers of "a.b:c".`}, stmts)
}

func TestTokenizeColonTerminator(t *testing.T) {
	stmts, err := Tokenize(`Traverse xs with each v to begin: Inscribe v. end traverse.`)
	require.NoError(t, err)
	require.Equal(t, []string{
		"Traverse xs with each v to begin:",
		"Inscribe v.",
		"end traverse.",
	}, stmts)
}

func TestTokenizeEmptySpellIsError(t *testing.T) {
	_, err := Tokenize("   ")
	require.Error(t, err)
}

func TestTokenizeDiscardsWhitespaceOnlyStatements(t *testing.T) {
	stmts, err := Tokenize("Begin the grimoire. . Close the grimoire.")
	require.NoError(t, err)
	require.Equal(t, []string{"Begin the grimoire.", "Close the grimoire."}, stmts)
}
