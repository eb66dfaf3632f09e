// End-to-end scenario tests: each case runs a full spell through Run and
// asserts the printed output, exercising the complete pipeline rather than
// a single package in isolation.
package interp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirbread/spellscript/internal/host"
)

func runSpell(t *testing.T, body string) *host.Memory {
	t.Helper()
	mem := host.NewMemory()
	ip := New(mem, nil)
	err := ip.Run("Begin the grimoire. " + body + " Close the grimoire.")
	require.NoError(t, err)
	return mem
}

func TestScenarioHello(t *testing.T) {
	mem := runSpell(t, `Inscribe whispers of "hello".`)
	require.Equal(t, []string{"hello"}, mem.Output)
}

func TestScenarioArithmetic(t *testing.T) {
	mem := runSpell(t, "Summon the x with essence of 3 multiplied by 4. Inscribe x.")
	require.Equal(t, []string{"12"}, mem.Output)
}

func TestScenarioCountedLoopBlock(t *testing.T) {
	mem := runSpell(t, `Summon the i with essence of 0. Repeat the incantation 3 times to begin: Enchant i with i greater by 1. Inscribe i. end loop.`)
	require.Equal(t, []string{"1", "2", "3"}, mem.Output)
}

func TestScenarioConditionalWithOtherwise(t *testing.T) {
	mem := runSpell(t, `Summon the n with essence of 5. If the signs show n greater than 3 then Inscribe whispers of "big" otherwise Inscribe whispers of "small".`)
	require.Equal(t, []string{"big"}, mem.Output)
}

func TestScenarioSubroutineReturn(t *testing.T) {
	mem := runSpell(t, `Conjure ritual named add with a and b to begin: Return a greater by b. end ritual. Summon the r with essence of through ritual add with 2 and 40. Inscribe r.`)
	require.Equal(t, []string{"42"}, mem.Output)
}

func TestScenarioTraversalWithIndexAndListWrite(t *testing.T) {
	mem := runSpell(t, `Summon the xs with essence of collection holding 10 and 20 and 30. Traverse xs with each v at i to begin: Enchant xs at position i with v greater by 1. end traverse. Inscribe xs.`)
	require.Equal(t, []string{"[11, 21, 31]"}, mem.Output)
}

func TestInvariantBracketCheckMissingOpen(t *testing.T) {
	mem := host.NewMemory()
	ip := New(mem, nil)
	err := ip.Run(`Inscribe whispers of "hi". Close the grimoire.`)
	require.Error(t, err)
}

func TestInvariantBracketCheckMissingClose(t *testing.T) {
	mem := host.NewMemory()
	ip := New(mem, nil)
	err := ip.Run(`Begin the grimoire. Inscribe whispers of "hi".`)
	require.Error(t, err)
}

func TestInvariantListAliasing(t *testing.T) {
	mem := runSpell(t, `Summon the a with essence of collection holding 1 and 2. Summon the b with essence of a. Enchant b at position 0 with 9. Inscribe a at position 0.`)
	require.Equal(t, []string{"9"}, mem.Output)
}

func TestInvariantParameterSaveRestore(t *testing.T) {
	mem := runSpell(t, `Summon the a with essence of 1. Conjure ritual named bump with a to begin: Enchant a with a greater by 100. end ritual. Summon the ignored with essence of through ritual bump with 5. Inscribe a.`)
	require.Equal(t, []string{"1"}, mem.Output)
}

func TestInvariantWriteBackOnBareNameArgument(t *testing.T) {
	mem := runSpell(t, `Summon the a with essence of 1. Conjure ritual named bump with x to begin: Enchant x with x greater by 100. end ritual. Summon the ignored with essence of through ritual bump with a. Inscribe a.`)
	require.Equal(t, []string{"101"}, mem.Output)
}

func TestInvariantContextStackBalancedAfterNestedCalls(t *testing.T) {
	mem := host.NewMemory()
	ip := New(mem, nil)
	err := ip.Run(`Begin the grimoire. Conjure ritual named inner with x to begin: Return x greater by 1. end ritual. Summon the ys with essence of collection holding 1 and 2 and 3. Traverse ys with each v to begin: Summon the r with essence of through ritual inner with v. Inscribe r. end traverse. Close the grimoire.`)
	require.NoError(t, err)
	require.Equal(t, 0, ip.Env.StackDepth())
	require.Equal(t, []string{"2", "3", "4"}, mem.Output)
}

func TestEnchantUnboundNameIsNameError(t *testing.T) {
	mem := host.NewMemory()
	ip := New(mem, nil)
	err := ip.Run(`Begin the grimoire. Enchant ghost with 1. Close the grimoire.`)
	require.Error(t, err)
}

func TestDivisionByZeroIsZeroDivisionError(t *testing.T) {
	mem := host.NewMemory()
	ip := New(mem, nil)
	err := ip.Run(`Begin the grimoire. Summon the x with essence of 1 divided by 0. Close the grimoire.`)
	require.Error(t, err)
}

func TestIndexOutOfRangeIsError(t *testing.T) {
	mem := host.NewMemory()
	ip := New(mem, nil)
	err := ip.Run(`Begin the grimoire. Summon the xs with essence of collection holding 1. Summon the v with essence of xs at position 5. Close the grimoire.`)
	require.Error(t, err)
}

func TestInscribeSwallowsEvaluatorErrorAndPrintsRawRemainder(t *testing.T) {
	mem := runSpell(t, `Inscribe length of nosuchlist.`)
	require.Equal(t, []string{"length of nosuchlist"}, mem.Output)
}

func TestGazeRendersDefaultTruthText(t *testing.T) {
	mem := runSpell(t, `Summon the n with essence of 5. Gaze upon n greater than 3.`)
	require.Equal(t, []string{"Gazing reveals: True"}, mem.Output)
}

func TestTransmuteIntoTextThenTextIsIdentity(t *testing.T) {
	mem := runSpell(t, `Summon the n with essence of 42. Transmute n into text. Transmute n into text. Inscribe n.`)
	require.Equal(t, []string{"42"}, mem.Output)
}

func TestAppendAndLength(t *testing.T) {
	mem := runSpell(t, `Summon the xs with essence of collection holding 1 and 2. Append 3 to xs. Inscribe length of xs.`)
	require.Equal(t, []string{"3"}, mem.Output)
}

func TestInlineCountedLoop(t *testing.T) {
	mem := runSpell(t, `Summon the i with essence of 0. Repeat the incantation 2 times do Enchant i with i greater by 1. end loop. Inscribe i.`)
	require.Equal(t, []string{"2"}, mem.Output)
}

func TestConditionOrAndPrecedenceAndNot(t *testing.T) {
	mem := runSpell(t, `Summon the n with essence of 2. If the signs show not n equals 2 and n equals 2 or truth then Inscribe whispers of "yes" otherwise Inscribe whispers of "no".`)
	require.Equal(t, []string{"yes"}, mem.Output)
}
