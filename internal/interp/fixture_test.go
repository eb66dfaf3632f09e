// Snapshot tests for whole-spell stdout, run against inline spells rather
// than an external fixture corpus, since SpellScript has no upstream
// fixture tree of its own.
package interp

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/sirbread/spellscript/internal/host"
)

func TestFixtureSnapshots(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{
			name: "greeting_and_arithmetic",
			body: `Summon the x with essence of 3 multiplied by 4. Inscribe whispers of "the answer is". Inscribe x.`,
		},
		{
			name: "ritual_with_write_back",
			body: `Summon the total with essence of 0. Conjure ritual named accumulate with acc and n to begin: Enchant acc with acc greater by n. end ritual. Summon the ignored with essence of through ritual accumulate with total and 10. Inscribe total.`,
		},
		{
			name: "list_traversal_and_gaze",
			body: `Summon the xs with essence of collection holding 1 and 2 and 3. Traverse xs with each v to begin: Gaze upon v greater than 1. end traverse.`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mem := host.NewMemory()
			ip := New(mem, nil)
			err := ip.Run("Begin the grimoire. " + tc.body + " Close the grimoire.")
			if err != nil {
				t.Fatalf("spell backfired: %v", err)
			}
			snaps.MatchSnapshot(t, mem.JoinedOutput())
		})
	}
}
