package clues_test

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/detective-quest/internal/clues"
)

func TestLedger_Insert(t *testing.T) {
	l := clues.New()

	tests := []struct {
		name    string
		text    string
		wantNew bool
		wantLen int
	}{
		{"first clue", "The culprit smokes Cuban cigars.", true, 1},
		{"smaller clue", "A bronze candlestick is the weapon.", true, 2},
		{"larger clue", "Z marks the spot.", true, 3},
		{"duplicate", "The culprit smokes Cuban cigars.", false, 3},
		{"empty text", "", true, 4},
		{"empty text again", "", false, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantNew, l.Insert(tt.text))
			require.Equal(t, tt.wantLen, l.Len())
			require.True(t, l.Contains(tt.text))
		})
	}
}

func TestLedger_TextsAreSorted(t *testing.T) {
	l := clues.New()
	for _, text := range []string{"C", "A", "B", "A", "D", "C"} {
		l.Insert(text)
	}
	if diff := cmp.Diff([]string{"A", "B", "C", "D"}, l.Texts()); diff != "" {
		t.Errorf("in-order traversal mismatch (-want +got):\n%s", diff)
	}
}

func TestLedger_RandomInsertsStaySortedAndUnique(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	alphabet := []string{"a", "b", "c", "d", "e"}

	for round := 0; round < 50; round++ {
		l := clues.New()
		seen := map[string]bool{}
		for i := 0; i < 40; i++ {
			var sb strings.Builder
			for j := 0; j < 1+rng.IntN(3); j++ {
				sb.WriteString(alphabet[rng.IntN(len(alphabet))])
			}
			l.Insert(sb.String())
			seen[sb.String()] = true
		}

		texts := l.Texts()
		require.True(t, slices.IsSorted(texts), "in-order traversal not sorted: %v", texts)
		require.Len(t, texts, len(seen))
		require.Len(t, slices.Compact(slices.Clone(texts)), len(texts), "duplicates in %v", texts)
	}
}

func TestLedger_AllStopsEarly(t *testing.T) {
	l := clues.New()
	for _, text := range []string{"M", "C", "X", "A"} {
		l.Insert(text)
	}
	var got []string
	for text := range l.All() {
		got = append(got, text)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []string{"A", "C"}, got)
}

func TestLedger_CountMatching(t *testing.T) {
	l := clues.New()
	require.Zero(t, l.CountMatching(func(string) bool { return true }))

	owners := map[string]string{"A": "Carlos", "B": "Camila", "C": "Camila"}
	for text := range owners {
		l.Insert(text)
	}

	visits := 0
	count := l.CountMatching(func(text string) bool {
		visits++
		return owners[text] == "Camila"
	})
	require.Equal(t, 2, count)
	require.Equal(t, 3, visits, "every node must be visited exactly once")
}

func TestLedger_ZeroValue(t *testing.T) {
	var l clues.Ledger
	require.Empty(t, l.Texts())
	require.False(t, l.Contains("anything"))
	require.True(t, l.Insert("anything"))
}
