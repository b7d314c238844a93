package canonical

import (
	"testing"

	"github.com/lox/omahahash/internal/cardcode"
	"github.com/lox/omahahash/internal/randutil"
)

// appendAll folds appendFn over cards in the given order, starting from the
// empty ID.
func appendAll(appendFn AppendFunc, cards []int) ID {
	id := ID(0)
	for _, c := range cards {
		id = appendFn(id, c)
	}
	return id
}

// shuffleCopy returns a copy of cards permuted by a seed-derived source, so a
// failure reproduces exactly from the seed reported in the test output.
func shuffleCopy(cards []int, seed int64) []int {
	out := append([]int{}, cards...)
	r := randutil.New(seed)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// checkOrderIndependent asserts appendFn reaches the same canonical ID no
// matter the deal order within board and within pocket, holding which five
// physical cards are "board" and which four are "pocket" fixed: board and
// pocket membership is positional (the first five insertions versus the
// rest), not tied to card identity, so shuffling across the board/pocket
// boundary would change which Omaha hand is even being described, not just
// its deal order.
func checkOrderIndependent(t *testing.T, name string, fn AppendFunc, board, pocket []int) {
	t.Helper()
	want := appendAll(fn, append(append([]int{}, board...), pocket...))
	for seed := int64(0); seed < 30; seed++ {
		deal := append(shuffleCopy(board, seed), shuffleCopy(pocket, seed+1000)...)
		if got := appendAll(fn, deal); got != want {
			t.Fatalf("%s: seed %d: append(%v) = %d, want %d (canonical ID from the unshuffled deal)",
				name, seed, deal, got, want)
		}
	}
}

// TestAppendOrderIndependenceAcrossRandomNineCardDeals extends the pairwise
// check in TestAppendOrderIndependence to a full nine-card hand, shuffled
// within its board and pocket groups across many random seeds: the BFS
// closure only stays finite if every automaton's canonical ID is genuinely
// independent of deal order, not just commutative between adjacent pairs.
func TestAppendOrderIndependenceAcrossRandomNineCardDeals(t *testing.T) {
	// Nine distinct ranks spread across suits with no rank repeated and at
	// most one card in the flush-rank reference suit (spades), so neither
	// AppendNoFlush's four-occurrences-per-rank prune nor AppendFlushSuit's
	// only-possible overflow (at a tenth card, never reached here) can fire.
	board := cardcode.MustParseCards("AsKhQdJcTh")
	pocket := cardcode.MustParseCards("9d8c7h6d")
	checkOrderIndependent(t, "flush-suit", AppendFlushSuit, board, pocket)
	checkOrderIndependent(t, "no-flush", AppendNoFlush, board, pocket)

	// A pure nine-card spade flush: every card is the flush-rank automaton's
	// reference suit, so the board/pocket suited-count prunes never fire no
	// matter the within-group deal order.
	flushRank4 := func(id ID, c int) ID { return AppendFlushRank(id, c, 4) }
	spadeBoard := cardcode.MustParseCards("2s3s4s5s6s")
	spadePocket := cardcode.MustParseCards("7s8s9sTs")
	checkOrderIndependent(t, "flush-rank", flushRank4, spadeBoard, spadePocket)
}
