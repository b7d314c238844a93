package tablebuild

import (
	"testing"

	"github.com/lox/omahahash/internal/automaton"
	"github.com/lox/omahahash/internal/canonical"
	"github.com/lox/omahahash/internal/cardcode"
	"github.com/lox/omahahash/internal/handrank"
)

// fakeAppend fills the next empty slot with card verbatim (no translation,
// no dedup), giving region tests a tiny, fully controllable ID space that
// still honors canonical.CountCards.
func fakeAppend(id canonical.ID, card int) canonical.ID {
	slots := canonical.Slots(id)
	for i := range slots {
		if slots[i] == 0 {
			slots[i] = uint8(card)
			return canonical.Pack(slots)
		}
	}
	return 0
}

func TestRegionDeadEndRow(t *testing.T) {
	ids := []canonical.ID{0}
	r := region{
		base: 1000, width: widthNarrow, fallback: -1,
		ids: ids, index: automaton.Index(ids), appendFn: fakeAppend,
		eval: func(canonical.ID) int { return -1 },
	}
	array := make([]int32, r.base+r.length())
	r.build(array)

	if array[r.base] != -1 {
		t.Fatalf("array[base] = %d, want fallback -1", array[r.base])
	}
	for k := int32(1); k < r.width; k++ {
		if array[r.base+k] != r.base {
			t.Fatalf("array[base+%d] = %d, want %d (self-loop to base)", k, array[r.base+k], r.base)
		}
	}
}

func TestRegionForwardPointer(t *testing.T) {
	id0 := canonical.ID(0)
	id1 := fakeAppend(id0, 5)
	ids := []canonical.ID{id0, id1}
	r := region{
		base: 2000, width: widthNarrow, fallback: -1,
		ids: ids, index: automaton.Index(ids), appendFn: fakeAppend,
		eval: func(canonical.ID) int { return -1 },
	}
	array := make([]int32, r.base+r.length())
	r.build(array)

	block0 := r.blockStart(0)
	block1 := r.blockStart(1)
	if got := array[block0+5]; got != block1 {
		t.Fatalf("array[block0+5] = %d, want block1 = %d", got, block1)
	}
}

func TestRegionTerminalEvalWithOverride(t *testing.T) {
	id := canonical.ID(0)
	for card := 1; card <= 8; card++ {
		id = fakeAppend(id, card)
	}
	ids := []canonical.ID{id}
	r := region{
		base: 3000, width: widthNarrow, fallback: -1,
		ids: ids, index: automaton.Index(ids), appendFn: fakeAppend,
		eval:     func(canonical.ID) int { return -1 },
		override: map[int]int32{-1: 555},
	}
	array := make([]int32, r.base+r.length())
	r.build(array)

	block := r.blockStart(0)
	for card := 1; card <= 52; card++ {
		if got := array[block+int32(card)]; got != 555 {
			t.Fatalf("array[block+%d] = %d, want overridden verdict 555", card, got)
		}
	}
}

func TestRegionTerminalEvalWithoutOverride(t *testing.T) {
	id := canonical.ID(0)
	for card := 1; card <= 8; card++ {
		id = fakeAppend(id, card)
	}
	ids := []canonical.ID{id}
	r := region{
		base: 4000, width: widthNarrow, fallback: 0,
		ids: ids, index: automaton.Index(ids), appendFn: fakeAppend,
		eval: func(canonical.ID) int { return 42 },
	}
	array := make([]int32, r.base+r.length())
	r.build(array)

	block := r.blockStart(0)
	if got := array[block+1]; got != 42 {
		t.Fatalf("array[block+1] = %d, want unmapped verdict 42", got)
	}
}

func TestRegionDummyEcho(t *testing.T) {
	ids := []canonical.ID{0}
	r := region{
		base: 5000, width: widthWide, fallback: -1,
		ids: ids, index: automaton.Index(ids), appendFn: fakeAppend,
		eval: func(canonical.ID) int { return -1 }, nDummy: 3, dummyCol: 1,
	}
	array := make([]int32, r.base+r.length())
	r.build(array)

	block := r.blockStart(0)
	want := array[block+1]
	for j := int32(0); j < 3; j++ {
		if got := array[block+53+j]; got != want {
			t.Fatalf("array[block+53+%d] = %d, want dummy echo of column 1 (%d)", j, got, want)
		}
	}
}

func TestRegionLength(t *testing.T) {
	ids := []canonical.ID{0, 1, 2, 3}
	r := region{width: widthNarrow, ids: ids}
	if got, want := r.length(), widthNarrow*int32(len(ids)+1); got != want {
		t.Fatalf("length() = %d, want %d", got, want)
	}
}

// TestFlushSuitRegionRealWiring builds only the flush-suit region (the one
// automaton small enough to enumerate in a test, unlike no-flush's ~10^8
// states) with the production append/eval functions, then drives the
// step-1 query chase by hand to confirm the region + terminal
// evaluator + override map cooperate correctly end to end.
func TestFlushSuitRegionRealWiring(t *testing.T) {
	fsIDs := automaton.Generate(canonical.AppendFlushSuit)
	fsIndex := automaton.Index(fsIDs)

	r := region{
		base: flushSuitBase, width: widthNarrow, fallback: -1,
		ids: fsIDs, index: fsIndex, appendFn: canonical.AppendFlushSuit,
		eval:     handrank.EvalFlushSuit,
		override: map[int]int32{-1: 0},
	}
	array := make([]int32, r.base+r.length())
	r.build(array)

	chase := func(boardStr, pocketStr string) int32 {
		board := cardcode.MustParseCards(boardStr)
		pocket := cardcode.MustParseCards(pocketStr)
		off := array[flushSuitBase+widthNarrow+int32(board[0])]
		for _, c := range board[1:] {
			off = array[off+int32(c)]
		}
		fs := off
		for _, c := range pocket {
			fs = array[fs+int32(c)]
		}
		return fs
	}

	if got := chase("2s5s9sJsKs", "AsQs7h8h"); got != 4 {
		t.Fatalf("flush suit = %d, want 4 (spades)", got)
	}
	if got := chase("2s5d9hJcKs", "AhQc7d8s"); got != 0 {
		t.Fatalf("flush suit = %d, want 0 (no flush, overridden from -1)", got)
	}
}
