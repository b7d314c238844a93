package tablebuild

import (
	"github.com/lox/omahahash/internal/automaton"
	"github.com/lox/omahahash/internal/canonical"
	"github.com/lox/omahahash/internal/cardcode"
	"github.com/lox/omahahash/internal/handrank"
)

// flushRankSuit is the only reference suit an automaton is actually built
// for; every other suit reuses it at query time via the bias trick in
// region.go's dummy-slot handling and query's shifted base.
const flushRankSuit = 4

const (
	widthNarrow = 53 // flush-suit, no-flush
	widthWide   = 56 // flush-rank: 53 real columns + 3 dummy
)

// flushSuitBase is fixed: index 106 (= flushSuitBase + widthNarrow) is where
// the flush-suit automaton's first real block lands, matching the header
// layout the query protocol indexes directly.
const flushSuitBase = 53

// Stats reports the shape of a built table, useful for logging and for
// sizing the reference verifier.
type Stats struct {
	FlushSuitIDs int
	FlushRankIDs int
	NoFlushIDs   int

	BaseFlushSuit int32
	BaseFlushRank int32
	BaseNoFlush   int32

	Length int32
}

// Build runs the three BFS closures, lays out the shared array, and links
// every block. The returned array is ready to persist and to query.
func Build() ([]int32, Stats) {
	flushSuitAppend := canonical.AppendFlushSuit
	flushRankAppend := func(id canonical.ID, card int) canonical.ID {
		return canonical.AppendFlushRank(id, card, flushRankSuit)
	}
	noFlushAppend := canonical.AppendNoFlush

	fsIDs := automaton.Generate(flushSuitAppend)
	frIDs := automaton.Generate(flushRankAppend)
	nfIDs := automaton.Generate(noFlushAppend)

	fsIndex := automaton.Index(fsIDs)
	frIndex := automaton.Index(frIDs)
	nfIndex := automaton.Index(nfIDs)

	baseFS := int32(flushSuitBase)
	baseFR := baseFS + widthNarrow*int32(len(fsIDs)+1)
	baseNF := baseFR + widthWide*int32(len(frIDs)+1)
	total := baseNF + widthNarrow*int32(len(nfIDs)+1)

	array := make([]int32, total)

	// Global header: array[0] is the no-flush base; array[1] is the
	// flush-rank base pre-biased by one block width, since the query
	// protocol's step 3 uses it directly as the base of the first lookup.
	array[0] = baseNF
	array[1] = baseFR + widthWide

	fsRegion := region{
		base:     baseFS,
		width:    widthNarrow,
		fallback: -1,
		ids:      fsIDs,
		index:    fsIndex,
		appendFn: flushSuitAppend,
		eval:     handrank.EvalFlushSuit,
		// eval-flush-suit's -1 ("no suit reaches five") must become 0 so
		// the query protocol's `fs != 0` check reads it as "no flush".
		override: map[int]int32{-1: 0},
	}

	frRegion := region{
		base:     baseFR,
		width:    widthWide,
		fallback: -1,
		ids:      frIDs,
		index:    frIndex,
		appendFn: flushRankAppend,
		eval:     handrank.EvalFlushRank,
		// eval-flush-rank's -1 (every combination touched an off-suit
		// card) maps to a self-loop on the region base: every subsequent
		// index in the chase lands back on the dead-end row, and the
		// chase ultimately resolves to the region's own fallback.
		override: map[int]int32{-1: baseFR},
		nDummy:   3,
		dummyCol: cardcode.AnyCard,
	}

	nfRegion := region{
		base:     baseNF,
		width:    widthNarrow,
		fallback: 0,
		ids:      nfIDs,
		index:    nfIndex,
		appendFn: noFlushAppend,
		eval:     handrank.EvalNoFlush,
	}

	fsRegion.build(array)
	frRegion.build(array)
	nfRegion.build(array)

	stats := Stats{
		FlushSuitIDs:  len(fsIDs),
		FlushRankIDs:  len(frIDs),
		NoFlushIDs:    len(nfIDs),
		BaseFlushSuit: baseFS,
		BaseFlushRank: baseFR,
		BaseNoFlush:   baseNF,
		Length:        total,
	}
	return array, stats
}
