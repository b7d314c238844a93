// Package query implements the runtime 9-step pointer chase against a built
// hand-ranks array: given a board (3, 4, or 5 cards) and a 4-card pocket, it
// returns the project-scale hand-rank score, taking the best of the
// no-flush and (if a flush suit is present) flush-rank automata.
package query

// HandRanks is the flat array a table build produces; see package
// tablebuild and package persist.
type HandRanks []int32

const (
	// FlushSuitInitialRow and NoFlushBlockWidth are exported so package
	// verify can hoist the flush-suit and no-flush chases itself across its
	// nested combinatorial loops itself, instead of re-running Score from
	// scratch for every combination.
	FlushSuitInitialRow = 106 // = flushSuitBase(53) + width(53)
	NoFlushBlockWidth   = 53
)

// Score evaluates a board of exactly 5 slots (pad missing leading board
// positions with 0 for 7- or 8-card queries; see Score7/Score8) and a
// 4-card pocket.
func (hr HandRanks) Score(board [5]int, pocket [4]int) int32 {
	fs := hr.flushSuit(board, pocket)
	score := hr.noFlushScore(board, pocket)
	return hr.Combine(fs, score, board, pocket)
}

// Combine finishes a query given an already-computed flush-suit verdict and
// no-flush score, running the flush-rank chase only if fs != 0 and returning
// the better of the two. Exported for callers (package verify) that hoist
// the flush-suit and no-flush chases across nested loops themselves and only
// need this package to finish the (unhoistable, since it depends on fs)
// flush-rank branch.
func (hr HandRanks) Combine(fs int32, noFlushScore int32, board [5]int, pocket [4]int) int32 {
	score := noFlushScore
	if fs != 0 {
		if fscore := hr.flushRankScore(fs, board, pocket); fscore > score {
			score = fscore
		}
	}
	return score
}

// Score7 evaluates a 3-card board (b2..b4) and 4-card pocket by driving the
// automaton through two synthetic leading zero columns.
func (hr HandRanks) Score7(b2, b3, b4 int, pocket [4]int) int32 {
	return hr.Score([5]int{0, 0, b2, b3, b4}, pocket)
}

// Score8 evaluates a 4-card board (b1..b4) and 4-card pocket.
func (hr HandRanks) Score8(b1, b2, b3, b4 int, pocket [4]int) int32 {
	return hr.Score([5]int{0, b1, b2, b3, b4}, pocket)
}

// flushSuit runs query step 1: chase the flush-suit automaton over the board,
// then the pocket, returning the dominant suit (1..4) or 0 if none.
func (hr HandRanks) flushSuit(board [5]int, pocket [4]int) int32 {
	off := hr[FlushSuitInitialRow+int32(board[0])]
	for _, b := range board[1:] {
		off = hr[off+int32(b)]
	}
	fs := off
	for _, p := range pocket {
		fs = hr[fs+int32(p)]
	}
	return fs
}

// noFlushScore runs query step 2 against the no-flush automaton.
func (hr HandRanks) noFlushScore(board [5]int, pocket [4]int) int32 {
	baseNF := hr[0]
	off := hr[baseNF+NoFlushBlockWidth+int32(board[0])]
	for _, b := range board[1:] {
		off = hr[off+int32(b)]
	}
	score := off
	for _, p := range pocket {
		score = hr[score+int32(p)]
	}
	return score
}

// flushRankScore runs query step 3: the flush-rank automaton, only ever built
// for suit 4, reused for every suit via the bias pointer (4 - fs).
func (hr HandRanks) flushRankScore(fs int32, board [5]int, pocket [4]int) int32 {
	bias := 4 - fs
	biasedBase := hr[1] + bias

	off := hr[biasedBase+int32(board[0])]
	for _, b := range board[1:] {
		off = hr[off+bias+int32(b)]
	}
	fscore := off
	for _, p := range pocket {
		fscore = hr[fscore+bias+int32(p)]
	}
	return fscore
}
