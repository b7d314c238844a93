// Package handrank implements the three terminal evaluators: given a fully
// dealt (9-card) canonical ID, compute the numeric verdict the linker
// inlines at that ID's 9th-card transition slots. All three lean on the
// opaque 5-card oracle in package oracle for the actual hand-strength
// arithmetic; this package only knows how to extract the right 5-card
// candidates out of a 9-slot canonical ID and reduce them to one score.
package handrank

import (
	"github.com/lox/omahahash/internal/canonical"
	"github.com/lox/omahahash/internal/cardcode"
	"github.com/lox/omahahash/internal/oracle"
)

// pocketPairs are the six ways to choose 2 of the 4 pocket positions.
var pocketPairs = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

// boardTriples are the ten ways to choose 3 of 5 board positions, ordered so
// that a prefix of the table is valid whenever fewer board positions are
// real: the first triple never touches index 3 or 4, the first four never
// touch index 4.
var boardTriples = [10][3]int{
	{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3},
	{0, 1, 4}, {0, 2, 4}, {0, 3, 4}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4},
}

// boardTripleCounts maps the number of real (non-Skip) board positions to
// how many leading entries of boardTriples apply.
var boardTripleCounts = map[int]int{3: 1, 4: 4, 5: 10}

// EvalFlushSuit counts capped suit occurrences (board capped at 3, pocket
// capped at 2) and returns the first suit reaching 5, or -1 if none does.
func EvalFlushSuit(id canonical.ID) int {
	slots := canonical.Slots(id)
	board, pocket := slots[:5], slots[5:9]

	var boardCount, pocketCount [5]int // index 1..4
	for _, v := range board {
		if s := int(v); s >= 1 && s <= 4 {
			boardCount[s]++
		}
	}
	for _, v := range pocket {
		if s := int(v); s >= 1 && s <= 4 {
			pocketCount[s]++
		}
	}

	for s := 1; s <= 4; s++ {
		b := boardCount[s]
		if b > 3 {
			b = 3
		}
		p := pocketCount[s]
		if p > 2 {
			p = 2
		}
		if b+p >= 5 {
			return s
		}
	}
	return -1
}

// EvalFlushRank enumerates every Omaha-legal (2-of-pocket, 3-of-board)
// selection, scores the ones built entirely of real suited ranks through the
// oracle, and returns the best (project-scale) result. It returns -1 if no
// selection is entirely real, matching the ANY_CARD ambiguity the linker's
// override map is responsible for redirecting.
func EvalFlushRank(id canonical.ID) int {
	slots := canonical.Slots(id)
	board, pocket := slots[:5], slots[5:9]

	realBoard := realPositions(board)
	triples := boardTripleCounts[len(realBoard)]

	best := -1
	for _, pair := range pocketPairs {
		p0, p1 := pocket[pair[0]], pocket[pair[1]]
		if !isRealSuitedRank(p0) || !isRealSuitedRank(p1) {
			continue
		}
		for t := 0; t < triples; t++ {
			tri := boardTriples[t]
			b0, b1, b2 := board[realBoard[tri[0]]], board[realBoard[tri[1]]], board[realBoard[tri[2]]]
			if !isRealSuitedRank(b0) || !isRealSuitedRank(b1) || !isRealSuitedRank(b2) {
				continue
			}
			ranks := [5]int{int(b0) - 1, int(b1) - 1, int(b2) - 1, int(p0) - 1, int(p1) - 1}
			suits := [5]int{1, 1, 1, 1, 1}
			score := oracle.ToProjectScale(oracle.Score5(ranks, suits))
			if score > best {
				best = score
			}
		}
	}
	return best
}

// EvalNoFlush enumerates the same (2-of-pocket, 3-of-board) selections,
// assigning a round-robin fake suit to each card so the oracle never sees a
// spurious flush, and returns the best (project-scale) result.
func EvalNoFlush(id canonical.ID) int {
	slots := canonical.Slots(id)
	board, pocket := slots[:5], slots[5:9]

	realBoard := realRankPositions(board)
	triples := boardTripleCounts[len(realBoard)]

	best := -1
	for _, pair := range pocketPairs {
		p0, p1 := pocket[pair[0]], pocket[pair[1]]
		for t := 0; t < triples; t++ {
			tri := boardTriples[t]
			b0 := board[realBoard[tri[0]]]
			b1 := board[realBoard[tri[1]]]
			b2 := board[realBoard[tri[2]]]

			ranks := [5]int{int(b0), int(b1), int(b2), int(p0), int(p1)}
			suits := [5]int{1, 2, 3, 4, 1}
			score := oracle.ToProjectScale(oracle.Score5(ranks, suits))
			if score > best {
				best = score
			}
		}
	}
	return best
}

// realPositions returns the indices of board holding anything but Skip
// (i.e. a real card, whether ANY_CARD or a suited rank).
func realPositions(board []uint8) []int {
	var out []int
	for i, v := range board {
		if int(v) != cardcode.Skip {
			out = append(out, i)
		}
	}
	return out
}

// realRankPositions is realPositions specialised for the no-flush space,
// where there is no ANY_CARD sentinel: every non-Skip slot holds a rank.
func realRankPositions(board []uint8) []int {
	return realPositions(board)
}

func isRealSuitedRank(v uint8) bool {
	return int(v) >= 2 && int(v) <= 14
}
