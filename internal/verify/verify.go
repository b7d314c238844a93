// Package verify implements the full combinatorial cross-check: every
// C(52,7), C(52,8), and C(52,9) board-plus-pocket combination is scored both
// through the built array and through a ground-truth evaluator, aborting on
// the first disagreement. When the caller supplies a pre-existing 7-card
// reference table (the HR_old collaborator — package legacy), that table is
// the ground truth; otherwise the sweep falls back to
// the independent reference package, since no real HR_old file ships with
// this repo and the build must still be self-checkable without one. The
// board-card and pocket-card loops hoist their partial flush-suit and
// no-flush offsets across recursion depth, the same way an equity simulator
// shards Monte Carlo samples across workers rather than resampling shared
// state per sample.
package verify

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/omahahash/internal/cardcode"
	"github.com/lox/omahahash/internal/legacy"
	"github.com/lox/omahahash/internal/query"
	"github.com/lox/omahahash/internal/reference"
)

// Mismatch is returned the moment a combination's array-computed score
// disagrees with the reference evaluator's, carrying enough for a
// diagnostic: the offending cards and both scores.
type Mismatch struct {
	Board    []int
	Pocket   [4]int
	ScoreNew int32
	ScoreOld int32
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("verifier mismatch: board=%s pocket=%s score_new=%d score_old=%d",
		renderCards(m.Board), renderCards(m.Pocket[:]), m.ScoreNew, m.ScoreOld)
}

func renderCards(cards []int) string {
	s := ""
	for _, c := range cards {
		s += cardcode.String(c)
	}
	return s
}

// FullDeck is the 52-card universe production sweeps run over.
func FullDeck() []int {
	deck := make([]int, 0, cardcode.MaxCard)
	for c := cardcode.MinCard; c <= cardcode.MaxCard; c++ {
		deck = append(deck, c)
	}
	return deck
}

// Sweep runs the exhaustive cross-check for one hand size over deck
// (sorted ascending, no duplicates — pass FullDeck() in production; tests
// use a smaller synthetic deck to keep the combination count tractable).
// realBoard is 3 (7-card), 4 (8-card), or 5 (9-card) real community cards.
// workers shards the outermost (first real board card) loop; 1 runs
// sequentially. old is the optional pre-existing 7-card reference table; pass
// nil to fall back to the independent reference evaluator.
func Sweep(hr query.HandRanks, old legacy.Table, deck []int, realBoard int, workers int) error {
	if realBoard < 3 || realBoard > 5 {
		return fmt.Errorf("verify: realBoard must be 3..5, got %d", realBoard)
	}
	if len(deck) < realBoard+4 {
		return fmt.Errorf("verify: deck of %d cards too small for a %d-board sweep", len(deck), realBoard)
	}
	if workers < 1 {
		workers = 1
	}
	pad := 5 - realBoard
	fs0, nf0 := paddedOffsets(hr, pad)

	total := len(deck)
	if workers > total {
		workers = total
	}
	per := total / workers
	remainder := total % workers

	g, ctx := errgroup.WithContext(context.Background())
	idx := 0
	for w := 0; w < workers; w++ {
		n := per
		if w < remainder {
			n++
		}
		lo, hi := idx, idx+n-1
		idx += n

		g.Go(func() error {
			for i := lo; i <= hi; i++ {
				if ctx.Err() != nil {
					return nil // another shard already reported a mismatch
				}
				c := deck[i]
				var qBoard [5]int
				qBoard[pad] = c
				used := uint64(1) << uint(c-1)
				fs1 := hr[fs0+int32(c)]
				nf1 := hr[nf0+int32(c)]
				if err := sweepBoard(hr, old, deck, pad, qBoard, i+1, 1, used, fs1, nf1); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// paddedOffsets runs the fixed leading-zero hops every query in a sweep
// shares (two for 7-card, one for 8-card, zero for 9-card), so Sweep's board
// loops start from the state those hops land on instead of redoing them for
// every combination.
func paddedOffsets(hr query.HandRanks, pad int) (fsOff, nfOff int32) {
	fsOff = query.FlushSuitInitialRow
	nfOff = hr[0] + query.NoFlushBlockWidth
	for i := 0; i < pad; i++ {
		fsOff = hr[fsOff]
		nfOff = hr[nfOff]
	}
	return
}

// sweepBoard enumerates the remaining real board cards from deck, starting
// at index deckIdx, one combination per loop (not C(n,k) permutations),
// carrying the hoisted flush-suit and no-flush offsets one hop deeper per
// card chosen.
func sweepBoard(hr query.HandRanks, old legacy.Table, deck []int, pad int, qBoard [5]int, deckIdx, count int, used uint64, fsOff, nfOff int32) error {
	if pad+count == 5 {
		return sweepPocket(hr, old, deck, pad, qBoard, used, fsOff, nfOff)
	}
	for i := deckIdx; i < len(deck); i++ {
		card := deck[i]
		nb := qBoard
		nb[pad+count] = card
		bit := uint64(1) << uint(card-1)
		if err := sweepBoard(hr, old, deck, pad, nb, i+1, count+1, used|bit, hr[fsOff+int32(card)], hr[nfOff+int32(card)]); err != nil {
			return err
		}
	}
	return nil
}

func sweepPocket(hr query.HandRanks, old legacy.Table, deck []int, pad int, qBoard [5]int, used uint64, fsOff, nfOff int32) error {
	var pocket [4]int
	return sweepPocketRec(hr, old, deck, pad, qBoard, pocket, 0, 0, used, fsOff, nfOff)
}

// sweepPocketRec mirrors sweepBoard for the four pocket cards; at count==4
// both chases are complete and checkLeaf finishes the comparison.
func sweepPocketRec(hr query.HandRanks, old legacy.Table, deck []int, pad int, qBoard [5]int, pocket [4]int, deckIdx, count int, used uint64, fsOff, nfOff int32) error {
	if count == 4 {
		return checkLeaf(hr, old, pad, qBoard, pocket, fsOff, nfOff)
	}
	for i := deckIdx; i < len(deck); i++ {
		card := deck[i]
		bit := uint64(1) << uint(card-1)
		if used&bit != 0 {
			continue
		}
		np := pocket
		np[count] = card
		if err := sweepPocketRec(hr, old, deck, pad, qBoard, np, i+1, count+1, used|bit, hr[fsOff+int32(card)], hr[nfOff+int32(card)]); err != nil {
			return err
		}
	}
	return nil
}

// checkLeaf finishes the (unhoistable) flush-rank branch via the known fs
// and scores the same hand against groundTruth, returning a *Mismatch the
// instant the two disagree.
func checkLeaf(hr query.HandRanks, old legacy.Table, pad int, qBoard [5]int, pocket [4]int, fs, noFlush int32) error {
	scoreNew := hr.Combine(fs, noFlush, qBoard, pocket)

	realBoard := append([]int{}, qBoard[pad:]...)
	scoreOld := groundTruth(old, realBoard, pocket)

	if scoreNew != scoreOld {
		return &Mismatch{Board: realBoard, Pocket: pocket, ScoreNew: scoreNew, ScoreOld: scoreOld}
	}
	return nil
}

// groundTruth prefers the caller-supplied HR_old table, since that is the
// pre-existing external reference table describes; with none supplied it
// falls back to the independent evaluator so a build can still verify
// itself without shipping a separate binary table.
func groundTruth(old legacy.Table, board []int, pocket [4]int) int32 {
	if len(old) > 0 {
		return old.EvalOmaha(board, pocket)
	}
	return int32(reference.EvalOmaha(board, pocket))
}
