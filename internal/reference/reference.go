// Package reference is the independent 5-card evaluator the verifier uses
// to cross-check the built table: where the oracle package scores a hand by
// prime-product lookup, this package scores the same hand by counting rank
// and suit bitmasks directly, arriving at the identical classic Cactus-Kev
// number (1 = royal flush .. 7462 = worst high card) via a different code
// path, grounded on the bitmask techniques in the pack's other reference
// evaluators.
package reference

import (
	"sort"

	"github.com/lox/omahahash/internal/cardcode"
)

const (
	maxStraightFlush = 10
	maxFourOfAKind   = 166
	maxFullHouse     = 322
	maxFlush         = 1599
	maxStraight      = 1609
	maxThreeOfAKind  = 2467
	maxTwoPair       = 3325
	maxPair          = 6185
	maxHighCard      = 7462
)

// descRanks is 13..1 (ace-high descending), the enumeration order every
// ordinal helper below counts against.
var descRanks = func() [13]int {
	var r [13]int
	for i := range r {
		r[i] = 13 - i
	}
	return r
}()

// without returns descRanks with the given ranks removed, order preserved.
func without(exclude ...int) []int {
	out := make([]int, 0, 13-len(exclude))
	for _, r := range descRanks {
		skip := false
		for _, e := range exclude {
			if r == e {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, r)
		}
	}
	return out
}

// Score5 evaluates exactly five cards (integers 1..52) and returns the
// classic Cactus-Kev scale, lower is stronger.
func Score5(cards [5]int) int {
	var rankCount [14]int
	var suitMask [5]int
	rankMask := 0
	for _, c := range cards {
		r := cardcode.Rank(c)
		s := cardcode.Suit(c)
		rankCount[r]++
		rankMask |= 1 << uint(r-1)
		suitMask[s] |= 1 << uint(r-1)
	}

	flushSuit := 0
	for s := 1; s <= 4; s++ {
		if popcount13(suitMask[s]) == 5 {
			flushSuit = s
		}
	}

	if flushSuit != 0 {
		if top := straightHighRank(suitMask[flushSuit]); top != 0 {
			return 1 + (13 - top)
		}
	}

	type group struct{ rank, count int }
	var groups []group
	for r := 13; r >= 1; r-- {
		if rankCount[r] > 0 {
			groups = append(groups, group{r, rankCount[r]})
		}
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].count > groups[j].count })

	switch {
	case groups[0].count == 4:
		return maxStraightFlush + quadOrdinal(groups[0].rank, groups[1].rank) + 1
	case groups[0].count == 3 && groups[1].count == 2:
		return maxFourOfAKind + fullHouseOrdinal(groups[0].rank, groups[1].rank) + 1
	}

	if flushSuit != 0 {
		return maxFullHouse + flushOrdinal(suitMask[flushSuit]) + 1
	}

	if top := straightHighRank(rankMask); top != 0 {
		return maxFlush + (13 - top) + 1
	}

	switch {
	case groups[0].count == 3:
		return maxStraight + threeOfAKindOrdinal(groups[0].rank, groups[1].rank, groups[2].rank) + 1
	case groups[0].count == 2 && groups[1].count == 2:
		return maxThreeOfAKind + twoPairOrdinal(groups[0].rank, groups[1].rank, groups[2].rank) + 1
	case groups[0].count == 2:
		return maxTwoPair + pairOrdinal(groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank) + 1
	default:
		return maxPair + highCardOrdinal(groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank, groups[4].rank) + 1
	}
}

// ToProjectScale flips the classic scale so higher means stronger, matching
// the convention the build pipeline and query protocol use throughout.
func ToProjectScale(cactusKevScore int) int {
	return maxHighCard + 1 - cactusKevScore
}

func popcount13(mask int) int {
	n := 0
	for i := 0; i < 13; i++ {
		if mask&(1<<uint(i)) != 0 {
			n++
		}
	}
	return n
}

// straightHighRank returns the top card's rank (5..13) of the best 5
// consecutive ranks set in mask, treating the wheel (A-2-3-4-5) as
// topRank=4 so `13-topRank` still yields the correct 0..9 ordinal, or 0 if
// mask contains no straight.
func straightHighRank(mask int) int {
	for top := 12; top >= 4; top-- {
		needed := 0
		for k := 0; k < 5; k++ {
			needed |= 1 << uint(top-k)
		}
		if mask&needed == needed {
			return top + 1
		}
	}
	wheel := 1<<12 | 1<<0 | 1<<1 | 1<<2 | 1<<3
	if mask&wheel == wheel {
		return 4
	}
	return 0
}

// flushOrdinal ranks a 5-card flush mask against every other possible flush
// (all C(13,5) rank combinations minus the 10 straight flushes), strongest
// first, by counting how many stronger combinations precede it in
// descending numeric order of the mask itself: flush strength is exactly
// numeric mask order once straight patterns are excluded, since higher
// rank bits dominate lower ones lexicographically the same way they
// dominate hand strength.
func flushOrdinal(mask int) int {
	ordinal := 0
	for m := (1 << 13) - 1; m > mask; m-- {
		if popcount13(m) == 5 && straightHighRank(m) == 0 {
			ordinal++
		}
	}
	return ordinal
}

func quadOrdinal(quad, kicker int) int {
	ordinal := 0
	for _, q := range descRanks {
		if q != quad {
			ordinal += 12
			continue
		}
		for _, k := range without(q) {
			if k == kicker {
				return ordinal
			}
			ordinal++
		}
	}
	return ordinal
}

func fullHouseOrdinal(trip, pair int) int {
	ordinal := 0
	for _, t := range descRanks {
		if t != trip {
			ordinal += 12
			continue
		}
		for _, p := range without(t) {
			if p == pair {
				return ordinal
			}
			ordinal++
		}
	}
	return ordinal
}

func threeOfAKindOrdinal(trip, hi, lo int) int {
	ordinal := 0
	for _, t := range descRanks {
		kickers := without(t)
		if t != trip {
			ordinal += len(kickers) * (len(kickers) - 1) / 2
			continue
		}
		for i := 0; i < len(kickers)-1; i++ {
			for j := i + 1; j < len(kickers); j++ {
				if kickers[i] == hi && kickers[j] == lo {
					return ordinal
				}
				ordinal++
			}
		}
	}
	return ordinal
}

func twoPairOrdinal(hi, lo, kicker int) int {
	ordinal := 0
	for i := 0; i < len(descRanks)-1; i++ {
		for j := i + 1; j < len(descRanks); j++ {
			a, b := descRanks[i], descRanks[j]
			if a != hi || b != lo {
				ordinal += 11 // remaining kickers after removing this pair
				continue
			}
			for _, k := range without(a, b) {
				if k == kicker {
					return ordinal
				}
				ordinal++
			}
		}
	}
	return ordinal
}

func pairOrdinal(pair, k1, k2, k3 int) int {
	ordinal := 0
	for _, p := range descRanks {
		kickers := without(p)
		combos := len(kickers) * (len(kickers) - 1) * (len(kickers) - 2) / 6
		if p != pair {
			ordinal += combos
			continue
		}
		for i := 0; i < len(kickers)-2; i++ {
			for j := i + 1; j < len(kickers)-1; j++ {
				for k := j + 1; k < len(kickers); k++ {
					if kickers[i] == k1 && kickers[j] == k2 && kickers[k] == k3 {
						return ordinal
					}
					ordinal++
				}
			}
		}
	}
	return ordinal
}

// highCardOrdinal reuses flushOrdinal: a high-card hand is just a 5-distinct
// -rank combination with no straight, the same universe plain flushes are
// ranked against (only the suit context differs, and this ordinal is
// suit-agnostic).
func highCardOrdinal(r1, r2, r3, r4, r5 int) int {
	return flushOrdinal(bitsOf(r1, r2, r3, r4, r5))
}

// pocketPairs are the six ways to choose 2 of the 4 pocket cards.
var pocketPairs = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

// boardTriples are the ten ways to choose 3 of 5 board cards, the first
// entries valid whenever fewer board cards are in play.
var boardTriples = [10][3]int{
	{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3},
	{0, 1, 4}, {0, 2, 4}, {0, 3, 4}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4},
}

var boardTripleCounts = map[int]int{3: 1, 4: 4, 5: 10}

// EvalOmaha scores a real (3, 4, or 5-card) board against a 4-card pocket by
// enumerating every Omaha-legal 2-of-pocket, 3-of-board selection and
// returning the strongest (project-scale) result. This is the verifier's
// ground truth: it never touches a canonical ID or the built array.
func EvalOmaha(board []int, pocket [4]int) int {
	triples := boardTripleCounts[len(board)]
	best := 0
	for _, pp := range pocketPairs {
		p0, p1 := pocket[pp[0]], pocket[pp[1]]
		for t := 0; t < triples; t++ {
			tri := boardTriples[t]
			b0, b1, b2 := board[tri[0]], board[tri[1]], board[tri[2]]
			score := ToProjectScale(Score5([5]int{b0, b1, b2, p0, p1}))
			if score > best {
				best = score
			}
		}
	}
	return best
}

func bitsOf(ranks ...int) int {
	mask := 0
	for _, r := range ranks {
		mask |= 1 << uint(r-1)
	}
	return mask
}
