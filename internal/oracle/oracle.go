// Package oracle is the pre-tabulated 5-card Cactus-Kev evaluator the table
// builder treats as an opaque external collaborator: a prime-product keyed
// lookup built once at init time, grounded on the classic technique (score
// every 5-rank combination via its prime product, generate flush patterns by
// walking bit permutations in ascending order). Lower scores are stronger
// hands; ToProjectScale flips that so the build pipeline can combine flush and
// no-flush candidates with a single max().
package oracle

import "fmt"

// Category upper bounds on the classic 1..7462 scale (1 = royal flush).
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

// primes indexes by rank-1 (rank 1=deuce .. 13=ace).
var primes = [13]int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

var (
	flushLookup    map[int]int
	unsuitedLookup map[int]int
)

func init() {
	flushLookup = make(map[int]int, maxFlush-maxFullHouse+maxStraightFlush)
	unsuitedLookup = make(map[int]int, maxHighCard)
	buildFlushes()
	buildMultiples()
}

// primeProduct returns the product of primes for each set bit (bit i =
// rank i+1) in a 13-bit rank mask.
func primeProduct(mask int) int {
	p := 1
	for i := 0; i < 13; i++ {
		if mask&(1<<i) != 0 {
			p *= primes[i]
		}
	}
	return p
}

// nextBitPermutation returns the next integer with the same popcount as v,
// in ascending numeric order (Stanford bit-hacks "next lexicographic
// permutation of bits").
func nextBitPermutation(v int) int {
	t := (v | (v - 1)) + 1
	return t | ((((t & -t) / (v & -v)) >> 1) - 1)
}

func buildFlushes() {
	// Straight flushes, wheel last, in descending strength order.
	straightFlushMasks := [10]int{
		0b1111100000000, // broadway
		0b111110000000,
		0b11111000000,
		0b1111100000,
		0b111110000,
		0b11111000,
		0b1111100,
		0b111110,
		0b11111,
		0b1000000001111, // wheel (A-2-3-4-5)
	}

	isStraightFlush := func(mask int) bool {
		for _, sf := range straightFlushMasks {
			if mask == sf {
				return true
			}
		}
		return false
	}

	var plainFlushes []int
	mask := 0b11111
	for len(plainFlushes) < 1277 {
		if !isStraightFlush(mask) {
			plainFlushes = append(plainFlushes, mask)
		}
		mask = nextBitPermutation(mask)
	}
	// Ascending numeric order correlates with ascending strength; reverse so
	// the strongest plain flush is assigned the lowest (best) rank number.
	for i, j := 0, len(plainFlushes)-1; i < j; i, j = i+1, j-1 {
		plainFlushes[i], plainFlushes[j] = plainFlushes[j], plainFlushes[i]
	}

	rank := 1
	for _, sf := range straightFlushMasks {
		flushLookup[primeProduct(sf)] = rank
		rank++
	}
	rank = maxFullHouse + 1
	for _, f := range plainFlushes {
		flushLookup[primeProduct(f)] = rank
		rank++
	}

	// The unsuited lookup also needs straights and the bare high-card scale;
	// both families share the same rank-mask universe as the flush tables.
	rank = maxFlush + 1
	for _, sf := range straightFlushMasks {
		unsuitedLookup[primeProduct(sf)] = rank
		rank++
	}
	rank = maxPair + 1
	for _, f := range plainFlushes {
		unsuitedLookup[primeProduct(f)] = rank
		rank++
	}
}

func buildMultiples() {
	// Ranks high to low so the strongest combination of each category is
	// assigned the lowest (best) rank number first.
	var descRanks [13]int
	for i := 0; i < 13; i++ {
		descRanks[i] = 12 - i
	}

	without := func(ranks []int, exclude ...int) []int {
		out := make([]int, 0, len(ranks))
		for _, r := range ranks {
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

	// Four of a kind.
	rank := maxStraightFlush + 1
	for _, quad := range descRanks {
		for _, kicker := range without(descRanks[:], quad) {
			product := primes[quad] * primes[quad] * primes[quad] * primes[quad] * primes[kicker]
			unsuitedLookup[product] = rank
			rank++
		}
	}

	// Full house.
	rank = maxFourOfAKind + 1
	for _, trip := range descRanks {
		for _, pair := range without(descRanks[:], trip) {
			product := primes[trip] * primes[trip] * primes[trip] * primes[pair] * primes[pair]
			unsuitedLookup[product] = rank
			rank++
		}
	}

	// Three of a kind.
	rank = maxStraight + 1
	for _, trip := range descRanks {
		kickers := without(descRanks[:], trip)
		for i := 0; i < len(kickers)-1; i++ {
			for j := i + 1; j < len(kickers); j++ {
				product := primes[trip] * primes[trip] * primes[trip] * primes[kickers[i]] * primes[kickers[j]]
				unsuitedLookup[product] = rank
				rank++
			}
		}
	}

	// Two pair.
	rank = maxThreeOfAKind + 1
	for i := 0; i < len(descRanks)-1; i++ {
		for j := i + 1; j < len(descRanks); j++ {
			hi, lo := descRanks[i], descRanks[j]
			for _, kicker := range without(descRanks[:], hi, lo) {
				product := primes[hi] * primes[hi] * primes[lo] * primes[lo] * primes[kicker]
				unsuitedLookup[product] = rank
				rank++
			}
		}
	}

	// Pair.
	rank = maxTwoPair + 1
	for _, pair := range descRanks {
		kickers := without(descRanks[:], pair)
		for i := 0; i < len(kickers)-2; i++ {
			for j := i + 1; j < len(kickers)-1; j++ {
				for k := j + 1; k < len(kickers); k++ {
					product := primes[pair] * primes[pair] * primes[kickers[i]] * primes[kickers[j]] * primes[kickers[k]]
					unsuitedLookup[product] = rank
					rank++
				}
			}
		}
	}
}

// Score5 evaluates exactly five cards, each given as a 1..13 rank and a
// 1..4 suit, and returns the classic Cactus-Kev scale: 1 (royal flush) to
// 7462 (worst high card), lower is stronger.
func Score5(ranks, suits [5]int) int {
	var suitMask [5]int // rank-bit mask per suit (1-indexed, 0 unused)
	for i := 0; i < 5; i++ {
		suitMask[suits[i]] |= 1 << (ranks[i] - 1)
	}

	for s := 1; s <= 4; s++ {
		if popcount13(suitMask[s]) == 5 {
			if v, ok := flushLookup[primeProduct(suitMask[s])]; ok {
				return v
			}
			panic(fmt.Sprintf("oracle: unrecognized flush mask %013b", suitMask[s]))
		}
	}

	product := 1
	for _, r := range ranks {
		product *= primes[r-1]
	}
	if v, ok := unsuitedLookup[product]; ok {
		return v
	}
	panic(fmt.Sprintf("oracle: unrecognized rank product %d for ranks %v", product, ranks))
}

func popcount13(mask int) int {
	n := 0
	for i := 0; i < 13; i++ {
		if mask&(1<<i) != 0 {
			n++
		}
	}
	return n
}

// ToProjectScale flips the Cactus-Kev scale so that higher means stronger,
// matching the convention the table-build and query pipeline use end to
// end (so flush and no-flush candidate scores can be combined with max()).
func ToProjectScale(cactusKevScore int) int {
	return maxHighCard + 1 - cactusKevScore
}
