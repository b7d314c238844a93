// Package legacy loads and queries a pre-existing 7-card reference table —
// the HR_old collaborator the verifier cross-checks the built 9-card array against.
// Unlike package query's three-automaton array, HR_old is a single classic
// five-hop perfect hash (three board cards, two pocket cards) built by some
// earlier tool and supplied to this one only as a file path; this package
// never builds one, only reads and chases it.
package legacy

import "github.com/lox/omahahash/internal/persist"

// Table is a loaded HR_old array, already on the project scale (higher is
// stronger) per raygen9's own convention: the caller that built it took the
// max over permutations directly, with no rescale at query time.
type Table []int32

// initialRow mirrors the no-flush automaton's block width; the classic
// five-card chase and the no-flush automaton happen to share it since both
// reserve one row per card value 0..52.
const initialRow = 53

// Load reads a table in the same little-endian, count-prefixed layout
// package persist writes, since HR_old is just another array on disk.
func Load(path string) (Table, error) {
	array, err := persist.Read(path)
	if err != nil {
		return nil, err
	}
	return Table(array), nil
}

// eval5 chases exactly five cards through the classic hash: three board
// cards, then two pocket cards.
func (t Table) eval5(b0, b1, b2, p0, p1 int) int32 {
	off := t[initialRow+int32(b0)]
	off = t[off+int32(b1)]
	off = t[off+int32(b2)]
	off = t[off+int32(p0)]
	return t[off+int32(p1)]
}

// pocketPairs are the six ways to choose 2 of the 4 pocket cards.
var pocketPairs = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

// boardTriples are the ten ways to choose 3 of 5 board cards, the leading
// entries valid whenever fewer board cards are in play.
var boardTriples = [10][3]int{
	{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3},
	{0, 1, 4}, {0, 2, 4}, {0, 3, 4}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4},
}

var boardTripleCounts = map[int]int{3: 1, 4: 4, 5: 10}

// EvalOmaha scores a real (3, 4, or 5-card) board against a 4-card pocket by
// enumerating every Omaha-legal 2-of-pocket, 3-of-board selection through the
// classic chase and taking the strongest, exactly the way raygen9's verifier
// enumerates pocket x board permutations against HR_old.
func (t Table) EvalOmaha(board []int, pocket [4]int) int32 {
	triples := boardTripleCounts[len(board)]
	var best int32
	for _, pp := range pocketPairs {
		p0, p1 := pocket[pp[0]], pocket[pp[1]]
		for k := 0; k < triples; k++ {
			tri := boardTriples[k]
			b0, b1, b2 := board[tri[0]], board[tri[1]], board[tri[2]]
			if score := t.eval5(b0, b1, b2, p0, p1); score > best {
				best = score
			}
		}
	}
	return best
}
