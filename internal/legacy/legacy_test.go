package legacy

import (
	"path/filepath"
	"testing"

	"github.com/lox/omahahash/internal/cardcode"
	"github.com/lox/omahahash/internal/persist"
	"github.com/lox/omahahash/internal/reference"
)

// buildToyTable hand-links a classic five-level trie over deck: row 0..52
// at offset initialRow for the first board card, a fresh 53-wide row per
// node thereafter, terminal cells holding reference.Score5 flipped to
// project scale — the same scale raygen9's HR_old stores and the same scale
// package reference independently computes the same hands on, so this toy
// table is a real (if tiny) instance of the format, not a stand-in.
func buildToyTable(deck []int) Table {
	type node struct {
		children       map[int]*node
		leaf           bool
		b0, b1, b2, p0 int
	}
	root := &node{children: map[int]*node{}}

	var walk func(n *node, chosen []int)
	walk = func(n *node, chosen []int) {
		if len(chosen) == 4 {
			n.leaf = true
			n.b0, n.b1, n.b2, n.p0 = chosen[0], chosen[1], chosen[2], chosen[3]
			return
		}
		for _, c := range deck {
			used := false
			for _, x := range chosen {
				if x == c {
					used = true
					break
				}
			}
			if used {
				continue
			}
			if n.children[c] == nil {
				n.children[c] = &node{children: map[int]*node{}}
			}
			walk(n.children[c], append(append([]int{}, chosen...), c))
		}
	}
	walk(root, nil)

	array := make([]int32, initialRow+53)

	var emit func(n *node) int32
	emit = func(n *node) int32 {
		rowStart := int32(len(array))
		array = append(array, make([]int32, 53)...)
		for c := 1; c <= 52; c++ {
			child := n.children[c]
			if child == nil {
				continue
			}
			if !child.leaf {
				array[rowStart+int32(c)] = emit(child)
				continue
			}
			leafBase := int32(len(array))
			array = append(array, make([]int32, 53)...)
			for _, p1 := range deck {
				if p1 == child.b0 || p1 == child.b1 || p1 == child.b2 || p1 == child.p0 {
					continue
				}
				score := reference.ToProjectScale(reference.Score5([5]int{child.b0, child.b1, child.b2, child.p0, p1}))
				array[leafBase+int32(p1)] = int32(score)
			}
			array[rowStart+int32(c)] = leafBase
		}
		return rowStart
	}

	for c := 1; c <= 52; c++ {
		if child := root.children[c]; child != nil {
			array[initialRow+int32(c)] = emit(child)
		}
	}

	return Table(array)
}

func toyDeck() []int {
	return cardcode.MustParseCards("2s3s4s5s6s7c7d7h8c")
}

func TestEvalOmahaAgreesWithReferenceOnASmallDeck(t *testing.T) {
	deck := toyDeck()
	table := buildToyTable(deck)

	board := deck[0:5]
	var pocket [4]int
	copy(pocket[:], deck[5:9])

	got := table.EvalOmaha(board, pocket)
	want := int32(reference.EvalOmaha(board, pocket))
	if got != want {
		t.Fatalf("Table.EvalOmaha = %d, reference.EvalOmaha = %d", got, want)
	}
}

func TestLoadRoundTripsThroughPersist(t *testing.T) {
	deck := toyDeck()
	table := buildToyTable(deck)

	path := filepath.Join(t.TempDir(), "hr_old.bin")
	if err := persist.Write(path, []int32(table)); err != nil {
		t.Fatalf("persist.Write: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != len(table) {
		t.Fatalf("len(loaded) = %d, want %d", len(loaded), len(table))
	}

	board := deck[0:5]
	var pocket [4]int
	copy(pocket[:], deck[5:9])
	if got, want := loaded.EvalOmaha(board, pocket), table.EvalOmaha(board, pocket); got != want {
		t.Fatalf("loaded.EvalOmaha = %d, want %d", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.bin")); err == nil {
		t.Fatal("Load() = nil error, want an error for a missing file")
	}
}
