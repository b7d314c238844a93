// Package automaton builds the three canonical-ID lists — flush-suit,
// flush-rank (biased suit), and no-flush — by breadth-first search over the
// append functions in package canonical.
package automaton

import (
	"sort"

	"github.com/lox/omahahash/internal/canonical"
)

const maxDepth = 8

// Generate runs the BFS closure for one append function and returns the
// cumulative, sorted, deduplicated list of every reachable ID at depths
// 1..8, prefixed with the empty state (ID 0). The empty state occupies
// index 0 so the linker's "second block" convention lines up with
// it: a region's very first real block always describes the zero-card
// state's transitions.
func Generate(appendFn canonical.AppendFunc) []canonical.ID {
	all := []canonical.ID{0}
	frontier := []canonical.ID{0}

	for depth := 1; depth <= maxDepth; depth++ {
		minCard := 1
		if depth <= 2 {
			minCard = 0
		}

		seen := make(map[canonical.ID]struct{})
		var next []canonical.ID
		for _, id := range frontier {
			for card := minCard; card <= 52; card++ {
				successor := appendFn(id, card)
				if successor == 0 {
					continue
				}
				if _, dup := seen[successor]; dup {
					continue
				}
				seen[successor] = struct{}{}
				next = append(next, successor)
			}
		}

		sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
		all = append(all, next...)
		frontier = next
	}

	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}

// Index builds the id -> list-position lookup the linker uses to resolve
// intermediate (non-terminal) transitions.
func Index(ids []canonical.ID) map[canonical.ID]int32 {
	index := make(map[canonical.ID]int32, len(ids))
	for i, id := range ids {
		index[id] = int32(i)
	}
	return index
}
