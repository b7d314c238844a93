// Package tablebuild implements the linker that turns the three canonical-ID
// lists into one flat hand-ranks array: a shared layout of fixed-width blocks
// where every column is either a forward pointer to another block or, at the
// ninth card, an inlined terminal verdict.
package tablebuild

import (
	"github.com/lox/omahahash/internal/canonical"
)

// maxCard bounds the per-block column range (cards 1..52, plus column 0).
const maxCard = 52

// Eval computes the terminal verdict for a fully dealt (9-card) ID.
type Eval func(id canonical.ID) int

// region describes one automaton's slice of the shared array.
type region struct {
	base     int32
	width    int32
	fallback int32
	ids      []canonical.ID
	index    map[canonical.ID]int32
	appendFn canonical.AppendFunc
	eval     Eval
	override map[int]int32
	nDummy   int32
	dummyCol int32
}

// RegionSpec describes one automaton's slice of the shared array, exported
// so callers that need a small hand-built region (tests, and package query's
// own fixtures) can reuse the real linker instead of reimplementing it.
type RegionSpec struct {
	Base     int32
	Width    int32
	Fallback int32
	IDs      []canonical.ID
	Index    map[canonical.ID]int32
	AppendFn canonical.AppendFunc
	Eval     Eval
	Override map[int]int32
	NDummy   int32
	DummyCol int32
}

// BuildRegion writes one region's dead-end row and every ID's block into
// array, per the layout and linking rules shared by all three automata.
func BuildRegion(array []int32, spec RegionSpec) {
	r := region{
		base:     spec.Base,
		width:    spec.Width,
		fallback: spec.Fallback,
		ids:      spec.IDs,
		index:    spec.Index,
		appendFn: spec.AppendFn,
		eval:     spec.Eval,
		override: spec.Override,
		nDummy:   spec.NDummy,
		dummyCol: spec.DummyCol,
	}
	r.build(array)
}

// blockStart returns the array offset of id list-index i's block: the first
// block (i=0) sits immediately after the region's dead-end row.
func (r *region) blockStart(i int) int32 {
	return r.base + r.width + int32(i)*r.width
}

// build writes the region's dead-end row and every ID's block into array.
func (r *region) build(array []int32) {
	array[r.base] = r.fallback
	for k := int32(1); k < r.width; k++ {
		array[r.base+k] = r.base
	}

	for i, id := range r.ids {
		r.buildBlock(array, i, id)
	}
}

// buildBlock populates one ID's block: for every reachable next card, either
// a dead-end fallback, a forward pointer to the successor's block, or (once
// nine cards have been dealt) the terminal evaluator's verdict, remapped
// through the region's override table when present.
func (r *region) buildBlock(array []int32, i int, id canonical.ID) {
	start := r.blockStart(i)
	cards := canonical.CountCards(id)

	minCard := 1
	if cards <= 1 {
		minCard = 0
	}

	for card := minCard; card <= maxCard; card++ {
		newID := r.appendFn(id, card)

		var v int32
		switch {
		case newID == 0:
			v = r.base
		case cards+1 == 9:
			verdict := r.eval(newID)
			if mapped, ok := r.override[verdict]; ok {
				v = mapped
			} else {
				v = int32(verdict)
			}
		default:
			v = r.blockStart(int(r.index[newID]))
		}
		array[start+int32(card)] = v
	}

	for j := int32(0); j < r.nDummy; j++ {
		array[start+53+j] = array[start+r.dummyCol]
	}
}

// length returns how many int32s the region occupies, including its
// dead-end row.
func (r *region) length() int32 {
	return r.width + int32(len(r.ids))*r.width
}
