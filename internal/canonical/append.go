package canonical

import "github.com/lox/omahahash/internal/cardcode"

// AppendFunc is the shared shape of the three successor functions: given a
// state and a raw card 0..52 (0 meaning "no card", used only to pad missing
// board slots), it returns the successor ID, or 0 if the append is rejected.
type AppendFunc func(id ID, card int) ID

// AppendFlushSuit translates card to its suit (or Skip for card==0), inserts
// it into the next board/pocket slot, and repacks. It rejects only when all
// nine slots are already occupied.
func AppendFlushSuit(id ID, card int) ID {
	value := cardcode.Skip
	if card != 0 {
		value = cardcode.Suit(card)
	}
	slots, _, _, ok := withInserted(Slots(id), uint8(value))
	if !ok {
		return 0
	}
	return Pack(slots)
}

// AppendFlushRank translates card to rank+1 if it is of suit S, else
// AnyCard, or Skip for card==0. Ranks must stay unique among the non-ANY,
// non-Skip slots already present. Omaha-specific pruning then rejects a
// 4-card board with at most one suited rank, a 5-card board with at most
// two, and a 5-card board whose pocket holds no suited rank at three pocket
// cards or at most one at four.
func AppendFlushRank(id ID, card int, suit int) ID {
	value := cardcode.Skip
	if card != 0 {
		if cardcode.Suit(card) == suit {
			value = cardcode.Rank(card) + 1
		} else {
			value = cardcode.AnyCard
		}
	}

	if value != cardcode.AnyCard && value != cardcode.Skip {
		for _, v := range Slots(id) {
			if int(v) == value {
				return 0
			}
		}
	}

	slots, boardCount, pocketCount, ok := withInserted(Slots(id), uint8(value))
	if !ok {
		return 0
	}

	nsb := countSuited(slots[:boardSlots])
	nsp := countSuited(slots[boardSlots:])

	switch {
	case boardCount == 4 && nsb <= 1:
		return 0
	case boardCount == 5 && nsb <= 2:
		return 0
	case boardCount == 5 && pocketCount == 3 && nsp == 0:
		return 0
	case boardCount == 5 && pocketCount == 4 && nsp <= 1:
		return 0
	}

	return Pack(slots)
}

// AppendNoFlush translates card to its rank (or Skip for card==0), rejecting
// if that rank would then occur more than four times across board+pocket.
func AppendNoFlush(id ID, card int) ID {
	value := cardcode.Skip
	if card != 0 {
		value = cardcode.Rank(card)
	}

	if value != cardcode.Skip {
		occurrences := 0
		for _, v := range Slots(id) {
			if int(v) == value {
				occurrences++
			}
		}
		if occurrences >= 4 {
			return 0
		}
	}

	slots, _, _, ok := withInserted(Slots(id), uint8(value))
	if !ok {
		return 0
	}
	return Pack(slots)
}

// countSuited counts the slots in group holding a real suited rank: not
// empty, not Skip, not AnyCard.
func countSuited(group []uint8) int {
	n := 0
	for _, v := range group {
		if v != 0 && int(v) != cardcode.Skip && int(v) != cardcode.AnyCard {
			n++
		}
	}
	return n
}
