// Package cardcode defines the integer card domain shared by every automaton:
// cards are ints in 1..52, rank and suit are derived by arithmetic, and two
// sentinels (SKIP, AnyCard) extend the domain for omitted board positions and
// off-suit cards in the flush-rank space.
package cardcode

import (
	"fmt"
	"strings"
)

const (
	// Skip marks a board position that was never dealt, letting the 9-slot
	// automaton answer 7- and 8-card queries.
	Skip = 53

	// AnyCard marks, in flush-rank space, a card that is not of the reference
	// suit; its rank is irrelevant to that automaton.
	AnyCard = 1

	// MinCard and MaxCard bound the real card domain.
	MinCard = 1
	MaxCard = 52
)

// Rank returns the card's rank in 1..13 (1=deuce .. 13=ace).
func Rank(card int) int {
	return 1 + ((card - 1) >> 2)
}

// Suit returns the card's suit in 1..4.
func Suit(card int) int {
	return 1 + ((card - 1) & 3)
}

// New builds the integer card from a 1..13 rank and a 1..4 suit.
func New(rank, suit int) int {
	return (rank-1)*4 + suit
}

// rankNames and suitNames index by Rank()-1 / Suit()-1.
var rankNames = [13]byte{'2', '3', '4', '5', '6', '7', '8', '9', 'T', 'J', 'Q', 'K', 'A'}
var suitNames = [4]byte{'c', 'd', 'h', 's'}

// String renders a card in the conventional "Rank Suit" notation, e.g. "As", "Td".
func String(card int) string {
	if card < MinCard || card > MaxCard {
		return fmt.Sprintf("?(%d)", card)
	}
	return fmt.Sprintf("%c%c", rankNames[Rank(card)-1], suitNames[Suit(card)-1])
}

// ParseCards parses a space-free string of two-character card notations
// ("AsKsQsJsTs") into integer cards 1..52.
func ParseCards(s string) ([]int, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %d (must be even)", len(s))
	}

	cards := make([]int, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		rank, err := parseRank(s[i])
		if err != nil {
			return nil, fmt.Errorf("invalid rank %q at position %d: %w", s[i], i, err)
		}
		suit, err := parseSuit(s[i+1])
		if err != nil {
			return nil, fmt.Errorf("invalid suit %q at position %d: %w", s[i+1], i+1, err)
		}
		cards = append(cards, New(rank, suit))
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error; intended for tests.
func MustParseCards(s string) []int {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("cardcode: failed to parse %q: %v", s, err))
	}
	return cards
}

func parseRank(c byte) (int, error) {
	switch c {
	case 'A', 'a':
		return 13, nil
	case 'K', 'k':
		return 12, nil
	case 'Q', 'q':
		return 11, nil
	case 'J', 'j':
		return 10, nil
	case 'T', 't':
		return 9, nil
	case '9':
		return 8, nil
	case '8':
		return 7, nil
	case '7':
		return 6, nil
	case '6':
		return 5, nil
	case '5':
		return 4, nil
	case '4':
		return 3, nil
	case '3':
		return 2, nil
	case '2':
		return 1, nil
	default:
		return 0, fmt.Errorf("unknown rank %q", c)
	}
}

func parseSuit(c byte) (int, error) {
	switch c {
	case 'c', 'C':
		return 1, nil
	case 'd', 'D':
		return 2, nil
	case 'h', 'H':
		return 3, nil
	case 's', 'S':
		return 4, nil
	default:
		return 0, fmt.Errorf("unknown suit %q", c)
	}
}
