package cards

import "strings"

// Stack represents an ordered collection of cards
type Stack []Card

// NewStack creates a new stack from the given cards
func NewStack(cards ...Card) Stack {
	return Stack(cards)
}

// AddCard appends a card to the end of the stack
func (s *Stack) AddCard(card Card) {
	*s = append(*s, card)
}

// AddCards appends cards to the end of the stack
func (s *Stack) AddCards(cards ...Card) {
	*s = append(*s, cards...)
}

// Len returns the number of cards in the stack
func (s Stack) Len() int {
	return len(s)
}

// Count returns how many cards in the stack equal card
func (s Stack) Count(card Card) int {
	n := 0
	for _, c := range s {
		if c.Equals(card) {
			n++
		}
	}
	return n
}

// Join renders the first limit cards joined with ", ". The limit is clamped
// to the stack size.
func (s Stack) Join(limit int) string {
	if limit > len(s) {
		limit = len(s)
	}
	if limit < 0 {
		limit = 0
	}

	names := make([]string, limit)
	for i := 0; i < limit; i++ {
		names[i] = s[i].String()
	}
	return strings.Join(names, ", ")
}

func (s Stack) String() string {
	return s.Join(len(s))
}
