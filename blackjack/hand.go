package blackjack

import "github.com/lazharichir/blackjack/cards"

const (
	// Limit is the highest total that does not bust
	Limit = 21
	// DealerStandsOn is the total at which the dealer stops drawing
	DealerStandsOn = 17
)

// Hand is the ordered set of cards held by one party for one round
type Hand struct {
	Cards cards.Stack
}

// NewHand creates a hand holding the given cards
func NewHand(cs ...cards.Card) *Hand {
	return &Hand{Cards: cards.NewStack(cs...)}
}

// Append adds a card to the end of the hand
func (h *Hand) Append(card cards.Card) {
	h.Cards.AddCard(card)
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.Cards)
}

// Total computes the blackjack total. Aces count 11 and are reduced to 1,
// one at a time, while the total exceeds 21.
func (h *Hand) Total() int {
	total, _ := h.score()
	return total
}

// IsSoft reports whether at least one ace is still counted as 11.
func (h *Hand) IsSoft() bool {
	_, soft := h.score()
	return soft > 0
}

func (h *Hand) score() (total int, softAces int) {
	for _, c := range h.Cards {
		total += c.Value.Points()
		if c.IsAce() {
			softAces++
		}
	}

	for total > Limit && softAces > 0 {
		total -= 10
		softAces--
	}
	return total, softAces
}

// IsBust reports whether the total exceeds 21
func (h *Hand) IsBust() bool {
	return h.Total() > Limit
}

// IsBlackjack reports a natural: exactly two cards, one an ace and the other
// ten-valued. A three card 21 is not a blackjack.
func (h *Hand) IsBlackjack() bool {
	if len(h.Cards) != 2 {
		return false
	}

	hasAce, hasTen := false, false
	for _, c := range h.Cards {
		if c.IsAce() {
			hasAce = true
		}
		if c.Value >= cards.Ten {
			hasTen = true
		}
	}
	return hasAce && hasTen
}

// Display renders up to limit cards as "<Rank> of <Suit>" joined with ", ".
func (h *Hand) Display(limit int) string {
	return h.Cards.Join(limit)
}

func (h *Hand) String() string {
	return h.Display(h.Len())
}
