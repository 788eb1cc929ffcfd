package cards

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
	"unsafe"
)

const (
	MinDecks = 1
	MaxDecks = 4
)

// ErrInvalidDeckCount is returned when a shoe is requested with a deck count
// outside [MinDecks, MaxDecks].
var ErrInvalidDeckCount = errors.New("invalid deck count")

// Shoe represents multiple decks of cards drawn from a single cursor.
// Cards[len(Cards)-cursor:] are still to be drawn.
type Shoe struct {
	Cards    Stack
	cursor   int
	rng      *rand.Rand
	handlers []func(Stack)
}

// NewShoe creates a new shoe with a given number of decks in generation
// order. The shoe is not shuffled.
func NewShoe(numDecks int, rng *rand.Rand) (*Shoe, error) {
	if numDecks < MinDecks || numDecks > MaxDecks {
		return nil, fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidDeckCount, numDecks, MinDecks, MaxDecks)
	}

	cards := make(Stack, 0, numDecks*DeckSize)
	for i := 0; i < numDecks; i++ {
		cards.AddCards(NewDeck()...)
	}
	return newShoe(cards, rng), nil
}

// NewStackedShoe creates a shoe that deals the given cards in order. Once
// they run out the shoe reshuffles them like any other shoe.
func NewStackedShoe(rng *rand.Rand, cards ...Card) *Shoe {
	stack := make(Stack, len(cards))
	copy(stack, cards)
	return newShoe(stack, rng)
}

func newShoe(cards Stack, rng *rand.Rand) *Shoe {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Shoe{Cards: cards, cursor: len(cards), rng: rng}
}

// OnReshuffle registers a callback invoked with the shoe's cards every time
// an exhausted shoe is reshuffled by Draw.
func (s *Shoe) OnReshuffle(handler func(Stack)) {
	s.handlers = append(s.handlers, handler)
}

// Shuffle permutes all cards in place and resets the cursor to full.
func (s *Shoe) Shuffle() {
	s.rng.Shuffle(len(s.Cards), func(i, j int) {
		s.Cards[i], s.Cards[j] = s.Cards[j], s.Cards[i]
	})
	s.cursor = len(s.Cards)
}

// Draw removes and returns the next card. An exhausted shoe is reshuffled
// first, so Draw never fails on a non-empty shoe.
func (s *Shoe) Draw() Card {
	if s.cursor <= 0 {
		s.Shuffle()
		for _, handler := range s.handlers {
			handler(s.Cards)
		}
	}

	card := s.Cards[len(s.Cards)-s.cursor]
	s.cursor--
	return card
}

// Remaining returns the number of cards left before the next reshuffle
func (s *Shoe) Remaining() int {
	return s.cursor
}

// Len returns the total number of cards in the shoe
func (s *Shoe) Len() int {
	return len(s.Cards)
}

// SizeBytes returns the memory footprint of the shoe's cards
func (s *Shoe) SizeBytes() int {
	return len(s.Cards) * int(unsafe.Sizeof(Card{}))
}
