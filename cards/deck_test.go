package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()

	assert.Len(t, deck, DeckSize)
	assert.Equal(t, Card{Suit: Clubs, Value: Ace}, deck[0], "generation starts with the Ace of Clubs")
	assert.Equal(t, Card{Suit: Spades, Value: King}, deck[DeckSize-1], "generation ends with the King of Spades")

	for _, suit := range Suits {
		for _, value := range Values {
			assert.Equal(t, 1, deck.Count(Card{Suit: suit, Value: value}), "%s of %s", value, suit)
		}
	}
}
