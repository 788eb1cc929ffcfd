package cards

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShoe(t *testing.T) {
	for n := MinDecks; n <= MaxDecks; n++ {
		shoe, err := NewShoe(n, nil)
		require.NoError(t, err)

		assert.Equal(t, DeckSize*n, shoe.Len())
		assert.Equal(t, DeckSize*n, shoe.Remaining())
		for _, suit := range Suits {
			for _, value := range Values {
				assert.Equal(t, n, shoe.Cards.Count(Card{Suit: suit, Value: value}))
			}
		}
	}
}

func TestNewShoe_InvalidDeckCount(t *testing.T) {
	for _, n := range []int{-1, 0, 5, 52} {
		shoe, err := NewShoe(n, nil)
		assert.ErrorIs(t, err, ErrInvalidDeckCount, "deck count %d", n)
		assert.Nil(t, shoe)
	}
}

func TestShoe_Shuffle(t *testing.T) {
	shoe, err := NewShoe(2, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	original := make(Stack, shoe.Len())
	copy(original, shoe.Cards)

	shoe.Draw()
	shoe.Shuffle()

	assert.Equal(t, shoe.Len(), shoe.Remaining(), "shuffle resets the cursor")
	assert.ElementsMatch(t, original, shoe.Cards, "shuffle is a permutation")

	differences := 0
	for i := range original {
		if original[i] != shoe.Cards[i] {
			differences++
		}
	}
	assert.NotZero(t, differences, "Shuffled shoe is identical to original shoe")
}

func TestShoe_Draw(t *testing.T) {
	cards := MustCards("As", "Kd", "5c")
	shoe := NewStackedShoe(nil, cards...)

	assert.Equal(t, cards[0], shoe.Draw())
	assert.Equal(t, cards[1], shoe.Draw())
	assert.Equal(t, 1, shoe.Remaining())
	assert.Equal(t, cards[2], shoe.Draw())
	assert.Equal(t, 0, shoe.Remaining())
}

func TestShoe_DrawReshufflesWhenExhausted(t *testing.T) {
	shoe, err := NewShoe(1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	shoe.Shuffle()

	reshuffles := 0
	shoe.OnReshuffle(func(cards Stack) {
		reshuffles++
		assert.Len(t, cards, DeckSize)
	})

	drawn := NewStack()
	for i := 0; i < DeckSize; i++ {
		drawn.AddCard(shoe.Draw())
	}
	assert.Zero(t, reshuffles)
	assert.ElementsMatch(t, NewDeck(), drawn, "a full pass deals every card exactly once")

	card := shoe.Draw()
	assert.Equal(t, 1, reshuffles)
	assert.Equal(t, DeckSize-1, shoe.Remaining())
	assert.Equal(t, 1, NewDeck().Count(card), "post-reshuffle card comes from the constructed set")
	assert.ElementsMatch(t, NewDeck(), shoe.Cards, "no cards are added by a reshuffle")
}

func TestShoe_SizeBytes(t *testing.T) {
	shoe, err := NewShoe(3, nil)
	require.NoError(t, err)

	assert.Equal(t, 3*DeckSize*2, shoe.SizeBytes())
}
