package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		// Valid cards with different suit notations
		{"Ace of Spades lowercase", "As", Card{Suit: Spades, Value: Ace}, false},
		{"Ace of Spades uppercase", "AS", Card{Suit: Spades, Value: Ace}, false},
		{"Ten of Hearts lowercase", "10h", Card{Suit: Hearts, Value: Ten}, false},
		{"Ten of Hearts uppercase", "10H", Card{Suit: Hearts, Value: Ten}, false},
		{"Queen of Diamonds lowercase", "Qd", Card{Suit: Diamonds, Value: Queen}, false},
		{"Two of Clubs uppercase", "2C", Card{Suit: Clubs, Value: Two}, false},

		// All values for a single suit
		{"King of Hearts", "Kh", Card{Suit: Hearts, Value: King}, false},
		{"Jack of Hearts", "Jh", Card{Suit: Hearts, Value: Jack}, false},
		{"Nine of Hearts", "9h", Card{Suit: Hearts, Value: Nine}, false},
		{"Eight of Hearts", "8h", Card{Suit: Hearts, Value: Eight}, false},
		{"Seven of Hearts", "7h", Card{Suit: Hearts, Value: Seven}, false},
		{"Six of Hearts", "6h", Card{Suit: Hearts, Value: Six}, false},
		{"Five of Hearts", "5h", Card{Suit: Hearts, Value: Five}, false},
		{"Four of Hearts", "4h", Card{Suit: Hearts, Value: Four}, false},
		{"Three of Hearts", "3h", Card{Suit: Hearts, Value: Three}, false},
		{"Input with mixed case", "aS", Card{Suit: Spades, Value: Ace}, false},

		// Invalid inputs
		{"Input with trailing space", "AS ", Card{}, true},
		{"Input with leading space", " AS", Card{}, true},
		{"Too short input", "A", Card{}, true},
		{"Empty input", "", Card{}, true},
		{"Invalid suit", "10X", Card{}, true},
		{"Invalid value", "11S", Card{}, true},
		{"Invalid format", "XX", Card{}, true},
		{"Number too large", "100S", Card{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CardFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err, "CardFromString(%q) should return an error", tt.input)
			} else {
				require.NoError(t, err, "CardFromString(%q) should not return an error", tt.input)
				require.Equal(t, tt.want, got, "CardFromString(%q) should return the correct card", tt.input)
			}
		})
	}
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "Ace of Spades", Card{Suit: Spades, Value: Ace}.String())
	assert.Equal(t, "10 of Hearts", Card{Suit: Hearts, Value: Ten}.String())
	assert.Equal(t, "Queen of Diamonds", Card{Suit: Diamonds, Value: Queen}.String())
	assert.Equal(t, "7 of Clubs", Card{Suit: Clubs, Value: Seven}.String())
}

func TestValue_Points(t *testing.T) {
	assert.Equal(t, 11, Ace.Points())
	for v := Two; v <= Nine; v++ {
		assert.Equal(t, int(v), v.Points(), "value %s", v)
	}
	for _, v := range []Value{Ten, Jack, Queen, King} {
		assert.Equal(t, 10, v.Points(), "value %s", v)
	}
}

func TestMustCards(t *testing.T) {
	stack := MustCards("As", "Kd")
	assert.Equal(t, Stack{{Suit: Spades, Value: Ace}, {Suit: Diamonds, Value: King}}, stack)

	assert.Panics(t, func() { MustCards("Zz") })
}
