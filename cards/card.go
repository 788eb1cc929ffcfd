package cards

import (
	"fmt"
	"strings"
)

// CardFromString creates a card from its shorthand representation
// e.g., "As" or "AS" -> Card{Suit: Spades, Value: Ace}
// e.g., "10h" or "10H" -> Card{Suit: Hearts, Value: Ten}
func CardFromString(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %s", s)
	}

	var suit Suit
	switch s[len(s)-1:] {
	case "s", "S":
		suit = Spades
	case "h", "H":
		suit = Hearts
	case "d", "D":
		suit = Diamonds
	case "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card suit: %s", s[len(s)-1:])
	}

	var value Value
	switch strings.ToUpper(s[:len(s)-1]) {
	case "A":
		value = Ace
	case "K":
		value = King
	case "Q":
		value = Queen
	case "J":
		value = Jack
	case "10":
		value = Ten
	case "9":
		value = Nine
	case "8":
		value = Eight
	case "7":
		value = Seven
	case "6":
		value = Six
	case "5":
		value = Five
	case "4":
		value = Four
	case "3":
		value = Three
	case "2":
		value = Two
	default:
		return Card{}, fmt.Errorf("invalid card value: %s", s[:len(s)-1])
	}

	return Card{Suit: suit, Value: value}, nil
}

// MustCards parses a list of shorthands and panics on the first invalid one.
// Intended for fixtures.
func MustCards(shorthands ...string) Stack {
	stack := make(Stack, 0, len(shorthands))
	for _, s := range shorthands {
		c, err := CardFromString(s)
		if err != nil {
			panic(err)
		}
		stack = append(stack, c)
	}
	return stack
}

// Suit represents a card suit
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists the suits in generation order.
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

var suitNames = [...]string{"Clubs", "Diamonds", "Hearts", "Spades"}

func (s Suit) String() string {
	if int(s) >= len(suitNames) {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return suitNames[s]
}

// Value represents a card rank, 1 (Ace) through 13 (King)
type Value uint8

const (
	Ace Value = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Values lists the ranks in generation order.
var Values = []Value{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var valueNames = [...]string{"", "Ace", "2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King"}

func (v Value) String() string {
	if v < Ace || v > King {
		return fmt.Sprintf("Value(%d)", uint8(v))
	}
	return valueNames[v]
}

// Points is the blackjack value of the rank with an Ace counted as 11.
func (v Value) Points() int {
	switch {
	case v == Ace:
		return 11
	case v >= Ten:
		return 10
	default:
		return int(v)
	}
}

// Card represents a playing card
type Card struct {
	Suit  Suit
	Value Value
}

// String returns the string representation of a card, e.g. "Ace of Spades"
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Value, c.Suit)
}

// IsAce checks if the card is an ace
func (c Card) IsAce() bool {
	return c.Value == Ace
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c.Suit == other.Suit && c.Value == other.Value
}
