package cards

// DeckSize is the number of cards in one standard deck
const DeckSize = 52

// NewDeck creates a standard deck of 52 cards in generation order:
// suits Clubs, Diamonds, Hearts, Spades, each with Ace through King.
func NewDeck() Stack {
	deck := make(Stack, 0, DeckSize)
	for _, suit := range Suits {
		for _, value := range Values {
			deck.AddCard(Card{Suit: suit, Value: value})
		}
	}
	return deck
}
