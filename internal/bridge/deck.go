package bridge

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// Suits lists all suits in deck construction order.
var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

// Ranks lists all ranks from Two through Ace.
var Ranks = [13]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// NewDeck returns the 52 unique cards in suit-then-rank order.
func NewDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return cards
}
