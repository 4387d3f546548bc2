package play

import "github.com/louisbranch/bridge-engine/internal/bridge"

// Strategy suggests a card to play given the current trick state. It is a
// capability interface: future heuristic or solver-assisted strategies plug
// in without changing callers. Implementations return the zero Card when the
// hand has no cards left.
type Strategy interface {
	Name() string
	SuggestPlay(hand bridge.Hand, current bridge.Trick, trumpSuit *bridge.Suit, previous []bridge.Trick) bridge.Card
}

// LowestCard is the default strategy: it plays the lowest-ranked legal
// card, breaking rank ties by suit order. Deterministic for a given hand
// and trick.
type LowestCard struct{}

// Name identifies the strategy.
func (LowestCard) Name() string { return "lowest-card" }

// SuggestPlay picks the minimum legal card.
func (LowestCard) SuggestPlay(hand bridge.Hand, current bridge.Trick, trumpSuit *bridge.Suit, previous []bridge.Trick) bridge.Card {
	var leadSuit *bridge.Suit
	if len(current.Plays) > 0 {
		suit := current.Plays[0].Card.Suit
		leadSuit = &suit
	}

	legal := LegalPlays(hand, leadSuit)
	if len(legal) == 0 {
		return bridge.Card{}
	}
	lowest := legal[0]
	for _, card := range legal[1:] {
		if card.Rank < lowest.Rank ||
			(card.Rank == lowest.Rank && bridge.SuitOrderIndex(card.Suit) > bridge.SuitOrderIndex(lowest.Suit)) {
			lowest = card
		}
	}
	return lowest
}
