// Package play implements trick-play legality and winner resolution, plus
// the extensibility seam for card-play strategies.
package play

import "github.com/louisbranch/bridge-engine/internal/bridge"

// LegalPlays returns the cards the hand may legally play. With no lead
// suit the whole hand is legal; with a lead, cards of that suit when any
// exist, otherwise the whole hand (no forced trump or discard rule).
func LegalPlays(hand bridge.Hand, leadSuit *bridge.Suit) []bridge.Card {
	if leadSuit == nil {
		return append([]bridge.Card(nil), hand.Cards...)
	}

	var follow []bridge.Card
	for _, card := range hand.Cards {
		if card.Suit == *leadSuit {
			follow = append(follow, card)
		}
	}
	if len(follow) == 0 {
		return append([]bridge.Card(nil), hand.Cards...)
	}
	return follow
}

// TrickWinner resolves the winning seat of a complete trick. If a trump
// suit is designated and any trump was played, the highest trump wins;
// otherwise the highest card of the led suit wins. Fails with
// bridge.ErrIncompleteTrick unless exactly four plays are present.
func TrickWinner(trick bridge.Trick) (bridge.Seat, error) {
	if len(trick.Plays) != 4 {
		return 0, bridge.ErrIncompleteTrick
	}

	if trick.TrumpSuit != nil {
		if winner, ok := highestOfSuit(trick.Plays, *trick.TrumpSuit); ok {
			return winner, nil
		}
	}

	leadSuit := trick.Plays[0].Card.Suit
	winner, _ := highestOfSuit(trick.Plays, leadSuit)
	return winner, nil
}

func highestOfSuit(plays []bridge.PlayedCard, suit bridge.Suit) (bridge.Seat, bool) {
	best := -1
	var winner bridge.Seat
	for _, play := range plays {
		if play.Card.Suit != suit {
			continue
		}
		if int(play.Card.Rank) > best {
			best = int(play.Card.Rank)
			winner = play.Seat
		}
	}
	return winner, best >= 0
}
