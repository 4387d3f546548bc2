package play

import (
	"errors"
	"testing"

	"github.com/louisbranch/bridge-engine/internal/bridge"
)

func card(suit bridge.Suit, rank bridge.Rank) bridge.Card {
	return bridge.Card{Suit: suit, Rank: rank}
}

func played(seat bridge.Seat, suit bridge.Suit, rank bridge.Rank) bridge.PlayedCard {
	return bridge.PlayedCard{Seat: seat, Card: card(suit, rank)}
}

func suitPtr(s bridge.Suit) *bridge.Suit {
	return &s
}

func TestLegalPlays(t *testing.T) {
	hand := bridge.Hand{Cards: []bridge.Card{
		card(bridge.Spades, bridge.Ace),
		card(bridge.Spades, bridge.King),
		card(bridge.Hearts, bridge.Queen),
	}}

	t.Run("no lead allows whole hand", func(t *testing.T) {
		plays := LegalPlays(hand, nil)
		if len(plays) != 3 {
			t.Fatalf("expected 3 legal plays, got %d", len(plays))
		}
	})

	t.Run("must follow suit", func(t *testing.T) {
		plays := LegalPlays(hand, suitPtr(bridge.Spades))
		if len(plays) != 2 {
			t.Fatalf("expected 2 legal plays, got %d", len(plays))
		}
		for _, c := range plays {
			if c.Suit != bridge.Spades {
				t.Fatalf("expected only spades, got %s", c)
			}
		}
	})

	t.Run("void frees whole hand", func(t *testing.T) {
		plays := LegalPlays(hand, suitPtr(bridge.Diamonds))
		if len(plays) != 3 {
			t.Fatalf("expected 3 legal plays when void, got %d", len(plays))
		}
	})

	t.Run("result is a copy", func(t *testing.T) {
		plays := LegalPlays(hand, nil)
		plays[0] = card(bridge.Clubs, bridge.Two)
		if hand.Cards[0] != card(bridge.Spades, bridge.Ace) {
			t.Fatalf("hand mutated through returned slice")
		}
	})
}

func TestTrickWinner(t *testing.T) {
	t.Run("highest of led suit", func(t *testing.T) {
		trick := bridge.Trick{Plays: []bridge.PlayedCard{
			played(bridge.North, bridge.Spades, bridge.Ten),
			played(bridge.East, bridge.Spades, bridge.Jack),
			played(bridge.South, bridge.Spades, bridge.Ace),
			played(bridge.West, bridge.Spades, bridge.King),
		}}
		winner, err := TrickWinner(trick)
		if err != nil {
			t.Fatalf("trick winner: %v", err)
		}
		if winner != bridge.South {
			t.Fatalf("expected South, got %s", winner)
		}
	})

	t.Run("offsuit cards cannot win", func(t *testing.T) {
		trick := bridge.Trick{Plays: []bridge.PlayedCard{
			played(bridge.North, bridge.Hearts, bridge.Two),
			played(bridge.East, bridge.Spades, bridge.Ace),
			played(bridge.South, bridge.Hearts, bridge.Ten),
			played(bridge.West, bridge.Diamonds, bridge.Ace),
		}}
		winner, err := TrickWinner(trick)
		if err != nil {
			t.Fatalf("trick winner: %v", err)
		}
		if winner != bridge.South {
			t.Fatalf("expected South on the led heart, got %s", winner)
		}
	})

	t.Run("low trump beats high plain card", func(t *testing.T) {
		trick := bridge.Trick{
			TrumpSuit: suitPtr(bridge.Clubs),
			Plays: []bridge.PlayedCard{
				played(bridge.North, bridge.Spades, bridge.Ace),
				played(bridge.East, bridge.Clubs, bridge.Two),
				played(bridge.South, bridge.Spades, bridge.King),
				played(bridge.West, bridge.Spades, bridge.Queen),
			},
		}
		winner, err := TrickWinner(trick)
		if err != nil {
			t.Fatalf("trick winner: %v", err)
		}
		if winner != bridge.East {
			t.Fatalf("expected East on the trump, got %s", winner)
		}
	})

	t.Run("highest trump among several", func(t *testing.T) {
		trick := bridge.Trick{
			TrumpSuit: suitPtr(bridge.Hearts),
			Plays: []bridge.PlayedCard{
				played(bridge.North, bridge.Diamonds, bridge.Ace),
				played(bridge.East, bridge.Hearts, bridge.Five),
				played(bridge.South, bridge.Hearts, bridge.Nine),
				played(bridge.West, bridge.Diamonds, bridge.King),
			},
		}
		winner, err := TrickWinner(trick)
		if err != nil {
			t.Fatalf("trick winner: %v", err)
		}
		if winner != bridge.South {
			t.Fatalf("expected South on the higher trump, got %s", winner)
		}
	})

	t.Run("no trump played falls back to led suit", func(t *testing.T) {
		trick := bridge.Trick{
			TrumpSuit: suitPtr(bridge.Clubs),
			Plays: []bridge.PlayedCard{
				played(bridge.North, bridge.Spades, bridge.Queen),
				played(bridge.East, bridge.Spades, bridge.Two),
				played(bridge.South, bridge.Hearts, bridge.Ace),
				played(bridge.West, bridge.Spades, bridge.Three),
			},
		}
		winner, err := TrickWinner(trick)
		if err != nil {
			t.Fatalf("trick winner: %v", err)
		}
		if winner != bridge.North {
			t.Fatalf("expected North, got %s", winner)
		}
	})

	t.Run("incomplete trick", func(t *testing.T) {
		trick := bridge.Trick{Plays: []bridge.PlayedCard{
			played(bridge.North, bridge.Spades, bridge.Ace),
		}}
		if _, err := TrickWinner(trick); !errors.Is(err, bridge.ErrIncompleteTrick) {
			t.Fatalf("expected ErrIncompleteTrick, got %v", err)
		}
		if _, err := TrickWinner(bridge.Trick{}); !errors.Is(err, bridge.ErrIncompleteTrick) {
			t.Fatalf("expected ErrIncompleteTrick for empty trick, got %v", err)
		}
	})
}

func TestLowestCardStrategy(t *testing.T) {
	strategy := LowestCard{}
	if strategy.Name() != "lowest-card" {
		t.Fatalf("unexpected strategy name %q", strategy.Name())
	}

	hand := bridge.Hand{Cards: []bridge.Card{
		card(bridge.Spades, bridge.Ace),
		card(bridge.Spades, bridge.Two),
		card(bridge.Hearts, bridge.Three),
	}}

	t.Run("leads lowest overall", func(t *testing.T) {
		got := strategy.SuggestPlay(hand, bridge.Trick{}, nil, nil)
		if got != card(bridge.Spades, bridge.Two) {
			t.Fatalf("expected S2, got %s", got)
		}
	})

	t.Run("follows with lowest of led suit", func(t *testing.T) {
		current := bridge.Trick{Plays: []bridge.PlayedCard{
			played(bridge.West, bridge.Spades, bridge.King),
		}}
		got := strategy.SuggestPlay(hand, current, nil, nil)
		if got != card(bridge.Spades, bridge.Two) {
			t.Fatalf("expected S2, got %s", got)
		}
	})

	t.Run("discards lowest when void", func(t *testing.T) {
		current := bridge.Trick{Plays: []bridge.PlayedCard{
			played(bridge.West, bridge.Diamonds, bridge.King),
		}}
		got := strategy.SuggestPlay(hand, current, nil, nil)
		if got != card(bridge.Spades, bridge.Two) {
			t.Fatalf("expected S2, got %s", got)
		}
	})

	t.Run("empty hand returns zero card", func(t *testing.T) {
		got := strategy.SuggestPlay(bridge.Hand{}, bridge.Trick{}, nil, nil)
		if got != (bridge.Card{}) {
			t.Fatalf("expected zero card for empty hand, got %s", got)
		}
	})
}
