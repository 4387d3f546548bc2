// Package evaluator implements hand evaluation: high card points, suit
// lengths, balanced-shape classification, and distribution points.
//
// Evaluation is polymorphic over the Evaluator interface so additional
// point-count systems can be added without touching callers; the default
// implementation is the standard 4-3-2-1 HCP count plus distribution.
package evaluator

import "github.com/louisbranch/bridge-engine/internal/bridge"

// Evaluation is the result of evaluating a single hand.
type Evaluation struct {
	HCP          int               `json:"hcp"`
	Distribution Distribution      `json:"distribution"`
	Shape        bridge.SuitLength `json:"shape"`
	TotalPoints  int               `json:"totalPoints"`
	Strategy     string            `json:"strategy"`
}

// Distribution breaks down shortness and length points.
type Distribution struct {
	Shortness int `json:"shortness"`
	Length    int `json:"length"`
	Total     int `json:"total"`
}

// Evaluator is a pluggable point-count system.
type Evaluator interface {
	Name() string
	Evaluate(hand bridge.Hand) Evaluation
}

func hcpValue(rank bridge.Rank) int {
	switch rank {
	case bridge.Jack:
		return 1
	case bridge.Queen:
		return 2
	case bridge.King:
		return 3
	case bridge.Ace:
		return 4
	default:
		return 0
	}
}

// HCP sums high card points (A=4, K=3, Q=2, J=1) across the hand.
func HCP(hand bridge.Hand) int {
	total := 0
	for _, card := range hand.Cards {
		total += hcpValue(card.Rank)
	}
	return total
}

// SuitLengths counts cards per suit, ordered [Spades, Hearts, Diamonds, Clubs].
func SuitLengths(hand bridge.Hand) bridge.SuitLength {
	var counts bridge.SuitLength
	for _, card := range hand.Cards {
		counts[bridge.SuitOrderIndex(card.Suit)]++
	}
	return counts
}

// HCPAndShape computes HCP and suit lengths in a single pass.
func HCPAndShape(hand bridge.Hand) (int, bridge.SuitLength) {
	hcp := 0
	var counts bridge.SuitLength
	for _, card := range hand.Cards {
		hcp += hcpValue(card.Rank)
		counts[bridge.SuitOrderIndex(card.Suit)]++
	}
	return hcp, counts
}

// IsBalanced reports whether the shape is 4-3-3-3, 4-4-3-2, or 5-3-3-2.
func IsBalanced(shape bridge.SuitLength) bool {
	a, b, c, d := shape[0], shape[1], shape[2], shape[3]
	if a < b {
		a, b = b, a
	}
	if c < d {
		c, d = d, c
	}
	if a < c {
		a, c = c, a
	}
	if b < d {
		b, d = d, b
	}
	if b < c {
		b, c = c, b
	}
	// a >= b >= c >= d
	return (a == 4 && b == 3 && c == 3 && d == 3) ||
		(a == 4 && b == 4 && c == 3 && d == 2) ||
		(a == 5 && b == 3 && c == 3 && d == 2)
}

// DistributionPoints computes shortness points (void=3, singleton=2,
// doubleton=1) and length points (one per card beyond the fourth in a suit).
func DistributionPoints(shape bridge.SuitLength) Distribution {
	shortness := 0
	length := 0
	for _, count := range shape {
		switch count {
		case 0:
			shortness += 3
		case 1:
			shortness += 2
		case 2:
			shortness++
		}
		if count > 4 {
			length += count - 4
		}
	}
	return Distribution{Shortness: shortness, Length: length, Total: shortness + length}
}

// CardsInSuit returns the hand's cards of the given suit.
func CardsInSuit(hand bridge.Hand, suit bridge.Suit) []bridge.Card {
	var cards []bridge.Card
	for _, card := range hand.Cards {
		if card.Suit == suit {
			cards = append(cards, card)
		}
	}
	return cards
}

// HCPEvaluator is the default point-count system: HCP plus distribution.
type HCPEvaluator struct{}

// Name identifies the system on the wire.
func (HCPEvaluator) Name() string { return "HCP" }

// Evaluate computes the full evaluation record for a hand.
func (e HCPEvaluator) Evaluate(hand bridge.Hand) Evaluation {
	hcp, shape := HCPAndShape(hand)
	distribution := DistributionPoints(shape)
	return Evaluation{
		HCP:          hcp,
		Distribution: distribution,
		Shape:        shape,
		TotalPoints:  hcp + distribution.Total,
		Strategy:     e.Name(),
	}
}

// Evaluate runs the default HCP evaluator over a hand.
func Evaluate(hand bridge.Hand) Evaluation {
	return HCPEvaluator{}.Evaluate(hand)
}
