// Package dealgen constructs random deals satisfying per-seat constraints
// via rejection sampling: shuffle, partition, test, retry within a budget.
//
// # Determinism
//
// Generation is deterministic with respect to the Seed field on
// Constraints. Given the same seed and constraints, Generate always
// produces the same deal, card for card. Without a seed the generator
// draws one from process entropy per call; no state is shared across
// invocations.
package dealgen

import (
	"math/rand"

	"github.com/louisbranch/bridge-engine/internal/bridge"
	"github.com/louisbranch/bridge-engine/internal/bridge/evaluator"
	"github.com/louisbranch/bridge-engine/internal/platform/random"
)

// DefaultMaxAttempts bounds the rejection-sampling loop when the
// constraints carry no explicit budget.
const DefaultMaxAttempts = 10_000

// SeatConstraint restricts the hand dealt to one seat. Nil fields are
// unconstrained. MinLengthAny is disjunctive: at least one listed suit
// must reach its length.
type SeatConstraint struct {
	Seat         bridge.Seat         `json:"seat"`
	MinHCP       *int                `json:"minHcp,omitempty"`
	MaxHCP       *int                `json:"maxHcp,omitempty"`
	Balanced     *bool               `json:"balanced,omitempty"`
	MinLength    map[bridge.Suit]int `json:"minLength,omitempty"`
	MaxLength    map[bridge.Suit]int `json:"maxLength,omitempty"`
	MinLengthAny map[bridge.Suit]int `json:"minLengthAny,omitempty"`
}

// Constraints configures one generation request.
type Constraints struct {
	Seats         []SeatConstraint      `json:"seats"`
	Vulnerability *bridge.Vulnerability `json:"vulnerability,omitempty"`
	Dealer        *bridge.Seat          `json:"dealer,omitempty"`
	MaxAttempts   *int                  `json:"maxAttempts,omitempty"`
	Seed          *int64                `json:"seed,omitempty"`
}

// Result carries the accepted deal and the iterations consumed (1 when the
// first shuffle already qualifies). RelaxationSteps is reserved for
// constraint relaxation and is always 0 today.
type Result struct {
	Deal            bridge.Deal `json:"deal"`
	Iterations      int         `json:"iterations"`
	RelaxationSteps int         `json:"relaxationSteps"`
}

func shuffle(deck []bridge.Card, rng *rand.Rand) []bridge.Card {
	cards := append([]bridge.Card(nil), deck...)
	for i := len(cards) - 1; i >= 1; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return cards
}

func dealFromShuffled(cards []bridge.Card, dealer bridge.Seat, vulnerability bridge.Vulnerability) bridge.Deal {
	hands := make(map[bridge.Seat]bridge.Hand, 4)
	for i, seat := range bridge.Seats {
		hands[seat] = bridge.Hand{Cards: cards[i*bridge.HandSize : (i+1)*bridge.HandSize]}
	}
	return bridge.Deal{Hands: hands, Dealer: dealer, Vulnerability: vulnerability}
}

func checkShape(shape bridge.SuitLength, constraint SeatConstraint) bool {
	if constraint.Balanced != nil && *constraint.Balanced != evaluator.IsBalanced(shape) {
		return false
	}

	for suit, min := range constraint.MinLength {
		if shape[bridge.SuitOrderIndex(suit)] < min {
			return false
		}
	}

	for suit, max := range constraint.MaxLength {
		if shape[bridge.SuitOrderIndex(suit)] > max {
			return false
		}
	}

	if len(constraint.MinLengthAny) > 0 {
		met := false
		for suit, min := range constraint.MinLengthAny {
			if shape[bridge.SuitOrderIndex(suit)] >= min {
				met = true
				break
			}
		}
		if !met {
			return false
		}
	}

	return true
}

func checkSeat(hand bridge.Hand, constraint SeatConstraint) bool {
	needsHCP := constraint.MinHCP != nil || constraint.MaxHCP != nil
	needsShape := constraint.Balanced != nil ||
		len(constraint.MinLength) > 0 ||
		len(constraint.MaxLength) > 0 ||
		len(constraint.MinLengthAny) > 0

	var hcp int
	var shape bridge.SuitLength
	switch {
	case needsHCP && needsShape:
		hcp, shape = evaluator.HCPAndShape(hand)
	case needsHCP:
		hcp = evaluator.HCP(hand)
	case needsShape:
		shape = evaluator.SuitLengths(hand)
	default:
		return true
	}

	if constraint.MinHCP != nil && hcp < *constraint.MinHCP {
		return false
	}
	if constraint.MaxHCP != nil && hcp > *constraint.MaxHCP {
		return false
	}
	if needsShape && !checkShape(shape, constraint) {
		return false
	}
	return true
}

// CheckConstraints evaluates every per-seat constraint against a candidate
// deal, short-circuiting on the first failure.
func CheckConstraints(deal bridge.Deal, constraints Constraints) bool {
	for _, sc := range constraints.Seats {
		hand, ok := deal.Hands[sc.Seat]
		if !ok {
			continue
		}
		if !checkSeat(hand, sc) {
			return false
		}
	}
	return true
}

// Generate runs the rejection-sampling loop and returns the first deal
// satisfying all constraints. Fails with bridge.MaxAttemptsError when the
// attempt budget is exhausted.
func Generate(constraints Constraints) (Result, error) {
	dealer := bridge.North
	if constraints.Dealer != nil {
		dealer = *constraints.Dealer
	}
	vulnerability := bridge.VulnerableNone
	if constraints.Vulnerability != nil {
		vulnerability = *constraints.Vulnerability
	}
	maxAttempts := DefaultMaxAttempts
	if constraints.MaxAttempts != nil {
		maxAttempts = *constraints.MaxAttempts
	}

	seed := int64(0)
	if constraints.Seed != nil {
		seed = *constraints.Seed
	} else {
		fresh, err := random.NewSeed()
		if err != nil {
			return Result{}, err
		}
		seed = fresh
	}
	rng := rand.New(rand.NewSource(seed))

	deck := bridge.NewDeck()
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		shuffled := shuffle(deck, rng)
		deal := dealFromShuffled(shuffled, dealer, vulnerability)

		if CheckConstraints(deal, constraints) {
			return Result{Deal: deal, Iterations: attempt}, nil
		}
	}

	return Result{}, bridge.MaxAttemptsError{Attempts: maxAttempts}
}
