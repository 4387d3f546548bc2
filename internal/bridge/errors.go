package bridge

import (
	"errors"
	"fmt"
)

// ErrAuctionComplete indicates an append was attempted on a terminal auction.
var ErrAuctionComplete = errors.New("cannot add call to completed auction")

// ErrIncompleteTrick indicates a winner was requested on fewer than 4 plays.
var ErrIncompleteTrick = errors.New("trick must have exactly 4 plays")

// ErrNoBidsInAuction indicates declarer or contract resolution was requested
// on an auction with no contract bid.
var ErrNoBidsInAuction = errors.New("no bids in auction: cannot determine declarer")

// InvalidHandSizeError reports a hand built with the wrong card count.
type InvalidHandSizeError struct {
	Count int
}

func (e InvalidHandSizeError) Error() string {
	return fmt.Sprintf("hand must have exactly %d cards, got %d", HandSize, e.Count)
}

// IllegalCallError reports a call rejected by the auction legality rule.
type IllegalCallError struct {
	Call Call
}

func (e IllegalCallError) Error() string {
	return fmt.Sprintf("illegal call: %s", e.Call)
}

// MaxAttemptsError reports that deal generation exhausted its attempt
// budget. Expected for tight or contradictory constraints, not a defect.
type MaxAttemptsError struct {
	Attempts int
}

func (e MaxAttemptsError) Error() string {
	return fmt.Sprintf("failed to generate deal after %d attempts", e.Attempts)
}
