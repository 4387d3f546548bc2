// Package auction implements the bidding state machine: call legality,
// completion detection, and contract and declarer extraction.
package auction

import "github.com/louisbranch/bridge-engine/internal/bridge"

func strainRank(strain bridge.BidSuit) int {
	switch strain {
	case bridge.BidClubs:
		return 1
	case bridge.BidDiamonds:
		return 2
	case bridge.BidHearts:
		return 3
	case bridge.BidSpades:
		return 4
	default:
		return 5
	}
}

// CompareBids orders two contract bids: level first, then strain rank
// C < D < H < S < NT. Returns -1, 0, or 1. The ordering is a strict total
// order over the 35 possible bids.
func CompareBids(aLevel int, aStrain bridge.BidSuit, bLevel int, bStrain bridge.BidSuit) int {
	if aLevel != bLevel {
		if aLevel < bLevel {
			return -1
		}
		return 1
	}
	ar, br := strainRank(aStrain), strainRank(bStrain)
	if ar != br {
		if ar < br {
			return -1
		}
		return 1
	}
	return 0
}

func lastNonPass(a bridge.Auction) (bridge.AuctionEntry, bool) {
	for i := len(a.Entries) - 1; i >= 0; i-- {
		if a.Entries[i].Call.Type != bridge.CallPass {
			return a.Entries[i], true
		}
	}
	return bridge.AuctionEntry{}, false
}

func lastBid(a bridge.Auction) (bridge.AuctionEntry, bool) {
	for i := len(a.Entries) - 1; i >= 0; i-- {
		if a.Entries[i].Call.IsBid() {
			return a.Entries[i], true
		}
	}
	return bridge.AuctionEntry{}, false
}

// IsLegalCall reports whether the seat may make the call in the current
// auction state. Pass is legal until the auction completes; a bid must
// strictly exceed the previous bid; Double requires an opposing bid as the
// most recent non-pass call; Redouble requires an opposing double.
func IsLegalCall(a bridge.Auction, call bridge.Call, seat bridge.Seat) bool {
	if a.IsComplete {
		return false
	}

	switch call.Type {
	case bridge.CallPass:
		return true

	case bridge.CallBid:
		prev, ok := lastBid(a)
		if !ok {
			return true
		}
		return CompareBids(call.Level, call.Strain, prev.Call.Level, prev.Call.Strain) > 0

	case bridge.CallDouble:
		prev, ok := lastNonPass(a)
		return ok && prev.Call.IsBid() && !bridge.SameSide(prev.Seat, seat)

	case bridge.CallRedouble:
		prev, ok := lastNonPass(a)
		return ok && prev.Call.Type == bridge.CallDouble && !bridge.SameSide(prev.Seat, seat)

	default:
		return false
	}
}

// IsComplete reports whether the auction has ended: four leading passes
// (passout), or at least one non-pass call followed by exactly three
// consecutive passes.
func IsComplete(a bridge.Auction) bool {
	entries := a.Entries
	n := len(entries)
	if n < 4 {
		return false
	}

	for i := n - 3; i < n; i++ {
		if entries[i].Call.Type != bridge.CallPass {
			return false
		}
	}

	if n == 4 && entries[0].Call.Type == bridge.CallPass {
		return true
	}

	for _, entry := range entries[:n-3] {
		if entry.Call.Type != bridge.CallPass {
			return true
		}
	}
	return false
}

// AddCall validates the entry against the auction and returns a new
// snapshot with the entry appended and completion re-evaluated. The input
// auction is never mutated. Fails with bridge.ErrAuctionComplete on a
// terminal auction and bridge.IllegalCallError when legality is violated.
func AddCall(a bridge.Auction, entry bridge.AuctionEntry) (bridge.Auction, error) {
	if a.IsComplete {
		return bridge.Auction{}, bridge.ErrAuctionComplete
	}
	if !IsLegalCall(a, entry.Call, entry.Seat) {
		return bridge.Auction{}, bridge.IllegalCallError{Call: entry.Call}
	}

	entries := make([]bridge.AuctionEntry, 0, len(a.Entries)+1)
	entries = append(entries, a.Entries...)
	entries = append(entries, entry)

	next := bridge.Auction{Entries: entries}
	next.IsComplete = IsComplete(next)
	return next, nil
}

// Declarer resolves the declarer: the first seat on the final bid's
// partnership to name the final contract's strain. This attributes the
// contract correctly through raises and sacrifices rather than naively
// picking the final bidder.
func Declarer(a bridge.Auction) (bridge.Seat, error) {
	last, ok := lastBid(a)
	if !ok {
		return 0, bridge.ErrNoBidsInAuction
	}

	for _, entry := range a.Entries {
		if entry.Call.IsBid() && entry.Call.Strain == last.Call.Strain && bridge.SameSide(entry.Seat, last.Seat) {
			return entry.Seat, nil
		}
	}
	return last.Seat, nil
}

// Contract extracts the final contract from the auction. Level and strain
// come from the last bid; doubled/redoubled reflect the most recent
// non-pass call. Returns nil for a passout.
//
// The doubled/redoubled flags inspect only that single call: the validated
// append path already forbids an unsupported Double or Redouble, so they
// must not be re-derived independently for externally built auctions.
func Contract(a bridge.Auction) (*bridge.Contract, error) {
	last, ok := lastBid(a)
	if !ok {
		return nil, nil
	}

	doubled := false
	redoubled := false
	if prev, ok := lastNonPass(a); ok {
		switch prev.Call.Type {
		case bridge.CallDouble:
			doubled = true
		case bridge.CallRedouble:
			redoubled = true
		}
	}

	declarer, err := Declarer(a)
	if err != nil {
		return nil, err
	}

	return &bridge.Contract{
		Level:     last.Call.Level,
		Strain:    last.Call.Strain,
		Doubled:   doubled,
		Redoubled: redoubled,
		Declarer:  declarer,
	}, nil
}

// LegalCalls enumerates every call the seat may make: Pass, the 35 bids in
// ascending order, then Double and Redouble, each filtered through the
// legality rule. Empty once the auction is complete.
func LegalCalls(a bridge.Auction, seat bridge.Seat) []bridge.Call {
	if a.IsComplete {
		return nil
	}

	var legal []bridge.Call
	if IsLegalCall(a, bridge.Pass, seat) {
		legal = append(legal, bridge.Pass)
	}
	for level := 1; level <= 7; level++ {
		for _, strain := range bridge.BidSuits {
			bid := bridge.Bid(level, strain)
			if IsLegalCall(a, bid, seat) {
				legal = append(legal, bid)
			}
		}
	}
	if IsLegalCall(a, bridge.Double, seat) {
		legal = append(legal, bridge.Double)
	}
	if IsLegalCall(a, bridge.Redouble, seat) {
		legal = append(legal, bridge.Redouble)
	}
	return legal
}
