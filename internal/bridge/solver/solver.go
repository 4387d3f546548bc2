// Package solver defines the opaque double-dummy solving seam. The solving
// algorithm itself is external: the package only translates the engine's
// vocabulary to and from the solver's and treats the solver as a black box.
package solver

import (
	"context"
	"fmt"

	"github.com/louisbranch/bridge-engine/internal/bridge"
)

// Solution is the per-seat, per-strain maximum trick table for a deal under
// best play, with the theoretical par when the solver could compute it.
type Solution struct {
	Tricks map[bridge.Seat]map[bridge.BidSuit]int `json:"tricks"`
	Par    *Par                                   `json:"par"`
}

// Par is the theoretical par score and the contracts that achieve it.
type Par struct {
	Score     int           `json:"score"`
	Contracts []ParContract `json:"contracts"`
}

// ParContract is one contract at par.
type ParContract struct {
	Level      int            `json:"level"`
	Strain     bridge.BidSuit `json:"strain"`
	Declarer   bridge.Seat    `json:"declarer"`
	Doubled    bool           `json:"doubled"`
	Overtricks int            `json:"overtricks"`
}

// Solver solves complete 52-card deals.
type Solver interface {
	Solve(ctx context.Context, deal bridge.Deal) (Solution, error)
}

// Error wraps a failure from the external solver.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("solver: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
