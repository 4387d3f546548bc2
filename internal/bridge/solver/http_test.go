package solver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/bridge-engine/internal/bridge"
)

func fullDeal() bridge.Deal {
	deck := bridge.NewDeck()
	hands := make(map[bridge.Seat]bridge.Hand, 4)
	for i, seat := range bridge.Seats {
		hands[seat] = bridge.Hand{Cards: deck[i*bridge.HandSize : (i+1)*bridge.HandSize]}
	}
	return bridge.Deal{Hands: hands, Dealer: bridge.North, Vulnerability: bridge.VulnerableNone}
}

func fullTricks() map[bridge.Seat]map[bridge.BidSuit]int {
	tricks := make(map[bridge.Seat]map[bridge.BidSuit]int, 4)
	for _, seat := range bridge.Seats {
		strains := make(map[bridge.BidSuit]int, 5)
		for _, strain := range bridge.BidSuits {
			strains[strain] = 7
		}
		tricks[seat] = strains
	}
	return tricks
}

func TestHTTPSolverSolve(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		var req struct {
			Deal bridge.Deal `json:"deal"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode solve request: %v", err)
		}
		if err := req.Deal.Validate(); err != nil {
			t.Errorf("received invalid deal: %v", err)
		}

		resp := map[string]any{
			"tricks": fullTricks(),
			"par": Par{
				Score: 400,
				Contracts: []ParContract{
					{Level: 3, Strain: bridge.NoTrump, Declarer: bridge.South},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	s := NewHTTPSolver(ts.URL, nil)
	solution, err := s.Solve(context.Background(), fullDeal())
	if err != nil {
		t.Fatalf("solve: %v", err)
	}

	if gotPath != "/solve" {
		t.Fatalf("expected POST to /solve, got %s", gotPath)
	}
	if solution.Tricks[bridge.North][bridge.NoTrump] != 7 {
		t.Fatalf("unexpected trick table: %+v", solution.Tricks)
	}
	if solution.Par == nil || solution.Par.Score != 400 {
		t.Fatalf("expected par 400, got %+v", solution.Par)
	}
	if len(solution.Par.Contracts) != 1 || solution.Par.Contracts[0].Strain != bridge.NoTrump {
		t.Fatalf("unexpected par contracts %+v", solution.Par.Contracts)
	}
}

func TestHTTPSolverParDegradation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := map[string]any{
			"tricks":   fullTricks(),
			"par":      Par{Score: 100},
			"parError": "par search timed out",
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	s := NewHTTPSolver(ts.URL, nil)
	solution, err := s.Solve(context.Background(), fullDeal())
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if solution.Par != nil {
		t.Fatalf("expected par dropped on par error, got %+v", solution.Par)
	}
	if len(solution.Tricks) != 4 {
		t.Fatalf("expected trick table preserved, got %+v", solution.Tricks)
	}
}

func TestHTTPSolverRejectsInvalidDeal(t *testing.T) {
	s := NewHTTPSolver("http://127.0.0.1:0", nil)
	_, err := s.Solve(context.Background(), bridge.Deal{})

	var solverErr *Error
	if !errors.As(err, &solverErr) {
		t.Fatalf("expected solver.Error, got %v", err)
	}
}

func TestHTTPSolverServiceFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "solver crashed", http.StatusInternalServerError)
	}))
	defer ts.Close()

	s := NewHTTPSolver(ts.URL, nil)
	_, err := s.Solve(context.Background(), fullDeal())

	var solverErr *Error
	if !errors.As(err, &solverErr) {
		t.Fatalf("expected solver.Error, got %v", err)
	}
}

func TestHTTPSolverIncompleteTrickTable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		tricks := fullTricks()
		delete(tricks, bridge.West)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"tricks": tricks})
	}))
	defer ts.Close()

	s := NewHTTPSolver(ts.URL, nil)
	_, err := s.Solve(context.Background(), fullDeal())
	if err == nil {
		t.Fatalf("expected error for missing seat in trick table")
	}
}
