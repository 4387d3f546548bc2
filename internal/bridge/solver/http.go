package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/louisbranch/bridge-engine/internal/bridge"
)

// HTTPSolver reaches a double-dummy solver service over HTTP JSON. The
// service speaks the engine's wire vocabulary; its solving internals are
// opaque to this package.
type HTTPSolver struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSolver builds a solver client for the given base URL. A nil
// client falls back to http.DefaultClient.
func NewHTTPSolver(baseURL string, client *http.Client) *HTTPSolver {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSolver{baseURL: baseURL, client: client}
}

type solveRequest struct {
	Deal bridge.Deal `json:"deal"`
}

type solveResponse struct {
	Tricks   map[bridge.Seat]map[bridge.BidSuit]int `json:"tricks"`
	Par      *Par                                   `json:"par"`
	ParError string                                 `json:"parError"`
}

// Solve validates the deal, posts it to the solver service, and translates
// the response. When the service reports trick data but failed par
// computation, the solution is returned with no par rather than failing
// the whole request.
func (s *HTTPSolver) Solve(ctx context.Context, deal bridge.Deal) (Solution, error) {
	if err := deal.Validate(); err != nil {
		return Solution{}, &Error{Err: err}
	}

	payload, err := json.Marshal(solveRequest{Deal: deal})
	if err != nil {
		return Solution{}, &Error{Err: fmt.Errorf("encode deal: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/solve", bytes.NewReader(payload))
	if err != nil {
		return Solution{}, &Error{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Solution{}, &Error{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return Solution{}, &Error{Err: fmt.Errorf("solver service returned %d: %s", resp.StatusCode, bytes.TrimSpace(body))}
	}

	var decoded solveResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Solution{}, &Error{Err: fmt.Errorf("decode solution: %w", err)}
	}

	if err := validateTricks(decoded.Tricks); err != nil {
		return Solution{}, &Error{Err: err}
	}

	if decoded.ParError != "" {
		log.Printf("solver par computation failed: %s", decoded.ParError)
		decoded.Par = nil
	}

	return Solution{Tricks: decoded.Tricks, Par: decoded.Par}, nil
}

func validateTricks(tricks map[bridge.Seat]map[bridge.BidSuit]int) error {
	for _, seat := range bridge.Seats {
		strains, ok := tricks[seat]
		if !ok {
			return fmt.Errorf("solution is missing seat %s", seat)
		}
		if len(strains) != len(bridge.BidSuits) {
			return fmt.Errorf("solution for seat %s has %d strains, expected %d", seat, len(strains), len(bridge.BidSuits))
		}
	}
	return nil
}
