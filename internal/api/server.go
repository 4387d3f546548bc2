// Package api exposes the rules engine over an HTTP JSON API.
//
// Every engine operation is a POST endpoint under /api taking and
// returning the engine's wire vocabulary. The solver and board store are
// optional dependencies; endpoints that need a missing dependency fail
// with 503 rather than preventing startup.
package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/bridge-engine/internal/api/httpx"
	"github.com/louisbranch/bridge-engine/internal/bridge"
	"github.com/louisbranch/bridge-engine/internal/bridge/solver"
	"github.com/louisbranch/bridge-engine/internal/platform/timeouts"
	"github.com/louisbranch/bridge-engine/internal/storage/sqlite"
)

// Config defines the inputs for the API server.
type Config struct {
	HTTPAddr string
}

// BoardStore persists generated boards. The SQLite store satisfies it.
type BoardStore interface {
	SaveBoard(ctx context.Context, deal bridge.Deal, iterations int, seed *int64) (sqlite.Board, error)
	GetBoard(ctx context.Context, boardID string) (sqlite.Board, error)
	AttachSolution(ctx context.Context, boardID string, solution solver.Solution) error
}

// Dependencies carries the optional collaborators handlers use.
type Dependencies struct {
	Solver solver.Solver
	Store  BoardStore
}

// Server hosts the rules engine HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler assembles the route table. It is the test-oriented
// entrypoint; NewServer wraps it with server lifecycle management.
func NewHandler(deps Dependencies) http.Handler {
	h := &handler{solver: deps.Solver, store: deps.Store}

	common := []httpx.Middleware{
		httpx.RecoverPanic(),
		httpx.RequestID(),
		traceRequests(),
	}
	post := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, append(common, httpx.RequireMethod(http.MethodPost))...)
	}
	get := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, append(common, httpx.RequireMethod(http.MethodGet))...)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/generate_deal", post(h.handleGenerateDeal))
	mux.Handle("/api/evaluate_hand", post(h.handleEvaluateHand))
	mux.Handle("/api/get_suit_length", post(h.handleGetSuitLength))
	mux.Handle("/api/is_balanced", post(h.handleIsBalanced))
	mux.Handle("/api/get_legal_calls", post(h.handleGetLegalCalls))
	mux.Handle("/api/add_call", post(h.handleAddCall))
	mux.Handle("/api/is_auction_complete", post(h.handleIsAuctionComplete))
	mux.Handle("/api/get_contract", post(h.handleGetContract))
	mux.Handle("/api/calculate_score", post(h.handleCalculateScore))
	mux.Handle("/api/get_legal_plays", post(h.handleGetLegalPlays))
	mux.Handle("/api/get_trick_winner", post(h.handleGetTrickWinner))
	mux.Handle("/api/solve_deal", post(h.handleSolveDeal))
	mux.Handle("/api/boards/{boardID}", get(h.handleGetBoard))

	mux.HandleFunc("/up", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return mux
}

// NewServer builds a configured API server.
func NewServer(config Config, deps Dependencies) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           NewHandler(deps),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("api server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("api listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
