package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/bridge-engine/internal/api/apperrors"
	"github.com/louisbranch/bridge-engine/internal/api/httpx"
	"github.com/louisbranch/bridge-engine/internal/bridge"
	"github.com/louisbranch/bridge-engine/internal/bridge/auction"
	"github.com/louisbranch/bridge-engine/internal/bridge/dealgen"
	"github.com/louisbranch/bridge-engine/internal/bridge/evaluator"
	"github.com/louisbranch/bridge-engine/internal/bridge/play"
	"github.com/louisbranch/bridge-engine/internal/bridge/scoring"
	"github.com/louisbranch/bridge-engine/internal/bridge/solver"
	"github.com/louisbranch/bridge-engine/internal/storage/sqlite"
)

type handler struct {
	solver solver.Solver
	store  BoardStore
}

// decodeBody reads a JSON request body into dst, mapping failures to
// invalid input so malformed payloads surface as 400s.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.E(apperrors.KindInvalidInput, "invalid json body: "+err.Error())
	}
	return nil
}

func (h *handler) handleGenerateDeal(w http.ResponseWriter, r *http.Request) {
	var req generateDealRequest
	if err := decodeBody(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	result, err := dealgen.Generate(req.Constraints)
	if err != nil {
		httpx.WriteError(w, apperrors.FromDomain(err))
		return
	}

	if h.store != nil {
		board, err := h.store.SaveBoard(httpx.RequestContext(r), result.Deal, result.Iterations, req.Constraints.Seed)
		if err != nil {
			log.Printf("save board: %v", err)
		} else {
			w.Header().Set("X-Board-ID", board.ID)
		}
	}

	_ = httpx.WriteJSON(w, http.StatusOK, result.Deal)
}

func (h *handler) handleEvaluateHand(w http.ResponseWriter, r *http.Request) {
	var req evaluateHandRequest
	if err := decodeBody(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, evaluator.Evaluate(req.Hand))
}

func (h *handler) handleGetSuitLength(w http.ResponseWriter, r *http.Request) {
	var req evaluateHandRequest
	if err := decodeBody(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, evaluator.SuitLengths(req.Hand))
}

func (h *handler) handleIsBalanced(w http.ResponseWriter, r *http.Request) {
	var req evaluateHandRequest
	if err := decodeBody(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, evaluator.IsBalanced(evaluator.SuitLengths(req.Hand)))
}

func (h *handler) handleGetLegalCalls(w http.ResponseWriter, r *http.Request) {
	var req legalCallsRequest
	if err := decodeBody(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	calls := auction.LegalCalls(req.Auction, req.Seat)
	if calls == nil {
		calls = []bridge.Call{}
	}
	_ = httpx.WriteJSON(w, http.StatusOK, calls)
}

func (h *handler) handleAddCall(w http.ResponseWriter, r *http.Request) {
	var req addCallRequest
	if err := decodeBody(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	next, err := auction.AddCall(req.Auction, req.Entry)
	if err != nil {
		httpx.WriteError(w, apperrors.FromDomain(err))
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, next)
}

func (h *handler) handleIsAuctionComplete(w http.ResponseWriter, r *http.Request) {
	var req auctionRequest
	if err := decodeBody(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, auction.IsComplete(req.Auction))
}

func (h *handler) handleGetContract(w http.ResponseWriter, r *http.Request) {
	var req auctionRequest
	if err := decodeBody(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	contract, err := auction.Contract(req.Auction)
	if err != nil {
		httpx.WriteError(w, apperrors.FromDomain(err))
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, contract)
}

func (h *handler) handleCalculateScore(w http.ResponseWriter, r *http.Request) {
	var req calculateScoreRequest
	if err := decodeBody(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, scoring.Score(req.Contract, req.TricksWon, req.Vulnerability))
}

func (h *handler) handleGetLegalPlays(w http.ResponseWriter, r *http.Request) {
	var req legalPlaysRequest
	if err := decodeBody(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	cards := play.LegalPlays(req.Hand, req.LeadSuit)
	if cards == nil {
		cards = []bridge.Card{}
	}
	_ = httpx.WriteJSON(w, http.StatusOK, cards)
}

func (h *handler) handleGetTrickWinner(w http.ResponseWriter, r *http.Request) {
	var req trickWinnerRequest
	if err := decodeBody(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	winner, err := play.TrickWinner(req.Trick)
	if err != nil {
		httpx.WriteError(w, apperrors.FromDomain(err))
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, winner)
}

func (h *handler) handleSolveDeal(w http.ResponseWriter, r *http.Request) {
	if h.solver == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "solver not available"))
		return
	}

	var req solveDealRequest
	if err := decodeBody(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	solution, err := h.solver.Solve(httpx.RequestContext(r), req.Deal)
	if err != nil {
		httpx.WriteError(w, apperrors.FromDomain(err))
		return
	}

	if req.BoardID != "" {
		if h.store == nil {
			httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "board store not available"))
			return
		}
		if err := h.store.AttachSolution(httpx.RequestContext(r), req.BoardID, solution); err != nil {
			if errors.Is(err, sqlite.ErrNotFound) {
				httpx.WriteError(w, apperrors.E(apperrors.KindNotFound, "board not found"))
				return
			}
			httpx.WriteError(w, apperrors.FromDomain(err))
			return
		}
	}

	_ = httpx.WriteJSON(w, http.StatusOK, solution)
}

func (h *handler) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "board store not available"))
		return
	}

	boardID := strings.TrimSpace(r.PathValue("boardID"))
	if boardID == "" {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "board id is required"))
		return
	}

	board, err := h.store.GetBoard(httpx.RequestContext(r), boardID)
	if err != nil {
		if errors.Is(err, sqlite.ErrNotFound) {
			httpx.WriteError(w, apperrors.E(apperrors.KindNotFound, "board not found"))
			return
		}
		httpx.WriteError(w, apperrors.FromDomain(err))
		return
	}

	_ = httpx.WriteJSON(w, http.StatusOK, boardResponse{
		ID:         board.ID,
		Deal:       board.Deal,
		Iterations: board.Iterations,
		Seed:       board.Seed,
		Solution:   board.Solution,
		CreatedAt:  board.CreatedAt,
	})
}
