package api

import (
	"time"

	"github.com/louisbranch/bridge-engine/internal/bridge"
	"github.com/louisbranch/bridge-engine/internal/bridge/dealgen"
	"github.com/louisbranch/bridge-engine/internal/bridge/solver"
)

type generateDealRequest struct {
	Constraints dealgen.Constraints `json:"constraints"`
}

type evaluateHandRequest struct {
	Hand bridge.Hand `json:"hand"`
}

type legalCallsRequest struct {
	Auction bridge.Auction `json:"auction"`
	Seat    bridge.Seat    `json:"seat"`
}

type addCallRequest struct {
	Auction bridge.Auction      `json:"auction"`
	Entry   bridge.AuctionEntry `json:"entry"`
}

type auctionRequest struct {
	Auction bridge.Auction `json:"auction"`
}

type calculateScoreRequest struct {
	Contract      bridge.Contract      `json:"contract"`
	TricksWon     int                  `json:"tricksWon"`
	Vulnerability bridge.Vulnerability `json:"vulnerability"`
}

type legalPlaysRequest struct {
	Hand     bridge.Hand  `json:"hand"`
	LeadSuit *bridge.Suit `json:"leadSuit"`
}

type trickWinnerRequest struct {
	Trick bridge.Trick `json:"trick"`
}

type solveDealRequest struct {
	Deal    bridge.Deal `json:"deal"`
	BoardID string      `json:"boardId,omitempty"`
}

type boardResponse struct {
	ID         string           `json:"id"`
	Deal       bridge.Deal      `json:"deal"`
	Iterations int              `json:"iterations"`
	Seed       *int64           `json:"seed,omitempty"`
	Solution   *solver.Solution `json:"solution,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
}
