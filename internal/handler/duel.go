package handler

import (
	"net/http"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/duel"
)

// DuelHandler serves the duel routes
type DuelHandler struct {
	service duel.Service
}

// NewDuelHandler creates a handler over the duel registry
func NewDuelHandler(service duel.Service) *DuelHandler {
	return &DuelHandler{service: service}
}

// ChallengeRequest proposes a duel. A missing opponent makes the challenge open.
type ChallengeRequest struct {
	User     PlayerRequest  `json:"user"`
	Opponent *PlayerRequest `json:"opponent,omitempty"`
	Stake    int64          `json:"stake" validate:"gt=0"`
	Kind     string         `json:"kind" validate:"required,duelkind"`
}

// ChallengeResponse represents a duel challenge response
type ChallengeResponse struct {
	Message   string      `json:"message"`
	Duel      domain.Duel `json:"duel"`
	ExpiresAt string      `json:"expires_at"`
}

// AcceptDuelResponse represents a duel accept response
type AcceptDuelResponse struct {
	Message string             `json:"message"`
	Result  *domain.DuelResult `json:"result"`
}

// HandleChallenge handles duel challenge requests
func (h *DuelHandler) HandleChallenge(w http.ResponseWriter, r *http.Request) {
	var req ChallengeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Challenge duel"); err != nil {
		return
	}

	var opponent *domain.Player
	if req.Opponent != nil {
		p := req.Opponent.Player()
		opponent = &p
	}

	d, err := h.service.Propose(r.Context(), req.User.Player(), opponent, req.Stake, domain.DuelKind(req.Kind))
	if err != nil {
		respondServiceError(w, r, "Challenge duel", err)
		return
	}

	respondJSON(w, http.StatusCreated, ChallengeResponse{
		Message:   MsgDuelProposed,
		Duel:      *d,
		ExpiresAt: d.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// HandleAccept handles duel accept requests
func (h *DuelHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	id, ok := duelIDParam(w, r)
	if !ok {
		return
	}

	var req UserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Accept duel"); err != nil {
		return
	}

	result, err := h.service.Accept(r.Context(), req.User.Player(), id)
	if err != nil {
		respondServiceError(w, r, "Accept duel", err)
		return
	}

	respondJSON(w, http.StatusOK, AcceptDuelResponse{Message: MsgDuelCompleted, Result: result})
}

// HandleDecline handles duel decline requests
func (h *DuelHandler) HandleDecline(w http.ResponseWriter, r *http.Request) {
	id, ok := duelIDParam(w, r)
	if !ok {
		return
	}

	var req UserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Decline duel"); err != nil {
		return
	}

	d, err := h.service.Decline(r.Context(), req.User.Player(), id)
	if err != nil {
		respondServiceError(w, r, "Decline duel", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Message: MsgDuelDeclined, Data: d})
}

// HandleGet returns a live duel session
func (h *DuelHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := duelIDParam(w, r)
	if !ok {
		return
	}

	d, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get duel", err)
		return
	}

	respondJSON(w, http.StatusOK, d)
}

// HandleGetPending lists the live sessions {userID} is part of
func (h *DuelHandler) HandleGetPending(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, h.service.Pending(r.Context(), userID))
}
