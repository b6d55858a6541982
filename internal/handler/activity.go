package handler

import (
	"net/http"

	"github.com/osse101/CasinoBot_Go/internal/economy"
)

// ActivityResponse reports passive points awarded for chat activity
type ActivityResponse struct {
	Awarded int64 `json:"awarded"`
}

// ReactionRequest records that User reacted to a message written by Author
type ReactionRequest struct {
	User   PlayerRequest `json:"user"`
	Author PlayerRequest `json:"author"`
}

// HandleMessageActivity rolls the passive reward for a chat message by the caller
func HandleMessageActivity(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Message activity"); err != nil {
			return
		}

		awarded, err := svc.RecordMessage(r.Context(), req.User.Player())
		if err != nil {
			respondServiceError(w, r, "Message activity", err)
			return
		}

		respondJSON(w, http.StatusOK, ActivityResponse{Awarded: awarded})
	}
}

// HandleReactionActivity credits the author of a message the caller reacted to
func HandleReactionActivity(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReactionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Reaction activity"); err != nil {
			return
		}

		awarded, err := svc.RecordReaction(r.Context(), req.User.Player(), req.Author.Player())
		if err != nil {
			respondServiceError(w, r, "Reaction activity", err)
			return
		}

		respondJSON(w, http.StatusOK, ActivityResponse{Awarded: awarded})
	}
}
