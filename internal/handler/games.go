package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CasinoBot_Go/internal/casino"
	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/payout"
)

// PlayRequest is the body of a solo game round. Pick is the roulette color or
// coin side and is ignored by the other games.
type PlayRequest struct {
	User  PlayerRequest `json:"user"`
	Stake int64         `json:"stake" validate:"gt=0"`
	Pick  string        `json:"pick" validate:"max=16"`
}

// HandlePlay plays one round of the game named by the {game} route parameter
func HandlePlay(svc casino.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlayRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Play"); err != nil {
			return
		}

		result, err := svc.Play(r.Context(), req.User.Player(), payout.Request{
			Kind:  domain.GameKind(chi.URLParam(r, "game")),
			Stake: req.Stake,
			Color: domain.RouletteColor(req.Pick),
			Side:  domain.CoinSide(req.Pick),
		})
		if err != nil {
			respondServiceError(w, r, "Play", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
