package handler

import (
	"net/http"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/economy"
)

// BalanceResponse reports a user's points
type BalanceResponse struct {
	UserID string `json:"user_id"`
	Points int64  `json:"points"`
}

// UserRequest is the body of commands that only need the caller
type UserRequest struct {
	User PlayerRequest `json:"user"`
}

// PayRequest moves points from the caller to another user
type PayRequest struct {
	User   PlayerRequest `json:"user"`
	To     PlayerRequest `json:"to"`
	Amount int64         `json:"amount" validate:"gt=0"`
}

// HandleBalance returns the points of {userID}
func HandleBalance(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDParam(w, r)
		if !ok {
			return
		}

		points, err := svc.Balance(r.Context(), domain.Player{ID: userID})
		if err != nil {
			respondServiceError(w, r, "Balance", err)
			return
		}

		respondJSON(w, http.StatusOK, BalanceResponse{UserID: userID, Points: points})
	}
}

// HandleProfile returns the full account of {userID}
func HandleProfile(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDParam(w, r)
		if !ok {
			return
		}

		account, err := svc.Profile(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Profile", err)
			return
		}

		respondJSON(w, http.StatusOK, account)
	}
}

// HandleDaily claims the caller's daily bonus
func HandleDaily(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Daily"); err != nil {
			return
		}

		result, err := svc.Daily(r.Context(), req.User.Player())
		if err != nil {
			respondServiceError(w, r, "Daily", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: MsgDailyClaimed, Data: result})
	}
}

// HandlePay transfers points between two users
func HandlePay(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PayRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Pay"); err != nil {
			return
		}

		result, err := svc.Pay(r.Context(), req.User.Player(), req.To.Player(), req.Amount)
		if err != nil {
			respondServiceError(w, r, "Pay", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: MsgTransferDone, Data: result})
	}
}

// HandleLeaderboard returns the top accounts by points
func HandleLeaderboard(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := svc.Leaderboard(r.Context())
		if err != nil {
			respondServiceError(w, r, "Leaderboard", err)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}
