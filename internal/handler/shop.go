package handler

import (
	"net/http"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/economy"
)

// HandleShop lists the item catalog
func HandleShop(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Shop(r.Context())
		if err != nil {
			respondServiceError(w, r, "Shop", err)
			return
		}

		respondJSON(w, http.StatusOK, items)
	}
}

// HandleBuy buys one {itemID} for the caller
func HandleBuy(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := itemIDParam(w, r)
		if !ok {
			return
		}

		var req UserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy"); err != nil {
			return
		}

		result, err := svc.Buy(r.Context(), req.User.Player(), itemID)
		if err != nil {
			respondServiceError(w, r, "Buy", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: MsgItemPurchased, Data: result})
	}
}

// HandleInventory lists the items {userID} owns
func HandleInventory(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDParam(w, r)
		if !ok {
			return
		}

		items, err := svc.Inventory(r.Context(), domain.Player{ID: userID})
		if err != nil {
			respondServiceError(w, r, "Inventory", err)
			return
		}

		respondJSON(w, http.StatusOK, items)
	}
}
