package handler

import (
	"net/http"

	"github.com/osse101/FNTDWorld_Go/internal/domain"
	"github.com/osse101/FNTDWorld_Go/internal/logger"
	"github.com/osse101/FNTDWorld_Go/internal/user"
)

// SessionRequest is the identity the host platform reports for the caller
type SessionRequest struct {
	UserID    int64  `json:"user_id" validate:"required,gt=0"`
	FirstName string `json:"first_name" validate:"max=64"`
	Username  string `json:"username" validate:"handle"`
}

// SellItemRequest sells one copy of an owned item
type SellItemRequest struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	ItemID string `json:"item_id" validate:"required,itemid"`
}

// SellItemResponse reports a completed sale
type SellItemResponse struct {
	Message string            `json:"message"`
	Result  domain.SellResult `json:"result"`
}

// HandleEnsureAccount loads or creates the caller's account
// @Summary Start a session
// @Description Returns the caller's account, creating it with the starting balance on first contact
// @Tags account
// @Accept json
// @Produce json
// @Param request body SessionRequest true "Caller identity"
// @Success 200 {object} domain.Account
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/account/session [post]
func HandleEnsureAccount(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SessionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Session"); err != nil {
			return
		}

		acc, err := svc.EnsureAccount(r.Context(), domain.Identity{
			UserID:    req.UserID,
			FirstName: req.FirstName,
			Username:  req.Username,
		})
		if err != nil {
			respondServiceError(w, r, "Session", err)
			return
		}

		respondJSON(w, http.StatusOK, acc)
	}
}

// HandleGetAccount returns an account by id
// @Summary Get account
// @Tags account
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {object} domain.Account
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/account [get]
func HandleGetAccount(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := getUserIDParam(r, w)
		if !ok {
			return
		}

		acc, err := svc.GetAccount(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get account", err)
			return
		}

		respondJSON(w, http.StatusOK, acc)
	}
}

// HandleGetInventory returns the inventory with catalog details
// @Summary Get inventory
// @Tags account
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {array} domain.InventoryEntry
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/account/inventory [get]
func HandleGetInventory(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := getUserIDParam(r, w)
		if !ok {
			return
		}

		entries, err := svc.GetInventory(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get inventory", err)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}

// HandleSellItem sells one copy of an item
// @Summary Sell item
// @Tags account
// @Accept json
// @Produce json
// @Param request body SellItemRequest true "Item to sell"
// @Success 200 {object} SellItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/account/inventory/sell [post]
func HandleSellItem(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SellItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
			return
		}

		res, err := svc.SellItem(r.Context(), req.UserID, req.ItemID)
		if err != nil {
			respondServiceError(w, r, "Sell item", err)
			return
		}

		logger.FromContext(r.Context()).Info("Item sold", "user_id", req.UserID, "item_id", req.ItemID)
		respondJSON(w, http.StatusOK, SellItemResponse{Message: MsgItemSold, Result: *res})
	}
}
