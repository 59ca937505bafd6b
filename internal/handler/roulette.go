package handler

import (
	"net/http"

	"github.com/osse101/FNTDWorld_Go/internal/catalog"
	"github.com/osse101/FNTDWorld_Go/internal/domain"
	"github.com/osse101/FNTDWorld_Go/internal/roulette"
)

// SpinRequest starts one roulette spin
type SpinRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

// RouletteCatalogResponse lists the pool and the spin price
type RouletteCatalogResponse struct {
	Cost     int                   `json:"cost"`
	Outcomes []catalog.OutcomeView `json:"outcomes"`
}

// ItemLister exposes the sellable item list
type ItemLister interface {
	Items() []domain.Item
}

// HandleGetRouletteCatalog returns the roulette pool with probabilities
// @Summary Roulette catalog
// @Tags roulette
// @Produce json
// @Success 200 {object} RouletteCatalogResponse
// @Router /api/v1/roulette/catalog [get]
func HandleGetRouletteCatalog(svc roulette.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, RouletteCatalogResponse{
			Cost:     svc.Cost(),
			Outcomes: svc.Catalog(),
		})
	}
}

// HandleSpin runs one spin for the caller
// @Summary Spin the roulette
// @Description Debits the spin cost, draws one reward and adds it to the inventory
// @Tags roulette
// @Accept json
// @Produce json
// @Param request body SpinRequest true "Spinner"
// @Success 200 {object} domain.SpinResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/roulette/spin [post]
func HandleSpin(svc roulette.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SpinRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Spin"); err != nil {
			return
		}

		res, err := svc.Spin(r.Context(), req.UserID)
		if err != nil {
			respondServiceError(w, r, "Spin", err)
			return
		}

		respondJSON(w, http.StatusOK, res)
	}
}

// HandleGetItems returns the item catalog
// @Summary Item catalog
// @Tags items
// @Produce json
// @Success 200 {array} domain.Item
// @Router /api/v1/items [get]
func HandleGetItems(items ItemLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, items.Items())
	}
}
