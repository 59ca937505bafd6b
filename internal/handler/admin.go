package handler

import (
	"net/http"

	"github.com/osse101/FNTDWorld_Go/internal/admin"
	"github.com/osse101/FNTDWorld_Go/internal/domain"
	"github.com/osse101/FNTDWorld_Go/internal/draw"
)

// AdminHandler serves the admin panel operations
type AdminHandler struct {
	svc admin.Service
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(svc admin.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// CheckAdminResponse reports allow-list membership
type CheckAdminResponse struct {
	Handle  string `json:"handle"`
	IsAdmin bool   `json:"is_admin"`
}

// GrantCurrencyRequest adds currency to an account
type GrantCurrencyRequest struct {
	Actor  string `json:"actor" validate:"required,handle"`
	Target string `json:"target" validate:"required,handle"`
	Amount int    `json:"amount" validate:"required,gt=0,lte=1000000"`
}

// GiveItemRequest gives one item to an account
type GiveItemRequest struct {
	Actor  string `json:"actor" validate:"required,handle"`
	Target string `json:"target" validate:"required,handle"`
	ItemID string `json:"item_id" validate:"required,itemid"`
}

// BanRequest sets or clears the banned flag
type BanRequest struct {
	Actor  string `json:"actor" validate:"required,handle"`
	Target string `json:"target" validate:"required,handle"`
	Banned *bool  `json:"banned"`
}

// GiveAllRequest gives one item to every account
type GiveAllRequest struct {
	Actor  string `json:"actor" validate:"required,handle"`
	ItemID string `json:"item_id" validate:"required,itemid"`
}

// AuditRequest runs a distribution audit
type AuditRequest struct {
	Actor  string `json:"actor" validate:"required,handle"`
	Trials int    `json:"trials" validate:"gte=0"`
}

// AuditResponse is an audit report with its verdict
type AuditResponse struct {
	draw.AuditReport
	Alpha  float64 `json:"alpha"`
	Passes bool    `json:"passes"`
}

// AccountActionResponse wraps an account changed by an admin
type AccountActionResponse struct {
	Message string         `json:"message"`
	Account domain.Account `json:"account"`
}

// GiveAllResponse reports the bulk grant count, also on partial failure
type GiveAllResponse struct {
	Message string           `json:"message,omitempty"`
	Error   string           `json:"error,omitempty"`
	Result  admin.BulkResult `json:"result"`
}

// HandleCheck reports whether a handle may use the admin panel
// @Summary Check admin
// @Tags admin
// @Produce json
// @Param handle query string true "Handle"
// @Success 200 {object} CheckAdminResponse
// @Router /api/v1/admin/check [get]
func (h *AdminHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	handle, ok := GetQueryParam(r, w, "handle")
	if !ok {
		return
	}

	isAdmin, err := h.svc.CheckAdmin(r.Context(), handle)
	if err != nil {
		respondServiceError(w, r, "Check admin", err)
		return
	}
	respondJSON(w, http.StatusOK, CheckAdminResponse{Handle: handle, IsAdmin: isAdmin})
}

// HandleGrantCurrency adds currency to an account
// @Summary Grant currency
// @Tags admin
// @Accept json
// @Produce json
// @Param request body GrantCurrencyRequest true "Grant"
// @Success 200 {object} AccountActionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/currency [post]
func (h *AdminHandler) HandleGrantCurrency(w http.ResponseWriter, r *http.Request) {
	var req GrantCurrencyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Grant currency"); err != nil {
		return
	}

	acc, err := h.svc.GrantCurrency(r.Context(), req.Actor, req.Target, req.Amount)
	if err != nil {
		respondServiceError(w, r, "Grant currency", err)
		return
	}
	respondJSON(w, http.StatusOK, AccountActionResponse{Message: MsgCurrencyGranted, Account: *acc})
}

// HandleGiveItem gives one item to an account
// @Summary Give item
// @Tags admin
// @Accept json
// @Produce json
// @Param request body GiveItemRequest true "Item grant"
// @Success 200 {object} AccountActionResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/item [post]
func (h *AdminHandler) HandleGiveItem(w http.ResponseWriter, r *http.Request) {
	var req GiveItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Give item"); err != nil {
		return
	}

	acc, err := h.svc.GiveItem(r.Context(), req.Actor, req.Target, req.ItemID)
	if err != nil {
		respondServiceError(w, r, "Give item", err)
		return
	}
	respondJSON(w, http.StatusOK, AccountActionResponse{Message: MsgItemGiven, Account: *acc})
}

// HandleSetBanned bans or unbans an account
// @Summary Ban or unban
// @Tags admin
// @Accept json
// @Produce json
// @Param request body BanRequest true "Ban"
// @Success 200 {object} AccountActionResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/ban [post]
func (h *AdminHandler) HandleSetBanned(w http.ResponseWriter, r *http.Request) {
	var req BanRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Ban"); err != nil {
		return
	}
	banned := true
	if req.Banned != nil {
		banned = *req.Banned
	}

	acc, err := h.svc.SetBanned(r.Context(), req.Actor, req.Target, banned)
	if err != nil {
		respondServiceError(w, r, "Ban", err)
		return
	}
	msg := MsgAccountBanned
	if !banned {
		msg = MsgAccountUnbanned
	}
	respondJSON(w, http.StatusOK, AccountActionResponse{Message: msg, Account: *acc})
}

// HandleGiveAll gives one item to every account
// @Summary Give item to all
// @Description Appends the item to every inventory. On failure the partial count is returned with the error.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body GiveAllRequest true "Bulk grant"
// @Success 200 {object} GiveAllResponse
// @Failure 503 {object} GiveAllResponse
// @Router /api/v1/admin/give-all [post]
func (h *AdminHandler) HandleGiveAll(w http.ResponseWriter, r *http.Request) {
	var req GiveAllRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Give all"); err != nil {
		return
	}

	res, err := h.svc.GiveItemToAll(r.Context(), req.Actor, req.ItemID)
	if err != nil {
		if res.Updated == 0 {
			respondServiceError(w, r, "Give all", err)
			return
		}
		status, msg := mapServiceErrorToUserMessage(err)
		respondJSON(w, status, GiveAllResponse{Error: msg, Result: res})
		return
	}
	respondJSON(w, http.StatusOK, GiveAllResponse{Message: MsgItemGivenToAll, Result: res})
}

// HandleAudit runs a chi-square audit of the draw engine
// @Summary Audit roulette fairness
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AuditRequest true "Audit"
// @Success 200 {object} AuditResponse
// @Router /api/v1/admin/roulette/audit [post]
func (h *AdminHandler) HandleAudit(w http.ResponseWriter, r *http.Request) {
	var req AuditRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Audit"); err != nil {
		return
	}

	report, err := h.svc.AuditDraw(r.Context(), req.Actor, req.Trials)
	if err != nil {
		respondServiceError(w, r, "Audit", err)
		return
	}
	respondJSON(w, http.StatusOK, AuditResponse{
		AuditReport: *report,
		Alpha:       draw.DefaultAuditAlpha,
		Passes:      report.Passes(draw.DefaultAuditAlpha),
	})
}
