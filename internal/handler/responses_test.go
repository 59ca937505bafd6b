package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/FNTDWorld_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound, ErrMsgAccountNotFoundError},
		{"wrapped account not found", fmt.Errorf("lookup @x: %w", domain.ErrAccountNotFound), http.StatusNotFound, ErrMsgAccountNotFoundError},
		{"item not found", domain.ErrItemNotFound, http.StatusNotFound, ErrMsgItemNotFoundError},
		{"not in inventory", domain.ErrNotInInventory, http.StatusBadRequest, ErrMsgNotInInventoryError},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgNotEnoughMoneyError},
		{"spin in progress", domain.ErrSpinInProgress, http.StatusConflict, ErrMsgSpinInProgressError},
		{"banned", domain.ErrAccountBanned, http.StatusForbidden, ErrMsgAccountBannedError},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest, ErrMsgInvalidAmountError},
		{"empty handle", domain.ErrEmptyHandle, http.StatusBadRequest, ErrMsgHandleRequiredError},
		{"empty catalog", domain.ErrEmptyCatalog, http.StatusInternalServerError, ErrMsgCatalogMisconfigError},
		{"unauthorized", domain.ErrUnauthorized, http.StatusForbidden, ErrMsgUnauthorizedError},
		{"generic not found", domain.ErrNotFound, http.StatusNotFound, ErrMsgNotFoundError},
		{"generic validation", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequestError},
		{"transient io", domain.NewIOError("get_profile", errors.New("reset")), http.StatusServiceUnavailable, ErrMsgUnavailableError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondJSON_EncodingFailure(t *testing.T) {
	w := httptest.NewRecorder()

	respondJSON(w, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
}

func TestRespondServiceError_IncludesKind(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	respondServiceError(w, req, "Test", domain.ErrInsufficientFunds)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Not enough money","kind":"validation"}`, w.Body.String())
}
