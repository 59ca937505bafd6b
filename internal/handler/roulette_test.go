package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/FNTDWorld_Go/internal/catalog"
	"github.com/osse101/FNTDWorld_Go/internal/domain"
	"github.com/osse101/FNTDWorld_Go/mocks"
)

type staticItems []domain.Item

func (s staticItems) Items() []domain.Item { return s }

func TestHandleGetRouletteCatalog(t *testing.T) {
	mockSvc := mocks.NewMockRouletteService(t)
	mockSvc.On("Cost").Return(1000)
	mockSvc.On("Catalog").Return([]catalog.OutcomeView{
		{RewardOutcome: domain.RewardOutcome{ID: "endo", Rarity: domain.RarityCommon, Weight: 3}, Probability: 0.75},
		{RewardOutcome: domain.RewardOutcome{ID: "foxy", Rarity: domain.RarityLegendary, Weight: 1}, Probability: 0.25},
	})

	req := httptest.NewRequest("GET", "/api/v1/roulette/catalog", nil)
	w := httptest.NewRecorder()
	HandleGetRouletteCatalog(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cost":1000`)
	assert.Contains(t, w.Body.String(), `"probability":0.25`)
}

func TestHandleSpin(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mocks.MockRouletteService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: SpinRequest{UserID: 5},
			setupMock: func(m *mocks.MockRouletteService) {
				m.On("Spin", mock.Anything, int64(5)).Return(&domain.SpinResult{
					Outcome:      domain.RewardOutcome{ID: "freddy", Rarity: domain.RarityRare},
					WinningIndex: 45,
					Cost:         1000,
					Account:      domain.Account{ID: 5, Currency: 500},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"winning_index":45`,
		},
		{
			name:        "Not Enough Money",
			requestBody: SpinRequest{UserID: 5},
			setupMock: func(m *mocks.MockRouletteService) {
				m.On("Spin", mock.Anything, int64(5)).
					Return(nil, fmt.Errorf("%w: have 999, need 1000", domain.ErrInsufficientFunds))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNotEnoughMoneyError,
		},
		{
			name:        "Already Spinning",
			requestBody: SpinRequest{UserID: 5},
			setupMock: func(m *mocks.MockRouletteService) {
				m.On("Spin", mock.Anything, int64(5)).Return(nil, domain.ErrSpinInProgress)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgSpinInProgressError,
		},
		{
			name:        "Unknown Account",
			requestBody: SpinRequest{UserID: 5},
			setupMock: func(m *mocks.MockRouletteService) {
				m.On("Spin", mock.Anything, int64(5)).Return(nil, domain.ErrAccountNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"kind":"not_found"`,
		},
		{
			name:           "Missing User ID",
			requestBody:    map[string]string{},
			setupMock:      func(m *mocks.MockRouletteService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"user_id":"This field is required"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockRouletteService(t)
			tt.setupMock(mockSvc)

			w := postJSON(t, HandleSpin(mockSvc), "/api/v1/roulette/spin", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleGetItems(t *testing.T) {
	items := staticItems{{ID: "foxy", Name: "Foxy", Value: 1000}}

	req := httptest.NewRequest("GET", "/api/v1/items", nil)
	w := httptest.NewRecorder()
	HandleGetItems(items).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"foxy"`)
}
