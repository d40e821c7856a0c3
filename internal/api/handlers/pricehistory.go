package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/mujtaba-kazmi2006/nunno-backend/internal/pricehistory"
)

// PriceHistoryHandler serves chart-ready price history.
type PriceHistoryHandler struct {
	svc    *pricehistory.Service
	logger *logrus.Entry
}

// NewPriceHistoryHandler creates a price-history handler.
func NewPriceHistoryHandler(svc *pricehistory.Service, logger *logrus.Logger) *PriceHistoryHandler {
	return &PriceHistoryHandler{
		svc:    svc,
		logger: logger.WithField("component", "price-history-api"),
	}
}

// Get handles GET /api/v1/price-history/{ticker}. It always answers 200:
// the service substitutes a synthetic payload on any upstream failure so
// the chart never renders a hard error.
func (h *PriceHistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	ticker := mux.Vars(r)["ticker"]

	timeframe := r.URL.Query().Get("timeframe")
	if timeframe == "" {
		timeframe = "24H"
	}

	payload := h.svc.GetPriceHistory(r.Context(), ticker, timeframe)
	writeJSON(w, http.StatusOK, payload)
}
