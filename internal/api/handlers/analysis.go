package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/mujtaba-kazmi2006/nunno-backend/internal/analysis"
)

// AnalysisHandler serves the technical, tokenomics and news endpoints.
// Each analyzer may be nil when its client failed to initialize; the
// endpoint then answers 503.
type AnalysisHandler struct {
	technical  *analysis.TechnicalAnalyzer
	tokenomics *analysis.TokenomicsAnalyzer
	news       *analysis.NewsAnalyzer
	logger     *logrus.Entry
}

// NewAnalysisHandler creates an analysis handler.
func NewAnalysisHandler(
	technical *analysis.TechnicalAnalyzer,
	tokenomics *analysis.TokenomicsAnalyzer,
	news *analysis.NewsAnalyzer,
	logger *logrus.Logger,
) *AnalysisHandler {
	return &AnalysisHandler{
		technical:  technical,
		tokenomics: tokenomics,
		news:       news,
		logger:     logger.WithField("component", "analysis-api"),
	}
}

// Technical handles GET /api/v1/technical/{ticker}.
func (h *AnalysisHandler) Technical(w http.ResponseWriter, r *http.Request) {
	if h.technical == nil {
		writeError(w, http.StatusServiceUnavailable, "Technical service unavailable")
		return
	}

	ticker := mux.Vars(r)["ticker"]
	interval := r.URL.Query().Get("interval")

	result, err := h.technical.Analyze(r.Context(), ticker, interval)
	if err != nil {
		h.logger.WithError(err).WithField("ticker", ticker).Error("Technical analysis failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Tokenomics handles GET /api/v1/tokenomics/{coin_id}.
func (h *AnalysisHandler) Tokenomics(w http.ResponseWriter, r *http.Request) {
	if h.tokenomics == nil {
		writeError(w, http.StatusServiceUnavailable, "Tokenomics service unavailable")
		return
	}

	coinID := mux.Vars(r)["coin_id"]

	investmentAmount := 1000.0
	if raw := r.URL.Query().Get("investment_amount"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid investment_amount")
			return
		}
		investmentAmount = parsed
	}

	result, err := h.tokenomics.Analyze(r.Context(), coinID, investmentAmount)
	if err != nil {
		h.logger.WithError(err).WithField("coin_id", coinID).Error("Tokenomics analysis failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// News handles GET /api/v1/news/{ticker}.
func (h *AnalysisHandler) News(w http.ResponseWriter, r *http.Request) {
	if h.news == nil {
		writeError(w, http.StatusServiceUnavailable, "News service unavailable")
		return
	}

	ticker := mux.Vars(r)["ticker"]

	result, err := h.news.GetNewsSentiment(r.Context(), ticker)
	if err != nil {
		h.logger.WithError(err).WithField("ticker", ticker).Error("News sentiment failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
