package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	apiHandlers "github.com/mujtaba-kazmi2006/nunno-backend/internal/api/handlers"
	"github.com/mujtaba-kazmi2006/nunno-backend/internal/analysis"
	"github.com/mujtaba-kazmi2006/nunno-backend/internal/pricehistory"
	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/config"
)

const (
	// ServiceName is reported by the health endpoint.
	ServiceName = "Nunno Finance API"
	// Version is reported by the health endpoint and the CLI.
	Version = "1.0.0"
)

// Server represents the HTTP API server
type Server struct {
	cfg        *config.Config
	logger     *logrus.Logger
	router     *mux.Router
	httpServer *http.Server

	priceHistoryHandler *apiHandlers.PriceHistoryHandler
	chatHandler         *apiHandlers.ChatHandler
	analysisHandler     *apiHandlers.AnalysisHandler
}

// NewServer creates a new API server. Nil collaborators disable the
// endpoints that depend on them.
func NewServer(
	cfg *config.Config,
	logger *logrus.Logger,
	priceHistory *pricehistory.Service,
	chatSvc apiHandlers.ChatService,
	technical *analysis.TechnicalAnalyzer,
	tokenomics *analysis.TokenomicsAnalyzer,
	news *analysis.NewsAnalyzer,
) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
	}

	s.priceHistoryHandler = apiHandlers.NewPriceHistoryHandler(priceHistory, logger)
	s.chatHandler = apiHandlers.NewChatHandler(chatSvc, logger)
	s.analysisHandler = apiHandlers.NewAnalysisHandler(technical, tokenomics, news, logger)

	s.setupRoutes()

	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.recoveryMiddleware)

	if s.cfg.Security.CORSEnabled {
		s.router.Use(s.corsMiddleware)
	}

	// Health check
	s.router.HandleFunc("/", s.handleRoot).Methods("GET")

	apiV1 := s.router.PathPrefix("/api/v1").Subrouter()

	apiV1.HandleFunc("/technical/{ticker}", s.analysisHandler.Technical).Methods("GET")
	apiV1.HandleFunc("/tokenomics/{coin_id}", s.analysisHandler.Tokenomics).Methods("GET")
	apiV1.HandleFunc("/news/{ticker}", s.analysisHandler.News).Methods("GET")
	apiV1.HandleFunc("/price-history/{ticker}", s.priceHistoryHandler.Get).Methods("GET")
	apiV1.HandleFunc("/chat", s.chatHandler.Chat).Methods("POST")
	apiV1.HandleFunc("/chat/stream", s.chatHandler.ChatStream).Methods("POST")
}

// Router exposes the configured router, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := s.cfg.GetServerAddr()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	s.logger.WithField("address", addr).Info("Starting HTTP server")

	if err := s.httpServer.ListenAndServe(); err != nil {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server")
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Middleware functions

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap ResponseWriter to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		s.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   wrapped.statusCode,
			"duration": time.Since(start),
			"remote":   r.RemoteAddr,
		}).Info("HTTP request")
	})
}

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.WithFields(logrus.Fields{
					"error": err,
					"path":  r.URL.Path,
				}).Error("Panic recovered")

				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(s.cfg.Security.CORSOrigins),
		handlers.AllowedMethods(s.cfg.Security.CORSMethods),
		handlers.AllowedHeaders(s.cfg.Security.CORSHeaders),
		handlers.AllowCredentials(),
	)(next)
}

// handleRoot reports service identity and liveness.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "online",
		"service": ServiceName,
		"version": Version,
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Flush forwards flushes so SSE responses stream through the logging
// wrapper.
func (rw *responseWriter) Flush() {
	if flusher, ok := rw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
