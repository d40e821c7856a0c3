package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mujtaba-kazmi2006/nunno-backend/internal/analysis"
	"github.com/mujtaba-kazmi2006/nunno-backend/internal/api"
	apiHandlers "github.com/mujtaba-kazmi2006/nunno-backend/internal/api/handlers"
	"github.com/mujtaba-kazmi2006/nunno-backend/internal/assistant"
	"github.com/mujtaba-kazmi2006/nunno-backend/internal/cache"
	"github.com/mujtaba-kazmi2006/nunno-backend/internal/chat"
	"github.com/mujtaba-kazmi2006/nunno-backend/internal/market"
	"github.com/mujtaba-kazmi2006/nunno-backend/internal/messaging"
	"github.com/mujtaba-kazmi2006/nunno-backend/internal/pricehistory"
	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/config"
)

// App represents the main application
type App struct {
	cfg    *config.Config
	logger *logrus.Logger
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// Core components
	marketClient *market.Client
	redisCache   *cache.RedisClient
	natsClient   *messaging.NATSClient

	// Services
	priceHistory *pricehistory.Service
	coingecko    *analysis.CoinGeckoClient
	technical    *analysis.TechnicalAnalyzer
	tokenomics   *analysis.TokenomicsAnalyzer
	news         *analysis.NewsAnalyzer
	assistantCli *assistant.Client
	chatService  *chat.Service
	apiServer    *api.Server
}

// New creates a new application instance
func New(cfg *config.Config, logger *logrus.Logger) *App {
	ctx, cancel := context.WithCancel(context.Background())

	return &App{
		cfg:    cfg,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Initialize initializes all application components. The assistant is
// allowed to fail here: chat endpoints answer 503 while the market data
// endpoints keep working.
func (a *App) Initialize() error {
	if err := a.initializeCache(); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	if err := a.initializeMessaging(); err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}

	a.initializeMarketData()
	a.initializeAnalyzers()
	a.initializeAssistant()
	a.initializeAPIServer()

	return nil
}

// Start starts the application
func (a *App) Start() error {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.apiServer.Start(); err != nil {
			if err != http.ErrServerClosed {
				a.logger.WithError(err).Error("API server error")
			}
		}
	}()

	return nil
}

// Stop gracefully stops the application
func (a *App) Stop() error {
	a.logger.Info("Stopping application...")

	a.cancel()

	if a.apiServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.apiServer.Stop(ctx); err != nil {
			a.logger.WithError(err).Error("Error stopping API server")
		}
		cancel()
	}

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		a.logger.Info("All goroutines stopped")
	case <-time.After(3 * time.Second):
		a.logger.Warn("Timeout waiting for goroutines to finish")
	}

	if err := a.closeConnections(); err != nil {
		a.logger.WithError(err).Error("Error closing connections")
	}

	a.logger.Info("Application stopped successfully")
	return nil
}

// GetContext returns the application context
func (a *App) GetContext() context.Context {
	return a.ctx
}

// GetConfig returns the application configuration
func (a *App) GetConfig() *config.Config {
	return a.cfg
}

// GetLogger returns the application logger
func (a *App) GetLogger() *logrus.Logger {
	return a.logger
}

// Private initialization methods

func (a *App) initializeCache() error {
	if !a.cfg.Redis.Enabled {
		return nil
	}

	redisClient, err := cache.NewRedisClient(&a.cfg.Redis, a.logger)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	a.redisCache = redisClient

	return nil
}

func (a *App) initializeMessaging() error {
	if !a.cfg.NATS.Enabled {
		return nil
	}

	natsClient, err := messaging.NewNATSClient(&a.cfg.NATS, a.logger)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	a.natsClient = natsClient

	return nil
}

func (a *App) initializeMarketData() {
	a.marketClient = market.NewClient(&a.cfg.Binance, a.logger)
	a.priceHistory = pricehistory.NewService(a.marketClient, a.redisCache, a.natsClient, a.logger)
}

func (a *App) initializeAnalyzers() {
	a.coingecko = analysis.NewCoinGeckoClient(&a.cfg.CoinGecko, a.logger)

	a.technical = analysis.NewTechnicalAnalyzer(a.marketClient, a.logger)
	a.tokenomics = analysis.NewTokenomicsAnalyzer(a.coingecko, a.logger)
	a.news = analysis.NewNewsAnalyzer(&a.cfg.News, a.logger)
}

func (a *App) initializeAssistant() {
	client, err := assistant.NewClient(&a.cfg.Assistant, a.logger)
	if err != nil {
		a.logger.WithError(err).Warn("Assistant unavailable, chat endpoints disabled")
		return
	}

	a.assistantCli = client
	a.chatService = chat.NewService(client, a.technical, a.tokenomics, a.news, a.logger)
}

func (a *App) initializeAPIServer() {
	// A nil *chat.Service must stay a nil interface for the handler's
	// availability check, hence the explicit assignment.
	var chatSvc apiHandlers.ChatService
	if a.chatService != nil {
		chatSvc = a.chatService
	}

	a.apiServer = api.NewServer(
		a.cfg,
		a.logger,
		a.priceHistory,
		chatSvc,
		a.technical,
		a.tokenomics,
		a.news,
	)
}

func (a *App) closeConnections() error {
	var errs []error

	if a.redisCache != nil {
		if err := a.redisCache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if a.natsClient != nil {
		if err := a.natsClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close NATS: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing connections: %v", errs)
	}

	return nil
}
