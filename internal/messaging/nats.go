package messaging

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"github.com/mujtaba-kazmi2006/nunno-backend/pkg/config"
)

// NATSClient publishes operational events so a monitoring consumer can
// track degraded upstream feeds.
type NATSClient struct {
	conn   *nats.Conn
	logger *logrus.Entry
}

// DegradationEvent is published whenever the price-history pipeline falls
// back to synthetic data.
type DegradationEvent struct {
	Ticker    string    `json:"ticker"`
	Timeframe string    `json:"timeframe"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// NewNATSClient creates a new NATS client
func NewNATSClient(cfg *config.NATSConfig, logger *logrus.Logger) (*NATSClient, error) {
	opts := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnect),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.WithError(err).Warn("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected")
		}),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSClient{
		conn:   conn,
		logger: logger.WithField("component", "nats"),
	}, nil
}

// Close closes the NATS connection
func (nc *NATSClient) Close() error {
	nc.conn.Close()
	return nil
}

// IsConnected checks if NATS is connected
func (nc *NATSClient) IsConnected() bool {
	return nc.conn.IsConnected()
}

// PublishDegradation publishes a degradation event. Publish failures are
// logged, never surfaced: ops events must not affect request handling.
func (nc *NATSClient) PublishDegradation(event DegradationEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		nc.logger.WithError(err).Error("Failed to marshal degradation event")
		return
	}

	subject := fmt.Sprintf("pricehistory.degraded.%s", event.Ticker)
	if err := nc.conn.Publish(subject, data); err != nil {
		nc.logger.WithError(err).WithField("subject", subject).Warn("Failed to publish degradation event")
	}
}
