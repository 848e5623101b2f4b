package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"
)

// Publisher emits draft events for downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

// JetStreamConfig configures the NATS JetStream publisher.
type JetStreamConfig struct {
	URL           string
	StreamName    string
	SubjectPrefix string
	MaxReconnects int
	ReconnectWait time.Duration
	MaxAge        time.Duration
}

// DefaultJetStreamConfig returns the stock stream configuration.
func DefaultJetStreamConfig() JetStreamConfig {
	return JetStreamConfig{
		URL:           nats.DefaultURL,
		StreamName:    "DRAFT_EVENTS",
		SubjectPrefix: "draft.events",
		MaxReconnects: -1,
		ReconnectWait: 2 * time.Second,
		MaxAge:        7 * 24 * time.Hour,
	}
}

// JetStreamPublisher publishes draft events to a NATS JetStream stream,
// one subject per event type under the configured prefix.
type JetStreamPublisher struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	config JetStreamConfig
}

// NewJetStreamPublisher connects to NATS and provisions the event stream.
func NewJetStreamPublisher(cfg JetStreamConfig) (*JetStreamPublisher, error) {
	opts := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	p := &JetStreamPublisher{nc: nc, js: js, config: cfg}

	if err := p.ensureStream(context.Background()); err != nil {
		nc.Close()
		return nil, fmt.Errorf("ensure stream: %w", err)
	}

	return p, nil
}

func (p *JetStreamPublisher) ensureStream(ctx context.Context) error {
	_, err := p.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     p.config.StreamName,
		Subjects: []string{p.config.SubjectPrefix + ".>"},
		MaxAge:   p.config.MaxAge,
		Storage:  jetstream.FileStorage,
	})
	return err
}

// Publish sends one event wrapped in an id/type/timestamp envelope.
func (p *JetStreamPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	envelope := map[string]any{
		"event_id":   uuid.New().String(),
		"event_type": eventType,
		"emitted_at": time.Now().UTC(),
		"payload":    payload,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	subject := fmt.Sprintf("%s.%s", p.config.SubjectPrefix, eventType)
	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// Close drains the underlying NATS connection.
func (p *JetStreamPublisher) Close() {
	p.nc.Close()
}

// NopPublisher discards events. Used in tests and when NATS is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	return nil
}
