package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"parceltracker/internal/core/domain/model/parcel"

	"github.com/nats-io/nats.go"
)

// natsConn is the part of *nats.Conn the publisher uses.
type natsConn interface {
	Publish(subject string, data []byte) error
}

// NatsPublisher implements ports.EventPublisher on a NATS connection.
type NatsPublisher struct {
	conn   natsConn
	logger *slog.Logger
}

func NewNatsPublisher(conn natsConn, logger *slog.Logger) *NatsPublisher {
	return &NatsPublisher{
		conn:   conn,
		logger: logger.With("component", "nats_publisher"),
	}
}

// Connect dials NATS with reconnects enabled and connection state logged.
func Connect(url string, logger *slog.Logger) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name("parceltracker"),
		nats.Timeout(5*time.Second),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return conn, nil
}

// Publish sends every event, continuing past failures. The returned error
// joins the failures.
func (p *NatsPublisher) Publish(ctx context.Context, events ...parcel.Event) error {
	var failures []error
	for _, event := range events {
		data, err := json.Marshal(newMessage(event))
		if err != nil {
			failures = append(failures, err)
			continue
		}

		subject := Subject(event)
		if err = p.conn.Publish(subject, data); err != nil {
			failures = append(failures, fmt.Errorf("publish %s: %w", subject, err))
			continue
		}
		p.logger.DebugContext(ctx, "Published parcel event",
			"subject", subject,
			"parcelId", event.AggregateID().String(),
		)
	}
	return errors.Join(failures...)
}
