// Package kafka publishes study group lifecycle events to a Kafka topic.
// Messages are JSON encoded and keyed by study group id so events for one
// group stay ordered within a partition.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
	"github.com/jsamuelsen11/stuti-api/internal/platform/config"
	"github.com/jsamuelsen11/stuti-api/internal/ports"
)

var (
	_ ports.EventPublisher = (*Publisher)(nil)
	_ ports.HealthChecker  = (*Publisher)(nil)
)

// messageWriter is the subset of *kafkago.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher writes events synchronously so a failed publish is reported to
// the caller.
type Publisher struct {
	w       messageWriter
	brokers []string
	topic   string
}

// NewPublisher creates a Publisher for cfg.Topic on cfg.Brokers.
func NewPublisher(cfg config.EventsConfig) *Publisher {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafkago.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           cfg.WriteTimeout,
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return &Publisher{w: w, brokers: cfg.Brokers, topic: cfg.Topic}
}

// Publish writes event to the topic.
func (p *Publisher) Publish(ctx context.Context, event studygroup.Event) error {
	msg, err := toMessage(event)
	if err != nil {
		return err
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publishing %s for study group %d: %w", event.Type, event.StudyGroupID, err)
	}
	return nil
}

// Close flushes pending writes.
func (p *Publisher) Close() error {
	return p.w.Close()
}

// Name identifies the publisher in readiness results.
func (p *Publisher) Name() string { return "kafka" }

// HealthCheck dials the first reachable broker.
func (p *Publisher) HealthCheck(ctx context.Context) error {
	var lastErr error
	for _, addr := range p.brokers {
		var d net.Dialer
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err == nil {
			_ = conn.Close()
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("kafka: no broker reachable: %w", lastErr)
}

func toMessage(event studygroup.Event) (kafkago.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("encoding %s event: %w", event.Type, err)
	}
	return kafkago.Message{
		Key:   []byte(strconv.FormatInt(event.StudyGroupID, 10)),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafkago.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}, nil
}
