// Package events publishes domain events after the store has committed them.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const (
	MoodCreated        = "created"
	SessionBooked      = "booked"
	SessionStatus      = "status"
	GroupSessionJoined = "joined"
	GroupSessionLeft   = "left"
	CartCleared        = "cleared"
)

// Event is one domain change. Key renders as <entity>-<action>-<id>.
type Event struct {
	Entity  string
	Action  string
	ID      int
	Payload any
}

func (e Event) Key() string {
	return fmt.Sprintf("%s-%s-%d", e.Entity, e.Action, e.ID)
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// MessageWriter is the subset of *kafka.Writer used here.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", e.Key(), err)
	}

	msg := kafka.Message{
		Key:   []byte(e.Key()),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s event: %w", e.Key(), err)
	}
	return nil
}

// Nop drops every event. It is used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// Emit publishes e and logs a failure instead of returning it. Callers use it
// after the store has committed, when there is nothing left to undo.
func Emit(ctx context.Context, p Publisher, e Event) {
	if err := p.Publish(ctx, e); err != nil {
		logger.Warn().Err(err).Msgf("Error publishing event %s", e.Key())
	}
}
