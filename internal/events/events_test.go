package events

import (
	"context"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func TestEventKey(t *testing.T) {
	e := Event{Entity: "group-session", Action: GroupSessionJoined, ID: 4}
	assert.Equal(t, "group-session-joined-4", e.Key())
}

func TestKafkaPublisherWritesKeyedJSON(t *testing.T) {
	w := &recordingWriter{}
	p := NewKafkaPublisher(w)

	err := p.Publish(context.Background(), Event{
		Entity:  "mood",
		Action:  MoodCreated,
		ID:      3,
		Payload: map[string]any{"mood": "happy"},
	})
	require.NoError(t, err)

	require.Len(t, w.msgs, 1)
	assert.Equal(t, "mood-created-3", string(w.msgs[0].Key))
	assert.JSONEq(t, `{"mood":"happy"}`, string(w.msgs[0].Value))
}

func TestKafkaPublisherWrapsWriteErrors(t *testing.T) {
	boom := errors.New("broker down")
	p := NewKafkaPublisher(&recordingWriter{err: boom})

	err := p.Publish(context.Background(), Event{Entity: "cart", Action: CartCleared, ID: 1})
	assert.ErrorIs(t, err, boom)
}

func TestKafkaPublisherRejectsUnmarshalablePayload(t *testing.T) {
	p := NewKafkaPublisher(&recordingWriter{})

	err := p.Publish(context.Background(), Event{Entity: "x", Action: "y", ID: 1, Payload: make(chan int)})
	assert.Error(t, err)
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, Nop{}.Publish(context.Background(), Event{}))
}

func TestEmitSwallowsErrors(t *testing.T) {
	w := &recordingWriter{err: errors.New("broker down")}
	assert.NotPanics(t, func() {
		Emit(context.Background(), NewKafkaPublisher(w), Event{Entity: "mood", Action: MoodCreated, ID: 1})
	})
}
