// Package sample implements the demo producer and consumer: random JSON
// messages written to a queue and drained from it.
package sample

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/x4b1/housekeeper"
)

// Data range of the generated payloads, both inclusive.
const (
	MinData = 1000
	MaxData = 9999
)

// timestampLayout is ISO-8601 with microseconds and no zone, UTC implied.
const timestampLayout = "2006-01-02T15:04:05.000000"

// Payload is the body of a demo message.
type Payload struct {
	MessageID string `json:"message_id"`
	Timestamp string `json:"timestamp"`
	Data      int    `json:"data"`
}

var _ housekeeper.Source = (*Generator)(nil)

// GeneratorOption defines the optional parameters for Generator.
type GeneratorOption func(*Generator)

// WithClock replaces the clock used for payload timestamps.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

// WithRand replaces the random source of the payload data.
func WithRand(r *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		g.intN = r.IntN
	}
}

// WithMetadata sets metadata sent with every generated message.
func WithMetadata(md map[string]string) GeneratorOption {
	return func(g *Generator) {
		g.md = md
	}
}

// NewGenerator returns a Generator using the wall clock and the global random source.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := Generator{
		now:  time.Now,
		intN: rand.IntN,
		id:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(&g)
	}

	return &g
}

// Generator builds random demo messages.
type Generator struct {
	now  func() time.Time
	intN func(n int) int
	id   func() string
	md   map[string]string
}

// Payload returns a new random payload with a unique id.
func (g *Generator) Payload() Payload {
	return Payload{
		MessageID: g.id(),
		Timestamp: g.now().UTC().Format(timestampLayout),
		Data:      MinData + g.intN(MaxData-MinData+1),
	}
}

// Next implements housekeeper.Source. The message id is the payload id.
func (g *Generator) Next(context.Context) (housekeeper.Message, error) {
	p := g.Payload()

	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	msg, err := housekeeper.NewMessage(b, housekeeper.WithMessageID(p.MessageID))
	if err != nil {
		return nil, err
	}
	for k, v := range g.md {
		msg.SetMetadata(k, v)
	}

	return msg, nil
}

// Handler returns the consumer subscription handler. It decodes the payload
// and logs it, a body that is not a payload fails and stays in the queue.
func Handler(l *zap.Logger) housekeeper.SubscriptionHandler {
	return func(_ context.Context, msg housekeeper.Message) error {
		var p Payload
		if err := json.Unmarshal(msg.Payload(), &p); err != nil {
			return fmt.Errorf("decoding message %s: %w", msg.ID(), err)
		}

		l.Info("processing message",
			zap.String("message_id", msg.ID()),
			zap.String("payload_id", p.MessageID),
			zap.String("timestamp", p.Timestamp),
			zap.Int("data", p.Data),
		)

		return nil
	}
}
