// Package housekeeper holds the queue message model shared by the demo producer
// and consumer, and the loop that periodically produces messages.
package housekeeper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/x4b1/housekeeper/log"
)

//go:generate go tool moq -stub -pkg housekeeper_test -out mock_test.go . Source Publisher ErrorHandler

// Source is the interface that wraps the building of the next message to produce.
type Source interface {
	Next(ctx context.Context) (Message, error)
}

// Publisher is the interface that wraps the basic message publishing.
type Publisher interface {
	// Sends the message to the queue or topic.
	Publish(ctx context.Context, msg Message) error
}

// ErrorHandler is the interface that wraps error reporting of non fatal errors.
type ErrorHandler interface {
	Error(ctx context.Context, err error)
}

// ErrIncomplete is returned by Start when the context ends before the producer
// published what it was asked to.
var ErrIncomplete = errors.New("producer stopped before publishing all messages")

type fatalError struct {
	err error
}

func (e *fatalError) Error() string {
	return e.err.Error()
}

func (e *fatalError) Unwrap() error {
	return e.err
}

// ProducerOption defines the optional parameters for producer.
type ProducerOption func(*Producer)

// WithInterval replaces the default interval duration.
// A zero or negative interval keeps the default.
func WithInterval(p time.Duration) ProducerOption {
	return func(w *Producer) {
		if p > 0 {
			w.interval = p
		}
	}
}

// WithCount stops the producer after the given number of published messages.
// Zero means no limit.
func WithCount(n int) ProducerOption {
	return func(w *Producer) {
		w.count = n
	}
}

// WithErrorHandler replaces the default error logger.
func WithErrorHandler(l ErrorHandler) ProducerOption {
	return func(w *Producer) {
		w.errHandler = l
	}
}

// NewProducer returns a `Producer` instance with defaults.
//   - Interval: 1s
//   - No message limit.
//   - Golang standard error logger.
func NewProducer(source Source, publisher Publisher, opts ...ProducerOption) *Producer {
	p := Producer{
		interval: time.Second,

		errHandler: log.NewDefault(),
		publisher:  publisher,
		source:     source,
	}
	for _, opt := range opts {
		opt(&p)
	}

	return &p
}

// Producer is responsible of building messages from a source and sending them to a publisher.
type Producer struct {
	interval time.Duration
	count    int

	errHandler ErrorHandler
	source     Source
	publisher  Publisher
}

// Produce builds and publishes one message.
// A failure building the message is fatal, see Start.
func (w *Producer) Produce(ctx context.Context) (Message, error) {
	msg, err := w.source.Next(ctx)
	if err != nil {
		return nil, &fatalError{err}
	}

	if err := w.publisher.Publish(ctx, msg); err != nil {
		return msg, err
	}

	return msg, nil
}

// Start runs the producing process every interval.
// In case there is a publish error, it will call to error handler without stopping the process.
// If a fatal error happens, ex, the source can not build messages, it will stop the process.
// It returns once the context is done or the configured count of messages is published.
// Ending by context fails with ErrIncomplete when fewer than count messages were
// published, or when without a count every publish failed.
func (w *Producer) Start(ctx context.Context) error {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	var lastErr error
	sent := 0
	for {
		select {
		case <-ctx.Done():
			return w.stopped(ctx, sent, lastErr)
		case <-t.C:
			if _, err := w.Produce(ctx); err != nil {
				var fatalErr *fatalError
				if errors.As(err, &fatalErr) {
					return err
				}
				w.errHandler.Error(ctx, err)
				lastErr = err
				continue
			}
			sent++
			if w.count > 0 && sent >= w.count {
				return nil
			}
		}
	}
}

func (w *Producer) stopped(ctx context.Context, sent int, lastErr error) error {
	switch {
	case w.count > 0 && sent < w.count:
		return fmt.Errorf("%w: sent %d of %d: %w", ErrIncomplete, sent, w.count, errors.Join(ctx.Err(), lastErr))
	case sent == 0 && lastErr != nil:
		return fmt.Errorf("%w: no message sent: %w", ErrIncomplete, lastErr)
	}

	return nil
}
