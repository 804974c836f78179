package housekeeper

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoPublishers is returned when a MultiPublisher is built without publishers.
var ErrNoPublishers = errors.New("no publishers")

var _ Publisher = &MultiPublisher{}

// NewMultiPublisher returns a MultiPublisher sending to all the given publishers.
func NewMultiPublisher(pubs ...Publisher) (*MultiPublisher, error) {
	if len(pubs) == 0 {
		return nil, ErrNoPublishers
	}

	return &MultiPublisher{pubs}, nil
}

// MultiPublisher sends every message to all its publishers, ex: a queue and a topic.
type MultiPublisher struct {
	pubs []Publisher
}

// Publish sends the message to every publisher, even when a previous one fails.
// It returns the joined errors of the failed publishers.
func (mp *MultiPublisher) Publish(ctx context.Context, msg Message) error {
	var errs []error
	for i, p := range mp.pubs {
		if err := p.Publish(ctx, msg); err != nil {
			errs = append(errs, fmt.Errorf("publisher %d: %w", i, err))
		}
	}

	return errors.Join(errs...)
}
