package housekeeper

import "context"

// SubscriptionHandler defines a function to process a message, if something fails returns an error.
// A message whose handler fails is left in the queue.
type SubscriptionHandler func(ctx context.Context, msg Message) error

// NewSubscription returns a Subscription handler.
// The name is the queue name, ARN or URL the subscription reads from.
func NewSubscription(name string, h SubscriptionHandler) Subscription {
	return &subscription{name, h}
}

type subscription struct {
	name string
	h    SubscriptionHandler
}

// Name returns subscription name.
func (s *subscription) Name() string {
	return s.name
}

// Handle process message from queue.
func (s *subscription) Handle(ctx context.Context, msg Message) error {
	return s.h(ctx, msg)
}

// Subscription defines the basic methods for a queue subscription.
type Subscription interface {
	Name() string
	Handle(ctx context.Context, msg Message) error
}
