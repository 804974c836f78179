package aws

import "github.com/x4b1/housekeeper"

// WithDefaultOrderingKey sets the FIFO group id of messages whose metadata has no group.
func WithDefaultOrderingKey(key string) DefaultOrderingKeyOption {
	return DefaultOrderingKeyOption(key)
}

// DefaultOrderingKeyOption is the fallback FIFO group id, valid for both publishers.
type DefaultOrderingKeyOption string

func (d DefaultOrderingKeyOption) applySNSPublisher(p *SNSPublisher) {
	p.fifo.defaultOrdKey = string(d)
}

func (d DefaultOrderingKeyOption) applySQSPublisher(p *SQSPublisher) {
	p.fifo.defaultOrdKey = string(d)
}

// WithMetaOrderingKey names the metadata entry holding the FIFO group id of each message.
func WithMetaOrderingKey(key string) MetaOrderingKeyOption {
	return MetaOrderingKeyOption(key)
}

// MetaOrderingKeyOption is the metadata key read for the FIFO group id, valid for both publishers.
type MetaOrderingKeyOption string

func (m MetaOrderingKeyOption) applySNSPublisher(p *SNSPublisher) {
	p.fifo.metaOrdKey = string(m)
}

func (m MetaOrderingKeyOption) applySQSPublisher(p *SQSPublisher) {
	p.fifo.metaOrdKey = string(m)
}

// WithMessageIDKey replaces the MessageIDKey attribute. Publishers write the
// message id to it and the subscriber reads it back. Empty keeps the default.
func WithMessageIDKey(key string) MessageIDKeyOption {
	return MessageIDKeyOption(key)
}

// MessageIDKeyOption is the attribute carrying the message id.
type MessageIDKeyOption string

func (m MessageIDKeyOption) key(current string) string {
	if m == "" {
		return current
	}

	return string(m)
}

func (m MessageIDKeyOption) applySNSPublisher(p *SNSPublisher) {
	p.msgIDKey = m.key(p.msgIDKey)
}

func (m MessageIDKeyOption) applySQSPublisher(p *SQSPublisher) {
	p.msgIDKey = m.key(p.msgIDKey)
}

func (m MessageIDKeyOption) applySQSSubscriber(s *SQSSubscriber) {
	s.msgIDKey = m.key(s.msgIDKey)
}

// WithFifoQueue turns on deduplication and group ids, required by FIFO queues and topics.
func WithFifoQueue(fifo bool) FifoQueueOption {
	return FifoQueueOption(fifo)
}

// FifoQueueOption marks the target as FIFO, valid for both publishers.
type FifoQueueOption bool

func (f FifoQueueOption) applySNSPublisher(p *SNSPublisher) {
	p.fifo.enabled = bool(f)
}

func (f FifoQueueOption) applySQSPublisher(p *SQSPublisher) {
	p.fifo.enabled = bool(f)
}

// WithMaxWaitSeconds sets how long a receive waits for messages to arrive.
func WithMaxWaitSeconds(waitSec int) MaxWaitSecondsOption {
	return MaxWaitSecondsOption(waitSec)
}

// MaxWaitSecondsOption is the long polling time of the subscriber.
type MaxWaitSecondsOption int

func (m MaxWaitSecondsOption) applySQSSubscriber(s *SQSSubscriber) {
	s.maxWaitSeconds = int(m)
}

// WithMaxMessages sets how many messages a single receive returns at most.
func WithMaxMessages(msgs int) MaxMessagesOption {
	return MaxMessagesOption(msgs)
}

// MaxMessagesOption is the batch size of the subscriber.
type MaxMessagesOption int

func (m MaxMessagesOption) applySQSSubscriber(s *SQSSubscriber) {
	s.maxMessages = int(m)
}

// WithErrorHandler receives the failures handling or deleting single messages.
func WithErrorHandler(h housekeeper.ErrorHandler) ErrorHandlerOption {
	return ErrorHandlerOption{h}
}

// ErrorHandlerOption is the subscriber error handler.
type ErrorHandlerOption struct {
	h housekeeper.ErrorHandler
}

func (e ErrorHandlerOption) applySQSSubscriber(s *SQSSubscriber) {
	s.errHandler = e.h
}
