package housekeeper

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyMessagePayload is the error returned when the message payload is empty.
var ErrEmptyMessagePayload = errors.New("empty message payload")

// MessageOption customizes a message built by NewMessage.
type MessageOption func(*GenericMessage)

// WithMessageID replaces the generated message identifier.
func WithMessageID(id string) MessageOption {
	return func(m *GenericMessage) {
		if id != "" {
			m.MsgID = id
		}
	}
}

// WithMessageAt replaces the message creation moment.
func WithMessageAt(at time.Time) MessageOption {
	return func(m *GenericMessage) {
		m.MsgAt = at
	}
}

// NewMessage returns a new Message given a payload.
func NewMessage(payload []byte, opts ...MessageOption) (*GenericMessage, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyMessagePayload
	}

	msg := &GenericMessage{
		MsgID:       uuid.NewString(),
		MsgPayload:  payload,
		MsgMetadata: Metadata{},
		MsgAt:       time.Now(),
	}
	for _, opt := range opts {
		opt(msg)
	}

	return msg, nil
}

var _ json.Marshaler = (*GenericMessage)(nil)

// A Message represents a message sent to or received from a queue.
type Message interface {
	ID() string
	Metadata() Metadata
	Payload() []byte
	At() time.Time
}

// GenericMessage is the default Message implementation.
type GenericMessage struct {
	// Unique identifier for the message.
	MsgID string
	// Sent as message attributes, readable without decoding the payload.
	MsgMetadata Metadata
	// Message body. Must not be empty.
	MsgPayload []byte
	// Creation moment for produced messages, receive moment for consumed ones.
	MsgAt time.Time
}

// MarshalJSON implements json.Marshaler.
func (m *GenericMessage) MarshalJSON() ([]byte, error) {
	var payload any = string(m.MsgPayload)
	if json.Valid(m.MsgPayload) {
		payload = json.RawMessage(m.MsgPayload)
	}
	return json.Marshal(struct {
		ID       string    `json:"id"`
		Metadata Metadata  `json:"metadata"`
		Payload  any       `json:"payload"`
		At       time.Time `json:"at"`
	}{
		ID:       m.MsgID,
		Metadata: m.MsgMetadata,
		Payload:  payload,
		At:       m.MsgAt,
	})
}

// ID returns the unique identifier of the message.
func (m *GenericMessage) ID() string {
	return m.MsgID
}

// SetMetadata sets the given key-value pair to the message metadata.
// If the key already exists, it replaces the value.
func (m *GenericMessage) SetMetadata(key, value string) *GenericMessage {
	if m.MsgMetadata == nil {
		m.MsgMetadata = Metadata{}
	}
	m.MsgMetadata[key] = value

	return m
}

// Metadata returns the message metadata.
func (m *GenericMessage) Metadata() Metadata {
	return m.MsgMetadata
}

// Payload returns the message payload.
func (m *GenericMessage) Payload() []byte {
	return m.MsgPayload
}

// At returns the message moment.
func (m *GenericMessage) At() time.Time {
	return m.MsgAt
}
