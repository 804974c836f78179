// Package housekeepertest provides builders shared by the package tests.
package housekeepertest

import (
	"time"

	"github.com/x4b1/housekeeper"
)

const (
	MsgID      = "9e8d605d-7de4-41e2-a99e-18f7ff59b944"
	MsgMDKey   = "key"
	MsgMDValue = "value"
)

var msgAt = time.Date(2024, 3, 9, 12, 4, 5, 0, time.UTC)

func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{
		id:      MsgID,
		payload: []byte(`{"message_id":"` + MsgID + `","timestamp":"2024-03-09T12:04:05.000000","data":4242}`),
		md:      housekeeper.Metadata{MsgMDKey: MsgMDValue},
	}
}

type MessageBuilder struct {
	id      string
	payload []byte
	md      housekeeper.Metadata
}

func (mb *MessageBuilder) WithID(id string) *MessageBuilder {
	mb.id = id
	return mb
}

func (mb *MessageBuilder) WithPayload(p []byte) *MessageBuilder {
	mb.payload = p
	return mb
}

func (mb *MessageBuilder) WithMetadata(key, value string) *MessageBuilder {
	mb.md[key] = value
	return mb
}

func (mb *MessageBuilder) Build() *housekeeper.GenericMessage {
	md := make(housekeeper.Metadata, len(mb.md))
	for k, v := range mb.md {
		md[k] = v
	}

	return &housekeeper.GenericMessage{
		MsgID:       mb.id,
		MsgPayload:  mb.payload,
		MsgAt:       msgAt,
		MsgMetadata: md,
	}
}
