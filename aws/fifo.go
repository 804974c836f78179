package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/x4b1/housekeeper"
)

// fifo holds the FIFO settings shared by the SQS and SNS publishers.
type fifo struct {
	enabled bool
	// meta property of the message to use as ordering key
	metaOrdKey string
	// default ordering key in case not provided in message metadata
	defaultOrdKey string
}

// deduplicationID returns the message id as deduplication id on FIFO.
func (f fifo) deduplicationID(msg housekeeper.Message) *string {
	if !f.enabled {
		return nil
	}

	return aws.String(msg.ID())
}

// groupID tries to get the ordering key from message metadata,
// in case the message does not have the key it defaults to the publisher setup.
func (f fifo) groupID(msg housekeeper.Message) *string {
	if !f.enabled {
		return nil
	}

	if key, ok := msg.Metadata()[f.metaOrdKey]; ok {
		return aws.String(key)
	}

	if f.defaultOrdKey != "" {
		return aws.String(f.defaultOrdKey)
	}

	return nil
}
