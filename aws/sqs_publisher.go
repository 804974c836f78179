package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/x4b1/housekeeper"
)

var _ housekeeper.Publisher = &SQSPublisher{}

// SQSPublisherOption defines an interface for applying configuration options to SQSPublisher instances.
type SQSPublisherOption interface {
	applySQSPublisher(*SQSPublisher)
}

// NewSQSPublisher creates a new SQSPublisher with the given SQS client and queue URL.
func NewSQSPublisher(svc SQSClient, queueURL string, opts ...SQSPublisherOption) *SQSPublisher {
	p := SQSPublisher{
		svc:      svc,
		queue:    queueURL,
		msgIDKey: MessageIDKey,
	}

	for _, opt := range opts {
		opt.applySQSPublisher(&p)
	}

	return &p
}

// SQSPublisher sends messages to an AWS SQS queue, standard or FIFO.
// Message metadata and id are sent as string message attributes.
type SQSPublisher struct {
	svc   SQSClient
	queue string
	fifo  fifo
	// attribute key where the message id is sent.
	msgIDKey string
}

// Publish sends the given message to the queue.
func (p SQSPublisher) Publish(ctx context.Context, msg housekeeper.Message) error {
	att := make(map[string]types.MessageAttributeValue, len(msg.Metadata())+1)
	for k, v := range msg.Metadata() {
		att[k] = types.MessageAttributeValue{
			DataType:    awsStringDataType,
			StringValue: aws.String(v),
		}
	}
	att[p.msgIDKey] = types.MessageAttributeValue{
		DataType:    awsStringDataType,
		StringValue: aws.String(msg.ID()),
	}

	_, err := p.svc.SendMessage(
		ctx,
		&sqs.SendMessageInput{
			MessageDeduplicationId: p.fifo.deduplicationID(msg),
			MessageAttributes:      att,
			MessageBody:            aws.String(string(msg.Payload())),
			QueueUrl:               aws.String(p.queue),
			MessageGroupId:         p.fifo.groupID(msg),
		})
	if err != nil {
		return fmt.Errorf("sending message %s to %s: %w", msg.ID(), p.queue, queueErr(err))
	}

	return nil
}
