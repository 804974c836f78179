package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"

	"github.com/x4b1/housekeeper"
)

var _ housekeeper.Publisher = &SNSPublisher{}

// SNSPublisherOption is a function to set options to SNSPublisher.
type SNSPublisherOption interface {
	applySNSPublisher(*SNSPublisher)
}

// NewSNSPublisher creates a new SNSPublisher with the given SNS client and topic ARN.
func NewSNSPublisher(cli SNSClient, topicARN string, opts ...SNSPublisherOption) *SNSPublisher {
	p := SNSPublisher{
		cli:      cli,
		topicARN: topicARN,
		msgIDKey: MessageIDKey,
	}

	for _, opt := range opts {
		opt.applySNSPublisher(&p)
	}

	return &p
}

// SNSPublisher publishes messages to an AWS SNS topic, so every queue
// subscribed to it receives them. Metadata and message id are sent as message attributes.
type SNSPublisher struct {
	cli      SNSClient
	topicARN string
	fifo     fifo
	// attribute key where the message id is sent.
	msgIDKey string
}

// Publish sends the provided message to the configured topic.
func (p SNSPublisher) Publish(ctx context.Context, msg housekeeper.Message) error {
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

	_, err := p.cli.Publish(
		ctx,
		&sns.PublishInput{
			MessageDeduplicationId: p.fifo.deduplicationID(msg),
			MessageAttributes:      att,
			Message:                aws.String(string(msg.Payload())),
			TopicArn:               aws.String(p.topicARN),
			MessageGroupId:         p.fifo.groupID(msg),
		})
	if err != nil {
		return fmt.Errorf("publishing message %s to %s: %w", msg.ID(), p.topicARN, err)
	}

	return nil
}
