package aws

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"golang.org/x/sync/errgroup"

	"github.com/x4b1/housekeeper"
	"github.com/x4b1/housekeeper/log"
)

const (
	defaultMaxWaitSeconds  = 20
	defaultReceiveMessages = 1
)

// SQSSubscriberOption defines an interface for applying configuration options to SQSSubscriber instances.
type SQSSubscriberOption interface {
	applySQSSubscriber(*SQSSubscriber)
}

// NewSQSSubscriber creates a new SQSSubscriber with the given SQS client and options.
func NewSQSSubscriber(cli SQSClient, opts ...SQSSubscriberOption) *SQSSubscriber {
	s := SQSSubscriber{
		cli:        cli,
		subs:       make([]housekeeper.Subscription, 0),
		errHandler: log.NewDefault(),

		maxWaitSeconds: defaultMaxWaitSeconds,
		maxMessages:    defaultReceiveMessages,
		msgIDKey:       MessageIDKey,
		now:            time.Now,
	}

	for _, opt := range opts {
		opt.applySQSSubscriber(&s)
	}

	return &s
}

// SQSSubscriber receives messages from AWS SQS queues and hands them to subscriptions.
// A message is deleted from the queue only after its subscription handled it successfully.
type SQSSubscriber struct {
	cli SQSClient

	errHandler housekeeper.ErrorHandler
	subs       []housekeeper.Subscription

	maxWaitSeconds int
	maxMessages    int
	msgIDKey       string
	now            func() time.Time
}

// Register adds one or more subscriptions to the SQSSubscriber.
// Subscriptions define the queues and handlers to listen to.
func (s *SQSSubscriber) Register(subs ...housekeeper.Subscription) {
	s.subs = append(s.subs, subs...)
}

// Receive runs a single receive on the subscription queue and returns how many
// messages were handled and deleted. Failures handling or deleting a message
// go to the error handler, the message stays in the queue.
func (s *SQSSubscriber) Receive(ctx context.Context, sub housekeeper.Subscription) (int, error) {
	queueURL, err := s.queueURL(ctx, sub.Name())
	if err != nil {
		return 0, err
	}

	return s.receive(ctx, sub, queueURL)
}

// Listen starts the message polling and processing loop for all registered subscriptions.
// It blocks until the context is done, or returns the first receive error.
func (s *SQSSubscriber) Listen(ctx context.Context) error {
	urls := make([]*string, len(s.subs))
	for i, sub := range s.subs {
		u, err := s.queueURL(ctx, sub.Name())
		if err != nil {
			return err
		}
		urls[i] = u
	}

	g := new(errgroup.Group)
	for i, sub := range s.subs {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				default:
					if _, err := s.receive(ctx, sub, urls[i]); err != nil {
						if ctx.Err() != nil {
							return nil
						}

						return err
					}
				}
			}
		})
	}

	return g.Wait()
}

// queueURL resolves the queue url from a subscription name,
// that can be a queue url, name or ARN.
func (s *SQSSubscriber) queueURL(ctx context.Context, name string) (*string, error) {
	if strings.HasPrefix(name, "https://") || strings.HasPrefix(name, "http://") {
		return aws.String(name), nil
	}

	arnSplit := strings.Split(name, ":")
	out, err := s.cli.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(arnSplit[len(arnSplit)-1]),
	})
	if err != nil {
		return nil, fmt.Errorf("getting queue url for %s: %w", name, queueErr(err))
	}

	return out.QueueUrl, nil
}

func (s *SQSSubscriber) receive(ctx context.Context, sub housekeeper.Subscription, queueURL *string) (int, error) {
	msgs, err := s.cli.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:              queueURL,
		MaxNumberOfMessages:   int32(s.maxMessages),
		WaitTimeSeconds:       int32(s.maxWaitSeconds),
		MessageAttributeNames: []string{"All"},
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", sub.Name(), queueErr(err))
	}

	processed := 0
	for _, msg := range msgs.Messages {
		if err := sub.Handle(ctx, s.parse(msg)); err != nil {
			s.errHandler.Error(ctx, fmt.Errorf("handling message %s: %w", aws.ToString(msg.MessageId), err))
			continue
		}
		if _, err := s.cli.DeleteMessage(ctx, &sqs.DeleteMessageInput{
			ReceiptHandle: msg.ReceiptHandle,
			QueueUrl:      queueURL,
		}); err != nil {
			s.errHandler.Error(ctx, fmt.Errorf("deleting message %s: %w", aws.ToString(msg.MessageId), err))
			continue
		}
		processed++
	}

	return processed, nil
}

func (s *SQSSubscriber) parse(msg types.Message) *housekeeper.GenericMessage {
	parsed := housekeeper.GenericMessage{
		MsgPayload:  []byte(aws.ToString(msg.Body)),
		MsgMetadata: make(housekeeper.Metadata, len(msg.MessageAttributes)),
		MsgAt:       s.now(),
	}

	for k, v := range msg.MessageAttributes {
		if k == s.msgIDKey {
			parsed.MsgID = aws.ToString(v.StringValue)
			continue
		}
		parsed.MsgMetadata[k] = aws.ToString(v.StringValue)
	}
	if parsed.MsgID == "" {
		parsed.MsgID = aws.ToString(msg.MessageId)
	}

	return &parsed
}

// queueErr marks queue does not exist errors with ErrQueueNotFound.
func queueErr(err error) error {
	var notFound *types.QueueDoesNotExist
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: %w", ErrQueueNotFound, err)
	}

	return err
}
