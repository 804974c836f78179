package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/x4b1/housekeeper"
	awsx "github.com/x4b1/housekeeper/aws"
	"github.com/x4b1/housekeeper/log"
	"github.com/x4b1/housekeeper/sample"
)

const produceName = "produce"

var (
	errNoTarget        = errors.New("queue-url or topic-arn is required")
	errInvalidCount    = errors.New("count must not be negative")
	errInvalidInterval = errors.New("interval must be positive")
)

func validInterval(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: %s", errInvalidInterval, d)
	}

	return nil
}

func validCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", errInvalidCount, n)
	}

	return nil
}

func produceCommand(conf *configFile) *cli.Command {
	return &cli.Command{
		Name:  produceName,
		Usage: "send random demo messages to a SQS queue or SNS topic",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "queue-url",
				Aliases: []string{"q"},
				Usage:   "queue receiving the messages",
				Sources: conf.sources(produceName, "queue-url", queueURLEnv),
			},
			&cli.StringFlag{
				Name:    "topic-arn",
				Aliases: []string{"t"},
				Usage:   "topic receiving the messages, together with or instead of a queue",
				Sources: conf.sources(produceName, "topic-arn", topicARNEnv),
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "messages to send, 0 sends until interrupted",
				Value:   1,
				Sources: conf.sources(produceName, "count"),
			},
			&cli.DurationFlag{
				Name:      "interval",
				Usage:     "time between messages when sending more than one",
				Value:     time.Second,
				Sources:   conf.sources(produceName, "interval"),
				Validator: validInterval,
			},
			&cli.StringMapFlag{
				Name:    "metadata",
				Aliases: []string{"m"},
				Usage:   "key=value attribute sent with every message, can be repeated",
			},
			&cli.BoolFlag{
				Name:    "fifo",
				Usage:   "the queue or topic is FIFO",
				Sources: conf.sources(produceName, "fifo"),
			},
			&cli.StringFlag{
				Name:    "group",
				Usage:   "FIFO message group id",
				Value:   "housekeeper",
				Sources: conf.sources(produceName, "group"),
			},
			&cli.StringFlag{
				Name:    "group-key",
				Usage:   "metadata key whose value is the FIFO message group id, falls back to --group",
				Sources: conf.sources(produceName, "group-key"),
			},
			idAttributeFlag(conf, produceName),
		},
		Action: produceAction,
	}
}

func produceAction(ctx context.Context, cmd *cli.Command) error {
	count := int(cmd.Int("count"))
	if err := validCount(count); err != nil {
		return err
	}

	e, err := newEnv(ctx, cmd)
	if err != nil {
		return err
	}
	defer e.logger.Sync() //nolint:errcheck // nothing to do on stderr sync errors

	pub, err := publisher(cmd, e.clients)
	if err != nil {
		return err
	}

	gen := sample.NewGenerator(sample.WithMetadata(cmd.StringMap("metadata")))

	// a single message is sent right away, without waiting an interval.
	if count == 1 {
		producer := housekeeper.NewProducer(gen, pub)
		msg, err := producer.Produce(ctx)
		if err != nil {
			e.logger.Error("sending message", log.Err(err)...)
		} else {
			e.logger.Info("message sent", zap.String("message_id", msg.ID()))
		}

		return writeResponse(cmd.Root().Writer, sample.ProducerResponse(err))
	}

	err = housekeeper.NewProducer(
		gen,
		loggedPublisher{pub, e.logger},
		housekeeper.WithInterval(cmd.Duration("interval")),
		housekeeper.WithCount(count),
		housekeeper.WithErrorHandler(log.NewHandler(e.logger)),
	).Start(ctx)

	return writeResponse(cmd.Root().Writer, sample.ProducerResponse(err))
}

func publisher(cmd *cli.Command, clients awsx.Clients) (housekeeper.Publisher, error) {
	fifo := awsx.WithFifoQueue(cmd.Bool("fifo"))
	group := awsx.WithDefaultOrderingKey(cmd.String("group"))
	groupKey := awsx.WithMetaOrderingKey(cmd.String("group-key"))
	idKey := awsx.WithMessageIDKey(cmd.String("id-attribute"))

	var pubs []housekeeper.Publisher
	if arn := cmd.String("topic-arn"); arn != "" {
		pubs = append(pubs, awsx.NewSNSPublisher(clients.SNS, arn, fifo, group, groupKey, idKey))
	}
	if url := cmd.String("queue-url"); url != "" {
		pubs = append(pubs, awsx.NewSQSPublisher(clients.SQS, url, fifo, group, groupKey, idKey))
	}

	switch len(pubs) {
	case 0:
		return nil, errNoTarget
	case 1:
		return pubs[0], nil
	}

	return housekeeper.NewMultiPublisher(pubs...)
}

// loggedPublisher logs every message sent by the wrapped publisher.
type loggedPublisher struct {
	housekeeper.Publisher

	logger *zap.Logger
}

func (p loggedPublisher) Publish(ctx context.Context, msg housekeeper.Message) error {
	if err := p.Publisher.Publish(ctx, msg); err != nil {
		return err
	}
	p.logger.Info("message sent", zap.String("message_id", msg.ID()))

	return nil
}
