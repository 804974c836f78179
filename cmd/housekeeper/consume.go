package main

import (
	"context"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/x4b1/housekeeper"
	awsx "github.com/x4b1/housekeeper/aws"
	"github.com/x4b1/housekeeper/log"
	"github.com/x4b1/housekeeper/sample"
)

const consumeName = "consume"

const (
	defaultMaxMessages = 10
	defaultWaitSeconds = 5
)

func consumeCommand(conf *configFile) *cli.Command {
	return &cli.Command{
		Name:  consumeName,
		Usage: "receive the demo messages of a SQS queue and delete them once processed",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "queue-url",
				Aliases:  []string{"q"},
				Usage:    "queue url, name or ARN",
				Sources:  conf.sources(consumeName, "queue-url", queueURLEnv),
				Required: true,
			},
			&cli.IntFlag{
				Name:    "max-messages",
				Usage:   "messages received per request, up to 10",
				Value:   defaultMaxMessages,
				Sources: conf.sources(consumeName, "max-messages"),
			},
			&cli.IntFlag{
				Name:    "wait-seconds",
				Usage:   "long polling wait time",
				Value:   defaultWaitSeconds,
				Sources: conf.sources(consumeName, "wait-seconds"),
			},
			&cli.BoolFlag{
				Name:    "follow",
				Aliases: []string{"f"},
				Usage:   "keep receiving until interrupted",
				Sources: conf.sources(consumeName, "follow"),
			},
			idAttributeFlag(conf, consumeName),
		},
		Action: consumeAction,
	}
}

func consumeAction(ctx context.Context, cmd *cli.Command) error {
	e, err := newEnv(ctx, cmd)
	if err != nil {
		return err
	}
	defer e.logger.Sync() //nolint:errcheck // nothing to do on stderr sync errors

	subscriber := awsx.NewSQSSubscriber(
		e.clients.SQS,
		awsx.WithMaxMessages(int(cmd.Int("max-messages"))),
		awsx.WithMaxWaitSeconds(int(cmd.Int("wait-seconds"))),
		awsx.WithErrorHandler(log.NewHandler(e.logger)),
		awsx.WithMessageIDKey(cmd.String("id-attribute")),
	)
	sub := housekeeper.NewSubscription(cmd.String("queue-url"), sample.Handler(e.logger))

	if cmd.Bool("follow") {
		subscriber.Register(sub)
		if err := subscriber.Listen(ctx); err != nil {
			e.logger.Error("receiving messages", log.Err(err)...)
			return writeResponse(cmd.Root().Writer, sample.ConsumerResponse(0, err))
		}

		return nil
	}

	processed, err := subscriber.Receive(ctx, sub)
	if err != nil {
		e.logger.Error("receiving messages", log.Err(err)...)
	} else {
		e.logger.Info("messages processed", zap.Int("processed", processed))
	}

	return writeResponse(cmd.Root().Writer, sample.ConsumerResponse(processed, err))
}
