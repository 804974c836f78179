package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/x4b1/housekeeper/accesslog"
	awsx "github.com/x4b1/housekeeper/aws"
)

const accessLoggingName = "access-logging"

var errBucketsFailed = errors.New("access logging failed for some buckets")

func accessLoggingCommand(conf *configFile) *cli.Command {
	return &cli.Command{
		Name:  accessLoggingName,
		Usage: "enable S3 server access logging on every bucket of the account",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "destination",
				Aliases: []string{"d"},
				Usage:   "bucket receiving the access logs, read from SSM when not set",
				Sources: conf.sources(accessLoggingName, "destination", destinationEnv),
			},
			&cli.StringFlag{
				Name:    "destination-parameter",
				Usage:   "SSM parameter holding the destination bucket",
				Value:   awsx.DefaultDestinationParameter,
				Sources: conf.sources(accessLoggingName, "destination-parameter", parameterEnv),
			},
			&cli.StringFlag{
				Name:    "template-prefix",
				Usage:   "prefix of the buckets never reconciled, empty reconciles all of them",
				Value:   accesslog.DefaultTemplatePrefix,
				Sources: conf.sources(accessLoggingName, "template-prefix"),
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Usage:   "log the changes without applying them",
				Sources: conf.sources(accessLoggingName, "dry-run"),
			},
			&cli.StringFlag{
				Name:      "output",
				Aliases:   []string{"o"},
				Usage:     "report format written to stdout: yaml, json or none",
				Value:     outputYAML,
				Sources:   conf.sources(accessLoggingName, "output"),
				Validator: validOutput,
			},
		},
		Action: accessLoggingAction,
	}
}

func accessLoggingAction(ctx context.Context, cmd *cli.Command) error {
	e, err := newEnv(ctx, cmd)
	if err != nil {
		return err
	}
	defer e.logger.Sync() //nolint:errcheck // nothing to do on stderr sync errors

	dest, err := destinationBucket(
		ctx,
		cmd.String("destination"),
		cmd.String("destination-parameter"),
		awsx.NewParameterStore(e.clients.SSM),
	)
	if err != nil {
		return err
	}
	e.logger.Debug("destination resolved", zap.String("destination", dest))

	report, err := accesslog.NewReconciler(
		awsx.NewBuckets(e.clients.S3),
		accesslog.Destination{Bucket: dest},
		accesslog.WithTemplatePrefix(cmd.String("template-prefix")),
		accesslog.WithDryRun(cmd.Bool("dry-run")),
		accesslog.WithLogger(e.logger),
	).Run(ctx)
	if err != nil {
		return err
	}

	out := newReportOutput(dest, cmd.Bool("dry-run"), report)
	if err := writeReport(cmd.Root().Writer, cmd.String("output"), out); err != nil {
		return err
	}

	if err := report.Err(); err != nil {
		return fmt.Errorf("%w: %d of %d: %w", errBucketsFailed, report.Count(accesslog.StatusFailed), report.Total(), err)
	}

	return nil
}

// parameters reads a named configuration value.
type parameters interface {
	String(ctx context.Context, name string) (string, error)
}

// destinationBucket returns the explicit bucket when given, otherwise the
// value of the parameter.
func destinationBucket(ctx context.Context, bucket, parameter string, params parameters) (string, error) {
	if bucket != "" {
		return bucket, nil
	}

	dest, err := params.String(ctx, parameter)
	if err != nil {
		return "", fmt.Errorf("resolving destination bucket: %w", err)
	}

	return dest, nil
}
