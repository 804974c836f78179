package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	awsx "github.com/x4b1/housekeeper/aws"
	"github.com/x4b1/housekeeper/log"
	"github.com/x4b1/housekeeper/sample"
)

func newApp(stdout, stderr io.Writer) *cli.Command {
	conf := &configFile{}

	return &cli.Command{
		Name:      "housekeeper",
		Usage:     "AWS account housekeeping tasks",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     globalFlags(conf),
		Commands: []*cli.Command{
			accessLoggingCommand(conf),
			produceCommand(conf),
			consumeCommand(conf),
		},
	}
}

// env holds what every command action needs: the logger and the AWS clients.
type env struct {
	logger  *zap.Logger
	clients awsx.Clients
}

func newEnv(ctx context.Context, cmd *cli.Command) (*env, error) {
	logger, err := log.New(cmd.String("log-level"), cmd.String("log-format"))
	if err != nil {
		return nil, err
	}

	cfg, err := awsx.LoadConfig(ctx,
		awsx.WithRegion(cmd.String("region")),
		awsx.WithProfile(cmd.String("profile")),
		awsx.WithEndpoint(cmd.String("endpoint")),
	)
	if err != nil {
		return nil, err
	}

	return &env{
		logger:  logger,
		clients: awsx.NewClients(cfg),
	}, nil
}

var errResponse = errors.New("request failed")

// writeResponse prints the response and returns an error for non 200 ones.
func writeResponse(w io.Writer, res sample.Response) error {
	if err := json.NewEncoder(w).Encode(res); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	if !res.OK() {
		return fmt.Errorf("%w: status %d", errResponse, res.StatusCode)
	}

	return nil
}
