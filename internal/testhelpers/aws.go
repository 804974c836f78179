// Package testhelpers starts the containers used by the integration tests.
package testhelpers

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/localstack"

	awsx "github.com/x4b1/housekeeper/aws"
)

const (
	localStackImage = "localstack/localstack:3.0.2"
	// Region of the localstack clients.
	Region = "eu-west-1"
)

type LocalStackContainer struct {
	Config awsx.Config

	*localstack.LocalStackContainer
}

// CreateLocalStackContainer starts localstack with the S3, SQS, SNS and SSM services.
func CreateLocalStackContainer(ctx context.Context) (*LocalStackContainer, error) {
	lsContainer, err := localstack.Run(ctx,
		localStackImage,
		testcontainers.WithEnv(map[string]string{"SERVICES": "s3,sqs,sns,ssm"}),
	)
	if err != nil {
		return nil, err
	}

	host, err := lsContainer.Host(ctx)
	if err != nil {
		return nil, err
	}

	port, err := lsContainer.MappedPort(ctx, nat.Port("4566/tcp"))
	if err != nil {
		return nil, err
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(Region),
		config.WithBaseEndpoint(fmt.Sprintf("http://%s:%s", host, port.Port())),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("test", "test", "")),
	)
	if err != nil {
		return nil, err
	}

	return &LocalStackContainer{
		awsx.NewConfig(awsCfg),
		lsContainer,
	}, nil
}
