// Package aws provides the AWS clients used by the housekeeping tasks. It defines
// interfaces for the subset of S3, SQS, SNS and SSM operations required by the
// access logging reconciler and the demo producer and consumer, enabling easier
// testing and mocking of AWS services. Clients are always built explicitly and
// handed to the components that use them.
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// MessageIDKey defines the attribute key where the message unique identifier is sent.
const MessageIDKey = "message_id"

var awsStringDataType = aws.String("String") //nolint: gochecknoglobals // aws constant

//go:generate go tool moq -pkg aws_test -stub -out aws_mock_test.go . S3Client SNSClient SQSClient SSMClient
//go:generate go tool moq -pkg aws_test -stub -out housekeeper_mock_test.go .. ErrorHandler

// S3Client defines the AWS S3 methods used by Buckets. This is used for testing purposes.
type S3Client interface {
	ListBuckets(
		ctx context.Context,
		params *s3.ListBucketsInput,
		optFns ...func(*s3.Options),
	) (*s3.ListBucketsOutput, error)
	GetBucketLogging(
		ctx context.Context,
		params *s3.GetBucketLoggingInput,
		optFns ...func(*s3.Options),
	) (*s3.GetBucketLoggingOutput, error)
	PutBucketLogging(
		ctx context.Context,
		params *s3.PutBucketLoggingInput,
		optFns ...func(*s3.Options),
	) (*s3.PutBucketLoggingOutput, error)
}

// SNSClient defines the AWS SNS methods used by the Publisher. This is used for testing purposes.
type SNSClient interface {
	Publish(
		ctx context.Context,
		params *sns.PublishInput,
		optFns ...func(*sns.Options),
	) (*sns.PublishOutput, error)
}

// SQSClient defines the AWS SQS methods used by the Publisher and Subscriber. This is used for testing purposes.
type SQSClient interface {
	DeleteMessage(
		ctx context.Context,
		params *sqs.DeleteMessageInput,
		optFns ...func(*sqs.Options),
	) (*sqs.DeleteMessageOutput, error)
	ReceiveMessage(
		ctx context.Context,
		params *sqs.ReceiveMessageInput,
		optFns ...func(*sqs.Options),
	) (*sqs.ReceiveMessageOutput, error)
	SendMessage(
		ctx context.Context,
		params *sqs.SendMessageInput,
		optFns ...func(*sqs.Options),
	) (*sqs.SendMessageOutput, error)
	GetQueueUrl(
		ctx context.Context,
		params *sqs.GetQueueUrlInput,
		optFns ...func(*sqs.Options),
	) (*sqs.GetQueueUrlOutput, error)
}

// SSMClient defines the AWS SSM methods used by ParameterStore. This is used for testing purposes.
type SSMClient interface {
	GetParameter(
		ctx context.Context,
		params *ssm.GetParameterInput,
		optFns ...func(*ssm.Options),
	) (*ssm.GetParameterOutput, error)
}

// configOptions holds optional overrides for AWS config loading.
type configOptions struct {
	profile  string
	region   string
	endpoint string
}

// ConfigOption customizes how AWS config is loaded.
// Without options the shell environment and shared config chain is used
// (AWS_PROFILE, AWS_REGION, ~/.aws/config, IMDS, etc.).
type ConfigOption func(*configOptions)

// WithProfile sets the shared config profile.
func WithProfile(profile string) ConfigOption {
	return func(o *configOptions) { o.profile = profile }
}

// WithRegion sets the region override.
func WithRegion(region string) ConfigOption {
	return func(o *configOptions) { o.region = region }
}

// WithEndpoint sets a base endpoint for every service, ex. a localstack url.
func WithEndpoint(url string) ConfigOption {
	return func(o *configOptions) { o.endpoint = url }
}

// Config is the loaded AWS configuration.
type Config struct {
	aws.Config

	// custom endpoint, S3 needs path style addressing with it.
	endpoint string
}

// LoadConfig loads the AWS SDK config applying the given overrides.
func LoadConfig(ctx context.Context, opts ...ConfigOption) (Config, error) {
	var o configOptions
	for _, opt := range opts {
		opt(&o)
	}

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.endpoint != "" {
		loadOpts = append(loadOpts, config.WithBaseEndpoint(o.endpoint))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return Config{}, fmt.Errorf("loading aws config: %w", err)
	}

	return Config{Config: cfg, endpoint: o.endpoint}, nil
}

// NewConfig wraps an already loaded SDK config.
func NewConfig(cfg aws.Config) Config {
	return Config{Config: cfg, endpoint: aws.ToString(cfg.BaseEndpoint)}
}

// Clients groups the service clients built from one config.
type Clients struct {
	S3  *s3.Client
	SQS *sqs.Client
	SNS *sns.Client
	SSM *ssm.Client
}

// NewClients builds every service client from the given config.
func NewClients(cfg Config) Clients {
	return Clients{
		S3: s3.NewFromConfig(cfg.Config, func(o *s3.Options) {
			o.UsePathStyle = cfg.endpoint != ""
		}),
		SQS: sqs.NewFromConfig(cfg.Config),
		SNS: sns.NewFromConfig(cfg.Config),
		SSM: ssm.NewFromConfig(cfg.Config),
	}
}
