package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/x4b1/housekeeper/accesslog"
)

var _ accesslog.Storage = &Buckets{}

// NewBuckets returns the S3 storage for the access logging reconciler.
func NewBuckets(cli S3Client) *Buckets {
	return &Buckets{
		cli:     cli,
		regions: map[string]string{},
	}
}

// Buckets reads and writes the server access logging configuration of the S3
// buckets of an account. Requests for a bucket are sent to the region it was
// listed in, so a single client covers every region.
//
// It is not safe for concurrent use.
type Buckets struct {
	cli S3Client

	// bucket name to region, filled while listing.
	regions map[string]string
}

// Buckets lists every bucket name, following continuation tokens.
func (b *Buckets) Buckets(ctx context.Context) ([]string, error) {
	var names []string

	in := &s3.ListBucketsInput{}
	for {
		out, err := b.cli.ListBuckets(ctx, in)
		if err != nil {
			return nil, &BucketError{Op: "ListBuckets", Err: err}
		}

		for _, bucket := range out.Buckets {
			name := aws.ToString(bucket.Name)
			if region := aws.ToString(bucket.BucketRegion); region != "" {
				b.regions[name] = region
			}
			names = append(names, name)
		}

		if aws.ToString(out.ContinuationToken) == "" {
			return names, nil
		}
		in = &s3.ListBucketsInput{ContinuationToken: out.ContinuationToken}
	}
}

// Logging returns the bucket logging target, nil if logging is disabled.
func (b *Buckets) Logging(ctx context.Context, bucket string) (*accesslog.Target, error) {
	out, err := b.cli.GetBucketLogging(
		ctx,
		&s3.GetBucketLoggingInput{Bucket: aws.String(bucket)},
		b.region(bucket)...,
	)
	if err != nil {
		return nil, &BucketError{Op: "GetBucketLogging", Bucket: bucket, Err: err}
	}

	if out.LoggingEnabled == nil {
		return nil, nil
	}

	return &accesslog.Target{
		Bucket: aws.ToString(out.LoggingEnabled.TargetBucket),
		Prefix: aws.ToString(out.LoggingEnabled.TargetPrefix),
	}, nil
}

// EnableLogging sets the logging target of the bucket.
func (b *Buckets) EnableLogging(ctx context.Context, bucket string, t accesslog.Target) error {
	_, err := b.cli.PutBucketLogging(
		ctx,
		&s3.PutBucketLoggingInput{
			Bucket: aws.String(bucket),
			BucketLoggingStatus: &types.BucketLoggingStatus{
				LoggingEnabled: &types.LoggingEnabled{
					TargetBucket: aws.String(t.Bucket),
					TargetPrefix: aws.String(t.Prefix),
				},
			},
		},
		b.region(bucket)...,
	)
	if err != nil {
		return &BucketError{Op: "PutBucketLogging", Bucket: bucket, Err: err}
	}

	return nil
}

func (b *Buckets) region(bucket string) []func(*s3.Options) {
	region, ok := b.regions[bucket]
	if !ok {
		return nil
	}

	return []func(*s3.Options){
		func(o *s3.Options) { o.Region = region },
	}
}
