package aws

import (
	"errors"
	"fmt"
)

var (
	// ErrQueueNotFound is returned when the queue does not exist.
	ErrQueueNotFound = errors.New("queue does not exist")
	// ErrParameterNotFound is returned when the parameter does not exist.
	ErrParameterNotFound = errors.New("parameter not found")
	// ErrEmptyParameter is returned when the parameter has no value.
	ErrEmptyParameter = errors.New("empty parameter value")
)

// BucketError is a failed S3 operation, with the bucket it was issued for.
type BucketError struct {
	// Op is the S3 operation, ex: GetBucketLogging.
	Op string
	// Bucket is empty for account wide operations.
	Bucket string
	Err    error
}

func (e *BucketError) Error() string {
	if e.Bucket == "" {
		return fmt.Sprintf("s3.%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("s3.%s %s: %v", e.Op, e.Bucket, e.Err)
}

func (e *BucketError) Unwrap() error {
	return e.Err
}
