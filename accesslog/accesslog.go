// Package accesslog reconciles the server access logging configuration of
// storage buckets against a single destination bucket.
//
// Buckets with logging disabled are pointed at the destination, using the
// bucket name as key prefix. Buckets already logging somewhere else are
// reported and left untouched.
package accesslog

import "context"

// DefaultTemplatePrefix is the name prefix of CloudFormation template buckets.
const DefaultTemplatePrefix = "cf-templates-"

//go:generate go tool moq -stub -pkg accesslog_test -out storage_mock_test.go . Storage

// Storage is the interface that wraps the bucket operations needed to reconcile.
type Storage interface {
	// Buckets lists every bucket name of the account.
	Buckets(ctx context.Context) ([]string, error)
	// Logging returns the current logging target of the bucket, nil when disabled.
	Logging(ctx context.Context, bucket string) (*Target, error)
	// EnableLogging sets the logging target of the bucket.
	EnableLogging(ctx context.Context, bucket string, t Target) error
}

// Target is where the access log records of a bucket are delivered.
type Target struct {
	Bucket string
	Prefix string
}

// DefaultPrefix returns the bucket name followed by a slash.
func DefaultPrefix(bucket string) string {
	return bucket + "/"
}

// Destination is the desired logging state for every reconciled bucket.
type Destination struct {
	// Bucket receiving the access logs.
	Bucket string
	// Prefix builds the key prefix for a bucket. Nil means DefaultPrefix.
	Prefix func(bucket string) string
}

// Target returns the desired target for the given bucket.
func (d Destination) Target(bucket string) Target {
	prefix := d.Prefix
	if prefix == nil {
		prefix = DefaultPrefix
	}

	return Target{Bucket: d.Bucket, Prefix: prefix(bucket)}
}

// Action is the outcome of comparing the current logging state with the destination.
type Action int

const (
	// ActionNoOp means logging already matches the destination.
	ActionNoOp Action = iota
	// ActionMismatch means logging is enabled with another target. It is reported only.
	ActionMismatch
	// ActionEnable means logging is disabled and has to be written.
	ActionEnable
)

func (a Action) String() string {
	switch a {
	case ActionNoOp:
		return "noop"
	case ActionMismatch:
		return "mismatch"
	case ActionEnable:
		return "enable"
	}

	return "unknown"
}

// Reconcile decides the action for a bucket given its current target.
func Reconcile(bucket string, current *Target, dest Destination) Action {
	if current == nil {
		return ActionEnable
	}
	if *current == dest.Target(bucket) {
		return ActionNoOp
	}

	return ActionMismatch
}
