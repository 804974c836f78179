package accesslog

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/x4b1/housekeeper/log"
)

// Option defines the optional parameters for Reconciler.
type Option func(*Reconciler)

// WithTemplatePrefix replaces the default template bucket prefix.
// An empty prefix reconciles template buckets too.
func WithTemplatePrefix(prefix string) Option {
	return func(r *Reconciler) {
		r.filter.TemplatePrefix = prefix
	}
}

// WithDryRun computes every action without writing.
func WithDryRun(dry bool) Option {
	return func(r *Reconciler) {
		r.dryRun = dry
	}
}

// WithLogger replaces the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Reconciler) {
		r.logger = l
	}
}

// WithClock replaces the clock used for report times.
func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) {
		r.now = now
	}
}

// NewReconciler returns a Reconciler for the given storage and destination.
//   - Template prefix: cf-templates-
//   - No dry run.
//   - No-op logger.
func NewReconciler(storage Storage, dest Destination, opts ...Option) *Reconciler {
	r := Reconciler{
		storage: storage,
		dest:    dest,
		filter: Filter{
			Destination:    dest.Bucket,
			TemplatePrefix: DefaultTemplatePrefix,
		},
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&r)
	}

	return &r
}

// Reconciler enables access logging on every bucket of a storage. Buckets are
// processed one at a time, each one read once and written at most once.
type Reconciler struct {
	storage Storage
	dest    Destination
	filter  Filter
	dryRun  bool

	logger *zap.Logger
	now    func() time.Time
}

// Run reconciles every bucket listed by the storage.
// A failure listing the buckets aborts and is returned. Failures on a single
// bucket are recorded in its result and the run goes on, see Report.Err.
func (r *Reconciler) Run(ctx context.Context) (*Report, error) {
	buckets, err := r.storage.Buckets(ctx)
	if err != nil {
		r.logger.Error("listing buckets", log.Err(err)...)
		return nil, fmt.Errorf("listing buckets: %w", err)
	}

	report := newReport(r.now())
	for _, bucket := range buckets {
		res := r.bucket(ctx, bucket)
		r.log(res)
		report.add(res)
	}
	report.finish(r.now())

	r.logger.Info("access logging reconciled",
		zap.String("destination", r.dest.Bucket),
		zap.Int("total", report.Total()),
		zap.Int(StatusEnabled.String(), report.Count(StatusEnabled)),
		zap.Int(StatusUnchanged.String(), report.Count(StatusUnchanged)),
		zap.Int(StatusMismatch.String(), report.Count(StatusMismatch)),
		zap.Int(StatusSkipped.String(), report.Count(StatusSkipped)),
		zap.Int(StatusFailed.String(), report.Count(StatusFailed)),
		zap.Duration("took", report.Duration()),
	)

	return report, nil
}

func (r *Reconciler) bucket(ctx context.Context, bucket string) Result {
	if skip, ok := r.filter.Excluded(bucket); ok {
		return Result{Bucket: bucket, Status: StatusSkipped, Skip: skip}
	}

	current, err := r.storage.Logging(ctx, bucket)
	if err != nil {
		return Result{
			Bucket: bucket,
			Status: StatusFailed,
			Err:    fmt.Errorf("getting logging of %s: %w", bucket, err),
		}
	}

	res := Result{Bucket: bucket, Current: current}
	res.Action = Reconcile(bucket, current, r.dest)
	switch res.Action {
	case ActionNoOp:
		res.Status = StatusUnchanged
	case ActionMismatch:
		res.Status = StatusMismatch
	case ActionEnable:
		res.Status = StatusEnabled
		res.DryRun = r.dryRun
		if r.dryRun {
			break
		}
		if err := r.storage.EnableLogging(ctx, bucket, r.dest.Target(bucket)); err != nil {
			res.Status = StatusFailed
			res.Err = fmt.Errorf("enabling logging of %s: %w", bucket, err)
		}
	}

	return res
}

func (r *Reconciler) log(res Result) {
	fields := []zap.Field{zap.String("bucket", res.Bucket)}

	switch res.Status {
	case StatusSkipped:
		r.logger.Info("skipping "+res.Skip.String(), fields...)
	case StatusUnchanged:
		r.logger.Info("access logging already enabled", fields...)
	case StatusMismatch:
		r.logger.Warn("access logging enabled with another target",
			append(fields,
				zap.String("target_bucket", res.Current.Bucket),
				zap.String("target_prefix", res.Current.Prefix),
			)...)
	case StatusEnabled:
		target := r.dest.Target(res.Bucket)
		r.logger.Info("access logging enabled",
			append(fields,
				zap.String("target_bucket", target.Bucket),
				zap.String("target_prefix", target.Prefix),
				zap.Bool("dry_run", res.DryRun),
			)...)
	case StatusFailed:
		r.logger.Error("reconciling access logging", append(fields, log.Err(res.Err)...)...)
	}
}
