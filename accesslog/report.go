package accesslog

import (
	"errors"
	"time"
)

// Status is the final state of a bucket after a run.
type Status int

const (
	// StatusUnchanged means logging already matched the destination.
	StatusUnchanged Status = iota
	// StatusEnabled means logging was written, or would be on a dry run.
	StatusEnabled
	// StatusMismatch means logging points to another target and was left as is.
	StatusMismatch
	// StatusSkipped means the bucket is excluded.
	StatusSkipped
	// StatusFailed means reading or writing the bucket configuration failed.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusEnabled:
		return "enabled"
	case StatusMismatch:
		return "mismatch"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	}

	return "unknown"
}

// Result is the outcome of one bucket.
type Result struct {
	Bucket string
	Status Status
	// Action is only meaningful when the bucket was read.
	Action Action
	Skip   Skip
	// Current is the logging target read before reconciling.
	Current *Target
	DryRun  bool
	Err     error
}

// Report collects the results of a reconciliation run.
type Report struct {
	StartTime time.Time
	EndTime   time.Time
	Results   []Result
}

func newReport(now time.Time) *Report {
	return &Report{StartTime: now}
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
}

func (r *Report) finish(now time.Time) {
	r.EndTime = now
}

// Total returns the number of buckets listed.
func (r *Report) Total() int {
	return len(r.Results)
}

// Count returns how many buckets ended with the given status.
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}

	return n
}

// Failed returns the results of the buckets that failed.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			failed = append(failed, res)
		}
	}

	return failed
}

// Err joins the errors of every failed bucket. Nil when none failed.
func (r *Report) Err() error {
	errs := []error{}
	for _, res := range r.Failed() {
		errs = append(errs, res.Err)
	}

	return errors.Join(errs...)
}

// Duration returns how long the run took.
func (r *Report) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}
