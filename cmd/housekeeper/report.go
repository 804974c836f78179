package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/x4b1/housekeeper/accesslog"
)

// Report output formats.
const (
	outputYAML = "yaml"
	outputJSON = "json"
	outputNone = "none"
)

var errUnknownOutput = errors.New("unknown output format")

type reportOutput struct {
	Destination string         `json:"destination"       yaml:"destination"`
	DryRun      bool           `json:"dry_run"           yaml:"dry_run"`
	Took        string         `json:"took"              yaml:"took"`
	Counts      map[string]int `json:"counts"            yaml:"counts"`
	Buckets     []bucketOutput `json:"buckets,omitempty" yaml:"buckets,omitempty"`
}

type bucketOutput struct {
	Bucket string `json:"bucket"           yaml:"bucket"`
	Status string `json:"status"           yaml:"status"`
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Error  string `json:"error,omitempty"  yaml:"error,omitempty"`
}

func validOutput(format string) error {
	switch format {
	case outputYAML, outputJSON, outputNone:
		return nil
	}

	return fmt.Errorf("%w: %s", errUnknownOutput, format)
}

func newReportOutput(dest string, dryRun bool, r *accesslog.Report) reportOutput {
	out := reportOutput{
		Destination: dest,
		DryRun:      dryRun,
		Took:        r.Duration().String(),
		Counts:      map[string]int{"total": r.Total()},
	}

	for _, s := range []accesslog.Status{
		accesslog.StatusEnabled,
		accesslog.StatusUnchanged,
		accesslog.StatusMismatch,
		accesslog.StatusSkipped,
		accesslog.StatusFailed,
	} {
		out.Counts[s.String()] = r.Count(s)
	}

	for _, res := range r.Results {
		b := bucketOutput{Bucket: res.Bucket, Status: res.Status.String()}
		switch {
		case res.Status == accesslog.StatusSkipped:
			b.Reason = res.Skip.String()
		case res.Status == accesslog.StatusMismatch && res.Current != nil:
			b.Reason = fmt.Sprintf("logs to %s/%s", res.Current.Bucket, res.Current.Prefix)
		}
		if res.Err != nil {
			b.Error = res.Err.Error()
		}
		out.Buckets = append(out.Buckets, b)
	}

	return out
}

func writeReport(w io.Writer, format string, out reportOutput) error {
	switch format {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}

		return enc.Close()
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}

		return nil
	}

	return validOutput(format)
}
