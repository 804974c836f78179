package accesslog

import "strings"

// Skip is the reason a bucket is excluded from reconciliation.
type Skip int

const (
	// SkipNone means the bucket is reconciled.
	SkipNone Skip = iota
	// SkipDestination is the destination bucket itself.
	SkipDestination
	// SkipTemplate is a reserved template bucket.
	SkipTemplate
)

func (s Skip) String() string {
	switch s {
	case SkipNone:
		return ""
	case SkipDestination:
		return "destination bucket"
	case SkipTemplate:
		return "template bucket"
	}

	return "unknown"
}

// Filter excludes the destination bucket and the buckets named with the template prefix.
type Filter struct {
	Destination    string
	TemplatePrefix string
}

// Excluded reports whether the bucket must not be reconciled, and why.
// An empty template prefix matches nothing.
func (f Filter) Excluded(bucket string) (Skip, bool) {
	if bucket == f.Destination {
		return SkipDestination, true
	}
	if f.TemplatePrefix != "" && strings.HasPrefix(bucket, f.TemplatePrefix) {
		return SkipTemplate, true
	}

	return SkipNone, false
}
