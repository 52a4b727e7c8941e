// Package metrics provides standardised metric emission helpers.
package metrics

import (
	"time"

	"github.com/inkpress/erp-gateway/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultWarning = "warning"
)

// JobMetric captures details about a tracker job lifecycle event.
type JobMetric struct {
	Kind       string
	Target     string
	Transition string
	Result     string
	Duration   time.Duration
}

// EmitJobLifecycle emits standardised job lifecycle metrics.
func EmitJobLifecycle(sink statsd.Sink, in JobMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"kind":       in.Kind,
		"target":     in.Target,
		"transition": in.Transition,
		"result":     in.Result,
	}

	sink.Count("tracker.transition", 1, tags)

	if in.Duration > 0 {
		sink.Timing("tracker.duration", in.Duration, CloneTags(tags))
	}
}

// CloneTags creates a shallow copy of a tag map.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
