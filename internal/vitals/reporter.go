// Package vitals observes browser performance signals (largest contentful
// paint, cumulative layout shift, first input delay, page load) and forwards
// rated metrics to an optional consumer callback and an optional analytics
// beacon. The whole package is non-critical: registration and observation
// failures are logged and swallowed, never surfaced to visitors.
package vitals

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	siteerr "github.com/Dinakaran-Yogidasan/web-portfolio/internal/errors"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/logging"
)

// Metric names, matching the observed signal kinds.
const (
	MetricLargestPaint = "largest-paint"
	MetricLayoutShift  = "layout-shift"
	MetricInputDelay   = "input-delay"
	MetricPageLoad     = "page-load"
)

// Rating buckets a metric value against its fixed thresholds.
type Rating string

const (
	RatingGood             Rating = "good"
	RatingNeedsImprovement Rating = "needs-improvement"
	RatingPoor             Rating = "poor"
)

// Metric is one observed performance measurement.
type Metric struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Rating Rating  `json:"rating"`
}

// Rate derives the qualitative rating for a metric value.
//
// largest-paint: good <=2500, needs-improvement <=4000, else poor.
// layout-shift:  good <=0.1, needs-improvement <=0.25, else poor.
// input-delay:   good <=100, needs-improvement <=300, else poor.
// page-load and unknown names are always good.
func Rate(name string, value float64) Rating {
	switch name {
	case MetricLargestPaint:
		return threshold(value, 2500, 4000)
	case MetricLayoutShift:
		return threshold(value, 0.1, 0.25)
	case MetricInputDelay:
		return threshold(value, 100, 300)
	default:
		return RatingGood
	}
}

func threshold(value, good, acceptable float64) Rating {
	switch {
	case value <= good:
		return RatingGood
	case value <= acceptable:
		return RatingNeedsImprovement
	default:
		return RatingPoor
	}
}

// Entry is a raw observed performance entry.
type Entry struct {
	// Value is the measured quantity for the entry's kind.
	Value float64
	// HadRecentInput flags layout shifts caused by user input, which are
	// excluded from accumulation.
	HadRecentInput bool
	// SessionFinal marks the last report of the session (unload or
	// backgrounding), which gates the analytics beacon.
	SessionFinal bool
}

// Source is the subscription surface over the platform's performance
// observers. Observe registers a listener for one signal kind and returns
// its stop function; registration may fail independently per kind.
type Source interface {
	Observe(kind string, fn func(Entry)) (stop func(), err error)
}

// Beacon forwards a session-final metric to an analytics collector.
type Beacon interface {
	SendBeacon(metric Metric, trackingID string) error
}

// Reporter subscribes to performance signals and forwards computed metrics.
type Reporter struct {
	source     Source
	beacon     Beacon
	trackingID string
	logger     logging.Logger

	mu       sync.Mutex
	clsTotal float64
	stops    []func()
}

// NewReporter creates a reporter over the given source. beacon may be nil;
// trackingID empty disables the beacon entirely.
func NewReporter(source Source, beacon Beacon, trackingID string, logger logging.Logger) *Reporter {
	return &Reporter{
		source:     source,
		beacon:     beacon,
		trackingID: trackingID,
		logger:     logger.WithComponent("vitals"),
	}
}

// Report registers the observers. Each registration is isolated in its own
// failure boundary: one observer failing to register must not prevent the
// others. The optional callback receives every computed metric.
func (r *Reporter) Report(ctx context.Context, callback func(Metric)) {
	r.observe(ctx, MetricLargestPaint, func(e Entry) {
		r.emit(ctx, Metric{Name: MetricLargestPaint, Value: e.Value, Rating: Rate(MetricLargestPaint, e.Value)}, false, callback)
	})

	r.observe(ctx, MetricLayoutShift, func(e Entry) {
		// Shifts caused by recent user input do not count.
		if e.HadRecentInput {
			return
		}
		r.mu.Lock()
		r.clsTotal += e.Value
		total := r.clsTotal
		r.mu.Unlock()
		r.emit(ctx, Metric{Name: MetricLayoutShift, Value: total, Rating: Rate(MetricLayoutShift, total)}, e.SessionFinal, callback)
	})

	r.observe(ctx, MetricInputDelay, func(e Entry) {
		r.emit(ctx, Metric{Name: MetricInputDelay, Value: e.Value, Rating: Rate(MetricInputDelay, e.Value)}, false, callback)
	})

	r.observe(ctx, MetricPageLoad, func(e Entry) {
		r.emit(ctx, Metric{Name: MetricPageLoad, Value: e.Value, Rating: RatingGood}, false, callback)
	})
}

func (r *Reporter) observe(ctx context.Context, kind string, fn func(Entry)) {
	stop, err := r.source.Observe(kind, fn)
	if err != nil {
		err = siteerr.Instrumentation("observe "+kind, err)
		r.logger.Debug(ctx, "performance observer unavailable", "kind", kind, "error", err.Error())
		return
	}
	r.mu.Lock()
	r.stops = append(r.stops, stop)
	r.mu.Unlock()
}

// emit forwards the metric to the callback and, for session-final
// layout-shift signals with a configured tracking id, to the beacon.
func (r *Reporter) emit(ctx context.Context, m Metric, sessionFinal bool, callback func(Metric)) {
	if callback != nil {
		callback(m)
	}

	if m.Name != MetricLayoutShift || !sessionFinal {
		return
	}
	if r.beacon == nil || r.trackingID == "" {
		return
	}
	if err := r.beacon.SendBeacon(m, r.trackingID); err != nil {
		r.logger.Debug(ctx, "analytics beacon failed", "error", err.Error())
	}
}

// Stop unregisters all observers.
func (r *Reporter) Stop() {
	r.mu.Lock()
	stops := r.stops
	r.stops = nil
	r.mu.Unlock()
	for _, stop := range stops {
		stop()
	}
}

// CollectBody builds the analytics collect payload for a metric, the same
// shape the original site posts to the collector.
func CollectBody(m Metric, trackingID string) string {
	v := url.Values{}
	v.Set("t", "event")
	v.Set("ec", "web_vitals")
	v.Set("ea", m.Name)
	v.Set("ev", fmt.Sprintf("%d", int64(m.Value+0.5)))
	v.Set("cx", string(m.Rating))
	v.Set("tid", trackingID)
	return v.Encode()
}
