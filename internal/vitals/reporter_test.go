package vitals

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/logging"
)

func TestRate(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  Rating
	}{
		{MetricLargestPaint, 2500, RatingGood},
		{MetricLargestPaint, 2501, RatingNeedsImprovement},
		{MetricLargestPaint, 4000, RatingNeedsImprovement},
		{MetricLargestPaint, 4001, RatingPoor},
		{MetricLayoutShift, 0.1, RatingGood},
		{MetricLayoutShift, 0.2, RatingNeedsImprovement},
		{MetricLayoutShift, 0.3, RatingPoor},
		{MetricInputDelay, 100, RatingGood},
		{MetricInputDelay, 250, RatingNeedsImprovement},
		{MetricInputDelay, 301, RatingPoor},
		{MetricPageLoad, 99999, RatingGood},
		{"unknown", 1e9, RatingGood},
	}

	for _, tt := range tests {
		got := Rate(tt.name, tt.value)
		assert.Equalf(t, tt.want, got, "%s=%v", tt.name, tt.value)
	}
}

// fakeSource records listeners per kind and lets tests push entries.
type fakeSource struct {
	mu        sync.Mutex
	listeners map[string]func(Entry)
	failKinds map[string]bool
	stops     map[string]int
}

func newFakeSource(failKinds ...string) *fakeSource {
	f := &fakeSource{
		listeners: make(map[string]func(Entry)),
		failKinds: make(map[string]bool),
		stops:     make(map[string]int),
	}
	for _, k := range failKinds {
		f.failKinds[k] = true
	}
	return f
}

func (f *fakeSource) Observe(kind string, fn func(Entry)) (func(), error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failKinds[kind] {
		return nil, errors.New("observer unsupported")
	}
	f.listeners[kind] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.stops[kind]++
	}, nil
}

func (f *fakeSource) push(kind string, e Entry) {
	f.mu.Lock()
	fn := f.listeners[kind]
	f.mu.Unlock()
	if fn != nil {
		fn(e)
	}
}

type fakeBeacon struct {
	mu      sync.Mutex
	metrics []Metric
	ids     []string
	err     error
}

func (f *fakeBeacon) SendBeacon(m Metric, trackingID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.metrics = append(f.metrics, m)
	f.ids = append(f.ids, trackingID)
	return f.err
}

func testLogger() logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{Level: logging.LevelError})
}

func TestReportForwardsRatedMetrics(t *testing.T) {
	source := newFakeSource()
	r := NewReporter(source, nil, "", testLogger())

	var seen []Metric
	r.Report(context.Background(), func(m Metric) { seen = append(seen, m) })

	source.push(MetricLargestPaint, Entry{Value: 3000})
	source.push(MetricInputDelay, Entry{Value: 50})
	source.push(MetricPageLoad, Entry{Value: 1234})

	require.Len(t, seen, 3)
	assert.Equal(t, Metric{Name: MetricLargestPaint, Value: 3000, Rating: RatingNeedsImprovement}, seen[0])
	assert.Equal(t, Metric{Name: MetricInputDelay, Value: 50, Rating: RatingGood}, seen[1])
	assert.Equal(t, Metric{Name: MetricPageLoad, Value: 1234, Rating: RatingGood}, seen[2])
}

func TestLayoutShiftAccumulatesSkippingRecentInput(t *testing.T) {
	source := newFakeSource()
	r := NewReporter(source, nil, "", testLogger())

	var seen []Metric
	r.Report(context.Background(), func(m Metric) { seen = append(seen, m) })

	source.push(MetricLayoutShift, Entry{Value: 0.05})
	source.push(MetricLayoutShift, Entry{Value: 0.5, HadRecentInput: true})
	source.push(MetricLayoutShift, Entry{Value: 0.08})

	require.Len(t, seen, 2)
	assert.InDelta(t, 0.05, seen[0].Value, 1e-9)
	assert.InDelta(t, 0.13, seen[1].Value, 1e-9)
	assert.Equal(t, RatingNeedsImprovement, seen[1].Rating)
}

func TestOneObserverFailingDoesNotBlockOthers(t *testing.T) {
	source := newFakeSource(MetricLargestPaint)
	r := NewReporter(source, nil, "", testLogger())

	var seen []Metric
	r.Report(context.Background(), func(m Metric) { seen = append(seen, m) })

	source.push(MetricLargestPaint, Entry{Value: 3000}) // no listener registered
	source.push(MetricInputDelay, Entry{Value: 50})

	require.Len(t, seen, 1)
	assert.Equal(t, MetricInputDelay, seen[0].Name)
}

func TestBeaconOnlyForSessionFinalLayoutShiftWithTrackingID(t *testing.T) {
	t.Run("fires for session-final layout shift", func(t *testing.T) {
		source := newFakeSource()
		beacon := &fakeBeacon{}
		r := NewReporter(source, beacon, "UA-123", testLogger())
		r.Report(context.Background(), nil)

		source.push(MetricLayoutShift, Entry{Value: 0.05})
		source.push(MetricLayoutShift, Entry{Value: 0.02, SessionFinal: true})

		require.Len(t, beacon.metrics, 1)
		assert.Equal(t, MetricLayoutShift, beacon.metrics[0].Name)
		assert.InDelta(t, 0.07, beacon.metrics[0].Value, 1e-9)
		assert.Equal(t, "UA-123", beacon.ids[0])
	})

	t.Run("silent without tracking id", func(t *testing.T) {
		source := newFakeSource()
		beacon := &fakeBeacon{}
		r := NewReporter(source, beacon, "", testLogger())
		r.Report(context.Background(), nil)

		source.push(MetricLayoutShift, Entry{Value: 0.02, SessionFinal: true})
		assert.Empty(t, beacon.metrics)
	})

	t.Run("never for other metrics", func(t *testing.T) {
		source := newFakeSource()
		beacon := &fakeBeacon{}
		r := NewReporter(source, beacon, "UA-123", testLogger())
		r.Report(context.Background(), nil)

		source.push(MetricLargestPaint, Entry{Value: 5000, SessionFinal: true})
		assert.Empty(t, beacon.metrics)
	})
}

func TestStopUnregistersObservers(t *testing.T) {
	source := newFakeSource()
	r := NewReporter(source, nil, "", testLogger())
	r.Report(context.Background(), nil)

	r.Stop()

	source.mu.Lock()
	defer source.mu.Unlock()
	assert.Len(t, source.stops, 4)
	for kind, n := range source.stops {
		assert.Equalf(t, 1, n, "stop count for %s", kind)
	}
}

func TestCollectBody(t *testing.T) {
	body := CollectBody(Metric{Name: MetricLayoutShift, Value: 0.27, Rating: RatingPoor}, "UA-123")

	values, err := url.ParseQuery(body)
	require.NoError(t, err)
	assert.Equal(t, "event", values.Get("t"))
	assert.Equal(t, "web_vitals", values.Get("ec"))
	assert.Equal(t, MetricLayoutShift, values.Get("ea"))
	assert.Equal(t, "0", values.Get("ev")) // rounded to nearest integer
	assert.Equal(t, "poor", values.Get("cx"))
	assert.Equal(t, "UA-123", values.Get("tid"))
}
