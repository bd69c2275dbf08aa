package scroll

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeViewport struct {
	offset         float64
	contentHeight  float64
	viewportHeight float64
	reducedMotion  bool

	scrolledTo []float64
	smooth     []bool
}

func (f *fakeViewport) Offset() float64            { return f.offset }
func (f *fakeViewport) ContentHeight() float64     { return f.contentHeight }
func (f *fakeViewport) ViewportHeight() float64    { return f.viewportHeight }
func (f *fakeViewport) PrefersReducedMotion() bool { return f.reducedMotion }
func (f *fakeViewport) ScrollTo(offset float64, smooth bool) {
	f.scrolledTo = append(f.scrolledTo, offset)
	f.smooth = append(f.smooth, smooth)
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name           string
		offset         float64
		contentHeight  float64
		viewportHeight float64
		want           State
	}{
		{"at top", 0, 2000, 800, State{Visible: false, Progress: 0}},
		{"at threshold", 200, 2000, 800, State{Visible: false, Progress: 200.0 / 1200.0}},
		{"just past threshold", 201, 2000, 800, State{Visible: true, Progress: 201.0 / 1200.0}},
		{"at bottom", 1200, 2000, 800, State{Visible: true, Progress: 1}},
		{"overscroll clamps to 1", 1500, 2000, 800, State{Visible: true, Progress: 1}},
		{"negative offset clamps to 0", -50, 2000, 800, State{Visible: false, Progress: 0}},
		{"no overflow", 0, 800, 800, State{Visible: false, Progress: 0}},
		{"content shorter than viewport", 300, 500, 800, State{Visible: true, Progress: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.offset, tt.contentHeight, tt.viewportHeight)
			assert.Equal(t, tt.want.Visible, got.Visible)
			assert.InDelta(t, tt.want.Progress, got.Progress, 1e-9)
		})
	}
}

func TestComputeProgressAlwaysInRange(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("progress stays within [0,1]", prop.ForAll(
		func(offset, contentHeight, viewportHeight float64) bool {
			state := Compute(offset, contentHeight, viewportHeight)
			return state.Progress >= 0 && state.Progress <= 1
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(0, 1e6),
		gen.Float64Range(0, 1e6),
	))

	properties.Property("visibility tracks the threshold exactly", prop.ForAll(
		func(offset float64) bool {
			return Compute(offset, 5000, 800).Visible == (offset > VisibleThreshold)
		},
		gen.Float64Range(-1000, 5000),
	))

	properties.TestingRun(t)
}

func TestStartComputesInitialState(t *testing.T) {
	vp := &fakeViewport{offset: 600, contentHeight: 2000, viewportHeight: 800}
	tracker := NewTracker(vp)

	state := tracker.Start()
	assert.True(t, state.Visible)
	assert.InDelta(t, 0.5, state.Progress, 1e-9)
	assert.Equal(t, state, tracker.State())
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	vp := &fakeViewport{contentHeight: 2000, viewportHeight: 800}
	tracker := NewTracker(vp)

	var seen []State
	unsubscribe := tracker.Subscribe(func(s State) { seen = append(seen, s) })

	vp.offset = 300
	tracker.Recompute()
	require.Len(t, seen, 1)
	assert.True(t, seen[0].Visible)

	unsubscribe()
	vp.offset = 600
	tracker.Recompute()
	assert.Len(t, seen, 1)
}

func TestScrollToTopRespectsReducedMotion(t *testing.T) {
	vp := &fakeViewport{reducedMotion: false}
	tracker := NewTracker(vp)
	tracker.ScrollToTop()

	require.Len(t, vp.scrolledTo, 1)
	assert.Equal(t, 0.0, vp.scrolledTo[0])
	assert.True(t, vp.smooth[0])

	vp.reducedMotion = true
	tracker.ScrollToTop()
	require.Len(t, vp.smooth, 2)
	assert.False(t, vp.smooth[1])
}

func TestStopDropsListeners(t *testing.T) {
	vp := &fakeViewport{contentHeight: 2000, viewportHeight: 800}
	tracker := NewTracker(vp)

	calls := 0
	tracker.Subscribe(func(State) { calls++ })
	tracker.Stop()

	tracker.Recompute()
	assert.Zero(t, calls)
}
