// Package scroll derives the back-to-top affordance state from the page
// scroll position: a visibility flag once the page has scrolled past a fixed
// threshold, and a 0-1 progress ratio for the progress ring.
package scroll

import "sync"

// VisibleThreshold is the scroll offset beyond which the affordance shows.
const VisibleThreshold = 200.0

// State is the derived scroll state. Progress is clamped to [0,1] and is 0
// when the document has no scrollable overflow.
type State struct {
	Visible  bool
	Progress float64
}

// Viewport abstracts the scrollable surface.
type Viewport interface {
	// Offset is the current scroll position from the top.
	Offset() float64
	// ContentHeight is the full scrollable height of the document.
	ContentHeight() float64
	// ViewportHeight is the visible height.
	ViewportHeight() float64
	// PrefersReducedMotion reports the platform accessibility signal.
	PrefersReducedMotion() bool
	// ScrollTo moves to the given offset, animated unless smooth is false.
	ScrollTo(offset float64, smooth bool)
}

// Compute derives State from raw measurements. Pure, so the clamping
// behavior is testable in isolation.
func Compute(offset, contentHeight, viewportHeight float64) State {
	docHeight := contentHeight - viewportHeight
	progress := 0.0
	if docHeight > 0 {
		progress = offset / docHeight
		if progress < 0 {
			progress = 0
		}
		if progress > 1 {
			progress = 1
		}
	}
	return State{
		Visible:  offset > VisibleThreshold,
		Progress: progress,
	}
}

// Tracker recomputes State on every viewport event and notifies
// subscribers. It computes an initial value immediately on Start so the UI
// is consistent before any scroll occurs.
type Tracker struct {
	viewport Viewport

	mu      sync.Mutex
	state   State
	started bool
	nextID  int
	subs    map[int]func(State)
}

// NewTracker creates a tracker over the given viewport.
func NewTracker(viewport Viewport) *Tracker {
	return &Tracker{
		viewport: viewport,
		subs:     make(map[int]func(State)),
	}
}

// Start computes the initial state. Scroll and resize events should be wired
// to Recompute by the caller.
func (t *Tracker) Start() State {
	t.mu.Lock()
	t.started = true
	t.mu.Unlock()
	return t.Recompute()
}

// Recompute reads the viewport and publishes the derived state.
func (t *Tracker) Recompute() State {
	state := Compute(t.viewport.Offset(), t.viewport.ContentHeight(), t.viewport.ViewportHeight())

	t.mu.Lock()
	t.state = state
	subs := make([]func(State), 0, len(t.subs))
	for _, fn := range t.subs {
		subs = append(subs, fn)
	}
	t.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
	return state
}

// State returns the last computed state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Subscribe registers fn for state updates and returns its unsubscribe
// function. All listeners are dropped on Stop.
func (t *Tracker) Subscribe(fn func(State)) (unsubscribe func()) {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.subs[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
	}
}

// ScrollToTop performs an animated scroll to the top, or an instant jump
// when the platform signals a reduced-motion preference.
func (t *Tracker) ScrollToTop() {
	smooth := !t.viewport.PrefersReducedMotion()
	t.viewport.ScrollTo(0, smooth)
}

// Stop drops all listeners.
func (t *Tracker) Stop() {
	t.mu.Lock()
	t.subs = make(map[int]func(State))
	t.started = false
	t.mu.Unlock()
}
