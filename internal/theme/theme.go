// Package theme owns the light/dark preference: initial resolution from the
// stored value or the platform signal, persistence on every change, and the
// toggle. The controller is environment-independent; persistence and the
// global class marker are injected so the logic runs the same against a
// browser cookie, a test fake, or nothing at all.
package theme

import "sync"

// Theme is the color scheme preference.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// StorageKey is the fixed key the preference persists under.
const StorageKey = "theme"

// Parse validates a stored preference. Anything outside {light, dark} is
// rejected so resolution falls back to the platform signal.
func Parse(s string) (Theme, bool) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), true
	default:
		return "", false
	}
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Source reports where the resolved preference came from.
type Source int

const (
	SourceStored Source = iota
	SourceSystem
	SourceFallback
)

// Store persists the preference. Load reports ok=false when nothing valid
// is stored; Save failures are fire-and-forget.
type Store interface {
	Load() (value string, ok bool)
	Save(value string)
}

// Controller resolves, persists, and toggles the theme preference.
//
// SystemPrefersDark stands in for the platform color-scheme signal; Apply is
// the global class marker hook (add/remove the dark class). Both are
// optional: with neither a store nor a system signal the controller resolves
// to light, so it runs safely outside a full environment.
type Controller struct {
	store             Store
	systemPrefersDark func() bool
	apply             func(Theme)

	mu      sync.Mutex
	current Theme
	source  Source
	started bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithStore sets the persistence backend.
func WithStore(s Store) Option {
	return func(c *Controller) { c.store = s }
}

// WithSystemPreference sets the platform color-scheme signal.
func WithSystemPreference(prefersDark func() bool) Option {
	return func(c *Controller) { c.systemPrefersDark = prefersDark }
}

// WithApply sets the hook run on every preference change, including the
// initial resolution.
func WithApply(apply func(Theme)) Option {
	return func(c *Controller) { c.apply = apply }
}

// NewController creates a theme controller.
func NewController(opts ...Option) *Controller {
	c := &Controller{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolve determines the initial theme: a valid stored preference wins,
// otherwise the platform signal, otherwise light. The resolved value is
// persisted and applied, and resolution only happens once; later calls
// return the current value.
func (c *Controller) Resolve() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return c.current
	}
	c.started = true

	c.current, c.source = c.resolveLocked()
	c.persistLocked()
	return c.current
}

func (c *Controller) resolveLocked() (Theme, Source) {
	if c.store != nil {
		if raw, ok := c.store.Load(); ok {
			if t, valid := Parse(raw); valid {
				return t, SourceStored
			}
		}
	}
	if c.systemPrefersDark != nil {
		if c.systemPrefersDark() {
			return Dark, SourceSystem
		}
		return Light, SourceSystem
	}
	return Light, SourceFallback
}

// Current returns the active theme, resolving first if needed.
func (c *Controller) Current() Theme {
	return c.Resolve()
}

// Source returns where the active preference came from.
func (c *Controller) Source() Source {
	c.Resolve()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.source
}

// Toggle flips light and dark, persists the new value, and runs the apply
// hook. Two consecutive toggles return the theme to its original value.
func (c *Controller) Toggle() Theme {
	c.Resolve()
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = c.current.Opposite()
	c.source = SourceStored
	c.persistLocked()
	return c.current
}

func (c *Controller) persistLocked() {
	if c.store != nil {
		c.store.Save(string(c.current))
	}
	if c.apply != nil {
		c.apply(c.current)
	}
}
