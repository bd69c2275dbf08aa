// Package nav handles in-page navigation: link activation routes to the
// base path carrying the fragment, then a poller scrolls the target section
// into view once it exists in the rendered tree. The poller is cancellable
// and optionally bounded, so a typo'd anchor cannot leak a timer forever.
package nav

import (
	"context"
	"strings"
	"sync"
	"time"
)

// DefaultRetryInterval is the delay between resolution attempts while the
// target element has not mounted yet.
const DefaultRetryInterval = 50 * time.Millisecond

// Router abstracts the history/location surface.
type Router interface {
	// Go navigates to path, carrying an optional fragment.
	Go(path, fragment string)
}

// Document abstracts the rendered tree for fragment resolution.
type Document interface {
	// Has reports whether the element for the fragment exists yet.
	Has(fragment string) bool
	// ScrollTo scrolls the element into view, smooth and top-aligned.
	ScrollTo(fragment string)
}

// Navigator routes link activations and resolves pending same-page scroll
// targets.
type Navigator struct {
	router    Router
	document  Document
	closeMenu func()

	// RetryInterval is the poll period for unresolved fragments.
	RetryInterval time.Duration
	// MaxAttempts bounds the resolution poll; 0 retries until cancelled.
	MaxAttempts int

	mu         sync.Mutex
	cancelPoll context.CancelFunc
	wg         sync.WaitGroup
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithMenuClose sets the hook that closes the mobile navigation overlay; it
// runs on every Navigate call.
func WithMenuClose(fn func()) Option {
	return func(n *Navigator) { n.closeMenu = fn }
}

// WithMaxAttempts bounds fragment resolution.
func WithMaxAttempts(n int) Option {
	return func(nav *Navigator) { nav.MaxAttempts = n }
}

// WithRetryInterval overrides the poll period.
func WithRetryInterval(d time.Duration) Option {
	return func(n *Navigator) { n.RetryInterval = d }
}

// NewNavigator creates a navigator over the given router and document.
func NewNavigator(router Router, document Document, opts ...Option) *Navigator {
	n := &Navigator{
		router:        router,
		document:      document,
		RetryInterval: DefaultRetryInterval,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Navigate handles a link activation. Fragment targets route to the base
// path and start scroll resolution; anything else is a direct path
// navigation. The mobile menu closes either way.
func (n *Navigator) Navigate(target string) {
	if n.closeMenu != nil {
		n.closeMenu()
	}

	if strings.HasPrefix(target, "#") {
		fragment := strings.TrimPrefix(target, "#")
		n.router.Go("/", fragment)
		n.resolve(fragment)
		return
	}

	n.router.Go(target, "")
}

// OnLocationChange re-triggers resolution for the current fragment, so
// repeated clicks on the same anchor still scroll.
func (n *Navigator) OnLocationChange(fragment string) {
	if fragment == "" {
		return
	}
	n.resolve(fragment)
}

// resolve scrolls the fragment into view, polling until the element mounts.
// A new resolution cancels any poll already in flight.
func (n *Navigator) resolve(fragment string) {
	n.mu.Lock()
	if n.cancelPoll != nil {
		n.cancelPoll()
	}
	ctx, cancel := context.WithCancel(context.Background())
	n.cancelPoll = cancel
	n.mu.Unlock()

	// Fast path: the section is already in the tree.
	if n.document.Has(fragment) {
		n.document.ScrollTo(fragment)
		cancel()
		return
	}

	n.wg.Add(1)
	go n.poll(ctx, fragment)
}

func (n *Navigator) poll(ctx context.Context, fragment string) {
	defer n.wg.Done()

	ticker := time.NewTicker(n.RetryInterval)
	defer ticker.Stop()

	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n.document.Has(fragment) {
				n.document.ScrollTo(fragment)
				return
			}
			attempts++
			if n.MaxAttempts > 0 && attempts >= n.MaxAttempts {
				return
			}
		}
	}
}

// Close cancels any in-flight resolution and waits for the poller to exit.
func (n *Navigator) Close() {
	n.mu.Lock()
	if n.cancelPoll != nil {
		n.cancelPoll()
		n.cancelPoll = nil
	}
	n.mu.Unlock()
	n.wg.Wait()
}
