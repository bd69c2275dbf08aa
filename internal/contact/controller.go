// Package contact owns the contact form: field state, the submission status
// machine (idle, sending, success, error), the single-flight guard, and the
// timed auto-reset after a successful send. The email relay is an injected
// Sender so the controller is unit-testable with a fake; the real
// implementation is the EmailJS REST client in emailjs.go.
package contact

import (
	"context"
	"sync"
	"time"

	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/config"
	siteerr "github.com/Dinakaran-Yogidasan/web-portfolio/internal/errors"
)

// Status is the finite submission state.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSending Status = "sending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// SuccessRevertDelay is how long the success state shows before
// automatically returning to idle.
const SuccessRevertDelay = 5000 * time.Millisecond

// Fields are the four form fields, all required non-empty before a send is
// attempted (enforced by the presentation layer, not here).
type Fields struct {
	FirstName string
	LastName  string
	Email     string
	Message   string
}

// Payload is the fixed shape handed to the email relay.
type Payload struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Message   string `json:"message"`
}

// Sender delivers a contact payload through the configured relay service.
type Sender interface {
	Send(ctx context.Context, serviceID, templateID string, payload Payload) error
}

// scheduler abstracts the auto-reset timer for tests. It returns a cancel
// function.
type scheduler func(d time.Duration, fn func()) (cancel func())

func timerScheduler(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Controller is the contact form state machine.
type Controller struct {
	email  config.EmailConfig
	sender Sender

	mu           sync.Mutex
	fields       Fields
	status       Status
	isSubmitting bool
	cancelRevert func()
	schedule     scheduler
	onChange     func(Status)
}

// Option configures a Controller.
type Option func(*Controller)

// WithStatusListener registers a hook run on every status transition.
func WithStatusListener(fn func(Status)) Option {
	return func(c *Controller) { c.onChange = fn }
}

func withScheduler(s scheduler) Option {
	return func(c *Controller) { c.schedule = s }
}

// NewController creates an idle controller with empty fields.
func NewController(email config.EmailConfig, sender Sender, opts ...Option) *Controller {
	c := &Controller{
		email:    email,
		sender:   sender,
		status:   StatusIdle,
		schedule: timerScheduler,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UpdateField merges a single field value by name. Unknown names are
// ignored; validation is delegated to the form's required attributes.
func (c *Controller) UpdateField(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch name {
	case "firstName":
		c.fields.FirstName = value
	case "lastName":
		c.fields.LastName = value
	case "email":
		c.fields.Email = value
	case "message":
		c.fields.Message = value
	}
}

// SetFields replaces all field values at once (the HTTP handler path).
func (c *Controller) SetFields(f Fields) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields = f
}

// Fields returns a copy of the current field values.
func (c *Controller) Fields() Fields {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// Status returns the current submission status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Submit runs one submission attempt:
//
//	idle -> sending -> success (fields cleared, auto-revert scheduled)
//	                -> error   (fields kept, manual resubmit required)
//
// Only one send may be in flight; concurrent calls return immediately
// without touching the relay. Missing delivery secrets are a fatal
// configuration error for this attempt and never reach the network.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.isSubmitting {
		c.mu.Unlock()
		return nil
	}
	c.isSubmitting = true
	c.setStatusLocked(StatusSending)
	fields := c.fields
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.isSubmitting = false
		c.mu.Unlock()
	}()

	if missing := c.email.Missing(); len(missing) > 0 {
		c.transition(StatusError)
		return siteerr.Config("contact submit", errMissingSecrets(missing))
	}

	payload := Payload{
		FromName:  fields.FirstName + " " + fields.LastName,
		FromEmail: fields.Email,
		Message:   fields.Message,
	}

	if err := c.sender.Send(ctx, c.email.ServiceID, c.email.TemplateID, payload); err != nil {
		c.transition(StatusError)
		return siteerr.Delivery("contact submit", err)
	}

	c.mu.Lock()
	c.fields = Fields{}
	c.setStatusLocked(StatusSuccess)
	if c.cancelRevert != nil {
		c.cancelRevert()
	}
	c.cancelRevert = c.schedule(SuccessRevertDelay, c.revertToIdle)
	c.mu.Unlock()

	return nil
}

func (c *Controller) revertToIdle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status == StatusSuccess {
		c.setStatusLocked(StatusIdle)
	}
	c.cancelRevert = nil
}

// Reset clears the fields and forces the status back to idle, used when a
// success acknowledgment is dismissed.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields = Fields{}
	if c.cancelRevert != nil {
		c.cancelRevert()
		c.cancelRevert = nil
	}
	c.setStatusLocked(StatusIdle)
}

// Close cancels a pending success auto-revert so an unmounted form cannot
// fire a stale timer.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancelRevert != nil {
		c.cancelRevert()
		c.cancelRevert = nil
	}
}

func (c *Controller) transition(s Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setStatusLocked(s)
}

func (c *Controller) setStatusLocked(s Status) {
	c.status = s
	if c.onChange != nil {
		c.onChange(s)
	}
}

type errMissingSecrets []string

func (e errMissingSecrets) Error() string {
	out := "missing delivery secrets:"
	for _, name := range e {
		out += " " + name
	}
	return out
}
