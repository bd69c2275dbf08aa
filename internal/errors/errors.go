// Package errors defines the error taxonomy for the portfolio site.
//
// Errors are grouped into categories that decide how failures surface:
// configuration and delivery errors degrade to a generic user-facing retry
// message, render errors escalate to the recovery page, and instrumentation
// errors are logged and swallowed.
package errors

import (
	"errors"
	"fmt"
)

// Category classifies an error for propagation policy decisions.
type Category string

const (
	// CategoryConfig marks missing or invalid configuration, fatal for the
	// attempt that needed it but never retried automatically.
	CategoryConfig Category = "config"
	// CategoryDelivery marks failures of the outbound email relay call.
	CategoryDelivery Category = "delivery"
	// CategoryRender marks failures while rendering the page tree.
	CategoryRender Category = "render"
	// CategoryInstrumentation marks non-critical observability failures.
	CategoryInstrumentation Category = "instrumentation"
)

// GenericUserMessage is shown for config and delivery failures alike; the
// end user is never told which of the two caused the problem.
const GenericUserMessage = "Something went wrong. Please try again later."

// SiteError carries a category and an operation name alongside the cause.
type SiteError struct {
	Category Category
	Op       string
	Err      error
}

func (e *SiteError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Category, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", e.Category, e.Op, e.Err)
}

func (e *SiteError) Unwrap() error {
	return e.Err
}

// Config wraps err as a configuration error.
func Config(op string, err error) *SiteError {
	return &SiteError{Category: CategoryConfig, Op: op, Err: err}
}

// Delivery wraps err as an email delivery error.
func Delivery(op string, err error) *SiteError {
	return &SiteError{Category: CategoryDelivery, Op: op, Err: err}
}

// Render wraps err as a rendering error.
func Render(op string, err error) *SiteError {
	return &SiteError{Category: CategoryRender, Op: op, Err: err}
}

// Instrumentation wraps err as a non-critical instrumentation error.
func Instrumentation(op string, err error) *SiteError {
	return &SiteError{Category: CategoryInstrumentation, Op: op, Err: err}
}

// CategoryOf returns the category of err, or CategoryRender when err carries
// no explicit classification (unexpected failures escalate, not disappear).
func CategoryOf(err error) Category {
	var se *SiteError
	if errors.As(err, &se) {
		return se.Category
	}
	return CategoryRender
}

// UserMessage maps err to the message shown to visitors. All user-facing
// flows degrade to a dismissible status message rather than a crash.
func UserMessage(err error) string {
	return GenericUserMessage
}
