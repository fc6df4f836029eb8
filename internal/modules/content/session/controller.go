// Package session models the interactive generation flow: an explicit state
// object driven through validate/generate transitions, with rendering hung
// off as subscribers rather than baked into the transitions.
package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/tourcopy/tourism-content-be/internal/modules/content/models"
)

type Status string

const (
	StatusIdle       Status = "idle"
	StatusValidating Status = "validating"
	StatusGenerating Status = "generating"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// Generator produces a bundle from validated form input. Both the local
// assembler and the external-API pipeline satisfy it.
type Generator interface {
	Generate(ctx context.Context, in models.FormInput, image []byte) (models.Bundle, error)
}

// State is one snapshot of the session: current status, the last generated
// bundle, and whatever the UI should be showing.
type State struct {
	Status        Status
	Bundle        models.Bundle
	HasBundle     bool
	FieldErrors   map[string]string
	FocusField    string
	StatusMessage string
}

var requiredFields = []string{"businessType", "contentType", "location"}

var fieldMessages = map[string]string{
	"businessType": "Please select a business type",
	"contentType":  "Please select a content type",
	"location":     "Please enter a location",
}

// Controller drives a single user session. At most one generation is in
// flight at a time, enforced by the Generating status rather than a lock;
// the controller is not meant to be shared across goroutines.
type Controller struct {
	gen         Generator
	state       State
	subscribers []func(State)
}

func NewController(gen Generator) *Controller {
	return &Controller{
		gen:   gen,
		state: State{Status: StatusIdle},
	}
}

// Subscribe registers a callback invoked after every state transition.
func (c *Controller) Subscribe(fn func(State)) {
	c.subscribers = append(c.subscribers, fn)
}

// State returns the current snapshot.
func (c *Controller) State() State {
	return c.state
}

// IsGenerating reports whether a generation is in flight.
func (c *Controller) IsGenerating() bool {
	return c.state.Status == StatusGenerating
}

// Submit runs one submission attempt: validate, then generate. A submission
// while one is already generating is a no-op. After success or failure the
// controller is ready for the next submission.
func (c *Controller) Submit(ctx context.Context, in models.FormInput, image []byte) State {
	if c.state.Status == StatusGenerating {
		return c.state
	}

	// Entering validation clears any previous field errors.
	c.transition(State{
		Status:    StatusValidating,
		Bundle:    c.state.Bundle,
		HasBundle: c.state.HasBundle,
	})

	fieldErrors, focus := validate(in)
	if len(fieldErrors) > 0 {
		c.transition(State{
			Status:        StatusIdle,
			Bundle:        c.state.Bundle,
			HasBundle:     c.state.HasBundle,
			FieldErrors:   fieldErrors,
			FocusField:    focus,
			StatusMessage: "Please fill in all required fields",
		})
		return c.state
	}

	c.transition(State{
		Status:        StatusGenerating,
		Bundle:        c.state.Bundle,
		HasBundle:     c.state.HasBundle,
		StatusMessage: "Generating content ideas...",
	})

	bundle, err := c.generate(ctx, in, image)
	if err != nil {
		c.transition(State{
			Status:        StatusFailed,
			Bundle:        c.state.Bundle,
			HasBundle:     c.state.HasBundle,
			StatusMessage: "Content generation failed. Please try again.",
		})
		return c.state
	}

	c.transition(State{
		Status:        StatusSucceeded,
		Bundle:        bundle,
		HasBundle:     true,
		StatusMessage: "Content generated successfully!",
	})
	return c.state
}

// generate shields the state machine from generator panics: the busy status
// must be cleared even on a mid-pipeline fault.
func (c *Controller) generate(ctx context.Context, in models.FormInput, image []byte) (bundle models.Bundle, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generation fault: %v", r)
		}
	}()
	return c.gen.Generate(ctx, in, image)
}

func (c *Controller) transition(next State) {
	c.state = next
	for _, fn := range c.subscribers {
		fn(next)
	}
}

// validate checks the required fields in field order and returns per-field
// messages plus the first invalid field, which should receive focus.
func validate(in models.FormInput) (map[string]string, string) {
	values := map[string]string{
		"businessType": in.BusinessType,
		"contentType":  in.ContentType,
		"location":     in.Location,
	}

	errs := make(map[string]string)
	focus := ""
	for _, field := range requiredFields {
		if strings.TrimSpace(values[field]) == "" {
			errs[field] = fieldMessages[field]
			if focus == "" {
				focus = field
			}
		}
	}
	if len(errs) == 0 {
		return nil, ""
	}
	return errs, focus
}
