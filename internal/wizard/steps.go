package wizard

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Step is a page of the wizard, 1 through 6.
type Step int

const (
	StepVenue Step = iota + 1
	StepRecurrence
	StepEventType
	StepExtras
	StepDescription
	StepReview
)

const (
	FirstStep = StepVenue
	LastStep  = StepReview
)

var stepNames = map[Step]string{
	StepVenue:       "Venue",
	StepRecurrence:  "Recurrence & Time",
	StepEventType:   "Event Type",
	StepExtras:      "Extras",
	StepDescription: "Description",
	StepReview:      "Review & Submit",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

var eventbriteURLRe = regexp.MustCompile(`(?i)^https?://(www\.)?eventbrite\.[a-z]{2,}(\.[a-z]{2,})?/e/\S+$`)

// IsEventbriteURL reports whether url points at an Eventbrite event page.
func IsEventbriteURL(url string) bool {
	return eventbriteURLRe.MatchString(strings.TrimSpace(url))
}

// Wizard is the complete state of one event-submission session.
type Wizard struct {
	Step  Step   `json:"step"`
	Draft Draft  `json:"draft"`
	Error string `json:"error,omitempty"`
}

// New starts a wizard on the first step, optionally pre-filled with a venue.
func New(initialVenue *Venue) *Wizard {
	w := &Wizard{Step: FirstStep}
	if initialVenue != nil {
		w.Draft.Venue = *initialVenue
	}
	return w
}

// Next validates the current step and advances. On failure the step does
// not change and the message is kept in Error.
func (w *Wizard) Next() error {
	if err := ValidateStep(w.Step, &w.Draft); err != nil {
		w.Error = Message(err)
		return err
	}
	w.Error = ""
	if w.Step < LastStep {
		w.Step++
	}
	return nil
}

// Back always succeeds.
func (w *Wizard) Back() {
	w.Error = ""
	if w.Step > FirstStep {
		w.Step--
	}
}

// Reset returns the wizard to its initial empty state.
func (w *Wizard) Reset() {
	*w = Wizard{Step: FirstStep}
}

// ValidateAll runs every step validator in order and returns the first
// failure together with its step.
func ValidateAll(d *Draft) (Step, error) {
	for s := FirstStep; s <= LastStep; s++ {
		if err := ValidateStep(s, d); err != nil {
			return s, err
		}
	}
	return 0, nil
}

// StepError is a validation failure tied to a step.
type StepError struct {
	Step Step
	Msg  string
}

func (e *StepError) Error() string { return e.Msg }

func (e *StepError) Unwrap() error { return ErrValidation }

// Message extracts the operator-facing text of a validation error.
func Message(err error) string {
	var se *StepError
	if errors.As(err, &se) {
		return se.Msg
	}
	return strings.TrimPrefix(err.Error(), ErrValidation.Error()+": ")
}

func invalid(step Step, msg string) error {
	return &StepError{Step: step, Msg: msg}
}

// ValidateStep applies the rules of a single step to d.
func ValidateStep(step Step, d *Draft) error {
	switch step {
	case StepVenue:
		v := d.Venue
		if blank(v.Name) || blank(v.Address) || blank(v.City) || blank(v.State) {
			return invalid(step, "Please fill in the venue name, address, city, and state.")
		}
	case StepRecurrence:
		return validateRecurrence(d)
	case StepEventType:
		if len(d.EventTypes) == 0 {
			return invalid(step, "Please select at least one event type.")
		}
	case StepExtras:
		if d.EventbriteEnabled && d.EventbriteURL != "" && !IsEventbriteURL(d.EventbriteURL) {
			return invalid(step, "Please enter a valid Eventbrite event link (https://www.eventbrite.com/e/...).")
		}
	case StepDescription, StepReview:
	default:
		return invalid(step, fmt.Sprintf("Unknown step %d.", int(step)))
	}
	return nil
}

func validateRecurrence(d *Draft) error {
	const step = StepRecurrence
	const (
		msgDay    = "Please choose the day of the week."
		msgAnchor = "Please choose the next occurrence date."
		msgDate   = "Please enter dates as YYYY-MM-DD."
	)
	switch r := d.Recurrence.(type) {
	case nil:
		return invalid(step, "Please choose how often this event happens.")
	case OneTime:
		if blank(r.Date) {
			return invalid(step, "Please choose the event date.")
		}
		if !isDate(r.Date) {
			return invalid(step, msgDate)
		}
	case Weekly:
		if blank(r.DayOfWeek) {
			return invalid(step, msgDay)
		}
	case BiWeekly:
		if blank(r.DayOfWeek) {
			return invalid(step, msgDay)
		}
		if blank(r.AnchorDate) {
			return invalid(step, msgAnchor)
		}
		if !isDate(r.AnchorDate) {
			return invalid(step, msgDate)
		}
	case Monthly:
		if r.Mode == MonthlyByWeekday && len(r.Rules) == 0 {
			return invalid(step, "Please add at least one monthly rule, like \"1st Friday\".")
		}
		if blank(r.AnchorDate) {
			return invalid(step, msgAnchor)
		}
		if !isDate(r.AnchorDate) {
			return invalid(step, msgDate)
		}
	default:
		panic(fmt.Sprintf("wizard: unhandled recurrence %T", r))
	}
	if blank(d.StartTime) || blank(d.EndTime) {
		return invalid(step, "Please set both a start time and an end time.")
	}
	if !isClock(d.StartTime) || !isClock(d.EndTime) {
		return invalid(step, "Please enter times as HH:MM (24-hour).")
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isDate(s string) bool {
	_, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	return err == nil
}

func isClock(s string) bool {
	_, ok := parseClock(s)
	return ok
}
