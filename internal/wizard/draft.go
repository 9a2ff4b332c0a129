package wizard

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrValidation marks every error caused by operator input.
var ErrValidation = errors.New("validation error")

// MaxDescriptionLength is the cap on the operator's prose, in characters.
const MaxDescriptionLength = 800

// EventType is a category tag of a submitted event.
type EventType string

const (
	EventKaraoke      EventType = "karaoke"
	EventDrag         EventType = "drag"
	EventTrivia       EventType = "trivia"
	EventBingo        EventType = "bingo"
	EventComedy       EventType = "comedy"
	EventTheatre      EventType = "theatre"
	EventMusic        EventType = "music"
	EventDance        EventType = "dance"
	EventOpenMic      EventType = "open-mic"
	EventFundraiser   EventType = "fundraiser"
	EventSupportGroup EventType = "support-group"
	EventSocial       EventType = "social"
	EventOther        EventType = "other"
)

// EventTypes lists every accepted category in display order.
var EventTypes = []EventType{
	EventKaraoke, EventDrag, EventTrivia, EventBingo, EventComedy, EventTheatre,
	EventMusic, EventDance, EventOpenMic, EventFundraiser, EventSupportGroup,
	EventSocial, EventOther,
}

type Venue struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// AdditionalDay is an extra weekly occurrence with its own hours.
type AdditionalDay struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ShowDate is an extra performance of a theatre run.
type ShowDate struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// Draft is the event record assembled by the wizard. It only lives for the
// duration of one wizard session.
type Draft struct {
	Venue               Venue           `json:"venue"`
	Recurrence          Recurrence      `json:"-"`
	StartTime           string          `json:"start_time"`
	EndTime             string          `json:"end_time"`
	EventTypes          []EventType     `json:"event_types"`
	Description         string          `json:"description"`
	AdditionalDays      []AdditionalDay `json:"additional_days"`
	SevenDaysAWeek      bool            `json:"seven_days_a_week"`
	AdditionalShowDates []ShowDate      `json:"additional_show_dates"`
	EventbriteEnabled   bool            `json:"eventbrite_enabled"`
	EventbriteURL       string          `json:"eventbrite_url"`
	RelatedArtistIDs    []string        `json:"related_artist_ids"`
}

func (d Draft) MarshalJSON() ([]byte, error) {
	type alias Draft
	return json.Marshal(struct {
		alias
		Recurrence *RecurrenceInput `json:"recurrence"`
	}{alias(d), InputOf(d.Recurrence)})
}

func (d *Draft) UnmarshalJSON(b []byte) error {
	type alias Draft
	aux := struct {
		*alias
		Recurrence *RecurrenceInput `json:"recurrence"`
	}{alias: (*alias)(d)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	d.Recurrence = nil
	if aux.Recurrence != nil {
		r, err := NewRecurrence(*aux.Recurrence)
		if err != nil {
			return err
		}
		d.Recurrence = r
	}
	return nil
}

// Pattern returns the selected pattern, or "" if none is chosen.
func (d *Draft) Pattern() Pattern {
	if d.Recurrence == nil {
		return ""
	}
	return d.Recurrence.Pattern()
}

// AdditionalDaysAllowed reports whether extra weekly days can be collected
// for the current pattern.
func (d *Draft) AdditionalDaysAllowed() bool {
	switch d.Recurrence.(type) {
	case OneTime, Weekly:
		return true
	default:
		return false
	}
}

// ShowDatesAllowed reports whether theatre is among the event types.
func (d *Draft) ShowDatesAllowed() bool {
	return d.HasEventType(EventTheatre)
}

func (d *Draft) HasEventType(t EventType) bool {
	for _, et := range d.EventTypes {
		if et == t {
			return true
		}
	}
	return false
}

// SetDescription stores text, cut to MaxDescriptionLength characters.
func (d *Draft) SetDescription(text string) {
	if utf8.RuneCountInString(text) > MaxDescriptionLength {
		text = string([]rune(text)[:MaxDescriptionLength])
	}
	d.Description = text
}

// SetEventbrite toggles the ticketing section. Turning it off always clears
// the URL so an unvalidated link can never reach the payload.
func (d *Draft) SetEventbrite(enabled bool, url string) {
	d.EventbriteEnabled = enabled
	if !enabled {
		d.EventbriteURL = ""
		return
	}
	d.EventbriteURL = strings.TrimSpace(url)
}

// SetRecurrence replaces the recurrence and drops extras the new pattern
// can no longer carry.
func (d *Draft) SetRecurrence(r Recurrence) {
	d.Recurrence = r
	if !d.AdditionalDaysAllowed() {
		d.AdditionalDays = nil
	}
}

// SetEventTypes replaces the category set. Unknown tags are rejected and
// duplicates collapsed. Show dates are dropped when theatre is deselected.
func (d *Draft) SetEventTypes(types []EventType) error {
	out := make([]EventType, 0, len(types))
	seen := make(map[EventType]struct{}, len(types))
	for _, t := range types {
		t = EventType(strings.ToLower(strings.TrimSpace(string(t))))
		if !knownEventType(t) {
			return fmt.Errorf("%w: unknown event type %q", ErrValidation, t)
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	d.EventTypes = out
	if !d.ShowDatesAllowed() {
		d.AdditionalShowDates = nil
	}
	return nil
}

// SetAdditionalDays replaces the extra weekly days.
func (d *Draft) SetAdditionalDays(days []AdditionalDay) error {
	if len(days) > 0 && !d.AdditionalDaysAllowed() {
		return fmt.Errorf("%w: additional days are only available for one-time or weekly events", ErrValidation)
	}
	out := make([]AdditionalDay, 0, len(days))
	for _, day := range days {
		name, err := normalizeWeekday(day.Day)
		if err != nil {
			return err
		}
		if name == "" {
			return fmt.Errorf("%w: each additional day needs a day of the week", ErrValidation)
		}
		if !isClock(day.StartTime) || !isClock(day.EndTime) {
			return fmt.Errorf("%w: additional day %s needs a start and end time as HH:MM", ErrValidation, name)
		}
		day.Day = name
		day.StartTime = strings.TrimSpace(day.StartTime)
		day.EndTime = strings.TrimSpace(day.EndTime)
		out = append(out, day)
	}
	d.AdditionalDays = out
	return nil
}

// SetShowDates replaces the extra theatre performances.
func (d *Draft) SetShowDates(dates []ShowDate) error {
	if len(dates) > 0 && !d.ShowDatesAllowed() {
		return fmt.Errorf("%w: additional show dates are only available for theatre events", ErrValidation)
	}
	out := make([]ShowDate, 0, len(dates))
	for _, sd := range dates {
		if !isDate(sd.Date) {
			return fmt.Errorf("%w: show dates must be YYYY-MM-DD, got %q", ErrValidation, sd.Date)
		}
		if !blank(sd.Time) && !isClock(sd.Time) {
			return fmt.Errorf("%w: show times must be HH:MM, got %q", ErrValidation, sd.Time)
		}
		out = append(out, ShowDate{Date: strings.TrimSpace(sd.Date), Time: strings.TrimSpace(sd.Time)})
	}
	d.AdditionalShowDates = out
	return nil
}

// AddAdditionalDay appends one extra day, subject to the same rules as
// SetAdditionalDays.
func (d *Draft) AddAdditionalDay(day AdditionalDay) error {
	days := append(append([]AdditionalDay{}, d.AdditionalDays...), day)
	return d.SetAdditionalDays(days)
}

func (d *Draft) AddShowDate(date ShowDate) error {
	return d.SetShowDates(append(append([]ShowDate{}, d.AdditionalShowDates...), date))
}

func knownEventType(t EventType) bool {
	for _, et := range EventTypes {
		if et == t {
			return true
		}
	}
	return false
}

// EventbriteInput toggles the ticketing section.
type EventbriteInput struct {
	Enabled bool   `json:"enabled"`
	URL     string `json:"url"`
}

// Patch is a partial update of a Draft. Nil fields are left untouched.
type Patch struct {
	Venue               *Venue           `json:"venue,omitempty"`
	Recurrence          *RecurrenceInput `json:"recurrence,omitempty"`
	StartTime           *string          `json:"start_time,omitempty"`
	EndTime             *string          `json:"end_time,omitempty"`
	EventTypes          *[]EventType     `json:"event_types,omitempty"`
	Description         *string          `json:"description,omitempty"`
	AdditionalDays      *[]AdditionalDay `json:"additional_days,omitempty"`
	SevenDaysAWeek      *bool            `json:"seven_days_a_week,omitempty"`
	AdditionalShowDates *[]ShowDate      `json:"additional_show_dates,omitempty"`
	Eventbrite          *EventbriteInput `json:"eventbrite,omitempty"`
	RelatedArtistIDs    *[]string        `json:"related_artist_ids,omitempty"`
}

// Apply merges p into d. Either every field is applied or, on error, d is
// left unchanged.
func (d *Draft) Apply(p Patch) error {
	next := *d
	if p.Venue != nil {
		next.Venue = *p.Venue
	}
	if p.Recurrence != nil {
		r, err := NewRecurrence(*p.Recurrence)
		if err != nil {
			return err
		}
		next.SetRecurrence(r)
	}
	if p.StartTime != nil {
		next.StartTime = strings.TrimSpace(*p.StartTime)
	}
	if p.EndTime != nil {
		next.EndTime = strings.TrimSpace(*p.EndTime)
	}
	if p.EventTypes != nil {
		if err := next.SetEventTypes(*p.EventTypes); err != nil {
			return err
		}
	}
	if p.Description != nil {
		next.SetDescription(*p.Description)
	}
	if p.AdditionalDays != nil {
		if err := next.SetAdditionalDays(*p.AdditionalDays); err != nil {
			return err
		}
	}
	if p.SevenDaysAWeek != nil {
		next.SevenDaysAWeek = *p.SevenDaysAWeek
	}
	if p.AdditionalShowDates != nil {
		if err := next.SetShowDates(*p.AdditionalShowDates); err != nil {
			return err
		}
	}
	if p.Eventbrite != nil {
		next.SetEventbrite(p.Eventbrite.Enabled, p.Eventbrite.URL)
	}
	if p.RelatedArtistIDs != nil {
		next.RelatedArtistIDs = dedupe(*p.RelatedArtistIDs)
	}
	*d = next
	return nil
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
