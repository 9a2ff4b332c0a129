package wizard

import (
	"strings"
	"time"
)

// Payload is the body of POST /event-submissions. Scheduling detail that
// the API has no fields for travels inside Description.
type Payload struct {
	VenueName            string   `json:"venue_name" bson:"venue_name"`
	Address              string   `json:"address" bson:"address"`
	City                 string   `json:"city" bson:"city"`
	State                string   `json:"state" bson:"state"`
	EventType            string   `json:"event_type" bson:"event_type"`
	StartTime            string   `json:"start_time" bson:"start_time"`
	EndTime              string   `json:"end_time" bson:"end_time"`
	Description          string   `json:"description" bson:"description"`
	DayOfWeek            string   `json:"day_of_week,omitempty" bson:"day_of_week"`
	Date                 string   `json:"date,omitempty" bson:"date"`
	RecurrencePattern    Pattern  `json:"recurrence_pattern" bson:"recurrence_pattern"`
	RecurrenceAnchorDate string   `json:"recurrence_anchor_date,omitempty" bson:"recurrence_anchor_date"`
	EventbriteURL        *string  `json:"eventbrite_url" bson:"eventbrite_url"`
	RelatedArtistIDs     []string `json:"related_artist_ids" bson:"related_artist_ids"`
}

const (
	alsoOccursPrefix   = "Also Occurs on: "
	alsoOccursSep      = " | "
	sevenDaysText      = "7 Days a Week"
	showDatesHeader    = "Additional Show Dates:"
	showDateBullet     = "• "
	monthlyRulesPrefix = "Monthly Rules: "
	segmentSep         = "\n\n"
)

// Compose flattens d into the submission payload.
func Compose(d Draft) Payload {
	p := Payload{
		VenueName:        strings.TrimSpace(d.Venue.Name),
		Address:          strings.TrimSpace(d.Venue.Address),
		City:             strings.TrimSpace(d.Venue.City),
		State:            strings.TrimSpace(d.Venue.State),
		EventType:        joinEventTypes(d.EventTypes),
		StartTime:        d.StartTime,
		EndTime:          d.EndTime,
		Description:      ComposeDescription(d),
		RelatedArtistIDs: append([]string{}, d.RelatedArtistIDs...),
	}

	switch r := d.Recurrence.(type) {
	case OneTime:
		p.RecurrencePattern = PatternOneTime
		p.Date = r.Date
	case Weekly:
		p.RecurrencePattern = PatternWeekly
		p.DayOfWeek = r.DayOfWeek
	case BiWeekly:
		p.RecurrencePattern = PatternBiWeekly
		p.DayOfWeek = r.DayOfWeek
		p.RecurrenceAnchorDate = r.AnchorDate
	case Monthly:
		p.RecurrencePattern = PatternMonthly
		p.RecurrenceAnchorDate = r.AnchorDate
	}

	if d.EventbriteEnabled && IsEventbriteURL(d.EventbriteURL) {
		url := d.EventbriteURL
		p.EventbriteURL = &url
	}
	return p
}

// ComposeDescription merges the operator's prose with the scheduling notes,
// one segment per block separated by a blank line.
func ComposeDescription(d Draft) string {
	var segments []string
	if s := strings.TrimSpace(d.Description); s != "" {
		segments = append(segments, s)
	}

	if d.AdditionalDaysAllowed() {
		var entries []string
		for _, day := range d.AdditionalDays {
			if day.Day == "" {
				continue
			}
			entries = append(entries, day.Day+" "+FormatTime12h(day.StartTime)+" - "+FormatTime12h(day.EndTime))
		}
		if len(entries) > 0 {
			segments = append(segments, alsoOccursPrefix+strings.Join(entries, alsoOccursSep))
		}
	}

	if d.SevenDaysAWeek {
		segments = append(segments, sevenDaysText)
	}

	if d.ShowDatesAllowed() {
		lines := []string{showDatesHeader}
		for _, sd := range d.AdditionalShowDates {
			if sd.Date == "" {
				continue
			}
			lines = append(lines, showDateBullet+FormatShowDate(sd))
		}
		if len(lines) > 1 {
			segments = append(segments, strings.Join(lines, "\n"))
		}
	}

	if m, ok := d.Recurrence.(Monthly); ok && m.Mode == MonthlyByWeekday && len(m.Rules) > 0 {
		segments = append(segments, monthlyRulesPrefix+strings.Join(m.Rules, ", "))
	}

	return strings.Join(segments, segmentSep)
}

// FormatTime12h turns "18:00" into "6:00 PM". Unparseable input is
// returned unchanged.
func FormatTime12h(hhmm string) string {
	t, ok := parseClock(hhmm)
	if !ok {
		return hhmm
	}
	return t.Format("3:04 PM")
}

// FormatShowDate renders a show date as "Fri, 6/14 @ 7:30 PM".
func FormatShowDate(sd ShowDate) string {
	day, err := time.Parse("2006-01-02", strings.TrimSpace(sd.Date))
	if err != nil {
		return strings.TrimSpace(sd.Date + " @ " + FormatTime12h(sd.Time))
	}
	out := day.Format("Mon, 1/2")
	if strings.TrimSpace(sd.Time) != "" {
		out += " @ " + FormatTime12h(sd.Time)
	}
	return out
}

func parseClock(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func joinEventTypes(types []EventType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}
