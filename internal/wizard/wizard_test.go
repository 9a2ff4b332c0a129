package wizard

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVenue() Venue {
	return Venue{Name: "The Rainbow Room", Address: "12 Main St", City: "Springfield", State: "IL"}
}

func mustRecurrence(t *testing.T, in RecurrenceInput) Recurrence {
	t.Helper()
	r, err := NewRecurrence(in)
	require.NoError(t, err)
	return r
}

// wizardAtStep2 returns a wizard that has passed the venue step.
func wizardAtStep2(t *testing.T) *Wizard {
	t.Helper()
	v := validVenue()
	w := New(&v)
	require.NoError(t, w.Next())
	require.Equal(t, StepRecurrence, w.Step)
	return w
}

func TestNew_PrefillsVenue(t *testing.T) {
	v := validVenue()
	w := New(&v)

	assert.Equal(t, StepVenue, w.Step)
	assert.Equal(t, v, w.Draft.Venue)
	assert.Empty(t, w.Error)
}

func TestNext_VenueRequiresAllFields(t *testing.T) {
	w := New(&Venue{Name: "Club", Address: "  ", City: "Springfield", State: "IL"})

	err := w.Next()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, StepVenue, w.Step)
	assert.NotEmpty(t, w.Error)
}

func TestBack_ClearsErrorAndFloorsAtOne(t *testing.T) {
	w := New(nil)
	require.Error(t, w.Next())

	w.Back()

	assert.Equal(t, StepVenue, w.Step)
	assert.Empty(t, w.Error)
}

func TestNext_CapsAtReview(t *testing.T) {
	w := wizardAtStep2(t)
	w.Draft.SetRecurrence(mustRecurrence(t, RecurrenceInput{Pattern: PatternWeekly, DayOfWeek: "friday"}))
	w.Draft.StartTime, w.Draft.EndTime = "18:00", "20:00"
	require.NoError(t, w.Draft.SetEventTypes([]EventType{EventKaraoke}))

	for i := 0; i < 10; i++ {
		require.NoError(t, w.Next())
	}

	assert.Equal(t, StepReview, w.Step)
}

func TestStep2_PatternRequirements(t *testing.T) {
	tests := []struct {
		name     string
		missing  RecurrenceInput
		complete RecurrenceInput
	}{
		{
			name:     "one-time needs date",
			missing:  RecurrenceInput{Pattern: PatternOneTime},
			complete: RecurrenceInput{Pattern: PatternOneTime, Date: "2024-06-14"},
		},
		{
			name:     "weekly needs day",
			missing:  RecurrenceInput{Pattern: PatternWeekly},
			complete: RecurrenceInput{Pattern: PatternWeekly, DayOfWeek: "Friday"},
		},
		{
			name:     "bi-weekly needs anchor",
			missing:  RecurrenceInput{Pattern: PatternBiWeekly, DayOfWeek: "Friday"},
			complete: RecurrenceInput{Pattern: PatternBiWeekly, DayOfWeek: "Friday", AnchorDate: "2024-06-14"},
		},
		{
			name:     "bi-weekly needs day",
			missing:  RecurrenceInput{Pattern: PatternBiWeekly, AnchorDate: "2024-06-14"},
			complete: RecurrenceInput{Pattern: PatternBiWeekly, DayOfWeek: "Friday", AnchorDate: "2024-06-14"},
		},
		{
			name:     "monthly by date needs anchor",
			missing:  RecurrenceInput{Pattern: PatternMonthly, MonthlyMode: MonthlyByDate},
			complete: RecurrenceInput{Pattern: PatternMonthly, MonthlyMode: MonthlyByDate, AnchorDate: "2024-07-05"},
		},
		{
			name:    "monthly by weekday needs a rule",
			missing: RecurrenceInput{Pattern: PatternMonthly, MonthlyMode: MonthlyByWeekday, AnchorDate: "2024-07-05"},
			complete: RecurrenceInput{
				Pattern: PatternMonthly, MonthlyMode: MonthlyByWeekday, AnchorDate: "2024-07-05",
				MonthlyRules: []string{"1st Friday"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := wizardAtStep2(t)
			w.Draft.StartTime, w.Draft.EndTime = "18:00", "20:00"

			w.Draft.SetRecurrence(mustRecurrence(t, tt.missing))
			err := w.Next()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, StepRecurrence, w.Step)

			w.Draft.SetRecurrence(mustRecurrence(t, tt.complete))
			require.NoError(t, w.Next())
			assert.Equal(t, StepEventType, w.Step)
		})
	}
}

func TestStep2_RequiresPatternAndTimes(t *testing.T) {
	w := wizardAtStep2(t)
	require.Error(t, w.Next())
	assert.Contains(t, w.Error, "how often")

	w.Draft.SetRecurrence(mustRecurrence(t, RecurrenceInput{Pattern: PatternWeekly, DayOfWeek: "Monday"}))
	w.Draft.StartTime = "18:00"
	require.Error(t, w.Next())
	assert.Contains(t, w.Error, "end time")

	// End before start is accepted.
	w.Draft.EndTime = "07:00"
	require.NoError(t, w.Next())
}

func TestNewRecurrence_DropsForeignFields(t *testing.T) {
	r := mustRecurrence(t, RecurrenceInput{
		Pattern:    PatternWeekly,
		DayOfWeek:  "Friday",
		Date:       "2024-06-14",
		AnchorDate: "2024-06-21",
	})

	assert.Equal(t, Weekly{DayOfWeek: "Friday"}, r)
}

func TestNewRecurrence_RejectsBadInput(t *testing.T) {
	_, err := NewRecurrence(RecurrenceInput{Pattern: "yearly"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewRecurrence(RecurrenceInput{Pattern: PatternWeekly, DayOfWeek: "Funday"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewRecurrence(RecurrenceInput{
		Pattern: PatternMonthly, MonthlyMode: MonthlyByWeekday, MonthlyRules: []string{"5th Friday"},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCompose_DoesNotLeakStaleWhenFields(t *testing.T) {
	d := Draft{}
	d.SetRecurrence(mustRecurrence(t, RecurrenceInput{Pattern: PatternOneTime, Date: "2024-06-14"}))
	d.SetRecurrence(mustRecurrence(t, RecurrenceInput{Pattern: PatternWeekly, DayOfWeek: "Friday"}))

	p := Compose(d)

	assert.Equal(t, PatternWeekly, p.RecurrencePattern)
	assert.Equal(t, "Friday", p.DayOfWeek)
	assert.Empty(t, p.Date)
	assert.Empty(t, p.RecurrenceAnchorDate)
}

func TestComposeDescription_AdditionalDays(t *testing.T) {
	d := Draft{}
	d.SetRecurrence(mustRecurrence(t, RecurrenceInput{Pattern: PatternWeekly, DayOfWeek: "Thursday"}))
	require.NoError(t, d.SetAdditionalDays([]AdditionalDay{{Day: "Friday", StartTime: "18:00", EndTime: "20:00"}}))

	assert.Equal(t, "Also Occurs on: Friday 6:00 PM - 8:00 PM", ComposeDescription(d))
}

func TestComposeDescription_AllSegmentsInOrder(t *testing.T) {
	d := Draft{Description: "Weekly karaoke night.", SevenDaysAWeek: true}
	d.SetRecurrence(mustRecurrence(t, RecurrenceInput{Pattern: PatternOneTime, Date: "2024-06-14"}))
	require.NoError(t, d.SetEventTypes([]EventType{EventTheatre, EventDrag}))
	require.NoError(t, d.SetAdditionalDays([]AdditionalDay{
		{Day: "Friday", StartTime: "18:00", EndTime: "20:00"},
		{Day: "Saturday", StartTime: "12:30", EndTime: "00:15"},
	}))
	require.NoError(t, d.SetShowDates([]ShowDate{{Date: "2024-06-14", Time: "19:30"}, {Date: "2024-06-15", Time: "14:00"}}))

	want := strings.Join([]string{
		"Weekly karaoke night.",
		"Also Occurs on: Friday 6:00 PM - 8:00 PM | Saturday 12:30 PM - 12:15 AM",
		"7 Days a Week",
		"Additional Show Dates:\n• Fri, 6/14 @ 7:30 PM\n• Sat, 6/15 @ 2:00 PM",
	}, "\n\n")
	assert.Equal(t, want, ComposeDescription(d))
}

func TestComposeDescription_MonthlyRules(t *testing.T) {
	d := Draft{}
	d.SetRecurrence(mustRecurrence(t, RecurrenceInput{
		Pattern:      PatternMonthly,
		MonthlyMode:  MonthlyByWeekday,
		AnchorDate:   "2024-07-05",
		MonthlyRules: []string{"1st Friday", "Last Sunday"},
	}))

	assert.Equal(t, "Monthly Rules: 1st Friday, Last Sunday", ComposeDescription(d))
}

func TestComposeDescription_MonthlyByDateHasNoRules(t *testing.T) {
	d := Draft{Description: "Book club"}
	d.SetRecurrence(mustRecurrence(t, RecurrenceInput{
		Pattern:      PatternMonthly,
		MonthlyMode:  MonthlyByDate,
		AnchorDate:   "2024-07-05",
		MonthlyRules: []string{"1st Friday"},
	}))

	assert.Equal(t, "Book club", ComposeDescription(d))
}

func TestSetRecurrence_DropsAdditionalDaysWhenNotAllowed(t *testing.T) {
	d := Draft{}
	d.SetRecurrence(mustRecurrence(t, RecurrenceInput{Pattern: PatternWeekly, DayOfWeek: "Friday"}))
	require.NoError(t, d.SetAdditionalDays([]AdditionalDay{{Day: "Saturday", StartTime: "18:00", EndTime: "20:00"}}))

	d.SetRecurrence(mustRecurrence(t, RecurrenceInput{Pattern: PatternMonthly, AnchorDate: "2024-07-05"}))

	assert.Empty(t, d.AdditionalDays)
	assert.Error(t, d.SetAdditionalDays([]AdditionalDay{{Day: "Saturday"}}))
}

func TestSetEventTypes_DropsShowDatesWithoutTheatre(t *testing.T) {
	d := Draft{}
	require.NoError(t, d.SetEventTypes([]EventType{EventTheatre}))
	require.NoError(t, d.SetShowDates([]ShowDate{{Date: "2024-06-14", Time: "19:30"}}))

	require.NoError(t, d.SetEventTypes([]EventType{EventDrag}))

	assert.Empty(t, d.AdditionalShowDates)
	assert.ErrorIs(t, d.SetShowDates([]ShowDate{{Date: "2024-06-14"}}), ErrValidation)
	assert.ErrorIs(t, d.SetEventTypes([]EventType{"polka"}), ErrValidation)
}

func TestAddAdditionalDayAndShowDate(t *testing.T) {
	d := Draft{}
	assert.ErrorIs(t, d.AddAdditionalDay(AdditionalDay{Day: "Saturday"}), ErrValidation)
	assert.ErrorIs(t, d.AddShowDate(ShowDate{Date: "2024-06-14", Time: "19:30"}), ErrValidation)

	d.SetRecurrence(mustRecurrence(t, RecurrenceInput{Pattern: PatternWeekly, DayOfWeek: "Friday"}))
	require.NoError(t, d.SetEventTypes([]EventType{EventTheatre}))
	require.NoError(t, d.AddAdditionalDay(AdditionalDay{Day: "Saturday", StartTime: "18:00", EndTime: "20:00"}))
	require.NoError(t, d.AddAdditionalDay(AdditionalDay{Day: "Sunday", StartTime: "14:00", EndTime: "16:00"}))
	require.NoError(t, d.AddShowDate(ShowDate{Date: "2024-06-14", Time: "19:30"}))

	assert.Len(t, d.AdditionalDays, 2)
	assert.Len(t, d.AdditionalShowDates, 1)
}

func TestEventbrite_InvalidURLBlocksStep4(t *testing.T) {
	w := &Wizard{Step: StepExtras}
	w.Draft.SetEventbrite(true, "https://example.com/not-eventbrite")

	err := w.Next()
	require.Error(t, err)
	assert.Equal(t, StepExtras, w.Step)

	assert.Nil(t, Compose(w.Draft).EventbriteURL)
	w.Draft.SetEventbrite(false, "")
	assert.Empty(t, w.Draft.EventbriteURL)
	assert.Nil(t, Compose(w.Draft).EventbriteURL)
	require.NoError(t, w.Next())
}

func TestEventbrite_ValidURLInPayload(t *testing.T) {
	d := Draft{}
	d.SetEventbrite(true, "https://www.eventbrite.com/e/pride-karaoke-tickets-123")

	require.NoError(t, ValidateStep(StepExtras, &d))
	p := Compose(d)
	require.NotNil(t, p.EventbriteURL)
	assert.Equal(t, "https://www.eventbrite.com/e/pride-karaoke-tickets-123", *p.EventbriteURL)
}

func TestIsEventbriteURL(t *testing.T) {
	assert.True(t, IsEventbriteURL("http://eventbrite.co.uk/e/abc"))
	assert.True(t, IsEventbriteURL("https://www.eventbrite.ca/e/show-42"))
	assert.False(t, IsEventbriteURL("https://eventbrite.com/o/organizer-1"))
	assert.False(t, IsEventbriteURL("https://example.com/not-eventbrite"))
}

func TestCompose_Payload(t *testing.T) {
	d := Draft{
		Venue:            Venue{Name: " Club ", Address: "1 A St", City: "Town", State: "CA"},
		StartTime:        "18:00",
		EndTime:          "20:00",
		Description:      "Fun",
		RelatedArtistIDs: []string{"a1", "a2"},
	}
	d.SetRecurrence(mustRecurrence(t, RecurrenceInput{Pattern: PatternBiWeekly, DayOfWeek: "Friday", AnchorDate: "2024-06-14"}))
	require.NoError(t, d.SetEventTypes([]EventType{EventKaraoke, EventDrag}))

	p := Compose(d)

	assert.Equal(t, "Club", p.VenueName)
	assert.Equal(t, "karaoke,drag", p.EventType)
	assert.Equal(t, PatternBiWeekly, p.RecurrencePattern)
	assert.Equal(t, "Friday", p.DayOfWeek)
	assert.Equal(t, "2024-06-14", p.RecurrenceAnchorDate)
	assert.Equal(t, []string{"a1", "a2"}, p.RelatedArtistIDs)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"eventbrite_url":null`)
	assert.NotContains(t, string(raw), `"date"`)
}

func TestPresents_ToggleRoundTrip(t *testing.T) {
	for _, original := range []string{"Join us for karaoke!", "", "  leading spaces", "Pride Center Presents something"} {
		on := TogglePresents(original, "Pride Center", true)
		assert.True(t, HasPresents(on, "Pride Center"))
		assert.Equal(t, original, TogglePresents(on, "Pride Center", false))
	}
}

func TestPresents_Detection(t *testing.T) {
	assert.True(t, HasPresents("pride center presents:Drag brunch", "Pride Center"))
	assert.Equal(t, "Drag brunch", StripPresents("PRIDE CENTER PRESENTS:   Drag brunch", "Pride Center"))
	assert.Equal(t, "Pride Center Presents: x", ApplyPresents("Pride Center Presents: x", "Pride Center"))
	assert.Equal(t, "x", ApplyPresents("x", ""))
}

func TestSetDescription_Caps(t *testing.T) {
	d := Draft{}
	d.SetDescription(strings.Repeat("é", MaxDescriptionLength+10))

	assert.Equal(t, MaxDescriptionLength, len([]rune(d.Description)))
}

func TestReset(t *testing.T) {
	w := wizardAtStep2(t)
	w.Draft.SetRecurrence(mustRecurrence(t, RecurrenceInput{Pattern: PatternWeekly, DayOfWeek: "Friday"}))
	w.Draft.SevenDaysAWeek = true
	w.Draft.SetEventbrite(true, "https://www.eventbrite.com/e/x")
	w.Error = "boom"

	w.Reset()

	assert.Equal(t, Wizard{Step: StepVenue}, *w)
}

func TestDraft_JSONRoundTrip(t *testing.T) {
	d := Draft{Venue: validVenue(), StartTime: "18:00", EndTime: "20:00"}
	d.SetRecurrence(mustRecurrence(t, RecurrenceInput{
		Pattern: PatternMonthly, MonthlyMode: MonthlyByWeekday, AnchorDate: "2024-07-05",
		MonthlyRules: []string{"Last Sunday"},
	}))

	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var back Draft
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d.Recurrence, back.Recurrence)
	assert.Equal(t, d.Venue, back.Venue)
}

func TestApply_IsAtomic(t *testing.T) {
	d := Draft{Description: "keep me"}
	desc := "changed"
	types := []EventType{"nope"}

	err := d.Apply(Patch{Description: &desc, EventTypes: &types})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "keep me", d.Description)
}

func TestFormatTime12h(t *testing.T) {
	assert.Equal(t, "12:00 AM", FormatTime12h("00:00"))
	assert.Equal(t, "12:05 PM", FormatTime12h("12:05"))
	assert.Equal(t, "9:30 AM", FormatTime12h("09:30:00"))
	assert.Equal(t, "soon", FormatTime12h("soon"))
}

func TestStep2_RejectsMalformedDates(t *testing.T) {
	tests := []struct {
		name string
		in   RecurrenceInput
	}{
		{name: "one-time date", in: RecurrenceInput{Pattern: PatternOneTime, Date: "not-a-date"}},
		{name: "one-time impossible day", in: RecurrenceInput{Pattern: PatternOneTime, Date: "2024-02-30"}},
		{name: "bi-weekly anchor", in: RecurrenceInput{Pattern: PatternBiWeekly, DayOfWeek: "Friday", AnchorDate: "06/14/2024"}},
		{name: "monthly anchor", in: RecurrenceInput{Pattern: PatternMonthly, MonthlyMode: MonthlyByDate, AnchorDate: "next month"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := wizardAtStep2(t)
			w.Draft.StartTime, w.Draft.EndTime = "18:00", "20:00"
			w.Draft.SetRecurrence(mustRecurrence(t, tt.in))

			err := w.Next()

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, StepRecurrence, w.Step)
			assert.Contains(t, w.Error, "YYYY-MM-DD")
		})
	}
}

func TestStep2_RejectsMalformedTimes(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{name: "word", start: "banana", end: "20:00"},
		{name: "out of range", start: "18:00", end: "25:99"},
		{name: "twelve hour", start: "6:00 PM", end: "20:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := wizardAtStep2(t)
			w.Draft.SetRecurrence(mustRecurrence(t, RecurrenceInput{Pattern: PatternOneTime, Date: "2024-06-14"}))
			w.Draft.StartTime, w.Draft.EndTime = tt.start, tt.end

			err := w.Next()

			require.Error(t, err)
			assert.Equal(t, StepRecurrence, w.Step)
			assert.Contains(t, w.Error, "HH:MM")
		})
	}

	w := wizardAtStep2(t)
	w.Draft.SetRecurrence(mustRecurrence(t, RecurrenceInput{Pattern: PatternOneTime, Date: "2024-06-14"}))
	w.Draft.StartTime, w.Draft.EndTime = "18:00", "23:30:00"
	require.NoError(t, w.Next())
}

func TestSetAdditionalDays_RequiresWellFormedTimes(t *testing.T) {
	d := Draft{}
	d.SetRecurrence(mustRecurrence(t, RecurrenceInput{Pattern: PatternWeekly, DayOfWeek: "Friday"}))

	assert.ErrorIs(t, d.SetAdditionalDays([]AdditionalDay{{Day: "Friday", StartTime: "x"}}), ErrValidation)
	assert.ErrorIs(t, d.SetAdditionalDays([]AdditionalDay{{Day: "Friday", StartTime: "18:00"}}), ErrValidation)
	assert.ErrorIs(t, d.SetAdditionalDays([]AdditionalDay{{StartTime: "18:00", EndTime: "20:00"}}), ErrValidation)
	assert.Empty(t, d.AdditionalDays)

	require.NoError(t, d.SetAdditionalDays([]AdditionalDay{{Day: "saturday", StartTime: " 18:00", EndTime: "20:00 "}}))
	assert.Equal(t, []AdditionalDay{{Day: "Saturday", StartTime: "18:00", EndTime: "20:00"}}, d.AdditionalDays)
}

func TestSetShowDates_RequiresWellFormedDates(t *testing.T) {
	d := Draft{}
	require.NoError(t, d.SetEventTypes([]EventType{EventTheatre}))

	assert.ErrorIs(t, d.SetShowDates([]ShowDate{{Date: "Friday", Time: "19:30"}}), ErrValidation)
	assert.ErrorIs(t, d.SetShowDates([]ShowDate{{Date: "2024-06-14", Time: "late"}}), ErrValidation)
	require.NoError(t, d.SetShowDates([]ShowDate{{Date: "2024-06-14"}}))
}

func TestSetPresents_StaysWithinDescriptionCap(t *testing.T) {
	w := New(nil)
	w.Draft.SetDescription(strings.Repeat("a", MaxDescriptionLength))

	w.SetPresents("Pride Center", true)

	assert.Equal(t, MaxDescriptionLength, utf8.RuneCountInString(w.Draft.Description))
	assert.True(t, HasPresents(w.Draft.Description, "Pride Center"))
}

func TestNewRecurrence_MonthlyRulesIgnoreCase(t *testing.T) {
	r := mustRecurrence(t, RecurrenceInput{
		Pattern: PatternMonthly, MonthlyMode: MonthlyByWeekday, AnchorDate: "2024-07-05",
		MonthlyRules: []string{"1st friday", "LAST  sunday", "1st Friday"},
	})

	assert.Equal(t, []string{"1st Friday", "Last Sunday"}, r.(Monthly).Rules)

	_, err := NewRecurrence(RecurrenceInput{
		Pattern: PatternMonthly, MonthlyMode: MonthlyByWeekday, MonthlyRules: []string{"1st fri"},
	})
	assert.ErrorIs(t, err, ErrValidation)
}
