package wizard

import (
	"fmt"
	"strings"
)

// Pattern is the repetition rule of a submitted event.
type Pattern string

const (
	PatternOneTime  Pattern = "one-time"
	PatternWeekly   Pattern = "weekly"
	PatternBiWeekly Pattern = "bi-weekly"
	PatternMonthly  Pattern = "monthly"
)

// MonthlyMode selects how a monthly event is anchored.
type MonthlyMode string

const (
	MonthlyByDate    MonthlyMode = "by-date"
	MonthlyByWeekday MonthlyMode = "by-weekday"
)

// Weekdays lists the accepted day names in calendar order.
var Weekdays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Ordinals are the accepted prefixes of a monthly weekday rule.
var Ordinals = []string{"1st", "2nd", "3rd", "4th", "Last"}


// Recurrence is one of OneTime, Weekly, BiWeekly or Monthly. Each variant
// carries only the fields its pattern needs.
type Recurrence interface {
	Pattern() Pattern
	isRecurrence()
}

type OneTime struct {
	Date string
}

type Weekly struct {
	DayOfWeek string
}

type BiWeekly struct {
	DayOfWeek  string
	AnchorDate string
}

type Monthly struct {
	AnchorDate string
	Mode       MonthlyMode
	Rules      []string
}

func (OneTime) Pattern() Pattern  { return PatternOneTime }
func (Weekly) Pattern() Pattern   { return PatternWeekly }
func (BiWeekly) Pattern() Pattern { return PatternBiWeekly }
func (Monthly) Pattern() Pattern  { return PatternMonthly }

func (OneTime) isRecurrence()  {}
func (Weekly) isRecurrence()   {}
func (BiWeekly) isRecurrence() {}
func (Monthly) isRecurrence()  {}

// RecurrenceInput is the flat wire form of a Recurrence, discriminated by
// Pattern.
type RecurrenceInput struct {
	Pattern      Pattern     `json:"pattern"`
	DayOfWeek    string      `json:"day_of_week,omitempty"`
	Date         string      `json:"date,omitempty"`
	AnchorDate   string      `json:"anchor_date,omitempty"`
	MonthlyMode  MonthlyMode `json:"monthly_mode,omitempty"`
	MonthlyRules []string    `json:"monthly_rules,omitempty"`
}

// NewRecurrence builds the variant selected by in.Pattern. Fields that do
// not belong to that pattern are dropped. An empty pattern yields nil,
// meaning no pattern has been chosen yet.
func NewRecurrence(in RecurrenceInput) (Recurrence, error) {
	switch in.Pattern {
	case "":
		return nil, nil
	case PatternOneTime:
		return OneTime{Date: strings.TrimSpace(in.Date)}, nil
	case PatternWeekly:
		day, err := normalizeWeekday(in.DayOfWeek)
		if err != nil {
			return nil, err
		}
		return Weekly{DayOfWeek: day}, nil
	case PatternBiWeekly:
		day, err := normalizeWeekday(in.DayOfWeek)
		if err != nil {
			return nil, err
		}
		return BiWeekly{DayOfWeek: day, AnchorDate: strings.TrimSpace(in.AnchorDate)}, nil
	case PatternMonthly:
		mode := in.MonthlyMode
		switch mode {
		case "":
			mode = MonthlyByDate
		case MonthlyByDate, MonthlyByWeekday:
		default:
			return nil, fmt.Errorf("%w: unknown monthly mode %q", ErrValidation, in.MonthlyMode)
		}
		m := Monthly{AnchorDate: strings.TrimSpace(in.AnchorDate), Mode: mode}
		if mode == MonthlyByWeekday {
			rules, err := normalizeRules(in.MonthlyRules)
			if err != nil {
				return nil, err
			}
			m.Rules = rules
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: unknown recurrence pattern %q", ErrValidation, in.Pattern)
	}
}

// InputOf flattens r back into its wire form. A nil Recurrence yields nil.
func InputOf(r Recurrence) *RecurrenceInput {
	switch v := r.(type) {
	case nil:
		return nil
	case OneTime:
		return &RecurrenceInput{Pattern: PatternOneTime, Date: v.Date}
	case Weekly:
		return &RecurrenceInput{Pattern: PatternWeekly, DayOfWeek: v.DayOfWeek}
	case BiWeekly:
		return &RecurrenceInput{Pattern: PatternBiWeekly, DayOfWeek: v.DayOfWeek, AnchorDate: v.AnchorDate}
	case Monthly:
		return &RecurrenceInput{
			Pattern:      PatternMonthly,
			AnchorDate:   v.AnchorDate,
			MonthlyMode:  v.Mode,
			MonthlyRules: append([]string(nil), v.Rules...),
		}
	default:
		panic(fmt.Sprintf("wizard: unhandled recurrence %T", r))
	}
}

func normalizeWeekday(day string) (string, error) {
	day = strings.TrimSpace(day)
	if day == "" {
		return "", nil
	}
	for _, d := range Weekdays {
		if strings.EqualFold(d, day) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: unknown day of week %q", ErrValidation, day)
}

// normalizeRules trims, validates and de-duplicates monthly weekday rules,
// keeping first-seen order.
func normalizeRules(rules []string) ([]string, error) {
	out := make([]string, 0, len(rules))
	seen := make(map[string]struct{}, len(rules))
	for _, r := range rules {
		r = strings.Join(strings.Fields(r), " ")
		if r == "" {
			continue
		}
		rule, ok := canonicalRule(r)
		if !ok {
			return nil, fmt.Errorf("%w: invalid monthly rule %q", ErrValidation, r)
		}
		r = rule
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out, nil
}

// canonicalRule matches "<ordinal> <weekday>" case-insensitively and returns
// it in the spelling of Ordinals and Weekdays.
func canonicalRule(r string) (string, bool) {
	parts := strings.Fields(r)
	if len(parts) != 2 {
		return "", false
	}
	day, err := normalizeWeekday(parts[1])
	if err != nil || day == "" {
		return "", false
	}
	for _, o := range Ordinals {
		if strings.EqualFold(o, parts[0]) {
			return o + " " + day, true
		}
	}
	return "", false
}
