package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	yearMonthLayout = "2006-01"
)

// Date is a calendar day serialized as yyyy-MM-dd.
type Date struct {
	t time.Time
}

// NewDate creates a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) IsZero() bool       { return d.t.IsZero() }
func (d Date) Time() time.Time    { return d.t }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) String() string     { return d.t.Format(dateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.t.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.t = t
	return nil
}

// YearMonth is a calendar month serialized as yyyy-MM. A full yyyy-MM-dd
// value is accepted on input and reduced to its month.
type YearMonth struct {
	t time.Time
}

// NewYearMonth creates a YearMonth from year and month.
func NewYearMonth(year int, month time.Month) YearMonth {
	return YearMonth{t: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)}
}

func (ym YearMonth) IsZero() bool            { return ym.t.IsZero() }
func (ym YearMonth) Time() time.Time         { return ym.t }
func (ym YearMonth) Before(o YearMonth) bool { return ym.t.Before(o.t) }
func (ym YearMonth) After(o YearMonth) bool  { return ym.t.After(o.t) }
func (ym YearMonth) String() string          { return ym.t.Format(yearMonthLayout) }

func (ym YearMonth) MarshalJSON() ([]byte, error) {
	return json.Marshal(ym.t.Format(yearMonthLayout))
}

func (ym *YearMonth) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if t, err := time.ParseInLocation(yearMonthLayout, s, time.UTC); err == nil {
		ym.t = t
		return nil
	}
	// Lenient fallback: accept a full date and keep only the month.
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid year-month %q", s)
	}
	ym.t = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return nil
}

// Period is a start date with an optional end, used for therapy and episode
// durations.
type Period struct {
	Start Date  `json:"start"`
	End   *Date `json:"end,omitempty"`
}

// IsClosed reports whether the period has an end date.
func (p Period) IsClosed() bool { return p.End != nil }
