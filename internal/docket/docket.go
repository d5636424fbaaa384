package docket

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// Date is a calendar day. Time of day and zone offset are not significant;
// two Dates compare equal when their year/month/day match.
type Date struct {
	time.Time
}

// NewDate builds a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return Date{t}, nil
}

// SameDay reports calendar-day equality.
func (d Date) SameDay(o Date) bool {
	return d.Year() == o.Year() && d.Month() == o.Month() && d.Day() == o.Day()
}

// AddDays returns the Date n calendar days later (earlier if negative).
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// Before reports whether d falls on an earlier calendar day than o.
func (d Date) Before(o Date) bool {
	if d.SameDay(o) {
		return false
	}
	return d.Time.Before(o.Time)
}

// String formats the date as "YYYY-MM-DD".
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON encodes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Hearing is a scheduled proceeding owned by exactly one Case. It never
// exists independently; all mutations go through the store on behalf of the
// owning Case.
type Hearing struct {
	// ID is a ULID assigned when the hearing first enters the store
	ID string `json:"id"`

	// Title is the hearing's own title, without the case number prefix
	Title string `json:"title"`

	// Notes is free text attached to the hearing
	Notes string `json:"notes,omitempty"`

	// Date is the calendar day of the hearing; time of day lives in
	// StartTime/EndTime
	Date Date `json:"date"`

	// StartTime and EndTime are zero-padded "HH:MM" 24-hour strings
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time,omitempty"`

	Status Status `json:"status"`
}

// Case is a legal matter: the unit of tag ownership and the exclusive owner
// of its hearings.
type Case struct {
	ID string `json:"id"`

	// Number is the human-facing case number. It is a display key, not
	// guaranteed globally unique.
	Number string `json:"number"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	// Tags preserves insertion order and holds no duplicates
	Tags []string `json:"tags,omitempty"`

	Hearings []Hearing `json:"hearings,omitempty"`
}

// Clone returns a deep copy of the case.
func (c Case) Clone() Case {
	out := c
	out.Tags = append([]string(nil), c.Tags...)
	out.Hearings = append([]Hearing(nil), c.Hearings...)
	return out
}

// CloneCases deep-copies a case slice.
func CloneCases(cases []Case) []Case {
	out := make([]Case, len(cases))
	for i, c := range cases {
		out[i] = c.Clone()
	}
	return out
}

// Event is the flattened presentation view of a single Hearing. It shares
// the hearing's identity and carries the owning case's number and
// description, copied at projection time.
type Event struct {
	// ID equals the source hearing's ID
	ID string `json:"id"`

	// Title is "<case number>: <hearing title>"
	Title string `json:"title"`

	// Description is the owning case's description
	Description string `json:"description,omitempty"`

	Notes     string `json:"notes,omitempty"`
	Date      Date   `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time,omitempty"`
	Status    Status `json:"status"`

	// CaseNumber is denormalized from the owning case for sort/filter
	CaseNumber string `json:"case_number"`

	// ParentID is the owning case's ID
	ParentID string `json:"parent_id"`
}

// DisplayTitle builds the event title for a hearing of the given case.
func DisplayTitle(caseNumber, hearingTitle string) string {
	return caseNumber + ": " + hearingTitle
}
