package ops

import (
	"strconv"
	"strings"

	"github.com/docketlab/docket/internal/docket"
	"github.com/docketlab/docket/internal/errors"
	"github.com/docketlab/docket/internal/store"
)

// HearingFields carries the caller-editable fields of a hearing.
type HearingFields struct {
	Title     string `json:"title"`
	Notes     string `json:"notes,omitempty"`
	Date      string `json:"date"`       // "YYYY-MM-DD"
	StartTime string `json:"start_time"` // "HH:MM"
	EndTime   string `json:"end_time,omitempty"`
	Status    string `json:"status,omitempty"` // defaults to "new"
}

// validate checks required fields and formats, returning the normalized
// hearing (without an id; the store assigns one on add).
func (f HearingFields) validate() (docket.Hearing, error) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return docket.Hearing{}, errors.NewInvalidRequest("hearing title is required")
	}

	date, err := docket.ParseDate(f.Date)
	if err != nil {
		return docket.Hearing{}, errors.NewInvalidRequest(err.Error())
	}

	start := strings.TrimSpace(f.StartTime)
	if start == "" {
		return docket.Hearing{}, errors.NewInvalidRequest("hearing start time is required")
	}
	if !validClock(start) {
		return docket.Hearing{}, errors.NewInvalidRequest("start time must be HH:MM")
	}
	end := strings.TrimSpace(f.EndTime)
	if end != "" && !validClock(end) {
		return docket.Hearing{}, errors.NewInvalidRequest("end time must be HH:MM")
	}

	status, err := docket.ParseStatus(f.Status)
	if err != nil {
		return docket.Hearing{}, errors.NewInvalidRequest(err.Error())
	}

	return docket.Hearing{
		Title:     title,
		Notes:     f.Notes,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}, nil
}

// validClock accepts zero-padded "HH:MM" 24-hour strings. The zero padding
// matters: it is what makes lexicographic time comparisons chronological.
func validClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	hh, err := strconv.Atoi(s[:2])
	if err != nil || hh < 0 || hh > 23 {
		return false
	}
	mm, err := strconv.Atoi(s[3:])
	if err != nil || mm < 0 || mm > 59 {
		return false
	}
	return true
}

// AddHearingInput contains parameters for the AddHearing operation.
type AddHearingInput struct {
	CaseID  string        `json:"case_id"`
	Hearing HearingFields `json:"hearing"`
}

// AddHearingOutput contains the result of the AddHearing operation.
type AddHearingOutput struct {
	Event docket.Event `json:"event"`
}

// AddHearing validates and appends a hearing to a case. The store assigns
// the new hearing's id and republishes the projection.
func AddHearing(st *store.Store, input AddHearingInput) (*AddHearingOutput, error) {
	if strings.TrimSpace(input.CaseID) == "" {
		return nil, errors.NewInvalidRequest("case_id is required")
	}

	h, err := input.Hearing.validate()
	if err != nil {
		return nil, err
	}

	event, ok := st.AddHearing(input.CaseID, h)
	if !ok {
		return nil, errors.NewNotFound("case", input.CaseID)
	}

	return &AddHearingOutput{Event: event}, nil
}

// UpdateHearingInput contains parameters for the UpdateHearing operation.
type UpdateHearingInput struct {
	CaseID    string        `json:"case_id"`
	HearingID string        `json:"hearing_id"`
	Hearing   HearingFields `json:"hearing"`
}

// UpdateHearingOutput contains the result of the UpdateHearing operation.
type UpdateHearingOutput struct {
	Event docket.Event `json:"event"`
}

// UpdateHearing replaces all fields of an existing hearing, keeping its id
// and position within the case.
func UpdateHearing(st *store.Store, input UpdateHearingInput) (*UpdateHearingOutput, error) {
	if strings.TrimSpace(input.CaseID) == "" {
		return nil, errors.NewInvalidRequest("case_id is required")
	}
	if strings.TrimSpace(input.HearingID) == "" {
		return nil, errors.NewInvalidRequest("hearing_id is required")
	}

	h, err := input.Hearing.validate()
	if err != nil {
		return nil, err
	}

	event, ok := st.UpdateHearing(input.CaseID, input.HearingID, h)
	if !ok {
		return nil, errors.NewNotFound("hearing", input.HearingID)
	}

	return &UpdateHearingOutput{Event: event}, nil
}

// RemoveHearingInput contains parameters for the RemoveHearing operation.
type RemoveHearingInput struct {
	HearingID string `json:"hearing_id"`
}

// RemoveHearingOutput contains the result of the RemoveHearing operation.
type RemoveHearingOutput struct {
	Removed   bool   `json:"removed"`
	HearingID string `json:"hearing_id"`
}

// RemoveHearing deletes a hearing by id from whichever case owns it.
func RemoveHearing(st *store.Store, input RemoveHearingInput) (*RemoveHearingOutput, error) {
	if strings.TrimSpace(input.HearingID) == "" {
		return nil, errors.NewInvalidRequest("hearing_id is required")
	}

	if !st.RemoveHearing(input.HearingID) {
		return nil, errors.NewNotFound("hearing", input.HearingID)
	}

	return &RemoveHearingOutput{Removed: true, HearingID: input.HearingID}, nil
}
