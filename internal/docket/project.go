package docket

// Project flattens the case hierarchy into the Event projection consumed by
// the weekly and list views. Output order is Case-major, Hearing-minor, both
// in storage order; no sorting happens here.
//
// The function is pure and total: equal inputs always produce equal outputs,
// and the denormalized fields (case number, description) reflect the case
// values at call time.
func Project(cases []Case) []Event {
	n := 0
	for _, c := range cases {
		n += len(c.Hearings)
	}

	events := make([]Event, 0, n)
	for _, c := range cases {
		for _, h := range c.Hearings {
			events = append(events, ProjectHearing(c, h))
		}
	}
	return events
}

// ProjectHearing builds the Event view of a single hearing of the given
// case. The event shares the hearing's identity.
func ProjectHearing(c Case, h Hearing) Event {
	return Event{
		ID:          h.ID,
		Title:       DisplayTitle(c.Number, h.Title),
		Description: c.Description,
		Notes:       h.Notes,
		Date:        h.Date,
		StartTime:   h.StartTime,
		EndTime:     h.EndTime,
		Status:      h.Status,
		CaseNumber:  c.Number,
		ParentID:    c.ID,
	}
}
