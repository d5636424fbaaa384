package main

import (
	"time"

	"github.com/docketlab/docket/internal/docket"
)

// sampleCases builds the built-in demo docket used when no seed file is
// configured. Dates are placed around the current week so the weekly view
// has content out of the box.
func sampleCases() []docket.Case {
	monday := mondayOfCurrentWeek()

	return []docket.Case{
		{
			ID:          "case-hernandez",
			Number:      "CV-2025-0142",
			Title:       "Hernandez v. Atlas Freight Co.",
			Description: "Personal injury claim arising from a warehouse accident.\n\n**Posture:** discovery closing; summary judgment briefing expected.",
			Tags:        []string{"civil", "discovery"},
			Hearings: []docket.Hearing{
				{
					ID:        "hrg-hernandez-1",
					Title:     "Motion to Compel",
					Notes:     "Plaintiff's third set of interrogatories.",
					Date:      monday.AddDays(1),
					StartTime: "09:30",
					EndTime:   "10:30",
					Status:    docket.StatusNew,
				},
				{
					ID:        "hrg-hernandez-2",
					Title:     "Status Conference",
					Date:      monday.AddDays(3),
					StartTime: "14:00",
					EndTime:   "14:30",
					Status:    docket.StatusRescheduled,
				},
			},
		},
		{
			ID:          "case-osterman",
			Number:      "CR-2025-0871",
			Title:       "State v. Osterman",
			Description: "Felony fraud prosecution; co-defendant severed.",
			Tags:        []string{"criminal"},
			Hearings: []docket.Hearing{
				{
					ID:        "hrg-osterman-1",
					Title:     "Arraignment",
					Date:      monday,
					StartTime: "08:45",
					Status:    docket.StatusNew,
				},
				{
					ID:        "hrg-osterman-2",
					Title:     "Bail Review",
					Notes:     "Defense to submit updated surety package.",
					Date:      monday.AddDays(4),
					StartTime: "11:00",
					EndTime:   "11:45",
					Status:    docket.StatusCancelled,
				},
			},
		},
		{
			ID:          "case-willow",
			Number:      "PR-2025-0033",
			Title:       "In re Willow Estate",
			Description: "Contested probate; two competing wills.",
			Tags:        []string{"probate", "contested"},
			Hearings: []docket.Hearing{
				{
					ID:        "hrg-willow-1",
					Title:     "Will Contest Hearing",
					Date:      monday.AddDays(2),
					StartTime: "13:15",
					EndTime:   "16:00",
					Status:    docket.StatusNew,
				},
			},
		},
	}
}

// mondayOfCurrentWeek mirrors the weekly engine's week-start rule.
func mondayOfCurrentWeek() docket.Date {
	today := docket.DateOf(time.Now())
	offset := int(today.Weekday()) - 1
	if today.Weekday() == time.Sunday {
		offset = 6
	}
	return today.AddDays(-offset)
}
