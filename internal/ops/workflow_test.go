package ops

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/docketlab/docket/internal/docket"
	"github.com/docketlab/docket/internal/errors"
	"github.com/docketlab/docket/internal/store"
)

// TestFullWorkflow exercises the complete docket lifecycle:
// add → week → tag → query → update → export → remove → remove again (not found)
func TestFullWorkflow(t *testing.T) {
	st := store.New([]docket.Case{
		{ID: "case-a", Number: "CV-1001", Title: "Alder v. Birch", Description: "Contract dispute."},
	})

	// 1. Add a hearing
	addOut, err := AddHearing(st, AddHearingInput{
		CaseID: "case-a",
		Hearing: HearingFields{
			Title:     "Initial conference",
			Date:      "2026-03-02",
			StartTime: "09:00",
			EndTime:   "09:30",
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, addOut.Event.ID)
	require.Equal(t, "CV-1001: Initial conference", addOut.Event.Title)
	id := addOut.Event.ID

	// 2. Weekly view - the hearing lands Monday morning
	week := WeeklyLayout(st.Events(), WeeklyLayoutInput{Reference: docket.NewDate(2026, time.March, 4)})
	require.Equal(t, "2026-03-02", week.WeekDays[0].String())
	require.Len(t, week.Days[0].Morning, 1)
	require.Equal(t, id, week.Days[0].Morning[0].ID)

	// 3. Tag the case
	tagOut, err := AddTag(st, AddTagInput{CaseID: "case-a", Tag: "civil"})
	require.NoError(t, err)
	require.Equal(t, []string{"civil"}, tagOut.Tags)
	require.NotNil(t, tagOut.Color)

	// 4. Query by the tag
	queryOut, err := QueryList(st.Cases(), st.Events(), QueryListInput{Search: "civil"})
	require.NoError(t, err)
	require.Len(t, queryOut.Groups, 1)
	require.Equal(t, "case-a", queryOut.Groups[0].CaseID)
	require.Equal(t, 1, queryOut.Total)

	// 5. Reschedule the hearing
	updOut, err := UpdateHearing(st, UpdateHearingInput{
		CaseID:    "case-a",
		HearingID: id,
		Hearing: HearingFields{
			Title:     "Initial conference",
			Date:      "2026-03-03",
			StartTime: "11:00",
			Status:    "rescheduled",
		},
	})
	require.NoError(t, err)
	require.Equal(t, id, updOut.Event.ID)
	require.Equal(t, docket.StatusRescheduled, updOut.Event.Status)

	// Rescheduled hearings disappear from the cancelled filter
	queryOut, err = QueryList(st.Cases(), st.Events(), QueryListInput{Status: FilterCancelled})
	require.NoError(t, err)
	require.Empty(t, queryOut.Groups)

	// 6. Export the schedule
	exportPath := filepath.Join(t.TempDir(), "docket.ics")
	exportOut, err := ExportICS(st.Events(), ExportICSInput{Path: exportPath})
	require.NoError(t, err)
	require.Equal(t, 1, exportOut.Count)

	// 7. Remove the hearing
	rmOut, err := RemoveHearing(st, RemoveHearingInput{HearingID: id})
	require.NoError(t, err)
	require.True(t, rmOut.Removed)
	require.Empty(t, st.Events())

	// 8. Remove again - not found
	_, err = RemoveHearing(st, RemoveHearingInput{HearingID: id})
	require.Error(t, err)
	var dErr *errors.DocketError
	require.ErrorAs(t, err, &dErr)
	require.Equal(t, errors.ErrNotFound, dErr.Code)
}
