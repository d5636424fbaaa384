package ops

import (
	"strconv"
	"strings"
	"time"

	"github.com/docketlab/docket/internal/docket"
)

// Direction moves the weekly view one week at a time.
type Direction int

const (
	DirectionPrev Direction = -1
	DirectionNext Direction = 1
)

// WeekDays returns Monday through Friday of the week containing ref. A
// Sunday reference maps to the Monday six days earlier (the week just
// ended), not the upcoming one. Saturday and Sunday are never produced;
// weekend hearings simply do not appear in the weekly view.
func WeekDays(ref docket.Date) [5]docket.Date {
	offset := int(ref.Weekday()) - 1
	if ref.Weekday() == time.Sunday {
		offset = 6
	}
	monday := ref.AddDays(-offset)

	var days [5]docket.Date
	for i := range days {
		days[i] = monday.AddDays(i)
	}
	return days
}

// EventsForDay filters events to those falling on the given calendar day.
// Only year/month/day are compared; time of day and zone are ignored.
func EventsForDay(events []docket.Event, day docket.Date) []docket.Event {
	out := make([]docket.Event, 0)
	for _, e := range events {
		if e.Date.SameDay(day) {
			out = append(out, e)
		}
	}
	return out
}

// PartitionByHalfDay splits a day's events into morning and afternoon. An
// event is morning iff the numeric hour of its start time is strictly below
// 12; an unparseable hour lands in the afternoon. Relative order is
// preserved in both halves; any sorting is layered on by the caller.
func PartitionByHalfDay(dayEvents []docket.Event) (morning, afternoon []docket.Event) {
	morning = make([]docket.Event, 0)
	afternoon = make([]docket.Event, 0)
	for _, e := range dayEvents {
		if hour, ok := startHour(e.StartTime); ok && hour < 12 {
			morning = append(morning, e)
		} else {
			afternoon = append(afternoon, e)
		}
	}
	return morning, afternoon
}

// startHour parses the hour component of an "HH:MM" string.
func startHour(start string) (int, bool) {
	hh, _, found := strings.Cut(start, ":")
	if !found {
		hh = start
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		return 0, false
	}
	return hour, true
}

// Navigate shifts the reference date a whole week in the given direction.
// It does not snap to Monday; the displayed week is recomputed from the
// shifted date via WeekDays.
func Navigate(current docket.Date, dir Direction) docket.Date {
	return current.AddDays(7 * int(dir))
}

// DaySchedule is one weekday column of the weekly view.
type DaySchedule struct {
	Date      docket.Date    `json:"date"`
	Morning   []docket.Event `json:"morning"`
	Afternoon []docket.Event `json:"afternoon"`
}

// WeeklyLayoutInput contains parameters for the WeeklyLayout operation.
type WeeklyLayoutInput struct {
	Reference docket.Date `json:"reference"`
}

// WeeklyLayoutOutput contains the result of the WeeklyLayout operation.
type WeeklyLayoutOutput struct {
	WeekDays [5]docket.Date `json:"week_days"`
	Days     [5]DaySchedule `json:"days"`
}

// WeeklyLayout computes the five-weekday window around the reference date
// and buckets the given events per day into morning and afternoon.
func WeeklyLayout(events []docket.Event, input WeeklyLayoutInput) *WeeklyLayoutOutput {
	days := WeekDays(input.Reference)

	out := &WeeklyLayoutOutput{WeekDays: days}
	for i, day := range days {
		morning, afternoon := PartitionByHalfDay(EventsForDay(events, day))
		out.Days[i] = DaySchedule{
			Date:      day,
			Morning:   morning,
			Afternoon: afternoon,
		}
	}
	return out
}
