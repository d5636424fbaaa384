package ops

import (
	"sort"
	"strings"

	"github.com/docketlab/docket/internal/docket"
)

// QueryListInput contains parameters for the QueryList operation.
type QueryListInput struct {
	Search string       `json:"search,omitempty"`
	Status StatusFilter `json:"status,omitempty"` // defaults to all
	Sort   SortKey      `json:"sort,omitempty"`   // defaults to date
}

// CaseGroup is one case's bucket of retained events in the list view.
type CaseGroup struct {
	CaseID     string         `json:"case_id"`
	CaseNumber string         `json:"case_number"`
	Case       docket.Case    `json:"case"`
	Hearings   []docket.Event `json:"hearings"`
}

// QueryListOutput contains the result of the QueryList operation.
type QueryListOutput struct {
	Groups []CaseGroup `json:"groups"`
	Total  int         `json:"total"` // retained events across all groups
}

// QueryList computes the list view: filter cases by search text, filter
// events by status and owning case, stable-sort, then group by case in
// first-appearance order of the sorted sequence. A case with no retained
// events is omitted even when it matched the search.
func QueryList(cases []docket.Case, events []docket.Event, input QueryListInput) (*QueryListOutput, error) {
	status, err := ParseStatusFilter(string(input.Status))
	if err != nil {
		return nil, err
	}
	sortKey, err := ParseSortKey(string(input.Sort))
	if err != nil {
		return nil, err
	}

	// Step 1: cases matching the search text.
	search := strings.ToLower(strings.TrimSpace(input.Search))
	matched := make(map[string]docket.Case, len(cases))
	for _, c := range cases {
		if caseMatches(c, search) {
			matched[c.ID] = c
		}
	}

	// Step 2: events whose status passes the filter and whose owning case
	// matched.
	retained := make([]docket.Event, 0, len(events))
	for _, e := range events {
		if status != FilterAll && string(e.Status) != string(status) {
			continue
		}
		if _, ok := matched[e.ParentID]; !ok {
			continue
		}
		retained = append(retained, e)
	}

	// Step 3: stable sort.
	sortEvents(retained, sortKey)

	// Step 4: group by owning case, first-appearance order.
	groupIdx := make(map[string]int, len(matched))
	groups := make([]CaseGroup, 0)
	for _, e := range retained {
		idx, ok := groupIdx[e.ParentID]
		if !ok {
			c := matched[e.ParentID]
			idx = len(groups)
			groupIdx[e.ParentID] = idx
			groups = append(groups, CaseGroup{
				CaseID:     c.ID,
				CaseNumber: c.Number,
				Case:       c,
			})
		}
		groups[idx].Hearings = append(groups[idx].Hearings, e)
	}

	return &QueryListOutput{Groups: groups, Total: len(retained)}, nil
}

// caseMatches reports whether the search string occurs in the case's title,
// description, number, any tag, or any hearing's title or notes. The search
// is case-insensitive; empty matches everything.
func caseMatches(c docket.Case, search string) bool {
	if search == "" {
		return true
	}
	if containsFold(c.Title, search) ||
		containsFold(c.Description, search) ||
		containsFold(c.Number, search) {
		return true
	}
	for _, tag := range c.Tags {
		if containsFold(tag, search) {
			return true
		}
	}
	for _, h := range c.Hearings {
		if containsFold(h.Title, search) || containsFold(h.Notes, search) {
			return true
		}
	}
	return false
}

// containsFold checks substring containment against an already-lowercased
// needle.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// sortEvents stable-sorts events by the given key. Date order tie-breaks on
// the start time string; "HH:MM" zero padding makes the lexicographic
// comparison chronological.
func sortEvents(events []docket.Event, key SortKey) {
	switch key {
	case SortByDate:
		sort.SliceStable(events, func(i, j int) bool {
			if events[i].Date.SameDay(events[j].Date) {
				return events[i].StartTime < events[j].StartTime
			}
			return events[i].Date.Before(events[j].Date)
		})
	case SortByCase:
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].CaseNumber < events[j].CaseNumber
		})
	case SortByTitle:
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Title < events[j].Title
		})
	}
}
