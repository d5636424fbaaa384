// Package ops exposes the engine's operation surface to presentation
// collaborators (CLI, web, MCP). Each operation validates its input, calls
// into the store or one of the pure engines, and returns a typed output.
package ops

import (
	"fmt"
	"strings"

	"github.com/docketlab/docket/internal/errors"
)

// SortKey selects the list view's sort order.
type SortKey string

const (
	SortByDate  SortKey = "date"
	SortByCase  SortKey = "case"
	SortByTitle SortKey = "title"
)

// ParseSortKey validates a sort key string. Empty defaults to date order.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.TrimSpace(s)) {
	case "", SortByDate:
		return SortByDate, nil
	case SortByCase:
		return SortByCase, nil
	case SortByTitle:
		return SortByTitle, nil
	}
	return "", errors.NewInvalidRequest(fmt.Sprintf("invalid sort key %q (want date, case or title)", s))
}

// StatusFilter narrows the list view to one hearing status, or "all".
type StatusFilter string

const (
	FilterAll         StatusFilter = "all"
	FilterNew         StatusFilter = "new"
	FilterRescheduled StatusFilter = "rescheduled"
	FilterCancelled   StatusFilter = "cancelled"
)

// ParseStatusFilter validates a status filter string. Empty defaults to all.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(strings.TrimSpace(s)) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterNew:
		return FilterNew, nil
	case FilterRescheduled:
		return FilterRescheduled, nil
	case FilterCancelled:
		return FilterCancelled, nil
	}
	return "", errors.NewInvalidRequest(fmt.Sprintf("invalid status filter %q (want all, new, rescheduled or cancelled)", s))
}

// ExpandSet tracks which cases or hearings a caller has expanded. It is
// session state held by the presentation layer; toggling has no effect on
// filtering, sorting or grouping.
type ExpandSet map[string]struct{}

// NewExpandSet creates an empty expand set.
func NewExpandSet() ExpandSet {
	return make(ExpandSet)
}

// Toggle flips the expanded state of id and reports the new state.
func (e ExpandSet) Toggle(id string) bool {
	if _, ok := e[id]; ok {
		delete(e, id)
		return false
	}
	e[id] = struct{}{}
	return true
}

// Expanded reports whether id is currently expanded.
func (e ExpandSet) Expanded(id string) bool {
	_, ok := e[id]
	return ok
}
