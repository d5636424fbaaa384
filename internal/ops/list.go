package ops

import (
	"github.com/docketlab/docket/internal/docket"
	"github.com/docketlab/docket/internal/store"
)

// ListCasesOutput contains the result of the ListCases operation.
type ListCasesOutput struct {
	Cases []docket.Case `json:"cases"`
	Total int           `json:"total"`
}

// ListCases returns the cases of the current snapshot.
func ListCases(st *store.Store) *ListCasesOutput {
	cases := st.Cases()
	return &ListCasesOutput{Cases: cases, Total: len(cases)}
}

// ListEventsOutput contains the result of the ListEvents operation.
type ListEventsOutput struct {
	Events []docket.Event `json:"events"`
	Total  int            `json:"total"`
}

// ListEvents returns the flattened projection of the current snapshot.
func ListEvents(st *store.Store) *ListEventsOutput {
	events := st.Events()
	return &ListEventsOutput{Events: events, Total: len(events)}
}
