// Package store owns the Case→Hearing hierarchy and its flattened Event
// projection. The cases are the source of truth; the projection is fully
// re-derived after every mutation and published as an immutable snapshot, so
// readers always observe either the fully-old or the fully-new state, never
// a torn one.
package store

import (
	"crypto/rand"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/docketlab/docket/internal/docket"
)

// Snapshot is one immutable, mutually consistent view of the store. Callers
// must not modify its slices.
type Snapshot struct {
	Cases  []docket.Case
	Events []docket.Event
}

// Store holds the current snapshot. Mutations are serialized; reads are
// lock-free against the published snapshot pointer.
type Store struct {
	mu   sync.Mutex // serializes mutations
	snap atomic.Pointer[Snapshot]
}

// New creates a store seeded with the given cases. Cases and hearings
// without ids are assigned fresh ULIDs.
func New(cases []docket.Case) *Store {
	seeded := docket.CloneCases(cases)
	for i := range seeded {
		if seeded[i].ID == "" {
			seeded[i].ID = NewID()
		}
		for j := range seeded[i].Hearings {
			if seeded[i].Hearings[j].ID == "" {
				seeded[i].Hearings[j].ID = NewID()
			}
		}
	}

	s := &Store{}
	s.publish(seeded)
	return s
}

// NewID generates a fresh ULID.
func NewID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// Snapshot returns the current published snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.snap.Load()
}

// Cases returns the cases of the current snapshot.
func (s *Store) Cases() []docket.Case {
	return s.Snapshot().Cases
}

// Events returns the flattened projection of the current snapshot.
func (s *Store) Events() []docket.Event {
	return s.Snapshot().Events
}

// FindCase looks a case up by id in the current snapshot.
func (s *Store) FindCase(caseID string) (docket.Case, bool) {
	for _, c := range s.Cases() {
		if c.ID == caseID {
			return c, true
		}
	}
	return docket.Case{}, false
}

// AddHearing appends a hearing to the identified case. A hearing arriving
// without an id is assigned a fresh ULID; that id becomes both the hearing's
// and the resulting event's identity. Unknown caseID is a no-op reported via
// ok=false.
func (s *Store) AddHearing(caseID string, h docket.Hearing) (docket.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cases := docket.CloneCases(s.Cases())
	for i := range cases {
		if cases[i].ID != caseID {
			continue
		}
		if h.ID == "" {
			h.ID = NewID()
		}
		cases[i].Hearings = append(cases[i].Hearings, h)
		s.publish(cases)
		return docket.ProjectHearing(cases[i], h), true
	}
	return docket.Event{}, false
}

// UpdateHearing replaces all fields of the identified hearing, keeping its
// id and position. Unknown caseID or hearingID is a no-op.
func (s *Store) UpdateHearing(caseID, hearingID string, h docket.Hearing) (docket.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cases := docket.CloneCases(s.Cases())
	for i := range cases {
		if cases[i].ID != caseID {
			continue
		}
		for j := range cases[i].Hearings {
			if cases[i].Hearings[j].ID != hearingID {
				continue
			}
			h.ID = hearingID
			cases[i].Hearings[j] = h
			s.publish(cases)
			return docket.ProjectHearing(cases[i], h), true
		}
		return docket.Event{}, false
	}
	return docket.Event{}, false
}

// RemoveHearing deletes the hearing with the given id from whichever case
// owns it. Unknown hearingID is a no-op.
func (s *Store) RemoveHearing(hearingID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cases := docket.CloneCases(s.Cases())
	for i := range cases {
		for j := range cases[i].Hearings {
			if cases[i].Hearings[j].ID != hearingID {
				continue
			}
			cases[i].Hearings = append(cases[i].Hearings[:j], cases[i].Hearings[j+1:]...)
			s.publish(cases)
			return true
		}
	}
	return false
}

// AddTag appends a trimmed tag to the case's tag sequence. Empty tags and
// exact duplicates (case-sensitive) are no-ops; adding is idempotent.
// Returns false only when the case is unknown.
func (s *Store) AddTag(caseID, tag string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	tag = strings.TrimSpace(tag)

	cases := docket.CloneCases(s.Cases())
	for i := range cases {
		if cases[i].ID != caseID {
			continue
		}
		if tag == "" {
			return true
		}
		for _, existing := range cases[i].Tags {
			if existing == tag {
				return true
			}
		}
		cases[i].Tags = append(cases[i].Tags, tag)
		s.publish(cases)
		return true
	}
	return false
}

// RemoveTag removes the first exact match of tag from the case's tag
// sequence. An absent tag leaves the sequence unchanged. Returns false only
// when the case is unknown.
func (s *Store) RemoveTag(caseID, tag string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cases := docket.CloneCases(s.Cases())
	for i := range cases {
		if cases[i].ID != caseID {
			continue
		}
		for j, existing := range cases[i].Tags {
			if existing == tag {
				cases[i].Tags = append(cases[i].Tags[:j], cases[i].Tags[j+1:]...)
				s.publish(cases)
				return true
			}
		}
		return true
	}
	return false
}

// publish derives the projection and atomically swaps in the new snapshot.
// Caller must hold mu (except during construction).
func (s *Store) publish(cases []docket.Case) {
	s.snap.Store(&Snapshot{
		Cases:  cases,
		Events: docket.Project(cases),
	})
}
