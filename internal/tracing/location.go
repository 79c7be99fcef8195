package tracing

import (
	"slices"

	"github.com/samber/lo"
)

// Presence is an immutable snapshot of the identifiers at a Location.
type Presence struct {
	ids map[string]struct{}
}

// Has reports whether id was present when the snapshot was taken.
func (p Presence) Has(id string) bool {
	_, ok := p.ids[id]
	return ok
}

// Len returns the number of identifiers in the snapshot.
func (p Presence) Len() int {
	return len(p.ids)
}

// IDs returns the identifiers in sorted order.
func (p Presence) IDs() []string {
	ids := lo.Keys(p.ids)
	slices.Sort(ids)
	return ids
}

// Location tracks which anonymous identifiers are currently present.
type Location struct {
	name     string
	present  map[string]struct{}
	notifier Notifier
}

// LocationOption configures a Location.
type LocationOption func(*Location)

// WithLocationNotifier sets where presence outcomes are reported.
func WithLocationNotifier(n Notifier) LocationOption {
	return func(l *Location) {
		if n != nil {
			l.notifier = n
		}
	}
}

// NewLocation creates a named location with nobody present.
func NewLocation(name string, opts ...LocationOption) *Location {
	l := &Location{
		name:     name,
		present:  make(map[string]struct{}),
		notifier: defaultNotifier,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Name returns the display name given at construction.
func (l *Location) Name() string {
	return l.name
}

// AddPerson marks id as present. Adding an id twice is reported as
// OutcomeAlreadyPresent and leaves membership unchanged.
func (l *Location) AddPerson(id string) Outcome {
	outcome := OutcomeAlreadyPresent
	if _, ok := l.present[id]; !ok {
		l.present[id] = struct{}{}
		outcome = OutcomeAdded
	}
	l.notifier.PresenceChanged(l.name, id, outcome)
	return outcome
}

// RemovePerson marks id as absent. Removing an absent id is reported as
// OutcomeNotPresent.
func (l *Location) RemovePerson(id string) Outcome {
	outcome := OutcomeNotPresent
	if _, ok := l.present[id]; ok {
		delete(l.present, id)
		outcome = OutcomeRemoved
	}
	l.notifier.PresenceChanged(l.name, id, outcome)
	return outcome
}

// PeoplePresent returns a snapshot of the current membership. Later changes
// to the location are not reflected in it.
func (l *Location) PeoplePresent() Presence {
	ids := make(map[string]struct{}, len(l.present))
	for id := range l.present {
		ids[id] = struct{}{}
	}
	return Presence{ids: ids}
}

// Has reports whether id is currently present.
func (l *Location) Has(id string) bool {
	_, ok := l.present[id]
	return ok
}

// Len returns the number of identifiers currently present.
func (l *Location) Len() int {
	return len(l.present)
}
