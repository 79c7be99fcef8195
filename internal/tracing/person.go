package tracing

import (
	"slices"

	"github.com/samber/lo"
)

// Person is a mobile identity that accumulates contacts as it moves.
//
// The Location a Person points to is shared with other Persons and is never
// owned by it.
type Person struct {
	name        string
	email       string
	anonymousID string
	location    *Location
	contacts    map[string]struct{}
	notifier    Notifier
}

// PersonOption configures a Person.
type PersonOption func(*personConfig)

type personConfig struct {
	ids      IDGenerator
	notifier Notifier
}

// WithIDGenerator sets the source of the person's anonymous identifier.
func WithIDGenerator(g IDGenerator) PersonOption {
	return func(c *personConfig) {
		if g != nil {
			c.ids = g
		}
	}
}

// WithPersonNotifier sets where moves, contact registration and isolation
// verdicts are reported.
func WithPersonNotifier(n Notifier) PersonOption {
	return func(c *personConfig) {
		if n != nil {
			c.notifier = n
		}
	}
}

// NewPerson creates a person at start. The person's anonymous identifier is
// added to start before NewPerson returns.
func NewPerson(name, email string, start *Location, opts ...PersonOption) *Person {
	cfg := personConfig{
		ids:      defaultIDs,
		notifier: defaultNotifier,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Person{
		name:        name,
		email:       email,
		anonymousID: cfg.ids.NewID(),
		location:    start,
		contacts:    make(map[string]struct{}),
		notifier:    cfg.notifier,
	}
	p.location.AddPerson(p.anonymousID)
	return p
}

// Name returns the person's display name.
func (p *Person) Name() string {
	return p.name
}

// Email returns the person's contact address.
func (p *Person) Email() string {
	return p.email
}

// AnonymousID returns the identifier shared in place of the person's name.
func (p *Person) AnonymousID() string {
	return p.anonymousID
}

// Location returns the person's current location.
func (p *Person) Location() *Location {
	return p.location
}

// Move takes the person to another location. Contacts are registered both
// before leaving and after arriving, so the person is recorded against the
// people at the origin and the people already waiting at the destination.
func (p *Person) Move(to *Location) {
	from := p.location

	p.RegisterContacts()
	from.RemovePerson(p.anonymousID)
	p.location = to
	to.AddPerson(p.anonymousID)
	p.RegisterContacts()

	p.notifier.Moved(p.anonymousID, from.Name(), to.Name())
}

// RegisterContacts adds everyone at the current location to the contact set.
// The person's own identifier is never a contact.
func (p *Person) RegisterContacts() {
	added := 0
	for _, id := range p.location.PeoplePresent().IDs() {
		if id == p.anonymousID {
			continue
		}
		if _, ok := p.contacts[id]; !ok {
			p.contacts[id] = struct{}{}
			added++
		}
	}

	p.notifier.ContactsRegistered(p.anonymousID, p.location.Name(), added)
}

// CheckIsolation reports whether any flagged identifier is among the
// person's contacts.
func (p *Person) CheckIsolation(flagged []string) bool {
	isolate := lo.SomeBy(flagged, p.HasContact)
	p.notifier.IsolationChecked(p.name, p.anonymousID, isolate)
	return isolate
}

// Exposures returns the flagged identifiers the person has been in contact
// with, sorted and without duplicates.
func (p *Person) Exposures(flagged []string) []string {
	exposures := lo.Uniq(lo.Filter(flagged, func(id string, _ int) bool {
		return p.HasContact(id)
	}))
	slices.Sort(exposures)
	return exposures
}

// HasContact reports whether id is in the contact set.
func (p *Person) HasContact(id string) bool {
	_, ok := p.contacts[id]
	return ok
}

// Contacts returns the contact set in sorted order.
func (p *Person) Contacts() []string {
	ids := lo.Keys(p.contacts)
	slices.Sort(ids)
	return ids
}

// ContactCount returns the size of the contact set.
func (p *Person) ContactCount() int {
	return len(p.contacts)
}
