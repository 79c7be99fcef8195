// Package memory provides an in-process implementation of storage.Store.
package memory

import (
	"fmt"

	"github.com/mmynk/contacttrace/internal/storage"
	"github.com/mmynk/contacttrace/internal/tracing"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store keeps locations and people in maps, remembering insertion order for
// listings. It is not safe for concurrent use.
type Store struct {
	locations     map[string]*tracing.Location
	locationOrder []string

	people      map[string]*tracing.Person
	byAnonID    map[string]*tracing.Person
	peopleOrder []string
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		locations: make(map[string]*tracing.Location),
		people:    make(map[string]*tracing.Person),
		byAnonID:  make(map[string]*tracing.Person),
	}
}

// AddLocation registers loc under its name.
func (s *Store) AddLocation(loc *tracing.Location) error {
	if loc == nil || loc.Name() == "" {
		return fmt.Errorf("location name required: %w", storage.ErrInvalid)
	}
	if _, exists := s.locations[loc.Name()]; exists {
		return fmt.Errorf("location %q: %w", loc.Name(), storage.ErrDuplicate)
	}

	s.locations[loc.Name()] = loc
	s.locationOrder = append(s.locationOrder, loc.Name())
	return nil
}

// GetLocation retrieves a location by name.
func (s *Store) GetLocation(name string) (*tracing.Location, error) {
	loc, ok := s.locations[name]
	if !ok {
		return nil, fmt.Errorf("location %q: %w", name, storage.ErrNotFound)
	}
	return loc, nil
}

// ListLocations returns all locations in registration order.
func (s *Store) ListLocations() []*tracing.Location {
	locs := make([]*tracing.Location, 0, len(s.locationOrder))
	for _, name := range s.locationOrder {
		locs = append(locs, s.locations[name])
	}
	return locs
}

// AddPerson registers p under its display name and anonymous id.
func (s *Store) AddPerson(p *tracing.Person) error {
	if p == nil || p.Name() == "" {
		return fmt.Errorf("person name required: %w", storage.ErrInvalid)
	}
	if _, exists := s.people[p.Name()]; exists {
		return fmt.Errorf("person %q: %w", p.Name(), storage.ErrDuplicate)
	}
	if _, exists := s.byAnonID[p.AnonymousID()]; exists {
		return fmt.Errorf("anonymous id for %q: %w", p.Name(), storage.ErrDuplicate)
	}

	s.people[p.Name()] = p
	s.byAnonID[p.AnonymousID()] = p
	s.peopleOrder = append(s.peopleOrder, p.Name())
	return nil
}

// GetPerson retrieves a person by display name.
func (s *Store) GetPerson(name string) (*tracing.Person, error) {
	p, ok := s.people[name]
	if !ok {
		return nil, fmt.Errorf("person %q: %w", name, storage.ErrNotFound)
	}
	return p, nil
}

// GetPersonByAnonymousID retrieves a person by anonymous id.
func (s *Store) GetPersonByAnonymousID(id string) (*tracing.Person, error) {
	p, ok := s.byAnonID[id]
	if !ok {
		return nil, fmt.Errorf("anonymous id %q: %w", id, storage.ErrNotFound)
	}
	return p, nil
}

// ListPeople returns all people in registration order.
func (s *Store) ListPeople() []*tracing.Person {
	people := make([]*tracing.Person, 0, len(s.peopleOrder))
	for _, name := range s.peopleOrder {
		people = append(people, s.people[name])
	}
	return people
}
