// Package storage provides abstractions for looking up the locations and
// people taking part in a simulation.
package storage

import (
	"errors"

	"github.com/mmynk/contacttrace/internal/tracing"
)

var (
	// ErrNotFound is returned when a lookup key is unknown.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a name or anonymous id is already taken.
	ErrDuplicate = errors.New("already exists")

	// ErrInvalid is returned for entries without a usable key.
	ErrInvalid = errors.New("invalid entry")
)

// Store defines the directory of locations and people for one simulation.
// The store holds references; Locations and Persons keep their own state.
// Implementations must not block, so methods take no context.
type Store interface {
	// AddLocation registers a location under its name.
	// Returns ErrDuplicate if the name is taken.
	AddLocation(loc *tracing.Location) error

	// GetLocation retrieves a location by name.
	GetLocation(name string) (*tracing.Location, error)

	// ListLocations returns all locations in registration order.
	ListLocations() []*tracing.Location

	// AddPerson registers a person under its name and anonymous id.
	// Returns ErrDuplicate if either is taken.
	AddPerson(p *tracing.Person) error

	// GetPerson retrieves a person by display name.
	GetPerson(name string) (*tracing.Person, error)

	// GetPersonByAnonymousID retrieves a person by anonymous id.
	GetPersonByAnonymousID(id string) (*tracing.Person, error)

	// ListPeople returns all people in registration order.
	ListPeople() []*tracing.Person
}
