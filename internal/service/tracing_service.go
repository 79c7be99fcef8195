// Package service wires the tracing core to a storage directory and exposes
// name-based operations for drivers.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mmynk/contacttrace/internal/models"
	"github.com/mmynk/contacttrace/internal/storage"
	"github.com/mmynk/contacttrace/internal/tracing"
)

const maxIDAttempts = 8

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrIDExhausted  = errors.New("could not generate an unused anonymous id")
)

var validate = validator.New()

type personInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Location string `validate:"required"`
}

// TracingService runs a contact-tracing simulation over a storage.Store.
// All operations are serialised, so a Move never interleaves with another.
type TracingService struct {
	mu       sync.Mutex
	store    storage.Store
	ids      tracing.IDGenerator
	notifier tracing.Notifier
	logger   *slog.Logger
	runID    string
}

// Option configures a TracingService.
type Option func(*TracingService)

// WithIDGenerator sets the generator for anonymous identifiers.
func WithIDGenerator(g tracing.IDGenerator) Option {
	return func(s *TracingService) { s.ids = g }
}

// WithNotifier sets where locations and people report their events.
func WithNotifier(n tracing.Notifier) Option {
	return func(s *TracingService) { s.notifier = n }
}

// WithLogger sets the base logger. The run id is added to it.
func WithLogger(l *slog.Logger) Option {
	return func(s *TracingService) { s.logger = l }
}

// NewTracingService creates a new TracingService with the given storage backend.
func NewTracingService(store storage.Store, opts ...Option) *TracingService {
	s := &TracingService{
		store: store,
		runID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("run_id", s.runID)
	if s.ids == nil {
		s.ids = tracing.NewRandomIDs()
	}
	if s.notifier == nil {
		s.notifier = tracing.NewLogNotifier(s.logger)
	}
	return s
}

// RunID identifies this simulation in logs.
func (s *TracingService) RunID() string {
	return s.runID
}

// Logger returns the service logger, already tagged with the run id.
func (s *TracingService) Logger() *slog.Logger {
	return s.logger
}

// CreateLocation registers a new, empty location.
func (s *TracingService) CreateLocation(name string) (*tracing.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Debug("CreateLocation request received", "location", name)

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: location name required", ErrInvalidInput)
	}

	loc := tracing.NewLocation(name, tracing.WithLocationNotifier(s.notifier))
	if err := s.store.AddLocation(loc); err != nil {
		s.logger.Error("CreateLocation failed", "location", name, "error", err)
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	s.logger.Info("Location created", "location", name)
	return loc, nil
}

// RegisterPerson creates a person at the named location.
func (s *TracingService) RegisterPerson(name, email, locationName string) (*tracing.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Debug("RegisterPerson request received", "person", name, "location", locationName)

	if err := validate.Struct(personInput{Name: name, Email: email, Location: locationName}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := s.store.GetPerson(name); err == nil {
		return nil, fmt.Errorf("failed to register person: person %q: %w", name, storage.ErrDuplicate)
	}

	loc, err := s.store.GetLocation(locationName)
	if err != nil {
		return nil, fmt.Errorf("failed to register person: %w", err)
	}

	id, err := s.unusedID()
	if err != nil {
		s.logger.Error("RegisterPerson failed", "person", name, "error", err)
		return nil, err
	}

	p := tracing.NewPerson(name, email, loc,
		tracing.WithIDGenerator(tracing.IDGeneratorFunc(func() string { return id })),
		tracing.WithPersonNotifier(s.notifier),
	)
	if err := s.store.AddPerson(p); err != nil {
		// Undo the presence NewPerson recorded; the id is unused elsewhere.
		loc.RemovePerson(id)
		s.logger.Error("RegisterPerson failed", "person", name, "error", err)
		return nil, fmt.Errorf("failed to register person: %w", err)
	}

	s.logger.Info("Person registered", "person", name, "location", locationName, "anonymous_id", id)
	return p, nil
}

// unusedID draws identifiers until one is not held by a registered person.
func (s *TracingService) unusedID() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.ids.NewID()
		_, err := s.store.GetPersonByAnonymousID(id)
		if errors.Is(err, storage.ErrNotFound) {
			return id, nil
		}
		s.logger.Warn("Anonymous id already in use, regenerating", "attempt", attempt+1)
	}
	return "", ErrIDExhausted
}

// Move takes the named person to the named location.
func (s *TracingService) Move(personName, locationName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Debug("Move request received", "person", personName, "location", locationName)

	p, err := s.store.GetPerson(personName)
	if err != nil {
		return fmt.Errorf("failed to move: %w", err)
	}
	to, err := s.store.GetLocation(locationName)
	if err != nil {
		return fmt.Errorf("failed to move: %w", err)
	}

	from := p.Location().Name()
	p.Move(to)

	s.logger.Info("Move completed",
		"person", personName,
		"from", from,
		"to", locationName,
		"contacts", p.ContactCount(),
	)
	return nil
}

// Contacts returns the contact summary of the named person.
func (s *TracingService) Contacts(personName string) (models.ContactSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.store.GetPerson(personName)
	if err != nil {
		return models.ContactSummary{}, fmt.Errorf("failed to get contacts: %w", err)
	}
	return summarize(p), nil
}

// ContactSummaries returns a contact summary for every person in
// registration order.
func (s *TracingService) ContactSummaries() []models.ContactSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	people := s.store.ListPeople()
	summaries := make([]models.ContactSummary, len(people))
	for i, p := range people {
		summaries[i] = summarize(p)
	}
	return summaries
}

func summarize(p *tracing.Person) models.ContactSummary {
	return models.ContactSummary{
		Person:      p.Name(),
		AnonymousID: p.AnonymousID(),
		Contacts:    p.Contacts(),
	}
}

// ResolveFlagged maps the names of infected people to their anonymous ids.
func (s *TracingService) ResolveFlagged(names []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(names))
	for _, name := range names {
		p, err := s.store.GetPerson(name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve flagged person: %w", err)
		}
		ids = append(ids, p.AnonymousID())
	}
	return ids, nil
}

// CheckIsolation returns a verdict for every registered person against the
// flagged anonymous ids.
func (s *TracingService) CheckIsolation(flagged []string) []models.Verdict {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Debug("CheckIsolation request received", "flagged_count", len(flagged))

	people := s.store.ListPeople()
	verdicts := make([]models.Verdict, len(people))
	isolating := 0
	for i, p := range people {
		isolate := p.CheckIsolation(flagged)
		if isolate {
			isolating++
		}
		verdicts[i] = models.Verdict{
			Person:       p.Name(),
			Email:        p.Email(),
			AnonymousID:  p.AnonymousID(),
			Isolate:      isolate,
			Exposures:    p.Exposures(flagged),
			ContactCount: p.ContactCount(),
		}
	}

	s.logger.Info("CheckIsolation completed",
		"people", len(people),
		"isolating", isolating,
	)
	return verdicts
}
