package tracing

import "log/slog"

// Outcome classifies the result of a presence change at a Location.
type Outcome int

const (
	// OutcomeAdded means the identifier was not present and has been added.
	OutcomeAdded Outcome = iota
	// OutcomeAlreadyPresent means the add was redundant.
	OutcomeAlreadyPresent
	// OutcomeRemoved means the identifier was present and has been removed.
	OutcomeRemoved
	// OutcomeNotPresent means the remove had nothing to do.
	OutcomeNotPresent
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeAlreadyPresent:
		return "already_present"
	case OutcomeRemoved:
		return "removed"
	case OutcomeNotPresent:
		return "not_present"
	default:
		return "unknown"
	}
}

// Changed reports whether the operation altered membership.
func (o Outcome) Changed() bool {
	return o == OutcomeAdded || o == OutcomeRemoved
}

// Notifier receives the status events emitted by Locations and Persons.
type Notifier interface {
	// PresenceChanged is called once per Location.AddPerson or Location.RemovePerson.
	PresenceChanged(location, id string, outcome Outcome)

	// Moved is called once per completed Person.Move.
	Moved(id, from, to string)

	// ContactsRegistered is called once per Person.RegisterContacts with the
	// number of identifiers that were new to the contact set.
	ContactsRegistered(id, location string, added int)

	// IsolationChecked is called once per Person.CheckIsolation.
	IsolationChecked(person, id string, isolate bool)
}

// NopNotifier discards every event.
type NopNotifier struct{}

func (NopNotifier) PresenceChanged(string, string, Outcome) {}
func (NopNotifier) Moved(string, string, string) {}
func (NopNotifier) ContactsRegistered(string, string, int) {}
func (NopNotifier) IsolationChecked(string, string, bool) {}

// LogNotifier writes one human-readable slog record per event.
// A nil Logger means slog.Default() at the time of the event.
type LogNotifier struct {
	Logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier writing to logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) logger() *slog.Logger {
	if n.Logger == nil {
		return slog.Default()
	}
	return n.Logger
}

// PresenceChanged logs the classified add or remove.
func (n *LogNotifier) PresenceChanged(location, id string, outcome Outcome) {
	var msg string
	switch outcome {
	case OutcomeAdded:
		msg = "Person added to location"
	case OutcomeAlreadyPresent:
		msg = "Person already present at location"
	case OutcomeRemoved:
		msg = "Person removed from location"
	case OutcomeNotPresent:
		msg = "Person not at location"
	default:
		msg = "Presence changed"
	}
	n.logger().Info(msg,
		"location", location,
		"anonymous_id", id,
		"outcome", outcome.String(),
	)
}

// Moved logs a completed move at debug level.
func (n *LogNotifier) Moved(id, from, to string) {
	n.logger().Debug("Person moved", "anonymous_id", id, "from", from, "to", to)
}

// ContactsRegistered logs contact registration at debug level.
func (n *LogNotifier) ContactsRegistered(id, location string, added int) {
	n.logger().Debug("Contacts registered",
		"anonymous_id", id,
		"location", location,
		"new_contacts", added,
	)
}

// IsolationChecked logs the verdict for one person.
func (n *LogNotifier) IsolationChecked(person, id string, isolate bool) {
	if isolate {
		n.logger().Info("Person needs to self isolate", "person", person, "anonymous_id", id)
		return
	}
	n.logger().Info("Person does NOT need to self isolate", "person", person, "anonymous_id", id)
}

// MultiNotifier forwards every event to each notifier in order.
type MultiNotifier []Notifier

func (m MultiNotifier) PresenceChanged(location, id string, outcome Outcome) {
	for _, n := range m {
		n.PresenceChanged(location, id, outcome)
	}
}

func (m MultiNotifier) Moved(id, from, to string) {
	for _, n := range m {
		n.Moved(id, from, to)
	}
}

func (m MultiNotifier) ContactsRegistered(id, location string, added int) {
	for _, n := range m {
		n.ContactsRegistered(id, location, added)
	}
}

func (m MultiNotifier) IsolationChecked(person, id string, isolate bool) {
	for _, n := range m {
		n.IsolationChecked(person, id, isolate)
	}
}

var defaultNotifier Notifier = &LogNotifier{}
