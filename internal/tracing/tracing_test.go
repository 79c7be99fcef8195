package tracing

import "fmt"

type presenceEvent struct {
	location string
	id       string
	outcome  Outcome
}

// recorder collects notifications for assertions.
type recorder struct {
	presence   []presenceEvent
	moves      int
	registered []int
	verdicts   map[string]bool
}

func newRecorder() *recorder {
	return &recorder{verdicts: make(map[string]bool)}
}

func (r *recorder) PresenceChanged(location, id string, outcome Outcome) {
	r.presence = append(r.presence, presenceEvent{location: location, id: id, outcome: outcome})
}

func (r *recorder) Moved(string, string, string) {
	r.moves++
}

func (r *recorder) ContactsRegistered(_, _ string, added int) {
	r.registered = append(r.registered, added)
}

func (r *recorder) IsolationChecked(person, _ string, isolate bool) {
	r.verdicts[person] = isolate
}

// sequentialIDs hands out id-1, id-2, ...
func sequentialIDs() IDGenerator {
	n := 0
	return IDGeneratorFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
}
