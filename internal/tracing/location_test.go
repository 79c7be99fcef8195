package tracing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocation_AddPerson(t *testing.T) {
	rec := newRecorder()
	gym := NewLocation("Ethos", WithLocationNotifier(rec))

	require.Equal(t, OutcomeAdded, gym.AddPerson("abc"))
	require.Equal(t, OutcomeAlreadyPresent, gym.AddPerson("abc"))

	require.True(t, gym.Has("abc"))
	require.Equal(t, 1, gym.Len())

	// One notification per call, even when the call was redundant
	require.Equal(t, []presenceEvent{
		{location: "Ethos", id: "abc", outcome: OutcomeAdded},
		{location: "Ethos", id: "abc", outcome: OutcomeAlreadyPresent},
	}, rec.presence)
}

func TestLocation_RemovePerson(t *testing.T) {
	rec := newRecorder()
	bar := NewLocation("Postgraduate Bar", WithLocationNotifier(rec))
	bar.AddPerson("abc")

	require.Equal(t, OutcomeRemoved, bar.RemovePerson("abc"))
	require.Equal(t, OutcomeNotPresent, bar.RemovePerson("abc"))
	require.Equal(t, OutcomeNotPresent, bar.RemovePerson("never-here"))

	require.False(t, bar.Has("abc"))
	require.Zero(t, bar.Len())
	require.Len(t, rec.presence, 4)
}

func TestLocation_PeoplePresentIsSnapshot(t *testing.T) {
	lib := NewLocation("Library", WithLocationNotifier(NopNotifier{}))
	lib.AddPerson("b")
	lib.AddPerson("a")

	snapshot := lib.PeoplePresent()
	require.Equal(t, []string{"a", "b"}, snapshot.IDs())

	lib.AddPerson("c")
	lib.RemovePerson("a")

	require.True(t, snapshot.Has("a"))
	require.False(t, snapshot.Has("c"))
	require.Equal(t, 2, snapshot.Len())

	// Mutating the returned slice must not reach the location
	ids := lib.PeoplePresent().IDs()
	ids[0] = "zzz"
	require.Equal(t, []string{"b", "c"}, lib.PeoplePresent().IDs())
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		outcome Outcome
		name    string
		changed bool
	}{
		{OutcomeAdded, "added", true},
		{OutcomeAlreadyPresent, "already_present", false},
		{OutcomeRemoved, "removed", true},
		{OutcomeNotPresent, "not_present", false},
		{Outcome(42), "unknown", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.name, tt.outcome.String())
			require.Equal(t, tt.changed, tt.outcome.Changed())
		})
	}
}
