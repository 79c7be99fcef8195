package scenario

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mmynk/contacttrace/internal/service"
	"github.com/mmynk/contacttrace/internal/storage/memory"
	"github.com/mmynk/contacttrace/internal/tracing"
)

const campusYAML = `
name: short day
locations:
  - Library
  - Cafe
people:
  - name: Ada
    email: ada@example.com
    start: Library
  - name: Bo
    email: bo@example.com
    start: Cafe
moves:
  - person: Ada
    to: Cafe
infected:
  - Bo
`

func newService() *service.TracingService {
	return service.NewTracingService(memory.New(), service.WithNotifier(tracing.NopNotifier{}))
}

func TestParse(t *testing.T) {
	sc, err := Parse([]byte(campusYAML))
	require.NoError(t, err)
	require.Equal(t, "short day", sc.Name)
	require.Equal(t, []string{"Library", "Cafe"}, sc.Locations)
	require.Equal(t, PersonSpec{Name: "Ada", Email: "ada@example.com", Start: "Library"}, sc.People[0])
	require.Equal(t, []MoveSpec{{Person: "Ada", To: "Cafe"}}, sc.Moves)
	require.Equal(t, []string{"Bo"}, sc.Infected)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "not yaml", yaml: "locations: [unterminated"},
		{name: "no locations", yaml: "people: [{name: A, email: a@example.com, start: X}]"},
		{name: "bad email", yaml: "locations: [X]\npeople: [{name: A, email: nope, start: X}]"},
		{name: "unknown start", yaml: "locations: [X]\npeople: [{name: A, email: a@example.com, start: Y}]"},
		{name: "duplicate location", yaml: "locations: [X, X]\npeople: [{name: A, email: a@example.com, start: X}]"},
		{name: "duplicate person", yaml: "locations: [X]\npeople: [{name: A, email: a@example.com, start: X}, {name: A, email: b@example.com, start: X}]"},
		{name: "move of unknown person", yaml: "locations: [X]\npeople: [{name: A, email: a@example.com, start: X}]\nmoves: [{person: B, to: X}]"},
		{name: "move to unknown location", yaml: "locations: [X]\npeople: [{name: A, email: a@example.com, start: X}]\nmoves: [{person: A, to: Y}]"},
		{name: "unknown infected", yaml: "locations: [X]\npeople: [{name: A, email: a@example.com, start: X}]\ninfected: [Z]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.yaml")
	require.NoError(t, os.WriteFile(path, []byte(campusYAML), 0o600))

	sc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, sc.People, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestReference_IsValid(t *testing.T) {
	require.NoError(t, Reference().Validate())
}

func TestRun_Reference(t *testing.T) {
	svc := newService()
	res, err := Run(svc, Reference())
	require.NoError(t, err)

	require.Equal(t, svc.RunID(), res.RunID)
	require.Len(t, res.Flagged, 1)

	verdicts := make(map[string]bool)
	for _, v := range res.Verdicts {
		verdicts[v.Person] = v.Isolate
	}
	require.Equal(t, map[string]bool{
		"Harry":   true,
		"Joe":     false,
		"Luca":    false,
		"William": true,
	}, verdicts)

	ids := make(map[string]string)
	for _, c := range res.Contacts {
		ids[c.Person] = c.AnonymousID
	}
	harry := res.Contacts[0]
	require.Equal(t, "Harry", harry.Person)
	require.ElementsMatch(t, []string{ids["Luca"], ids["Joe"]}, harry.Contacts)
	require.NotContains(t, harry.Contacts, harry.AnonymousID)
	require.Equal(t, ids["Luca"], res.Flagged[0])
}

func TestRun_ParsedScenario(t *testing.T) {
	sc, err := Parse([]byte(campusYAML))
	require.NoError(t, err)

	res, err := Run(newService(), sc)
	require.NoError(t, err)
	require.Len(t, res.Verdicts, 2)
	require.True(t, res.Verdicts[0].Isolate, "Ada walked into the cafe where Bo was")
	require.False(t, res.Verdicts[1].Isolate)
}

func TestRun_LogsThroughServiceLogger(t *testing.T) {
	sc, err := Parse([]byte(campusYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	svc := service.NewTracingService(memory.New(),
		service.WithNotifier(tracing.NopNotifier{}),
		service.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
	)
	_, err = Run(svc, sc)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "Scenario starting")
	require.Contains(t, out, "Scenario finished")
	require.Contains(t, out, `scenario="short day"`)
	require.Contains(t, out, "isolating=1")
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if strings.Contains(line, "Scenario ") {
			require.Contains(t, line, "run_id="+svc.RunID())
		}
	}
}

func TestRun_FailsOnServiceError(t *testing.T) {
	// Skips validation, so the service is the one to reject the bad email.
	sc := &Scenario{
		Name:      "broken",
		Locations: []string{"X"},
		People:    []PersonSpec{{Name: "A", Email: "nope", Start: "X"}},
	}
	_, err := Run(newService(), sc)
	require.ErrorIs(t, err, service.ErrInvalidInput)
}
