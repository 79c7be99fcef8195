package tracing

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsEvents(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	ids := sequentialIDs()
	home := NewLocation("Home", WithLocationNotifier(m))
	shop := NewLocation("Shop", WithLocationNotifier(m))
	a := NewPerson("A", "a@example.com", home, WithIDGenerator(ids), WithPersonNotifier(m))
	b := NewPerson("B", "b@example.com", shop, WithIDGenerator(ids), WithPersonNotifier(m))

	a.Move(shop)
	shop.AddPerson(b.AnonymousID())
	home.RemovePerson("ghost")
	a.CheckIsolation([]string{b.AnonymousID()})
	b.CheckIsolation([]string{a.AnonymousID()})

	require.Equal(t, 1.0, testutil.ToFloat64(m.moves))
	require.Equal(t, 1.0, testutil.ToFloat64(m.contacts))
	require.Equal(t, 3.0, testutil.ToFloat64(m.presence.WithLabelValues("added")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.presence.WithLabelValues("removed")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.presence.WithLabelValues("already_present")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.presence.WithLabelValues("not_present")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.isolation.WithLabelValues("true")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.isolation.WithLabelValues("false")))

	require.Equal(t, 4, testutil.CollectAndCount(m.presence))
}

func TestMetrics_DoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	require.Error(t, err)
}

func TestMultiNotifier_FansOut(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	rec := newRecorder()

	n := MultiNotifier{rec, NewLogNotifier(logger)}
	room := NewLocation("Room", WithLocationNotifier(n))
	p := NewPerson("P", "p@example.com", room, WithIDGenerator(sequentialIDs()), WithPersonNotifier(n))

	room.AddPerson(p.AnonymousID())
	p.CheckIsolation(nil)

	require.Len(t, rec.presence, 2)
	require.False(t, rec.verdicts["P"])

	out := buf.String()
	require.Equal(t, 1, strings.Count(out, "Person added to location"))
	require.Equal(t, 1, strings.Count(out, "Person already present at location"))
	require.Contains(t, out, "Person does NOT need to self isolate")
	require.Contains(t, out, "anonymous_id=id-1")
}
