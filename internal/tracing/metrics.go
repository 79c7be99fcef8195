package tracing

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "contacttrace"

// Metrics counts tracing events. It implements Notifier so it can sit next
// to a LogNotifier in a MultiNotifier.
type Metrics struct {
	presence  *prometheus.CounterVec
	moves     prometheus.Counter
	contacts  prometheus.Counter
	isolation *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		presence: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "presence_changes_total",
			Help:      "Location add/remove calls by classified outcome.",
		}, []string{"outcome"}),
		moves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "moves_total",
			Help:      "Completed person moves.",
		}),
		contacts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "contacts_registered_total",
			Help:      "Identifiers newly added to any contact set.",
		}),
		isolation: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "isolation_checks_total",
			Help:      "Isolation checks by verdict.",
		}, []string{"isolate"}),
	}

	for _, c := range []prometheus.Collector{m.presence, m.moves, m.contacts, m.isolation} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) PresenceChanged(_, _ string, outcome Outcome) {
	m.presence.WithLabelValues(outcome.String()).Inc()
}

func (m *Metrics) Moved(_, _, _ string) {
	m.moves.Inc()
}

func (m *Metrics) ContactsRegistered(_, _ string, added int) {
	m.contacts.Add(float64(added))
}

func (m *Metrics) IsolationChecked(_, _ string, isolate bool) {
	m.isolation.WithLabelValues(strconv.FormatBool(isolate)).Inc()
}
