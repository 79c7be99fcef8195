package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/mmynk/contacttrace/internal/config"
	"github.com/mmynk/contacttrace/internal/report"
	"github.com/mmynk/contacttrace/internal/scenario"
	"github.com/mmynk/contacttrace/internal/service"
	"github.com/mmynk/contacttrace/internal/storage/memory"
	"github.com/mmynk/contacttrace/internal/tracing"
	"github.com/mmynk/contacttrace/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	if err := run(cfg, os.Stdout); err != nil {
		slog.Error("Simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, out io.Writer) error {
	sc := scenario.Reference()
	if cfg.ScenarioPath != "" {
		loaded, err := scenario.Load(cfg.ScenarioPath)
		if err != nil {
			return err
		}
		sc = loaded
		slog.Info("Scenario loaded", "path", cfg.ScenarioPath)
	}

	reg := prometheus.NewRegistry()
	metrics, err := tracing.NewMetrics(reg)
	if err != nil {
		return err
	}

	svc := service.NewTracingService(memory.New(),
		service.WithIDGenerator(newIDGenerator(cfg)),
		service.WithNotifier(tracing.MultiNotifier{tracing.NewLogNotifier(nil), metrics}),
	)

	res, err := scenario.Run(svc, sc)
	if err != nil {
		return err
	}

	if len(res.Contacts) > 0 {
		if err := report.Contacts(out, res.Contacts[0]); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	if err := report.Verdicts(out, res.Verdicts, report.Options{Color: !cfg.ColorDisabled()}); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, report.Summary(res.Verdicts)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if cfg.MetricsDump {
		if _, err := fmt.Fprintln(out); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return dumpMetrics(out, reg)
	}
	return nil
}

func newIDGenerator(cfg *config.Config) tracing.IDGenerator {
	opts := []tracing.RandomOption{tracing.WithLength(cfg.IDLength)}
	if cfg.IDSeed != 0 {
		seed := uint64(cfg.IDSeed)
		opts = append(opts, tracing.WithSource(rand.NewPCG(seed, seed)))
	}

	var ids tracing.IDGenerator = tracing.NewRandomIDs(opts...)
	if cfg.UniqueIDs {
		ids = tracing.NewUniqueIDs(ids)
	}
	return ids
}

// dumpMetrics writes the gathered metric families in Prometheus text format.
func dumpMetrics(out io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(out, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	return nil
}
