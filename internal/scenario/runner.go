package scenario

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/mmynk/contacttrace/internal/models"
	"github.com/mmynk/contacttrace/internal/service"
)

// Result is what a scenario run produces.
type Result struct {
	Scenario string
	RunID    string
	Flagged  []string
	Contacts []models.ContactSummary
	Verdicts []models.Verdict
}

// Run replays sc against svc: locations, then people, then moves in order,
// and finally an isolation check for everyone against the infected people.
func Run(svc *service.TracingService, sc *Scenario) (*Result, error) {
	log := svc.Logger().With("scenario", sc.Name)
	log.Info("Scenario starting",
		"locations", len(sc.Locations),
		"people", len(sc.People),
		"moves", len(sc.Moves),
	)

	for _, name := range sc.Locations {
		if _, err := svc.CreateLocation(name); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
	}
	for _, p := range sc.People {
		if _, err := svc.RegisterPerson(p.Name, p.Email, p.Start); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
	}
	for i, m := range sc.Moves {
		if err := svc.Move(m.Person, m.To); err != nil {
			return nil, fmt.Errorf("scenario %q: move %d: %w", sc.Name, i+1, err)
		}
	}

	flagged, err := svc.ResolveFlagged(sc.Infected)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	result := &Result{
		Scenario: sc.Name,
		RunID:    svc.RunID(),
		Flagged:  flagged,
		Contacts: svc.ContactSummaries(),
		Verdicts: svc.CheckIsolation(flagged),
	}

	isolating := lo.CountBy(result.Verdicts, func(v models.Verdict) bool { return v.Isolate })
	log.Info("Scenario finished", "isolating", isolating)
	return result, nil
}
