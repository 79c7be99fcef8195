// Package scenario describes a scripted day of movements and runs it through
// the tracing service.
//
// Scenarios are YAML documents:
//
//	name: campus day
//	locations:
//	  - Ethos
//	  - Postgraduate Bar
//	people:
//	  - name: Harry
//	    email: hgc19@ic.ac.uk
//	    start: Ethos
//	moves:
//	  - person: Harry
//	    to: Postgraduate Bar
//	infected:
//	  - Harry
package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var ErrInvalidScenario = errors.New("invalid scenario")

var validate = validator.New()

// Scenario is a complete script: who starts where, who goes where, and who
// later tests positive.
type Scenario struct {
	Name      string       `yaml:"name"`
	Locations []string     `yaml:"locations" validate:"required,min=1,unique,dive,required"`
	People    []PersonSpec `yaml:"people" validate:"required,min=1,dive"`
	Moves     []MoveSpec   `yaml:"moves" validate:"dive"`
	Infected  []string     `yaml:"infected" validate:"dive,required"`
}

// PersonSpec declares one person and their starting location.
type PersonSpec struct {
	Name  string `yaml:"name" validate:"required"`
	Email string `yaml:"email" validate:"required,email"`
	Start string `yaml:"start" validate:"required"`
}

// MoveSpec moves one person to a location.
type MoveSpec struct {
	Person string `yaml:"person" validate:"required"`
	To     string `yaml:"to" validate:"required"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks field constraints and that every reference names a
// declared location or person.
func (s *Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	names := lo.Map(s.People, func(p PersonSpec, _ int) string { return p.Name })
	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		return fmt.Errorf("%w: duplicate people %v", ErrInvalidScenario, dups)
	}

	for _, p := range s.People {
		if !lo.Contains(s.Locations, p.Start) {
			return fmt.Errorf("%w: %s starts at unknown location %q", ErrInvalidScenario, p.Name, p.Start)
		}
	}
	for i, m := range s.Moves {
		if !lo.Contains(names, m.Person) {
			return fmt.Errorf("%w: move %d names unknown person %q", ErrInvalidScenario, i+1, m.Person)
		}
		if !lo.Contains(s.Locations, m.To) {
			return fmt.Errorf("%w: move %d goes to unknown location %q", ErrInvalidScenario, i+1, m.To)
		}
	}
	if unknown := lo.Without(s.Infected, names...); len(unknown) > 0 {
		return fmt.Errorf("%w: unknown infected people %v", ErrInvalidScenario, unknown)
	}
	return nil
}
