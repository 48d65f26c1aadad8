package solver

import (
	"testing"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/legomannetje/fll-scheduler/common/models/input"
	"github.com/legomannetje/fll-scheduler/common/models/output"
)

// tinyConfig is small enough for the CP-SAT engine to solve to
// optimality well within the test time budget.
func tinyConfig() input.Config {
	return input.Config{
		NumTeams:             4,
		NumTables:            2,
		NumJuryRooms:         2,
		NumTimeslots:         8,
		MatchesPerTeam:       2,
		JurySessionsPerTeam:  1,
		MatchDurationMinutes: 7,
		JuryDurationMinutes:  7,
		MinimumBufferMinutes: 0,
		MaxSolveTimeSeconds:  5,
		NumSearchWorkers:     1,
	}
}

func TestRunDriver_SolvesTinyFeasibleConfig(t *testing.T) {
	cfg := tinyConfig().WithDefaults()
	tm, err := NewTimeModel(cfg)
	if err != nil {
		t.Fatalf("NewTimeModel: %v", err)
	}

	b := cpmodel.NewCpModelBuilder()
	v := NewVariables(b, cfg)
	postConstraints(b, v, tm, cfg)

	result, err := runDriver(b, v, cfg)
	if err != nil {
		t.Fatalf("runDriver returned error: %v", err)
	}
	if result.Status != output.StatusOptimal && result.Status != output.StatusFeasible {
		t.Fatalf("Status = %v, want Optimal or Feasible", result.Status)
	}
	if result.Schedule == nil {
		t.Fatal("Schedule is nil on a successful solve")
	}

	for _, team := range []int{0, 1, 2, 3} {
		matches, juries := 0, 0
		for _, m := range result.Schedule.Matches {
			if m.Team == team {
				matches++
			}
		}
		for _, j := range result.Schedule.JurySessions {
			if j.Team == team {
				juries++
			}
		}
		if matches != cfg.MatchesPerTeam {
			t.Errorf("team %d has %d matches, want %d", team, matches, cfg.MatchesPerTeam)
		}
		if juries != cfg.JurySessionsPerTeam {
			t.Errorf("team %d has %d jury sessions, want %d", team, juries, cfg.JurySessionsPerTeam)
		}
	}
}

func TestRunDriver_ReportsInfeasible(t *testing.T) {
	cfg := tinyConfig().WithDefaults()
	cfg.NumTimeslots = 2 // far too tight for 4 teams * 2 matches on 2 tables
	cfg.MaxSolveTimeSeconds = 2

	tm, err := NewTimeModel(cfg)
	if err != nil {
		t.Fatalf("NewTimeModel: %v", err)
	}

	b := cpmodel.NewCpModelBuilder()
	v := NewVariables(b, cfg)
	postConstraints(b, v, tm, cfg)

	result, err := runDriver(b, v, cfg)
	if err == nil {
		t.Fatal("expected an error for an infeasible model")
	}
	if result.Status != output.StatusInfeasible {
		t.Fatalf("Status = %v, want Infeasible", result.Status)
	}
}
