// Package solver implements the scheduling core of spec.md: Time
// Model, Variable Space, Constraint Builder, and Solver Driver. It is
// strictly one-shot (build -> post -> solve -> extract, spec.md
// section 2) with no I/O and no concurrency beyond what the
// underlying CP-SAT engine does internally.
package solver

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	"github.com/google/uuid"
	hclog "github.com/hashicorp/go-hclog"

	"github.com/legomannetje/fll-scheduler/common/models/input"
	"github.com/legomannetje/fll-scheduler/common/models/output"
)

// Solve builds a fresh CP-SAT-style model from cfg, posts every
// constraint, invokes the solver, and returns the structured result.
// Every call allocates a fresh model; there is no shared or mutable
// state between calls (spec.md section 5).
func Solve(cfg input.Config, logger hclog.Logger) (*output.Result, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	cfg = cfg.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := checkFeasibilityPreconditions(cfg); err != nil {
		return nil, err
	}

	tm, err := NewTimeModel(cfg)
	if err != nil {
		return nil, err
	}

	logger.Debug("building model", "teams", cfg.NumTeams, "tables", cfg.NumTables,
		"jury_rooms", cfg.NumJuryRooms, "timeslots", cfg.NumTimeslots,
		"jury_span", tm.JurySpan, "buffer_span", tm.BufferSpan, "match_gap", tm.MatchGap)

	builder := cpmodel.NewCpModelBuilder()
	vars := NewVariables(builder, cfg)

	logger.Debug("posting constraints")
	postConstraints(builder, vars, tm, cfg)

	logger.Info("solving", "max_solve_time_seconds", cfg.MaxSolveTimeSeconds, "num_search_workers", cfg.NumSearchWorkers)
	result, err := runDriver(builder, vars, cfg)
	if result != nil {
		result.RunID = uuid.NewString()
	}
	if err != nil {
		if result != nil {
			logger.Warn("solve did not return a usable schedule", "status", result.Status.String(), "error", err)
		} else {
			logger.Error("solver engine failed", "error", err)
		}
		return result, err
	}

	logger.Info("solved", "status", result.Status.String(),
		"wall_time", result.Statistics.WallTime, "conflicts", result.Statistics.NumConflicts,
		"branches", result.Statistics.NumBranches, "objective", result.Statistics.ObjectiveValue)

	return result, nil
}

// checkFeasibilityPreconditions is the fast-abort check of spec.md
// section 3: teams*matches_per_team must not exceed slots*tables, and
// teams*jury_sessions_per_team must not exceed slots*jury_rooms. It
// runs before any variable is allocated.
func checkFeasibilityPreconditions(cfg input.Config) error {
	matchDemand := cfg.NumTeams * cfg.MatchesPerTeam
	matchCapacity := cfg.NumTimeslots * cfg.NumTables
	if matchDemand > matchCapacity {
		return newCapacityError("match", matchDemand, matchCapacity)
	}

	juryDemand := cfg.NumTeams * cfg.JurySessionsPerTeam
	juryCapacity := cfg.NumTimeslots * cfg.NumJuryRooms
	if juryDemand > juryCapacity {
		return newCapacityError("jury", juryDemand, juryCapacity)
	}

	return nil
}

// Describe renders a short human-readable summary of a config, used
// by the CLI before committing to a (possibly long) solve.
func Describe(cfg input.Config) string {
	return fmt.Sprintf(
		"%d teams, %d tables, %d jury rooms, %d timeslots; %d matches/team, %d jury sessions/team",
		cfg.NumTeams, cfg.NumTables, cfg.NumJuryRooms, cfg.NumTimeslots,
		cfg.MatchesPerTeam, cfg.JurySessionsPerTeam,
	)
}
