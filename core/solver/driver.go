package solver

import (
	"fmt"
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"

	"github.com/legomannetje/fll-scheduler/common/models/input"
	"github.com/legomannetje/fll-scheduler/common/models/output"
)

// runDriver invokes the CP-SAT-style engine with a time budget and
// worker count, per spec.md section 4.4, and extracts the assignment
// into the abstract output.Schedule / output.Statistics contract.
func runDriver(b *cpmodel.Builder, v *Variables, cfg input.Config) (*output.Result, error) {
	model, err := b.Model()
	if err != nil {
		return nil, fmt.Errorf("%w: instantiating model: %v", ErrSolver, err)
	}

	params := &sppb.SatParameters{
		MaxTimeInSeconds: proto64(cfg.MaxSolveTimeSeconds),
		NumSearchWorkers: proto32(int32(cfg.NumSearchWorkers)),
	}
	if cfg.RandomSeed != 0 {
		params.RandomSeed = proto32(int32(cfg.RandomSeed))
	}

	response, err := cpmodel.SolveCpModelWithParameters(model, params)
	if err != nil {
		return nil, fmt.Errorf("%w: solving model: %v", ErrSolver, err)
	}

	stats := output.Statistics{
		WallTime:         time.Duration(response.GetWallTime() * float64(time.Second)),
		ObjectiveValue:   response.GetObjectiveValue(),
		BestBound:        response.GetBestObjectiveBound(),
		NumConflicts:     response.GetNumConflicts(),
		NumBranches:      response.GetNumBranches(),
		NumSearchWorkers: cfg.NumSearchWorkers,
	}

	switch response.GetStatus() {
	case cmpb.CpSolverStatus_OPTIMAL, cmpb.CpSolverStatus_FEASIBLE:
		status := output.StatusFeasible
		if response.GetStatus() == cmpb.CpSolverStatus_OPTIMAL {
			status = output.StatusOptimal
		}
		schedule := extractSchedule(response, v, cfg)
		return &output.Result{Status: status, Schedule: schedule, Statistics: stats}, nil

	case cmpb.CpSolverStatus_INFEASIBLE:
		return &output.Result{Status: output.StatusInfeasible, Statistics: stats}, fmt.Errorf("%w", ErrInfeasible)

	default: // UNKNOWN
		return &output.Result{Status: output.StatusUnknown, Statistics: stats}, fmt.Errorf("%w", ErrTimeoutWithoutFeasible)
	}
}

// extractSchedule reads every true boolean out of the solver response
// and turns it into the flat triple lists of spec.md section 6.
func extractSchedule(response *cmpb.CpSolverResponse, v *Variables, cfg input.Config) *output.Schedule {
	sched := &output.Schedule{
		TeamTableUsage: make(map[int][]int),
	}

	for t := 0; t < cfg.NumTeams; t++ {
		for s := 0; s < cfg.NumTimeslots; s++ {
			for tb := 0; tb < cfg.NumTables; tb++ {
				if cpmodel.SolutionBooleanValue(response, v.Match(t, s, tb)) {
					sched.Matches = append(sched.Matches, output.MatchAssignment{Team: t, Slot: s, Table: tb})
				}
			}
			for r := 0; r < cfg.NumJuryRooms; r++ {
				if cpmodel.SolutionBooleanValue(response, v.Jury(t, s, r)) {
					sched.JurySessions = append(sched.JurySessions, output.JuryAssignment{Team: t, Slot: s, Room: r})
				}
			}
		}
		for tb := 0; tb < cfg.NumTables; tb++ {
			if cpmodel.SolutionBooleanValue(response, v.UsesTable(t, tb)) {
				sched.TeamTableUsage[t] = append(sched.TeamTableUsage[t], tb)
			}
		}
	}

	return sched
}

func proto64(v float64) *float64 { return &v }
func proto32(v int32) *int32     { return &v }
