package solver

import (
	"testing"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/legomannetje/fll-scheduler/common/models/input"
)

// TestPostConstraints_BuildsAModel exercises every constraint family
// against a small configuration, including the jury-spacing path that
// only fires when a team has more than one interview. It asserts the
// builder produces a model without panicking and that Model() itself
// succeeds, since the real correctness of the constraint system is
// the CP-SAT engine's job at solve time (covered by driver_test.go).
func TestPostConstraints_BuildsAModel(t *testing.T) {
	cfg := input.Config{
		NumTeams:             6,
		NumTables:            2,
		NumJuryRooms:         2,
		NumTimeslots:         12,
		MatchesPerTeam:       2,
		JurySessionsPerTeam:  2,
		MatchDurationMinutes: 7,
		JuryDurationMinutes:  14,
		MinimumBufferMinutes: 7,
		MaxSolveTimeSeconds:  5,
	}

	tm, err := NewTimeModel(cfg)
	if err != nil {
		t.Fatalf("NewTimeModel: %v", err)
	}

	b := cpmodel.NewCpModelBuilder()
	v := NewVariables(b, cfg)
	postConstraints(b, v, tm, cfg)

	if _, err := b.Model(); err != nil {
		t.Fatalf("Model() returned error after posting constraints: %v", err)
	}
}

func TestSumExpr_EmptyIsNonNil(t *testing.T) {
	expr := sumExpr(nil)
	if expr == nil {
		t.Fatal("sumExpr(nil) returned nil expression")
	}
}

func TestConcatLits_MergesInOrder(t *testing.T) {
	b := cpmodel.NewCpModelBuilder()
	a1, a2, a3 := b.NewBoolVar(), b.NewBoolVar(), b.NewBoolVar()

	merged := concatLits([]cpmodel.BoolVar{a1}, []cpmodel.BoolVar{a2, a3})
	if len(merged) != 3 || merged[0] != a1 || merged[1] != a2 || merged[2] != a3 {
		t.Fatalf("concatLits produced %v, want [a1 a2 a3]", merged)
	}
}
