package solver

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/legomannetje/fll-scheduler/common/models/input"
)

// Variables is the materialized decision-variable space of spec.md
// section 4.2: one boolean family indexed by (team, slot, table), one
// indexed by (team, slot, jury-room), and an auxiliary boolean family
// indexed by (team, table). Allocation order is team-major, then
// slot, then resource — deterministic given a fixed seed, and stated
// in spec.md section 4.3 as the implicit branching heuristic.
type Variables struct {
	numTeams, numSlots, numTables, numRooms int

	match     [][][]cpmodel.BoolVar
	jury      [][][]cpmodel.BoolVar
	usesTable [][]cpmodel.BoolVar
}

// NewVariables allocates every boolean in the variable space against
// the given model builder.
func NewVariables(b *cpmodel.Builder, cfg input.Config) *Variables {
	v := &Variables{
		numTeams:  cfg.NumTeams,
		numSlots:  cfg.NumTimeslots,
		numTables: cfg.NumTables,
		numRooms:  cfg.NumJuryRooms,
	}

	v.match = make([][][]cpmodel.BoolVar, v.numTeams)
	v.jury = make([][][]cpmodel.BoolVar, v.numTeams)
	v.usesTable = make([][]cpmodel.BoolVar, v.numTeams)

	for t := 0; t < v.numTeams; t++ {
		v.match[t] = make([][]cpmodel.BoolVar, v.numSlots)
		v.jury[t] = make([][]cpmodel.BoolVar, v.numSlots)

		for s := 0; s < v.numSlots; s++ {
			v.match[t][s] = make([]cpmodel.BoolVar, v.numTables)
			for tb := 0; tb < v.numTables; tb++ {
				v.match[t][s][tb] = b.NewBoolVar()
			}

			v.jury[t][s] = make([]cpmodel.BoolVar, v.numRooms)
			for r := 0; r < v.numRooms; r++ {
				v.jury[t][s][r] = b.NewBoolVar()
			}
		}

		v.usesTable[t] = make([]cpmodel.BoolVar, v.numTables)
		for tb := 0; tb < v.numTables; tb++ {
			v.usesTable[t][tb] = b.NewBoolVar()
		}
	}

	return v
}

// Match returns the handle for "team plays on table starting at slot".
func (v *Variables) Match(team, slot, table int) cpmodel.BoolVar {
	return v.match[team][slot][table]
}

// Jury returns the handle for "team's interview begins at slot in room".
func (v *Variables) Jury(team, slot, room int) cpmodel.BoolVar {
	return v.jury[team][slot][room]
}

// UsesTable returns the handle for "team has >=1 match on table".
func (v *Variables) UsesTable(team, table int) cpmodel.BoolVar {
	return v.usesTable[team][table]
}

// matchesAtSlotTable returns every team's match literal for (slot, table).
func (v *Variables) matchesAtSlotTable(slot, table int) []cpmodel.BoolVar {
	lits := make([]cpmodel.BoolVar, v.numTeams)
	for t := 0; t < v.numTeams; t++ {
		lits[t] = v.match[t][slot][table]
	}
	return lits
}

// juriesAtSlotRoom returns every team's jury literal for (slot, room).
func (v *Variables) juriesAtSlotRoom(slot, room int) []cpmodel.BoolVar {
	lits := make([]cpmodel.BoolVar, v.numTeams)
	for t := 0; t < v.numTeams; t++ {
		lits[t] = v.jury[t][slot][room]
	}
	return lits
}

// matchesForTeamAtSlot returns a team's match literals across all
// tables at a single slot.
func (v *Variables) matchesForTeamAtSlot(team, slot int) []cpmodel.BoolVar {
	return v.match[team][slot]
}

// juriesForTeamAtSlot returns a team's jury literals across all rooms
// at a single slot.
func (v *Variables) juriesForTeamAtSlot(team, slot int) []cpmodel.BoolVar {
	return v.jury[team][slot]
}
