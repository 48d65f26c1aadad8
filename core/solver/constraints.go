package solver

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/legomannetje/fll-scheduler/common/models/input"
)

// sumExpr builds a linear expression that is the unweighted sum of
// the given boolean literals, the Go equivalent of the Python source's
// repeated "sum(x for x in ...)" comprehensions.
func sumExpr(lits []cpmodel.BoolVar) *cpmodel.LinearExpr {
	expr := cpmodel.NewLinearExpr()
	for _, lit := range lits {
		expr.AddTerm(lit, 1)
	}
	return expr
}

// concatLits merges several literal slices into one, used wherever a
// constraint's sum spans two otherwise-independent groups (e.g. "this
// team's match at slot s" plus "this team's match at slot s+gap").
func concatLits(groups ...[]cpmodel.BoolVar) []cpmodel.BoolVar {
	var out []cpmodel.BoolVar
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// postConstraints posts every hard constraint of spec.md section 4.3
// (a)-(h) plus the soft objective, against the given model and
// variable space.
func postConstraints(b *cpmodel.Builder, v *Variables, tm TimeModel, cfg input.Config) {
	postDemandConstraints(b, v, cfg)
	postCapacityConstraints(b, v, cfg)
	postTeamExclusivityConstraints(b, v, cfg)
	postJurySpanConstraints(b, v, cfg, tm)
	postCrossActivityBufferConstraints(b, v, cfg, tm)
	postMatchSpacingConstraints(b, v, cfg, tm)
	if cfg.JurySessionsPerTeam > 1 {
		postJurySpacingConstraints(b, v, cfg, tm)
	}
	postTableUsageLinkage(b, v, cfg)
	postObjective(b, v, cfg)
}

// (a) Demand: every team plays exactly matches_per_team matches and
// has exactly jury_sessions_per_team interviews.
func postDemandConstraints(b *cpmodel.Builder, v *Variables, cfg input.Config) {
	for t := 0; t < cfg.NumTeams; t++ {
		var matchLits []cpmodel.BoolVar
		var juryLits []cpmodel.BoolVar
		for s := 0; s < cfg.NumTimeslots; s++ {
			matchLits = append(matchLits, v.matchesForTeamAtSlot(t, s)...)
			juryLits = append(juryLits, v.juriesForTeamAtSlot(t, s)...)
		}
		b.AddEquality(sumExpr(matchLits), cpmodel.NewConstant(int64(cfg.MatchesPerTeam)))
		b.AddEquality(sumExpr(juryLits), cpmodel.NewConstant(int64(cfg.JurySessionsPerTeam)))
	}
}

// (b) Capacity: at most one team per (slot, table) and per (slot, room).
func postCapacityConstraints(b *cpmodel.Builder, v *Variables, cfg input.Config) {
	for s := 0; s < cfg.NumTimeslots; s++ {
		for tb := 0; tb < cfg.NumTables; tb++ {
			b.AddAtMostOne(v.matchesAtSlotTable(s, tb)...)
		}
		for r := 0; r < cfg.NumJuryRooms; r++ {
			b.AddAtMostOne(v.juriesAtSlotRoom(s, r)...)
		}
	}
}

// (c) Team exclusivity: a team occupies at most one activity (match or
// jury) at any single slot.
func postTeamExclusivityConstraints(b *cpmodel.Builder, v *Variables, cfg input.Config) {
	for t := 0; t < cfg.NumTeams; t++ {
		for s := 0; s < cfg.NumTimeslots; s++ {
			b.AddAtMostOne(concatLits(v.matchesForTeamAtSlot(t, s), v.juriesForTeamAtSlot(t, s))...)
		}
	}
}

// (d) Jury-session span in a single room: two interviews in the same
// room whose starts differ by less than jury_span would occupy
// overlapping slot ranges, so at most one of any such pair (across
// distinct teams) may be true.
func postJurySpanConstraints(b *cpmodel.Builder, v *Variables, cfg input.Config, tm TimeModel) {
	for r := 0; r < cfg.NumJuryRooms; r++ {
		for s1 := 0; s1 < cfg.NumTimeslots; s1++ {
			for s2 := s1 + 1; s2 < s1+tm.JurySpan && s2 < cfg.NumTimeslots; s2++ {
				for t1 := 0; t1 < cfg.NumTeams; t1++ {
					for t2 := 0; t2 < cfg.NumTeams; t2++ {
						if t1 == t2 {
							continue
						}
						b.AddLessOrEqual(sumExpr([]cpmodel.BoolVar{v.Jury(t1, s1, r), v.Jury(t2, s2, r)}), cpmodel.NewConstant(1))
					}
				}
			}
		}
	}
}

// (e) Team cross-activity overlap with buffer: an interview starting
// at slot j blocks that team from any match in
// [j-bufferSpan, j+jurySpan-1+bufferSpan].
func postCrossActivityBufferConstraints(b *cpmodel.Builder, v *Variables, cfg input.Config, tm TimeModel) {
	for t := 0; t < cfg.NumTeams; t++ {
		for j := 0; j < cfg.NumTimeslots; j++ {
			lo := j - tm.BufferSpan
			hi := j + tm.JurySpan - 1 + tm.BufferSpan
			if lo < 0 {
				lo = 0
			}
			if hi > cfg.NumTimeslots-1 {
				hi = cfg.NumTimeslots - 1
			}
			juryLits := v.juriesForTeamAtSlot(t, j)
			for m := lo; m <= hi; m++ {
				combined := sumExpr(concatLits(juryLits, v.matchesForTeamAtSlot(t, m)))
				b.AddLessOrEqual(combined, cpmodel.NewConstant(1))
			}
		}
	}
}

// (f) Match spacing: for every team and every pair of slots (s, s+g)
// with 1 <= g < match_gap, at most one of the team's matches in those
// two slots may be true.
func postMatchSpacingConstraints(b *cpmodel.Builder, v *Variables, cfg input.Config, tm TimeModel) {
	for t := 0; t < cfg.NumTeams; t++ {
		for s := 0; s < cfg.NumTimeslots; s++ {
			for gap := 1; gap < tm.MatchGap; gap++ {
				next := s + gap
				if next >= cfg.NumTimeslots {
					break
				}
				combined := sumExpr(concatLits(v.matchesForTeamAtSlot(t, s), v.matchesForTeamAtSlot(t, next)))
				b.AddLessOrEqual(combined, cpmodel.NewConstant(1))
			}
		}
	}
}

// (g) Jury-to-jury spacing, only needed when a team has more than one
// interview: analogous to (f) using the jury-based gap.
func postJurySpacingConstraints(b *cpmodel.Builder, v *Variables, cfg input.Config, tm TimeModel) {
	for t := 0; t < cfg.NumTeams; t++ {
		for s := 0; s < cfg.NumTimeslots; s++ {
			for gap := 1; gap <= tm.JuryGap; gap++ {
				next := s + gap
				if next >= cfg.NumTimeslots {
					break
				}
				combined := sumExpr(concatLits(v.juriesForTeamAtSlot(t, s), v.juriesForTeamAtSlot(t, next)))
				b.AddLessOrEqual(combined, cpmodel.NewConstant(1))
			}
		}
	}
}

// (h) Table-usage linkage: uses_table(t, b) == 1 iff the team has at
// least one match on that table. Both directions are reified.
func postTableUsageLinkage(b *cpmodel.Builder, v *Variables, cfg input.Config) {
	for t := 0; t < cfg.NumTeams; t++ {
		for tb := 0; tb < cfg.NumTables; tb++ {
			lits := make([]cpmodel.BoolVar, cfg.NumTimeslots)
			for s := 0; s < cfg.NumTimeslots; s++ {
				lits[s] = v.Match(t, s, tb)
			}
			uses := v.UsesTable(t, tb)
			b.AddGreaterOrEqual(sumExpr(lits), cpmodel.NewConstant(1)).OnlyEnforceIf(uses)
			b.AddEquality(sumExpr(lits), cpmodel.NewConstant(0)).OnlyEnforceIf(uses.Not())
		}
	}
}

// Objective: minimize the number of distinct tables used across all
// teams, per spec.md section 4.3 "Objective (soft)". Deliberately a
// sum of reified booleans rather than a distinct-count integer
// variable — the most robust encoding across CP-SAT-style engines,
// per spec.md section 9.
func postObjective(b *cpmodel.Builder, v *Variables, cfg input.Config) {
	objective := cpmodel.NewLinearExpr()
	for t := 0; t < cfg.NumTeams; t++ {
		for tb := 0; tb < cfg.NumTables; tb++ {
			objective.AddTerm(v.UsesTable(t, tb), 1)
		}
	}
	b.Minimize(objective)
}
