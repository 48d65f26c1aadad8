// Package validator is the independent post-hoc validator spec.md
// section 1 calls out as "treated as an external collaborator" and
// section 8 restates as normative properties the core must satisfy.
// It mirrors original_source/test_schedule.py: it re-checks a
// produced document from scratch, deliberately operating only on
// internal/serializer.Document's plain fields so it cannot share a
// bug with the constraint builder that produced them.
package validator

import (
	"fmt"
	"sort"

	"github.com/legomannetje/fll-scheduler/internal/serializer"
)

// Violation describes one property failure found in a document.
type Violation struct {
	Rule   string
	Detail string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Rule, v.Detail)
}

type activity struct {
	kind       string // "match" or "jury"
	start, end int
	resource   int // table id or jury room id
}

// Validate re-checks every universal invariant of spec.md section 8
// against a serialized document and returns every violation found (an
// empty slice means the document is clean).
func Validate(doc *serializer.Document, matchesPerTeam, jurySessionsPerTeam, minimumBufferMinutes int) []Violation {
	var violations []Violation

	tableTimeslots := indexTableTimeslots(doc)
	juryTimeslots := indexJuryTimeslots(doc)

	violations = append(violations, checkTableExclusivity(doc, tableTimeslots)...)
	violations = append(violations, checkJuryRoomExclusivity(doc, juryTimeslots)...)

	teamActivities := buildTeamActivities(doc, tableTimeslots, juryTimeslots)
	violations = append(violations, checkTeamExclusivityAndBuffer(teamActivities, minimumBufferMinutes)...)
	violations = append(violations, checkActivityCounts(teamActivities, matchesPerTeam, jurySessionsPerTeam)...)

	return violations
}

func indexTableTimeslots(doc *serializer.Document) map[int]serializer.TableTimeslot {
	m := make(map[int]serializer.TableTimeslot, len(doc.TableTimeslotList))
	for _, ts := range doc.TableTimeslotList {
		m[ts.ID] = ts
	}
	return m
}

func indexJuryTimeslots(doc *serializer.Document) map[int]serializer.JuryTimeslot {
	m := make(map[int]serializer.JuryTimeslot, len(doc.JuryTimeslotList))
	for _, ts := range doc.JuryTimeslotList {
		m[ts.ID] = ts
	}
	return m
}

// checkTableExclusivity verifies at most one team per (slot, table),
// i.e. no two matches on the same table ever overlap in minutes.
func checkTableExclusivity(doc *serializer.Document, timeslots map[int]serializer.TableTimeslot) []Violation {
	byTable := make(map[int][]activity)
	for _, a := range doc.TeamTableAllocationList {
		ts, ok := timeslots[a.Timeslot.ID]
		if !ok {
			continue
		}
		byTable[ts.Table.ID] = append(byTable[ts.Table.ID], activity{start: ts.StartTime, end: ts.EndTime})
	}

	var violations []Violation
	for table, acts := range byTable {
		for _, pair := range overlappingPairs(acts) {
			violations = append(violations, Violation{
				Rule:   "table-exclusivity",
				Detail: fmt.Sprintf("table %d has overlapping matches %d-%d and %d-%d", table, pair[0].start, pair[0].end, pair[1].start, pair[1].end),
			})
		}
	}
	return violations
}

// checkJuryRoomExclusivity verifies no two jury sessions in the same
// room ever overlap in minutes, across the interview's full span.
func checkJuryRoomExclusivity(doc *serializer.Document, timeslots map[int]serializer.JuryTimeslot) []Violation {
	byRoom := make(map[int][]activity)
	for _, a := range doc.TeamJuryAllocationList {
		ts, ok := timeslots[a.Timeslot.ID]
		if !ok {
			continue
		}
		byRoom[ts.Jury.ID] = append(byRoom[ts.Jury.ID], activity{start: ts.StartTime, end: ts.EndTime})
	}

	var violations []Violation
	for room, acts := range byRoom {
		for _, pair := range overlappingPairs(acts) {
			violations = append(violations, Violation{
				Rule:   "jury-room-exclusivity",
				Detail: fmt.Sprintf("jury room %d has overlapping interviews %d-%d and %d-%d", room, pair[0].start, pair[0].end, pair[1].start, pair[1].end),
			})
		}
	}
	return violations
}

func overlappingPairs(acts []activity) [][2]activity {
	sort.Slice(acts, func(i, j int) bool { return acts[i].start < acts[j].start })
	var pairs [][2]activity
	for i := 0; i < len(acts); i++ {
		for j := i + 1; j < len(acts); j++ {
			if acts[i].end > acts[j].start {
				pairs = append(pairs, [2]activity{acts[i], acts[j]})
			}
		}
	}
	return pairs
}

func buildTeamActivities(doc *serializer.Document, tableTimeslots map[int]serializer.TableTimeslot, juryTimeslots map[int]serializer.JuryTimeslot) map[int][]activity {
	teams := make(map[int][]activity)
	for _, team := range doc.TeamList {
		teams[team.ID] = nil
	}

	for _, a := range doc.TeamTableAllocationList {
		ts, ok := tableTimeslots[a.Timeslot.ID]
		if !ok {
			continue
		}
		teams[a.Team.ID] = append(teams[a.Team.ID], activity{kind: "match", start: ts.StartTime, end: ts.EndTime, resource: ts.Table.ID})
	}
	for _, a := range doc.TeamJuryAllocationList {
		ts, ok := juryTimeslots[a.Timeslot.ID]
		if !ok {
			continue
		}
		teams[a.Team.ID] = append(teams[a.Team.ID], activity{kind: "jury", start: ts.StartTime, end: ts.EndTime, resource: ts.Jury.ID})
	}

	for team := range teams {
		sort.Slice(teams[team], func(i, j int) bool { return teams[team][i].start < teams[team][j].start })
	}
	return teams
}

// checkTeamExclusivityAndBuffer verifies a team is never in two
// activities at once, and that the minute-gap between consecutive
// activities is always >= minimumBufferMinutes (spec.md section 8,
// "Team exclusivity" and "Buffer law").
func checkTeamExclusivityAndBuffer(teamActivities map[int][]activity, minimumBufferMinutes int) []Violation {
	var violations []Violation

	teamIDs := make([]int, 0, len(teamActivities))
	for team := range teamActivities {
		teamIDs = append(teamIDs, team)
	}
	sort.Ints(teamIDs)

	for _, team := range teamIDs {
		acts := teamActivities[team]
		for i := 0; i+1 < len(acts); i++ {
			gap := acts[i+1].start - acts[i].end
			if gap < 0 {
				violations = append(violations, Violation{
					Rule:   "team-exclusivity",
					Detail: fmt.Sprintf("team %d has overlapping activities ending %d and starting %d", team, acts[i].end, acts[i+1].start),
				})
				continue
			}
			if gap < minimumBufferMinutes {
				violations = append(violations, Violation{
					Rule:   "buffer-law",
					Detail: fmt.Sprintf("team %d has only a %d minute gap (need %d) between activities ending %d and starting %d", team, gap, minimumBufferMinutes, acts[i].end, acts[i+1].start),
				})
			}
		}
	}
	return violations
}

// checkActivityCounts verifies every team has exactly the required
// number of matches and jury sessions (spec.md section 8, "Match
// count" and "Jury count").
func checkActivityCounts(teamActivities map[int][]activity, matchesPerTeam, jurySessionsPerTeam int) []Violation {
	var violations []Violation

	teamIDs := make([]int, 0, len(teamActivities))
	for team := range teamActivities {
		teamIDs = append(teamIDs, team)
	}
	sort.Ints(teamIDs)

	for _, team := range teamIDs {
		var matches, jurySessions int
		for _, a := range teamActivities[team] {
			if a.kind == "match" {
				matches++
			} else {
				jurySessions++
			}
		}
		if matches != matchesPerTeam {
			violations = append(violations, Violation{
				Rule:   "match-count",
				Detail: fmt.Sprintf("team %d has %d matches, expected %d", team, matches, matchesPerTeam),
			})
		}
		if jurySessions != jurySessionsPerTeam {
			violations = append(violations, Violation{
				Rule:   "jury-count",
				Detail: fmt.Sprintf("team %d has %d jury sessions, expected %d", team, jurySessions, jurySessionsPerTeam),
			})
		}
	}
	return violations
}
