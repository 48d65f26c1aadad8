// Package serializer reshapes the core's abstract output.Schedule
// into the nested entity document of spec.md section 6, mirroring
// build_json_output in original_source/complete_scheduler.py and
// generate_json.py. It is a thin I/O wrapper: the two ID formulas
// below are part of the external contract and must not drift from
// spec.md.
package serializer

import (
	"fmt"

	gojson "github.com/goccy/go-json"

	"github.com/legomannetje/fll-scheduler/common/models/input"
	"github.com/legomannetje/fll-scheduler/common/models/output"
)

type IDRef struct {
	ID int `json:"id"`
}

type TablePair struct {
	ID int `json:"id"`
}

type Table struct {
	ID        int   `json:"id"`
	TablePair IDRef `json:"tablePair"`
}

type Jury struct {
	ID int `json:"id"`
}

type Team struct {
	ID int `json:"id"`
}

type TableTimeslot struct {
	ID        int   `json:"id"`
	StartTime int   `json:"startTime"`
	Duration  int   `json:"duration"`
	EndTime   int   `json:"endTime"`
	Table     Table `json:"table"`
}

type JuryTimeslot struct {
	ID        int  `json:"id"`
	StartTime int  `json:"startTime"`
	Duration  int  `json:"duration"`
	EndTime   int  `json:"endTime"`
	Jury      Jury `json:"jury"`
}

type Allocation struct {
	Team     IDRef `json:"team"`
	Timeslot IDRef `json:"timeslot"`
}

type ConstraintConfiguration struct {
	ConstraintWeight     string `json:"constraintWeight"`
	MinimumBreakDuration int    `json:"minimumBreakDuration"`
	StartTime            int    `json:"startTime"`
	BreakStartTime       *int   `json:"breakStartTime,omitempty"`
	BreakDuration        *int   `json:"breakDuration,omitempty"`
	MatchDuration        int    `json:"matchDuration"`
	JuryDuration         int    `json:"juryDuration"`
}

// Document is the nested entity document spec.md section 6 names:
// tableList, tablePairList, juryList, teamList, tableTimeslotList,
// juryTimeslotList, teamTableAllocationList, teamJuryAllocationList,
// and a constraintConfiguration block.
type Document struct {
	RunID                   string                  `json:"runId,omitempty"`
	ConstraintConfiguration ConstraintConfiguration `json:"constraintConfiguration"`
	TableList               []Table                 `json:"tableList"`
	TablePairList           []TablePair             `json:"tablePairList"`
	JuryList                []Jury                  `json:"juryList"`
	TeamList                []Team                  `json:"teamList"`
	TableTimeslotList       []TableTimeslot         `json:"tableTimeslotList"`
	JuryTimeslotList        []JuryTimeslot          `json:"juryTimeslotList"`
	TeamTableAllocationList []Allocation            `json:"teamTableAllocationList"`
	TeamJuryAllocationList  []Allocation            `json:"teamJuryAllocationList"`
	Score                   string                  `json:"score"`
}

// Build reshapes a solved result into the nested document. cfg is the
// configuration that produced result, used for the echoed
// constraintConfiguration block and the timeslot duration/ID math.
func Build(result *output.Result, cfg input.Config) (*Document, error) {
	if result.Schedule == nil {
		return nil, fmt.Errorf("cannot serialize a result with no schedule (status %s)", result.Status)
	}

	doc := &Document{
		RunID: result.RunID,
		ConstraintConfiguration: ConstraintConfiguration{
			ConstraintWeight:     "1hard/0medium/0soft",
			MinimumBreakDuration: cfg.MinimumBufferMinutes,
			StartTime:            cfg.StartTimeMinutes,
			BreakStartTime:       cfg.BreakStartTimeMinutes,
			BreakDuration:        cfg.BreakDurationMinutes,
			MatchDuration:        cfg.MatchDurationMinutes,
			JuryDuration:         cfg.JuryDurationMinutes,
		},
		Score: scoreString(result),
	}

	numTablePairs := (cfg.NumTables + 1) / 2
	for i := 0; i < numTablePairs; i++ {
		doc.TablePairList = append(doc.TablePairList, TablePair{ID: i})
	}

	for tb := 0; tb < cfg.NumTables; tb++ {
		doc.TableList = append(doc.TableList, Table{ID: tb, TablePair: IDRef{ID: tb / 2}})
	}

	for r := 0; r < cfg.NumJuryRooms; r++ {
		doc.JuryList = append(doc.JuryList, Jury{ID: r})
	}

	for t := 0; t < cfg.NumTeams; t++ {
		doc.TeamList = append(doc.TeamList, Team{ID: t})
	}

	// tableTimeslotList ID formula: id = slot*num_tables + table.
	for s := 0; s < cfg.NumTimeslots; s++ {
		start := s * cfg.MatchDurationMinutes
		for tb := 0; tb < cfg.NumTables; tb++ {
			doc.TableTimeslotList = append(doc.TableTimeslotList, TableTimeslot{
				ID:        s*cfg.NumTables + tb,
				StartTime: start,
				Duration:  cfg.MatchDurationMinutes,
				EndTime:   start + cfg.MatchDurationMinutes,
				Table:     Table{ID: tb, TablePair: IDRef{ID: tb / 2}},
			})
		}
	}

	// juryTimeslotList ID formula: id = slot*num_jury_rooms + room.
	for s := 0; s < cfg.NumTimeslots; s++ {
		start := s * cfg.MatchDurationMinutes
		for r := 0; r < cfg.NumJuryRooms; r++ {
			doc.JuryTimeslotList = append(doc.JuryTimeslotList, JuryTimeslot{
				ID:        s*cfg.NumJuryRooms + r,
				StartTime: start,
				Duration:  cfg.JuryDurationMinutes,
				EndTime:   start + cfg.JuryDurationMinutes,
				Jury:      Jury{ID: r},
			})
		}
	}

	for _, m := range result.Schedule.Matches {
		doc.TeamTableAllocationList = append(doc.TeamTableAllocationList, Allocation{
			Team:     IDRef{ID: m.Team},
			Timeslot: IDRef{ID: m.Slot*cfg.NumTables + m.Table},
		})
	}

	for _, j := range result.Schedule.JurySessions {
		doc.TeamJuryAllocationList = append(doc.TeamJuryAllocationList, Allocation{
			Team:     IDRef{ID: j.Team},
			Timeslot: IDRef{ID: j.Slot*cfg.NumJuryRooms + j.Room},
		})
	}

	return doc, nil
}

func scoreString(result *output.Result) string {
	if result.Status == output.StatusOptimal {
		return "0hard/0medium/0soft"
	}
	return "1hard/0medium/0soft"
}

// Marshal renders the document as indented JSON using goccy/go-json,
// a drop-in encoding/json replacement.
func Marshal(doc *Document) ([]byte, error) {
	return gojson.MarshalIndent(doc, "", "  ")
}

// Unmarshal parses a previously serialized document, used by the
// standalone validator command.
func Unmarshal(data []byte) (*Document, error) {
	var doc Document
	if err := gojson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing schedule document: %w", err)
	}
	return &doc, nil
}
