package command

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/posener/complete"
	"github.com/ryanuber/columnize"

	"github.com/legomannetje/fll-scheduler/common/models/output"
	"github.com/legomannetje/fll-scheduler/core/solver"
	"github.com/legomannetje/fll-scheduler/internal/config"
	"github.com/legomannetje/fll-scheduler/internal/serializer"
)

// ScheduleCommand builds a model from a config file plus flag
// overrides, solves it, and writes the serialized document to stdout
// or a file. It mirrors run_scheduler_with_params.py's flag set.
type ScheduleCommand struct {
	Meta
}

func (c *ScheduleCommand) Help() string {
	helpText := `
Usage: fll-scheduler schedule [options]

  Solves a robotics tournament schedule and writes the resulting
  schedule document as JSON.

General Options:

  -config=<path>
    Path to a YAML configuration file. Optional; the fields listed
    under Schedule Options may also be given as flags.

  -out=<path>
    Path to write the JSON document to. Defaults to stdout.

Schedule Options:

  -num-teams=<int>
  -num-tables=<int>
  -num-jury-rooms=<int>
  -num-timeslots=<int>
  -matches-per-team=<int>
  -jury-sessions-per-team=<int>
  -match-duration=<int>
  -jury-duration=<int>
  -min-buffer=<int>
  -max-solve-time=<seconds>
  -num-search-workers=<int>
    Numeric overrides layered on top of -config. Unset flags leave the
    config file's value (or its default) untouched.
`
	return strings.TrimSpace(helpText)
}

func (c *ScheduleCommand) Synopsis() string {
	return "Solve a tournament schedule and emit the JSON document"
}

func (c *ScheduleCommand) AutocompleteFlags() complete.Flags {
	return complete.Flags{
		"-config":                 complete.PredictFiles("*.yaml"),
		"-out":                    complete.PredictFiles("*.json"),
		"-num-teams":              complete.PredictAnything,
		"-num-tables":             complete.PredictAnything,
		"-num-jury-rooms":         complete.PredictAnything,
		"-num-timeslots":          complete.PredictAnything,
		"-matches-per-team":       complete.PredictAnything,
		"-jury-sessions-per-team": complete.PredictAnything,
		"-match-duration":         complete.PredictAnything,
		"-jury-duration":          complete.PredictAnything,
		"-min-buffer":             complete.PredictAnything,
		"-max-solve-time":         complete.PredictAnything,
		"-num-search-workers":     complete.PredictAnything,
	}
}

func (c *ScheduleCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictNothing
}

func (c *ScheduleCommand) Run(args []string) int {
	flags := flag.NewFlagSet("schedule", flag.ContinueOnError)
	flags.Usage = func() { c.Ui.Output(c.Help()) }

	var configPath, outPath string
	flags.StringVar(&configPath, "config", "", "path to YAML config file")
	flags.StringVar(&outPath, "out", "", "path to write the JSON document to")

	var numTeams, numTables, numJuryRooms, numTimeslots int
	var matchesPerTeam, jurySessionsPerTeam int
	var matchDuration, juryDuration, minBuffer int
	var numSearchWorkers int
	var maxSolveTime float64
	flagInt(flags, &numTeams, "num-teams")
	flagInt(flags, &numTables, "num-tables")
	flagInt(flags, &numJuryRooms, "num-jury-rooms")
	flagInt(flags, &numTimeslots, "num-timeslots")
	flagInt(flags, &matchesPerTeam, "matches-per-team")
	flagInt(flags, &jurySessionsPerTeam, "jury-sessions-per-team")
	flagInt(flags, &matchDuration, "match-duration")
	flagInt(flags, &juryDuration, "jury-duration")
	flagInt(flags, &minBuffer, "min-buffer")
	flagInt(flags, &numSearchWorkers, "num-search-workers")
	flags.Float64Var(&maxSolveTime, "max-solve-time", 0, "solver time budget in seconds")

	if err := flags.Parse(args); err != nil {
		return 1
	}

	overrides := config.Overrides{
		NumTeams:             nonZeroInt(numTeams),
		NumTables:            nonZeroInt(numTables),
		NumJuryRooms:         nonZeroInt(numJuryRooms),
		NumTimeslots:         nonZeroInt(numTimeslots),
		MatchesPerTeam:       nonZeroInt(matchesPerTeam),
		JurySessionsPerTeam:  nonZeroInt(jurySessionsPerTeam),
		MatchDurationMinutes: nonZeroInt(matchDuration),
		JuryDurationMinutes:  nonZeroInt(juryDuration),
		MinimumBufferMinutes: nonZeroInt(minBuffer),
		NumSearchWorkers:     nonZeroInt(numSearchWorkers),
	}
	if maxSolveTime > 0 {
		overrides.MaxSolveTimeSeconds = &maxSolveTime
	}

	cfg, err := config.Load(configPath, overrides)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error loading configuration: %v", err))
		return 1
	}

	c.Ui.Output(fmt.Sprintf("Solving: %s", solver.Describe(cfg)))

	result, err := solver.Solve(cfg, c.logger())
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error solving schedule: %v", err))
		if result == nil {
			return 1
		}
	}

	c.Ui.Output(renderStatistics(result))

	if result.Schedule == nil {
		return 1
	}

	doc, err := serializer.Build(result, cfg)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error building document: %v", err))
		return 1
	}

	data, err := serializer.Marshal(doc)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error serializing document: %v", err))
		return 1
	}

	if outPath == "" {
		c.Ui.Output(string(data))
		return 0
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		c.Ui.Error(fmt.Sprintf("Error writing %s: %v", outPath, err))
		return 1
	}
	c.Ui.Output(fmt.Sprintf("Wrote %s", outPath))
	return 0
}

func flagInt(flags *flag.FlagSet, dst *int, name string) {
	flags.IntVar(dst, name, 0, "")
}

func nonZeroInt(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

// renderStatistics formats the solver's operational statistics as a
// two-column table, the way Nomad's status commands render key/value
// summaries with ryanuber/columnize.
func renderStatistics(result *output.Result) string {
	rows := []string{
		"Field | Value",
		fmt.Sprintf("Status | %s", result.Status),
		fmt.Sprintf("Wall Time | %s", result.Statistics.WallTime),
		fmt.Sprintf("Objective | %.0f", result.Statistics.ObjectiveValue),
		fmt.Sprintf("Best Bound | %.0f", result.Statistics.BestBound),
		fmt.Sprintf("Conflicts | %d", result.Statistics.NumConflicts),
		fmt.Sprintf("Branches | %d", result.Statistics.NumBranches),
		fmt.Sprintf("Search Workers | %d", result.Statistics.NumSearchWorkers),
	}
	return columnize.SimpleFormat(rows)
}
