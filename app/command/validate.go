package command

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/posener/complete"

	"github.com/legomannetje/fll-scheduler/internal/serializer"
	"github.com/legomannetje/fll-scheduler/internal/validator"
)

// ValidateCommand independently re-checks a previously produced
// schedule document against the universal invariants of spec.md
// section 8, without importing core/solver, mirroring how
// original_source/test_schedule.py re-derives every check from the
// raw JSON rather than trusting the scheduler's own bookkeeping.
type ValidateCommand struct {
	Meta
}

func (c *ValidateCommand) Help() string {
	helpText := `
Usage: fll-scheduler validate [options] <document.json>

  Re-checks a schedule document produced by "fll-scheduler schedule"
  against table exclusivity, jury room exclusivity, team exclusivity,
  the minimum buffer law, and per-team activity counts.

General Options:

  -matches-per-team=<int>
    Expected matches per team. Required.

  -jury-sessions-per-team=<int>
    Expected jury sessions per team. Required.

  -min-buffer=<int>
    Minimum buffer, in minutes, required between any two activities
    for the same team. Defaults to 0.
`
	return strings.TrimSpace(helpText)
}

func (c *ValidateCommand) Synopsis() string {
	return "Independently re-check a schedule document"
}

func (c *ValidateCommand) AutocompleteFlags() complete.Flags {
	return complete.Flags{
		"-matches-per-team":       complete.PredictAnything,
		"-jury-sessions-per-team": complete.PredictAnything,
		"-min-buffer":             complete.PredictAnything,
	}
}

func (c *ValidateCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictFiles("*.json")
}

func (c *ValidateCommand) Run(args []string) int {
	flags := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags.Usage = func() { c.Ui.Output(c.Help()) }

	var matchesPerTeam, jurySessionsPerTeam, minBuffer int
	flags.IntVar(&matchesPerTeam, "matches-per-team", 0, "")
	flags.IntVar(&jurySessionsPerTeam, "jury-sessions-per-team", 0, "")
	flags.IntVar(&minBuffer, "min-buffer", 0, "")

	if err := flags.Parse(args); err != nil {
		return 1
	}

	rest := flags.Args()
	if len(rest) != 1 {
		c.Ui.Error("This command takes one argument: the path to a schedule document")
		return 1
	}
	if matchesPerTeam <= 0 || jurySessionsPerTeam <= 0 {
		c.Ui.Error("-matches-per-team and -jury-sessions-per-team are required and must be positive")
		return 1
	}

	data, err := os.ReadFile(rest[0])
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error reading %s: %v", rest[0], err))
		return 1
	}

	doc, err := serializer.Unmarshal(data)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error parsing %s: %v", rest[0], err))
		return 1
	}

	violations := validator.Validate(doc, matchesPerTeam, jurySessionsPerTeam, minBuffer)
	if len(violations) == 0 {
		c.Ui.Output("OK: no violations found")
		return 0
	}

	for _, v := range violations {
		c.Ui.Error(v.String())
	}
	c.Ui.Error(fmt.Sprintf("%d violation(s) found", len(violations)))
	return 1
}
