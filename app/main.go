// Command fll-scheduler is the CLI entry point: it wires the
// "schedule" and "validate" subcommands into a single hashicorp/cli
// dispatcher, the way Nomad's cmd/nomad wires its subcommand map.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
	hclog "github.com/hashicorp/go-hclog"

	"github.com/legomannetje/fll-scheduler/app/command"
)

const appName = "fll-scheduler"

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ui := &cli.BasicUi{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Reader:      os.Stdin,
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  appName,
		Level: hclog.LevelFromString(os.Getenv("FLL_SCHEDULER_LOG_LEVEL")),
	})

	meta := command.Meta{Ui: ui, Logger: logger}

	c := cli.NewCLI(appName, version)
	c.Args = args
	c.Commands = map[string]cli.CommandFactory{
		"schedule": func() (cli.Command, error) {
			return &command.ScheduleCommand{Meta: meta}, nil
		},
		"validate": func() (cli.Command, error) {
			return &command.ValidateCommand{Meta: meta}, nil
		},
	}

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}
