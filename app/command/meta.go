// Package command implements the CLI surface of spec.md section 5: a
// "schedule" command that solves a configuration and emits the
// serialized document, and a "validate" command that independently
// re-checks a previously produced document. It follows the
// hashicorp/cli Command-per-subcommand layout of Nomad's command
// package, scaled down to two subcommands.
package command

import (
	"github.com/hashicorp/cli"
	hclog "github.com/hashicorp/go-hclog"
)

// Meta carries the dependencies every subcommand shares: the UI it
// writes to and the logger it hands down into the core.
type Meta struct {
	Ui     cli.Ui
	Logger hclog.Logger
}

func (m Meta) logger() hclog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return hclog.NewNullLogger()
}
