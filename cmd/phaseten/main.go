package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`

	Check  CheckCmd  `cmd:"" help:"Run HCL scenario files and compare outcomes with their expectations"`
	Find   FindCmd   `cmd:"" help:"Suggest candidate groups in a hand"`
	Phases PhasesCmd `cmd:"" help:"Print the phase requirement table"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("phaseten"),
		kong.Description("Meld discovery and validation for Phase 10 style rummy"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := setupLogger(cli.LogLevel)
	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
