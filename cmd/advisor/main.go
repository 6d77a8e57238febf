package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/pokeradvisor/internal/config"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config  string `short:"c" default:"${config_file}" type:"path" help:"HCL configuration file"`
	Debug   bool   `help:"Enable debug logging"`
	LogJSON bool   `help:"Output JSON logs instead of console format"`
	NoColor bool   `help:"Disable coloured output"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Decide   DecideCmd        `cmd:"" help:"Recommend an action for a spot"`
	Equity   EquityCmd        `cmd:"" help:"Estimate hand equity by Monte Carlo simulation"`
	Profiles ProfilesCmd      `cmd:"" help:"List tuning profiles"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokeradvisor"),
		kong.Description("Rule-based Texas Hold'em decision advisor"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFilename,
		},
	)
	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// load reads the configuration file, applies environment overrides and
// builds the logger.
func (g *Globals) load() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("loading %s: %w", g.Config, err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, zerolog.Nop(), err
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("invalid configuration: %w", err)
	}

	level := parseLevel(cfg.LogLevel)
	if g.Debug {
		level = zerolog.DebugLevel
	}
	if g.LogJSON {
		return cfg, SetupStructuredLogger(os.Stderr, level), nil
	}
	return cfg, SetupLogger(os.Stderr, level), nil
}
