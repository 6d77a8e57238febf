// Package config loads the advisor's HCL configuration file: named tuning
// profiles, Monte Carlo equity settings and logging.
package config

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/pokeradvisor/advisor"
)

// Environment variable overrides
const (
	// EnvProfile selects the tuning profile
	EnvProfile = "POKERADVISOR_PROFILE"

	// EnvSeed seeds the engine and equity simulation for reproducible runs
	EnvSeed = "POKERADVISOR_SEED"

	// EnvLogLevel overrides log_level
	EnvLogLevel = "POKERADVISOR_LOG_LEVEL"
)

const (
	DefaultProfileName = "default"
	DefaultFilename    = "pokeradvisor.hcl"
)

// ErrUnknownProfile is returned when a profile name is neither built in nor
// defined in the configuration file.
var ErrUnknownProfile = errors.New("unknown profile")

// Config represents the complete advisor configuration
type Config struct {
	LogLevel string          `hcl:"log_level,optional"`
	Profile  string          `hcl:"default_profile,optional"`
	Profiles []ProfileBlock  `hcl:"profile,block"`
	Equity   *EquitySettings `hcl:"equity,block"`

	// Seed is only set from the environment; zero means unseeded.
	Seed int64
}

// ProfileBlock is a named set of engine tuning scalars
type ProfileBlock struct {
	Name       string  `hcl:"name,label"`
	Aggression float64 `hcl:"aggression"`
	VPIP       float64 `hcl:"vpip"`
	PFR        float64 `hcl:"pfr"`
}

// EquitySettings controls the Monte Carlo equity calculator
type EquitySettings struct {
	Simulations int  `hcl:"simulations,optional"`
	Workers     int  `hcl:"workers,optional"`
	TimeoutMS   *int `hcl:"timeout_ms,optional"`
}

var builtinProfiles = []ProfileBlock{
	{Name: "default", Aggression: 0.35, VPIP: 0.25, PFR: 0.18},
	{Name: "nit", Aggression: 0.10, VPIP: 0.40, PFR: 0.08},
	{Name: "tag", Aggression: 0.30, VPIP: 0.30, PFR: 0.25},
	{Name: "lag", Aggression: 0.15, VPIP: 0.18, PFR: 0.40},
	{Name: "station", Aggression: 0.00, VPIP: 0.12, PFR: 0.02},
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	timeout := 250
	return &Config{
		LogLevel: "warn",
		Profile:  DefaultProfileName,
		Equity: &EquitySettings{
			Simulations: 2000,
			Workers:     4,
			TimeoutMS:   &timeout,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body)
}

// Parse decodes configuration from HCL source; filename is used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var config Config
	if diags := gohcl.DecodeBody(body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()

	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}
	if config.Profile == "" {
		config.Profile = defaults.Profile
	}
	if config.Equity == nil {
		config.Equity = defaults.Equity
	}
	if config.Equity.Simulations == 0 {
		config.Equity.Simulations = defaults.Equity.Simulations
	}
	if config.Equity.TimeoutMS == nil {
		config.Equity.TimeoutMS = defaults.Equity.TimeoutMS
	}

	return &config, nil
}

// ApplyEnv overrides settings from POKERADVISOR_* environment variables.
func (c *Config) ApplyEnv() error {
	if profile := os.Getenv(EnvProfile); profile != "" {
		c.Profile = profile
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
	if seedStr := os.Getenv(EnvSeed); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	seen := make(map[string]bool, len(c.Profiles))
	for _, p := range c.Profiles {
		if seen[p.Name] {
			return fmt.Errorf("profile %q defined twice", p.Name)
		}
		seen[p.Name] = true
		if err := p.engineConfig().Validate(); err != nil {
			return fmt.Errorf("profile %q: %w", p.Name, err)
		}
	}

	if _, err := c.EngineConfig(c.Profile); err != nil {
		return err
	}

	if c.Equity == nil {
		return nil
	}
	if c.Equity.Simulations <= 0 {
		return fmt.Errorf("equity simulations must be positive")
	}
	if c.Equity.Workers < 0 {
		return fmt.Errorf("equity workers cannot be negative")
	}
	if c.Equity.TimeoutMS != nil && *c.Equity.TimeoutMS < 0 {
		return fmt.Errorf("equity timeout cannot be negative")
	}
	return nil
}

// EngineConfig returns the tuning for the named profile. File profiles
// shadow built-ins of the same name; an empty name selects c.Profile.
func (c *Config) EngineConfig(name string) (advisor.Config, error) {
	if name == "" {
		name = c.Profile
	}
	for _, p := range c.Profiles {
		if p.Name == name {
			return p.engineConfig(), nil
		}
	}
	for _, p := range builtinProfiles {
		if p.Name == name {
			return p.engineConfig(), nil
		}
	}
	return advisor.Config{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// NamedProfile is a profile as listed by AllProfiles.
type NamedProfile struct {
	ProfileBlock
	Builtin bool
}

// AllProfiles lists every selectable profile sorted by name.
func (c *Config) AllProfiles() []NamedProfile {
	var out []NamedProfile
	for _, p := range builtinProfiles {
		if !slices.ContainsFunc(c.Profiles, func(f ProfileBlock) bool { return f.Name == p.Name }) {
			out = append(out, NamedProfile{ProfileBlock: p, Builtin: true})
		}
	}
	for _, p := range c.Profiles {
		out = append(out, NamedProfile{ProfileBlock: p})
	}
	slices.SortFunc(out, func(a, b NamedProfile) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// Timeout returns the equity deadline; zero disables it.
func (c *Config) Timeout() time.Duration {
	if c.Equity == nil || c.Equity.TimeoutMS == nil {
		return 0
	}
	return time.Duration(*c.Equity.TimeoutMS) * time.Millisecond
}

func (p ProfileBlock) engineConfig() advisor.Config {
	return advisor.Config{Aggression: p.Aggression, VPIP: p.VPIP, PFR: p.PFR}
}
