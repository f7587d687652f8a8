// Package config loads harness configuration: which rules run, their
// options, Starlark rule scripts, logging and concurrency.
package config

// Default configuration values.
const (
	DefaultLogLevel    = "warn"
	DefaultConcurrency = 0 // runtime.GOMAXPROCS(0)
)

// Config is the harness configuration.
type Config struct {
	// Concurrency bounds concurrent node and rule tasks; 0 selects GOMAXPROCS.
	Concurrency int `koanf:"concurrency"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `koanf:"log_level"`

	Rules RulesConfig `koanf:"rules"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// RulesConfig selects and configures rules.
type RulesConfig struct {
	// Disabled contains rule IDs to skip
	Disabled []string `koanf:"disabled"`

	// Only restricts the run to these rule IDs when non-empty
	Only []string `koanf:"only"`

	// Options maps rule ID to rule-specific options
	Options map[string]RuleOptions `koanf:"options"`

	// Scripts lists Starlark rule files, relative to the config file
	Scripts []string `koanf:"scripts"`
}

// RuleOptions holds rule-specific configuration options.
type RuleOptions map[string]any
