package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"dlint/internal/diag"
	"dlint/internal/source"
)

// DefaultConfigName is the configuration file looked up next to the linted
// sources.
const DefaultConfigName = "dlint.toml"

// Config is the on-disk configuration.
//
//	[checks]
//	function_attribute_check = true
//
// Checks absent from the table are enabled.
type Config struct {
	Checks map[string]bool `toml:"checks"`
}

// DefaultConfig returns the configuration with every check enabled.
func DefaultConfig() Config {
	return Config{Checks: map[string]bool{}}
}

// LoadConfig parses a TOML configuration file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Checks == nil {
		cfg.Checks = map[string]bool{}
	}
	return cfg, nil
}

// LocateConfig walks from dir upward looking for DefaultConfigName and
// returns its path, or "" when no configuration file exists.
func LocateConfig(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, DefaultConfigName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// RuleEnabled reports whether the named check is enabled. Absent names
// default to enabled.
func (c Config) RuleEnabled(name string) bool {
	if v, ok := c.Checks[name]; ok {
		return v
	}
	return true
}

// Validate reports every configured check name the registry does not know.
func (c Config) Validate(reg *Registry, r diag.Reporter) {
	known := make(map[string]bool, len(reg.Rules()))
	for _, rule := range reg.Rules() {
		known[rule.Name()] = true
	}
	names := make([]string, 0, len(c.Checks))
	for name := range c.Checks {
		if !known[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		diag.ReportWarning(r, diag.CfgUnknownCheck, source.Span{},
			fmt.Sprintf("unknown check %q in configuration", name)).Emit()
	}
}

// Fingerprint returns a deterministic textual form of the configuration,
// used to key cached lint results.
func (c Config) Fingerprint() string {
	names := make([]string, 0, len(c.Checks))
	for name := range c.Checks {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s=%t;", name, c.Checks[name])
	}
	return b.String()
}
