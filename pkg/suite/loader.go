package suite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RunConfig is the on-disk structure describing how a run should
// be filtered. It can be loaded from JSON or YAML and overridden
// from the environment, so CI jobs can narrow a run without
// touching the file.
type RunConfig struct {
	// IncludeTags is the tag inclusion set. Absent means no
	// inclusion filtering.
	IncludeTags []string `json:"include_tags" yaml:"include_tags"`

	// ExcludeTags is the tag exclusion set.
	ExcludeTags []string `json:"exclude_tags" yaml:"exclude_tags"`

	// TestName optionally scopes the run to a single test.
	TestName string `json:"test_name" yaml:"test_name"`
}

// Environment variables overriding a loaded RunConfig. Values
// are comma-separated tag lists.
const (
	EnvIncludeTags = "SPEC_INCLUDE_TAGS"
	EnvExcludeTags = "SPEC_EXCLUDE_TAGS"
	EnvTestName    = "SPEC_TEST_NAME"
)

// LoadRunConfig reads a run configuration from a .json, .yaml,
// or .yml file and applies environment overrides.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read run config %s: %w", path, err,
		)
	}

	var cfg RunConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf(
				"failed to parse run config %s: %w",
				path, err,
			)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf(
				"failed to parse run config %s: %w",
				path, err,
			)
		}
	default:
		return nil, fmt.Errorf(
			"unsupported run config extension %q", ext,
		)
	}

	cfg.applyEnv()
	return &cfg, nil
}

// applyEnv overrides fields from the environment.
func (c *RunConfig) applyEnv() {
	if v, ok := os.LookupEnv(EnvIncludeTags); ok {
		c.IncludeTags = splitTags(v)
	}
	if v, ok := os.LookupEnv(EnvExcludeTags); ok {
		c.ExcludeTags = splitTags(v)
	}
	if v, ok := os.LookupEnv(EnvTestName); ok {
		c.TestName = v
	}
}

// Filter converts the configuration into a Filter value.
func (c *RunConfig) Filter() Filter {
	return Filter{
		Include: c.IncludeTags,
		Exclude: c.ExcludeTags,
	}
}

func splitTags(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
