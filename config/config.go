// Package config loads the YAML run configuration of the cavepaths CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cavepaths/cave"
	"github.com/katalvlaran/cavepaths/paths"
)

// PolicyBoth selects every policy in one run.
const PolicyBoth = "both"

// ErrInvalid wraps every validation failure; it is itself a cave.ErrConfig.
var ErrInvalid = fmt.Errorf("%w: invalid run configuration", cave.ErrConfig)

// Config is the run configuration. The zero value is not valid; start from
// Default.
type Config struct {
	// Policy is a paths.ParsePolicy name or "both".
	Policy string `yaml:"policy"`

	// Workers bounds first-level search parallelism; 1 is sequential.
	Workers int `yaml:"workers"`

	// CacheDir holds the count store. Empty disables caching.
	CacheDir string `yaml:"cache_dir"`

	// Verbosity is the klog -v level.
	Verbosity int `yaml:"verbosity"`

	Start string `yaml:"start"`
	End   string `yaml:"end"`

	// MetricsAddr, if set, serves /metrics while watching.
	MetricsAddr string `yaml:"metrics_addr"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Policy:  PolicyBoth,
		Workers: 1,
		Start:   cave.StartName,
		End:     cave.EndName,
	}
}

// Load reads path from fs over Default. Unknown keys are rejected.
func Load(fs afero.Fs, path string) (Config, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, pkgerrors.Wrapf(err, "config: read %s", path)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, pkgerrors.Wrap(err, path)
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := c.Policies(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1 (%d)", ErrInvalid, c.Workers)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("%w: verbosity must be >= 0 (%d)", ErrInvalid, c.Verbosity)
	}
	if strings.TrimSpace(c.Start) == "" || strings.TrimSpace(c.End) == "" {
		return fmt.Errorf("%w: start and end names must be non-empty", ErrInvalid)
	}
	if c.Start == c.End {
		return fmt.Errorf("%w: start and end are both %q", ErrInvalid, c.Start)
	}

	return nil
}

// Policies resolves Policy into the list of policies to run.
func (c Config) Policies() ([]paths.Policy, error) {
	if strings.EqualFold(strings.TrimSpace(c.Policy), PolicyBoth) {
		return paths.Policies(), nil
	}
	p, err := paths.ParsePolicy(c.Policy)
	if err != nil {
		return nil, fmt.Errorf("%w: policy: %v", ErrInvalid, err)
	}

	return []paths.Policy{p}, nil
}
