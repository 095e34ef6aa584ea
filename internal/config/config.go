// SPDX-License-Identifier: MIT

// Package config holds the TOML configuration of the hclust command.
//
// Load starts from Default and overlays the file, so a file only needs the
// keys it changes:
//
//	input   = "Country-data.csv"
//	linkage = "complete"
//
//	[log]
//	level = "debug"
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/hclust/dataset"
	"github.com/katalvlaran/hclust/hac"
	"github.com/katalvlaran/hclust/internal/logutil"
	"github.com/katalvlaran/hclust/matrix"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output is the [output] section.
type Output struct {
	Format string `toml:"format"` // text | json
	Path   string `toml:"path"`   // empty writes to stdout
}

// Config is the full pipeline configuration.
type Config struct {
	Input        string                    `toml:"input"`
	LabelField   string                    `toml:"label_field"`
	Fields       []string                  `toml:"fields"`
	Linkage      hac.Linkage               `toml:"linkage"`
	Normalize    bool                      `toml:"normalize"`
	ZeroVariance matrix.ZeroVariancePolicy `toml:"zero_variance"`
	Workers      int                       `toml:"workers"`

	Output Output            `toml:"output"`
	Log    logutil.LogConfig `toml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	fields := make([]string, len(dataset.DefaultFields))
	copy(fields, dataset.DefaultFields)

	return Config{
		LabelField:   dataset.DefaultLabelField,
		Fields:       fields,
		Linkage:      hac.Single,
		Normalize:    true,
		ZeroVariance: matrix.ZeroVarianceError,
		Workers:      1,
		Output:       Output{Format: OutputText},
		Log:          logutil.DefaultLogConfig(),
	}
}

// Load decodes path over Default. Unknown keys are rejected so typos do not
// silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Validate reports the first invalid value.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Input) == "":
		return fmt.Errorf("%w: input is required", ErrInvalidConfig)
	case len(c.Fields) == 0:
		return fmt.Errorf("%w: fields must not be empty", ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := c.Linkage.MarshalText(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.ZeroVariance.MarshalText(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Output.Format {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: output format %q", ErrInvalidConfig, c.Output.Format)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
