// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hclust/dataset"
	"github.com/katalvlaran/hclust/hac"
	"github.com/katalvlaran/hclust/internal/config"
	"github.com/katalvlaran/hclust/internal/logutil"
	"github.com/katalvlaran/hclust/matrix"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hclust.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, dataset.DefaultFields, cfg.Fields)
	require.Equal(t, hac.Single, cfg.Linkage)
	require.True(t, cfg.Normalize)
	require.Equal(t, 1, cfg.Workers)

	// Default has no input, so it is not runnable on its own.
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
	cfg.Input = "data.csv"
	require.NoError(t, cfg.Validate())

	cfg.Fields[0] = "changed"
	require.Equal(t, "child_mort", dataset.DefaultFields[0], "Default must copy the field list")
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
input = "Country-data.csv"
linkage = "Complete"
zero_variance = "center"
workers = 4
fields = ["income", "gdpp"]

[output]
format = "json"

[log]
level = "debug"
format = "json"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, "Country-data.csv", cfg.Input)
	require.Equal(t, hac.Complete, cfg.Linkage)
	require.Equal(t, matrix.ZeroVarianceCenter, cfg.ZeroVariance)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, []string{"income", "gdpp"}, cfg.Fields)
	require.Equal(t, config.OutputJSON, cfg.Output.Format)
	require.Equal(t, "debug", cfg.Log.Level)

	// Untouched keys keep their defaults.
	require.Equal(t, "country", cfg.LabelField)
	require.True(t, cfg.Normalize)
	require.Equal(t, logutil.DefaultLogConfig().MaxSize, cfg.Log.MaxSize)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(writeFile(t, `linkage = "ward"`))
	require.ErrorIs(t, err, hac.ErrUnsupportedLinkage)

	_, err = config.Load(writeFile(t, `zero_variance = "drop"`))
	require.ErrorIs(t, err, matrix.ErrUnknownPolicy)

	_, err = config.Load(writeFile(t, `inptu = "typo.csv"`))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.Contains(t, err.Error(), "inptu")

	_, err = config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"no fields", func(c *config.Config) { c.Fields = nil }},
		{"workers", func(c *config.Config) { c.Workers = 0 }},
		{"linkage", func(c *config.Config) { c.Linkage = hac.Linkage(7) }},
		{"zero variance", func(c *config.Config) { c.ZeroVariance = matrix.ZeroVariancePolicy(7) }},
		{"output", func(c *config.Config) { c.Output.Format = "yaml" }},
		{"log format", func(c *config.Config) { c.Log.Format = "xml" }},
		{"log level", func(c *config.Config) { c.Log.Level = "chatty" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Input = "data.csv"
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}
