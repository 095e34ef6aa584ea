// SPDX-License-Identifier: MIT

// Command hclust clusters the rows of a CSV file and prints the dendrogram.
//
//	hclust -input Country-data.csv -linkage complete
//	hclust -config hclust.toml -format json -output merges.json
//
// Flags override values from the configuration file.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/hclust/dataset"
	"github.com/katalvlaran/hclust/dendrogram"
	"github.com/katalvlaran/hclust/hac"
	"github.com/katalvlaran/hclust/internal/config"
	"github.com/katalvlaran/hclust/internal/logutil"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "hclust:", err)
		}
		os.Exit(1)
	}
}

// result is the JSON output document.
type result struct {
	Linkage string       `json:"linkage"`
	Items   int          `json:"items"`
	Labels  []string     `json:"labels"`
	Merges  hac.Merges   `json:"merges"`
	Matrix  [][4]float64 `json:"linkage_matrix"`
	Leaves  []string     `json:"leaf_order"`
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}

	logger, err := logutil.Setup(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	if err = cluster(cfg, logger, stdout); err != nil {
		logger.Error("clustering failed", zap.String("input", cfg.Input), zap.Error(err))
		return err
	}

	return nil
}

// parseConfig loads the optional -config file and applies explicitly set flags on top.
func parseConfig(args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("hclust", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configFile   = fs.String("config", "", "path to a TOML configuration file")
		input        = fs.String("input", "", "CSV file with a header row")
		labelField   = fs.String("label-field", dataset.DefaultLabelField, "column used for leaf labels")
		fields       = fs.String("fields", strings.Join(dataset.DefaultFields, ","), "comma-separated feature columns")
		linkage      = fs.String("linkage", hac.NameSingle, "linkage rule: single | complete")
		normalize    = fs.Bool("normalize", true, "z-score every feature column")
		zeroVariance = fs.String("zero-variance", "error", "constant column policy: error | center")
		workers      = fs.Int("workers", 1, "goroutines scanning candidate pairs")
		format       = fs.String("format", config.OutputText, "output format: text | json")
		output       = fs.String("output", "", "output file (default stdout)")
		logLevel     = fs.String("log-level", "info", "debug | info | warn | error")
	)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return config.Config{}, err
		}
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "label-field":
			cfg.LabelField = *labelField
		case "fields":
			cfg.Fields = splitFields(*fields)
		case "linkage":
			err = cfg.Linkage.UnmarshalText([]byte(*linkage))
		case "normalize":
			cfg.Normalize = *normalize
		case "zero-variance":
			err = cfg.ZeroVariance.UnmarshalText([]byte(*zeroVariance))
		case "workers":
			cfg.Workers = *workers
		case "format":
			cfg.Output.Format = *format
		case "output":
			cfg.Output.Path = *output
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	if err != nil {
		return config.Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func splitFields(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}

	return out
}

// cluster runs load → extract → normalize → cluster → render.
func cluster(cfg config.Config, logger *zap.Logger, stdout io.Writer) error {
	records, err := dataset.LoadFile(cfg.Input)
	if err != nil {
		return err
	}
	vectors, err := dataset.Features(records, cfg.Fields)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}
	if cfg.Normalize {
		if vectors, err = dataset.Normalize(vectors, cfg.ZeroVariance); err != nil {
			return err
		}
	}
	logger.Info("dataset loaded",
		zap.String("input", cfg.Input),
		zap.Int("records", len(records)),
		zap.Int("features", len(cfg.Fields)),
		zap.Bool("normalized", cfg.Normalize),
	)

	merges, err := hac.Cluster(vectors,
		hac.WithLinkage(cfg.Linkage),
		hac.WithWorkers(cfg.Workers),
		hac.WithLogger(logger.Named("hac")),
	)
	if err != nil {
		return err
	}

	labels := dataset.Labels(records, cfg.LabelField)
	tree, err := dendrogram.Build(merges, labels)
	if err != nil {
		return err
	}

	write := func(w io.Writer) error {
		if cfg.Output.Format == config.OutputJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(result{
				Linkage: cfg.Linkage.String(),
				Items:   len(labels),
				Labels:  labels,
				Merges:  merges,
				Matrix:  merges.Matrix(),
				Leaves:  tree.Leaves(),
			})
		}
		return tree.Render(w)
	}

	if cfg.Output.Path == "" {
		return write(stdout)
	}
	f, err := os.Create(cfg.Output.Path)
	if err != nil {
		return err
	}
	if err = writeAndClose(f, write); err != nil {
		return fmt.Errorf("%s: %w", cfg.Output.Path, err)
	}
	logger.Info("result written", zap.String("path", cfg.Output.Path), zap.String("format", cfg.Output.Format))

	return nil
}

// writeAndClose runs write on wc and always closes it. The close error is
// returned when write itself succeeded.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	err := write(wc)
	if cerr := wc.Close(); err == nil {
		err = cerr
	}

	return err
}
