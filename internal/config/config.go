// SPDX-License-Identifier: MIT

// Package config loads the rootfind settings from TOML or YAML files.
//
// A file only needs the keys it wants to change; everything else keeps the
// value from Default. Command-line flags are applied on top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every load and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// MaxPrecision bounds Precision for every backend (bits or digits).
const MaxPrecision = 1 << 20

// Number backends understood by the CLI.
const (
	NumberFloat    = "float"
	NumberBigFloat = "bigfloat"
	NumberRat      = "rat"
	NumberDecimal  = "decimal"
)

// Config holds the solver settings shared by all rootfind commands.
type Config struct {
	// Number selects the arithmetic backend: float, bigfloat, rat or decimal.
	Number string `toml:"number" yaml:"number"`
	// Precision is bits for bigfloat and rat (square roots), digits for
	// decimal; 0 keeps the backend default. At most MaxPrecision.
	Precision uint `toml:"precision" yaml:"precision"`
	// Tolerance is a decimal literal; empty keeps each method's default.
	Tolerance string `toml:"tolerance" yaml:"tolerance"`
	// MaxIter caps iterations; 0 keeps each method's default.
	MaxIter int `toml:"max_iter" yaml:"max_iter"`
	// Subdivisions is the default n for scan.
	Subdivisions int `toml:"subdivisions" yaml:"subdivisions"`
	// Adjust snaps nearly-real closed-form roots onto an axis.
	Adjust bool `toml:"adjust" yaml:"adjust"`
	// Epsilon is the snapping threshold used with Adjust.
	Epsilon float64 `toml:"epsilon" yaml:"epsilon"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Number:       NumberFloat,
		Subdivisions: 100,
		Adjust:       true,
		Epsilon:      2.5e-15,
	}
}

// Load reads path on top of Default and validates the result. The decoder
// is chosen by extension: .toml, .yaml or .yml. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(content), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return cfg, fmt.Errorf("%w: %s: unknown keys %v", ErrInvalidConfig, path, keys)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, ext)
	}

	return cfg, cfg.Validate()
}

// Validate checks every field independently of the backend.
func (c Config) Validate() error {
	switch c.Number {
	case NumberFloat, NumberBigFloat, NumberRat, NumberDecimal:
	default:
		return fmt.Errorf("%w: number must be float, bigfloat, rat or decimal, got %q", ErrInvalidConfig, c.Number)
	}
	if c.Precision > MaxPrecision {
		return fmt.Errorf("%w: precision must be <= %d, got %d", ErrInvalidConfig, MaxPrecision, c.Precision)
	}
	if c.Tolerance != "" {
		// big.Float keeps literals like 1e-400 that float64 would flush to zero.
		tol, _, err := big.ParseFloat(c.Tolerance, 10, 64, big.ToNearestEven)
		if err != nil || tol.Sign() <= 0 || tol.IsInf() {
			return fmt.Errorf("%w: tolerance must be a positive number, got %q", ErrInvalidConfig, c.Tolerance)
		}
	}
	if c.MaxIter < 0 {
		return fmt.Errorf("%w: max_iter must be >= 0, got %d", ErrInvalidConfig, c.MaxIter)
	}
	if c.Subdivisions <= 0 {
		return fmt.Errorf("%w: subdivisions must be > 0, got %d", ErrInvalidConfig, c.Subdivisions)
	}
	if c.Epsilon < 0 || math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) {
		return fmt.Errorf("%w: epsilon must be finite and >= 0, got %v", ErrInvalidConfig, c.Epsilon)
	}

	return nil
}
