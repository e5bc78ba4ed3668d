// SPDX-License-Identifier: MIT
// Package: voro3d/container
//
// config.go — functional-options Grid construction plus a YAML-loadable
// Config, grounded on pthm-soup/config.Load's embedded-defaults-plus-overlay
// pattern and dijkstra/types.go's panicking Option constructors.

package container

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-serializable description of a Grid, suitable for
// checking a reproducible run configuration into version control.
type Config struct {
	Box Box `yaml:"box"`

	Nx int `yaml:"nx"`
	Ny int `yaml:"ny"`
	Nz int `yaml:"nz"`

	// BlockCapacityCeiling bounds the power-of-two growth of any one
	// block's slot array (spec §4.1's "exceeding a configured ceiling
	// raises a fatal condition").
	BlockCapacityCeiling int `yaml:"block_capacity_ceiling"`

	// Radical enables radius-weighted (power diagram) particle storage.
	Radical bool `yaml:"radical"`
}

// DefaultConfig returns a Config with a 1x1x1 domain, a 1x1x1 grid, and a
// capacity ceiling generous enough for exploratory use.
func DefaultConfig() Config {
	return Config{
		Box:                  Box{AX: 0, BX: 1, AY: 0, BY: 1, AZ: 0, BZ: 1},
		Nx:                   1,
		Ny:                   1,
		Nz:                   1,
		BlockCapacityCeiling: 1 << 20,
	}
}

// LoadConfig reads a YAML file at path and overlays it onto DefaultConfig,
// mirroring pthm-soup/config.Load's "defaults then overlay" merge: an empty
// path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("container: reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("container: parsing config file: %w", err)
	}
	return cfg, nil
}

// WriteYAML serializes cfg to path.
func (c Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("container: marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Option customizes a Grid before construction. As a rule, option
// constructors panic on invalid arguments (dijkstra's WithMaxDistance /
// WithInfEdgeThreshold convention) since a misconfigured grid cannot be
// partially valid.
type Option func(cfg *Config)

// WithBox sets the domain box. Panics if box's intervals are not strictly
// increasing.
func WithBox(box Box) Option {
	return func(cfg *Config) {
		if err := box.validate(); err != nil {
			panic(err.Error())
		}
		cfg.Box = box
	}
}

// WithGridDims sets the block grid resolution. Panics if any dimension is
// non-positive.
func WithGridDims(nx, ny, nz int) Option {
	return func(cfg *Config) {
		if nx <= 0 || ny <= 0 || nz <= 0 {
			panic(ErrBadGridDims.Error())
		}
		cfg.Nx, cfg.Ny, cfg.Nz = nx, ny, nz
	}
}

// WithBlockCapacityCeiling overrides the per-block capacity ceiling. Panics
// if ceiling is non-positive.
func WithBlockCapacityCeiling(ceiling int) Option {
	return func(cfg *Config) {
		if ceiling <= 0 {
			panic(ErrBadCapacityCeiling.Error())
		}
		cfg.BlockCapacityCeiling = ceiling
	}
}

// WithRadical enables radius-weighted (power diagram) storage.
func WithRadical() Option {
	return func(cfg *Config) { cfg.Radical = true }
}

// logOrDiscard returns logger if non-nil, else a logger writing to
// io.Discard — Grid never assumes a caller wants stderr noise by default
// (spec §9's redesign note against implicit global logging state).
func logOrDiscard(logger *log.Logger) *log.Logger {
	if logger != nil {
		return logger
	}
	return log.New(discardWriter{}, "", 0)
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
