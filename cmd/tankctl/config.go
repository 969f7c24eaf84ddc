// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/tankmix/service"
)

var errConfig = errors.New("tankctl: invalid config")

// toolConfig is the effective tankctl configuration.
type toolConfig struct {
	Catalog  string
	Readings string
	Workers  int
	Epsilon  float64
	Legacy   bool
}

type fileConfig struct {
	Catalog  string  `toml:"catalog"`
	Readings string  `toml:"readings"`
	Workers  int     `toml:"workers"`
	Epsilon  float64 `toml:"epsilon"`
	Legacy   bool    `toml:"legacy_fallback"`
}

func defaultToolConfig() toolConfig {
	return toolConfig{
		Catalog:  "plant.toml",
		Readings: "readings.toml",
		Workers:  service.DefaultWorkers,
	}
}

// loadToolConfig overlays the keys defined in the TOML file at path on the
// defaults. Relative catalog and readings paths resolve against the
// directory of the config file.
func loadToolConfig(path string) (toolConfig, error) {
	cfg := defaultToolConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return toolConfig{}, fmt.Errorf("load tankctl config: %w", err)
	}
	base := filepath.Dir(path)

	if meta.IsDefined("catalog") {
		cfg.Catalog = resolve(base, raw.Catalog)
	}

	if meta.IsDefined("readings") {
		cfg.Readings = resolve(base, raw.Readings)
	}

	if meta.IsDefined("workers") {
		if raw.Workers < 1 {
			return toolConfig{}, fmt.Errorf("%w: workers = %d", errConfig, raw.Workers)
		}
		cfg.Workers = raw.Workers
	}

	if meta.IsDefined("epsilon") {
		if raw.Epsilon < 0 {
			return toolConfig{}, fmt.Errorf("%w: epsilon = %g", errConfig, raw.Epsilon)
		}
		cfg.Epsilon = raw.Epsilon
	}

	if meta.IsDefined("legacy_fallback") {
		cfg.Legacy = raw.Legacy
	}

	return cfg, nil
}

func resolve(base, p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(base, p)
}
