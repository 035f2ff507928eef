// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/eigendiag/eigen"
	"github.com/katalvlaran/eigendiag/poly"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "EIGENDIAG"
	defaultConfigName = "eigendiag"
)

// Config is the effective CLI configuration after flags, env and file.
type Config struct {
	Tolerance float64     `mapstructure:"tolerance" yaml:"tolerance"`
	ScanSteps int         `mapstructure:"scan_steps" yaml:"scan_steps"`
	ScanMin   float64     `mapstructure:"scan_min" yaml:"scan_min"`
	ScanMax   float64     `mapstructure:"scan_max" yaml:"scan_max"`
	LogLevel  string      `mapstructure:"log_level" yaml:"log_level"`
	Steps     bool        `mapstructure:"steps" yaml:"steps"`
	Matrix    [][]float64 `mapstructure:"matrix" yaml:"matrix"`

	loadedFrom string
	logLevel   logrus.Level
}

// flagKeys maps viper keys to the flags bound to them.
var flagKeys = map[string]string{
	"tolerance":  "tolerance",
	"scan_steps": "scan-steps",
	"scan_min":   "scan-min",
	"scan_max":   "scan-max",
	"log_level":  "log-level",
	"steps":      "steps",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tolerance", eigen.DefaultTolerance)
	v.SetDefault("scan_steps", poly.DefaultScanSteps)
	v.SetDefault("scan_min", 0.0)
	v.SetDefault("scan_max", 0.0)
	v.SetDefault("log_level", "warn")
	v.SetDefault("steps", false)
}

// loadConfig resolves the configuration with precedence flag > env > file > default.
// An explicit configPath must exist; otherwise ./eigendiag.yaml is optional.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet, configPath string) (*Config, error) {
	setDefaults(v)
	for key, name := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	cfg.loadedFrom = v.ConfigFileUsed()

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if math.IsNaN(cfg.Tolerance) || math.IsInf(cfg.Tolerance, 0) || cfg.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be > 0, got %g", cfg.Tolerance)
	}
	if cfg.ScanSteps < 1 {
		return fmt.Errorf("scan-steps must be >= 1, got %d", cfg.ScanSteps)
	}
	if cfg.hasScanInterval() && !(cfg.ScanMin < cfg.ScanMax) {
		return fmt.Errorf("scan-min must be < scan-max, got [%g, %g]", cfg.ScanMin, cfg.ScanMax)
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	cfg.logLevel = level

	return nil
}

// hasScanInterval reports whether a fixed scan window was requested.
func (c *Config) hasScanInterval() bool { return c.ScanMin != 0 || c.ScanMax != 0 }

// options translates the configuration into pipeline options.
func (c *Config) options() []eigen.Option {
	opts := []eigen.Option{
		eigen.WithTolerance(c.Tolerance),
		eigen.WithScanSteps(c.ScanSteps),
	}
	if c.hasScanInterval() {
		opts = append(opts, eigen.WithScanInterval(c.ScanMin, c.ScanMax))
	}

	return opts
}
