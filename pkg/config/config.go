// Package config provides configuration loading and management for
// gaugeadjust. It handles loading configuration from YAML files and provides
// default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"gaugeadjust/pkg/adjust"
	"gaugeadjust/pkg/interpolation"
)

// Config represents the application configuration loaded from YAML.
type Config struct {
	// Adjustment parameters
	Adjustment struct {
		// Model selects the error model: additive, multiply, mixed, mfb,
		// gaugeonly or null
		Model string `yaml:"model"`

		// Neighbors is the number of raw cells around a gauge used to
		// compute the raw value at the gauge
		Neighbors int `yaml:"neighbors"`

		// Statistic reduces those neighbors to one value: mean, median or
		// best
		Statistic string `yaml:"statistic"`

		// MinGauges is the minimum number of valid gauges required for an
		// adjustment
		MinGauges int `yaml:"minGauges"`

		// MinValue is the validity threshold for gauge and raw values
		MinValue float64 `yaml:"minValue"`
	} `yaml:"adjustment"`

	// Mean field bias parameters, only used by the mfb model
	MFB struct {
		// Method derives the correction factor: mean, median or linregr
		Method string `yaml:"method"`

		// MinSlope, MinCorrelation and MaxPValue gate the linregr method
		MinSlope       float64 `yaml:"minSlope"`
		MinCorrelation float64 `yaml:"minCorrelation"`
		MaxPValue      float64 `yaml:"maxPValue"`
	} `yaml:"mfb"`

	// Inverse distance weighting parameters for the error interpolation
	IDW struct {
		// Neighbors is the number of gauges contributing to each raw cell
		Neighbors int `yaml:"neighbors"`

		// Power is the distance exponent
		Power float64 `yaml:"power"`
	} `yaml:"idw"`

	// Output parameters
	Output struct {
		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	opts := adjust.DefaultOptions()
	cfg.Adjustment.Model = string(adjust.ModelAdditive)
	cfg.Adjustment.Neighbors = opts.Neighbors
	cfg.Adjustment.Statistic = string(opts.Statistic)
	cfg.Adjustment.MinGauges = opts.MinGauges
	cfg.Adjustment.MinValue = opts.MinValue

	cfg.MFB.Method = string(opts.MFB.Method)
	cfg.MFB.MinSlope = opts.MFB.MinSlope
	cfg.MFB.MinCorrelation = opts.MFB.MinCorrelation
	cfg.MFB.MaxPValue = opts.MFB.MaxPValue

	cfg.IDW.Neighbors = 4
	cfg.IDW.Power = 2

	cfg.Output.Verbose = true

	return cfg
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file.
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Model returns the configured error model.
func (c *Config) Model() adjust.Model {
	return adjust.Model(c.Adjustment.Model)
}

// AdjustOptions converts the configuration into adjustment options.
func (c *Config) AdjustOptions() adjust.Options {
	opts := adjust.DefaultOptions()
	opts.Neighbors = c.Adjustment.Neighbors
	opts.Statistic = adjust.Statistic(c.Adjustment.Statistic)
	opts.MinGauges = c.Adjustment.MinGauges
	opts.MinValue = c.Adjustment.MinValue
	opts.MFB = adjust.MFBOptions{
		Method:         adjust.MFBMethod(c.MFB.Method),
		MinSlope:       c.MFB.MinSlope,
		MinCorrelation: c.MFB.MinCorrelation,
		MaxPValue:      c.MFB.MaxPValue,
	}
	opts.NewInterpolator = interpolation.IDWFactory(interpolation.Options{
		Neighbors: c.IDW.Neighbors,
		Power:     c.IDW.Power,
	})
	return opts
}
