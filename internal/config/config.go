// SPDX-License-Identifier: EPL-2.0

// Package config loads the settings of the pcmsplit command from a YAML
// file and validates them.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ik5/pcmsplit"
	"github.com/ik5/pcmsplit/audio"
)

// Config mirrors the command line flags. Empty fields keep their defaults.
type Config struct {
	Input      string `yaml:"input,omitempty"`
	Stereo     string `yaml:"stereo,omitempty"`
	Mono       string `yaml:"mono,omitempty"`
	Amplitudes string `yaml:"amplitudes,omitempty"`
	MonoWAV    string `yaml:"mono_wav,omitempty"`

	// HeaderSize is a pointer so that an explicit 0 can be told apart from
	// an unset value.
	HeaderSize *int   `yaml:"header_size,omitempty"`
	Arithmetic string `yaml:"arithmetic,omitempty"`
	SampleRate int    `yaml:"sample_rate,omitempty"`
}

// Default returns the configuration used when no file and no flags are given.
func Default() *Config {
	paths := pcmsplit.DefaultPaths()
	opts := pcmsplit.DefaultOptions()
	headerSize := opts.HeaderSize

	return &Config{
		Input:      paths.Input,
		Stereo:     paths.Stereo,
		Mono:       paths.Mono,
		Amplitudes: paths.Amplitudes,
		HeaderSize: &headerSize,
		Arithmetic: opts.Arithmetic.String(),
		SampleRate: opts.SampleRate,
	}
}

// Load reads path and overlays it on Default. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	cfg.Merge(&file)

	return cfg, nil
}

// Merge copies every set field of other into c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	setString(&c.Input, other.Input)
	setString(&c.Stereo, other.Stereo)
	setString(&c.Mono, other.Mono)
	setString(&c.Amplitudes, other.Amplitudes)
	setString(&c.MonoWAV, other.MonoWAV)
	setString(&c.Arithmetic, other.Arithmetic)
	if other.HeaderSize != nil {
		v := *other.HeaderSize
		c.HeaderSize = &v
	}
	if other.SampleRate != 0 {
		c.SampleRate = other.SampleRate
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Validate checks that every required path is set and that the numeric
// settings make sense.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name, value string
	}{
		{"input", c.Input},
		{"stereo", c.Stereo},
		{"mono", c.Mono},
		{"amplitudes", c.Amplitudes},
	} {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingPath, f.name)
		}
	}

	if c.HeaderSize != nil && *c.HeaderSize < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHeaderSize, *c.HeaderSize)
	}
	if c.SampleRate < 0 || (c.MonoWAV != "" && c.SampleRate == 0) {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, c.SampleRate)
	}
	if _, err := audio.ParseArithmetic(c.Arithmetic); err != nil {
		return err
	}

	return nil
}

// Paths returns the file names of the configuration.
func (c *Config) Paths() pcmsplit.Paths {
	return pcmsplit.Paths{
		Input:      c.Input,
		Stereo:     c.Stereo,
		Mono:       c.Mono,
		Amplitudes: c.Amplitudes,
		MonoWAV:    c.MonoWAV,
	}
}

// Options returns the splitter options. Call Validate first; an unknown
// arithmetic falls back to audio.Signed.
func (c *Config) Options() pcmsplit.Options {
	opts := pcmsplit.DefaultOptions()
	if c.HeaderSize != nil {
		opts.HeaderSize = *c.HeaderSize
	}
	if arith, err := audio.ParseArithmetic(c.Arithmetic); err == nil {
		opts.Arithmetic = arith
	}
	if c.SampleRate > 0 {
		opts.SampleRate = c.SampleRate
	}
	return opts
}
