// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the settings of the horae command.
//
// Settings are layered, later sources overriding earlier ones:
//
//  1. built-in defaults
//  2. a TOML file
//  3. a .env file, for variables not already set in the environment
//  4. HORAE_* environment variables
//
// The result is validated before it is returned.
package config

import (
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"gonih.org/horae"
	"gonih.org/horae/zone"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "HORAE"

// Config holds the settings of the horae command.
type Config struct {
	// Zone is the display zone, by name or abbreviation.
	Zone string `toml:"zone" validate:"required,zone"`
	// Format is the default layout for rendering DateTimes.
	Format string `toml:"format" validate:"required"`
	// LogLevel is a zerolog level name.
	LogLevel string `toml:"log_level" split_words:"true" validate:"oneof=trace debug info warn error fatal panic disabled"`
	// SeriesLimit caps the length of series without their own bound.
	SeriesLimit int `toml:"series_limit" split_words:"true" validate:"gte=1,lte=100000"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Zone:        zone.UTC.Abbrev,
		Format:      horae.DefaultLayout,
		LogLevel:    "info",
		SeriesLimit: 100,
	}
}

// Load returns the configuration from the TOML file at path and the dotenv
// file, layered over the defaults. An empty path or dotenv skips that source.
// A missing dotenv file is not an error, a missing TOML file is.
func Load(path, dotenv string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "reading %s", dotenv)
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.Wrap(err, "reading environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}

// Location returns the display zone.
func (c *Config) Location() (zone.Zone, error) {
	return zone.Lookup(c.Zone)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registering a fixed, well-formed tag can not fail.
	_ = v.RegisterValidation("zone", func(fl validator.FieldLevel) bool {
		_, err := zone.Lookup(fl.Field().String())
		return err == nil
	})
	return v
}

