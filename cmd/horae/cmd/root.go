// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the command tree of horae.
package cmd

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"gonih.org/horae"
	"gonih.org/horae/internal/config"
	"gonih.org/horae/internal/logger"
	"gonih.org/horae/zone"
)

// dotenv is the dotenv file read from the working directory.
const dotenv = ".env"

// app is the state shared by all commands.
type app struct {
	cfgFile  string
	logLevel string

	cfg   *config.Config
	clock horae.Clock
}

// Execute runs the command line against the system clock. At debug level,
// failures are logged with their stack.
func Execute() error {
	err := newRootCmd(horae.SystemClock).Execute()
	if err != nil && zerolog.GlobalLevel() <= zerolog.DebugLevel {
		logger.ErrorWithStack(err)
	}
	return err
}

func newRootCmd(clock horae.Clock) *cobra.Command {
	a := &app{clock: clock}
	root := &cobra.Command{
		Use:   "horae",
		Short: "Civil calendar conversions in fixed-offset timezones",
		Long: `horae converts between Unix timestamps and calendar fields.

Timezones are fixed offsets from UTC, looked up by abbreviation (CEST) or full
name ("Central European Summer Time"). Output is rendered with %-directives:

  %yyyy %yy %y   year          %HH %H   hour
  %mmmm %mmm     month name    %MM %M   minute
  %mm %m         month         %SS %S   second
  %dd %d         day           %MS      millisecond
  %wdd %wd       weekday       %tz      zone abbreviation`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (TOML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (default from config, info)")

	root.AddCommand(
		newNowCmd(a),
		newConvertCmd(a),
		newFromCmd(a),
		newZonesCmd(a),
		newSeriesCmd(a),
		newCronCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile, dotenv)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := logger.Init(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
		return err
	}
	a.cfg = cfg
	log.Debug().Str("config", a.cfgFile).Str("zone", cfg.Zone).Str("format", cfg.Format).Msg("configuration loaded")
	return nil
}

// zone returns the zone named by the flag value, or the configured zone.
func (a *app) zone(name string) (zone.Zone, error) {
	if name == "" {
		return a.cfg.Location()
	}
	return zone.Lookup(name)
}

// layout returns the flag value, or the configured format.
func (a *app) layout(format string) string {
	if format == "" {
		return a.cfg.Format
	}
	return format
}

// start returns the instant given in seconds by the flag value, or the current
// instant if the flag is not set.
func (a *app) start(cmd *cobra.Command, flag string, sec float64) (horae.DateTime, error) {
	if cmd.Flags().Changed(flag) {
		return horae.FromTimestamp(sec), nil
	}
	return horae.NowFrom(a.clock)
}

// output holds the flags shared by commands printing DateTimes.
type output struct {
	zone   string
	format string
}

func (o *output) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.zone, "zone", "z", "", "timezone abbreviation or name (default from config)")
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "output layout (default from config)")
}

// print renders dt in the selected zone and layout.
func (a *app) print(cmd *cobra.Command, o output, dt horae.DateTime) error {
	z, err := a.zone(o.zone)
	if err != nil {
		return err
	}
	if err := dt.SetZone(z); err != nil {
		return errors.Wrapf(err, "moving into %s", z)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), dt.Format(a.layout(o.format)))
	return err
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		out[i] = n
	}
	return out, nil
}
