// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"gonih.org/horae"
	"gonih.org/horae/internal/icsexport"
	"gonih.org/horae/internal/schedule"
)

func newSeriesCmd(a *app) *cobra.Command {
	var (
		o       output
		start   float64
		limit   int
		ics     bool
		summary string
		length  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "series <rrule>",
		Short: "Expand a recurrence rule",
		Long: `Expands an RFC 5545 recurrence rule, starting at the given instant.
Rules are evaluated in UTC. Rules without COUNT or UNTIL are capped at
--limit occurrences.

Examples:
  horae series "FREQ=WEEKLY;BYDAY=MO,WE;COUNT=4" --start 1614589200
  horae series "FREQ=MONTHLY" --limit 12 --ics --summary "Rent"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := a.start(cmd, "start", start)
			if err != nil {
				return errors.Wrap(err, "reading clock")
			}
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.SeriesLimit
			}
			z, err := a.zone(o.zone)
			if err != nil {
				return err
			}
			series, err := schedule.Recurrence(args[0], dt.In(z), limit)
			if err != nil {
				return err
			}
			log.Debug().Str("rule", args[0]).Int("occurrences", len(series)).Msg("expanded recurrence")
			if ics {
				return a.writeICS(cmd, summary, series, length)
			}
			return a.printAll(cmd, o, series)
		},
	}
	o.register(cmd)
	cmd.Flags().Float64Var(&start, "start", 0, "start in seconds since the epoch (default now)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of occurrences (default from config)")
	cmd.Flags().BoolVar(&ics, "ics", false, "write an iCalendar file instead of text")
	cmd.Flags().StringVar(&summary, "summary", "horae", "event summary for --ics")
	cmd.Flags().DurationVar(&length, "length", time.Hour, "event length for --ics")
	return cmd
}

func (a *app) printAll(cmd *cobra.Command, o output, series []horae.DateTime) error {
	for _, dt := range series {
		if err := a.print(cmd, o, dt); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) writeICS(cmd *cobra.Command, summary string, series []horae.DateTime, length time.Duration) error {
	now, err := horae.NowFrom(a.clock)
	if err != nil {
		return errors.Wrap(err, "reading clock")
	}
	e := icsexport.Export{Summary: summary, Length: length, Stamp: now}
	return e.Write(cmd.OutOrStdout(), series)
}
