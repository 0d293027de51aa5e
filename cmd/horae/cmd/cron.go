// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"gonih.org/horae/internal/schedule"
)

func newCronCmd(a *app) *cobra.Command {
	var (
		o     output
		start float64
		count int
	)
	cmd := &cobra.Command{
		Use:   "cron <spec>",
		Short: "List the next firings of a cron schedule",
		Long: `Lists the next firings of a standard five-field cron spec after the given
instant. Specs are evaluated in UTC.

Examples:
  horae cron "*/15 * * * *"
  horae cron "0 9 * * MON-FRI" --start 1614261599 --count 3 --zone CEST`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := a.start(cmd, "start", start)
			if err != nil {
				return errors.Wrap(err, "reading clock")
			}
			firings, err := schedule.Cron(args[0], dt, count)
			if err != nil {
				return err
			}
			return a.printAll(cmd, o, firings)
		},
	}
	o.register(cmd)
	cmd.Flags().Float64Var(&start, "start", 0, "start in seconds since the epoch (default now)")
	cmd.Flags().IntVarP(&count, "count", "n", 5, "number of firings")
	return cmd
}
