// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gonih.org/horae"
)

func newFromCmd(a *app) *cobra.Command {
	var o output
	cmd := &cobra.Command{
		Use:   "from <year> <month> <day> <hour> <minute> <second>",
		Short: "Convert UTC calendar fields to a Unix timestamp",
		Long: `Validates UTC calendar fields, prints them rendered in the selected zone
and prints the instant they denote in seconds since the epoch.

Examples:
  horae from 2021 12 31 23 59 59
  horae from 2021 12 31 23 59 59 --zone CHADT`,
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseInts(args)
			if err != nil {
				return err
			}
			dt, err := horae.FromCalendar(f[0], f[1], f[2], f[3], f[4], f[5])
			if err != nil {
				return err
			}
			if err := a.print(cmd, o, dt); err != nil {
				return err
			}
			sec, _ := dt.Unix()
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sec)
			return err
		},
	}
	o.register(cmd)
	return cmd
}
