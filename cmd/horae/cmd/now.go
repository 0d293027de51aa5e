// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"gonih.org/horae"
)

func newNowCmd(a *app) *cobra.Command {
	var o output
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current time",
		Long: `Prints the current time in the selected zone.

Examples:
  horae now
  horae now --zone CEST
  horae now --zone "Nepal Time" --format "%HH:%MM %tz"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := horae.NowFrom(a.clock)
			if err != nil {
				return errors.Wrap(err, "reading clock")
			}
			return a.print(cmd, o, dt)
		},
	}
	o.register(cmd)
	return cmd
}
