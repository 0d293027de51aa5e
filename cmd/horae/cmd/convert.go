// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"gonih.org/horae"
)

func newConvertCmd(a *app) *cobra.Command {
	var o output
	cmd := &cobra.Command{
		Use:   "convert <seconds>",
		Short: "Convert a Unix timestamp to calendar fields",
		Long: `Converts seconds since 1970-01-01T00:00:00Z, optionally fractional, to
calendar fields. Instants before the epoch or after 9999-12-31T23:59:59Z
saturate.

Examples:
  horae convert 924688965
  horae convert 1130590.958 --zone MART`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sec, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Wrapf(err, "parsing timestamp %q", args[0])
			}
			dt := horae.FromTimestamp(sec)
			if dt.Timestamp() != sec {
				log.Debug().Float64("input", sec).Float64("timestamp", dt.Timestamp()).Msg("timestamp saturated or rounded")
			}
			return a.print(cmd, o, dt)
		},
	}
	o.register(cmd)
	return cmd
}
