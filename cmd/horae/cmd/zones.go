// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"gonih.org/horae"
	"gonih.org/horae/zone"
)

func newZonesCmd(a *app) *cobra.Command {
	var offset float64
	cmd := &cobra.Command{
		Use:   "zones",
		Short: "List the timezone catalogue",
		Long: `Lists every known timezone with its offset from UTC, sorted by offset.

Examples:
  horae zones
  horae zones --offset 5.75`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			zs := zone.All()
			if cmd.Flags().Changed("offset") {
				zs = zone.WithOffset(offset)
			}
			if len(zs) == 0 {
				return errors.Errorf("no timezone with offset %v", offset)
			}
			rows := make([][]string, 0, len(zs))
			for _, z := range zs {
				o, err := horae.OffsetOf(z.Offset)
				if err != nil {
					return err
				}
				rows = append(rows, []string{z.Abbrev, o.String(), z.Name})
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ABBREV", "OFFSET", "NAME").
				Rows(rows...)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return err
		},
	}
	cmd.Flags().Float64Var(&offset, "offset", 0, "only list zones with this offset in hours")
	return cmd
}
