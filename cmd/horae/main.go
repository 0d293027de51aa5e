// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command horae converts between Unix timestamps and civil calendar fields in
// fixed-offset timezones.
package main

import (
	"os"

	"gonih.org/horae/cmd/horae/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
