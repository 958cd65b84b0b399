// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

// skillmarket is a command line client for the Skillmesh registry: it
// manages the local wallet session and mints, lists, buys, and browses
// tokenized skills.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/skillmesh/skillmarket-core/logger"
)

var rootCmd = &cobra.Command{
	Use:          "skillmarket",
	Short:        "Client for the Skillmesh skill registry",
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		logger.Initialize()
	},
}

func main() {
	rootCmd.AddCommand(
		connectCmd,
		disconnectCmd,
		statusCmd,
		mintCmd,
		sellCmd,
		buyCmd,
		delistCmd,
		browseCmd,
		mineCmd,
	)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
