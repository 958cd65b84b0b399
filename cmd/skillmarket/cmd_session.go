// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillmesh/skillmarket-core/ether"
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect the local wallet and remember the session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.close()

		if err := app.manager.Connect(cmd.Context()); err != nil {
			return err
		}
		session := app.manager.Current()
		fmt.Printf("Connected as %s (balance %s ETH)\n", session.Address, ether.FormatWei(session.Balance))
		return nil
	},
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Disconnect the wallet session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.close()

		app.manager.Disconnect()
		fmt.Println("Disconnected")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.close()

		session := app.manager.Current()
		if !session.Connected() {
			fmt.Println("Not connected")
			return nil
		}
		app.manager.RefreshBalance(cmd.Context())
		session = app.manager.Current()
		fmt.Printf("Connected as %s\n", session.Address)
		fmt.Printf("Balance: %s ETH\n", ether.FormatWei(session.Balance))
		fmt.Printf("Registry: %s\n", app.cfg.RegistryAddress)
		return nil
	},
}
