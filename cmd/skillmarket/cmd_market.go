// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/skillmesh/skillmarket-core/skillreg"
)

var mintFlags struct {
	description string
	category    string
}

var mintCmd = &cobra.Command{
	Use:   "mint <name>",
	Short: "Mint a new skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.close()

		client, err := app.client()
		if err != nil {
			return err
		}
		tokenID, err := client.MintSkill(cmd.Context(), skillreg.MintRequest{
			Name:        args[0],
			Description: mintFlags.description,
			Category:    mintFlags.category,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Minted skill %d\n", tokenID)
		return nil
	},
}

var sellCmd = &cobra.Command{
	Use:   "sell <token-id> <price>",
	Short: "List an owned skill for sale at a decimal ETH price",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokenID, err := parseTokenID(args[0])
		if err != nil {
			return err
		}
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.close()

		client, err := app.client()
		if err != nil {
			return err
		}
		if err := client.ListForSale(cmd.Context(), tokenID, args[1]); err != nil {
			return err
		}
		fmt.Printf("Skill %d listed at %s ETH\n", tokenID, args[1])
		return nil
	},
}

var buyCmd = &cobra.Command{
	Use:   "buy <token-id>",
	Short: "Buy a listed skill at its listed price",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokenID, err := parseTokenID(args[0])
		if err != nil {
			return err
		}
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.close()

		client, err := app.client()
		if err != nil {
			return err
		}
		if err := client.Buy(cmd.Context(), tokenID); err != nil {
			return err
		}
		fmt.Printf("Bought skill %d\n", tokenID)
		return nil
	},
}

var delistCmd = &cobra.Command{
	Use:   "delist <token-id>",
	Short: "Remove an owned skill from sale",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokenID, err := parseTokenID(args[0])
		if err != nil {
			return err
		}
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.close()

		client, err := app.client()
		if err != nil {
			return err
		}
		if err := client.RemoveFromSale(cmd.Context(), tokenID); err != nil {
			return err
		}
		fmt.Printf("Skill %d removed from sale\n", tokenID)
		return nil
	},
}

func parseTokenID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token id %q", s)
	}
	return id, nil
}

func init() {
	mintCmd.Flags().StringVar(&mintFlags.description, "description", "", "what the skill offers")
	mintCmd.Flags().StringVar(&mintFlags.category, "category", "Other", "skill category")
	_ = mintCmd.MarkFlagRequired("description")
}
