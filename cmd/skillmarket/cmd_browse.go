// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillmesh/skillmarket-core/marketview"
	"github.com/skillmesh/skillmarket-core/skillreg"
)

var browseFlags struct {
	search     string
	category   string
	priceRange string
	expr       string
	all        bool
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse skills listed for sale",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.close()

		reader := app.rebinder.Reader()
		var records []skillreg.SkillRecord
		if browseFlags.all {
			records, err = reader.FetchAll(cmd.Context())
		} else {
			records, err = reader.FetchForSale(cmd.Context())
		}
		if err != nil {
			return err
		}

		visible, err := marketview.NewProjector().Project(records, marketview.Query{
			Search:     browseFlags.search,
			Category:   browseFlags.category,
			PriceRange: browseFlags.priceRange,
			Expr:       browseFlags.expr,
		})
		if err != nil {
			return err
		}
		marketview.MostRecent(visible)

		printRecords(visible)
		stats := marketview.ComputeStats(visible)
		fmt.Printf("\n%d skills, %d for sale, %d creators\n", stats.Total, stats.ForSale, stats.DistinctCreators)
		return nil
	},
}

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List skills owned by the connected wallet",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.close()

		client, err := app.client()
		if err != nil {
			return err
		}
		records, err := client.FetchByOwner(cmd.Context(), "")
		if err != nil {
			return err
		}
		marketview.MostRecent(records)
		printRecords(records)
		return nil
	},
}

func printRecords(records []skillreg.SkillRecord) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tFOR SALE\tOWNER")
	for _, rec := range records {
		forSale := ""
		if rec.IsForSale {
			forSale = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", rec.TokenID, rec.SkillName, rec.Price, forSale, rec.Owner)
	}
	_ = w.Flush()
}

func init() {
	browseCmd.Flags().StringVar(&browseFlags.search, "search", "", "substring match on skill name")
	browseCmd.Flags().StringVar(&browseFlags.category, "category", marketview.CategoryAll, "category filter")
	browseCmd.Flags().StringVar(&browseFlags.priceRange, "price", marketview.RangeAll, `price range: "all", "min-max", or "min+"`)
	browseCmd.Flags().StringVar(&browseFlags.expr, "filter", "", "CEL expression over the skill record")
	browseCmd.Flags().BoolVar(&browseFlags.all, "all", false, "include skills not for sale")
}
