/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/streaming-stats/internal/estimate"
	"github.com/ademuri/streaming-stats/internal/report"
)

var subscriptionCmd = &cobra.Command{
	Use:   "subscription [from (optional)] [to (optional)]",
	Short: "Estimates what the subscription cost",
	Long: `Uses historical monthly prices. Years look like 'yyyy'. With no years, covers
the years of the stored analysis.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printSubscription(os.Stdout, viper.GetString("database"), args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(subscriptionCmd)
}

func printSubscription(out io.Writer, dbPath string, args []string) error {
	var start, end int
	var cur estimate.Currency

	if len(args) == 0 {
		stats, s, err := loadStats(dbPath)
		if err != nil {
			return err
		}
		defer s.Close()
		start, end = stats.MinYear, stats.MaxYear+1
		if cur, err = currencyFor(s); err != nil {
			return err
		}
	} else {
		var err error
		start, end, err = parseYearRangeFromArgs(args)
		if err != nil {
			return err
		}
		s, err := openStore(dbPath)
		if err != nil {
			return err
		}
		defer s.Close()
		if cur, err = currencyFor(s); err != nil {
			return err
		}
	}

	sub := estimate.SubscriptionCost(start, end, now())
	fmt.Fprint(out, subscriptionTable(sub, cur))

	for _, p := range estimate.Periods(sub.Breakdown) {
		p.MonthlyPrice = estimate.Convert(p.MonthlyPrice, estimate.GBP, cur)
		p.Total = estimate.Convert(p.Total, estimate.GBP, cur)
		fmt.Fprintln(out, report.FormatPeriod(p, cur))
	}
	return nil
}

func subscriptionTable(sub estimate.Subscription, cur estimate.Currency) Analysis {
	var analysis Analysis
	analysis.results = [][]string{{"Year", "Months", "Monthly", "Total"}}
	for _, yc := range sub.Breakdown {
		monthly, total := "unpriced", "-"
		if yc.Priced {
			monthly = cur.Format(estimate.Convert(yc.MonthlyPrice, estimate.GBP, cur))
			total = cur.Format(estimate.Convert(yc.Total, estimate.GBP, cur))
		}
		months := strconv.Itoa(yc.Months)
		if yc.Partial {
			months += " (so far)"
		}
		analysis.results = append(analysis.results, []string{strconv.Itoa(yc.Year), months, monthly, total})
	}
	analysis.summary = fmt.Sprintf("Total paid %d-%d (%d years): %s\n",
		sub.StartYear, sub.EndYear-1, sub.Years, cur.Format(estimate.Convert(sub.Total, estimate.GBP, cur)))
	return analysis
}
