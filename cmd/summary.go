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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ademuri/streaming-stats/internal/report"
)

var summaryFormat string
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Prints the revenue and subscription report from the stored analysis",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printSummary(os.Stdout, viper.GetString("database"), summaryFormat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating summary: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringVar(&summaryFormat, "format", "text", "output format, text or yaml")
}

func printSummary(out io.Writer, dbPath string, format string) error {
	if format != "text" && format != "yaml" {
		return fmt.Errorf("Unknown format %q, expected text or yaml", format)
	}

	stats, s, err := loadStats(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	cur, err := currencyFor(s)
	if err != nil {
		return err
	}
	summary := report.Build(stats, cur, now())

	if format == "text" {
		return report.Text(out, summary)
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return encoder.Close()
}
