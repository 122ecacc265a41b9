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

	"github.com/ademuri/streaming-stats/internal/analysis"
	"github.com/ademuri/streaming-stats/internal/estimate"
)

var trendNumber int
var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Shows plays per year for the top artists",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printTrend(os.Stdout, viper.GetString("database"), trendNumber)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(trendCmd)

	trendCmd.Flags().IntVarP(&trendNumber, "number", "n", 10, "number of artists to show")
}

func printTrend(out io.Writer, dbPath string, numToReturn int) error {
	return runAnalyser(out, dbPath, TrendAnalyzer{Config: AnalyserConfig{NumToReturn: numToReturn}})
}

type TrendAnalyzer struct {
	Config AnalyserConfig
}

func (t TrendAnalyzer) GetName() string {
	return "Trend"
}

func (t TrendAnalyzer) GetResults(stats *analysis.Stats, _ estimate.Currency) (analysis Analysis, err error) {
	series := stats.YearlySeries(t.Config.NumToReturn)

	header := []string{"Artist"}
	for _, year := range series.Years {
		header = append(header, strconv.Itoa(year))
	}
	analysis.results = [][]string{header}

	for _, s := range series.Series {
		row := []string{s.Name}
		for _, count := range s.Counts {
			row = append(row, strconv.Itoa(count))
		}
		analysis.results = append(analysis.results, row)
	}

	analysis.summary = fmt.Sprintf("Plays per year from %d to %d\n", stats.MinYear, stats.MaxYear)
	return
}
