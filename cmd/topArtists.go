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

var topArtistsNumber int
var topArtistsMinPlays int
var topArtistsCmd = &cobra.Command{
	Use:   "top-artists",
	Short: "Lists the most played artists",
	Long:  `Ranks artists by play count with what those plays paid the label and the artist.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printTopArtists(os.Stdout, viper.GetString("database"), topArtistsNumber, topArtistsMinPlays)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topArtistsCmd)

	topArtistsCmd.Flags().IntVarP(&topArtistsNumber, "number", "n", 10, "number of results to return")
	topArtistsCmd.Flags().IntVar(&topArtistsMinPlays, "min-plays", 0, "only show artists with at least this many plays")
}

func printTopArtists(out io.Writer, dbPath string, numToReturn int, minPlays int) error {
	config := AnalyserConfig{numToReturn, minPlays}
	return runAnalyser(out, dbPath, TopArtistsAnalyzer{}.SetConfig(config))
}

type TopArtistsAnalyzer struct {
	Config AnalyserConfig
}

func (t TopArtistsAnalyzer) SetConfig(config AnalyserConfig) TopArtistsAnalyzer {
	t.Config = config
	return t
}

func (t TopArtistsAnalyzer) GetName() string {
	return "Top artists"
}

func (t TopArtistsAnalyzer) GetResults(stats *analysis.Stats, cur estimate.Currency) (analysis Analysis, err error) {
	analysis.results = [][]string{{"Rank", "Artist", "Plays", "Peak years", "Label", "Artist share"}}

	shown := 0
	for i, a := range estimate.TopArtists(stats, 0, cur) {
		if t.Config.FilterThreshold > 0 && a.Plays < t.Config.FilterThreshold {
			break
		}
		if t.Config.NumToReturn > 0 && shown >= t.Config.NumToReturn {
			break
		}
		analysis.results = append(analysis.results, []string{
			strconv.Itoa(i + 1),
			a.Name,
			strconv.Itoa(a.Plays),
			a.PeakYears(),
			cur.Format(a.Label),
			cur.Format(a.Artist),
		})
		shown++
	}

	analysis.summary = fmt.Sprintf("Found %d artists and %d listens from %d to %d\n",
		len(stats.Artists), stats.ValidListens(), stats.MinYear, stats.MaxYear)

	return
}
