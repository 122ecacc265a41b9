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

var topAlbumsNumber int
var topAlbumsCmd = &cobra.Command{
	Use:   "top-albums",
	Short: "Lists the most played albums",
	Long: fmt.Sprintf(`Ranks real albums (at least %d distinct tracks played) by album plays, and
compares what streaming paid the artist with what buying the album once would have.`,
		analysis.RealAlbumMinTracks),
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printTopAlbums(os.Stdout, viper.GetString("database"), topAlbumsNumber)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topAlbumsCmd)

	topAlbumsCmd.Flags().IntVarP(&topAlbumsNumber, "number", "n", 0, "number of results to return (default is the stored albums limit)")
}

func printTopAlbums(out io.Writer, dbPath string, numToReturn int) error {
	if numToReturn <= 0 {
		s, err := openStore(dbPath)
		if err != nil {
			return err
		}
		numToReturn, err = s.AlbumsLimit()
		s.Close()
		if err != nil {
			return fmt.Errorf("printTopAlbums: %w", err)
		}
	}

	return runAnalyser(out, dbPath, TopAlbumsAnalyzer{Config: AnalyserConfig{NumToReturn: numToReturn}})
}

type TopAlbumsAnalyzer struct {
	Config AnalyserConfig
}

func (t TopAlbumsAnalyzer) GetName() string {
	return "Top albums"
}

func (t TopAlbumsAnalyzer) GetResults(stats *analysis.Stats, cur estimate.Currency) (analysis Analysis, err error) {
	analysis.results = [][]string{{"Album", "Artist", "Tracks", "Album plays", "Streaming (artist)", "Purchase (artist)", "Multiple"}}

	albums := estimate.CompareAlbums(stats, t.Config.NumToReturn, cur)
	for _, a := range albums {
		multiple := "-"
		if a.HasMultiple {
			multiple = fmt.Sprintf("%.1fx", a.Multiple)
		}
		analysis.results = append(analysis.results, []string{
			a.Album,
			a.Artist,
			strconv.Itoa(a.TrackCount),
			strconv.Itoa(a.Plays),
			cur.Format(a.Streaming.Artist),
			cur.Format(a.PurchaseArtist),
			multiple,
		})
	}

	analysis.summary = fmt.Sprintf("Showing %d of %d real albums\n", len(albums), len(stats.RealAlbums()))
	return
}
