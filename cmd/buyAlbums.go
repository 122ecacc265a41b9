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

var buyAlbumsThreshold int
var buyAlbumsCmd = &cobra.Command{
	Use:   "buy-albums",
	Short: "Prices buying the albums you play instead of streaming them",
	Long:  `Lists every real album played at least --threshold times, and what buying each once would have cost and paid the artist.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printBuyAlbums(os.Stdout, viper.GetString("database"), buyAlbumsThreshold)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(buyAlbumsCmd)

	buyAlbumsCmd.Flags().IntVar(&buyAlbumsThreshold, "threshold", estimate.DefaultAlbumPurchaseThreshold, "minimum album plays for an album to be bought")
}

func printBuyAlbums(out io.Writer, dbPath string, threshold int) error {
	return runAnalyser(out, dbPath, BuyAlbumsAnalyzer{Config: AnalyserConfig{FilterThreshold: threshold}})
}

type BuyAlbumsAnalyzer struct {
	Config AnalyserConfig
}

func (b BuyAlbumsAnalyzer) GetName() string {
	return "Buy albums"
}

func (b BuyAlbumsAnalyzer) GetResults(stats *analysis.Stats, cur estimate.Currency) (analysis Analysis, err error) {
	if b.Config.FilterThreshold < 0 {
		err = fmt.Errorf("threshold must not be negative, got %d", b.Config.FilterThreshold)
		return
	}
	res := estimate.AlbumPurchase(stats, b.Config.FilterThreshold, cur)

	analysis.results = [][]string{{"Album", "Artist", "Album plays", "Price"}}
	for _, a := range res.Albums {
		analysis.results = append(analysis.results, []string{
			a.Album,
			a.Artist,
			strconv.Itoa(a.AlbumPlays()),
			cur.Format(estimate.AlbumPrice(cur)),
		})
	}

	analysis.summary = fmt.Sprintf("Buying %d albums played at least %d times: %s, of which artists get %s\n",
		res.AlbumCount, res.Threshold, cur.Format(res.TotalCost), cur.Format(res.ArtistEarnings))
	return
}
