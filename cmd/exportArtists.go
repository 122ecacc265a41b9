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

	"github.com/ademuri/streaming-stats/internal/analysis"
	"github.com/ademuri/streaming-stats/internal/report"
)

var exportArtistsOutput string
var exportArtistsCmd = &cobra.Command{
	Use:   "export-artists",
	Short: "Writes every artist with its play count",
	Long:  `Writes one '<plays>: <artist>' line per artist, in the order artists were first heard.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := exportArtists(os.Stdout, viper.GetString("database"), exportArtistsOutput)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportArtistsCmd)

	exportArtistsCmd.Flags().StringVarP(&exportArtistsOutput, "output", "o", "", "file to write (default is stdout)")
}

func exportArtists(out io.Writer, dbPath string, path string) error {
	stats, s, err := loadStats(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	if path == "" {
		return report.ArtistExport(out, stats)
	}
	return writeArtistExport(path, stats)
}

func writeArtistExport(path string, stats *analysis.Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writeArtistExport: %w", err)
	}
	if err := report.ArtistExport(f, stats); err != nil {
		f.Close()
		return fmt.Errorf("writeArtistExport: %w", err)
	}
	return f.Close()
}
