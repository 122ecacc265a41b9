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
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/streaming-stats/internal/analysis"
	"github.com/ademuri/streaming-stats/internal/history"
	"github.com/ademuri/streaming-stats/internal/report"
)

var processSave bool
var processExport string

var processCmd = &cobra.Command{
	Use:   "process FILE|DIR...",
	Short: "Analyses streaming history export files",
	Long: `Reads every given JSON export (directories are searched for .json files),
counts plays per artist and album, and prints the revenue and subscription report.
The analysis is stored so later commands can use it without the files.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := runProcess(os.Stdout, viper.GetString("database"), args, newLogger())
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().BoolVar(&processSave, "save", true, "store the analysis in the database")
	processCmd.Flags().StringVar(&processExport, "export", "", "also write the artist list to this file")
}

func runProcess(out io.Writer, dbPath string, paths []string, logger *slog.Logger) error {
	sources, errs := history.ReadFiles(paths)
	for _, err := range errs {
		logger.Warn("skipping unreadable input", "err", err)
	}
	if len(sources) == 0 {
		return fmt.Errorf("No history files found in %v", paths)
	}

	batch := history.Ingest(sources)
	for _, err := range batch.Errors {
		logger.Warn("skipping file", "err", err)
	}
	if batch.Skipped > 0 {
		logger.Warn("skipped undecodable records", "count", batch.Skipped)
	}
	logger.Info("loaded history", "files", len(sources), "records", len(batch.Records))

	agg := analysis.NewAggregator()
	agg.Now = now
	stats, err := agg.Process(batch.Records, func(processed, total int) {
		logger.Debug("processing", "processed", processed, "total", total)
	})
	if err != nil {
		return fmt.Errorf("runProcess: %w", err)
	}

	s, err := openStore(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	cur, err := currencyFor(s)
	if err != nil {
		return err
	}

	if err := report.Text(out, report.Build(stats, cur, now())); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if processSave {
		snap := stats.Snapshot(now())
		if err := s.SaveSnapshot(snap); err != nil {
			return err
		}
		logger.Info("saved analysis", "id", snap.ID, "database", dbPath)
	}

	if processExport != "" {
		if err := writeArtistExport(processExport, stats); err != nil {
			return err
		}
		logger.Info("exported artists", "path", processExport)
	}

	return nil
}
