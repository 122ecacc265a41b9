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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/streaming-stats/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Shows whether an analysis is stored",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printStatus(os.Stdout, viper.GetString("database"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Deletes the stored analysis",
	Long:  `Deletes the stored analysis. Preferences are kept.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := clearAnalysis(os.Stdout, viper.GetString("database"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(clearCmd)
}

func printStatus(out io.Writer, dbPath string) error {
	s, err := openStore(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	snap, err := s.LoadSnapshot()
	if errors.Is(err, store.ErrNoData) {
		fmt.Fprintln(out, "No analysis stored")
		return nil
	}
	if err != nil {
		return fmt.Errorf("printStatus: %w", err)
	}

	fmt.Fprintf(out, "Analysis %s computed %s (%s)\n",
		snap.ID, snap.Timestamp.Local().Format("2006-01-02 15:04"), humanize.Time(snap.Timestamp))
	fmt.Fprintf(out, "%s listens, %s artists, %s albums\n",
		humanize.Comma(int64(snap.TotalTracks)), humanize.Comma(int64(len(snap.Artists))), humanize.Comma(int64(len(snap.Albums))))
	return nil
}

func clearAnalysis(out io.Writer, dbPath string) error {
	s, err := openStore(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.ClearSnapshot(); err != nil {
		return fmt.Errorf("clearAnalysis: %w", err)
	}
	fmt.Fprintln(out, "Cleared stored analysis")
	return nil
}
