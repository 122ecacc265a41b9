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
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/ademuri/streaming-stats/internal/analysis"
	"github.com/ademuri/streaming-stats/internal/estimate"
	"github.com/ademuri/streaming-stats/internal/logging"
	"github.com/ademuri/streaming-stats/internal/store"
)

var cfgFile string
var databasePath string
var currencyFlag string
var logLevel string

// now is swapped out in tests.
var now = time.Now

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "streaming-stats",
	Short: "Analyses streaming history exports",
	Long: `Reads the JSON listening history a streaming service exports, counts plays
per artist and album, and estimates what those plays paid labels and artists
against what the subscription cost.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.streaming-stats.yaml)")

	rootCmd.PersistentFlags().StringVarP(
		&databasePath, "database", "d", "./streaming-stats.db", "Path to the SQLite database")
	viper.BindPFlag("database", rootCmd.PersistentFlags().Lookup("database"))

	rootCmd.PersistentFlags().StringVar(
		&currencyFlag, "currency", "", "Currency for money figures, GBP or USD (default is the stored preference)")
	viper.BindPFlag("currency", rootCmd.PersistentFlags().Lookup("currency"))

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".streaming-stats" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".streaming-stats")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.PersistentFlags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

func newLogger() *slog.Logger {
	return logging.New(os.Stderr, viper.GetString("log-level"), "logfmt")
}

func openStore(dbPath string) (*store.Store, error) {
	s, err := store.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("openStore: %w", err)
	}
	return s, nil
}

// currencyFor returns the --currency flag when set, otherwise the stored preference.
func currencyFor(s *store.Store) (estimate.Currency, error) {
	if flag := viper.GetString("currency"); flag != "" {
		return estimate.ParseCurrency(flag)
	}
	return s.Currency()
}

// loadStats opens the store and rebuilds the stored analysis. The caller
// closes the returned store.
func loadStats(dbPath string) (*analysis.Stats, *store.Store, error) {
	s, err := openStore(dbPath)
	if err != nil {
		return nil, nil, err
	}

	snap, err := s.LoadSnapshot()
	if errors.Is(err, store.ErrNoData) {
		s.Close()
		return nil, nil, fmt.Errorf("No analysis stored - run process first: %w", err)
	}
	if err != nil {
		s.Close()
		return nil, nil, fmt.Errorf("loadStats: %w", err)
	}

	return snap.Stats(now()), s, nil
}
