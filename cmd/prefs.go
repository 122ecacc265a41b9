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
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Shows or sets stored preferences",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printPrefs(os.Stdout, viper.GetString("database"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var prefsCurrencyCmd = &cobra.Command{
	Use:   "currency GBP|USD",
	Short: "Sets the currency for money figures",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := setCurrency(viper.GetString("database"), args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var prefsAlbumsLimitCmd = &cobra.Command{
	Use:   "albums-limit N",
	Short: "Sets how many albums top-albums shows by default",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := setAlbumsLimit(viper.GetString("database"), args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsCurrencyCmd)
	prefsCmd.AddCommand(prefsAlbumsLimitCmd)
}

func printPrefs(out io.Writer, dbPath string) error {
	s, err := openStore(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	cur, err := s.Currency()
	if err != nil {
		return fmt.Errorf("printPrefs: %w", err)
	}
	limit, err := s.AlbumsLimit()
	if err != nil {
		return fmt.Errorf("printPrefs: %w", err)
	}
	fmt.Fprintf(out, "currency: %s\nalbums-limit: %d\n", cur, limit)
	return nil
}

func setCurrency(dbPath string, value string) error {
	cur, err := estimate.ParseCurrency(value)
	if err != nil {
		return err
	}

	s, err := openStore(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.SetCurrency(cur)
}

func setAlbumsLimit(dbPath string, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("Invalid albums limit %q: %w", value, err)
	}

	s, err := openStore(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.SetAlbumsLimit(n)
}
