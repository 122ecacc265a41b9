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
	"strings"
	"testing"
)

func TestParseYearRange_single(t *testing.T) {
	doTestParseYearRange(t, []string{"2020"}, 2020, 2021)
}

func TestParseYearRange_explicit(t *testing.T) {
	doTestParseYearRange(t, []string{"2011", "2020"}, 2011, 2021)
}

func TestParseYearRange_sameYear(t *testing.T) {
	doTestParseYearRange(t, []string{"2024", "2024"}, 2024, 2025)
}

func TestParseYearRange_invalid(t *testing.T) {
	for _, args := range [][]string{{"2020-01"}, {"not_real"}, {"20201"}, {"2020", "x"}} {
		_, _, err := parseYearRangeFromArgs(args)
		if err == nil {
			t.Fatalf("Expected error parsing %q", args)
		}
		if !strings.Contains(err.Error(), "Invalid format") {
			t.Fatalf("Should have error with invalid format: %v", err)
		}
	}
}

func TestParseYearRange_backwards(t *testing.T) {
	_, _, err := parseYearRangeFromArgs([]string{"2020", "2019"})
	if err == nil {
		t.Fatalf("Expected error for a backwards range")
	}
}

func TestParseYearRange_wrongCount(t *testing.T) {
	if _, _, err := parseYearRangeFromArgs(nil); err == nil {
		t.Fatalf("Expected error with no arguments")
	}
	if _, _, err := parseYearRangeFromArgs([]string{"2019", "2020", "2021"}); err == nil {
		t.Fatalf("Expected error with three arguments")
	}
}

func doTestParseYearRange(t *testing.T, args []string, wantStart, wantEnd int) {
	t.Helper()
	start, end, err := parseYearRangeFromArgs(args)
	if err != nil {
		t.Fatalf("Parsing %q: %v", args, err)
	}
	if start != wantStart || end != wantEnd {
		t.Errorf("parseYearRangeFromArgs(%q) = [%d, %d), want [%d, %d)", args, start, end, wantStart, wantEnd)
	}
}
