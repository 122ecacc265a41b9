package cmd

import (
	"fmt"
	"regexp"
	"strconv"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// parseYearRangeFromArgs returns the half-open year range [start, end) named
// by one or two 'yyyy' arguments. A single year covers just that year; two
// years cover both ends inclusively.
func parseYearRangeFromArgs(args []string) (start int, end int, err error) {
	switch len(args) {
	case 1:
		start, err = parseYear(args[0])
		end = start + 1

	case 2:
		start, err = parseYear(args[0])
		if err != nil {
			return
		}
		var last int
		last, err = parseYear(args[1])
		if err != nil {
			return
		}
		if last < start {
			err = fmt.Errorf("End year %d is before start year %d", last, start)
			return
		}
		end = last + 1

	default:
		err = fmt.Errorf("Expected one or two year arguments")
	}
	return
}

func parseYear(ds string) (int, error) {
	if !yearPattern.MatchString(ds) {
		return 0, fmt.Errorf("Invalid format: %q", ds)
	}
	year, err := strconv.Atoi(ds)
	if err != nil {
		return 0, fmt.Errorf("Parsing year: %w", err)
	}
	return year, nil
}
