package analysis

import (
	"fmt"
	"sort"
	"strconv"
)

// peakShare is the fraction of an artist's dated plays a peak range must cover.
const peakShare = 0.8

// PeakYears returns the shortest continuous run of years holding at least 80%
// of the artist's dated plays, formatted as "2015" or "2015-2018". Only years
// with plays take part, so a gap year does not break a run. Returns "" when
// the artist has no dated plays.
func (a ArtistStat) PeakYears() string {
	type yearCount struct {
		year  int
		count int
	}
	var counts []yearCount
	total := 0
	for year, count := range a.Years {
		counts = append(counts, yearCount{year, count})
		total += count
	}
	if total == 0 {
		return ""
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].year < counts[j].year })

	target := int(float64(total) * peakShare)

	bestStart, bestEnd := -1, -1
	minLen := len(counts) + 1
	for i := 0; i < len(counts); i++ {
		sum := 0
		for j := i; j < len(counts); j++ {
			sum += counts[j].count
			if sum >= target {
				if length := j - i + 1; length < minLen {
					minLen = length
					bestStart, bestEnd = i, j
				}
				break
			}
		}
	}

	if bestStart == -1 {
		return ""
	}
	if bestStart == bestEnd {
		return strconv.Itoa(counts[bestStart].year)
	}
	return fmt.Sprintf("%d-%d", counts[bestStart].year, counts[bestEnd].year)
}
