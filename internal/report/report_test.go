package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ademuri/streaming-stats/internal/analysis"
	"github.com/ademuri/streaming-stats/internal/estimate"
)

var now = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

func testStats() *analysis.Stats {
	snap := analysis.Snapshot{
		Artists: []analysis.ArtistStat{
			{Name: "A", Plays: 2, Years: map[int]int{2020: 2}},
			{Name: "B", Plays: 1, Years: map[int]int{2021: 1}},
		},
		BlankTracks:  1,
		TotalTracks:  4,
		EarliestYear: 2020,
		LatestYear:   2021,
	}
	return snap.Stats(now)
}

func TestBuild(t *testing.T) {
	s := Build(testStats(), estimate.GBP, now)

	assert.Equal(t, 4, s.TotalListens)
	assert.Equal(t, 3, s.ValidListens)
	assert.Equal(t, 2, s.ArtistCount)
	assert.InDelta(t, 3*0.004/estimate.GBPToUSD, s.Streaming.Label, 1e-9)
	assert.InDelta(t, s.Streaming.Label*0.2, s.Streaming.Artist, 1e-9)

	require.Len(t, s.MostPlayed, 2)
	assert.Equal(t, "A", s.MostPlayed[0].Name)
	assert.Equal(t, 1, s.MostPlayed[0].Rank)
	assert.Equal(t, "B", s.MostPlayed[1].Name)

	assert.InDelta(t, 1.5, s.Average.Listens, 1e-9)

	assert.Equal(t, 2020, s.Subscription.StartYear)
	assert.Equal(t, 2021, s.Subscription.EndYear)
	assert.Equal(t, 2, s.Subscription.Years)
	assert.InDelta(t, 239.76, s.Subscription.Total, 1e-6)
	require.Len(t, s.Subscription.Periods, 1)
	assert.Equal(t, 2021, s.Subscription.Periods[0].EndYear)
}

func TestBuildConvertsSubscriptionToUSD(t *testing.T) {
	gbp := Build(testStats(), estimate.GBP, now)
	usd := Build(testStats(), estimate.USD, now)

	assert.InDelta(t, gbp.Subscription.Total*estimate.GBPToUSD, usd.Subscription.Total, 1e-6)
	assert.InDelta(t, 0.004, usd.PerStreamRate, 1e-12)
}

func TestBuildEmptyStats(t *testing.T) {
	s := Build(analysis.Snapshot{}.Stats(now), estimate.GBP, now)

	assert.Empty(t, s.MostPlayed)
	assert.Zero(t, s.Average.Listens)
	assert.Zero(t, s.Streaming.Label)
}

func TestText(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Text(&out, Build(testStats(), estimate.GBP, now)))

	got := out.String()
	for _, want := range []string{
		"=== STREAMING REVENUE ===",
		"Money to labels over 3 listens:",
		"Most played artist at 2 plays: A",
		"Second most played artist at 1 plays: B",
		"=== SUBSCRIPTION COST (Historical Pricing) ===",
		"2020-2021: £9.99/month = £239.76",
		"Total paid: £239.76",
	} {
		assert.Contains(t, got, want)
	}
	assert.NotContains(t, got, "Third most")
}

func TestFormatPeriod(t *testing.T) {
	assert.Equal(t, "2024: $11.99/month = $143.88",
		FormatPeriod(estimate.Period{StartYear: 2024, EndYear: 2024, MonthlyPrice: 11.99, Total: 143.88, Priced: true}, estimate.USD))
	assert.Equal(t, "2005-2008: unpriced",
		FormatPeriod(estimate.Period{StartYear: 2005, EndYear: 2008}, estimate.GBP))
}

func TestArtistExport(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ArtistExport(&out, testStats()))
	assert.Equal(t, "2: A\n1: B\n", out.String())
}
