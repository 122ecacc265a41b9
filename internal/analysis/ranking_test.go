package analysis

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ademuri/streaming-stats/internal/history"
)

func repeat(r history.Record, n int) []history.Record {
	out := make([]history.Record, n)
	for i := range out {
		out[i] = r
	}
	return out
}

func TestTopArtistsSortedAndStable(t *testing.T) {
	var records []history.Record
	records = append(records, repeat(listen("Low", ""), 1)...)
	records = append(records, repeat(listen("TieFirst", ""), 3)...)
	records = append(records, repeat(listen("High", ""), 5)...)
	records = append(records, repeat(listen("TieSecond", ""), 3)...)
	stats := process(t, records)

	top := stats.TopArtists(0)
	var names []string
	for _, a := range top {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"High", "TieFirst", "TieSecond", "Low"}, names)
	for i := 0; i+1 < len(top); i++ {
		assert.GreaterOrEqual(t, top[i].Plays, top[i+1].Plays)
	}

	assert.Equal(t, top[:2], stats.TopArtists(2))
	assert.Equal(t, stats.TopArtists(3), stats.TopArtists(3))
	assert.Len(t, stats.TopArtists(100), 4)

	// Ranking must not reorder the first-seen list.
	assert.Equal(t, "Low", stats.Artists[0].Name)
}

func TestMostPlayedExclusive(t *testing.T) {
	var records []history.Record
	records = append(records, repeat(listen("C", ""), 2)...)
	records = append(records, repeat(listen("A", ""), 4)...)
	records = append(records, repeat(listen("B", ""), 4)...)
	records = append(records, repeat(listen("D", ""), 1)...)
	stats := process(t, records)

	podium := stats.MostPlayed()
	assert.Equal(t, [3]Ranked{{"A", 4}, {"B", 4}, {"C", 2}}, podium)
	assert.NotEqual(t, podium[0].Name, podium[1].Name)
	assert.NotEqual(t, podium[1].Name, podium[2].Name)
	assert.NotEqual(t, podium[0].Name, podium[2].Name)
}

func TestMostPlayedEmpty(t *testing.T) {
	stats := process(t, nil)
	assert.Equal(t, [3]Ranked{}, stats.MostPlayed())
	assert.Zero(t, stats.AverageListensPerArtist())
}

func albumRecords(artist, album string, tracks, plays int) []history.Record {
	var out []history.Record
	for i := 0; i < plays; i++ {
		out = append(out, albumListen(artist, album, fmt.Sprintf("track %d", i%tracks), "2020-01-01"))
	}
	return out
}

func TestTopAlbums(t *testing.T) {
	var records []history.Record
	records = append(records, albumRecords("A", "Ten Tracks", 10, 25)...)
	records = append(records, albumRecords("B", "Three Tracks", 3, 300)...)
	records = append(records, albumRecords("C", "Eight Tracks", 8, 80)...)
	records = append(records, albumRecords("D", "Also Ten", 10, 30)...)
	stats := process(t, records)

	ten, ok := stats.Album(AlbumKey{Album: "Ten Tracks", Artist: "A"})
	require.True(t, ok)
	assert.Equal(t, 10, ten.TrackCount)
	assert.Equal(t, 3, ten.AlbumPlays())

	top := stats.TopAlbums(10)
	var names []string
	for _, a := range top {
		names = append(names, a.Album)
	}
	// "Ten Tracks" and "Also Ten" both round to 3 plays and keep first-seen order.
	assert.Equal(t, []string{"Eight Tracks", "Ten Tracks", "Also Ten"}, names)
	assert.Len(t, stats.TopAlbums(1), 1)
	assert.Len(t, stats.RealAlbums(), 3)
}

func TestAlbumQualificationMonotonic(t *testing.T) {
	var records []history.Record
	records = append(records, albumRecords("A", "Nine", 9, 9)...)
	records = append(records, albumRecords("A", "Eight", 8, 8)...)
	records = append(records, albumRecords("A", "Five", 5, 5)...)
	stats := process(t, records)

	atEight := stats.rankAlbums(RealAlbumMinTracks)
	for threshold := RealAlbumMinTracks - 1; threshold >= 0; threshold-- {
		lower := stats.rankAlbums(threshold)
		for _, a := range atEight {
			assert.Contains(t, lower, a, "threshold %d dropped %q", threshold, a.Album)
		}
	}
}

func TestAlbumPlaysZeroTracks(t *testing.T) {
	a := AlbumStat{TrackPlays: 7}
	assert.Equal(t, 7, a.AlbumPlays())
	assert.False(t, a.IsReal())
}

func TestYearlySeriesZeroFilled(t *testing.T) {
	stats := process(t, []history.Record{
		listen("A", "2018-01-01"),
		listen("A", "2018-03-01"),
		listen("A", "2021-01-01"),
		listen("B", "2020-01-01"),
		listen("C", "2019-01-01"),
	})

	series := stats.YearlySeries(2)
	assert.Equal(t, []int{2018, 2019, 2020, 2021}, series.Years)
	require.Len(t, series.Series, 2)
	assert.Equal(t, ArtistSeries{Name: "A", Counts: []int{2, 0, 0, 1}}, series.Series[0])
	assert.Equal(t, ArtistSeries{Name: "B", Counts: []int{0, 0, 1, 0}}, series.Series[1])
}

func TestPeakYears(t *testing.T) {
	tests := []struct {
		years map[int]int
		want  string
	}{
		{nil, ""},
		{map[int]int{2019: 10}, "2019"},
		{map[int]int{2015: 1, 2016: 40, 2017: 40, 2018: 1}, "2016-2017"},
		{map[int]int{2010: 1, 2011: 1, 2020: 90}, "2020"},
	}
	for _, tt := range tests {
		got := ArtistStat{Years: tt.years}.PeakYears()
		assert.Equal(t, tt.want, got, "years %v", tt.years)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	var records []history.Record
	records = append(records, albumRecords("A", "Ten Tracks", 10, 40)...)
	records = append(records, listen("B", "2022-01-01"), listen("", "2023-01-01"))
	stats := process(t, records)

	now := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)
	snap := stats.Snapshot(now)
	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, now, snap.Timestamp)
	assert.Equal(t, stats.MostPlayed(), snap.MostPlayed)

	restored := snap.Stats(now)
	assert.Equal(t, stats.Artists, restored.Artists)
	assert.Equal(t, stats.Albums, restored.Albums)
	assert.Equal(t, stats.TotalTracks, restored.TotalTracks)
	assert.Equal(t, stats.BlankTracks, restored.BlankTracks)
	assert.Equal(t, 2020, restored.MinYear)
	assert.Equal(t, 2023, restored.MaxYear)
	assert.Equal(t, stats.TopAlbums(5), restored.TopAlbums(5))

	a, ok := restored.Artist("A")
	require.True(t, ok)
	assert.Equal(t, 40, a.Plays)
}

func TestSnapshotWithoutAlbumsOrYears(t *testing.T) {
	snap := Snapshot{
		Artists:     []ArtistStat{{Name: "A", Plays: 3}},
		TotalTracks: 3,
	}
	now := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)
	stats := snap.Stats(now)

	assert.Empty(t, stats.TopAlbums(10))
	assert.Equal(t, LaunchYear, stats.MinYear)
	assert.Equal(t, 2026, stats.MaxYear)
	assert.False(t, stats.YearsDetected)
	assert.NotNil(t, stats.Artists[0].Years)
}
