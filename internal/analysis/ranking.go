package analysis

import "sort"

// TopArtists returns the n most played artists. Artists with equal plays keep
// first-seen order. n <= 0 returns every artist.
func (s *Stats) TopArtists(n int) []ArtistStat {
	artists := make([]ArtistStat, len(s.Artists))
	copy(artists, s.Artists)
	sort.SliceStable(artists, func(i, j int) bool {
		return artists[i].Plays > artists[j].Plays
	})
	return limit(artists, n)
}

// TopAlbums returns the n real albums with the highest estimated album plays.
func (s *Stats) TopAlbums(n int) []AlbumStat {
	return limit(s.rankAlbums(RealAlbumMinTracks), n)
}

func (s *Stats) rankAlbums(minTracks int) []AlbumStat {
	var albums []AlbumStat
	for _, a := range s.Albums {
		if a.qualifies(minTracks) {
			albums = append(albums, a)
		}
	}
	sort.SliceStable(albums, func(i, j int) bool {
		return albums[i].AlbumPlays() > albums[j].AlbumPlays()
	})
	return albums
}

// RealAlbums returns every real album in first-seen order.
func (s *Stats) RealAlbums() []AlbumStat {
	var albums []AlbumStat
	for _, a := range s.Albums {
		if a.IsReal() {
			albums = append(albums, a)
		}
	}
	return albums
}

// MostPlayed finds the top three artists with three exclusive scans. Earlier
// artists win ties. Ranks that cannot be filled are left as an empty name with
// zero plays.
func (s *Stats) MostPlayed() [3]Ranked {
	var podium [3]Ranked
	claimed := make(map[int]bool, 3)
	for rank := range podium {
		best := -1
		for i, a := range s.Artists {
			if claimed[i] {
				continue
			}
			if a.Plays > podium[rank].Plays {
				podium[rank] = Ranked{Name: a.Name, Plays: a.Plays}
				best = i
			}
		}
		if best >= 0 {
			claimed[best] = true
		}
	}
	return podium
}

// ArtistSeries is one artist's play count for every year of a YearlySeries.
type ArtistSeries struct {
	Name   string `json:"name" yaml:"name"`
	Counts []int  `json:"counts" yaml:"counts"`
}

type YearlySeries struct {
	Years  []int          `json:"years" yaml:"years"`
	Series []ArtistSeries `json:"series" yaml:"series"`
}

// YearlySeries returns per-year play counts for the top n artists across
// [MinYear, MaxYear]. Years without plays are zero.
func (s *Stats) YearlySeries(n int) YearlySeries {
	var out YearlySeries
	for year := s.MinYear; year <= s.MaxYear; year++ {
		out.Years = append(out.Years, year)
	}
	for _, a := range s.TopArtists(n) {
		counts := make([]int, len(out.Years))
		for i, year := range out.Years {
			counts[i] = a.Years[year]
		}
		out.Series = append(out.Series, ArtistSeries{Name: a.Name, Counts: counts})
	}
	return out
}

func limit[T any](items []T, n int) []T {
	if n <= 0 || n >= len(items) {
		return items
	}
	return items[:n]
}
