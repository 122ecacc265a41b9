package analysis

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is the persisted form of Stats. It carries enough to redisplay
// every figure without the raw records.
type Snapshot struct {
	ID           string       `json:"id"`
	Artists      []ArtistStat `json:"artists"`
	Albums       []AlbumStat  `json:"albums,omitempty"`
	BlankTracks  int          `json:"blank_tracks"`
	TotalTracks  int          `json:"total_tracks"`
	EarliestYear int          `json:"earliest_year,omitempty"`
	LatestYear   int          `json:"latest_year,omitempty"`
	MostPlayed   [3]Ranked    `json:"most_played"`
	Timestamp    time.Time    `json:"timestamp"`
}

// Snapshot captures s, stamped with a fresh run id and the given time.
func (s *Stats) Snapshot(now time.Time) Snapshot {
	snap := Snapshot{
		ID:          uuid.NewString(),
		Artists:     s.Artists,
		Albums:      s.Albums,
		BlankTracks: s.BlankTracks,
		TotalTracks: s.TotalTracks,
		MostPlayed:  s.MostPlayed(),
		Timestamp:   now.UTC(),
	}
	if s.YearsDetected {
		snap.EarliestYear = s.MinYear
		snap.LatestYear = s.MaxYear
	}
	return snap
}

// Stats rebuilds the statistics held in a snapshot. Snapshots written before
// album tracking have no albums, and those without a detected year range fall
// back to LaunchYear and now's year.
func (snap Snapshot) Stats(now time.Time) *Stats {
	s := &Stats{
		Artists:     snap.Artists,
		Albums:      snap.Albums,
		BlankTracks: snap.BlankTracks,
		TotalTracks: snap.TotalTracks,
		MinYear:     snap.EarliestYear,
		MaxYear:     snap.LatestYear,
	}
	for i := range s.Artists {
		if s.Artists[i].Years == nil {
			s.Artists[i].Years = make(map[int]int)
		}
	}

	s.YearsDetected = s.MinYear != 0 && s.MaxYear != 0
	if s.MinYear == 0 {
		s.MinYear = LaunchYear
	}
	if s.MaxYear == 0 {
		s.MaxYear = now.Year()
	}

	s.ensureIndex()
	return s
}
