package analysis

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/ademuri/streaming-stats/internal/history"
)

// ProgressEvery is how many records pass between progress callbacks.
const ProgressEvery = 1000

// ErrBusy is returned when Process is called while another pass is running
// on the same Aggregator.
var ErrBusy = errors.New("aggregation already in progress")

// ProgressFunc receives the number of records processed so far and the total.
// It is advisory: a nil ProgressFunc changes no result.
type ProgressFunc func(processed, total int)

// Aggregator reduces listening records to Stats. Each Aggregator owns the
// Stats it produces; separate Aggregators share nothing.
type Aggregator struct {
	mu    sync.Mutex
	stats *Stats

	// Now is used for the fallback latest year. Defaults to time.Now.
	Now func() time.Time
}

func NewAggregator() *Aggregator {
	return &Aggregator{Now: time.Now}
}

// Stats returns the result of the last completed pass. It returns nil before
// the first pass and while a pass is in flight.
func (a *Aggregator) Stats() *Stats {
	if !a.mu.TryLock() {
		return nil
	}
	defer a.mu.Unlock()
	return a.stats
}

// Process makes a single pass over records, rebuilding all statistics from scratch.
func (a *Aggregator) Process(records []history.Record, progress ProgressFunc) (*Stats, error) {
	if !a.mu.TryLock() {
		return nil, ErrBusy
	}
	defer a.mu.Unlock()

	s := newStats()
	s.TotalTracks = len(records)
	var tracks []map[string]struct{}

	total := len(records)
	cadence := rate.Sometimes{Every: ProgressEvery}

	for i := range records {
		r := &records[i]

		year, hasYear := r.Year()
		if hasYear {
			if !s.YearsDetected || year < s.MinYear {
				s.MinYear = year
			}
			if !s.YearsDetected || year > s.MaxYear {
				s.MaxYear = year
			}
			s.YearsDetected = true
		}

		artist, ok := r.Artist()
		if !ok {
			s.BlankTracks++
		} else {
			idx, seen := s.artistIndex[artist]
			if !seen {
				idx = len(s.Artists)
				s.artistIndex[artist] = idx
				s.Artists = append(s.Artists, ArtistStat{Name: artist, Years: make(map[int]int)})
			}
			s.Artists[idx].Plays++
			if hasYear {
				s.Artists[idx].Years[year]++
			}

			if album, ok := r.Album(); ok {
				key := AlbumKey{Album: album, Artist: artist}
				aidx, seen := s.albumIndex[key]
				if !seen {
					aidx = len(s.Albums)
					s.albumIndex[key] = aidx
					s.Albums = append(s.Albums, AlbumStat{Album: album, Artist: artist})
					tracks = append(tracks, make(map[string]struct{}))
				}
				s.Albums[aidx].TrackPlays++
				if track, ok := r.Track(); ok {
					tracks[aidx][track] = struct{}{}
				}
			}
		}

		if progress != nil {
			cadence.Do(func() { progress(i, total) })
		}
	}

	for i := range s.Albums {
		s.Albums[i].TrackCount = len(tracks[i])
	}

	if !s.YearsDetected {
		s.MinYear = LaunchYear
		s.MaxYear = a.now().Year()
	}

	if progress != nil {
		progress(total, total)
	}

	a.stats = s
	return s, nil
}

func (a *Aggregator) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}
