package analysis

import "math"

const (
	// RealAlbumMinTracks is the number of distinct tracks an album needs
	// before it is treated as a real album rather than a single or compilation.
	RealAlbumMinTracks = 8

	// LaunchYear is the fallback earliest year when no record has a usable timestamp.
	LaunchYear = 2009
)

type ArtistStat struct {
	Name  string      `json:"name" yaml:"name"`
	Plays int         `json:"plays" yaml:"plays"`
	Years map[int]int `json:"years,omitempty" yaml:"years,omitempty"`
}

// AlbumKey identifies an album. Two artists may release albums with the same name.
type AlbumKey struct {
	Album  string
	Artist string
}

type AlbumStat struct {
	Album      string `json:"album" yaml:"album"`
	Artist     string `json:"artist" yaml:"artist"`
	TrackPlays int    `json:"track_plays" yaml:"track_plays"`
	TrackCount int    `json:"track_count" yaml:"track_count"`
}

func (a AlbumStat) Key() AlbumKey {
	return AlbumKey{Album: a.Album, Artist: a.Artist}
}

// AlbumPlays estimates how many times the whole album was played.
func (a AlbumStat) AlbumPlays() int {
	tracks := a.TrackCount
	if tracks <= 0 {
		tracks = 1
	}
	return int(math.Round(float64(a.TrackPlays) / float64(tracks)))
}

func (a AlbumStat) IsReal() bool {
	return a.qualifies(RealAlbumMinTracks)
}

func (a AlbumStat) qualifies(minTracks int) bool {
	return a.TrackCount >= minTracks
}

// Ranked is one slot of the most-played podium.
type Ranked struct {
	Name  string `json:"name" yaml:"name"`
	Plays int    `json:"plays" yaml:"plays"`
}

// Stats is the reduced result of one aggregation pass.
type Stats struct {
	Artists []ArtistStat
	Albums  []AlbumStat

	BlankTracks int
	TotalTracks int

	MinYear int
	MaxYear int

	// YearsDetected is false when MinYear and MaxYear are fallbacks.
	YearsDetected bool

	artistIndex map[string]int
	albumIndex  map[AlbumKey]int
}

func newStats() *Stats {
	return &Stats{
		artistIndex: make(map[string]int),
		albumIndex:  make(map[AlbumKey]int),
	}
}

// Artist looks up an artist by name.
func (s *Stats) Artist(name string) (ArtistStat, bool) {
	s.ensureIndex()
	i, ok := s.artistIndex[name]
	if !ok {
		return ArtistStat{}, false
	}
	return s.Artists[i], true
}

func (s *Stats) Album(key AlbumKey) (AlbumStat, bool) {
	s.ensureIndex()
	i, ok := s.albumIndex[key]
	if !ok {
		return AlbumStat{}, false
	}
	return s.Albums[i], true
}

// ValidListens is the number of records attributed to an artist.
func (s *Stats) ValidListens() int {
	return s.TotalTracks - s.BlankTracks
}

func (s *Stats) AverageListensPerArtist() float64 {
	if len(s.Artists) == 0 {
		return 0
	}
	return float64(s.ValidListens()) / float64(len(s.Artists))
}

func (s *Stats) ensureIndex() {
	if s.artistIndex != nil && s.albumIndex != nil {
		return
	}
	s.artistIndex = make(map[string]int, len(s.Artists))
	for i, a := range s.Artists {
		s.artistIndex[a.Name] = i
	}
	s.albumIndex = make(map[AlbumKey]int, len(s.Albums))
	for i, a := range s.Albums {
		s.albumIndex[a.Key()] = i
	}
}
