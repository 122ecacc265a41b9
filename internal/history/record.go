package history

import (
	"strings"
	"time"
)

// Record is a single listening event from a streaming-history export.
// Every field is optional: nil means the key was absent or null.
type Record struct {
	Timestamp   *string `json:"ts"`
	Platform    *string `json:"platform"`
	MsPlayed    *int64  `json:"ms_played"`
	ConnCountry *string `json:"conn_country"`
	IPAddr      *string `json:"ip_addr"`

	TrackName  *string `json:"master_metadata_track_name"`
	ArtistName *string `json:"master_metadata_album_artist_name"`
	AlbumName  *string `json:"master_metadata_album_album_name"`
	TrackURI   *string `json:"spotify_track_uri"`

	EpisodeName           *string `json:"episode_name"`
	EpisodeShowName       *string `json:"episode_show_name"`
	EpisodeURI            *string `json:"spotify_episode_uri"`
	AudiobookTitle        *string `json:"audiobook_title"`
	AudiobookURI          *string `json:"audiobook_uri"`
	AudiobookChapterURI   *string `json:"audiobook_chapter_uri"`
	AudiobookChapterTitle *string `json:"audiobook_chapter_title"`

	ReasonStart      *string `json:"reason_start"`
	ReasonEnd        *string `json:"reason_end"`
	Shuffle          *bool   `json:"shuffle"`
	Skipped          *bool   `json:"skipped"`
	Offline          *bool   `json:"offline"`
	OfflineTimestamp *int64  `json:"offline_timestamp"`
	IncognitoMode    *bool   `json:"incognito_mode"`
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Artist returns the album artist, and false when it is absent or empty.
func (r Record) Artist() (string, bool) {
	return nonEmpty(r.ArtistName)
}

func (r Record) Album() (string, bool) {
	return nonEmpty(r.AlbumName)
}

func (r Record) Track() (string, bool) {
	return nonEmpty(r.TrackName)
}

// Year parses the timestamp and returns its calendar year in UTC.
func (r Record) Year() (int, bool) {
	t, ok := r.Time()
	if !ok {
		return 0, false
	}
	return t.Year(), true
}

func (r Record) Time() (time.Time, bool) {
	ts, ok := nonEmpty(r.Timestamp)
	if !ok {
		return time.Time{}, false
	}
	ts = strings.TrimSpace(ts)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func nonEmpty(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	return *s, true
}
