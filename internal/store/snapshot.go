package store

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ademuri/streaming-stats/internal/analysis"
	"github.com/ademuri/streaming-stats/internal/estimate"
)

const (
	snapshotKey    = "streaming_data_analysis"
	currencyKey    = "streaming_currency"
	albumsLimitKey = "streaming_albums_limit"

	// DefaultAlbumsLimit is the number of albums shown when no preference is stored.
	DefaultAlbumsLimit = 10
)

// SaveSnapshot replaces the stored snapshot. If encoding fails the previous
// snapshot is left as it was.
func (s *Store) SaveSnapshot(snap analysis.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := s.put(snapshotKey, string(data)); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot returns the stored snapshot. It returns an error wrapping
// ErrNoData when nothing is stored or the stored value is not a snapshot.
func (s *Store) LoadSnapshot() (analysis.Snapshot, error) {
	var snap analysis.Snapshot
	value, ok, err := s.get(snapshotKey)
	if err != nil {
		return snap, fmt.Errorf("loading snapshot: %w", err)
	}
	if !ok {
		return snap, ErrNoData
	}
	if err := json.Unmarshal([]byte(value), &snap); err != nil {
		return analysis.Snapshot{}, fmt.Errorf("%w: decoding snapshot: %v", ErrNoData, err)
	}
	return snap, nil
}

func (s *Store) SnapshotExists() (bool, error) {
	return s.has(snapshotKey)
}

func (s *Store) ClearSnapshot() error {
	return s.remove(snapshotKey)
}

// Currency returns the stored currency preference, or GBP if none is stored.
func (s *Store) Currency() (estimate.Currency, error) {
	value, ok, err := s.get(currencyKey)
	if err != nil {
		return estimate.GBP, err
	}
	if !ok {
		return estimate.GBP, nil
	}
	cur, err := estimate.ParseCurrency(value)
	if err != nil {
		return estimate.GBP, nil
	}
	return cur, nil
}

func (s *Store) SetCurrency(cur estimate.Currency) error {
	if _, err := estimate.ParseCurrency(string(cur)); err != nil {
		return err
	}
	return s.put(currencyKey, string(cur))
}

// AlbumsLimit returns how many albums to show, defaulting to DefaultAlbumsLimit.
func (s *Store) AlbumsLimit() (int, error) {
	value, ok, err := s.get(albumsLimitKey)
	if err != nil {
		return DefaultAlbumsLimit, err
	}
	if !ok {
		return DefaultAlbumsLimit, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return DefaultAlbumsLimit, nil
	}
	return n, nil
}

func (s *Store) SetAlbumsLimit(n int) error {
	if n <= 0 {
		return fmt.Errorf("albums limit must be positive, got %d", n)
	}
	return s.put(albumsLimitKey, strconv.Itoa(n))
}
