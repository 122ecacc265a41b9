package history

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestArrayAndWrappedShapes(t *testing.T) {
	sources := []Source{
		{Name: "a.json", Data: []byte(`[
			{"ts": "2020-01-01T10:00:00Z", "master_metadata_album_artist_name": "A"},
			{"ts": "2020-06-01T10:00:00Z", "master_metadata_album_artist_name": "B"}
		]`)},
		{Name: "b.json", Data: []byte(`{"tracks": [
			{"ts": "2021-01-01T10:00:00Z", "master_metadata_album_artist_name": "C"}
		]}`)},
	}

	batch := Ingest(sources)
	require.Empty(t, batch.Errors)
	require.Len(t, batch.Records, 3)

	var artists []string
	for _, r := range batch.Records {
		a, ok := r.Artist()
		require.True(t, ok)
		artists = append(artists, a)
	}
	assert.Equal(t, []string{"A", "B", "C"}, artists)
}

func TestIngestBadBufferDoesNotAbortBatch(t *testing.T) {
	sources := []Source{
		{Name: "broken.json", Data: []byte(`[{"ts": `)},
		{Name: "object.json", Data: []byte(`{"items": []}`)},
		{Name: "number.json", Data: []byte(`42`)},
		{Name: "good.json", Data: []byte(`[{"master_metadata_album_artist_name": "A"}]`)},
	}

	batch := Ingest(sources)
	require.Len(t, batch.Records, 1)
	require.Len(t, batch.Errors, 3)

	var bufErr *BufferError
	require.True(t, errors.As(batch.Errors[0], &bufErr))
	assert.Equal(t, "broken.json", bufErr.Source)
	assert.ErrorIs(t, batch.Errors[1], ErrUnexpectedShape)
	assert.ErrorIs(t, batch.Errors[2], ErrUnexpectedShape)
}

func TestIngestSkipsUndecodableRecords(t *testing.T) {
	batch := Ingest([]Source{{Name: "mixed.json", Data: []byte(`[
		{"master_metadata_album_artist_name": "A", "ms_played": 1200},
		{"master_metadata_album_artist_name": "B", "ms_played": "lots"},
		7,
		null,
		{"master_metadata_album_artist_name": "C"}
	]`)}})

	require.Empty(t, batch.Errors)
	assert.Len(t, batch.Records, 2)
	assert.Equal(t, 3, batch.Skipped)
}

func TestRecordOptionalFields(t *testing.T) {
	batch := Ingest([]Source{{Name: "fields.json", Data: []byte(`[
		{"master_metadata_album_artist_name": null, "master_metadata_album_album_name": "", "ts": "not a date"},
		{"master_metadata_album_artist_name": "", "ts": "2019-03-04"}
	]`)}})
	require.Len(t, batch.Records, 2)

	first := batch.Records[0]
	assert.Nil(t, first.ArtistName)
	require.NotNil(t, first.AlbumName)
	_, ok := first.Album()
	assert.False(t, ok)
	_, ok = first.Year()
	assert.False(t, ok)

	second := batch.Records[1]
	require.NotNil(t, second.ArtistName)
	_, ok = second.Artist()
	assert.False(t, ok)
	year, ok := second.Year()
	require.True(t, ok)
	assert.Equal(t, 2019, year)
}

func TestReadFilesExpandsDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Streaming_History_1.json"), []byte(`[]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Streaming_History_0.json"), []byte(`[]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(`hi`), 0o644))

	sources, errs := ReadFiles([]string{dir, filepath.Join(dir, "missing.json")})
	require.Len(t, errs, 1)
	require.Len(t, sources, 2)
	assert.Equal(t, "Streaming_History_0.json", filepath.Base(sources[0].Name))
	assert.Equal(t, "Streaming_History_1.json", filepath.Base(sources[1].Name))
}
