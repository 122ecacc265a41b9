package history

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnexpectedShape is returned for a buffer that is valid JSON but neither
// an array of records nor an object with a "tracks" array.
var ErrUnexpectedShape = errors.New("expected an array of records or an object with a \"tracks\" array")

// Source is one raw export buffer, usually the contents of one file.
type Source struct {
	Name string
	Data []byte
}

// BufferError reports a buffer that contributed no records.
type BufferError struct {
	Source string
	Err    error
}

func (e *BufferError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *BufferError) Unwrap() error {
	return e.Err
}

// Batch is the concatenated result of ingesting several sources.
type Batch struct {
	Records []Record

	// Skipped counts array elements that could not be decoded as records.
	Skipped int

	// Errors holds one *BufferError per source that was dropped entirely.
	Errors []error
}

type wrapped struct {
	Tracks *json.RawMessage `json:"tracks"`
}

// Ingest parses every source in order and concatenates their records.
// A source that fails to parse is reported in Batch.Errors and skipped.
func Ingest(sources []Source) *Batch {
	batch := &Batch{}
	for _, src := range sources {
		elems, err := splitRecords(src.Data)
		if err != nil {
			batch.Errors = append(batch.Errors, &BufferError{Source: src.Name, Err: err})
			continue
		}
		for _, raw := range elems {
			var r Record
			if err := json.Unmarshal(raw, &r); err != nil || !isObject(raw) {
				batch.Skipped++
				continue
			}
			batch.Records = append(batch.Records, r)
		}
	}
	return batch
}

func splitRecords(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("decoding: %w", ErrUnexpectedShape)
	}

	switch trimmed[0] {
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return nil, fmt.Errorf("decoding array: %w", err)
		}
		return elems, nil

	case '{':
		var w wrapped
		if err := json.Unmarshal(trimmed, &w); err != nil {
			return nil, fmt.Errorf("decoding object: %w", err)
		}
		if w.Tracks == nil {
			return nil, ErrUnexpectedShape
		}
		var elems []json.RawMessage
		if err := json.Unmarshal(*w.Tracks, &elems); err != nil {
			return nil, fmt.Errorf("decoding tracks: %w", ErrUnexpectedShape)
		}
		return elems, nil
	}

	if !json.Valid(trimmed) {
		return nil, errors.New("decoding: invalid JSON")
	}
	return nil, ErrUnexpectedShape
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// ReadFiles loads each path as a Source. Directories are expanded to the
// .json files they directly contain, in lexical order. A file that cannot be
// read is returned as a *BufferError alongside the sources that could.
func ReadFiles(paths []string) ([]Source, []error) {
	var sources []Source
	var errs []error
	for _, path := range paths {
		files, err := expand(path)
		if err != nil {
			errs = append(errs, &BufferError{Source: path, Err: err})
			continue
		}
		for _, f := range files {
			data, err := os.ReadFile(f)
			if err != nil {
				errs = append(errs, &BufferError{Source: f, Err: err})
				continue
			}
			sources = append(sources, Source{Name: f, Data: data})
		}
	}
	return sources, errs
}

func expand(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		files = append(files, filepath.Join(path, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
