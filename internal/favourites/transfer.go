package favourites

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ExportFileName is the file name the mobile app used for shared favourites.
const ExportFileName = "Merken.json"

// Export writes the favourites document to w.
func (s *Store) Export(w io.Writer) error {
	data, err := Encode(s.Sorted())
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return &ResourceError{Op: "write", Err: err}
	}
	return nil
}

// ExportFile writes Merken.json into dir and returns its path.
func (s *Store) ExportFile(dir string) (string, error) {
	path := filepath.Join(dir, ExportFileName)
	if err := s.WriteFile(path); err != nil {
		return "", err
	}
	return path, nil
}

// WriteFile writes the favourites document to path, replacing any existing
// file.
func (s *Store) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &ResourceError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &ResourceError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if err := s.Export(f); err != nil {
		var rerr *ResourceError
		if errors.As(err, &rerr) {
			rerr.Path = path
		}
		return err
	}
	return nil
}

// Import merges the favourites document read from r into the store and
// returns how many entries were new. Invalid documents leave the store
// untouched.
func (s *Store) Import(r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, &ResourceError{Op: "read", Err: err}
	}
	entries, err := Decode(data)
	if err != nil {
		return 0, err
	}
	added, err := s.merge(entries)
	if err != nil {
		return added, fmt.Errorf("import favourites: %w", err)
	}
	s.log.Info("favourites: imported", "records", len(entries), "added", added)
	return added, nil
}

// ImportFile is Import over the file at path.
func (s *Store) ImportFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, &ResourceError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	added, err := s.Import(f)
	var rerr *ResourceError
	if errors.As(err, &rerr) && rerr.Path == "" {
		rerr.Path = path
	}
	return added, err
}
