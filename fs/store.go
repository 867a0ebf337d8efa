package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/goose"
)

// Ensure Store implements goose.ResourceStore at compile time.
var _ goose.ResourceStore = (*Store)(nil)

// Store keeps the temporary files of running crawls in one directory.
// Every file is named "{linkHash}_{name}", so one crawl's files can be
// released without touching another's.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is created on
// first use.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes data for linkHash and returns the file path.
func (s *Store) Save(linkHash, name string, data []byte) (string, error) {
	if linkHash == "" {
		return "", goose.Errorf(goose.EINVALID, "link hash required")
	}
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", goose.Errorf(goose.EINVALID, "invalid resource name %q", name)
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, linkHash+"_"+name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return path, nil
}

// Release removes every file saved for linkHash. Files that are already
// gone are not an error; other failures are joined and returned after all
// files have been tried.
func (s *Store) Release(linkHash string) error {
	if linkHash == "" {
		return nil
	}
	matches, err := filepath.Glob(filepath.Join(s.dir, linkHash+"_*"))
	if err != nil {
		return err
	}
	var errs []error
	for _, path := range matches {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
