// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// stateFile is the file name every store directory uses.
const stateFile = "state.yaml"

// FileStore persists values as a flat YAML mapping in a single file.
// A corrupt or unreadable file degrades to an empty store rather than
// failing: persisted state is a convenience, never worth aborting a
// launch over.
type FileStore struct {
	path   string
	values map[string]string
	dirty  bool
}

// DefaultDir returns the per-user state directory for an application,
// following the platform's configuration-directory convention.
func DefaultDir(appName string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("store: locating user config dir: %w", err)
	}
	return filepath.Join(base, appName), nil
}

// Open opens the store in the default directory for appName, creating
// the directory as needed.
func Open(appName string) (*FileStore, error) {
	dir, err := DefaultDir(appName)
	if err != nil {
		return nil, err
	}
	return OpenDir(dir)
}

// OpenDir opens the store held in dir, creating the directory as needed.
// Existing state is loaded immediately; load problems are logged and the
// store starts empty.
func OpenDir(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: creating state dir: %w", err)
	}
	s := &FileStore{path: filepath.Join(dir, stateFile)}
	s.load()
	return s, nil
}

// load reads the state file into memory. Absence is the common first-run
// case and stays silent; anything else is logged and treated as empty.
func (s *FileStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger().Warn("store: reading state file failed", "path", s.path, "error", err)
		}
		s.values = make(map[string]string)
		return
	}
	if err := yaml.Unmarshal(data, &s.values); err != nil {
		logger().Warn("store: state file corrupt, starting empty", "path", s.path, "error", err)
		s.values = make(map[string]string)
		return
	}
	// An empty or null document unmarshals to a nil map.
	if s.values == nil {
		s.values = make(map[string]string)
	}
}

// Path returns the location of the backing file.
func (s *FileStore) Path() string { return s.path }

// GetString returns the value for key, or "" when key is absent.
func (s *FileStore) GetString(key string) string {
	return s.values[key]
}

// SetString records a value in memory. Flush makes it durable.
func (s *FileStore) SetString(key, value string) {
	s.values[key] = value
	s.dirty = true
}

// Flush writes the store to disk if anything changed since the last
// flush. A failed write clears the dirty flag anyway; retrying every
// frame would just repeat the failure.
func (s *FileStore) Flush() error {
	if !s.dirty {
		return nil
	}
	s.dirty = false
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("store: encoding state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("store: writing state file: %w", err)
	}
	return nil
}
