// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

const (
	versionsDirName = ".versions"
	tempPattern     = ".tmp-*"

	defaultDirPerm  = 0o700
	defaultFilePerm = 0o600
)

// Entry is a cached value together with its version tag.
type Entry[T any] struct {
	Value   T
	Version int64
}

type actionKind int

const (
	actionKeep actionKind = iota
	actionReplace
	actionRemove
)

// Action is the decision returned by an [Store.Update] merge function.
type Action[T any] struct {
	kind  actionKind
	entry Entry[T]
}

// Keep leaves the stored entry untouched.
func Keep[T any]() Action[T] {
	return Action[T]{kind: actionKeep}
}

// Replace stores value with the given version.
func Replace[T any](value T, version int64) Action[T] {
	return Action[T]{kind: actionReplace, entry: Entry[T]{Value: value, Version: version}}
}

// Remove deletes the stored entry.
func Remove[T any]() Action[T] {
	return Action[T]{kind: actionRemove}
}

// MergeFunc decides what to do with the current entry of a key. current is
// nil when the key is absent or its payload is corrupt. The function runs
// with the store's writer lock held and must not call back into the store.
type MergeFunc[T any] func(current *Entry[T]) Action[T]

type options struct {
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// Option configures a [Store].
type Option func(*options)

// WithDirPerm sets the permissions used for cache directories.
func WithDirPerm(mode os.FileMode) Option {
	return func(o *options) {
		o.dirPerm = mode
	}
}

// WithFilePerm sets the permissions used for cache files.
func WithFilePerm(mode os.FileMode) Option {
	return func(o *options) {
		o.filePerm = mode
	}
}

// Store is a disk-backed versioned cache for values of type T.
type Store[T any] struct {
	dir         string
	versionsDir string
	codec       Codec[T]
	opts        options

	mu sync.RWMutex
}

// New creates a store rooted at dir, creating the directory if needed.
func New[T any](dir string, codec Codec[T], opts ...Option) (*Store[T], error) {
	if dir == "" {
		return nil, errors.New("cache dir is empty")
	}
	if codec == nil {
		return nil, errors.New("cache codec is nil")
	}

	o := options{dirPerm: defaultDirPerm, filePerm: defaultFilePerm}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store[T]{
		dir:         dir,
		versionsDir: filepath.Join(dir, versionsDirName),
		codec:       codec,
		opts:        o,
	}
	if err := s.ensureDirs(); err != nil {
		return nil, err
	}

	return s, nil
}

// Dir returns the cache root directory.
func (s *Store[T]) Dir() string {
	return s.dir
}

// Get returns the entry stored under key. It returns [ErrNotFound] when the
// key is absent and [ErrCorrupt] when the entry cannot be decoded.
func (s *Store[T]) Get(key string) (Entry[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.get(key)
}

// Set stores value under key with the given version.
func (s *Store[T]) Set(key string, value T, version int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set(key, value, version)
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Store[T]) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.remove(key)
}

// RemoveIfVersionBelow deletes key only if its stored version is strictly
// less than version. It reports whether an entry was removed.
func (s *Store[T]) RemoveIfVersionBelow(key string, version int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.path(key)
	if err != nil {
		return false, err
	}
	if _, err = os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat cache entry %q: %w", key, err)
	}

	stored, err := s.readVersion(key)
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return false, err
	}
	// an unreadable version tag can never prove the entry is fresh
	if err == nil && stored >= version {
		return false, nil
	}

	if err = s.remove(key); err != nil {
		return false, err
	}
	return true, nil
}

// Update atomically reads the entry under key, passes it to fn and applies
// the returned action. A corrupt entry is presented to fn as absent.
func (s *Store[T]) Update(key string, fn MergeFunc[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current *Entry[T]
	entry, err := s.get(key)
	switch {
	case err == nil:
		current = &entry
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrCorrupt):
	default:
		return err
	}

	action := fn(current)
	switch action.kind {
	case actionReplace:
		return s.set(key, action.entry.Value, action.entry.Version)
	case actionRemove:
		return s.remove(key)
	default:
		return nil
	}
}

// Keys returns every key currently stored.
func (s *Store[T]) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.keys()
}

// RemoveWithPrefix deletes every key starting with prefix and returns the
// number of removed entries.
func (s *Store[T]) RemoveWithPrefix(prefix string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.keys()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if err = s.remove(key); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}

// Clear deletes every entry.
func (s *Store[T]) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("clear cache dir: %w", err)
	}
	return s.ensureDirs()
}

func (s *Store[T]) get(key string) (Entry[T], error) {
	path, err := s.path(key)
	if err != nil {
		return Entry[T]{}, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from an encoded key
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Entry[T]{}, ErrNotFound
		}
		return Entry[T]{}, fmt.Errorf("read cache entry %q: %w", key, err)
	}

	value, err := s.codec.Decode(data)
	if err != nil {
		return Entry[T]{}, fmt.Errorf("%w: decode %q: %v", ErrCorrupt, key, err)
	}

	version, err := s.readVersion(key)
	if err != nil {
		return Entry[T]{}, err
	}

	return Entry[T]{Value: value, Version: version}, nil
}

func (s *Store[T]) set(key string, value T, version int64) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	data, err := s.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrEncode, key, err)
	}

	if err = s.ensureDirs(); err != nil {
		return err
	}
	if err = s.writeFile(s.dir, path, data); err != nil {
		return fmt.Errorf("write cache entry %q: %w", key, err)
	}

	versionData := []byte(strconv.FormatInt(version, 10))
	if err = s.writeFile(s.versionsDir, s.versionPath(path), versionData); err != nil {
		return fmt.Errorf("write cache entry version %q: %w", key, err)
	}

	return nil
}

func (s *Store[T]) remove(key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove cache entry %q: %w", key, err)
	}
	if err = os.Remove(s.versionPath(path)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove cache entry version %q: %w", key, err)
	}

	return nil
}

func (s *Store[T]) keys() ([]string, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list cache dir: %w", err)
	}

	keys := make([]string, 0, len(dirEntries))
	for _, de := range dirEntries {
		// encoded keys never contain '.', so dot files are internal
		if de.IsDir() || strings.HasPrefix(de.Name(), ".") {
			continue
		}
		key, err := decodeKey(de.Name())
		if err != nil {
			continue
		}
		keys = append(keys, key)
	}

	return keys, nil
}

func (s *Store[T]) readVersion(key string) (int64, error) {
	path, err := s.path(key)
	if err != nil {
		return 0, err
	}

	data, err := os.ReadFile(s.versionPath(path)) //nolint:gosec // path is derived from an encoded key
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("read cache entry version %q: %w", key, err)
	}

	version, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: version of %q: %v", ErrCorrupt, key, err)
	}

	return version, nil
}

func (s *Store[T]) ensureDirs() error {
	if err := os.MkdirAll(s.versionsDir, s.opts.dirPerm); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	return nil
}

// writeFile writes data to a temp file in dir and renames it over path.
func (s *Store[T]) writeFile(dir, path string, data []byte) error {
	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err = os.Chmod(tmpName, s.opts.filePerm); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err = os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}

	return nil
}

func (s *Store[T]) path(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}
	return filepath.Join(s.dir, encodeKey(key)), nil
}

func (s *Store[T]) versionPath(entryPath string) string {
	return filepath.Join(s.versionsDir, filepath.Base(entryPath))
}

// encodeKey percent-encodes every byte outside [A-Za-z0-9_-].
func encodeKey(key string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '-':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0F])
		}
	}
	return b.String()
}

func decodeKey(name string) (string, error) {
	return url.PathUnescape(name)
}
