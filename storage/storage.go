package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Store reads and writes one JSON document per entity under a data directory.
// Every dataset is small enough to load whole; there is no indexing and no
// pagination anywhere in the system.
//
// Writes go through a temp file and rename, so a reader never observes a
// partially written document. Mutating handlers additionally serialize their
// read-modify-write cycle through Locker, which closes the lost-update race
// between two concurrent writers to the same file.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(dir string) *Store {
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}
}

// Dir returns the data directory the store was created with.
func (s *Store) Dir() string {
	return s.dir
}

// Locker returns the write lock for one entity file. Callers hold it for the
// full read-modify-write sequence.
func (s *Store) Locker(name string) sync.Locker {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

// Ensure creates the data directory and seeds the entity file when absent.
// Idempotent; called once per entity at startup.
func (s *Store) Ensure(name string, seed interface{}) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	data, err := json.MarshalIndent(seed, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Read unmarshals the entity file into v. A missing file or a parse failure
// leaves v at the caller's default and is never surfaced to the HTTP layer;
// loaders degrade to an empty result instead of erroring.
func (s *Store) Read(name string, v interface{}) {
	path := filepath.Join(s.dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("file", name).Warn("storage read failed")
		}
		return
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.WithError(err).WithField("file", name).Warn("storage parse failed, serving default")
	}
}

// Write replaces the entity file with the serialized form of v. The document
// lands via temp file, fsync and rename so concurrent readers see either the
// old or the new content, never a torn write.
func (s *Store) Write(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if _, err = f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err = f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err = f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}
