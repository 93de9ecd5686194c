// internal/storage/kvstore.go
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// Store is a key to JSON-value adapter. Values are written whole on every
// save; there are no partial updates. Breaking schema changes rotate the key
// to a new version suffix and abandon the old value, so there is no
// migration path here on purpose.
type Store interface {
	// Load unmarshals the value under key into dest. It returns false when
	// the key is absent. A value that fails to parse is treated as absent:
	// the condition is logged and the stale value dropped, the caller falls
	// back to seed data. Load never surfaces a parse error.
	Load(key string, dest interface{}) (bool, error)

	// Save serializes v and replaces the whole value under key.
	Save(key string, v interface{}) error

	Delete(key string) error
}

// FileStore keeps one JSON file per key under a data directory. Saves go
// through a temp file and rename so a crash mid-write cannot leave a torn
// value behind.
type FileStore struct {
	dir string
	mtx sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(key string, dest interface{}) (bool, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err,
		}).Warn("Stored value is unparsable, resetting")
		os.Remove(s.path(key))
		return false, nil
	}
	return true, nil
}

func (s *FileStore) Save(key string, v interface{}) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", key, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file for %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Delete(key string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// MemoryStore is the session-scoped counterpart of FileStore. It backs tests
// and ephemeral flags that must not survive a restart.
type MemoryStore struct {
	mtx    sync.Mutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Load(key string, dest interface{}) (bool, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	data, ok := s.values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err,
		}).Warn("Stored value is unparsable, resetting")
		delete(s.values, key)
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) Save(key string, v interface{}) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	s.values[key] = data
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	delete(s.values, key)
	return nil
}
