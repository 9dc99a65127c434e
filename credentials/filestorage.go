package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	errs "github.com/solecraft/client-go/internal/errors"
)

var _ Storage = (*FileStorage)(nil)

// FileStorage persists key-value pairs as a JSON object in a single file.
// A missing or corrupt file is treated as empty rather than an error, so a
// damaged credentials file degrades to "logged out" instead of breaking the
// client.
type FileStorage struct {
	path string
	lock sync.Mutex
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Get(key string) (string, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	values := f.load()
	value, ok := values[key]
	if !ok {
		return "", errors.Wrapf(errs.ErrNotFound, "key %q", key)
	}
	return value, nil
}

func (f *FileStorage) Set(key, value string) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	values := f.load()
	values[key] = value
	return f.save(values)
}

func (f *FileStorage) Delete(key string) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	values := f.load()
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return f.save(values)
}

func (f *FileStorage) load() map[string]string {
	values := make(map[string]string)
	data, err := os.ReadFile(f.path)
	if err != nil {
		return values
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return make(map[string]string)
	}
	return values
}

func (f *FileStorage) save(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return errors.Wrap(err, "marshal credentials")
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return errors.Wrapf(err, "create credentials dir for %q", f.path)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return errors.Wrapf(err, "write credentials file %q", f.path)
	}
	return nil
}
