package credentials

import (
	"sync"

	"github.com/pkg/errors"

	errs "github.com/solecraft/client-go/internal/errors"
)

var _ Storage = (*MemStorage)(nil)

// MemStorage is an in-memory Storage, used by tests and short-lived sessions.
type MemStorage struct {
	values map[string]string
	lock   sync.RWMutex
}

func NewMemStorage() *MemStorage {
	return &MemStorage{values: make(map[string]string)}
}

func (m *MemStorage) Get(key string) (string, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return "", errors.Wrapf(errs.ErrNotFound, "key %q", key)
	}
	return value, nil
}

func (m *MemStorage) Set(key, value string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemStorage) Delete(key string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.values, key)
	return nil
}
