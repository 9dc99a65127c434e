package credentials

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"

	"github.com/solecraft/client-go/users"
)

// Storage keys. Both are cleared together on logout, expiry and 401.
const (
	tokenKey = "token"
	userKey  = "user"
)

// IsSentinel reports whether a stored token value is one of the corrupt
// placeholder strings earlier serialization bugs left behind.
func IsSentinel(value string) bool {
	return strings.TrimSpace(value) == "" || value == "null" || value == "undefined"
}

// Store owns the persisted credential pair: the bearer token and the cached
// user profile. All mutations are full overwrites or clears.
type Store struct {
	storage Storage
	log     zerolog.Logger
}

type StoreOption func(*Store)

func WithLogger(log zerolog.Logger) StoreOption {
	return func(s *Store) {
		s.log = log
	}
}

func NewStore(storage Storage, options ...StoreOption) *Store {
	store := &Store{
		storage: storage,
		log:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(store)
	}
	return store
}

// Save persists the token and, when provided, the serialized profile.
// Empty and sentinel tokens are rejected without touching stored state.
func (s *Store) Save(token string, user *users.Profile) bool {
	if IsSentinel(token) {
		s.log.Warn().Msg("rejecting invalid token on save")
		return false
	}
	if err := s.storage.Set(tokenKey, token); err != nil {
		s.log.Err(err).Msg("failed to persist token")
		return false
	}
	if user != nil {
		data, err := json.Marshal(user)
		if err != nil {
			s.log.Err(err).Msg("failed to serialize user profile")
			return false
		}
		if err := s.storage.Set(userKey, string(data)); err != nil {
			s.log.Err(err).Msg("failed to persist user profile")
			return false
		}
	}
	return true
}

// Clear removes both keys unconditionally. Clearing an already-empty store
// is a no-op.
func (s *Store) Clear() {
	if err := s.storage.Delete(tokenKey); err != nil {
		s.log.Err(err).Msg("failed to delete token")
	}
	if err := s.storage.Delete(userKey); err != nil {
		s.log.Err(err).Msg("failed to delete user profile")
	}
}

// Token returns the stored token, or "" when it is missing, empty or a
// sentinel string.
func (s *Store) Token() string {
	value, err := s.storage.Get(tokenKey)
	if err != nil || IsSentinel(value) {
		return ""
	}
	return value
}

// User returns the cached profile, or nil when it is missing or corrupt.
func (s *Store) User() *users.Profile {
	value, err := s.storage.Get(userKey)
	if err != nil || IsSentinel(value) {
		return nil
	}
	var profile users.Profile
	if err := json.Unmarshal([]byte(value), &profile); err != nil {
		s.log.Warn().Err(err).Msg("corrupt user profile in storage")
		return nil
	}
	return &profile
}

// Cleanup removes sentinel residue left by earlier bugs. Both keys go
// together: a sentinel token invalidates the cached profile too.
func (s *Store) Cleanup() {
	value, err := s.storage.Get(tokenKey)
	if err != nil {
		return
	}
	if IsSentinel(value) {
		s.Clear()
	}
}
