package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/fretchord/fretboard"
	"github.com/jsphweid/fretchord/model"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("session not found")

// Session is one user's fretboard selection.
type Session struct {
	ID string

	mu        sync.Mutex
	selection *fretboard.Selection
}

func (s *Session) Toggle(c model.Coordinate) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Toggle(c)
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Clear()
}

// Snapshot returns the marked positions and the distinct notes they sound.
func (s *Session) Snapshot() ([]model.Position, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Positions(), s.selection.PitchClasses()
}

type Store struct {
	tuning fretboard.Tuning
	ttl    time.Duration
	cache  *cache.Cache
}

func NewStore(t fretboard.Tuning, ttl time.Duration) *Store {
	return &Store{
		tuning: t,
		ttl:    ttl,
		cache:  cache.New(ttl, ttl/2),
	}
}

func (s *Store) Create() *Session {
	sess := &Session{
		ID:        uuid.New().String(),
		selection: fretboard.NewSelection(s.tuning),
	}
	s.cache.Set(sess.ID, sess, cache.DefaultExpiration)
	return sess
}

// Get looks a session up and pushes its expiry back.
func (s *Store) Get(id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.Wrapf(ErrNotFound, "%q", id)
	}
	v, found := s.cache.Get(id)
	if !found {
		return nil, errors.Wrapf(ErrNotFound, "%q", id)
	}
	// fails if a Delete landed since the Get
	if err := s.cache.Replace(id, v, cache.DefaultExpiration); err != nil {
		return nil, errors.Wrapf(ErrNotFound, "%q", id)
	}
	return v.(*Session), nil
}

func (s *Store) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	s.cache.Delete(id)
	return nil
}

func (s *Store) Len() int {
	return s.cache.ItemCount()
}
