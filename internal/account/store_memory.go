package account

import (
	"context"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

type MemStore struct {
	mu         sync.RWMutex
	byUsername map[string]User
	byEmail    map[string]int
	nextID     int
}

func NewMemStore() *MemStore {
	return &MemStore{
		byUsername: make(map[string]User),
		byEmail:    make(map[string]int),
		nextID:     1,
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Create(ctx context.Context, nu NewUser) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byUsername[nu.Username]; ok {
		return User{}, ErrUsernameExists
	}
	if _, ok := s.byEmail[nu.Email]; ok {
		return User{}, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(nu.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:       s.nextID,
		Username: nu.Username,
		Email:    nu.Email,
		Hash:     hash,
	}
	s.nextID++

	s.byUsername[u.Username] = u
	s.byEmail[u.Email] = u.ID
	return u, nil
}

func (s *MemStore) GetByUsername(ctx context.Context, username string) (User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byUsername[username]
	return u, ok, nil
}
