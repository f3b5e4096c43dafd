package user

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists   = fmt.Errorf("user already exists")
	ErrUserNotFound = fmt.Errorf("user not found")
	ErrInvalidUser  = fmt.Errorf("invalid user")
)

// bcrypt only hashes the first 72 bytes of a password.
const maxPasswordLength = 72

type User struct {
	ID    string
	Name  string
	Email string

	passwordHash []byte
}

func (u *User) MatchPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)) == nil
}

type Store interface {
	Add(id, password, name, email string) (*User, error)
	Find(id string) (*User, error)
	Contains(id string) bool
	All() []*User
}

type store struct {
	mu    sync.RWMutex
	users map[string]*User
	cost  int
}

func NewStore(cost int) Store {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &store{
		users: make(map[string]*User),
		cost:  cost,
	}
}

func (s *store) Add(id, password, name, email string) (*User, error) {
	if id == "" || password == "" {
		return nil, fmt.Errorf("%w: userId and password are required", ErrInvalidUser)
	}

	if len(password) > maxPasswordLength {
		return nil, fmt.Errorf("%w: password longer than %d bytes", ErrInvalidUser, maxPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[id]; exists {
		return nil, ErrUserExists
	}

	u := &User{
		ID:           id,
		Name:         name,
		Email:        email,
		passwordHash: hash,
	}
	s.users[id] = u
	return u, nil
}

func (s *store) Find(id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *store) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[id]
	return ok
}

func (s *store) All() []*User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].ID < users[j].ID
	})
	return users
}
