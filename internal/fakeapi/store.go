package fakeapi

import (
	"errors"
	"sync"
	"time"
)

var (
	errEmailTaken   = errors.New("email already registered")
	errUserNotFound = errors.New("user not found")
)

type user struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	AccountNumber string
	PasswordHash  []byte
	CreatedAt     time.Time
}

// store is the in-memory persistence behind the fake backend.
type store struct {
	mu           sync.RWMutex
	users        map[string]*user // by email
	transactions map[string][]map[string]interface{}
}

func newStore() *store {
	return &store{
		users:        make(map[string]*user),
		transactions: make(map[string][]map[string]interface{}),
	}
}

func (s *store) addUser(u *user) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.Email]; ok {
		return errEmailTaken
	}
	s.users[u.Email] = u
	return nil
}

func (s *store) userByEmail(email string) (*user, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[email]
	if !ok {
		return nil, errUserNotFound
	}
	return u, nil
}

func (s *store) addTransaction(userID string, tx map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[userID] = append(s.transactions[userID], tx)
}

// listTransactions returns the user's transactions newest first.
func (s *store) listTransactions(userID string) []map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txs := s.transactions[userID]
	out := make([]map[string]interface{}, 0, len(txs))
	for i := len(txs) - 1; i >= 0; i-- {
		out = append(out, copyRecord(txs[i]))
	}
	return out
}

func (s *store) userCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

func copyRecord(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
