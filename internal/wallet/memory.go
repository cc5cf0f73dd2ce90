package wallet

import (
	"context"
	"sync"
	"time"
)

type memoryStore struct {
	mu          sync.Mutex
	accounts    map[int]*Account
	ledgers     map[int][]LedgerEntry
	nextPassID  int
	nextEntryID int64
}

// NewMemoryStore creates a concurrency-safe in-memory store. It backs
// unit tests and deployments without a database.
func NewMemoryStore() Store {
	return &memoryStore{
		accounts:    make(map[int]*Account),
		ledgers:     make(map[int][]LedgerEntry),
		nextPassID:  1,
		nextEntryID: 1,
	}
}

func (s *memoryStore) Account(_ context.Context, userID int) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(userID), nil
}

func (s *memoryStore) Update(_ context.Context, userID int, fn func(*Account) error) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// fn runs on a copy so a failed update leaves the stored account intact.
	account := s.snapshot(userID)
	if err := fn(account); err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range account.Passes {
		if account.Passes[i].ID == 0 {
			account.Passes[i].ID = s.nextPassID
			s.nextPassID++
		}
	}
	for _, entry := range account.entries {
		entry.ID = s.nextEntryID
		entry.CreatedAt = now
		s.nextEntryID++
		s.ledgers[userID] = append(s.ledgers[userID], entry)
	}
	account.entries = nil

	s.accounts[userID] = account
	return s.snapshot(userID), nil
}

func (s *memoryStore) Ledger(_ context.Context, userID int, limit int) ([]LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.ledgers[userID]
	if limit <= 0 || limit > len(all) {
		limit = len(all)
	}

	// Newest first.
	entries := make([]LedgerEntry, 0, limit)
	for i := len(all) - 1; i >= 0 && len(entries) < limit; i-- {
		entries = append(entries, all[i])
	}
	return entries, nil
}

// snapshot deep-copies the stored account. Callers hold s.mu.
func (s *memoryStore) snapshot(userID int) *Account {
	stored, ok := s.accounts[userID]
	if !ok {
		return &Account{UserID: userID, Currency: "USD"}
	}

	passes := make([]Pass, len(stored.Passes))
	copy(passes, stored.Passes)

	return &Account{
		UserID:       stored.UserID,
		BalanceCents: stored.BalanceCents,
		Currency:     stored.Currency,
		Passes:       passes,
	}
}
