// Package memory is a process-local store with the same locking semantics as
// the SQL adapters: exclusive per-row locks held until the unit of work ends,
// a unique account_number index and append-only journal entries.
package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
)

// DefaultLockTimeout matches the SQL adapters' lock_timeout default.
const DefaultLockTimeout = 5 * time.Second

// Store holds committed state. Writers inside a unit of work stage their
// changes and apply them under mu on commit.
type Store struct {
	mu          sync.RWMutex
	accounts    map[int64]domain.Account
	byNumber    map[string]int64
	entries     []domain.JournalEntry
	idempotency map[string]domain.IdempotencyRecord

	nextAccountID atomic.Int64
	nextEntryID   atomic.Int64

	locksMu     sync.Mutex
	rowLocks    map[string]chan struct{}
	lockTimeout time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithLockTimeout bounds how long a row lock is waited for. Zero waits
// until the context is done.
func WithLockTimeout(d time.Duration) Option {
	return func(s *Store) {
		s.lockTimeout = d
	}
}

// NewStore creates an empty store.
func NewStore(options ...Option) *Store {
	s := &Store{
		accounts:    make(map[int64]domain.Account),
		byNumber:    make(map[string]int64),
		idempotency: make(map[string]domain.IdempotencyRecord),
		rowLocks:    make(map[string]chan struct{}),
		lockTimeout: DefaultLockTimeout,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Store) lockFor(key string) chan struct{} {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	ch, ok := s.rowLocks[key]
	if !ok {
		ch = make(chan struct{}, 1)
		s.rowLocks[key] = ch
	}
	return ch
}

// acquire blocks until the named lock is free, the context is done or the
// lock timeout elapses. The last two surface as apperrors.ErrRetryable.
func (s *Store) acquire(ctx context.Context, key string) (release func(), err error) {
	ch := s.lockFor(key)

	var timeout <-chan time.Time
	if s.lockTimeout > 0 {
		timer := time.NewTimer(s.lockTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case ch <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-ch }) }, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: waiting for lock on %s: %w", apperrors.ErrRetryable, key, ctx.Err())
	case <-timeout:
		return nil, fmt.Errorf("%w: lock timeout after %s on %s", apperrors.ErrRetryable, s.lockTimeout, key)
	}
}

func accountLockKey(accountNumber string) string { return "account:" + accountNumber }
func idempotencyLockKey(key string) string       { return "idempotency:" + key }

// committedByNumber must be called with mu held.
func (s *Store) committedByNumber(accountNumber string) (domain.Account, bool) {
	id, ok := s.byNumber[accountNumber]
	if !ok {
		return domain.Account{}, false
	}
	return s.accounts[id], true
}

func (s *Store) findByNumber(accountNumber string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.committedByNumber(accountNumber)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountNumber)
	}
	return &account, nil
}

func (s *Store) findByID(id int64) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrAccountNotFound, id)
	}
	return &account, nil
}

func (s *Store) numberExists(accountNumber string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byNumber[accountNumber]
	return ok
}

// insertAccount must be called with mu held.
func (s *Store) insertAccount(account *domain.Account) error {
	if _, taken := s.byNumber[account.AccountNumber]; taken {
		return fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, account.AccountNumber)
	}
	if account.ID == 0 {
		account.ID = s.nextAccountID.Add(1)
	}
	s.accounts[account.ID] = *account
	s.byNumber[account.AccountNumber] = account.ID
	return nil
}
