package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
)

// WithinTransaction runs fn against a unit of work whose writes become
// visible only if fn returns nil. All locks are released on every exit path.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context, uow portsrepo.UnitOfWork) error) error {
	uow := &unitOfWork{
		store:    s,
		held:     make(map[string]func()),
		accounts: make(map[string]domain.Account),
		records:  make(map[string]domain.IdempotencyRecord),
	}
	defer uow.release()

	if err := fn(ctx, uow); err != nil {
		return err
	}
	return uow.commit()
}

var _ portsrepo.TransactionManager = (*Store)(nil)

type unitOfWork struct {
	store *Store
	held  map[string]func()

	newAccounts []domain.Account
	accounts    map[string]domain.Account // staged updates by account number
	entries     []domain.JournalEntry
	records     map[string]domain.IdempotencyRecord
}

var (
	_ portsrepo.UnitOfWork            = (*unitOfWork)(nil)
	_ portsrepo.TxAccountRepository   = (*unitOfWork)(nil)
	_ portsrepo.JournalWriter         = (*unitOfWork)(nil)
	_ portsrepo.IdempotencyRepository = (*unitOfWork)(nil)
)

func (u *unitOfWork) Accounts() portsrepo.TxAccountRepository      { return u }
func (u *unitOfWork) Journal() portsrepo.JournalWriter             { return u }
func (u *unitOfWork) Idempotency() portsrepo.IdempotencyRepository { return u }

// lock is reentrant within the unit of work.
func (u *unitOfWork) lock(ctx context.Context, key string) error {
	if _, ok := u.held[key]; ok {
		return nil
	}
	release, err := u.store.acquire(ctx, key)
	if err != nil {
		return err
	}
	u.held[key] = release
	return nil
}

func (u *unitOfWork) release() {
	for key, release := range u.held {
		release()
		delete(u.held, key)
	}
}

func (u *unitOfWork) commit() error {
	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate everything before the first write so a failed commit
	// leaves committed state untouched.
	for _, a := range u.newAccounts {
		if _, taken := s.byNumber[a.AccountNumber]; taken {
			return fmt.Errorf("account number %s already exists: %w", a.AccountNumber, domain.ErrDuplicateAccountNumber)
		}
	}
	for number := range u.accounts {
		if _, ok := s.byNumber[number]; ok {
			continue
		}
		if !slices.ContainsFunc(u.newAccounts, func(a domain.Account) bool { return a.AccountNumber == number }) {
			return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, number)
		}
	}

	for i := range u.newAccounts {
		if err := s.insertAccount(&u.newAccounts[i]); err != nil {
			return err
		}
	}
	for number, staged := range u.accounts {
		current := s.accounts[s.byNumber[number]]
		current.Balance = staged.Balance
		current.Status = staged.Status
		s.accounts[current.ID] = current
	}
	s.entries = append(s.entries, u.entries...)
	for key, record := range u.records {
		s.idempotency[key] = record
	}
	return nil
}

// view returns the account as seen by this unit of work.
func (u *unitOfWork) view(accountNumber string) (*domain.Account, error) {
	if staged, ok := u.accounts[accountNumber]; ok {
		return &staged, nil
	}
	for _, a := range u.newAccounts {
		if a.AccountNumber == accountNumber {
			return &a, nil
		}
	}
	return u.store.findByNumber(accountNumber)
}

func (u *unitOfWork) AccountNumberExists(ctx context.Context, accountNumber string) (bool, error) {
	if _, err := u.view(accountNumber); err != nil {
		return false, nil
	}
	return true, nil
}

func (u *unitOfWork) FindAccountByNumber(_ context.Context, accountNumber string) (*domain.Account, error) {
	return u.view(accountNumber)
}

func (u *unitOfWork) FindAccountByID(_ context.Context, id int64) (*domain.Account, error) {
	for _, a := range u.accounts {
		if a.ID == id {
			return &a, nil
		}
	}
	return u.store.findByID(id)
}

func (u *unitOfWork) FindAccountByNumberForUpdate(ctx context.Context, accountNumber string) (*domain.Account, error) {
	if err := u.lock(ctx, accountLockKey(accountNumber)); err != nil {
		return nil, err
	}
	return u.view(accountNumber)
}

func (u *unitOfWork) SaveAccount(_ context.Context, account *domain.Account) error {
	if u.store.numberExists(account.AccountNumber) {
		return fmt.Errorf("account number %s already exists: %w", account.AccountNumber, domain.ErrDuplicateAccountNumber)
	}
	for _, a := range u.newAccounts {
		if a.AccountNumber == account.AccountNumber {
			return fmt.Errorf("account number %s already exists: %w", account.AccountNumber, domain.ErrDuplicateAccountNumber)
		}
	}
	account.ID = u.store.nextAccountID.Add(1)
	u.newAccounts = append(u.newAccounts, *account)
	return nil
}

func (u *unitOfWork) UpdateAccount(ctx context.Context, account domain.Account) error {
	if err := u.lock(ctx, accountLockKey(account.AccountNumber)); err != nil {
		return err
	}
	current, err := u.view(account.AccountNumber)
	if err != nil {
		return err
	}
	current.Balance = account.Balance
	current.Status = account.Status
	u.accounts[account.AccountNumber] = *current
	return nil
}

func (u *unitOfWork) IncrementBalance(ctx context.Context, accountNumber string, delta decimal.Decimal) (*domain.Account, error) {
	if err := u.lock(ctx, accountLockKey(accountNumber)); err != nil {
		return nil, err
	}
	current, err := u.view(accountNumber)
	if err != nil {
		return nil, err
	}
	current.Balance = current.Balance.Add(delta)
	u.accounts[accountNumber] = *current
	return current, nil
}

func (u *unitOfWork) SaveJournalEntry(_ context.Context, entry *domain.JournalEntry) error {
	entry.ID = u.store.nextEntryID.Add(1)
	u.entries = append(u.entries, *entry)
	return nil
}

func (u *unitOfWork) ClaimIdempotencyKey(ctx context.Context, record domain.IdempotencyRecord) (*domain.IdempotencyRecord, bool, error) {
	if err := u.lock(ctx, idempotencyLockKey(record.Key)); err != nil {
		return nil, false, err
	}

	u.store.mu.RLock()
	existing, ok := u.store.idempotency[record.Key]
	u.store.mu.RUnlock()
	if ok {
		return &existing, false, nil
	}
	if staged, ok := u.records[record.Key]; ok {
		return &staged, false, nil
	}

	u.records[record.Key] = record
	return nil, true, nil
}
