package memory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
)

// accountRepository serves account reads and single-statement writes
// outside a unit of work. Writes still take the row lock, as an UPDATE would.
type accountRepository struct {
	store *Store
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

func (r *accountRepository) AccountNumberExists(_ context.Context, accountNumber string) (bool, error) {
	return r.store.numberExists(accountNumber), nil
}

func (r *accountRepository) FindAccountByNumber(_ context.Context, accountNumber string) (*domain.Account, error) {
	return r.store.findByNumber(accountNumber)
}

func (r *accountRepository) FindAccountByID(_ context.Context, id int64) (*domain.Account, error) {
	return r.store.findByID(id)
}

func (r *accountRepository) SaveAccount(_ context.Context, account *domain.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.insertAccount(account)
}

func (r *accountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	release, err := r.store.acquire(ctx, accountLockKey(account.AccountNumber))
	if err != nil {
		return err
	}
	defer release()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.committedByNumber(account.AccountNumber)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, account.AccountNumber)
	}
	current.Balance = account.Balance
	current.Status = account.Status
	r.store.accounts[current.ID] = current
	return nil
}

func (r *accountRepository) IncrementBalance(ctx context.Context, accountNumber string, delta decimal.Decimal) (*domain.Account, error) {
	release, err := r.store.acquire(ctx, accountLockKey(accountNumber))
	if err != nil {
		return nil, err
	}
	defer release()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.committedByNumber(accountNumber)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountNumber)
	}
	current.Balance = current.Balance.Add(delta)
	r.store.accounts[current.ID] = current
	return &current, nil
}
