package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/wallet_ledger/internal/adapters/database/dberrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_ledger/internal/models"
	"github.com/SscSPs/wallet_ledger/internal/utils/mapping"
)

const accountColumns = `id, account_number, name, balance, currency_code, status, created_at`

// PgxAccountRepository implements the account ports on top of a pool or a
// transaction. FindAccountByNumberForUpdate is only meaningful on a transaction.
type PgxAccountRepository struct {
	db querier
}

var _ portsrepo.TxAccountRepository = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var m models.Account
	if err := row.Scan(
		&m.ID,
		&m.AccountNumber,
		&m.Name,
		&m.Balance,
		&m.CurrencyCode,
		&m.Status,
		&m.CreatedAt,
	); err != nil {
		return nil, err
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// SaveAccount inserts a new account and sets its generated id.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	m := mapping.ToModelAccount(*account)
	query := `
		INSERT INTO accounts (account_number, name, balance, currency_code, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		m.AccountNumber,
		m.Name,
		m.Balance,
		m.CurrencyCode,
		m.Status,
		m.CreatedAt,
	).Scan(&account.ID)
	if err != nil {
		return dberrors.Classify(err, fmt.Sprintf("failed to save account %s", m.AccountNumber))
	}
	return nil
}

// FindAccountByNumber retrieves an account by its account number.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1;`
	account, err := scanAccount(r.db.QueryRow(ctx, query, accountNumber))
	if err != nil {
		return nil, accountLookupError(err, accountNumber)
	}
	return account, nil
}

// FindAccountByID retrieves an account by its internal id.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1;`
	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, accountLookupError(err, fmt.Sprintf("id %d", id))
	}
	return account, nil
}

// FindAccountByNumberForUpdate selects the account and locks its row until
// the surrounding transaction ends.
func (r *PgxAccountRepository) FindAccountByNumberForUpdate(ctx context.Context, accountNumber string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1 FOR UPDATE;`
	account, err := scanAccount(r.db.QueryRow(ctx, query, accountNumber))
	if err != nil {
		return nil, accountLookupError(err, accountNumber)
	}
	return account, nil
}

// AccountNumberExists reports whether the number is already used.
func (r *PgxAccountRepository) AccountNumberExists(ctx context.Context, accountNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE account_number = $1);`, accountNumber).Scan(&exists)
	if err != nil {
		return false, dberrors.Classify(err, "failed to check account number")
	}
	return exists, nil
}

// UpdateAccount writes balance and status.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE accounts SET balance = $2, status = $3 WHERE id = $1;`,
		account.ID, account.Balance, string(account.Status),
	)
	if err != nil {
		return dberrors.Classify(err, fmt.Sprintf("failed to update account %s", account.AccountNumber))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, account.AccountNumber)
	}
	return nil
}

// IncrementBalance adds delta in a single UPDATE so concurrent writers
// never overwrite each other.
func (r *PgxAccountRepository) IncrementBalance(ctx context.Context, accountNumber string, delta decimal.Decimal) (*domain.Account, error) {
	query := `
		UPDATE accounts SET balance = balance + $2
		WHERE account_number = $1
		RETURNING ` + accountColumns + `;
	`
	account, err := scanAccount(r.db.QueryRow(ctx, query, accountNumber, delta))
	if err != nil {
		return nil, accountLookupError(err, accountNumber)
	}
	return account, nil
}

func accountLookupError(err error, ref string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, ref)
	}
	return dberrors.Classify(err, fmt.Sprintf("failed to load account %s", ref))
}
