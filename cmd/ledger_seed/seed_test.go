package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/wallet_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/SscSPs/wallet_ledger/internal/core/services"
)

const sampleSeed = `
wallets:
  - name: Alice
    currency: usd
    fund: "1000.00"
  - name: Bob
    fund: 250.5
  - name: Carol
    currency: EUR
`

func TestParseSeedFile(t *testing.T) {
	f, err := parseSeedFile([]byte(sampleSeed))
	require.NoError(t, err)
	require.Len(t, f.Wallets, 3)

	assert.Equal(t, "Alice", f.Wallets[0].Name)
	assert.True(t, decimal.RequireFromString("1000").Equal(f.Wallets[0].Fund))
	assert.True(t, decimal.RequireFromString("250.5").Equal(f.Wallets[1].Fund))
	assert.True(t, f.Wallets[2].Fund.IsZero())
}

func TestParseSeedFile_Invalid(t *testing.T) {
	_, err := parseSeedFile([]byte("wallets: []"))
	assert.Error(t, err)

	_, err = parseSeedFile([]byte("wallets: [name"))
	assert.Error(t, err)
}

func TestSeedWallets(t *testing.T) {
	f, err := parseSeedFile([]byte(sampleSeed))
	require.NoError(t, err)

	repos := memory.NewRepositoryProvider(memory.NewStore())
	ledger := services.NewLedgerService(repos.AccountRepo, repos.TxManager)

	seeded, err := seedWallets(context.Background(), ledger, f, slog.Default())
	require.NoError(t, err)
	require.Len(t, seeded, 3)

	alice, err := ledger.GetWallet(context.Background(), seeded[0].AccountNumber)
	require.NoError(t, err)
	assert.Equal(t, "USD", alice.CurrencyCode)
	assert.True(t, decimal.RequireFromString("1000").Equal(alice.Balance))

	carol, err := ledger.GetWallet(context.Background(), seeded[2].AccountNumber)
	require.NoError(t, err)
	assert.Equal(t, "EUR", carol.CurrencyCode)
	assert.True(t, carol.Balance.IsZero())

	for _, w := range seeded {
		assert.NoError(t, domain.ValidateAccountNumber(w.AccountNumber))
	}
}

func TestSeedWallets_StopsOnInvalidWallet(t *testing.T) {
	f := &SeedFile{Wallets: []SeedWallet{{Name: "Alice"}, {Name: "   "}, {Name: "Carol"}}}

	repos := memory.NewRepositoryProvider(memory.NewStore())
	ledger := services.NewLedgerService(repos.AccountRepo, repos.TxManager)

	seeded, err := seedWallets(context.Background(), ledger, f, slog.Default())
	assert.ErrorIs(t, err, domain.ErrInvalidName)
	assert.Len(t, seeded, 1)
}
