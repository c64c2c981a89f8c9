package services

import (
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, allocatorOptions ...AllocatorOption) *portssvc.ServiceContainer {
	allocator := NewAccountNumberAllocator(
		append([]AllocatorOption{WithMaxAttempts(cfg.AccountNumberMaxAttempts)}, allocatorOptions...)...,
	)

	return &portssvc.ServiceContainer{
		Ledger: NewLedgerService(
			repos.AccountRepo,
			repos.TxManager,
			WithAllocator(allocator),
			WithDefaultCurrency(cfg.DefaultCurrency),
			WithCreateMaxRetries(cfg.CreateWalletMaxRetries),
		),
		History: NewHistoryService(repos.AccountRepo, repos.JournalRepo),
	}
}
