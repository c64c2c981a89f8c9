package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
)

// DefaultAllocatorMaxAttempts bounds the candidate draws per allocation.
const DefaultAllocatorMaxAttempts = 100

// suffixSpace is the number of distinct 6 digit suffixes.
const suffixSpace = 1_000_000

// RandomSource yields uniform integers in [0, n).
type RandomSource interface {
	IntN(n int) int
}

// lockedRand makes a *rand.Rand safe for concurrent allocators.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// NewSeededRandomSource returns a deterministic, goroutine-safe source.
func NewSeededRandomSource(seed1, seed2 uint64) RandomSource {
	return &lockedRand{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// globalRand uses the runtime-seeded top level math/rand/v2 functions.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// AccountNumberAllocator proposes account numbers that are not yet in use.
// A successful Allocate is best effort only: two callers can receive the
// same number and the store's unique constraint decides the winner.
type AccountNumberAllocator struct {
	BaseService
	random      RandomSource
	maxAttempts int
}

// AllocatorOption configures an AccountNumberAllocator.
type AllocatorOption func(*AccountNumberAllocator)

// WithRandomSource replaces the default runtime-seeded source.
func WithRandomSource(src RandomSource) AllocatorOption {
	return func(a *AccountNumberAllocator) {
		if src != nil {
			a.random = src
		}
	}
}

// WithMaxAttempts overrides DefaultAllocatorMaxAttempts.
func WithMaxAttempts(n int) AllocatorOption {
	return func(a *AccountNumberAllocator) {
		if n > 0 {
			a.maxAttempts = n
		}
	}
}

// NewAccountNumberAllocator creates an allocator with the provided options.
func NewAccountNumberAllocator(options ...AllocatorOption) *AccountNumberAllocator {
	a := &AccountNumberAllocator{
		random:      globalRand{},
		maxAttempts: DefaultAllocatorMaxAttempts,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Allocate draws candidates until one is not reported as existing by checker.
// Returns domain.ErrAllocationExhausted after maxAttempts collisions.
func (a *AccountNumberAllocator) Allocate(ctx context.Context, checker portsrepo.AccountNumberChecker) (string, error) {
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate := domain.FormatAccountNumber(a.random.IntN(suffixSpace))
		exists, err := checker.AccountNumberExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check account number %s: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
		a.LogDebug(ctx, "Account number collision", slog.String("account_number", candidate), slog.Int("attempt", attempt))
	}

	a.LogWarn(ctx, domain.ErrAllocationExhausted, "Account number allocation exhausted", slog.Int("max_attempts", a.maxAttempts))
	return "", domain.ErrAllocationExhausted
}
