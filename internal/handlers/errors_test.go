package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"account not found", fmt.Errorf("%w: 2026000001", domain.ErrAccountNotFound), http.StatusNotFound},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"insufficient funds", &domain.InsufficientFundsError{}, http.StatusBadRequest},
		{"duplicate", domain.ErrIdempotencyConflict, http.StatusConflict},
		{"retryable", fmt.Errorf("%w: lock timeout", apperrors.ErrRetryable), http.StatusServiceUnavailable},
		{"app error", apperrors.NewAppError(http.StatusTeapot, "teapot", nil), http.StatusTeapot},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}

func TestValidateIdempotencyKey(t *testing.T) {
	assert.NoError(t, validateIdempotencyKey(""))
	assert.NoError(t, validateIdempotencyKey("order-42/retry"))
	assert.Error(t, validateIdempotencyKey("ключ"))
}
