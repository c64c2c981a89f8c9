package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"pg unique violation", &pgconn.PgError{Code: "23505"}, apperrors.ErrDuplicate},
		{"pg lock timeout", &pgconn.PgError{Code: "55P03"}, apperrors.ErrRetryable},
		{"pg statement timeout", &pgconn.PgError{Code: "57014"}, apperrors.ErrRetryable},
		{"pg deadlock", &pgconn.PgError{Code: "40P01"}, apperrors.ErrRetryable},
		{"pg serialization failure", &pgconn.PgError{Code: "40001"}, apperrors.ErrRetryable},
		{"mysql duplicate entry", &mysql.MySQLError{Number: 1062}, apperrors.ErrDuplicate},
		{"mysql lock wait timeout", &mysql.MySQLError{Number: 1205}, apperrors.ErrRetryable},
		{"mysql deadlock", &mysql.MySQLError{Number: 1213}, apperrors.ErrRetryable},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, apperrors.ErrDuplicate},
		{"wrapped pg error", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), apperrors.ErrDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err, "op")
			assert.ErrorIs(t, got, tt.kind)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassify_Unrecognised(t *testing.T) {
	cause := errors.New("connection reset")
	got := Classify(cause, "save account")

	assert.ErrorIs(t, got, cause)
	assert.NotErrorIs(t, got, apperrors.ErrDuplicate)
	assert.NotErrorIs(t, got, apperrors.ErrRetryable)
	assert.Equal(t, "save account: connection reset", got.Error())
}

func TestClassify_Nil(t *testing.T) {
	assert.NoError(t, Classify(nil, "noop"))
}

func TestIsRetryable_OtherPgCodes(t *testing.T) {
	assert.False(t, IsRetryable(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "40P01"}))
}
