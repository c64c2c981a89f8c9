// Package dberrors maps driver specific failures onto apperrors kinds so the
// core never needs to know which store is behind a repository.
package dberrors

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
)

// Postgres SQLSTATE codes.
const (
	pgUniqueViolation      = "23505"
	pgLockNotAvailable     = "55P03"
	pgQueryCanceled        = "57014"
	pgDeadlockDetected     = "40P01"
	pgSerializationFailure = "40001"
)

// MySQL server error numbers.
const (
	myDuplicateEntry    uint16 = 1062
	myLockWaitTimeout   uint16 = 1205
	myDeadlock          uint16 = 1213
	myQueryInterrupted  uint16 = 1317
	myExecutionTimedOut uint16 = 3024
)

// IsUniqueViolation reports whether err is a unique constraint failure.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == myDuplicateEntry
	}
	return false
}

// IsRetryable reports whether err is a lock or statement timeout, a
// deadlock, or a serialization failure. The transaction has been rolled
// back and the whole operation may be attempted again.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgLockNotAvailable, pgQueryCanceled, pgDeadlockDetected, pgSerializationFailure:
			return true
		}
		return false
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case myLockWaitTimeout, myDeadlock, myQueryInterrupted, myExecutionTimedOut:
			return true
		}
	}
	return false
}

// Classify wraps err with msg and, when recognised, with the matching
// apperrors kind. A nil err stays nil.
func Classify(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case IsUniqueViolation(err):
		return fmt.Errorf("%w: %s: %w", apperrors.ErrDuplicate, msg, err)
	case IsRetryable(err):
		return fmt.Errorf("%w: %s: %w", apperrors.ErrRetryable, msg, err)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
