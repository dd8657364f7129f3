package wallet

import (
	"errors"
	"fmt"
)

var (
	// ErrTransactionDoesNotExist is returned for an out-of-range txIndex.
	ErrTransactionDoesNotExist = errors.New("wallet: transaction does not exist")
	// ErrTransactionAlreadyExecuted is returned when an operation targets
	// an already-executed transaction.
	ErrTransactionAlreadyExecuted = errors.New("wallet: transaction already executed")
	// ErrTransactionAlreadyConfirmed is returned when a tokenId confirms a
	// transaction it already confirmed.
	ErrTransactionAlreadyConfirmed = errors.New("wallet: transaction already confirmed")
	// ErrTransactionNotConfirmed is returned when a tokenId revokes a
	// confirmation it never made.
	ErrTransactionNotConfirmed = errors.New("wallet: transaction not confirmed")
	// ErrInvalidTarget is returned when execute targets the zero address.
	ErrInvalidTarget = errors.New("wallet: invalid target")
	// ErrArrayLengthsMustMatch is returned by batch operations given
	// mismatched-length arrays.
	ErrArrayLengthsMustMatch = errors.New("wallet: array lengths must match")
	// ErrZeroAmount is returned by batch operations given an empty batch.
	ErrZeroAmount = errors.New("wallet: zero amount")
)

// TransactionFailed wraps the data returned by a failed external call,
// surfaced after the executed flag is rolled back.
type TransactionFailed struct {
	ReturnData []byte
}

// Error implements the error interface.
func (e *TransactionFailed) Error() string {
	return fmt.Sprintf("wallet: transaction failed: %x", e.ReturnData)
}
