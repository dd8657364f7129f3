package events

import (
	"encoding/hex"

	"github.com/chamberprotocol/chamber/core/types"
)

const (
	// TypeTransactionSubmitted is emitted when a new transaction enters the
	// Wallet's queue.
	TypeTransactionSubmitted = "wallet.transactionSubmitted"
	// TypeTransactionConfirmed is emitted when a director adds a
	// confirmation to a pending transaction.
	TypeTransactionConfirmed = "wallet.transactionConfirmed"
	// TypeTransactionExecuted is emitted once a transaction's external call
	// completes successfully.
	TypeTransactionExecuted = "wallet.transactionExecuted"
	// TypeRevokeConfirmation is emitted when a director withdraws a prior
	// confirmation.
	TypeRevokeConfirmation = "wallet.revokeConfirmation"
)

// TransactionSubmitted captures the queuing of a new transaction.
type TransactionSubmitted struct {
	TxIndex uint64
	Target  [20]byte
	Value   uint64
}

// EventType satisfies the Event interface.
func (TransactionSubmitted) EventType() string { return TypeTransactionSubmitted }

// Event converts the payload into a broadcastable event.
func (e TransactionSubmitted) Event() *types.Event {
	return &types.Event{Type: TypeTransactionSubmitted, Attributes: map[string]string{
		"txIndex": uintToString(e.TxIndex),
		"target":  hexAddress(e.Target),
		"value":   uintToString(e.Value),
	}}
}

// TransactionConfirmed captures a director adding a confirmation.
type TransactionConfirmed struct {
	TxIndex uint64
	TokenID uint64
}

// EventType satisfies the Event interface.
func (TransactionConfirmed) EventType() string { return TypeTransactionConfirmed }

// Event converts the payload into a broadcastable event.
func (e TransactionConfirmed) Event() *types.Event {
	return &types.Event{Type: TypeTransactionConfirmed, Attributes: map[string]string{
		"txIndex": uintToString(e.TxIndex),
		"tokenId": uintToString(e.TokenID),
	}}
}

// TransactionExecuted captures a successful transaction execution.
type TransactionExecuted struct {
	TxIndex uint64
	TokenID uint64
}

// EventType satisfies the Event interface.
func (TransactionExecuted) EventType() string { return TypeTransactionExecuted }

// Event converts the payload into a broadcastable event.
func (e TransactionExecuted) Event() *types.Event {
	return &types.Event{Type: TypeTransactionExecuted, Attributes: map[string]string{
		"txIndex": uintToString(e.TxIndex),
		"tokenId": uintToString(e.TokenID),
	}}
}

// RevokeConfirmation captures a director withdrawing a confirmation.
type RevokeConfirmation struct {
	TxIndex uint64
	TokenID uint64
}

// EventType satisfies the Event interface.
func (RevokeConfirmation) EventType() string { return TypeRevokeConfirmation }

// Event converts the payload into a broadcastable event.
func (e RevokeConfirmation) Event() *types.Event {
	return &types.Event{Type: TypeRevokeConfirmation, Attributes: map[string]string{
		"txIndex": uintToString(e.TxIndex),
		"tokenId": uintToString(e.TokenID),
	}}
}

func hexAddress(addr [20]byte) string {
	return "0x" + hex.EncodeToString(addr[:])
}
