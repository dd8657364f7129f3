package wallet

import (
	"context"

	"github.com/chamberprotocol/chamber/core/events"
	"github.com/chamberprotocol/chamber/observability/metrics"
)

// Executor performs the external call a transaction carries. It is the
// in-process analogue of a contract call: returning an error corresponds
// to the call reverting, at which point execute's CEI rollback fires.
type Executor interface {
	Execute(ctx context.Context, target [20]byte, value uint64, data []byte) error
}

// Engine is the transaction queue and confirmation tracker. It never
// resolves directorship itself; callers (the Chamber layer) are expected to
// have already authorized the caller's tokenId before invoking Engine
// methods.
type Engine struct {
	store    Store
	emitter  events.Emitter
	executor Executor
	metrics  *metrics.WalletMetrics
}

// NewEngine constructs a Wallet engine backed by store with default no-op
// dependencies.
func NewEngine(store Store) *Engine {
	return &Engine{
		store:   store,
		emitter: events.NoopEmitter{},
		metrics: metrics.Wallet(),
	}
}

// SetEmitter configures the event emitter. Passing nil resets to a no-op
// implementation.
func (e *Engine) SetEmitter(emitter events.Emitter) {
	if emitter == nil {
		e.emitter = events.NoopEmitter{}
		return
	}
	e.emitter = emitter
}

// SetExecutor configures the external-call executor used by Execute.
func (e *Engine) SetExecutor(executor Executor) {
	e.executor = executor
}

// NextTransactionID reports the index the next submitted transaction will
// receive.
func (e *Engine) NextTransactionID() (uint64, error) {
	return e.store.WalletLen()
}

// Confirmations reports a transaction's current confirmation count.
func (e *Engine) Confirmations(txIndex uint64) (uint64, bool, error) {
	tx, ok, err := e.store.WalletTx(txIndex)
	if err != nil || !ok {
		return 0, ok, err
	}
	return tx.Confirmations, true, nil
}

// Submit appends a new transaction and immediately confirms it on behalf of
// the submitter.
func (e *Engine) Submit(submitterTokenID uint64, target [20]byte, value uint64, data []byte) (uint64, error) {
	tx := &Tx{Confirmed: make(map[uint64]bool)}
	tx.Target = target
	tx.Value = value
	tx.Data = append([]byte(nil), data...)
	txIndex, err := e.store.WalletAppend(tx)
	if err != nil {
		return 0, err
	}
	size, err := e.store.WalletLen()
	if err != nil {
		return 0, err
	}
	e.metrics.SetQueueSize(size)
	e.metrics.RecordLifecycle("submitted")
	e.emitter.Emit(events.TransactionSubmitted{TxIndex: txIndex, Target: target, Value: value})
	if err := e.Confirm(submitterTokenID, txIndex); err != nil {
		return 0, err
	}
	return txIndex, nil
}

// SubmitBatch submits matching-length arrays of targets, values and data in
// order. Lengths are checked before anything is appended; if a store error
// stops the loop part-way, the transactions appended before it remain.
func (e *Engine) SubmitBatch(submitterTokenID uint64, targets [][20]byte, values []uint64, datas [][]byte) ([]uint64, error) {
	if len(targets) != len(values) || len(targets) != len(datas) {
		return nil, ErrArrayLengthsMustMatch
	}
	if len(targets) == 0 {
		return nil, ErrZeroAmount
	}
	ids := make([]uint64, 0, len(targets))
	for i := range targets {
		id, err := e.Submit(submitterTokenID, targets[i], values[i], datas[i])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Confirm records tokenId's confirmation of txIndex.
func (e *Engine) Confirm(tokenID, txIndex uint64) error {
	tx, ok, err := e.store.WalletTx(txIndex)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTransactionDoesNotExist
	}
	if tx.Executed {
		return ErrTransactionAlreadyExecuted
	}
	if tx.Confirmed[tokenID] {
		return ErrTransactionAlreadyConfirmed
	}
	tx.Confirmed[tokenID] = true
	tx.Confirmations++
	if err := e.store.WalletPutTx(txIndex, tx); err != nil {
		return err
	}
	e.metrics.RecordLifecycle("confirmed")
	e.emitter.Emit(events.TransactionConfirmed{TxIndex: txIndex, TokenID: tokenID})
	return nil
}

// ConfirmBatch confirms each of txIndexes, all-or-nothing: every index is
// validated before any confirmation is recorded.
func (e *Engine) ConfirmBatch(tokenID uint64, txIndexes []uint64) error {
	if len(txIndexes) == 0 {
		return ErrZeroAmount
	}
	seen := make(map[uint64]bool, len(txIndexes))
	for _, idx := range txIndexes {
		tx, ok, err := e.store.WalletTx(idx)
		if err != nil {
			return err
		}
		if !ok {
			return ErrTransactionDoesNotExist
		}
		if tx.Executed {
			return ErrTransactionAlreadyExecuted
		}
		if tx.Confirmed[tokenID] || seen[idx] {
			return ErrTransactionAlreadyConfirmed
		}
		seen[idx] = true
	}
	for _, idx := range txIndexes {
		if err := e.Confirm(tokenID, idx); err != nil {
			return err
		}
	}
	return nil
}

// Revoke clears tokenId's prior confirmation of txIndex.
func (e *Engine) Revoke(tokenID, txIndex uint64) error {
	tx, ok, err := e.store.WalletTx(txIndex)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTransactionDoesNotExist
	}
	if tx.Executed {
		return ErrTransactionAlreadyExecuted
	}
	if !tx.Confirmed[tokenID] {
		return ErrTransactionNotConfirmed
	}
	delete(tx.Confirmed, tokenID)
	if tx.Confirmations > 0 {
		tx.Confirmations--
	}
	if err := e.store.WalletPutTx(txIndex, tx); err != nil {
		return err
	}
	e.metrics.RecordLifecycle("revoked")
	e.emitter.Emit(events.RevokeConfirmation{TxIndex: txIndex, TokenID: tokenID})
	return nil
}

// Execute runs the external call for txIndex under CEI ordering: the
// executed flag flips to true before the call, and is the only state
// rolled back if the call fails.
func (e *Engine) Execute(ctx context.Context, executorTokenID, txIndex uint64) error {
	tx, ok, err := e.store.WalletTx(txIndex)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTransactionDoesNotExist
	}
	if tx.Executed {
		return ErrTransactionAlreadyExecuted
	}
	if zeroAddress(tx.Target) {
		return ErrInvalidTarget
	}

	tx.Executed = true
	if err := e.store.WalletPutTx(txIndex, tx); err != nil {
		return err
	}

	var callErr error
	if e.executor != nil {
		callErr = e.executor.Execute(ctx, tx.Target, tx.Value, tx.Data)
	}
	if callErr != nil {
		tx.Executed = false
		if err := e.store.WalletPutTx(txIndex, tx); err != nil {
			return err
		}
		e.metrics.RecordExecution("failed")
		return &TransactionFailed{ReturnData: []byte(callErr.Error())}
	}

	e.metrics.RecordExecution("success")
	e.emitter.Emit(events.TransactionExecuted{TxIndex: txIndex, TokenID: executorTokenID})
	return nil
}

// ExecuteBatch executes each of txIndexes in order and stops at the first
// failure. Transactions executed before the failing one stay executed; their
// external calls are not undone.
func (e *Engine) ExecuteBatch(ctx context.Context, executorTokenID uint64, txIndexes []uint64) error {
	if len(txIndexes) == 0 {
		return ErrZeroAmount
	}
	for _, idx := range txIndexes {
		if err := e.Execute(ctx, executorTokenID, idx); err != nil {
			return err
		}
	}
	return nil
}

func zeroAddress(addr [20]byte) bool {
	return addr == [20]byte{}
}
