package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	calls   int
	fail    bool
	target  [20]byte
	value   uint64
	balance map[[20]byte]uint64
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{balance: make(map[[20]byte]uint64)}
}

func (f *fakeExecutor) Execute(ctx context.Context, target [20]byte, value uint64, data []byte) error {
	f.calls++
	if f.fail {
		return errors.New("call reverted")
	}
	f.balance[target] += value
	return nil
}

func beefTarget() [20]byte {
	var addr [20]byte
	addr[19] = 0xEF
	return addr
}

func TestThreeWayQuorumExecution(t *testing.T) {
	e := NewEngine(NewMemStore())
	exec := newFakeExecutor()
	e.SetExecutor(exec)

	target := beefTarget()
	txIndex, err := e.Submit(1, target, 1_000_000, nil)
	require.NoError(t, err)
	require.Equal(t, uint64(0), txIndex)

	require.NoError(t, e.Confirm(2, txIndex))
	require.NoError(t, e.Confirm(3, txIndex))

	tx, ok, err := e.store.WalletTx(txIndex)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(3), tx.Confirmations)

	require.NoError(t, e.Execute(context.Background(), 1, txIndex))

	tx, ok, err = e.store.WalletTx(txIndex)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, tx.Executed)
	require.Equal(t, uint64(1_000_000), exec.balance[target])
}

func TestExecutedTransactionCannotBeReconfirmedOrReexecuted(t *testing.T) {
	e := NewEngine(NewMemStore())
	e.SetExecutor(newFakeExecutor())

	txIndex, err := e.Submit(1, beefTarget(), 100, nil)
	require.NoError(t, err)
	require.NoError(t, e.Execute(context.Background(), 1, txIndex))

	require.ErrorIs(t, e.Confirm(2, txIndex), ErrTransactionAlreadyExecuted)
	require.ErrorIs(t, e.Execute(context.Background(), 1, txIndex), ErrTransactionAlreadyExecuted)
}

func TestExecuteRollsBackOnFailure(t *testing.T) {
	e := NewEngine(NewMemStore())
	exec := newFakeExecutor()
	exec.fail = true
	e.SetExecutor(exec)

	txIndex, err := e.Submit(1, beefTarget(), 100, nil)
	require.NoError(t, err)

	err = e.Execute(context.Background(), 1, txIndex)
	require.Error(t, err)
	var failed *TransactionFailed
	require.ErrorAs(t, err, &failed)

	tx, ok, err := e.store.WalletTx(txIndex)
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, tx.Executed)

	require.NoError(t, e.Confirm(2, txIndex))
}

func TestConfirmRevokeRoundTrip(t *testing.T) {
	e := NewEngine(NewMemStore())
	txIndex, err := e.Submit(1, beefTarget(), 0, nil)
	require.NoError(t, err)

	tx, _, err := e.store.WalletTx(txIndex)
	require.NoError(t, err)
	before := tx.Confirmations

	require.NoError(t, e.Confirm(2, txIndex))
	require.NoError(t, e.Revoke(2, txIndex))

	tx, _, err = e.store.WalletTx(txIndex)
	require.NoError(t, err)
	require.Equal(t, before, tx.Confirmations)
	require.False(t, tx.Confirmed[2])
}

func TestInvalidTargetFails(t *testing.T) {
	e := NewEngine(NewMemStore())
	var zero [20]byte
	_, err := e.store.WalletAppend(&Tx{Target: zero, Confirmed: map[uint64]bool{}})
	require.NoError(t, err)

	require.ErrorIs(t, e.Execute(context.Background(), 1, 0), ErrInvalidTarget)
}

func TestBatchArrayLengthMismatchAndEmpty(t *testing.T) {
	e := NewEngine(NewMemStore())
	_, err := e.SubmitBatch(1, [][20]byte{beefTarget()}, []uint64{1, 2}, [][]byte{nil})
	require.ErrorIs(t, err, ErrArrayLengthsMustMatch)

	_, err = e.SubmitBatch(1, nil, nil, nil)
	require.ErrorIs(t, err, ErrZeroAmount)
}

func TestSubmitAlwaysConfirmsSubmitter(t *testing.T) {
	e := NewEngine(NewMemStore())
	txIndex, err := e.Submit(7, beefTarget(), 1, nil)
	require.NoError(t, err)

	tx, ok, err := e.store.WalletTx(txIndex)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, tx.Confirmed[7])
	require.Equal(t, uint64(1), tx.Confirmations)
}
