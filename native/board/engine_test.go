package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(NewMemStore())
}

func TestDelegateInsertsSortedDescending(t *testing.T) {
	e := newTestEngine()
	require.NoError(t, e.Delegate(1, 100))
	require.NoError(t, e.Delegate(2, 200))
	require.NoError(t, e.Delegate(3, 300))

	ids, amounts, err := e.Top(3)
	require.NoError(t, err)
	require.Equal(t, []uint64{3, 2, 1}, ids)
	require.Equal(t, []uint64{300, 200, 100}, amounts)
}

func TestDelegateRepositionsOnIncrease(t *testing.T) {
	e := newTestEngine()
	require.NoError(t, e.Delegate(1, 100))
	require.NoError(t, e.Delegate(2, 200))
	require.NoError(t, e.Delegate(3, 300))

	require.NoError(t, e.Delegate(1, 150))

	ids, amounts, err := e.Top(3)
	require.NoError(t, err)
	require.Equal(t, []uint64{3, 1, 2}, ids)
	require.Equal(t, []uint64{300, 250, 200}, amounts)
}

func TestDelegateTiesOrderOlderFirst(t *testing.T) {
	e := newTestEngine()
	require.NoError(t, e.Delegate(1, 100))
	require.NoError(t, e.Delegate(2, 100))
	require.NoError(t, e.Delegate(3, 100))

	ids, _, err := e.Top(3)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2, 3}, ids)
}

func TestUndelegateRemovesNodeAtZero(t *testing.T) {
	e := newTestEngine()
	require.NoError(t, e.Delegate(1, 100))
	require.NoError(t, e.Undelegate(1, 100))

	ids, _, err := e.Top(10)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestUndelegateErrors(t *testing.T) {
	e := newTestEngine()
	require.ErrorIs(t, e.Undelegate(1, 1), ErrNodeDoesNotExist)

	require.NoError(t, e.Delegate(1, 50))
	require.ErrorIs(t, e.Undelegate(1, 51), ErrAmountExceedsDelegation)
}

func TestDelegateRoundTrip(t *testing.T) {
	e := newTestEngine()
	require.NoError(t, e.Delegate(1, 100))
	require.NoError(t, e.Delegate(2, 200))

	require.NoError(t, e.Delegate(5, 42))
	require.NoError(t, e.Undelegate(5, 42))

	ids, amounts, err := e.Top(10)
	require.NoError(t, err)
	require.Equal(t, []uint64{2, 1}, ids)
	require.Equal(t, []uint64{200, 100}, amounts)
}

func TestMaxNodesReached(t *testing.T) {
	e := newTestEngine()
	for i := uint64(1); i <= MaxNodes; i++ {
		require.NoError(t, e.Delegate(i, i))
	}
	require.ErrorIs(t, e.Delegate(MaxNodes+1, 1), ErrMaxNodesReached)
}

func TestQuorumFormula(t *testing.T) {
	require.Equal(t, uint64(3), quorumFor(5))
	require.Equal(t, uint64(4), quorumFor(7))
	require.Equal(t, uint64(11), quorumFor(20))
}

func TestSetSeatsInitialAndInvalid(t *testing.T) {
	e := newTestEngine()
	require.ErrorIs(t, e.SetSeats(1, 0), ErrInvalidNumSeats)
	require.ErrorIs(t, e.SetSeats(1, MaxSeats+1), ErrTooManySeats)

	require.NoError(t, e.SetSeats(1, 5))
	seats, err := e.Seats()
	require.NoError(t, err)
	require.Equal(t, uint64(5), seats)
}

func TestSeatUpdateFreezesQuorum(t *testing.T) {
	e := newTestEngine()
	require.NoError(t, e.SetSeats(1, 5))

	start := time.Now().UTC()
	e.SetNowFunc(func() time.Time { return start })

	require.NoError(t, e.SetSeats(1, 7))
	require.NoError(t, e.SetSeats(2, 7))
	require.NoError(t, e.SetSeats(3, 7))

	e.SetNowFunc(func() time.Time { return start.Add(TimelockSeconds * time.Second) })
	require.NoError(t, e.ExecuteSeatsUpdate(1))

	seats, err := e.Seats()
	require.NoError(t, err)
	require.Equal(t, uint64(7), seats)
}

func TestSeatUpdateTimelockNotExpired(t *testing.T) {
	e := newTestEngine()
	require.NoError(t, e.SetSeats(1, 5))

	start := time.Now().UTC()
	e.SetNowFunc(func() time.Time { return start })
	require.NoError(t, e.SetSeats(1, 7))
	require.NoError(t, e.SetSeats(2, 7))
	require.NoError(t, e.SetSeats(3, 7))

	e.SetNowFunc(func() time.Time { return start.Add((TimelockSeconds - 1) * time.Second) })
	require.ErrorIs(t, e.ExecuteSeatsUpdate(1), ErrTimelockNotExpired)
}

func TestConflictingSeatProposalsCancel(t *testing.T) {
	e := newTestEngine()
	require.NoError(t, e.SetSeats(1, 5))

	require.NoError(t, e.SetSeats(10, 7))
	require.NoError(t, e.SetSeats(20, 8))

	require.ErrorIs(t, e.ExecuteSeatsUpdate(10), ErrInvalidProposal)

	require.NoError(t, e.SetSeats(30, 8))
	require.ErrorIs(t, e.SetSeats(30, 8), ErrAlreadySentUpdateRequest)
}

func TestInsufficientVotes(t *testing.T) {
	e := newTestEngine()
	require.NoError(t, e.SetSeats(1, 5))

	start := time.Now().UTC()
	e.SetNowFunc(func() time.Time { return start })
	require.NoError(t, e.SetSeats(1, 7))

	e.SetNowFunc(func() time.Time { return start.Add(TimelockSeconds * time.Second) })
	require.ErrorIs(t, e.ExecuteSeatsUpdate(1), ErrInsufficientVotes)
}
