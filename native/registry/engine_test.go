package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chamberprotocol/chamber/native/chamber"
)

func addr(b byte) [20]byte {
	var a [20]byte
	a[19] = b
	return a
}

func TestCreateValidatesAddressesAndSeats(t *testing.T) {
	e := NewEngine()
	owners := chamber.NewStaticOwnerRegistry()
	asset := chamber.NewLedgerAsset()

	_, err := e.Create(addr(1), [20]byte{}, addr(3), 5, "Chamber", "CHB", owners, asset)
	require.ErrorIs(t, err, ErrZeroAddress)

	_, err = e.Create(addr(1), addr(2), addr(3), 0, "Chamber", "CHB", owners, asset)
	require.ErrorIs(t, err, ErrInvalidSeats)

	_, err = e.Create(addr(1), addr(2), addr(3), 21, "Chamber", "CHB", owners, asset)
	require.ErrorIs(t, err, ErrInvalidSeats)
}

func TestCreateIndexesByAsset(t *testing.T) {
	e := NewEngine()
	owners := chamber.NewStaticOwnerRegistry()
	asset := chamber.NewLedgerAsset()

	c1, err := e.Create(addr(1), addr(2), addr(3), 5, "Chamber A", "CHA", owners, asset)
	require.NoError(t, err)
	c2, err := e.Create(addr(1), addr(2), addr(4), 5, "Chamber B", "CHB", owners, asset)
	require.NoError(t, err)

	require.True(t, e.IsChamber(c1.Address))
	require.True(t, e.IsChamber(c2.Address))
	require.Equal(t, 2, e.Count())

	byAsset := e.ChambersByAsset(addr(2))
	require.Len(t, byAsset, 2)

	require.Len(t, e.Assets(), 1)
}

func TestCreateAssignsDistinctAddresses(t *testing.T) {
	e := NewEngine()
	owners := chamber.NewStaticOwnerRegistry()
	asset := chamber.NewLedgerAsset()

	c1, err := e.Create(addr(1), addr(2), addr(3), 5, "Chamber", "CHB", owners, asset)
	require.NoError(t, err)
	c2, err := e.Create(addr(1), addr(2), addr(3), 5, "Chamber", "CHB", owners, asset)
	require.NoError(t, err)

	require.NotEqual(t, c1.Address, c2.Address)
}

func TestPageBounds(t *testing.T) {
	e := NewEngine()
	owners := chamber.NewStaticOwnerRegistry()
	asset := chamber.NewLedgerAsset()

	for i := byte(0); i < 5; i++ {
		_, err := e.Create(addr(1), addr(2), addr(10+i), 5, "Chamber", "CHB", owners, asset)
		require.NoError(t, err)
	}

	require.Len(t, e.Page(0, 3), 3)
	require.Len(t, e.Page(3, 10), 2)
	require.Nil(t, e.Page(10, 1))
}
