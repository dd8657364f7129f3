package chamber

import (
	"context"
	"math/big"
	"testing"

	"github.com/chamberprotocol/chamber/native/common"
	"github.com/chamberprotocol/chamber/native/wallet"
	"github.com/stretchr/testify/require"
)

func addr(b byte) [20]byte {
	var a [20]byte
	a[19] = b
	return a
}

func newTestChamber(seats uint64) (*Chamber, *StaticOwnerRegistry, *LedgerAsset) {
	owners := NewStaticOwnerRegistry()
	asset := NewLedgerAsset()
	c := New(addr(0xC0), addr(0xA5), addr(0xF7), seats, owners, asset)
	return c, owners, asset
}

func TestThreeWayQuorumExecutionScenario(t *testing.T) {
	c, owners, asset := newTestChamber(5)

	agent1, agent2, agent3 := addr(1), addr(2), addr(3)
	owners.SetOwner(1, agent1)
	owners.SetOwner(2, agent2)
	owners.SetOwner(3, agent3)

	for agent, tokenID := range map[[20]byte]uint64{agent1: 1, agent2: 2, agent3: 3} {
		asset.Credit(agent, 1_000_000)
		_, err := c.Deposit(agent, agent, big.NewInt(1_000_000))
		require.NoError(t, err)
		require.NoError(t, c.Delegate(agent, tokenID, big.NewInt(1)))
	}

	target := addr(0xEF)
	asset.Credit(c.Address, 1_000_000)

	txIndex, err := c.SubmitTransaction(agent1, 1, target, 1_000_000, nil)
	require.NoError(t, err)
	require.Equal(t, uint64(0), txIndex)

	require.NoError(t, c.ConfirmTransaction(agent2, 2, txIndex))
	require.NoError(t, c.ConfirmTransaction(agent3, 3, txIndex))

	require.NoError(t, c.ExecuteTransaction(context.Background(), agent1, 1, txIndex))

	balance, err := asset.BalanceOf(target)
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000), balance)

	chamberBalance, err := asset.BalanceOf(c.Address)
	require.NoError(t, err)
	require.Equal(t, uint64(0), chamberBalance)

	require.ErrorIs(t, c.ConfirmTransaction(agent1, 1, txIndex), wallet.ErrTransactionAlreadyExecuted)
}

func TestDelegationBlocksTransferScenario(t *testing.T) {
	c, owners, asset := newTestChamber(5)
	agentA, agentB := addr(0xAA), addr(0xBB)
	owners.SetOwner(1, agentA)

	asset.Credit(agentA, 1000)
	_, err := c.Deposit(agentA, agentA, big.NewInt(1000))
	require.NoError(t, err)

	require.NoError(t, c.Delegate(agentA, 1, big.NewInt(600)))

	err = c.Transfer(agentA, agentB, big.NewInt(500))
	require.ErrorIs(t, err, ErrExceedsDelegatedAmount)

	require.NoError(t, c.Transfer(agentA, agentB, big.NewInt(400)))

	err = c.Transfer(agentA, agentB, big.NewInt(1))
	require.ErrorIs(t, err, ErrExceedsDelegatedAmount)
}

func TestDelegateRequiresSufficientBalance(t *testing.T) {
	c, owners, _ := newTestChamber(5)
	agent := addr(0x01)
	owners.SetOwner(1, agent)

	err := c.Delegate(agent, 1, big.NewInt(1))
	require.ErrorIs(t, err, ErrInsufficientChamberBalance)
}

func TestDelegateInvalidTokenID(t *testing.T) {
	c, _, asset := newTestChamber(5)
	agent := addr(0x01)
	asset.Credit(agent, 10)
	_, err := c.Deposit(agent, agent, big.NewInt(10))
	require.NoError(t, err)

	err = c.Delegate(agent, 99, big.NewInt(1))
	require.ErrorIs(t, err, ErrInvalidTokenID)
}

func TestDepositRedeemRoundTrip(t *testing.T) {
	c, _, asset := newTestChamber(5)
	agent := addr(0x01)
	asset.Credit(agent, 1000)

	shares, err := c.Deposit(agent, agent, big.NewInt(1000))
	require.NoError(t, err)

	_, err = c.Redeem(agent, agent, agent, shares)
	require.NoError(t, err)

	balance, err := asset.BalanceOf(agent)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), balance)
}

func TestNotDirectorCannotSubmit(t *testing.T) {
	c, owners, _ := newTestChamber(5)
	agent := addr(0x01)
	owners.SetOwner(1, agent)

	_, err := c.SubmitTransaction(agent, 1, addr(0xEF), 0, nil)
	require.ErrorIs(t, err, ErrNotDirector)
}

func TestSubmitTransactionToSelfRequiresUpgradeSelector(t *testing.T) {
	c, owners, asset := newTestChamber(1)
	agent := addr(0x01)
	owners.SetOwner(1, agent)
	asset.Credit(agent, 10)
	_, err := c.Deposit(agent, agent, big.NewInt(10))
	require.NoError(t, err)
	require.NoError(t, c.Delegate(agent, 1, big.NewInt(1)))

	_, err = c.SubmitTransaction(agent, 1, c.Address, 0, []byte{0x00, 0x00, 0x00, 0x00})
	require.ErrorIs(t, err, ErrInvalidTransaction)

	data := append(append([]byte{}, UpgradeSelector[:]...), []byte("2.0.0")...)
	_, err = c.SubmitTransaction(agent, 1, c.Address, 0, data)
	require.NoError(t, err)
}

func TestPausedVaultRejectsDeposit(t *testing.T) {
	c, _, asset := newTestChamber(5)
	agent := addr(0x01)
	asset.Credit(agent, 1000)

	c.SetPaused("vault", true)
	_, err := c.Deposit(agent, agent, big.NewInt(1000))
	require.ErrorIs(t, err, common.ErrModulePaused)

	c.SetPaused("vault", false)
	_, err = c.Deposit(agent, agent, big.NewInt(1000))
	require.NoError(t, err)
}

func TestPausedGovernanceRejectsSubmitButAllowsRevoke(t *testing.T) {
	c, owners, asset := newTestChamber(5)
	agent := addr(0x01)
	owners.SetOwner(1, agent)
	asset.Credit(agent, 10)
	_, err := c.Deposit(agent, agent, big.NewInt(10))
	require.NoError(t, err)
	require.NoError(t, c.Delegate(agent, 1, big.NewInt(1)))

	txIndex, err := c.SubmitTransaction(agent, 1, addr(0xEF), 0, nil)
	require.NoError(t, err)

	c.SetPaused("governance", true)
	_, err = c.SubmitTransaction(agent, 1, addr(0xEF), 0, nil)
	require.ErrorIs(t, err, common.ErrModulePaused)
	require.ErrorIs(t, c.ConfirmTransaction(agent, 1, txIndex), common.ErrModulePaused)
	require.NoError(t, c.RevokeConfirmation(agent, 1, txIndex))
}

func TestReceiveRaisesTotalAssetsWithoutMintingShares(t *testing.T) {
	c, _, asset := newTestChamber(5)
	agent := addr(0x01)
	asset.Credit(agent, 1000)

	shares, err := c.Deposit(agent, agent, big.NewInt(1000))
	require.NoError(t, err)

	donor := addr(0x02)
	require.NoError(t, c.Receive(donor, big.NewInt(500)))

	require.Equal(t, big.NewInt(1500), c.TotalAssets())
	require.Equal(t, shares, c.TotalSupply())

	err = c.Receive(donor, big.NewInt(0))
	require.ErrorIs(t, err, ErrZeroAmount)
}

func TestTransferToZeroAddressRejected(t *testing.T) {
	c, _, asset := newTestChamber(5)
	agent := addr(0x01)
	asset.Credit(agent, 1000)
	_, err := c.Deposit(agent, agent, big.NewInt(1000))
	require.NoError(t, err)

	err = c.Transfer(agent, [20]byte{}, big.NewInt(1))
	require.ErrorIs(t, err, ErrZeroAddress)
}

func TestGetDirectorsSoftFailsOnBurnedOwner(t *testing.T) {
	c, owners, _ := newTestChamber(3)
	agent := addr(0x01)
	owners.SetOwner(1, agent)

	require.NoError(t, c.board.Delegate(1, 1))

	directors, err := c.GetDirectors()
	require.NoError(t, err)
	require.Len(t, directors, 3)
	require.Equal(t, agent, directors[0])

	owners.Burn(1)
	directors, err = c.GetDirectors()
	require.NoError(t, err)
	require.Equal(t, [20]byte{}, directors[0])
}
