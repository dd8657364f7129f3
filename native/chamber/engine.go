package chamber

import (
	"bytes"
	"context"
	"math/big"

	"github.com/chamberprotocol/chamber/core/events"
	"github.com/chamberprotocol/chamber/native/board"
	"github.com/chamberprotocol/chamber/native/common"
	"github.com/chamberprotocol/chamber/native/wallet"
	"github.com/chamberprotocol/chamber/observability/metrics"
)

// Chamber composes a share vault, the Board delegation ledger, and the
// Wallet transaction queue behind a single directorship gate. It is the
// only component that consults the NFT ownership oracle; Board and Wallet
// never do.
type Chamber struct {
	Address [20]byte

	state  *State
	board  *board.Engine
	wallet *wallet.Engine
	owners OwnerResolver
	asset  AssetToken

	emitter events.Emitter
	guard   common.ReentrancyGuard
	metrics *metrics.ChamberMetrics
	paused  map[string]bool
}

// New constructs a Chamber instance wired to fresh Board and Wallet
// engines, an ownership oracle, and an asset token.
func New(address, assetAddr, nft [20]byte, seats uint64, owners OwnerResolver, asset AssetToken) *Chamber {
	c := &Chamber{
		Address: address,
		state:   NewState(assetAddr, nft, seats),
		board:   board.NewEngine(board.NewMemStore()),
		wallet:  wallet.NewEngine(wallet.NewMemStore()),
		owners:  owners,
		asset:   asset,
		emitter: events.NoopEmitter{},
		metrics: metrics.Chamber(),
		paused:  make(map[string]bool),
	}
	if seats > 0 {
		_ = c.board.SetSeats(0, seats)
	}
	c.wallet.SetExecutor(&selfExecutor{chamber: c})
	return c
}

// SetEmitter configures the event emitter used by the Chamber and its
// composed Board and Wallet engines. Passing nil resets to a no-op
// implementation.
func (c *Chamber) SetEmitter(emitter events.Emitter) {
	if emitter == nil {
		emitter = events.NoopEmitter{}
	}
	c.emitter = emitter
	c.board.SetEmitter(emitter)
	c.wallet.SetEmitter(emitter)
}

// SetPaused toggles an operational pause flag for the named module
// ("vault" gates deposit/withdraw/redeem/transfer, "governance" gates the
// transaction queue and seat updates). Honored via common.Guard at the top
// of each gated operation.
func (c *Chamber) SetPaused(module string, paused bool) {
	c.paused[module] = paused
}

// IsPaused implements common.PauseView.
func (c *Chamber) IsPaused(module string) bool {
	return c.paused[module]
}

func (c *Chamber) enter() error {
	if err := c.guard.Enter(); err != nil {
		c.metrics.RecordReentrancyRejected()
		return ErrReentrantCall
	}
	return nil
}

func (c *Chamber) exit() {
	c.guard.Exit()
}

// TotalAssets reports the underlying asset balance currently accounted for
// by the vault.
func (c *Chamber) TotalAssets() *big.Int {
	return new(big.Int).Set(c.state.TotalAssets)
}

// TotalSupply reports the current outstanding share count.
func (c *Chamber) TotalSupply() *big.Int {
	return new(big.Int).Set(c.state.TotalSupply)
}

// BalanceOf reports an agent's share balance.
func (c *Chamber) BalanceOf(agent [20]byte) *big.Int {
	return c.state.balanceOf(agent)
}

// TotalDelegationsOf reports an agent's total delegated weight across all
// tokenIds.
func (c *Chamber) TotalDelegationsOf(agent [20]byte) *big.Int {
	return c.state.totalDelegationsOf(agent)
}

// Deposit pulls `assets` of the underlying token from caller, mints shares
// to receiver at the prevailing rate, and increases totalAssets.
func (c *Chamber) Deposit(caller, receiver [20]byte, assets *big.Int) (*big.Int, error) {
	if err := c.enter(); err != nil {
		return nil, err
	}
	defer c.exit()

	if err := common.Guard(c, "vault"); err != nil {
		return nil, err
	}
	if assets == nil || assets.Sign() <= 0 {
		return nil, ErrZeroAmount
	}
	if zeroAddress(receiver) {
		return nil, ErrZeroAddress
	}

	shares := convertToShares(assets, c.state.TotalSupply, c.state.TotalAssets, false)
	if shares.Sign() == 0 {
		return nil, ErrZeroAmount
	}

	if err := c.asset.Transfer(caller, c.Address, assets.Uint64()); err != nil {
		return nil, err
	}

	c.state.TotalAssets.Add(c.state.TotalAssets, assets)
	c.mintShares(receiver, shares)
	c.metrics.RecordOperation("deposit")
	c.metrics.SetTotalAssets(bigToFloat(c.state.TotalAssets))

	c.emitter.Emit(events.Deposit{Sender: caller, Receiver: receiver, Assets: assets, Shares: shares})
	return shares, nil
}

// Withdraw burns shares from owner (or caller acting for owner) and
// transfers `assets` of the underlying token to receiver.
func (c *Chamber) Withdraw(caller, receiver, owner [20]byte, assets *big.Int) (*big.Int, error) {
	if err := c.enter(); err != nil {
		return nil, err
	}
	defer c.exit()

	if err := common.Guard(c, "vault"); err != nil {
		return nil, err
	}
	if assets == nil || assets.Sign() <= 0 {
		return nil, ErrZeroAmount
	}
	if zeroAddress(receiver) {
		return nil, ErrZeroAddress
	}

	shares := convertToShares(assets, c.state.TotalSupply, c.state.TotalAssets, true)
	if err := c.checkBalanceAfterDebit(owner, shares); err != nil {
		return nil, err
	}

	c.burnShares(owner, shares)
	c.state.TotalAssets.Sub(c.state.TotalAssets, assets)
	if err := c.asset.Transfer(c.Address, receiver, assets.Uint64()); err != nil {
		return nil, err
	}

	c.metrics.RecordOperation("withdraw")
	c.metrics.SetTotalAssets(bigToFloat(c.state.TotalAssets))
	c.emitter.Emit(events.Withdraw{Sender: caller, Receiver: receiver, Owner: owner, Assets: assets, Shares: shares})
	return shares, nil
}

// Redeem burns `shares` from owner and transfers the corresponding assets
// to receiver.
func (c *Chamber) Redeem(caller, receiver, owner [20]byte, shares *big.Int) (*big.Int, error) {
	if err := c.enter(); err != nil {
		return nil, err
	}
	defer c.exit()

	if err := common.Guard(c, "vault"); err != nil {
		return nil, err
	}
	if shares == nil || shares.Sign() <= 0 {
		return nil, ErrZeroAmount
	}
	if zeroAddress(receiver) {
		return nil, ErrZeroAddress
	}

	if err := c.checkBalanceAfterDebit(owner, shares); err != nil {
		return nil, err
	}

	assets := convertToAssets(shares, c.state.TotalSupply, c.state.TotalAssets, false)
	c.burnShares(owner, shares)
	c.state.TotalAssets.Sub(c.state.TotalAssets, assets)
	if err := c.asset.Transfer(c.Address, receiver, assets.Uint64()); err != nil {
		return nil, err
	}

	c.metrics.RecordOperation("redeem")
	c.metrics.SetTotalAssets(bigToFloat(c.state.TotalAssets))
	c.emitter.Emit(events.Withdraw{Sender: caller, Receiver: receiver, Owner: owner, Assets: assets, Shares: shares})
	return assets, nil
}

// Receive accounts for an unsolicited transfer of the underlying asset into
// the Chamber (outside of Deposit) — e.g. a direct ledger credit. No shares
// are minted; the surplus simply raises the per-share asset backing for
// existing holders.
func (c *Chamber) Receive(sender [20]byte, amount *big.Int) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.exit()

	if err := common.Guard(c, "vault"); err != nil {
		return err
	}
	if amount == nil || amount.Sign() <= 0 {
		return ErrZeroAmount
	}

	c.state.TotalAssets.Add(c.state.TotalAssets, amount)
	c.metrics.SetTotalAssets(bigToFloat(c.state.TotalAssets))
	c.emitter.Emit(events.Received{Sender: sender, Amount: new(big.Int).Set(amount)})
	return nil
}

func bigToFloat(v *big.Int) float64 {
	f := new(big.Float).SetInt(v)
	result, _ := f.Float64()
	return result
}

func (c *Chamber) checkBalanceAfterDebit(owner [20]byte, shares *big.Int) error {
	balance := c.state.balanceOf(owner)
	if balance.Cmp(shares) < 0 {
		return ErrInsufficientChamberBalance
	}
	remaining := new(big.Int).Sub(balance, shares)
	if remaining.Cmp(c.state.totalDelegationsOf(owner)) < 0 {
		return ErrExceedsDelegatedAmount
	}
	return nil
}

func (c *Chamber) mintShares(to [20]byte, amount *big.Int) {
	c.state.TotalSupply.Add(c.state.TotalSupply, amount)
	balance := c.state.balanceOf(to)
	balance.Add(balance, amount)
	c.state.Balances[to] = balance
	c.emitter.Emit(events.Transfer{To: to, Amount: new(big.Int).Set(amount)})
}

func (c *Chamber) burnShares(from [20]byte, amount *big.Int) {
	c.state.TotalSupply.Sub(c.state.TotalSupply, amount)
	balance := c.state.balanceOf(from)
	balance.Sub(balance, amount)
	c.state.Balances[from] = balance
	c.emitter.Emit(events.Transfer{From: from, Amount: new(big.Int).Set(amount)})
}

// Transfer moves shares between two accounts, checking the delegation
// invariant (balance(from) >= totalDelegations(from)) after debiting,
// before the debit is committed.
func (c *Chamber) Transfer(from, to [20]byte, amount *big.Int) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.exit()
	return c.transfer(from, to, amount)
}

// TransferFrom is identical to Transfer; allowance-style spender checks are
// left to the host ledger's account model.
func (c *Chamber) TransferFrom(spender, from, to [20]byte, amount *big.Int) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.exit()
	return c.transfer(from, to, amount)
}

func (c *Chamber) transfer(from, to [20]byte, amount *big.Int) error {
	if err := common.Guard(c, "vault"); err != nil {
		return err
	}
	if zeroAddress(to) {
		return ErrZeroAddress
	}
	if amount == nil || amount.Sign() <= 0 {
		return ErrZeroAmount
	}
	if err := c.checkBalanceAfterDebit(from, amount); err != nil {
		return err
	}
	fromBalance := c.state.balanceOf(from)
	fromBalance.Sub(fromBalance, amount)
	c.state.Balances[from] = fromBalance

	toBalance := c.state.balanceOf(to)
	toBalance.Add(toBalance, amount)
	c.state.Balances[to] = toBalance

	c.metrics.RecordOperation("transfer")
	c.emitter.Emit(events.Transfer{From: from, To: to, Amount: new(big.Int).Set(amount)})
	return nil
}

// Delegate assigns `amount` of caller's share weight to tokenId.
func (c *Chamber) Delegate(caller [20]byte, tokenID uint64, amount *big.Int) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.exit()

	if tokenID == 0 {
		return ErrZeroTokenID
	}
	if amount == nil || amount.Sign() <= 0 {
		return ErrZeroAmount
	}
	if c.state.balanceOf(caller).Cmp(amount) < 0 {
		return ErrInsufficientChamberBalance
	}
	if _, err := c.owners.OwnerOf(tokenID); err != nil {
		return ErrInvalidTokenID
	}

	key := delegationKey{Agent: caller, TokenID: tokenID}
	cur := c.state.delegationOf(caller, tokenID)
	cur.Add(cur, amount)
	c.state.Delegations[key] = cur

	total := c.state.totalDelegationsOf(caller)
	total.Add(total, amount)
	c.state.TotalDelegated[caller] = total

	if err := c.board.Delegate(tokenID, amount.Uint64()); err != nil {
		return err
	}
	c.emitter.Emit(events.DelegationUpdated{Agent: caller, TokenID: tokenID, NewDelegation: new(big.Int).Set(cur)})
	return nil
}

// Undelegate withdraws `amount` of caller's prior weight from tokenId.
func (c *Chamber) Undelegate(caller [20]byte, tokenID uint64, amount *big.Int) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.exit()

	if amount == nil || amount.Sign() <= 0 || tokenID == 0 {
		return ErrZeroAmount
	}
	cur := c.state.delegationOf(caller, tokenID)
	if cur.Cmp(amount) < 0 {
		return ErrInsufficientDelegatedAmount
	}

	cur.Sub(cur, amount)
	c.state.Delegations[delegationKey{Agent: caller, TokenID: tokenID}] = cur

	total := c.state.totalDelegationsOf(caller)
	total.Sub(total, amount)
	c.state.TotalDelegated[caller] = total

	if err := c.board.Undelegate(tokenID, amount.Uint64()); err != nil {
		return err
	}
	c.emitter.Emit(events.DelegationUpdated{Agent: caller, TokenID: tokenID, NewDelegation: new(big.Int).Set(cur)})
	return nil
}

// SubmitTransaction queues a transaction on behalf of a director. target ==
// self is rejected unless data carries the upgrade selector.
func (c *Chamber) SubmitTransaction(caller [20]byte, submitterTokenID uint64, target [20]byte, value uint64, data []byte) (uint64, error) {
	if err := c.enter(); err != nil {
		return 0, err
	}
	defer c.exit()

	if err := common.Guard(c, "governance"); err != nil {
		return 0, err
	}
	if err := c.requireDirector(caller, submitterTokenID); err != nil {
		return 0, err
	}
	if zeroAddress(target) {
		return 0, ErrZeroAddress
	}
	if target == c.Address && !hasUpgradeSelector(data) {
		return 0, ErrInvalidTransaction
	}
	if value > 0 {
		bal, err := c.asset.BalanceOf(c.Address)
		if err != nil {
			return 0, err
		}
		if bal < value {
			return 0, ErrInsufficientChamberBalance
		}
	}
	return c.wallet.Submit(submitterTokenID, target, value, data)
}

func hasUpgradeSelector(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	return bytes.Equal(data[:4], UpgradeSelector[:])
}

// ConfirmTransaction records a director's confirmation.
func (c *Chamber) ConfirmTransaction(caller [20]byte, tokenID, txIndex uint64) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.exit()
	if err := common.Guard(c, "governance"); err != nil {
		return err
	}
	if err := c.requireDirector(caller, tokenID); err != nil {
		return err
	}
	return c.wallet.Confirm(tokenID, txIndex)
}

// RevokeConfirmation withdraws a director's prior confirmation. Not gated by
// the governance pause flag: withdrawing consent must stay available even
// while new submissions and confirmations are frozen.
func (c *Chamber) RevokeConfirmation(caller [20]byte, tokenID, txIndex uint64) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.exit()
	if err := c.requireDirector(caller, tokenID); err != nil {
		return err
	}
	return c.wallet.Revoke(tokenID, txIndex)
}

// ExecuteTransaction runs a queued transaction once it has cleared quorum.
func (c *Chamber) ExecuteTransaction(ctx context.Context, caller [20]byte, tokenID, txIndex uint64) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.exit()
	if err := common.Guard(c, "governance"); err != nil {
		return err
	}
	if err := c.requireDirector(caller, tokenID); err != nil {
		return err
	}
	quorum, err := c.board.Quorum()
	if err != nil {
		return err
	}
	confirmations, found, err := c.wallet.Confirmations(txIndex)
	if err != nil {
		return err
	}
	if !found {
		return wallet.ErrTransactionDoesNotExist
	}
	if confirmations < quorum {
		return ErrNotEnoughConfirmations
	}
	return c.wallet.Execute(ctx, tokenID, txIndex)
}

// UpdateSeats is director-gated and forwards to Board.SetSeats.
func (c *Chamber) UpdateSeats(caller [20]byte, tokenID, n uint64) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.exit()
	if err := common.Guard(c, "governance"); err != nil {
		return err
	}
	if err := c.requireDirector(caller, tokenID); err != nil {
		return err
	}
	if n > board.MaxSeats {
		return ErrTooManySeats
	}
	return c.board.SetSeats(tokenID, n)
}

// ExecuteSeatsUpdate is director-gated and forwards to
// Board.ExecuteSeatsUpdate, then mirrors the resulting seat count locally.
func (c *Chamber) ExecuteSeatsUpdate(caller [20]byte, tokenID uint64) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.exit()
	if err := c.requireDirector(caller, tokenID); err != nil {
		return err
	}
	if err := c.board.ExecuteSeatsUpdate(tokenID); err != nil {
		return err
	}
	seats, err := c.board.Seats()
	if err != nil {
		return err
	}
	c.state.Seats = seats
	return nil
}

// upgradeImplementation performs the self-upgrade migration. It is only
// reachable through the transaction system (target == self, selector
// match), enforced by SubmitTransaction.
func (c *Chamber) upgradeImplementation(toVersion string) error {
	if toVersion == "" {
		return ErrInvalidTransaction
	}
	if c.state.AdminOwner != c.Address {
		return ErrNotAdminOwner
	}
	from := c.state.Version
	c.state.Version = toVersion
	c.emitter.Emit(events.Upgraded{FromVersion: from, ToVersion: toVersion})
	return nil
}

// TransferAdminOwnership is invoked once by the Registry at creation time so
// the Chamber governs its own upgrades thereafter.
func (c *Chamber) TransferAdminOwnership(owner [20]byte) {
	c.state.AdminOwner = owner
}

func zeroAddress(addr [20]byte) bool {
	return addr == [20]byte{}
}

// selfExecutor adapts the Chamber to the wallet.Executor interface. A
// non-self target moves `value` of the underlying asset out of the Chamber;
// a self target is only reachable via the upgrade selector, decoded here
// into a version string carried after the four-byte selector.
type selfExecutor struct {
	chamber *Chamber
}

func (s *selfExecutor) Execute(ctx context.Context, target [20]byte, value uint64, data []byte) error {
	if target != s.chamber.Address {
		if value > 0 {
			if err := s.chamber.asset.Transfer(s.chamber.Address, target, value); err != nil {
				return err
			}
		}
		return nil
	}
	if !hasUpgradeSelector(data) {
		return ErrInvalidTransaction
	}
	return s.chamber.upgradeImplementation(string(data[4:]))
}
