package events

import (
	"math/big"

	"github.com/chamberprotocol/chamber/core/types"
)

const (
	// TypeDeposit is emitted when an agent deposits the underlying asset
	// and mints Chamber shares.
	TypeDeposit = "chamber.deposit"
	// TypeWithdraw is emitted when an agent redeems shares for the
	// underlying asset.
	TypeWithdraw = "chamber.withdraw"
	// TypeTransfer is emitted on every share transfer, including mint/burn
	// legs of deposit and withdraw.
	TypeTransfer = "chamber.transfer"
	// TypeDelegationUpdated is emitted whenever an agent's delegation to a
	// tokenId changes.
	TypeDelegationUpdated = "chamber.delegationUpdated"
	// TypeReceived is emitted when the Chamber's native asset balance
	// increases outside of a deposit (a direct transfer-in).
	TypeReceived = "chamber.received"
	// TypeUpgraded is emitted when a governed self-upgrade migration
	// completes.
	TypeUpgraded = "chamber.upgraded"
)

// Deposit captures assets received and shares minted.
type Deposit struct {
	Sender   [20]byte
	Receiver [20]byte
	Assets   *big.Int
	Shares   *big.Int
}

// EventType satisfies the Event interface.
func (Deposit) EventType() string { return TypeDeposit }

// Event converts the payload into a broadcastable event.
func (e Deposit) Event() *types.Event {
	return &types.Event{Type: TypeDeposit, Attributes: map[string]string{
		"sender":   hexAddress(e.Sender),
		"receiver": hexAddress(e.Receiver),
		"assets":   formatAmount(e.Assets),
		"shares":   formatAmount(e.Shares),
	}}
}

// Withdraw captures shares burned and assets released.
type Withdraw struct {
	Sender   [20]byte
	Receiver [20]byte
	Owner    [20]byte
	Assets   *big.Int
	Shares   *big.Int
}

// EventType satisfies the Event interface.
func (Withdraw) EventType() string { return TypeWithdraw }

// Event converts the payload into a broadcastable event.
func (e Withdraw) Event() *types.Event {
	return &types.Event{Type: TypeWithdraw, Attributes: map[string]string{
		"sender":   hexAddress(e.Sender),
		"receiver": hexAddress(e.Receiver),
		"owner":    hexAddress(e.Owner),
		"assets":   formatAmount(e.Assets),
		"shares":   formatAmount(e.Shares),
	}}
}

// Transfer captures a movement of Chamber shares between two accounts. A
// zero From/To address denotes a mint or burn leg.
type Transfer struct {
	From   [20]byte
	To     [20]byte
	Amount *big.Int
}

// EventType satisfies the Event interface.
func (Transfer) EventType() string { return TypeTransfer }

// Event converts the payload into a broadcastable event.
func (e Transfer) Event() *types.Event {
	attrs := map[string]string{"amount": formatAmount(e.Amount)}
	if !zeroAddress(e.From) {
		attrs["from"] = hexAddress(e.From)
	}
	if !zeroAddress(e.To) {
		attrs["to"] = hexAddress(e.To)
	}
	return &types.Event{Type: TypeTransfer, Attributes: attrs}
}

// DelegationUpdated captures an agent's new total delegation to a tokenId.
type DelegationUpdated struct {
	Agent         [20]byte
	TokenID       uint64
	NewDelegation *big.Int
}

// EventType satisfies the Event interface.
func (DelegationUpdated) EventType() string { return TypeDelegationUpdated }

// Event converts the payload into a broadcastable event.
func (e DelegationUpdated) Event() *types.Event {
	return &types.Event{Type: TypeDelegationUpdated, Attributes: map[string]string{
		"agent":         hexAddress(e.Agent),
		"tokenId":       uintToString(e.TokenID),
		"newDelegation": formatAmount(e.NewDelegation),
	}}
}

// Received captures an unsolicited increase in the Chamber's native asset
// balance.
type Received struct {
	Sender [20]byte
	Amount *big.Int
}

// EventType satisfies the Event interface.
func (Received) EventType() string { return TypeReceived }

// Event converts the payload into a broadcastable event.
func (e Received) Event() *types.Event {
	return &types.Event{Type: TypeReceived, Attributes: map[string]string{
		"sender": hexAddress(e.Sender),
		"amount": formatAmount(e.Amount),
	}}
}

// Upgraded captures a completed self-upgrade migration.
type Upgraded struct {
	FromVersion string
	ToVersion   string
}

// EventType satisfies the Event interface.
func (Upgraded) EventType() string { return TypeUpgraded }

// Event converts the payload into a broadcastable event.
func (e Upgraded) Event() *types.Event {
	return &types.Event{Type: TypeUpgraded, Attributes: map[string]string{
		"fromVersion": e.FromVersion,
		"toVersion":   e.ToVersion,
	}}
}
