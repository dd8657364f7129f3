package chamber

import "errors"

// ErrNoOwner is returned by an OwnerResolver when a tokenId has no current
// owner (burned, never minted, or otherwise unresolvable).
var ErrNoOwner = errors.New("chamber: no owner for tokenId")

// OwnerResolver abstracts "who owns this directorship tokenId, if anyone".
// It generalizes direct NFT ownership and signature-authorized-agent
// ownership behind one shape so the directorship gate never needs to know
// which resolution strategy backs a given Chamber.
type OwnerResolver interface {
	OwnerOf(tokenID uint64) ([20]byte, error)
}

// AssetToken abstracts the fungible token the vault denominates shares in.
type AssetToken interface {
	BalanceOf(owner [20]byte) (uint64, error)
	Transfer(from, to [20]byte, amount uint64) error
}

// StaticOwnerRegistry is an in-memory OwnerResolver suitable for tests and
// the demo CLI.
type StaticOwnerRegistry struct {
	owners map[uint64][20]byte
}

// NewStaticOwnerRegistry constructs an empty registry.
func NewStaticOwnerRegistry() *StaticOwnerRegistry {
	return &StaticOwnerRegistry{owners: make(map[uint64][20]byte)}
}

// SetOwner assigns an owner to a tokenId, overwriting any prior owner.
func (r *StaticOwnerRegistry) SetOwner(tokenID uint64, owner [20]byte) {
	r.owners[tokenID] = owner
}

// Burn removes a tokenId's owner, simulating a burned or never-minted NFT.
func (r *StaticOwnerRegistry) Burn(tokenID uint64) {
	delete(r.owners, tokenID)
}

// OwnerOf implements OwnerResolver.
func (r *StaticOwnerRegistry) OwnerOf(tokenID uint64) ([20]byte, error) {
	owner, ok := r.owners[tokenID]
	if !ok {
		return [20]byte{}, ErrNoOwner
	}
	return owner, nil
}

// LedgerAsset is an in-memory AssetToken suitable for tests and the demo
// CLI.
type LedgerAsset struct {
	balances map[[20]byte]uint64
}

// NewLedgerAsset constructs an empty ledger asset.
func NewLedgerAsset() *LedgerAsset {
	return &LedgerAsset{balances: make(map[[20]byte]uint64)}
}

// Credit increases an account's balance, simulating an external deposit
// into the ledger (e.g. a faucet or prior settlement).
func (l *LedgerAsset) Credit(account [20]byte, amount uint64) {
	l.balances[account] += amount
}

// BalanceOf implements AssetToken.
func (l *LedgerAsset) BalanceOf(owner [20]byte) (uint64, error) {
	return l.balances[owner], nil
}

// Transfer implements AssetToken.
func (l *LedgerAsset) Transfer(from, to [20]byte, amount uint64) error {
	if l.balances[from] < amount {
		return errors.New("chamber: insufficient asset balance")
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	return nil
}
