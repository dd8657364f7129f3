package registry

import (
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"

	"github.com/chamberprotocol/chamber/core/events"
	"github.com/chamberprotocol/chamber/native/board"
	"github.com/chamberprotocol/chamber/native/chamber"
	"github.com/chamberprotocol/chamber/observability/metrics"
)

// Engine is the Chamber factory and discovery index. It has little
// algorithmic depth and exists only as a thin collaborator of Chamber.
type Engine struct {
	entries map[[20]byte]*Entry
	order   [][20]byte
	byAsset map[[20]byte][][20]byte
	emitter events.Emitter
	metrics *metrics.RegistryMetrics
}

// NewEngine constructs an empty Registry.
func NewEngine() *Engine {
	return &Engine{
		entries: make(map[[20]byte]*Entry),
		byAsset: make(map[[20]byte][][20]byte),
		emitter: events.NoopEmitter{},
		metrics: metrics.Registry(),
	}
}

// SetEmitter configures the event emitter. Passing nil resets to a no-op
// implementation.
func (e *Engine) SetEmitter(emitter events.Emitter) {
	if emitter == nil {
		emitter = events.NoopEmitter{}
	}
	e.emitter = emitter
}

// Create deploys a new Chamber for (asset, nft) with the given seat count
// and name/symbol, transferring admin ownership to the Chamber itself so it
// governs its own upgrades, then indexes it by asset.
func (e *Engine) Create(creator, asset, nft [20]byte, seats uint64, name, symbol string, owners chamber.OwnerResolver, assetToken chamber.AssetToken) (*chamber.Chamber, error) {
	if zeroAddress(asset) || zeroAddress(nft) {
		return nil, ErrZeroAddress
	}
	if seats == 0 || seats > board.MaxSeats {
		return nil, ErrInvalidSeats
	}

	address := e.deriveAddress(creator, asset, nft)
	c := chamber.New(address, asset, nft, seats, owners, assetToken)
	c.TransferAdminOwnership(address)

	entry := &Entry{
		Address: address,
		Asset:   asset,
		NFT:     nft,
		Seats:   seats,
		Name:    name,
		Symbol:  symbol,
		Chamber: c,
	}
	e.entries[address] = entry
	e.order = append(e.order, address)
	e.byAsset[asset] = append(e.byAsset[asset], address)

	e.metrics.RecordCreated()
	e.metrics.SetChamberCount(len(e.entries))

	e.emitter.Emit(events.ChamberCreated{
		Chamber: address,
		Seats:   seats,
		Name:    name,
		Symbol:  symbol,
		Asset:   asset,
		NFT:     nft,
	})
	return c, nil
}

// deriveAddress computes a deterministic Chamber address from the creation
// parameters plus a random idempotency salt. The salt only affects address
// uniqueness across repeated creations with identical parameters; it plays
// no role beyond that.
func (e *Engine) deriveAddress(creator, asset, nft [20]byte) [20]byte {
	salt := uuid.New()
	digest := crypto.Keccak256Hash(creator[:], asset[:], nft[:], salt[:])
	var addr [20]byte
	copy(addr[:], digest[12:])
	return addr
}

// List returns every registered Chamber address.
func (e *Engine) List() [][20]byte {
	out := make([][20]byte, len(e.order))
	copy(out, e.order)
	return out
}

// Count reports the number of registered Chambers.
func (e *Engine) Count() int {
	return len(e.order)
}

// Page returns a bounded slice of registered addresses starting at offset.
func (e *Engine) Page(offset, limit int) [][20]byte {
	if offset < 0 || offset >= len(e.order) {
		return nil
	}
	end := offset + limit
	if end > len(e.order) || limit < 0 {
		end = len(e.order)
	}
	out := make([][20]byte, end-offset)
	copy(out, e.order[offset:end])
	return out
}

// IsChamber reports whether addr was created by this Registry.
func (e *Engine) IsChamber(addr [20]byte) bool {
	_, ok := e.entries[addr]
	return ok
}

// Get returns the Entry for addr, if any.
func (e *Engine) Get(addr [20]byte) (*Entry, bool) {
	entry, ok := e.entries[addr]
	if !ok {
		return nil, false
	}
	return entry.Clone(), true
}

// ChambersByAsset returns every Chamber address created for the given
// asset.
func (e *Engine) ChambersByAsset(asset [20]byte) [][20]byte {
	addrs := e.byAsset[asset]
	out := make([][20]byte, len(addrs))
	copy(out, addrs)
	return out
}

// Assets returns every distinct asset that has at least one Chamber.
func (e *Engine) Assets() [][20]byte {
	out := make([][20]byte, 0, len(e.byAsset))
	for asset := range e.byAsset {
		out = append(out, asset)
	}
	return out
}

func zeroAddress(addr [20]byte) bool {
	return addr == [20]byte{}
}
