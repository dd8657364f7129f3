package events

import "github.com/chamberprotocol/chamber/core/types"

const (
	// TypeChamberCreated is emitted when the Registry deploys a new Chamber
	// instance.
	TypeChamberCreated = "registry.chamberCreated"
)

// ChamberCreated captures the parameters a new Chamber was created with.
type ChamberCreated struct {
	Chamber [20]byte
	Seats   uint64
	Name    string
	Symbol  string
	Asset   [20]byte
	NFT     [20]byte
}

// EventType satisfies the Event interface.
func (ChamberCreated) EventType() string { return TypeChamberCreated }

// Event converts the payload into a broadcastable event.
func (e ChamberCreated) Event() *types.Event {
	return &types.Event{Type: TypeChamberCreated, Attributes: map[string]string{
		"chamber": hexAddress(e.Chamber),
		"seats":   uintToString(e.Seats),
		"name":    e.Name,
		"symbol":  e.Symbol,
		"asset":   hexAddress(e.Asset),
		"nft":     hexAddress(e.NFT),
	}}
}
