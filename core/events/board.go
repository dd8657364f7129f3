package events

import "github.com/chamberprotocol/chamber/core/types"

const (
	// TypeSetSeats is emitted when a director proposes or supports a seat
	// count change.
	TypeSetSeats = "board.setSeats"
	// TypeSeatUpdateCancelled is emitted when a conflicting seat proposal
	// cancels the pending one.
	TypeSeatUpdateCancelled = "board.seatUpdateCancelled"
	// TypeExecuteSetSeats is emitted once a seat proposal clears its
	// timelock and quorum and is applied.
	TypeExecuteSetSeats = "board.executeSetSeats"
	// TypeBoardNodeUpserted fires whenever a delegation node is inserted or
	// repositioned in the sorted list.
	TypeBoardNodeUpserted = "board.nodeUpserted"
	// TypeBoardNodeRemoved fires when a node's amount reaches zero and it
	// leaves the list.
	TypeBoardNodeRemoved = "board.nodeRemoved"
)

// SetSeats captures a seat-count proposal or an additional supporter joining
// an existing one.
type SetSeats struct {
	TokenID   uint64
	Proposed  uint64
	Supporter bool
}

// EventType satisfies the Event interface.
func (SetSeats) EventType() string { return TypeSetSeats }

// Event converts the payload into a broadcastable event.
func (e SetSeats) Event() *types.Event {
	return &types.Event{Type: TypeSetSeats, Attributes: map[string]string{
		"tokenId":  uintToString(e.TokenID),
		"proposed": uintToString(e.Proposed),
	}}
}

// SeatUpdateCancelled captures the rejection of a pending proposal by a
// conflicting request.
type SeatUpdateCancelled struct {
	TokenID uint64
}

// EventType satisfies the Event interface.
func (SeatUpdateCancelled) EventType() string { return TypeSeatUpdateCancelled }

// Event converts the payload into a broadcastable event.
func (e SeatUpdateCancelled) Event() *types.Event {
	return &types.Event{Type: TypeSeatUpdateCancelled, Attributes: map[string]string{
		"tokenId": uintToString(e.TokenID),
	}}
}

// ExecuteSetSeats captures a seat proposal that cleared its timelock and
// quorum and was applied.
type ExecuteSetSeats struct {
	TokenID uint64
	Seats   uint64
}

// EventType satisfies the Event interface.
func (ExecuteSetSeats) EventType() string { return TypeExecuteSetSeats }

// Event converts the payload into a broadcastable event.
func (e ExecuteSetSeats) Event() *types.Event {
	return &types.Event{Type: TypeExecuteSetSeats, Attributes: map[string]string{
		"tokenId": uintToString(e.TokenID),
		"seats":   uintToString(e.Seats),
	}}
}

// BoardNodeUpserted captures a delegation node's new sorted position.
type BoardNodeUpserted struct {
	TokenID uint64
	Amount  uint64
}

// EventType satisfies the Event interface.
func (BoardNodeUpserted) EventType() string { return TypeBoardNodeUpserted }

// Event converts the payload into a broadcastable event.
func (e BoardNodeUpserted) Event() *types.Event {
	return &types.Event{Type: TypeBoardNodeUpserted, Attributes: map[string]string{
		"tokenId": uintToString(e.TokenID),
		"amount":  uintToString(e.Amount),
	}}
}

// BoardNodeRemoved captures a delegation node leaving the sorted list.
type BoardNodeRemoved struct {
	TokenID uint64
}

// EventType satisfies the Event interface.
func (BoardNodeRemoved) EventType() string { return TypeBoardNodeRemoved }

// Event converts the payload into a broadcastable event.
func (e BoardNodeRemoved) Event() *types.Event {
	return &types.Event{Type: TypeBoardNodeRemoved, Attributes: map[string]string{
		"tokenId": uintToString(e.TokenID),
	}}
}
