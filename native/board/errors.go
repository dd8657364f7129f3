package board

import "errors"

var (
	// ErrMaxNodesReached is returned when a delegation would insert a new
	// node past the bounded list size.
	ErrMaxNodesReached = errors.New("board: max nodes reached")
	// ErrNodeDoesNotExist is returned when an operation targets a tokenId
	// with no delegation node.
	ErrNodeDoesNotExist = errors.New("board: node does not exist")
	// ErrAmountExceedsDelegation is returned when an undelegation exceeds
	// the node's current amount.
	ErrAmountExceedsDelegation = errors.New("board: amount exceeds delegation")
	// ErrCircuitBreakerActive is returned when a mutation is attempted
	// while a reposition is in progress.
	ErrCircuitBreakerActive = errors.New("board: circuit breaker active")
	// ErrAlreadySentUpdateRequest is returned when a tokenId supports a
	// pending seat proposal it already supports.
	ErrAlreadySentUpdateRequest = errors.New("board: already sent update request")
	// ErrTimelockNotExpired is returned when execution is attempted before
	// the proposal's timelock has elapsed.
	ErrTimelockNotExpired = errors.New("board: timelock not expired")
	// ErrInsufficientVotes is returned when execution is attempted without
	// enough supporters to meet the frozen quorum.
	ErrInsufficientVotes = errors.New("board: insufficient votes")
	// ErrInvalidProposal is returned when execution is attempted with no
	// pending proposal.
	ErrInvalidProposal = errors.New("board: invalid proposal")
	// ErrInvalidNumSeats is returned when a seat count of zero is proposed.
	ErrInvalidNumSeats = errors.New("board: invalid number of seats")
	// ErrTooManySeats is returned when a seat count exceeds MaxSeats.
	ErrTooManySeats = errors.New("board: too many seats")
	// ErrZeroTokenID is returned when an operation is attempted with the
	// reserved tokenId.
	ErrZeroTokenID = errors.New("board: zero tokenId")
	// ErrZeroAmount is returned when a delegation amount of zero is
	// supplied to an operation requiring a positive amount.
	ErrZeroAmount = errors.New("board: zero amount")
)
