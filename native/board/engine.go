package board

import (
	"time"

	"github.com/chamberprotocol/chamber/core/events"
	"github.com/chamberprotocol/chamber/native/common"
	"github.com/chamberprotocol/chamber/observability/metrics"
)

// Engine is the sorted delegation ledger and seat-update state machine. It
// performs no external I/O; every failure is synchronous and local.
type Engine struct {
	store   Store
	emitter events.Emitter
	nowFn   func() time.Time
	metrics *metrics.BoardMetrics
	breaker common.ReentrancyGuard
}

// NewEngine constructs a Board engine backed by store with default no-op
// dependencies.
func NewEngine(store Store) *Engine {
	return &Engine{
		store:   store,
		emitter: events.NoopEmitter{},
		nowFn:   func() time.Time { return time.Now().UTC() },
		metrics: metrics.Board(),
	}
}

// SetEmitter configures the event emitter. Passing nil resets to a no-op
// implementation.
func (e *Engine) SetEmitter(emitter events.Emitter) {
	if emitter == nil {
		e.emitter = events.NoopEmitter{}
		return
	}
	e.emitter = emitter
}

// SetNowFunc overrides the time source used to stamp seat proposals. Nil
// restores the default UTC clock.
func (e *Engine) SetNowFunc(now func() time.Time) {
	if now == nil {
		e.nowFn = func() time.Time { return time.Now().UTC() }
		return
	}
	e.nowFn = now
}

func (e *Engine) now() time.Time {
	if e.nowFn == nil {
		return time.Now().UTC()
	}
	return e.nowFn()
}

// Quorum reports the minimum number of supporters required to execute a
// seat-update proposal under the current seat count: 1 + floor(seats*51/100).
func (e *Engine) Quorum() (uint64, error) {
	_, _, _, seats, err := e.store.BoardMeta()
	if err != nil {
		return 0, err
	}
	return quorumFor(seats), nil
}

func quorumFor(seats uint64) uint64 {
	return 1 + (seats*51)/100
}

// Seats reports the current seat count.
func (e *Engine) Seats() (uint64, error) {
	_, _, _, seats, err := e.store.BoardMeta()
	return seats, err
}

// Top walks from head following next for up to min(n, size) nodes, returning
// their tokenIds and amounts in sorted order.
func (e *Engine) Top(n uint64) ([]uint64, []uint64, error) {
	headID, _, size, _, err := e.store.BoardMeta()
	if err != nil {
		return nil, nil, err
	}
	if n > size {
		n = size
	}
	ids := make([]uint64, 0, n)
	amounts := make([]uint64, 0, n)
	cur := headID
	for i := uint64(0); i < n; i++ {
		node, ok, err := e.store.BoardNode(cur)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			break
		}
		ids = append(ids, node.TokenID)
		amounts = append(amounts, node.Amount)
		cur = node.NextID
	}
	return ids, amounts, nil
}

// Delegate increments tokenId's node amount (inserting a new node if none
// exists) and restores sorted order.
func (e *Engine) Delegate(tokenID, amount uint64) error {
	if tokenID == sentinel {
		return ErrZeroTokenID
	}
	if amount == 0 {
		return ErrZeroAmount
	}
	if err := e.breaker.Enter(); err != nil {
		e.metrics.RecordCircuitBreakerRejected()
		return ErrCircuitBreakerActive
	}
	defer e.breaker.Exit()

	node, ok, err := e.store.BoardNode(tokenID)
	if err != nil {
		return err
	}
	if ok {
		if err := e.removeNode(node); err != nil {
			return err
		}
		node.Amount += amount
		if err := e.insertNode(node); err != nil {
			return err
		}
		e.metrics.RecordReposition()
	} else {
		_, _, size, _, err := e.store.BoardMeta()
		if err != nil {
			return err
		}
		if size >= MaxNodes {
			return ErrMaxNodesReached
		}
		node = &Node{TokenID: tokenID, Amount: amount}
		if err := e.insertNode(node); err != nil {
			return err
		}
	}
	e.emitter.Emit(events.BoardNodeUpserted{TokenID: tokenID, Amount: node.Amount})
	return nil
}

// Undelegate decrements tokenId's node amount, removing the node if it
// reaches zero, and restores sorted order otherwise.
func (e *Engine) Undelegate(tokenID, amount uint64) error {
	if amount == 0 {
		return ErrZeroAmount
	}
	if err := e.breaker.Enter(); err != nil {
		e.metrics.RecordCircuitBreakerRejected()
		return ErrCircuitBreakerActive
	}
	defer e.breaker.Exit()

	node, ok, err := e.store.BoardNode(tokenID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNodeDoesNotExist
	}
	if amount > node.Amount {
		return ErrAmountExceedsDelegation
	}
	if err := e.removeNode(node); err != nil {
		return err
	}
	node.Amount -= amount
	if node.Amount == 0 {
		e.emitter.Emit(events.BoardNodeRemoved{TokenID: tokenID})
		return nil
	}
	if err := e.insertNode(node); err != nil {
		return err
	}
	e.metrics.RecordReposition()
	e.emitter.Emit(events.BoardNodeUpserted{TokenID: tokenID, Amount: node.Amount})
	return nil
}

// removeNode unlinks node from the list, deletes its storage record, and
// updates head/tail/size. Callers that reposition the node write it back
// through insertNode.
func (e *Engine) removeNode(node *Node) error {
	headID, tailID, size, seats, err := e.store.BoardMeta()
	if err != nil {
		return err
	}
	if node.PrevID != sentinel {
		prev, ok, err := e.store.BoardNode(node.PrevID)
		if err != nil {
			return err
		}
		if ok {
			prev.NextID = node.NextID
			if err := e.store.BoardPutNode(prev); err != nil {
				return err
			}
		}
	} else {
		headID = node.NextID
	}
	if node.NextID != sentinel {
		next, ok, err := e.store.BoardNode(node.NextID)
		if err != nil {
			return err
		}
		if ok {
			next.PrevID = node.PrevID
			if err := e.store.BoardPutNode(next); err != nil {
				return err
			}
		}
	} else {
		tailID = node.PrevID
	}
	if err := e.store.BoardDeleteNode(node.TokenID); err != nil {
		return err
	}
	size--
	if err := e.store.BoardPutMeta(headID, tailID, size, seats); err != nil {
		return err
	}
	e.metrics.SetListSize(size)
	return nil
}

// insertNode walks from head while amount <= current.amount and inserts
// immediately before the first strictly-smaller node (or at the tail if
// none), so ties order "older first".
func (e *Engine) insertNode(node *Node) error {
	headID, tailID, size, seats, err := e.store.BoardMeta()
	if err != nil {
		return err
	}

	var prevID uint64 = sentinel
	curID := headID
	for curID != sentinel {
		cur, ok, err := e.store.BoardNode(curID)
		if err != nil {
			return err
		}
		if !ok || node.Amount > cur.Amount {
			break
		}
		prevID = curID
		curID = cur.NextID
	}

	node.PrevID = prevID
	node.NextID = curID

	if prevID != sentinel {
		prev, ok, err := e.store.BoardNode(prevID)
		if err != nil {
			return err
		}
		if ok {
			prev.NextID = node.TokenID
			if err := e.store.BoardPutNode(prev); err != nil {
				return err
			}
		}
	} else {
		headID = node.TokenID
	}

	if curID != sentinel {
		cur, ok, err := e.store.BoardNode(curID)
		if err != nil {
			return err
		}
		if ok {
			cur.PrevID = node.TokenID
			if err := e.store.BoardPutNode(cur); err != nil {
				return err
			}
		}
	} else {
		tailID = node.TokenID
	}

	if err := e.store.BoardPutNode(node); err != nil {
		return err
	}
	size++
	if err := e.store.BoardPutMeta(headID, tailID, size, seats); err != nil {
		return err
	}
	e.metrics.SetListSize(size)
	return nil
}

// SetSeats performs the initial seat-count set, starts a new proposal,
// records additional support, or cancels a conflicting proposal.
func (e *Engine) SetSeats(proposerTokenID, n uint64) error {
	if n == 0 {
		return ErrInvalidNumSeats
	}
	if n > MaxSeats {
		return ErrTooManySeats
	}
	headID, tailID, size, seats, err := e.store.BoardMeta()
	if err != nil {
		return err
	}
	if seats == 0 {
		if err := e.store.BoardPutMeta(headID, tailID, size, n); err != nil {
			return err
		}
		e.metrics.RecordSeatProposalOutcome("initialized")
		e.emitter.Emit(events.SetSeats{TokenID: proposerTokenID, Proposed: n})
		return nil
	}

	proposal, err := e.store.BoardSeatProposal()
	if err != nil {
		return err
	}
	if proposal == nil {
		proposal = &SeatProposal{
			Proposed:       n,
			CreatedAt:      e.now().Unix(),
			RequiredQuorum: quorumFor(seats),
			Supporters:     []uint64{proposerTokenID},
		}
		if err := e.store.BoardPutSeatProposal(proposal); err != nil {
			return err
		}
		e.metrics.RecordSeatProposalOutcome("created")
		e.emitter.Emit(events.SetSeats{TokenID: proposerTokenID, Proposed: n})
		return nil
	}

	if n != proposal.Proposed {
		if err := e.store.BoardPutSeatProposal(nil); err != nil {
			return err
		}
		e.metrics.RecordSeatProposalOutcome("cancelled")
		e.emitter.Emit(events.SeatUpdateCancelled{TokenID: proposerTokenID})
		return nil
	}

	if proposal.hasSupporter(proposerTokenID) {
		return ErrAlreadySentUpdateRequest
	}
	proposal.Supporters = append(proposal.Supporters, proposerTokenID)
	if err := e.store.BoardPutSeatProposal(proposal); err != nil {
		return err
	}
	e.metrics.RecordSeatProposalOutcome("supported")
	e.emitter.Emit(events.SetSeats{TokenID: proposerTokenID, Proposed: n, Supporter: true})
	return nil
}

// ExecuteSeatsUpdate applies a pending seat proposal once its frozen quorum
// is met and its 7-day timelock has elapsed.
func (e *Engine) ExecuteSeatsUpdate(executorTokenID uint64) error {
	proposal, err := e.store.BoardSeatProposal()
	if err != nil {
		return err
	}
	if proposal == nil {
		return ErrInvalidProposal
	}
	if e.now().Unix() < proposal.CreatedAt+TimelockSeconds {
		return ErrTimelockNotExpired
	}
	if uint64(len(proposal.Supporters)) < proposal.RequiredQuorum {
		return ErrInsufficientVotes
	}
	headID, tailID, size, _, err := e.store.BoardMeta()
	if err != nil {
		return err
	}
	if err := e.store.BoardPutMeta(headID, tailID, size, proposal.Proposed); err != nil {
		return err
	}
	if err := e.store.BoardPutSeatProposal(nil); err != nil {
		return err
	}
	e.metrics.RecordSeatProposalOutcome("executed")
	e.emitter.Emit(events.ExecuteSetSeats{TokenID: executorTokenID, Seats: proposal.Proposed})
	return nil
}
