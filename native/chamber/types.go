package chamber

import "math/big"

// UpgradeSelector is the four-byte function selector a self-targeted
// transaction's data must carry to be accepted by SubmitTransaction; any
// other self-targeted call is rejected as a governance bypass attempt.
var UpgradeSelector = [4]byte{0x9f, 0x61, 0x1d, 0x1f}

// delegationKey identifies one agent's weight assigned to one tokenId.
type delegationKey struct {
	Agent   [20]byte
	TokenID uint64
}

// State is the full persisted shape of a Chamber instance, laid out to
// leave room for forward-compatible additions.
type State struct {
	Seats          uint64
	Version        string
	AdminOwner     [20]byte
	Asset          [20]byte
	NFT            [20]byte
	TotalSupply    *big.Int
	TotalAssets    *big.Int
	Balances       map[[20]byte]*big.Int
	Delegations    map[delegationKey]*big.Int
	TotalDelegated map[[20]byte]*big.Int
}

// NewState constructs an empty Chamber state for the given asset/nft pair
// and initial seat count.
func NewState(asset, nft [20]byte, seats uint64) *State {
	return &State{
		Seats:          seats,
		Version:        "1.0.0",
		Asset:          asset,
		NFT:            nft,
		TotalSupply:    big.NewInt(0),
		TotalAssets:    big.NewInt(0),
		Balances:       make(map[[20]byte]*big.Int),
		Delegations:    make(map[delegationKey]*big.Int),
		TotalDelegated: make(map[[20]byte]*big.Int),
	}
}

func (s *State) balanceOf(agent [20]byte) *big.Int {
	if v, ok := s.Balances[agent]; ok {
		return new(big.Int).Set(v)
	}
	return big.NewInt(0)
}

func (s *State) totalDelegationsOf(agent [20]byte) *big.Int {
	if v, ok := s.TotalDelegated[agent]; ok {
		return new(big.Int).Set(v)
	}
	return big.NewInt(0)
}

func (s *State) delegationOf(agent [20]byte, tokenID uint64) *big.Int {
	if v, ok := s.Delegations[delegationKey{Agent: agent, TokenID: tokenID}]; ok {
		return new(big.Int).Set(v)
	}
	return big.NewInt(0)
}
