package chamber

import "errors"

var (
	ErrZeroAddress                 = errors.New("chamber: zero address")
	ErrZeroAmount                  = errors.New("chamber: zero amount")
	ErrZeroTokenID                 = errors.New("chamber: zero tokenId")
	ErrTooManySeats                = errors.New("chamber: too many seats")
	ErrInvalidTokenID              = errors.New("chamber: invalid tokenId")
	ErrInvalidTransaction          = errors.New("chamber: invalid transaction")
	ErrInsufficientChamberBalance  = errors.New("chamber: insufficient chamber balance")
	ErrInsufficientDelegatedAmount = errors.New("chamber: insufficient delegated amount")
	ErrExceedsDelegatedAmount      = errors.New("chamber: exceeds delegated amount")
	ErrNotDirector                 = errors.New("chamber: not director")
	ErrNotEnoughConfirmations      = errors.New("chamber: not enough confirmations")
	ErrReentrantCall               = errors.New("chamber: reentrant call rejected")
	ErrNotAdminOwner               = errors.New("chamber: chamber does not own admin")
)
