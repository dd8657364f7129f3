package registry

import "github.com/chamberprotocol/chamber/native/chamber"

// Entry is a discovery record for one deployed Chamber.
type Entry struct {
	Address [20]byte
	Asset   [20]byte
	NFT     [20]byte
	Seats   uint64
	Name    string
	Symbol  string
	Chamber *chamber.Chamber
}

// Clone returns a shallow copy of the entry. The Chamber pointer is shared;
// only the metadata is copied, not the engine behind it.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}
