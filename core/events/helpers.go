package events

import (
	"math/big"
)

func formatAmount(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func uintToString(v uint64) string {
	return new(big.Int).SetUint64(v).String()
}

func zeroAddress(addr [20]byte) bool {
	return addr == [20]byte{}
}
