package config

// BoardPolicy captures the Board's configurable parameters that must be
// validated before a chamberd node starts serving requests.
type BoardPolicy struct {
	InitialSeats    uint64 `toml:"InitialSeats"`
	MaxSeats        uint64 `toml:"MaxSeats"`
	TimelockSeconds int64  `toml:"TimelockSeconds"`
}
