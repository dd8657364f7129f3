package config

import "fmt"

// MinTimelockSeconds is the shortest seat-update timelock a node is allowed
// to configure; anything shorter would undercut the protection against a
// minority rushing a seat change.
var MinTimelockSeconds = int64(24 * 60 * 60)

// ValidateConfig enforces the BoardPolicy bounds required for a chamberd
// node to start.
func ValidateConfig(b BoardPolicy) error {
	if b.InitialSeats == 0 || b.InitialSeats > b.MaxSeats {
		return fmt.Errorf("board: initial_seats out of range")
	}
	if b.MaxSeats == 0 || b.MaxSeats > 20 {
		return fmt.Errorf("board: max_seats must be in [1,20]")
	}
	if b.TimelockSeconds < MinTimelockSeconds {
		return fmt.Errorf("board: timelock_seconds too small")
	}
	return nil
}
