package config

// defaultBoardPolicy returns the baseline BoardPolicy shipped with a freshly
// created node configuration.
func defaultBoardPolicy() BoardPolicy {
	return BoardPolicy{
		InitialSeats:    5,
		MaxSeats:        20,
		TimelockSeconds: 7 * 24 * 60 * 60,
	}
}
