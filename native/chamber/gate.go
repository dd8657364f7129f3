package chamber

// requireDirector enforces the directorship gate: tokenId must be nonzero,
// owned by caller according to the OwnerResolver, and currently among the
// Board's top `seats` nodes. It is re-evaluated on every call; there is no
// cached authorization state.
func (c *Chamber) requireDirector(caller [20]byte, tokenID uint64) error {
	if tokenID == 0 {
		c.metrics.RecordDirectorGateDenied()
		return ErrNotDirector
	}
	owner, err := c.owners.OwnerOf(tokenID)
	if err != nil || owner != caller {
		c.metrics.RecordDirectorGateDenied()
		return ErrNotDirector
	}
	ids, _, err := c.board.Top(c.state.Seats)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == tokenID {
			return nil
		}
	}
	c.metrics.RecordDirectorGateDenied()
	return ErrNotDirector
}

// GetDirectors returns the owner for each of the top `seats` Board
// positions. An ownership-oracle failure substitutes the zero address
// rather than aborting the call; this is a deliberately soft signal, not an
// authorization surface.
func (c *Chamber) GetDirectors() ([][20]byte, error) {
	ids, _, err := c.board.Top(c.state.Seats)
	if err != nil {
		return nil, err
	}
	directors := make([][20]byte, c.state.Seats)
	for i, tokenID := range ids {
		owner, err := c.owners.OwnerOf(tokenID)
		if err != nil {
			continue
		}
		directors[i] = owner
	}
	return directors, nil
}
