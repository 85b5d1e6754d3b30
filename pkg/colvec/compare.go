package colvec

// Less and Greater compare two rows by value. For float columns this is the
// ordinary numeric comparison: NaN compares false against everything, which
// is a usable strict weak ordering for sorting but not for extremes (see
// GetExtremes).

func (c *Column[T]) Less(i, j int) bool { return c.data[i] < c.data[j] }

func (c *Column[T]) Greater(i, j int) bool { return c.data[i] > c.data[j] }
