package board

// Chain represents a maximal connected group of same-color stones: its color, stone
// count, the origin/last linear indexes into the Goban's next-stone linkage, its
// liberty set, and whether the slot is live or a tombstoned, retired slot.
type Chain struct {
	Color     Color
	NumStones int
	Origin    int // smallest linear index among the chain's stones
	Last      int // predecessor of Origin in the next-stone cycle
	Liberties Bitset361
	Used      bool
}

// NewChainWithLiberties creates a single-stone chain rooted at origin with the given
// liberty set.
func NewChainWithLiberties(color Color, origin int, liberties Bitset361) Chain {
	return Chain{
		Color:     color,
		NumStones: 1,
		Origin:    origin,
		Last:      origin,
		Liberties: liberties,
		Used:      true,
	}
}

// AddLiberty marks i as a liberty of the chain.
func (c *Chain) AddLiberty(i int) {
	c.Liberties.Set(i)
}

// RemoveLiberty unmarks i as a liberty of the chain.
func (c *Chain) RemoveLiberty(i int) {
	c.Liberties.Clear(i)
}

// UnionLiberties ors other's liberties into c's, in place.
func (c *Chain) UnionLiberties(other Bitset361) {
	c.Liberties.Union(other)
}

// NumberOfLiberties returns the chain's liberty count.
func (c Chain) NumberOfLiberties() int {
	return c.Liberties.PopCount()
}

// IsAtari returns true iff the chain has exactly one liberty.
func (c Chain) IsAtari() bool {
	return c.NumberOfLiberties() == 1
}

// IsDead returns true iff the chain has no liberties left.
func (c Chain) IsDead() bool {
	return !c.Liberties.Any()
}
