package board

import (
	"fmt"
	"strings"
)

// noChain marks an empty board cell in the board map.
const noChain = -1

// Goban is the central structure: a chain pool, a per-cell map from board index to
// chain slot (or empty), a circular next-stone linkage threading each chain's stones,
// the board size, and the running Zobrist hash. It exclusively owns its chain pool,
// board map, next-stone array, and hash; no Goban outlives the caller that owns it, and
// concurrent mutation of a single Goban is undefined.
type Goban struct {
	size Size
	zt   *ZobristTable

	chains    []Chain
	board     []int
	nextStone []int
	freeList  []int // retired chain slots available for reuse

	hash ZobristHash
}

// NewGoban creates an empty goban of the given size, using the default Zobrist table.
func NewGoban(size Size) *Goban {
	return NewGobanWithTable(size, defaultZobristTable)
}

// NewGobanWithTable creates an empty goban using a caller-supplied Zobrist table. Two
// gobans must share a table (or tables built from the same seed) for their hashes to be
// comparable.
func NewGobanWithTable(size Size, zt *ZobristTable) *Goban {
	if !size.IsValid() {
		panic(fmt.Sprintf("invalid goban size: %v", size))
	}

	n := size.NumCells()
	board := make([]int, n)
	for i := range board {
		board[i] = noChain
	}

	return &Goban{
		size:      size,
		zt:        zt,
		chains:    make([]Chain, 0, 4*n/5),
		board:     board,
		nextStone: make([]int, n),
	}
}

// defaultZobristTable backs every Goban created without an explicit table, so that
// hashes are comparable (and FromArray/ToVec round-trips reproduce the same hash)
// across gobans and processes.
var defaultZobristTable = NewZobristTable(DefaultZobristSeed)

// FromArray builds a goban from a flat, row-major array of optional colors. The array
// length must be a perfect square; the side length is inferred as its square root.
func FromArray(cells []CellColor) *Goban {
	side := 0
	for side*side < len(cells) {
		side++
	}
	if side*side != len(cells) {
		panic(fmt.Sprintf("FromArray: %v is not a perfect square length", len(cells)))
	}

	g := NewGoban(Size{Height: side, Width: side})
	for i, cell := range cells {
		if cell == CellEmpty {
			continue
		}
		g.Push(g.size.FromLinear(i), Color(cell))
	}
	return g
}

// Clone returns an independent copy of the goban. Mutating the clone never affects the
// original. This is the mechanism the Superko predicate uses for speculative replay.
func (g *Goban) Clone() *Goban {
	ret := &Goban{
		size:      g.size,
		zt:        g.zt,
		chains:    append([]Chain(nil), g.chains...),
		board:     append([]int(nil), g.board...),
		nextStone: append([]int(nil), g.nextStone...),
		freeList:  append([]int(nil), g.freeList...),
		hash:      g.hash,
	}
	return ret
}

// Size returns the board dimensions.
func (g *Goban) Size() Size {
	return g.size
}

// ZobristHash returns the running position hash.
func (g *Goban) ZobristHash() ZobristHash {
	return g.hash
}

// Equals compares two gobans by Zobrist hash, per spec.
func (g *Goban) Equals(other *Goban) bool {
	return g.hash == other.hash
}

// Push places a stone, ignoring the dead-chain/ko feedback. Convenience wrapper around
// PlaceWithFeedback for setting up positions (e.g. handicap stones, test fixtures).
func (g *Goban) Push(coord Coord, color Color) {
	g.PlaceWithFeedback(coord, color)
}

// PushMany places several stones of the same color.
func (g *Goban) PushMany(coords []Coord, color Color) {
	for _, c := range coords {
		g.Push(c, color)
	}
}

// PlaceWithFeedback places a stone at coord with the given color, executing the full
// chain merge / liberty update / hash update pipeline. It does not check
// legality (the caller, or a rule layer above, must ensure the point is empty) and it
// does not retire newly-dead chains -- see RemoveCaptured for that.
//
// Returns the chain ids that lost their last liberty because of this placement, and the
// id of the chain now containing the placed stone.
func (g *Goban) PlaceWithFeedback(coord Coord, color Color) (dead []int, added int) {
	p := g.size.Linear(coord)

	var same, opp []int
	var libs Bitset361

	for _, n := range g.size.Neighbors(coord) {
		ni := g.size.Linear(n)
		id := g.board[ni]
		switch {
		case id == noChain:
			libs.Set(ni)
		case g.chains[id].Color == color:
			same = appendUnique(same, id)
		default:
			opp = appendUnique(opp, id)
		}
	}

	for _, id := range opp {
		c := &g.chains[id]
		c.RemoveLiberty(p)
		if c.IsDead() {
			dead = append(dead, id)
		}
	}

	switch len(same) {
	case 0:
		added = g.createChain(p, color, libs)

	case 1:
		id := same[0]
		c := &g.chains[id]
		c.RemoveLiberty(p)
		c.UnionLiberties(libs)
		g.spliceIntoChain(id, p)
		g.board[p] = id
		added = id

	default:
		t := g.createChain(p, color, libs)
		for _, id := range same {
			if g.chains[id].NumberOfLiberties() < g.chains[t].NumberOfLiberties() {
				g.mergeChains(t, id)
			} else {
				g.mergeChains(id, t)
				t = id
			}
		}
		g.chains[t].RemoveLiberty(p)
		added = t
	}

	g.hash ^= g.zt.Index(p, color)
	return dead, added
}

// appendUnique appends id to ids unless already present. Neighbor scans deduplicate
// chain ids so that every arithmetic update happens exactly once.
func appendUnique(ids []int, id int) []int {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

// createChain allocates (from the free list, or fresh) a single-stone chain at origin.
func (g *Goban) createChain(origin int, color Color, liberties Bitset361) int {
	chain := NewChainWithLiberties(color, origin, liberties)
	g.nextStone[origin] = origin

	var id int
	if n := len(g.freeList); n > 0 {
		id = g.freeList[n-1]
		g.freeList = g.freeList[:n-1]
		g.chains[id] = chain
	} else {
		g.chains = append(g.chains, chain)
		id = len(g.chains) - 1
	}
	g.board[origin] = id
	return id
}

// spliceIntoChain splices stone into chain id's circular linkage, updating origin or
// last as needed to preserve origin == min(linear index).
func (g *Goban) spliceIntoChain(id, stone int) {
	c := &g.chains[id]
	if stone < c.Origin {
		g.nextStone[stone] = c.Origin
		g.nextStone[c.Last] = stone
		c.Origin = stone
	} else {
		g.nextStone[c.Last] = stone
		g.nextStone[stone] = c.Origin
		c.Last = stone
	}
	c.NumStones++
}

// mergeChains merges src into dst: unions liberties, splices the two circular
// linkages by swapping the two tails' successors, keeps origin = min(origin), rewrites
// the board map of every stone now in dst, and retires src.
func (g *Goban) mergeChains(dst, src int) {
	d := &g.chains[dst]
	s := g.chains[src]

	d.UnionLiberties(s.Liberties)

	g.nextStone[d.Last], g.nextStone[s.Last] = g.nextStone[s.Last], g.nextStone[d.Last]
	if d.Origin > s.Origin {
		d.Origin = s.Origin
	} else {
		d.Last = s.Last
	}
	d.NumStones += s.NumStones

	g.rewriteBoardMap(dst)
	g.retireChain(src)
}

// rewriteBoardMap rewrites the board map of every stone in chain id to point to id.
// Needed after a merge, where stones formerly belonging to the absorbed chain must now
// resolve to the surviving id.
func (g *Goban) rewriteBoardMap(id int) {
	for _, s := range g.ChainStones(id) {
		g.board[s] = id
	}
}

func (g *Goban) retireChain(id int) {
	g.chains[id].Used = false
	g.freeList = append(g.freeList, id)
}

// ChainStones returns the linear indexes of every stone in chain id, in traversal order
// starting at Origin: start at Origin, advance via nextStone, stop when the index
// cycles back to Origin.
func (g *Goban) ChainStones(id int) []int {
	c := g.chains[id]
	stones := make([]int, 0, c.NumStones)
	i := c.Origin
	for {
		stones = append(stones, i)
		i = g.nextStone[i]
		if i == c.Origin {
			break
		}
	}
	return stones
}

// RemoveChain retires chain id, clearing its stones from the board and restoring the
// liberty each stone's removal creates to every still-live neighboring chain.
func (g *Goban) RemoveChain(id int) {
	color := g.chains[id].Color

	for _, s := range g.ChainStones(id) {
		for _, ni := range g.size.NeighborIndexes(g.size.FromLinear(s)) {
			q := g.board[ni]
			if q != noChain && q != id {
				g.chains[q].AddLiberty(s)
			}
		}
		g.hash ^= g.zt.Index(s, color)
		g.board[s] = noChain
	}
	g.retireChain(id)
}

// Prisoners tracks captured-stone counts by the capturing color: Black is the number of
// White stones Black has captured (and vice versa for White). A self-capturing suicide
// move credits the opponent.
type Prisoners struct {
	Black, White int
}

func (p *Prisoners) credit(capturer Color, stones int) {
	if capturer == Black {
		p.Black += stones
	} else {
		p.White += stones
	}
}

// RemoveCaptured retires the dead chains returned by PlaceWithFeedback, tallies captured
// stones into prior, retires the placed chain itself if it is a now-allowed suicide, and
// computes the resulting ko point.
//
// The ko point is set iff exactly one opposing chain died and it held exactly one stone;
// suicide never yields a ko point.
func (g *Goban) RemoveCaptured(color Color, suicideAllowed bool, prior Prisoners, dead []int, added int) (Prisoners, int, bool) {
	result := prior
	koPoint, hasKo := -1, false

	if len(dead) == 1 && g.chains[dead[0]].NumStones == 1 {
		koPoint, hasKo = g.chains[dead[0]].Origin, true
	}

	for _, id := range dead {
		result.credit(color, g.chains[id].NumStones)
		g.RemoveChain(id)
	}

	if suicideAllowed && g.chains[added].IsDead() {
		result.credit(color.Opponent(), g.chains[added].NumStones)
		g.RemoveChain(added)
		koPoint, hasKo = -1, false
	}

	return result, koPoint, hasKo
}

// GetColor returns the stone color at coord, if any.
func (g *Goban) GetColor(coord Coord) (Color, bool) {
	id := g.board[g.size.Linear(coord)]
	if id == noChain {
		return 0, false
	}
	return g.chains[id].Color, true
}

// GetPoint returns the (coord, optional color) pair at coord.
func (g *Goban) GetPoint(coord Coord) Point {
	color, ok := g.GetColor(coord)
	return Point{Coord: coord, Color: color, Empty: !ok}
}

// GetChainByPoint returns the chain id occupying coord, if any.
func (g *Goban) GetChainByPoint(coord Coord) (int, bool) {
	id := g.board[g.size.Linear(coord)]
	return id, id != noChain
}

// Chain returns a copy of the chain record for id.
func (g *Goban) Chain(id int) Chain {
	return g.chains[id]
}

// GetStones returns every occupied point, in row-major order.
func (g *Goban) GetStones() []Stone {
	var ret []Stone
	for i, id := range g.board {
		if id != noChain {
			ret = append(ret, Stone{Coord: g.size.FromLinear(i), Color: g.chains[id].Color})
		}
	}
	return ret
}

// GetStonesByColor returns every occupied point of the given color, in row-major order.
func (g *Goban) GetStonesByColor(color Color) []Stone {
	var ret []Stone
	for i, id := range g.board {
		if id != noChain && g.chains[id].Color == color {
			ret = append(ret, Stone{Coord: g.size.FromLinear(i), Color: color})
		}
	}
	return ret
}

// GetEmptyCoords returns every empty point, in row-major order.
func (g *Goban) GetEmptyCoords() []Coord {
	var ret []Coord
	for i, id := range g.board {
		if id == noChain {
			ret = append(ret, g.size.FromLinear(i))
		}
	}
	return ret
}

// GetCoordsByColor returns every point of the given color, in row-major order.
func (g *Goban) GetCoordsByColor(color Color) []Coord {
	var ret []Coord
	for i, id := range g.board {
		if id != noChain && g.chains[id].Color == color {
			ret = append(ret, g.size.FromLinear(i))
		}
	}
	return ret
}

// GetNeighborChainIDs returns the chain ids adjacent to coord. May contain duplicates;
// callers that require uniqueness must dedupe.
func (g *Goban) GetNeighborChainIDs(coord Coord) []int {
	var ret []int
	for _, ni := range g.size.NeighborIndexes(coord) {
		if id := g.board[ni]; id != noChain {
			ret = append(ret, id)
		}
	}
	return ret
}

// GetNeighborChains is like GetNeighborChainIDs, but returns chain values.
func (g *Goban) GetNeighborChains(coord Coord) []Chain {
	ids := g.GetNeighborChainIDs(coord)
	ret := make([]Chain, len(ids))
	for i, id := range ids {
		ret[i] = g.chains[id]
	}
	return ret
}

// GetLiberties returns the empty neighbors of coord.
func (g *Goban) GetLiberties(coord Coord) []Coord {
	var ret []Coord
	for _, n := range g.size.Neighbors(coord) {
		if _, ok := g.GetColor(n); !ok {
			ret = append(ret, n)
		}
	}
	return ret
}

// HasLiberties returns true iff coord has at least one empty neighbor.
func (g *Goban) HasLiberties(coord Coord) bool {
	return len(g.GetLiberties(coord)) > 0
}

// NumberOfStones returns (black count, white count).
func (g *Goban) NumberOfStones() (black, white int) {
	for _, id := range g.board {
		if id == noChain {
			continue
		}
		if g.chains[id].Color == Black {
			black++
		} else {
			white++
		}
	}
	return black, white
}

// ToVec returns the goban as a flat, row-major array of optional colors.
func (g *Goban) ToVec() []CellColor {
	ret := make([]CellColor, len(g.board))
	for i, id := range g.board {
		if id == noChain {
			ret[i] = CellEmpty
		} else {
			ret[i] = CellColor(g.chains[id].Color)
		}
	}
	return ret
}

// Matrix is like ToVec, but shaped as [height][width].
func (g *Goban) Matrix() [][]CellColor {
	vec := g.ToVec()
	ret := make([][]CellColor, g.size.Height)
	for r := 0; r < g.size.Height; r++ {
		ret[r] = append([]CellColor(nil), vec[r*g.size.Width:(r+1)*g.size.Width]...)
	}
	return ret
}

// String pretty-prints the goban using box-drawing glyphs for edge/corner
// intersections and a star marker for conventional hoshi points.
func (g *Goban) String() string {
	var sb strings.Builder
	for r := 0; r < g.size.Height; r++ {
		for c := 0; c < g.size.Width; c++ {
			coord := Coord{Row: r, Col: c}
			color, ok := g.GetColor(coord)
			switch {
			case ok && color == Black:
				sb.WriteRune('●')
			case ok && color == White:
				sb.WriteRune('○')
			case isHoshi(g.size, coord):
				sb.WriteRune('╋')
			default:
				sb.WriteRune(edgeGlyph(g.size, coord))
			}
			if c != g.size.Width-1 {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

func edgeGlyph(size Size, c Coord) rune {
	top, bottom := c.Row == 0, c.Row == size.Height-1
	left, right := c.Col == 0, c.Col == size.Width-1
	switch {
	case top && left:
		return '┏'
	case top && right:
		return '┓'
	case bottom && left:
		return '┗'
	case bottom && right:
		return '┛'
	case top:
		return '┯'
	case bottom:
		return '┷'
	case left:
		return '┠'
	case right:
		return '┨'
	default:
		return '┼'
	}
}

// hoshiLines returns the conventional star-point rows/columns, as 0-indexed offsets from
// the edge, for a given board dimension (offset 3, the 4th line, for 13/19; offset 2, the
// 3rd line, for 9), or none if there's no conventional pattern for this size.
func hoshiLines(dim int) []int {
	switch dim {
	case 19:
		return []int{3, 9, 15}
	case 13:
		return []int{3, 6, 9}
	case 9:
		return []int{2, 4, 6}
	default:
		return nil
	}
}

func isHoshi(size Size, c Coord) bool {
	if size.Height != size.Width {
		return false
	}
	rows := hoshiLines(size.Height)
	cols := hoshiLines(size.Width)
	if rows == nil {
		return false
	}
	rowHit, colHit := false, false
	for _, r := range rows {
		if c.Row == r {
			rowHit = true
		}
	}
	for _, cc := range cols {
		if c.Col == cc {
			colHit = true
		}
	}
	return rowHit && colHit
}
