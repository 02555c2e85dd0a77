package board

// Legality predicates are stateless helpers over a Goban plus a proposed Stone. They
// never mutate the Goban they are given (Superko clones internally); a rule layer
// composes them into move legality by consulting whichever flags it has opted into.

// PointEmpty returns true iff coord holds no stone.
func PointEmpty(g *Goban, coord Coord) bool {
	_, ok := g.GetColor(coord)
	return !ok
}

// Ko returns true iff coord is the single forbidden recapture point set by the
// previous placement.
func Ko(koPoint Coord, hasKo bool, coord Coord) bool {
	return hasKo && coord == koPoint
}

// WillCapture reports whether placing stone would remove at least one opposing chain:
// true iff some neighboring opposite-color chain is already in atari.
func WillCapture(g *Goban, stone Stone) bool {
	for _, c := range g.GetNeighborChains(stone.Coord) {
		if c.Color != stone.Color && c.IsAtari() {
			return true
		}
	}
	return false
}

// Suicide reports whether placing stone would leave it with zero liberties and capture
// nothing: no empty neighbor, no same-color neighbor chain with more than one liberty,
// and no opposite-color neighbor chain in atari.
func Suicide(g *Goban, stone Stone) bool {
	if g.HasLiberties(stone.Coord) {
		return false
	}
	for _, c := range g.GetNeighborChains(stone.Coord) {
		if c.Color == stone.Color {
			if c.NumberOfLiberties() > 1 {
				return false
			}
		} else if c.IsAtari() {
			return false
		}
	}
	return true
}

// Superko reports whether placing stone would reproduce a previously reached position.
// It only matters when the move captures something (otherwise the hash cannot recur at
// this ply): the goban is cloned, the placement and capture resolution are replayed
// speculatively on the clone, and the resulting hash is checked against priorHashes.
func Superko(g *Goban, stone Stone, suicideAllowed bool, prior Prisoners, priorHashes map[ZobristHash]bool) bool {
	if !WillCapture(g, stone) {
		return false
	}

	clone := g.Clone()
	dead, added := clone.PlaceWithFeedback(stone.Coord, stone.Color)
	clone.RemoveCaptured(stone.Color, suicideAllowed, prior, dead, added)

	return priorHashes[clone.ZobristHash()]
}

// FillEye classifies coord as an eye of color: all four orthogonal neighbors are
// same-color stones, and counting allied stones on-corner plus off-board corners among
// the four diagonals, either all four qualify, or 2-3 qualify and at least one of the
// remaining empty corners has no opposing stone among its orthogonal neighbors and 2-3
// qualifying corners of its own (a single level deep; the corner itself need not be
// fully surrounded). This mirrors a known
// heuristic used to prune move generation, not a true eye detector: it is deliberately
// left as-is, including its false positives on certain corner shapes.
func FillEye(g *Goban, coord Coord, color Color) bool {
	size := g.Size()
	if !size.InBounds(coord) {
		return false
	}

	for _, n := range size.Neighbors(coord) {
		c, ok := g.GetColor(n)
		if !ok || c != color {
			return false
		}
	}

	count, emptyCorners := eyeCornerCount(g, coord, color)
	if count == 4 {
		return true
	}
	if count != 2 && count != 3 {
		return false
	}

	for _, e := range emptyCorners {
		if hasOpposingNeighborStone(g, e, color) {
			continue
		}
		if c, _ := eyeCornerCount(g, e, color); c == 2 || c == 3 {
			return true
		}
	}
	return false
}

// eyeCornerCount returns the number of coord's four diagonal corners that are either off
// board or a same-color stone, plus the coordinates of whichever corners are empty and
// on-board. Used both for the point under test and for a one-level-deep check of its own
// empty corners.
func eyeCornerCount(g *Goban, coord Coord, color Color) (int, []Coord) {
	count := 0
	var emptyCorners []Coord
	for _, corner := range g.Size().Corners(coord) {
		switch {
		case !corner.OnBoard:
			count++
		default:
			if c, ok := g.GetColor(corner.Coord); ok && c == color {
				count++
			} else if !ok {
				emptyCorners = append(emptyCorners, corner.Coord)
			}
		}
	}
	return count, emptyCorners
}

// hasOpposingNeighborStone reports whether any occupied orthogonal neighbor of coord is a
// stone of the opposing color. Unlike the full cross check above, an empty neighbor here
// is tolerated rather than disqualifying: a candidate corner only needs to be free of
// enemy stones, not itself fully surrounded.
func hasOpposingNeighborStone(g *Goban, coord Coord, color Color) bool {
	for _, n := range g.Size().Neighbors(coord) {
		if c, ok := g.GetColor(n); ok && c != color {
			return true
		}
	}
	return false
}
