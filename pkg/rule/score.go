package rule

import "github.com/herohde/gogoban/pkg/board"

// CalculateScore computes each side's score under rule. With AreaScoring (Chinese
// rules), a side's score is its living stones plus the territory it surrounds. Without
// it (Japanese rules), a side's score is its territory plus prisoners taken.
//
// Territory is computed by flood-filling each maximal empty region and crediting it to
// whichever single color borders the entire region; a region bordered by both colors
// (or neither, on an empty board) counts towards nobody.
func CalculateScore(g *board.Goban, rule Rule, prisoners board.Prisoners) (black, white float64) {
	blackStones, whiteStones := g.NumberOfStones()
	blackTerritory, whiteTerritory := floodFillTerritory(g)

	if rule.Score.Has(AreaScoring) {
		return float64(blackStones + blackTerritory), float64(whiteStones + whiteTerritory)
	}
	return float64(blackTerritory + prisoners.Black), float64(whiteTerritory + prisoners.White)
}

// floodFillTerritory partitions the empty points of g into maximal orthogonally
// connected regions and credits each region to the single color bordering it, if any.
func floodFillTerritory(g *board.Goban) (black, white int) {
	size := g.Size()
	visited := make(map[board.Coord]bool)

	for _, start := range g.GetEmptyCoords() {
		if visited[start] {
			continue
		}

		region := []board.Coord{start}
		visited[start] = true

		borders := map[board.Color]bool{}
		queue := []board.Coord{start}
		for len(queue) > 0 {
			c := queue[len(queue)-1]
			queue = queue[:len(queue)-1]

			for _, n := range size.Neighbors(c) {
				if color, ok := g.GetColor(n); ok {
					borders[color] = true
					continue
				}
				if !visited[n] {
					visited[n] = true
					region = append(region, n)
					queue = append(queue, n)
				}
			}
		}

		switch {
		case borders[board.Black] && !borders[board.White]:
			black += len(region)
		case borders[board.White] && !borders[board.Black]:
			white += len(region)
		}
	}

	return black, white
}
