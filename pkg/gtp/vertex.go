package gtp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/herohde/gogoban/pkg/board"
)

// vertexLetters skips 'I', following GTP's convention of avoiding confusion with '1'.
const vertexLetters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

// parseVertex parses a GTP vertex ("pass", or e.g. "Q16") into a Coord, using the
// protocol's bottom-left origin with row 1 at the bottom. ok is false for "pass".
func parseVertex(size board.Size, s string) (coord board.Coord, ok bool, err error) {
	if strings.EqualFold(s, "pass") {
		return board.Coord{}, false, nil
	}
	if len(s) < 2 {
		return board.Coord{}, false, fmt.Errorf("gtp: invalid vertex %q", s)
	}

	col := strings.IndexByte(vertexLetters, byte(strings.ToUpper(s[:1])[0]))
	if col < 0 {
		return board.Coord{}, false, fmt.Errorf("gtp: invalid vertex %q", s)
	}

	line, err := strconv.Atoi(s[1:])
	if err != nil || line < 1 || line > size.Height {
		return board.Coord{}, false, fmt.Errorf("gtp: invalid vertex %q", s)
	}

	return board.Coord{Row: size.Height - line, Col: col}, true, nil
}

// formatVertex is the inverse of parseVertex.
func formatVertex(size board.Size, coord board.Coord) string {
	return fmt.Sprintf("%c%v", vertexLetters[coord.Col], size.Height-coord.Row)
}
