package rule

import (
	"fmt"

	"github.com/herohde/gogoban/pkg/board"
)

// Color is re-exported for callers that only import pkg/rule.
type Color = board.Color

// Outcome identifies how a Match ended.
type Outcome uint8

const (
	NotOver Outcome = iota
	WinByScore
	WinByResign
	Draw
)

func (o Outcome) String() string {
	switch o {
	case NotOver:
		return "not over"
	case WinByScore:
		return "win by score"
	case WinByResign:
		return "win by resignation"
	case Draw:
		return "draw"
	default:
		return "?"
	}
}

// Result is the final outcome of a Match: how it ended, who won (color is only
// meaningful when Outcome != Draw && Outcome != NotOver), and the margin in points when
// decided by score.
type Result struct {
	Outcome Outcome
	Winner  Color
	Margin  float64
}

func (r Result) String() string {
	switch r.Outcome {
	case WinByScore:
		return fmt.Sprintf("%v wins by %.1f", r.Winner, r.Margin)
	case WinByResign:
		return fmt.Sprintf("%v wins by resignation", r.Winner)
	default:
		return r.Outcome.String()
	}
}
