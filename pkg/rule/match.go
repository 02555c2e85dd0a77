package rule

import (
	"context"
	"fmt"

	"github.com/herohde/gogoban/pkg/board"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Match tracks everything a Goban itself does not own: whose turn it is, consecutive
// passes, prisoner counts, the ko point, the set of previously reached Zobrist hashes
// (for superko), and the final result once the game ends. Not thread-safe.
type Match struct {
	rule Rule
	g    *board.Goban

	turn      board.Color
	passes    int
	prisoners board.Prisoners
	koPoint   lang.Optional[board.Coord]

	seen map[board.ZobristHash]bool

	result Result
	over   bool
}

// NewMatch starts a new match on an empty goban of the given size under rule.
func NewMatch(size board.Size, rule Rule) *Match {
	g := board.NewGoban(size)
	return &Match{
		rule: rule,
		g:    g,
		turn: board.Black,
		seen: map[board.ZobristHash]bool{g.ZobristHash(): true},
	}
}

// Goban returns the current board position. Callers must not mutate it directly.
func (m *Match) Goban() *board.Goban {
	return m.g
}

// Turn returns the color to move.
func (m *Match) Turn() board.Color {
	return m.turn
}

// Prisoners returns the current prisoner counts.
func (m *Match) Prisoners() board.Prisoners {
	return m.prisoners
}

// KoPoint returns the current ko point, if any.
func (m *Match) KoPoint() (board.Coord, bool) {
	return m.koPoint.V()
}

// IsOver returns true iff the match has concluded.
func (m *Match) IsOver() bool {
	return m.over
}

// Outcome returns the final result. Only meaningful once IsOver returns true.
func (m *Match) Outcome() Result {
	return m.result
}

// CheckLegal reports whether playing color at coord is legal under the match's rule,
// and an error identifying the violated predicate if not.
func (m *Match) CheckLegal(coord Coord, color board.Color) error {
	if m.over {
		return fmt.Errorf("rule: match is over")
	}
	if !m.g.Size().InBounds(coord) {
		return fmt.Errorf("rule: %v is off board", coord)
	}
	if !board.PointEmpty(m.g, coord) {
		return board.ErrPointNotEmpty
	}

	if m.rule.Illegal.Has(Ko) {
		if ko, ok := m.koPoint.V(); ok && board.Ko(ko, true, coord) {
			return board.ErrKo
		}
	}

	stone := board.Stone{Coord: coord, Color: color}

	if !m.rule.Illegal.Has(Suicide) {
		// Suicide allowed: nothing to check here, it is resolved at capture time.
	} else if board.Suicide(m.g, stone) {
		return board.ErrSuicide
	}

	if m.rule.Illegal.Has(FillEye) && board.FillEye(m.g, coord, color) {
		return board.ErrFillEye
	}

	if m.rule.Illegal.Has(Superko) {
		suicideAllowed := !m.rule.Illegal.Has(Suicide)
		if board.Superko(m.g, stone, suicideAllowed, m.prisoners, m.seen) {
			return board.ErrSuperko
		}
	}

	return nil
}

// Coord is re-exported for callers that only import pkg/rule.
type Coord = board.Coord

// TryPlay checks legality before mutating the match; it is a no-op on illegal moves.
func (m *Match) TryPlay(ctx context.Context, coord Coord, color board.Color) error {
	if err := m.CheckLegal(coord, color); err != nil {
		return err
	}
	return m.play(ctx, coord, color)
}

// Play is an alias for TryPlay, for callers that prefer the shorter name.
func (m *Match) Play(ctx context.Context, coord Coord, color board.Color) error {
	return m.TryPlay(ctx, coord, color)
}

func (m *Match) play(ctx context.Context, coord Coord, color board.Color) error {
	suicideAllowed := !m.rule.Illegal.Has(Suicide)

	dead, added := m.g.PlaceWithFeedback(coord, color)
	prisoners, koLinear, hasKo := m.g.RemoveCaptured(color, suicideAllowed, m.prisoners, dead, added)

	m.prisoners = prisoners
	if hasKo {
		m.koPoint = lang.Some(m.g.Size().FromLinear(koLinear))
	} else {
		m.koPoint = lang.Optional[board.Coord]{}
	}
	m.seen[m.g.ZobristHash()] = true
	m.passes = 0
	m.turn = m.turn.Opponent()

	logw.Infof(ctx, "play %v@%v: prisoners=%v ko=%v", color, coord, m.prisoners, m.koPoint)
	return nil
}

// Pass passes the current player's turn. Two consecutive passes end the match.
func (m *Match) Pass(ctx context.Context) {
	if m.over {
		return
	}

	m.passes++
	m.koPoint = lang.Optional[board.Coord]{}
	m.turn = m.turn.Opponent()

	logw.Infof(ctx, "pass (count=%v)", m.passes)

	if m.passes >= 2 {
		m.finishByScore(ctx)
	}
}

// Resign ends the match immediately with color losing.
func (m *Match) Resign(ctx context.Context, color board.Color) {
	if m.over {
		return
	}

	m.over = true
	m.result = Result{Outcome: WinByResign, Winner: color.Opponent()}
	logw.Infof(ctx, "%v resigns: %v", color, m.result)
}

func (m *Match) finishByScore(ctx context.Context) {
	black, white := CalculateScore(m.g, m.rule, m.prisoners)
	white += m.rule.Komi

	m.over = true
	switch {
	case black > white:
		m.result = Result{Outcome: WinByScore, Winner: board.Black, Margin: black - white}
	case white > black:
		m.result = Result{Outcome: WinByScore, Winner: board.White, Margin: white - black}
	default:
		m.result = Result{Outcome: Draw}
	}
	logw.Infof(ctx, "match over: black=%v white=%v (komi=%v) -> %v", black, white, m.rule.Komi, m.result)
}

// PlayForVerification clones the match's goban and speculatively replays a placement
// plus capture resolution, returning the resulting Zobrist hash without mutating the
// match. This is the same clone-and-replay that board.Superko performs internally (it does
// not call this method); it is exposed here for callers (e.g. move generation) that want
// to probe a hash without going through CheckLegal.
func (m *Match) PlayForVerification(coord Coord, color board.Color) board.ZobristHash {
	suicideAllowed := !m.rule.Illegal.Has(Suicide)

	clone := m.g.Clone()
	dead, added := clone.PlaceWithFeedback(coord, color)
	clone.RemoveCaptured(color, suicideAllowed, m.prisoners, dead, added)
	return clone.ZobristHash()
}

// Legals returns every coordinate that is currently a legal move for color. O(board²)
// since it probes CheckLegal at every empty point; callers doing move generation in a
// hot loop should cache or restrict the candidate set.
func (m *Match) Legals(color board.Color) []Coord {
	var ret []Coord
	for _, coord := range m.g.GetEmptyCoords() {
		if m.CheckLegal(coord, color) == nil {
			ret = append(ret, coord)
		}
	}
	return ret
}

func (m *Match) String() string {
	ko, hasKo := m.koPoint.V()
	if !hasKo {
		return fmt.Sprintf("match{turn=%v, prisoners=%v, ko=none, over=%v}", m.turn, m.prisoners, m.over)
	}
	return fmt.Sprintf("match{turn=%v, prisoners=%v, ko=%v, over=%v}", m.turn, m.prisoners, ko, m.over)
}
