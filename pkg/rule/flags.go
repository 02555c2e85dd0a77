// Package rule composes the board engine's legality predicates into complete moves: a
// Rule configuration (komi, which optional legality checks apply, how territory is
// scored), and a Match that threads turn order, prisoners, the ko point, and the
// superko repetition set through a sequence of plays.
package rule

import "strings"

// IllegalFlags is the set of legality predicates a Rule opts into, beyond the
// always-on point-empty check. 4 bits.
type IllegalFlags uint8

const (
	Ko IllegalFlags = 1 << iota
	Superko
	Suicide
	FillEye
)

// AllIllegalFlags forbids ko, superko, suicide, and eye-filling: the common default.
const AllIllegalFlags = Ko | Superko | Suicide | FillEye

// Has returns true iff all the given flags are set.
func (f IllegalFlags) Has(flags IllegalFlags) bool {
	return f&flags == flags
}

func (f IllegalFlags) String() string {
	if f == 0 {
		return "-"
	}

	var sb strings.Builder
	if f.Has(Ko) {
		sb.WriteString("k")
	}
	if f.Has(Superko) {
		sb.WriteString("s")
	}
	if f.Has(Suicide) {
		sb.WriteString("S")
	}
	if f.Has(FillEye) {
		sb.WriteString("e")
	}
	return sb.String()
}

// ScoreFlags configures how CalculateScore counts a side's score. 1 bit. Dead stones are
// not resolved: every stone on the board counts as alive.
type ScoreFlags uint8

const (
	// AreaScoring counts a player's own stones in addition to surrounded territory
	// (Chinese rules). Without it, only territory and captures count (Japanese rules).
	AreaScoring ScoreFlags = 1 << iota
)

// Has returns true iff all the given flags are set.
func (f ScoreFlags) Has(flags ScoreFlags) bool {
	return f&flags == flags
}

func (f ScoreFlags) String() string {
	if f.Has(AreaScoring) {
		return "area"
	}
	return "territory"
}
