package rule

import "fmt"

// Rule bundles the komi and the legality/scoring flags a Match is played under.
type Rule struct {
	Komi    float64
	Illegal IllegalFlags
	Score   ScoreFlags
}

// Option configures a Rule at construction time.
type Option func(*Rule)

// WithKomi sets the compensation added to White's score.
func WithKomi(komi float64) Option {
	return func(r *Rule) {
		r.Komi = komi
	}
}

// WithIllegal sets which legality predicates a Match enforces.
func WithIllegal(flags IllegalFlags) Option {
	return func(r *Rule) {
		r.Illegal = flags
	}
}

// WithScore sets how a Match computes its final score.
func WithScore(flags ScoreFlags) Option {
	return func(r *Rule) {
		r.Score = flags
	}
}

// NewRule builds a Rule from the given options, defaulting to no komi, all legality
// checks enabled, and territory scoring.
func NewRule(opts ...Option) Rule {
	r := Rule{
		Illegal: AllIllegalFlags,
	}
	for _, fn := range opts {
		fn(&r)
	}
	return r
}

// Chinese is the conventional Chinese ruleset: 7.5 komi, area scoring, suicide
// forbidden.
func Chinese(opts ...Option) Rule {
	return NewRule(append([]Option{WithKomi(7.5), WithScore(AreaScoring)}, opts...)...)
}

// Japanese is the conventional Japanese ruleset: 6.5 komi, territory scoring, suicide
// forbidden.
func Japanese(opts ...Option) Rule {
	return NewRule(append([]Option{WithKomi(6.5)}, opts...)...)
}

func (r Rule) String() string {
	return fmt.Sprintf("{komi=%v, illegal=%v, score=%v}", r.Komi, r.Illegal, r.Score)
}
