package match

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/jigmatch/edge"
	"github.com/katalvlaran/jigmatch/piece"
)

// Matcher evaluates piece pairs. The zero value is not usable; build one
// with NewMatcher.
type Matcher struct {
	log *zap.Logger
}

// NewMatcher returns a Matcher with the given options applied.
// By default nothing is logged.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{log: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var defaultMatcher = NewMatcher()

// IsMatch reports whether p1 and p2 can be joined. See the package
// documentation for the rules.
func IsMatch(p1, p2 piece.Piece) bool {
	return defaultMatcher.Match(p1, p2).Matched
}

// Match is IsMatch with a Result trace.
func Match(p1, p2 piece.Piece) Result {
	return defaultMatcher.Match(p1, p2)
}

// IsMatch reports whether p1 and p2 can be joined.
func (m *Matcher) IsMatch(p1, p2 piece.Piece) bool {
	return m.Match(p1, p2).Matched
}

// Match dispatches on the ordered role pair and returns the decision with
// its trace. The first applicable rule set decides; none falls through.
func (m *Matcher) Match(p1, p2 piece.Piece) Result {
	r1, r2 := p1.Role(), p2.Role()
	log := m.log.With(zap.String("p1", p1.ID()), zap.String("p2", p2.ID()))

	var res Result
	switch {
	case r1 == piece.Corner && r2 == piece.Corner:
		res = Result{Rule: RuleCornerCorner}
	case outer(r1) && outer(r2):
		res = matchOuterEdge(log, p1, p2)
	case r1 == piece.Border && r2 == piece.Middle:
		res = matchBorderMiddle(log, p1, p2)
	case r1 == piece.Middle && r2 == piece.Border:
		res = matchBorderMiddle(log, p2, p1)
	case r1 == piece.Middle && r2 == piece.Middle:
		res = matchMiddleMiddle(log, p1, p2)
	default:
		res = Result{Rule: RuleNone}
	}
	res.Roles = [2]piece.Role{r1, r2}

	log.Debug("match decided",
		zap.Bool("matched", res.Matched),
		zap.Stringer("rule", res.Rule),
		zap.Stringer("role1", r1),
		zap.Stringer("role2", r2),
	)
	return res
}

func outer(r piece.Role) bool {
	return r == piece.Corner || r == piece.Border
}

// matchOuterEdge looks for a side where both pieces are straight and one of
// p1's perpendicular edges interlocks with p2's first perpendicular edge.
func matchOuterEdge(log *zap.Logger, p1, p2 piece.Piece) Result {
	res := Result{Rule: RuleOuterEdge}
	for _, s := range piece.Sides {
		if p1.Edge(s) != edge.Straight || p2.Edge(s) != edge.Straight {
			continue
		}
		a, b := s.Perpendiculars()
		log.Debug("shared straight side", zap.Stringer("side", s))

		// Both branches compare against p2[a]; see DESIGN.md.
		if edge.Compatible(p1.Edge(a), p2.Edge(a)) {
			return Result{Matched: true, Rule: RuleOuterEdge, Side: s, Via: a}
		}
		if edge.Compatible(p1.Edge(b), p2.Edge(a)) {
			return Result{Matched: true, Rule: RuleOuterEdge, Side: s, Via: b}
		}
		log.Debug("perpendicular sides do not connect",
			zap.Stringer("side", s),
			zap.Stringer("p1."+a.String(), p1.Edge(a)),
			zap.Stringer("p1."+b.String(), p1.Edge(b)),
			zap.Stringer("p2."+a.String(), p2.Edge(a)),
		)
	}
	return res
}

// matchBorderMiddle compares, for each straight side s of the border piece,
// the border edge opposite s with the middle piece's edge on s.
func matchBorderMiddle(log *zap.Logger, border, middle piece.Piece) Result {
	for _, s := range border.StraightSides() {
		opp := s.Opposite()
		if edge.Compatible(border.Edge(opp), middle.Edge(s)) {
			return Result{Matched: true, Rule: RuleBorderMiddle, Side: s, Via: opp}
		}
		log.Debug("border opposite edge does not connect",
			zap.Stringer("side", s),
			zap.Stringer("border", border.Edge(opp)),
			zap.Stringer("middle", middle.Edge(s)),
		)
	}
	return Result{Rule: RuleBorderMiddle}
}

// matchMiddleMiddle returns on the first same-named side whose edges interlock.
func matchMiddleMiddle(log *zap.Logger, p1, p2 piece.Piece) Result {
	for _, s := range piece.Sides {
		if edge.Compatible(p1.Edge(s), p2.Edge(s)) {
			return Result{Matched: true, Rule: RuleMiddleMiddle, Side: s, Via: s}
		}
	}
	log.Debug("no same-named side connects")
	return Result{Rule: RuleMiddleMiddle}
}
