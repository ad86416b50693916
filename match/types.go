package match

import (
	"fmt"

	"github.com/katalvlaran/jigmatch/piece"
)

// Rule identifies which rule set decided a match.
type Rule int

const (
	// RuleNone means no rule set applies to the role pair
	// (Corner × Middle, or any Invalid piece).
	RuleNone Rule = iota
	// RuleCornerCorner rejects every pair of corners.
	RuleCornerCorner
	// RuleOuterEdge covers Corner/Border pairs sharing a straight side.
	RuleOuterEdge
	// RuleBorderMiddle covers a Border piece against a Middle piece.
	RuleBorderMiddle
	// RuleMiddleMiddle covers two Middle pieces.
	RuleMiddleMiddle
)

var ruleNames = [...]string{"none", "corner-corner", "outer-edge", "border-middle", "middle-middle"}

func (r Rule) String() string {
	if r < RuleNone || int(r) >= len(ruleNames) {
		return fmt.Sprintf("rule(%d)", int(r))
	}
	return ruleNames[r]
}

// Result is the outcome of one Match call together with a trace of why.
//
// Side and Via are meaningful only when Matched is true:
//   - RuleOuterEdge: Side is the shared straight side, Via the perpendicular
//     side of the first piece whose edge connected.
//   - RuleBorderMiddle: Side is the border piece's straight side, Via the
//     opposite side of the border piece that was compared.
//   - RuleMiddleMiddle: Side and Via are the same named side.
type Result struct {
	Matched bool
	Rule    Rule
	Side    piece.Side
	Via     piece.Side
	Roles   [2]piece.Role
}

func (r Result) String() string {
	if !r.Matched {
		return fmt.Sprintf("no match (%s, %s×%s)", r.Rule, r.Roles[0], r.Roles[1])
	}
	return fmt.Sprintf("match (%s, %s×%s) on %s via %s", r.Rule, r.Roles[0], r.Roles[1], r.Side, r.Via)
}
