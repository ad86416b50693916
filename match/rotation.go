package match

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/jigmatch/piece"
)

// FindRotation tries p2 in each of its four orientations (0..3 quarter turns
// clockwise) and reports the first one that matches p1.
// When nothing matches, ok is false and res is the unrotated result.
func (m *Matcher) FindRotation(p1, p2 piece.Piece) (turns int, res Result, ok bool) {
	first := m.Match(p1, p2)
	if first.Matched {
		return 0, first, true
	}
	cur := p2
	for turns = 1; turns < 4; turns++ {
		cur = piece.Rotate(cur)
		if r := m.Match(p1, cur); r.Matched {
			m.log.Debug("matched after rotation",
				zap.String("p1", p1.ID()),
				zap.String("p2", p2.ID()),
				zap.Int("turns", turns),
			)
			return turns, r, true
		}
	}
	return 0, first, false
}

// FindRotation uses the default Matcher.
func FindRotation(p1, p2 piece.Piece) (int, Result, bool) {
	return defaultMatcher.FindRotation(p1, p2)
}
