package piece

import "github.com/katalvlaran/jigmatch/edge"

// Rotate returns p turned a quarter clockwise: the old top becomes the new
// right, right becomes bottom, bottom becomes left and left becomes top.
// The ID is kept and the role recomputed. p itself is unchanged.
// Complexity: O(1).
func Rotate(p Piece) Piece {
	return build(p.id, [4]edge.Shape{
		Top:    p.edges[Left],
		Right:  p.edges[Top],
		Bottom: p.edges[Right],
		Left:   p.edges[Bottom],
	})
}

// RotateN turns p by n quarter turns clockwise. n is reduced mod 4, so
// negative values turn counter-clockwise.
func RotateN(p Piece, n int) Piece {
	n %= 4
	if n < 0 {
		n += 4
	}
	for i := 0; i < n; i++ {
		p = Rotate(p)
	}
	return p
}
