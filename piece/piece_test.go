package piece_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jigmatch/edge"
	"github.com/katalvlaran/jigmatch/piece"
)

const (
	S = edge.Straight
	M = edge.Male
	F = edge.Female
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Roles checks the straight-count → role mapping.
func TestNew_Roles(t *testing.T) {
	cases := []struct {
		name                     string
		top, right, bottom, left edge.Shape
		want                     piece.Role
	}{
		{"Middle", M, F, M, F, piece.Middle},
		{"Border", S, M, F, M, piece.Border},
		{"Corner", M, F, S, S, piece.Corner},
		{"ThreeStraight", S, S, S, M, piece.Invalid},
		{"FourStraight", S, S, S, S, piece.Invalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := piece.New("p", tc.top, tc.right, tc.bottom, tc.left)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Role())
			assert.Equal(t, "p", p.ID())
		})
	}
}

// TestNew_RoleIndependentOfPosition permutes which sides are straight and
// verifies only the count matters.
func TestNew_RoleIndependentOfPosition(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		var edges [4]edge.Shape
		straight := 0
		for i := range edges {
			if mask&(1<<i) != 0 {
				edges[i] = S
				straight++
			} else {
				edges[i] = M
			}
		}
		p := piece.MustNew("p", edges[0], edges[1], edges[2], edges[3])
		want := map[int]piece.Role{0: piece.Middle, 1: piece.Border, 2: piece.Corner, 3: piece.Invalid, 4: piece.Invalid}[straight]
		assert.Equal(t, want, p.Role(), "mask %04b", mask)
		assert.Equal(t, straight, p.StraightCount(), "mask %04b", mask)
	}
}

func TestNew_InvalidShape(t *testing.T) {
	_, err := piece.New("bad", M, edge.Unknown, F, M)
	assert.ErrorIs(t, err, piece.ErrInvalidShape)

	_, err = piece.New("bad", M, F, edge.Shape(9), M)
	assert.ErrorIs(t, err, piece.ErrInvalidShape)

	assert.Panics(t, func() { piece.MustNew("bad", edge.Unknown, M, M, M) })
}

func TestFromMap(t *testing.T) {
	p, err := piece.FromMap("m", map[piece.Side]edge.Shape{
		piece.Top: S, piece.Right: M, piece.Bottom: F, piece.Left: M,
	})
	require.NoError(t, err)
	assert.Equal(t, piece.MustNew("m", S, M, F, M), p)

	_, err = piece.FromMap("m", map[piece.Side]edge.Shape{
		piece.Top: S, piece.Right: M, piece.Bottom: F,
	})
	assert.ErrorIs(t, err, piece.ErrMissingSide)

	_, err = piece.FromMap("m", map[piece.Side]edge.Shape{
		piece.Top: S, piece.Right: M, piece.Bottom: F, piece.Left: M, piece.Side(7): M,
	})
	assert.ErrorIs(t, err, piece.ErrUnknownSide)

	_, err = piece.FromMap("m", map[piece.Side]edge.Shape{
		piece.Top: S, piece.Right: M, piece.Bottom: F, piece.Left: edge.Unknown,
	})
	assert.ErrorIs(t, err, piece.ErrInvalidShape)
}

func TestPiece_Accessors(t *testing.T) {
	p := piece.MustNew("a", M, F, S, S)
	assert.Equal(t, M, p.Edge(piece.Top))
	assert.Equal(t, F, p.Edge(piece.Right))
	assert.Equal(t, edge.Unknown, p.Edge(piece.Side(-1)))
	assert.Equal(t, []piece.Side{piece.Bottom, piece.Left}, p.StraightSides())

	m := p.Edges()
	m[piece.Top] = S
	assert.Equal(t, M, p.Edge(piece.Top), "Edges must return a copy")

	assert.Equal(t, "a[CORNER top=MALE right=FEMALE bottom=STRAIGHT left=STRAIGHT]", p.String())
}

//----------------------------------------------------------------------------//
// Sides
//----------------------------------------------------------------------------//

func TestSide_Geometry(t *testing.T) {
	assert.Equal(t, piece.Bottom, piece.Top.Opposite())
	assert.Equal(t, piece.Top, piece.Bottom.Opposite())
	assert.Equal(t, piece.Left, piece.Right.Opposite())
	assert.Equal(t, piece.Right, piece.Left.Opposite())

	for _, s := range []piece.Side{piece.Top, piece.Bottom} {
		a, b := s.Perpendiculars()
		assert.Equal(t, piece.Left, a)
		assert.Equal(t, piece.Right, b)
	}
	for _, s := range []piece.Side{piece.Left, piece.Right} {
		a, b := s.Perpendiculars()
		assert.Equal(t, piece.Top, a)
		assert.Equal(t, piece.Bottom, b)
	}
}

func TestParseSide(t *testing.T) {
	for _, s := range piece.Sides {
		got, err := piece.ParseSide(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := piece.ParseSide("TOP")
	require.NoError(t, err)
	assert.Equal(t, piece.Top, got)

	_, err = piece.ParseSide("north")
	assert.ErrorIs(t, err, piece.ErrUnknownSide)
}

//----------------------------------------------------------------------------//
// Rotation
//----------------------------------------------------------------------------//

func TestRotate_Quarter(t *testing.T) {
	p := piece.MustNew("r", M, F, S, S)
	r := piece.Rotate(p)

	assert.Equal(t, piece.MustNew("r", S, M, F, S), r)
	assert.Equal(t, "r", r.ID())
	// original untouched
	assert.Equal(t, piece.MustNew("r", M, F, S, S), p)
}

// TestRotate_RoundTrip verifies rotate⁴ = identity and that the role never
// changes along the way.
func TestRotate_RoundTrip(t *testing.T) {
	pieces := []piece.Piece{
		piece.MustNew("corner", M, F, S, S),
		piece.MustNew("border", S, M, F, M),
		piece.MustNew("middle", F, M, M, F),
		piece.MustNew("invalid", S, S, S, F),
	}
	for _, p := range pieces {
		t.Run(p.ID(), func(t *testing.T) {
			cur := p
			for i := 1; i <= 4; i++ {
				cur = piece.Rotate(cur)
				assert.Equal(t, p.Role(), cur.Role(), "step %d", i)
				assert.Equal(t, piece.RotateN(p, i), cur, "step %d", i)
			}
			assert.Equal(t, p, cur)
		})
	}
}

func TestRotateN_Negative(t *testing.T) {
	p := piece.MustNew("n", M, F, S, S)
	assert.Equal(t, piece.RotateN(p, 3), piece.RotateN(p, -1))
	assert.Equal(t, p, piece.RotateN(p, 0))
	assert.Equal(t, piece.Rotate(p), piece.RotateN(p, 5))
}
