package piece

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/jigmatch/edge"
)

// Piece is one jigsaw piece. It is a comparable value type and is never
// mutated after construction; Rotate returns a new Piece.
type Piece struct {
	id    string
	edges [4]edge.Shape
	role  Role
}

// New builds a Piece from its four edges, in clockwise order from Top.
// Returns an error wrapping ErrInvalidShape if any edge is not a valid shape.
// A piece with three or four straight edges is built with Role Invalid.
// Complexity: O(1).
func New(id string, top, right, bottom, left edge.Shape) (Piece, error) {
	edges := [4]edge.Shape{top, right, bottom, left}
	for i, e := range edges {
		if !e.Valid() {
			return Piece{}, fmt.Errorf("New(%q) %s=%v: %w", id, Side(i), e, ErrInvalidShape)
		}
	}
	return build(id, edges), nil
}

// MustNew is like New but panics on error. Intended for literals in tests
// and examples.
func MustNew(id string, top, right, bottom, left edge.Shape) Piece {
	p, err := New(id, top, right, bottom, left)
	if err != nil {
		panic(err)
	}
	return p
}

// FromMap builds a Piece from a side→shape mapping.
// The mapping must hold exactly the four sides; otherwise the error wraps
// ErrUnknownSide (foreign key) or ErrMissingSide (absent side). Shapes are
// validated as in New.
func FromMap(id string, edges map[Side]edge.Shape) (Piece, error) {
	for s := range edges {
		if !s.Valid() {
			return Piece{}, fmt.Errorf("FromMap(%q) %v: %w", id, s, ErrUnknownSide)
		}
	}
	var arr [4]edge.Shape
	for _, s := range Sides {
		e, ok := edges[s]
		if !ok {
			return Piece{}, fmt.Errorf("FromMap(%q) %s: %w", id, s, ErrMissingSide)
		}
		arr[s] = e
	}
	return New(id, arr[Top], arr[Right], arr[Bottom], arr[Left])
}

// build assumes every edge is already valid.
func build(id string, edges [4]edge.Shape) Piece {
	p := Piece{id: id, edges: edges}
	p.role = roleFor(p.StraightCount())
	return p
}

// ID returns the caller-assigned identifier.
func (p Piece) ID() string { return p.id }

// Role returns the structural role derived from the edges.
func (p Piece) Role() Role { return p.role }

// Edge returns the shape on side s, or edge.Unknown for an invalid side.
func (p Piece) Edge(s Side) edge.Shape {
	if !s.Valid() {
		return edge.Unknown
	}
	return p.edges[s]
}

// Edges returns a fresh side→shape map; mutating it does not affect p.
func (p Piece) Edges() map[Side]edge.Shape {
	m := make(map[Side]edge.Shape, len(Sides))
	for _, s := range Sides {
		m[s] = p.edges[s]
	}
	return m
}

// StraightCount returns the number of Straight edges.
func (p Piece) StraightCount() int {
	n := 0
	for _, e := range p.edges {
		if e == edge.Straight {
			n++
		}
	}
	return n
}

// StraightSides returns the sides carrying a Straight edge, in Sides order.
func (p Piece) StraightSides() []Side {
	var out []Side
	for _, s := range Sides {
		if p.edges[s] == edge.Straight {
			out = append(out, s)
		}
	}
	return out
}

// String renders the piece as "id[CORNER top=MALE right=... ]".
func (p Piece) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%s", p.id, p.role)
	for _, s := range Sides {
		fmt.Fprintf(&b, " %s=%s", s, p.edges[s])
	}
	b.WriteByte(']')
	return b.String()
}
