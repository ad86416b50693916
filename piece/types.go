package piece

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for piece construction.
var (
	// ErrInvalidShape indicates an edge value outside {Straight, Male, Female}.
	ErrInvalidShape = errors.New("piece: invalid edge shape")
	// ErrMissingSide indicates an edge mapping without all four sides.
	ErrMissingSide = errors.New("piece: missing side")
	// ErrUnknownSide indicates an edge mapping keyed by a side that does not exist.
	ErrUnknownSide = errors.New("piece: unknown side")
)

// Side identifies one of the four sides of a rectangular piece.
type Side int

const (
	// Top is the upper side.
	Top Side = iota
	// Right is the right-hand side.
	Right
	// Bottom is the lower side.
	Bottom
	// Left is the left-hand side.
	Left
)

// Sides lists the four sides in clockwise order starting at Top.
// Matching rules iterate sides in this order.
var Sides = [4]Side{Top, Right, Bottom, Left}

var sideNames = [4]string{"top", "right", "bottom", "left"}

// Valid reports whether s is one of the four sides.
func (s Side) Valid() bool {
	return s >= Top && s <= Left
}

func (s Side) String() string {
	if !s.Valid() {
		return fmt.Sprintf("side(%d)", int(s))
	}
	return sideNames[s]
}

// Opposite returns the side directly across: Top↔Bottom, Left↔Right.
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// Perpendiculars returns the two sides at 90° to s.
// Top and Bottom yield (Left, Right); Left and Right yield (Top, Bottom).
func (s Side) Perpendiculars() (Side, Side) {
	if s == Top || s == Bottom {
		return Left, Right
	}
	return Top, Bottom
}

// ParseSide converts a case-insensitive side name into a Side.
func ParseSide(name string) (Side, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, sn := range sideNames {
		if sn == n {
			return Side(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSide, name)
}

// Role is the structural classification of a piece.
type Role int

const (
	// Middle pieces have no straight edge.
	Middle Role = iota
	// Border pieces have exactly one straight edge.
	Border
	// Corner pieces have exactly two straight edges.
	Corner
	// Invalid pieces have three or four straight edges and cannot belong
	// to a well-formed rectangular puzzle.
	Invalid
)

var roleNames = [4]string{"MIDDLE", "BORDER", "CORNER", "INVALID"}

func (r Role) String() string {
	if r < Middle || r > Invalid {
		return fmt.Sprintf("ROLE(%d)", int(r))
	}
	return roleNames[r]
}

// roleFor maps a straight-edge count to its Role.
func roleFor(straight int) Role {
	switch straight {
	case 0:
		return Middle
	case 1:
		return Border
	case 2:
		return Corner
	default:
		return Invalid
	}
}
