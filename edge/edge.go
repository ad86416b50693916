package edge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownShape indicates a shape name or value outside {Straight, Male, Female}.
var ErrUnknownShape = errors.New("edge: unknown shape")

// Shape is the geometric profile of one side of a piece.
// The zero value is Unknown and is never accepted by piece constructors.
type Shape int

const (
	// Unknown is the zero value; it marks an unset or invalid shape.
	Unknown Shape = iota
	// Straight is a flat edge on the outer boundary of the puzzle.
	Straight
	// Male is a protruding tab.
	Male
	// Female is a receiving socket.
	Female
)

// Shapes lists every valid shape in declaration order.
var Shapes = [...]Shape{Straight, Male, Female}

var shapeNames = map[Shape]string{
	Straight: "STRAIGHT",
	Male:     "MALE",
	Female:   "FEMALE",
}

// Valid reports whether s is one of Straight, Male or Female.
func (s Shape) Valid() bool {
	return s == Straight || s == Male || s == Female
}

// String returns the upper-case shape name, or "UNKNOWN(n)".
func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(s))
}

// ParseShape converts a case-insensitive shape name into a Shape.
// Returns an error wrapping ErrUnknownShape for anything else.
func ParseShape(name string) (Shape, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for s, sn := range shapeNames {
		if sn == n {
			return s, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Compatible reports whether a and b interlock: one Male and the other Female.
// Straight is compatible with nothing. Order does not matter.
// Complexity: O(1).
func Compatible(a, b Shape) bool {
	return (a == Male && b == Female) || (a == Female && b == Male)
}
