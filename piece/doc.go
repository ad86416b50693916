// Package piece builds immutable jigsaw pieces from four edge shapes and
// classifies their structural role.
//
// What:
//
//   - Side names the four sides of a piece (Top, Right, Bottom, Left) and
//     knows its opposite and perpendicular sides.
//   - Piece holds an opaque caller-assigned ID and one edge.Shape per side.
//   - Role is derived on construction from the number of Straight edges:
//     2 → Corner, 1 → Border, 0 → Middle, 3 or 4 → Invalid.
//   - Rotate returns a new Piece turned a quarter clockwise; the receiver is
//     never mutated.
//
// An Invalid role is not a construction error. Matchers treat such pieces
// as matching nothing.
//
// Errors:
//
//   - ErrInvalidShape: an edge is outside {Straight, Male, Female}.
//   - ErrMissingSide:  FromMap got fewer than four sides.
//   - ErrUnknownSide:  FromMap got a key outside the four sides.
package piece
