// Package edge models the profile of one side of a jigsaw piece and the
// pairwise compatibility rule between two profiles.
//
// What:
//
//   - Shape is a closed enum: Straight (flat), Male (protruding tab) and
//     Female (receiving socket).
//   - Compatible reports whether two shapes interlock.
//
// Rules:
//
//   - Male interlocks with Female, in either order.
//   - Straight interlocks with nothing, not even another Straight: two flat
//     edges meeting means both pieces sit on the puzzle boundary there.
//
// Complexity:
//
//   - Compatible: O(1), total over the 3×3 shape space.
//
// Errors:
//
//   - ErrUnknownShape: ParseShape was given a name outside the three shapes.
package edge
