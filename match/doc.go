// Package match decides whether two jigsaw pieces can be joined along a
// shared edge.
//
// What:
//
//   - IsMatch returns the boolean decision for an ordered pair of pieces.
//   - Match returns the same decision with a Result trace naming the rule
//     that fired and the side it fired on.
//   - Matcher carries options, notably a zap logger for debug tracing.
//   - FindRotation searches the four orientations of the second piece.
//
// Rules, by ordered role pair (first applicable wins):
//
//  1. Corner × Corner: never.
//  2. Corner/Border × Corner/Border: on a side where both pieces are
//     Straight, with perpendiculars (a, b), match if p1[a]~p2[a] or p1[b]~p2[a].
//  3. Border × Middle (either order): for each straight side s of the
//     border piece, match if border[opposite(s)] ~ middle[s].
//  4. Middle × Middle: match if p1[s] ~ p2[s] for some side s.
//
// Any other pair, including anything involving an Invalid piece, never
// matches. "~" is edge.Compatible. Sides are scanned Top, Right, Bottom, Left.
//
// Rule 2 compares both perpendiculars of p1 against p2's first
// perpendicular, so Match(p1, p2) and Match(p2, p1) may differ.
//
// Complexity: every operation is O(1). Matchers hold no mutable state and
// are safe for concurrent use.
package match
