// Package jigmatch decides whether two jigsaw pieces can be joined along a
// shared edge, given the shape of each piece's four edges.
//
// What is inside?
//
//	edge/     — Straight, Male and Female shapes and the Compatible predicate
//	piece/    — immutable Piece, Side geometry, Role classification, Rotate
//	match/    — IsMatch / Match with a structured trace, FindRotation
//	fixtures/ — YAML scenario tables, reference pairs embedded
//
// Roles come from the number of straight edges (2 corner, 1 border,
// 0 middle, 3+ invalid) and pick the rule set that decides a pair.
//
// Quick ASCII example (corner 1 beside border 2, straight bottoms):
//
//	   ──^──        ──^──
//	  |     (      ◀     ▶
//	   ─────        ─────
//
// The corner's Female right edge takes the border's Male left tab.
//
//	go get github.com/katalvlaran/jigmatch
package jigmatch
