// Package fixtures loads pairwise match scenarios from YAML.
//
// A scenario names two pieces by their four edge shapes and the expected
// IsMatch outcome for the ordered pair:
//
//	scenarios:
//	  - name: corner meets border
//	    a: {id: "1", top: male, right: female, bottom: straight, left: straight}
//	    b: {id: "2", top: male, right: male, bottom: straight, left: male}
//	    want: true
//	    rule: outer-edge
//
// Default returns the reference scenarios embedded in the package.
//
// Errors:
//
//   - ErrBadScenario: a scenario is malformed (unknown shape, empty name).
package fixtures
