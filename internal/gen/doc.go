// Package gen implements the self-similar structure generators.
//
//   - [Squares]: nested squares, each inset by λ along its edges
//   - [Tree]: a three-way branching tree in the plane
//   - [Tree3D]: the same tree grown on a cube face and projected
//
// Generators are deterministic given their inputs except for the branch
// angle and colour picks, which come from an injected [Rand].
package gen
