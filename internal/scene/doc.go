// Package scene renders the four screensaver scenes onto a panel.
//
//   - [RotatedSquares]: random nested squares on black
//   - [BranchingTrees]: a forest on a sky gradient
//   - [Cube3D]: a rotated, shaded cube with its shadow and a tree on one face
//   - [HalfSphere3D]: shaded contour rings joined into a dome
//
// 2D scenes address the panel directly. 3D scenes project through a
// [geom.Camera] and draw in origin-centred coordinates via a
// [raster.Viewport].
//
// # Example
//
//	fb := raster.NewFramebuffer(scene.PanelWidth, scene.PanelHeight)
//	err := scene.Render(scene.Cube3D, scene.DefaultParams(), fb, display.NoDelay)
package scene
