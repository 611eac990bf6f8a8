// Package raster provides the pixel-level drawing primitives for small RGB panels.
//
// Everything reaches the panel through a single primitive, [Surface.DrawPixel]:
//
//   - [DrawLine]: integer Bresenham line walk
//   - [Framebuffer]: in-memory frame that is flushed once drawing is complete
//   - [Viewport]: origin-centred virtual coordinates on top of any surface
//
// Out-of-range pixels are dropped silently; a line that leaves the panel is
// clipped one pixel at a time rather than rejected.
package raster
