// Package viz draws panel frames as terminal text.
//
// [Canvas] packs 2x4 pixels into each braille cell and implements
// raster.Surface, so any frame can be flushed straight into it.
package viz
