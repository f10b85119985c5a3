// Package render draws carved mazes.
//
// Outputs:
//
//   - Text / WriteText: "+---+" ASCII boxes, optionally showing the last
//     base-36 digit of each cell's distance.
//   - Image: rectangular raster, walls rasterized with
//     golang.org/x/image/vector and cells shaded by distance.
//   - PolarImage: rings of sectors for grid.Polar.
//   - Draw / View: the text layout with box-drawing runes on a tcell screen.
//
// Colors come from a Palette of go-colorful colors; the distance gradient
// blends Near into Far in RGB space. WithPath overlays a solution route on
// every renderer except Text.
//
// Renderers only read the grid and the distances.
package render
