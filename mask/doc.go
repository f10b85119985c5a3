// Package mask provides boolean occupancy maps that select which lattice
// positions take part in a maze.
//
// What:
//
//   - Mask is a width×height array of booleans; true keeps a cell, false
//     removes it before any generation runs.
//   - ParseText/LoadText read the text format:
//
//     3 3
//     .x.
//     ...
//     .x.
//
//   - DecodeImage/LoadImage read any registered raster format (PNG, JPEG, GIF,
//     BMP, TIFF, WebP). Pure black pixels are removed, everything else is kept.
//
// Why:
//
//   - Irregular shapes: letters, rings, logos, rooms with holes.
//   - Grid construction copies the mask, so one Mask can seed many grids.
//
// Errors:
//
//   - ErrBadSize: non-positive dimensions.
//   - ErrMalformedHeader: first line is not "<width> <height>".
//   - ErrInvalidChar: a body character other than '.' or 'x'.
//   - ErrDimensionMismatch: row count or row length differs from the header.
//
// Complexity: every loader is O(W×H) time and memory.
package mask
