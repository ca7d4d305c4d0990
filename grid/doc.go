// Package grid implements the pure table model for cellgrid: row/column sizing,
// cells with merge spans, hit testing, and merge-aware selection.
//
// Cell coordinates are 0-based (Row, Col) in grid cells.
// Areas are half-open in grid-cell units: [Top, Bottom) x [Left, Right).
// Pixel coordinates are float64 and relative to the table's top-left corner.
//
// Every public mutation either applies in full or is rejected in full; it
// reports which through a Result and never panics on invalid input.
package grid
