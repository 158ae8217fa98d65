// Package layout turns an ordered list of fields into the grid a protocol
// diagram is drawn from.
//
// # Pipeline
//
// Layout runs in four steps, each a pure function of the previous one:
//
//  1. [PackRows] greedily packs fields into rows of a fixed bit width,
//     splitting a field across rows when it does not fit.
//  2. [BuildDividers] computes the horizontal boundary between each pair of
//     adjacent rows (plus the top and bottom edges), tagging the parts of a
//     boundary that a field straddles.
//  3. [Sequence] interleaves dividers and rows top to bottom and decides which
//     segment of a multi-segment field carries its label.
//  4. [BuildMatrix] expands the sequence into a grid of [Element] values and
//     computes the 4-bit neighbour mask of every [Connector].
//
// Each logical bit column occupies two grid columns: a connector column and a
// content column. A segment of n bits therefore spans 2n grid columns: one
// connector followed by its content element repeated 2n-1 times.
//
// # Ownership
//
// Nothing in this package mutates caller-owned fields. [PackRows] copies its
// input and all row, divider and matrix values are created fresh for every
// call. Concurrent calls on the same field slice are safe.
package layout
