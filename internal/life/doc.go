// Package life implements the bit-packed Game of Life engine.
//
// The package centers on [Grid], a fixed-size board storing one cell per bit
// in 64-bit words:
//
//   - [Grid.Update]: advances one generation (B3/S23) into a fresh buffer,
//     fanning neighbor counting out over rows
//   - [Grid.CountNeighbors]: Moore neighborhood under a [Boundary] policy
//   - [Grid.SaveToFile] / [Grid.LoadFromFile]: binary board persistence
//
// # Thread Safety
//
// Grid instances are NOT thread-safe. Update parallelizes internally over
// the frozen prior state; callers must not mutate a grid concurrently.
package life
