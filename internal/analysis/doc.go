// Package analysis classifies the long-run behavior of Game of Life
// patterns.
//
// An [Analyzer] seeds a board, advances it generation by generation, and
// watches the trajectory for terminal conditions:
//
//   - [Extinct]: population reached zero
//   - [Stable]: a prior state recurred (still life or oscillator)
//   - [Spaceship]: the centroid translates by a fixed displacement per period
//   - [Exploding]: sustained growth past the configured thresholds
//   - [Unknown]: the generation budget ran out first
//
// Cycle detection hashes the full board state per generation; a hash
// collision between distinct states could report a false cycle, which is an
// accepted approximation at analysis board sizes.
package analysis
