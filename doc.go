// Package mazepath provides an informed shortest-path search over rectangular
// maze grids, with an optional per-cell trace for visualizers.
//
// It exposes three main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//   - SearchBatch: run many independent searches over one read-only grid with a worker pool.
//
// A single search is synchronous and single-threaded. The grid is only read,
// so it may be shared by concurrent searches.
package mazepath
