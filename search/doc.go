// Package search holds the state that the star-graph generator threads
// through its work list, and the work list itself.
//
// What:
//
//   - Triad: three cyclically consecutive border vertices (Prev, Middle, Next).
//     Contracting a triad removes Middle from the border and adds the chord
//     (Prev, Next).
//   - State: adjacency snapshot, border cycle, index of the triad to contract
//     next and the ordered list of vertices clipped so far.
//   - Queue: Push/Pop/Peek over states with two strategies:
//     Priority (shortest border first, FIFO among equals) and Stack (LIFO).
//
// Ownership:
//
//   - Push stores a deep copy, so callers may keep mutating their state.
//   - Pop hands the stored state to the caller; the queue keeps no reference.
//
// Errors:
//
//   - ErrEmptyQueue: Pop or Peek on an empty queue.
//   - ErrUnknownStrategy: New called with an unsupported Strategy.
//   - ErrTargetOutOfRange: State.Triad with an index outside the border.
package search
