package search

import (
	"fmt"

	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Strategy selects the expansion order of a Queue.
type Strategy int

const (
	// Priority pops the state with the shortest border first; equal borders
	// leave in insertion order.
	Priority Strategy = iota
	// Stack pops the most recently pushed state first.
	Stack
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Priority:
		return "priority"
	case Stack:
		return "stack"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Queue is the work list of search states.
type Queue interface {
	// Push stores a deep copy of s.
	Push(s *State)
	// Pop removes and returns the next state, or ErrEmptyQueue.
	Pop() (*State, error)
	// Peek returns a copy of the next state without removing it, or ErrEmptyQueue.
	Peek() (*State, error)
	// IsEmpty reports whether no state is stored.
	IsEmpty() bool
	// Len returns the number of stored states.
	Len() int
}

// New returns an empty queue for the given strategy.
func New(strategy Strategy) (Queue, error) {
	switch strategy {
	case Priority:
		return newPriorityQueue(), nil
	case Stack:
		return &stackQueue{stack: arraystack.New()}, nil
	default:
		return nil, fmt.Errorf("search: %v: %w", strategy, ErrUnknownStrategy)
	}
}

// item pairs a state with its insertion sequence for stable ordering.
type item struct {
	state *State
	seq   uint64
}

type priorityQueue struct {
	heap *priorityqueue.Queue
	seq  uint64
}

func newPriorityQueue() *priorityQueue {
	return &priorityQueue{heap: priorityqueue.NewWith(byBorderThenSeq)}
}

// byBorderThenSeq orders items by border length, then by insertion sequence.
func byBorderThenSeq(a, b interface{}) int {
	x, y := a.(item), b.(item)
	lx, ly := len(x.state.Border), len(y.state.Border)
	switch {
	case lx < ly:
		return -1
	case lx > ly:
		return 1
	case x.seq < y.seq:
		return -1
	case x.seq > y.seq:
		return 1
	default:
		return 0
	}
}

func (q *priorityQueue) Push(s *State) {
	q.heap.Enqueue(item{state: s.Clone(), seq: q.seq})
	q.seq++
}

func (q *priorityQueue) Pop() (*State, error) {
	v, ok := q.heap.Dequeue()
	if !ok {
		return nil, ErrEmptyQueue
	}

	return v.(item).state, nil
}

func (q *priorityQueue) Peek() (*State, error) {
	v, ok := q.heap.Peek()
	if !ok {
		return nil, ErrEmptyQueue
	}

	return v.(item).state.Clone(), nil
}

func (q *priorityQueue) IsEmpty() bool { return q.heap.Empty() }
func (q *priorityQueue) Len() int      { return q.heap.Size() }

type stackQueue struct {
	stack *arraystack.Stack
}

func (q *stackQueue) Push(s *State) { q.stack.Push(s.Clone()) }

func (q *stackQueue) Pop() (*State, error) {
	v, ok := q.stack.Pop()
	if !ok {
		return nil, ErrEmptyQueue
	}

	return v.(*State), nil
}

func (q *stackQueue) Peek() (*State, error) {
	v, ok := q.stack.Peek()
	if !ok {
		return nil, ErrEmptyQueue
	}

	return v.(*State).Clone(), nil
}

func (q *stackQueue) IsEmpty() bool { return q.stack.Empty() }
func (q *stackQueue) Len() int      { return q.stack.Size() }
