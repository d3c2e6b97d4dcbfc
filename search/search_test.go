package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rdynamic/adjacency"
	"github.com/katalvlaran/rdynamic/search"
)

func state(border ...int) *search.State {
	return &search.State{
		Adjacency: adjacency.List{0: {1}, 1: {0}},
		Border:    border,
	}
}

func TestTriadAt_Wraps(t *testing.T) {
	border := []int{4, 7, 9, 2}
	assert.Equal(t, search.Triad{Prev: 2, Middle: 4, Next: 7}, search.TriadAt(border, 0))
	assert.Equal(t, search.Triad{Prev: 9, Middle: 2, Next: 4}, search.TriadAt(border, 3))
	assert.Equal(t, search.TriadAt(border, 1), search.TriadAt(border, 5))
	assert.Equal(t, search.TriadAt(border, 3), search.TriadAt(border, -1))
	assert.Len(t, search.Triads(border), 4)
	assert.Nil(t, search.Triads([]int{1, 2}))
}

func TestState_CloneIsDeep(t *testing.T) {
	s := &search.State{
		Adjacency:   adjacency.List{0: {1, 2}, 1: {0, 2}, 2: {0, 1}},
		Border:      []int{0, 1, 2},
		TargetIndex: 1,
		ClipHistory: []int{5},
	}
	c := s.Clone()
	c.Adjacency.AddEdge(0, 3)
	c.Border[0] = 9
	c.ClipHistory = append(c.ClipHistory, 6)

	assert.Equal(t, []int{1, 2}, s.Adjacency[0])
	assert.Equal(t, []int{0, 1, 2}, s.Border)
	assert.Equal(t, []int{5}, s.ClipHistory)

	tr, err := s.Triad()
	require.NoError(t, err)
	assert.Equal(t, search.Triad{Prev: 0, Middle: 1, Next: 2}, tr)

	s.TargetIndex = 3
	_, err = s.Triad()
	require.ErrorIs(t, err, search.ErrTargetOutOfRange)
}

func TestPriority_ShortestBorderFirstFIFO(t *testing.T) {
	q, err := search.New(search.Priority)
	require.NoError(t, err)

	a := state(1, 2, 3, 4)
	a.TargetIndex = 0
	b := state(1, 2, 3)
	b.TargetIndex = 1
	c := state(5, 6, 7)
	c.TargetIndex = 2
	d := state(1, 2, 3, 4, 5)

	for _, s := range []*search.State{a, b, c, d} {
		q.Push(s)
	}
	require.Equal(t, 4, q.Len())

	peek, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, peek.TargetIndex)

	var order []int
	for !q.IsEmpty() {
		s, err := q.Pop()
		require.NoError(t, err)
		order = append(order, len(s.Border)*10+s.TargetIndex)
	}
	assert.Equal(t, []int{31, 32, 40, 50}, order)

	_, err = q.Pop()
	require.ErrorIs(t, err, search.ErrEmptyQueue)
	_, err = q.Peek()
	require.ErrorIs(t, err, search.ErrEmptyQueue)
}

func TestStack_LIFO(t *testing.T) {
	q, err := search.New(search.Stack)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		s := state(1, 2, 3)
		s.TargetIndex = i
		q.Push(s)
	}
	for want := 2; want >= 0; want-- {
		s, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, s.TargetIndex)
	}
	assert.True(t, q.IsEmpty())
	_, err = q.Pop()
	require.ErrorIs(t, err, search.ErrEmptyQueue)
}

func TestPush_StoresCopy(t *testing.T) {
	for _, strategy := range []search.Strategy{search.Priority, search.Stack} {
		t.Run(strategy.String(), func(t *testing.T) {
			q, err := search.New(strategy)
			require.NoError(t, err)
			s := state(1, 2, 3)
			q.Push(s)
			s.Border[0] = 42
			s.Adjacency.AddEdge(0, 1)

			got, err := q.Pop()
			require.NoError(t, err)
			assert.Equal(t, []int{1, 2, 3}, got.Border)
			assert.Equal(t, []int{1}, got.Adjacency[0])
		})
	}
}

func TestNew_UnknownStrategy(t *testing.T) {
	_, err := search.New(search.Strategy(7))
	require.ErrorIs(t, err, search.ErrUnknownStrategy)
	assert.Equal(t, "Strategy(7)", search.Strategy(7).String())
}

func TestPeek_ReturnsCopy(t *testing.T) {
	for _, strategy := range []search.Strategy{search.Priority, search.Stack} {
		t.Run(strategy.String(), func(t *testing.T) {
			q, err := search.New(strategy)
			require.NoError(t, err)
			q.Push(state(1, 2, 3))

			peek, err := q.Peek()
			require.NoError(t, err)
			peek.Border[0] = 9
			peek.Adjacency.AddEdge(0, 5)
			peek.TargetIndex = 2

			got, err := q.Pop()
			require.NoError(t, err)
			assert.Equal(t, []int{1, 2, 3}, got.Border)
			assert.Equal(t, []int{1}, got.Adjacency[0])
			assert.Zero(t, got.TargetIndex)
		})
	}
}
