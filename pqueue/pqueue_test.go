package pqueue_test

import (
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routenav/pqueue"
)

func TestQueue_MinFirst(t *testing.T) {
	q := pqueue.New[string]()
	require.True(t, q.IsEmpty())

	q.Insert("c", 3)
	q.Insert("a", 1)
	q.Insert("d", 4)
	q.Insert("b", 2)
	require.Equal(t, 4, q.Len())

	item, prio := q.Peek()
	assert.Equal(t, "a", item)
	assert.Equal(t, 1.0, prio)
	assert.Equal(t, 4, q.Len(), "Peek must not remove")

	var got []string
	for !q.IsEmpty() {
		item, _ := q.ExtractMin()
		got = append(got, item)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestQueue_StableTies(t *testing.T) {
	q := pqueue.NewWithCapacity[int](8)
	for i := 0; i < 8; i++ {
		q.Insert(i, 5)
	}
	q.Insert(100, 1)

	first, _ := q.ExtractMin()
	assert.Equal(t, 100, first)
	for want := 0; want < 8; want++ {
		got, prio := q.ExtractMin()
		assert.Equal(t, want, got)
		assert.Equal(t, 5.0, prio)
	}
}

func TestQueue_DuplicatesKept(t *testing.T) {
	q := pqueue.New[int]()
	q.Insert(7, 10)
	q.Insert(7, 3)
	q.Insert(7, 8)

	var prios []float64
	for !q.IsEmpty() {
		item, p := q.ExtractMin()
		assert.Equal(t, 7, item)
		prios = append(prios, p)
	}
	assert.Equal(t, []float64{3, 8, 10}, prios)
}

func TestQueue_EmptyPanics(t *testing.T) {
	q := pqueue.New[int]()
	assert.PanicsWithValue(t, pqueue.ErrEmptyQueue, func() { q.ExtractMin() })
	assert.PanicsWithValue(t, pqueue.ErrEmptyQueue, func() { q.Peek() })
}

// TestQueue_Properties checks that extraction yields a stable sort of the
// inserted priorities for arbitrary inputs.
func TestQueue_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("extraction is a stable sort by priority", prop.ForAll(
		func(prios []int) bool {
			q := pqueue.New[int]()
			for i, p := range prios {
				q.Insert(i, float64(p))
			}

			want := make([]int, len(prios))
			for i := range want {
				want[i] = i
			}
			sort.SliceStable(want, func(a, b int) bool { return prios[want[a]] < prios[want[b]] })

			for _, idx := range want {
				if q.IsEmpty() {
					return false
				}
				got, p := q.ExtractMin()
				if got != idx || p != float64(prios[idx]) {
					return false
				}
			}
			return q.IsEmpty()
		},
		gen.SliceOf(gen.IntRange(-20, 20)),
	))

	properties.TestingRun(t)
}
