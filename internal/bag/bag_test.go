package bag

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(t *testing.T, capacity int, values ...int) *Bag[int] {
	t.Helper()

	b := New[int](capacity)
	for _, v := range values {
		require.True(t, b.Add(v), "add %d", v)
	}

	return b
}

func sorted(b *Bag[int]) []int {
	items := b.Items()
	sort.Ints(items)

	return items
}

func TestNew_InvalidCapacity(t *testing.T) {
	assert.Panics(t, func() { New[int](0) })
	assert.Panics(t, func() { New[int](-3) })
	assert.Panics(t, func() { NewFunc[int](3, nil) })
}

func TestBag_Add(t *testing.T) {
	t.Run("добавление увеличивает размер на 1", func(t *testing.T) {
		b := New[string](3)
		assert.True(t, b.IsEmpty())

		for i, v := range []string{"foo", "bar", "foo"} {
			require.True(t, b.Add(v))
			assert.Equal(t, i+1, b.Size())
			assert.True(t, b.Contains(v))
		}
		assert.False(t, b.IsEmpty())
		assert.Equal(t, 3, b.Capacity())
	})

	t.Run("переполнение не меняет сумку", func(t *testing.T) {
		b := fill(t, 2, 1, 2)

		assert.False(t, b.Add(3))
		assert.Equal(t, 2, b.Size())
		assert.False(t, b.Contains(3))
		assert.Equal(t, []int{1, 2}, sorted(b))
	})
}

func TestBag_Remove(t *testing.T) {
	t.Run("remove from empty bag", func(t *testing.T) {
		b := New[int](3)
		assert.False(t, b.Remove(1))
		assert.Equal(t, 0, b.Size())
	})

	t.Run("remove absent value", func(t *testing.T) {
		b := fill(t, 3, 1, 2)
		assert.False(t, b.Remove(7))
		assert.Equal(t, 2, b.Size())
	})

	t.Run("remove then contains", func(t *testing.T) {
		b := fill(t, 4, 1, 2, 3)
		require.True(t, b.Remove(1))

		assert.False(t, b.Contains(1))
		assert.Equal(t, 2, b.Size())
		assert.Equal(t, []int{2, 3}, sorted(b))
	})

	t.Run("remove drops a single occurrence", func(t *testing.T) {
		b := fill(t, 4, 5, 5, 6)
		require.True(t, b.Remove(5))

		assert.Equal(t, 1, b.FrequencyOf(5))
		assert.True(t, b.Contains(5))
	})

	t.Run("remove last slot", func(t *testing.T) {
		b := fill(t, 3, 1, 2, 3)
		require.True(t, b.Remove(3))
		assert.Equal(t, []int{1, 2}, sorted(b))
	})
}

func TestBag_RemoveAt(t *testing.T) {
	b := fill(t, 3, 1, 2, 3)
	b.RemoveAt(0)

	assert.Equal(t, []int{2, 3}, sorted(b))
	assert.Panics(t, func() { b.RemoveAt(2) })
	assert.Panics(t, func() { b.At(-1) })
}

func TestBag_ContainsUsesIndexOf(t *testing.T) {
	calls := 0
	b := NewFunc(5, func(a, c int) bool {
		calls++
		return a == c
	})
	for _, v := range []int{4, 8, 15, 16} {
		b.Add(v)
	}

	idx := b.IndexOf(15)
	require.Equal(t, 2, idx)
	indexCalls := calls

	calls = 0
	assert.True(t, b.Contains(15))
	assert.Equal(t, indexCalls, calls, "contains must stop at the first match like IndexOf")

	calls = 0
	assert.False(t, b.Contains(42))
	assert.Equal(t, 4, calls)
	assert.Equal(t, NotFound, b.IndexOf(42))
}

func TestBag_Clear(t *testing.T) {
	b := fill(t, 3, 1, 2, 3)
	b.Clear()

	assert.True(t, b.IsEmpty())
	assert.False(t, b.Contains(1))
	assert.True(t, b.Add(9))
	assert.Equal(t, []int{9}, b.Items())
}

func TestBag_FrequencyOf(t *testing.T) {
	b := fill(t, 6, 1, 2, 1, 3, 1)

	assert.Equal(t, 3, b.FrequencyOf(1))
	assert.Equal(t, 1, b.FrequencyOf(2))
	assert.Equal(t, 0, b.FrequencyOf(4))

	b.Remove(1)
	assert.Equal(t, 2, b.FrequencyOf(1))
}

func TestBag_Union(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		left     []int
		right    []int
		expected []int
	}{
		{
			name:     "enough room",
			capacity: 6,
			left:     []int{1, 2},
			right:    []int{2, 3, 4},
			expected: []int{1, 2, 3, 4},
		},
		{
			name:     "overflow is dropped silently",
			capacity: 3,
			left:     []int{1, 2},
			right:    []int{3, 4, 5},
			expected: []int{1, 2, 3},
		},
		{
			name:     "duplicates of right are added once",
			capacity: 5,
			left:     []int{1},
			right:    []int{2, 2},
			expected: []int{1, 2},
		},
		{
			name:     "empty right",
			capacity: 3,
			left:     []int{1},
			right:    nil,
			expected: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := fill(t, tt.capacity, tt.left...)
			b := fill(t, 5, tt.right...)

			a.Union(b)

			assert.Equal(t, tt.expected, sorted(a))
			assert.Equal(t, len(tt.right), b.Size())
		})
	}
}

func TestBag_Difference(t *testing.T) {
	tests := []struct {
		name     string
		left     []int
		right    []int
		expected []int
	}{
		{
			name:     "one occurrence per match",
			left:     []int{1, 1, 1, 2},
			right:    []int{1, 1},
			expected: []int{1, 2},
		},
		{
			name:     "absent values are ignored",
			left:     []int{1, 2},
			right:    []int{3, 4},
			expected: []int{1, 2},
		},
		{
			name:     "more matches than occurrences",
			left:     []int{5, 6},
			right:    []int{5, 5, 5},
			expected: []int{6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := fill(t, 5, tt.left...)
			b := fill(t, 5, tt.right...)

			a.Difference(b)

			assert.Equal(t, tt.expected, sorted(a))
		})
	}

	t.Run("difference with itself", func(t *testing.T) {
		a := fill(t, 5, 1, 2, 2)
		a.Difference(a)
		assert.True(t, a.IsEmpty())
	})
}

func TestBag_Intersection(t *testing.T) {
	tests := []struct {
		name     string
		left     []int
		right    []int
		expected []int
	}{
		{
			name:     "keeps common values",
			left:     []int{1, 2, 3, 4},
			right:    []int{2, 4, 6},
			expected: []int{2, 4},
		},
		{
			// подряд идущие удаляемые элементы: позиционный обход со свапом пропустил бы 3
			name:     "adjacent removals are not skipped",
			left:     []int{1, 2, 3, 9},
			right:    []int{9},
			expected: []int{9},
		},
		{
			name:     "left larger than right",
			left:     []int{7, 8, 7, 8, 5},
			right:    []int{5},
			expected: []int{5},
		},
		{
			name:     "duplicates in left are kept",
			left:     []int{1, 1, 2},
			right:    []int{1},
			expected: []int{1, 1},
		},
		{
			name:     "disjoint",
			left:     []int{1, 2},
			right:    []int{3},
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := fill(t, 5, tt.left...)
			b := fill(t, 5, tt.right...)

			a.Intersection(b)

			assert.Equal(t, tt.expected, sorted(a))
			assert.Equal(t, len(tt.expected), a.Size())
		})
	}
}

func TestBag_Equal(t *testing.T) {
	t.Run("empty bags are equal", func(t *testing.T) {
		a, b := New[int](2), New[int](7)
		assert.True(t, a.Equal(b))
		assert.False(t, a.NotEqual(b))
	})

	t.Run("different sizes are never equal", func(t *testing.T) {
		a := fill(t, 5, 1, 2)
		b := fill(t, 5, 1, 2, 2)
		assert.False(t, a.Equal(b))
		assert.False(t, b.Equal(a))
		assert.True(t, a.NotEqual(b))
	})

	t.Run("same values in another order", func(t *testing.T) {
		a := fill(t, 5, 1, 2, 3)
		b := fill(t, 5, 3, 1, 2)
		assert.True(t, a.Equal(b))
		assert.True(t, a.MultisetEqual(b))
	})

	t.Run("same size, missing value", func(t *testing.T) {
		a := fill(t, 5, 1, 2, 3)
		b := fill(t, 5, 1, 2, 4)
		assert.False(t, a.Equal(b))
		assert.True(t, a.NotEqual(b))
	})

	t.Run("weak equality ignores multiplicities", func(t *testing.T) {
		a := fill(t, 5, 1, 1, 2)
		b := fill(t, 5, 1, 2, 2)

		// каждый элемент b содержится в a и наоборот
		assert.True(t, a.Equal(b))
		assert.True(t, b.Equal(a))

		assert.False(t, a.MultisetEqual(b))
		assert.False(t, b.MultisetEqual(a))
	})

	t.Run("asymmetric check", func(t *testing.T) {
		a := fill(t, 5, 1, 2, 3)
		b := fill(t, 5, 1, 1, 2)

		// все элементы b есть в a, но 3 из a отсутствует в b
		assert.True(t, a.Equal(b))
		assert.False(t, b.Equal(a))
	})
}

func TestBag_NewFunc(t *testing.T) {
	type pair struct {
		key   string
		value int
	}

	b := NewFunc(3, func(a, c pair) bool { return a.key == c.key })
	b.Add(pair{"a", 1})
	b.Add(pair{"b", 2})

	assert.True(t, b.Contains(pair{"a", 100}))
	assert.Equal(t, 1, b.IndexOf(pair{"b", 0}))
	assert.Equal(t, 2, b.At(1).value)
}
