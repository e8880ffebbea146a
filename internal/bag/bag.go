package bag

// NotFound возвращается IndexOf, если элемент отсутствует в сумке
const NotFound = -1

// DefaultCapacity вместимость сумки по умолчанию
const DefaultCapacity = 200

// Bag - неупорядоченное мультимножество фиксированной вместимости.
// Порядок элементов не определен: удаление ставит последний элемент на место удаленного.
type Bag[T any] struct {
	items []T
	count int
	equal func(a, b T) bool
}

// New создает пустую сумку, элементы сравниваются через ==
func New[T comparable](capacity int) *Bag[T] {
	return NewFunc(capacity, func(a, b T) bool { return a == b })
}

// NewFunc создает пустую сумку с собственной функцией равенства элементов
func NewFunc[T any](capacity int, equal func(a, b T) bool) *Bag[T] {
	if capacity <= 0 {
		panic("bag: capacity must be positive")
	}
	if equal == nil {
		panic("bag: nil equality function")
	}

	return &Bag[T]{
		items: make([]T, capacity),
		equal: equal,
	}
}

// Capacity максимальное число элементов
func (b *Bag[T]) Capacity() int {
	return len(b.items)
}

// Size текущее число элементов
func (b *Bag[T]) Size() int {
	return b.count
}

func (b *Bag[T]) IsEmpty() bool {
	return b.count == 0
}

// Add кладет элемент в сумку. Возвращает false, если сумка заполнена.
func (b *Bag[T]) Add(item T) bool {
	if b.count == len(b.items) {
		return false
	}

	b.items[b.count] = item
	b.count++

	return true
}

// IndexOf возвращает индекс первого совпадения среди живых слотов либо NotFound
func (b *Bag[T]) IndexOf(target T) int {
	for i := 0; i < b.count; i++ {
		if b.equal(b.items[i], target) {
			return i
		}
	}

	return NotFound
}

// Contains проверяет наличие элемента (через IndexOf)
func (b *Bag[T]) Contains(target T) bool {
	return b.IndexOf(target) != NotFound
}

// Remove удаляет одно вхождение элемента за O(1), меняя порядок оставшихся.
// Возвращает false, если сумка пуста или элемента нет.
func (b *Bag[T]) Remove(target T) bool {
	idx := b.IndexOf(target)
	if idx == NotFound {
		return false
	}

	b.removeAt(idx)

	return true
}

// RemoveAt удаляет элемент по индексу живого слота
func (b *Bag[T]) RemoveAt(i int) {
	if i < 0 || i >= b.count {
		panic("bag: index out of range")
	}

	b.removeAt(i)
}

func (b *Bag[T]) removeAt(i int) {
	var zero T

	b.count--
	b.items[i] = b.items[b.count]
	b.items[b.count] = zero
}

// Clear опустошает сумку
func (b *Bag[T]) Clear() {
	clear(b.items[:b.count])
	b.count = 0
}

// FrequencyOf число вхождений элемента
func (b *Bag[T]) FrequencyOf(target T) int {
	frequency := 0
	for i := 0; i < b.count; i++ {
		if b.equal(b.items[i], target) {
			frequency++
		}
	}

	return frequency
}

// At возвращает элемент живого слота i
func (b *Bag[T]) At(i int) T {
	if i < 0 || i >= b.count {
		panic("bag: index out of range")
	}

	return b.items[i]
}

// Items копия живых слотов, порядок не определен
func (b *Bag[T]) Items() []T {
	items := make([]T, b.count)
	copy(items, b.items[:b.count])

	return items
}

// Union добавляет элементы other, которых еще нет в сумке.
// Когда место заканчивается, оставшиеся элементы молча отбрасываются.
func (b *Bag[T]) Union(other *Bag[T]) {
	for _, item := range other.Items() {
		if !b.Contains(item) {
			b.Add(item)
		}
	}
}

// Difference удаляет по одному вхождению на каждый элемент other
func (b *Bag[T]) Difference(other *Bag[T]) {
	for _, item := range other.Items() {
		if b.Contains(item) {
			b.Remove(item)
		}
	}
}

// Intersection оставляет только элементы, которые есть в other.
// Сначала строится отфильтрованная копия, потом она записывается обратно,
// поэтому перестановки при удалении ничего не пропускают.
func (b *Bag[T]) Intersection(other *Bag[T]) {
	kept := make([]T, 0, b.count)
	for _, item := range b.Items() {
		if other.Contains(item) {
			kept = append(kept, item)
		}
	}

	b.Clear()
	b.count = copy(b.items, kept)
}

// Equal - обе сумки пусты, либо размеры совпадают и каждый элемент other есть в b.
// Это слабое сравнение: кратности элементов не сверяются, см. MultisetEqual.
func (b *Bag[T]) Equal(other *Bag[T]) bool {
	if b.IsEmpty() && other.IsEmpty() {
		return true
	}
	if b.count != other.count {
		return false
	}

	for i := 0; i < other.count; i++ {
		if !b.Contains(other.items[i]) {
			return false
		}
	}

	return true
}

func (b *Bag[T]) NotEqual(other *Bag[T]) bool {
	return !b.Equal(other)
}

// MultisetEqual строгое сравнение мультимножеств: совпадают кратности всех элементов
func (b *Bag[T]) MultisetEqual(other *Bag[T]) bool {
	if b.count != other.count {
		return false
	}

	for i := 0; i < b.count; i++ {
		item := b.items[i]
		if b.FrequencyOf(item) != other.FrequencyOf(item) {
			return false
		}
	}

	return true
}
