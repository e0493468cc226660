package hashmap

// Table assigns each distinct string key a unique positive integer index in
// insertion order, starting at 1. Once assigned, an index never changes
// even across unrelated inserts, and indices are never recycled after a
// removal.
type Table struct {
	forward *Map[int, string]
	inverse *Map[string, int]
	next    int
}

// NewTable creates an empty Table. The first key Put will be assigned
// index 1.
func NewTable() *Table {
	return &Table{
		forward: New[int, string](func(i int) uint64 { return uint64(i) }),
		inverse: NewStringMap[int](),
		next:    1,
	}
}

// Put returns the index for key. If key has already been inserted, its
// existing index is returned and next is left untouched; otherwise key is
// assigned the current value of next, which is then advanced.
func (t *Table) Put(key string) int {
	if idx, ok := t.inverse.Get(key); ok {
		return idx
	}

	idx := t.next
	t.forward.Insert(idx, key)
	t.inverse.Insert(key, idx)
	t.next++
	return idx
}

// Get returns the key stored at idx, and whether it was present.
func (t *Table) Get(idx int) (string, bool) {
	return t.forward.Get(idx)
}

// Len returns the number of keys currently in the table.
func (t *Table) Len() int {
	return t.forward.Len()
}

// Clear empties the table and resets the index counter back to 1.
func (t *Table) Clear() {
	t.forward.Clear()
	t.inverse.Clear()
	t.next = 1
}

// Iterate calls fn for every (index, key) pair currently in the table, in
// unspecified but stable order.
func (t *Table) Iterate(fn func(index int, key string)) {
	t.forward.Iterate(fn)
}
