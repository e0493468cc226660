// Package hashmap provides the open-addressed hash map that underpins the
// scanner's identifier/constant tables. The parser does not use it: its
// LL(1) parsing table is a plain Go map.
//
// The map uses Robin-Hood linear probing: on insert, an entry that has
// probed further from its home slot than the entry currently occupying a
// slot displaces it, which bounds the worst-case probe length without
// needing tombstones on removal.
package hashmap

const (
	initialCapacity = 16
	resizeFactor    = 2
	loadFactor      = 0.75
)

// entry is one occupied slot in the backing array.
type entry[K comparable, V any] struct {
	key        K
	value      V
	probeCount int
	used       bool
}

// Map is a Robin-Hood open-addressed hash map from comparable keys to
// values of any type.
//
// The zero value is not ready for use; call New to construct one.
type Map[K comparable, V any] struct {
	data     []entry[K, V]
	capacity int
	size     int
	hash     func(K) uint64
}

// New creates an empty Map that hashes keys with h.
func New[K comparable, V any](h func(K) uint64) *Map[K, V] {
	return &Map[K, V]{
		data:     make([]entry[K, V], initialCapacity),
		capacity: initialCapacity,
		hash:     h,
	}
}

// Djb2 implements the djb2 string-hashing algorithm spec'd for this map:
// h = 5381; for each byte b: h = ((h<<5) + h) + b, with wraparound.
func Djb2(s string) uint64 {
	var h uint64 = 5381
	for i := 0; i < len(s); i++ {
		h = ((h << 5) + h) + uint64(s[i])
	}
	return h
}

// NewStringMap creates an empty Map keyed by strings, hashed with Djb2.
func NewStringMap[V any]() *Map[string, V] {
	return New[string, V](Djb2)
}

// Len returns the number of live entries in the map.
func (m *Map[K, V]) Len() int {
	return m.size
}

func (m *Map[K, V]) homeIndex(k K) int {
	return int(m.hash(k) % uint64(m.capacity))
}

// Insert places value v under key k. If k is already present, its value is
// updated in place and the size does not change.
func (m *Map[K, V]) Insert(k K, v V) {
	if float64(m.size)/float64(m.capacity) >= loadFactor {
		m.grow()
	}

	index := m.homeIndex(k)
	cur := entry[K, V]{key: k, value: v, used: true}

	for {
		slot := &m.data[index]
		if !slot.used {
			*slot = cur
			m.size++
			return
		}

		if slot.key == cur.key {
			slot.value = cur.value
			return
		}

		if slot.probeCount < cur.probeCount {
			slot.probeCount, cur.probeCount = cur.probeCount, slot.probeCount
			slot.key, cur.key = cur.key, slot.key
			slot.value, cur.value = cur.value, slot.value
		}

		cur.probeCount++
		index = (index + 1) % m.capacity
	}
}

func (m *Map[K, V]) grow() {
	old := m.data
	m.capacity *= resizeFactor
	m.data = make([]entry[K, V], m.capacity)
	m.size = 0

	for _, e := range old {
		if e.used {
			m.Insert(e.key, e.value)
		}
	}
}

// findIndex returns the slot index holding k and true, or false if k is not
// present. The probe is cut short as soon as the current probe distance
// exceeds the occupied slot's own probe count, since k cannot be stored any
// later than that by the Robin-Hood invariant.
func (m *Map[K, V]) findIndex(k K) (int, bool) {
	index := m.homeIndex(k)
	probeCount := 0

	for {
		slot := &m.data[index]
		if !slot.used {
			return 0, false
		}
		if probeCount > slot.probeCount {
			return 0, false
		}
		if slot.key == k {
			return index, true
		}

		probeCount++
		index = (index + 1) % m.capacity
	}
}

// Get returns the value stored under k, and whether it was present.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if i, ok := m.findIndex(k); ok {
		return m.data[i].value, true
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether k has a live entry in the map.
func (m *Map[K, V]) ContainsKey(k K) bool {
	_, ok := m.findIndex(k)
	return ok
}

// Remove deletes the entry for k, if present, and restores the Robin-Hood
// invariant among entries that follow it via backward shift: each
// subsequent occupied slot with a nonzero probe count is moved back one
// slot and has its probe count decremented, until an empty slot or a slot
// with probe count 0 is reached.
func (m *Map[K, V]) Remove(k K) {
	i, ok := m.findIndex(k)
	if !ok {
		return
	}

	m.data[i] = entry[K, V]{}
	m.size--

	prev := i
	next := (i + 1) % m.capacity
	for m.data[next].used && m.data[next].probeCount > 0 {
		m.data[next].probeCount--
		m.data[prev] = m.data[next]
		m.data[next] = entry[K, V]{}

		prev = next
		next = (next + 1) % m.capacity
	}
}

// Clear empties the map, discarding all entries.
func (m *Map[K, V]) Clear() {
	m.data = make([]entry[K, V], m.capacity)
	m.size = 0
}

// Iterate calls fn for every live (key, value) pair in slot order. Slot
// order is stable between calls that do not mutate the map but is not
// otherwise specified.
func (m *Map[K, V]) Iterate(fn func(k K, v V)) {
	for _, e := range m.data {
		if e.used {
			fn(e.key, e.value)
		}
	}
}
