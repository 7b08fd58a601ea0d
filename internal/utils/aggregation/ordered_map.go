package aggregation

// OrderedMap is a key -> accumulator map that remembers the order in which keys were first inserted.
// It is not safe for concurrent use.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{values: make(map[K]V)}
}

// Update replaces the value stored under key with fn(current).
// A key seen for the first time starts from V's zero value and is appended to the key order.
func (m *OrderedMap[K, V]) Update(key K, fn func(V) V) {
	current, ok := m.values[key]
	if !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = fn(current)
}

// Get returns the value stored under key.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in first-insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of distinct keys.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Each calls fn for every entry in first-insertion order.
func (m *OrderedMap[K, V]) Each(fn func(key K, value V)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}
